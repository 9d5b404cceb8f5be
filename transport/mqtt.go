package transport

import (
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/matt-g-everett/ledsend/logger"
)

const (
	mqttClientID   = "ledsend"
	mqttQos        = 0
	disconnectWait = 250
)

// MqttOptions says where and as whom to publish frames.
type MqttOptions struct {
	URL      string
	Username string
	Password string
	Topic    string
}

// MQTT publishes each frame as one message on a topic.
type MQTT struct {
	client mqtt.Client
	topic  string
}

// NewMQTT wraps a client that is already connected, or will be by the time
// frames are sent.
func NewMQTT(client mqtt.Client, topic string) *MQTT {
	m := new(MQTT)
	m.client = client
	m.topic = topic
	return m
}

// DialMQTT connects to the broker named by opts.
func DialMQTT(opts MqttOptions) (*MQTT, error) {
	log := logger.GetProjectLogger()
	options := mqtt.NewClientOptions().
		AddBroker(opts.URL).
		SetClientID(mqttClientID).
		SetUsername(opts.Username).
		SetPassword(opts.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			log.Infof("Connected to %s", opts.URL)
		})
	client := mqtt.NewClient(options)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, errors.WithStackTraceAndPrefix(token.Error(), "connecting to %s", opts.URL)
	}

	return NewMQTT(client, opts.Topic), nil
}

// Send publishes b without retention.
func (m *MQTT) Send(b []byte) error {
	token := m.client.Publish(m.topic, mqttQos, false, b)
	if token.Wait() && token.Error() != nil {
		return errors.WithStackTraceAndPrefix(token.Error(), "publishing to %s", m.topic)
	}
	return nil
}

// Close disconnects from the broker.
func (m *MQTT) Close() error {
	m.client.Disconnect(disconnectWait)
	return nil
}
