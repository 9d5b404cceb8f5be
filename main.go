package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/matt-g-everett/ledsend/api"
	"github.com/matt-g-everett/ledsend/logger"
	"github.com/matt-g-everett/ledsend/stream"
	"github.com/matt-g-everett/ledsend/transport"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

const usage = `usage: ledsend [flags] <host> <port> <mode> [colour]

modes: %s
An unrecognised mode is treated as a six digit hex colour.

flags:
`

type app struct {
	Config    stream.Config
	Transport string
	Mode      string
	Args      []string

	sender transport.Sender
	api    *api.Api
	runner *stream.Runner
	log    *logrus.Entry
}

func newApp() *app {
	a := new(app)
	a.Config = stream.DefaultConfig()
	a.log = logger.GetProjectLogger()
	return a
}

// parseArgs fills in the app from the command line. Flags override the
// config file and positional arguments override both.
func (a *app) parseArgs(args []string) error {
	flags := flag.NewFlagSet("ledsend", flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usage, strings.Join(stream.ModeNames(), ", "))
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "YAML config file.")
	pixels := flags.Int("pixels", 0, fmt.Sprintf("Number of pixels on the strip (default %d).", stream.DefaultPixelCount))
	transportName := flags.String("transport", "udp", "How frames reach the fixture: udp or mqtt.")
	seed := flags.Int64("seed", 0, "Random seed for twinkle and xmas; 0 picks one from the clock.")
	verbose := flags.Bool("v", false, "Log at debug level.")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *verbose {
		logger.SetGlobalLogLevel(logrus.DebugLevel)
		a.log = logger.GetProjectLogger()
	}

	if *configPath != "" {
		c, err := stream.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		a.Config = c
	}
	if *pixels != 0 {
		a.Config.PixelCount = *pixels
	}
	if *seed != 0 {
		a.Config.Seed = *seed
	}
	if a.Config.Seed == 0 {
		a.Config.Seed = time.Now().UTC().UnixNano()
	}

	a.Transport = *transportName
	if a.Transport != "udp" && a.Transport != "mqtt" {
		return errors.WithStackTraceAndPrefix(stream.ErrInvalidParameter, "transport %q", a.Transport)
	}

	positional := flags.Args()
	if len(positional) < 3 {
		flags.Usage()
		return errors.WithStackTrace(fmt.Errorf("expected <host> <port> <mode>, got %d arguments", len(positional)))
	}

	port, err := strconv.Atoi(positional[1])
	if err != nil || port < 1 || port > 65535 {
		return errors.WithStackTraceAndPrefix(stream.ErrInvalidParameter, "port %q", positional[1])
	}
	a.Config.Destination.Host = positional[0]
	a.Config.Destination.Port = port
	a.Mode = positional[2]
	a.Args = positional[3:]

	return a.Config.Validate()
}

func (a *app) connect() error {
	dest := a.Config.Destination
	switch a.Transport {
	case "mqtt":
		opts := transport.MqttOptions{
			URL:      a.Config.Mqtt.URL,
			Username: a.Config.Mqtt.Username,
			Password: a.Config.Mqtt.Password,
			Topic:    a.Config.Mqtt.Topic,
		}
		if opts.URL == "" {
			opts.URL = fmt.Sprintf("tcp://%s:%d", dest.Host, dest.Port)
		}
		m, err := transport.DialMQTT(opts)
		if err != nil {
			return err
		}
		a.sender = m
	default:
		u, err := transport.DialUDP(dest.Host, dest.Port)
		if err != nil {
			return err
		}
		a.sender = u
	}

	if a.Config.Api.Listen != "" {
		a.api = api.NewApi(a.Config.Api.Listen)
		a.sender = transport.NewFanout(a.sender, a.api)
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	rng := rand.New(rand.NewSource(a.Config.Seed))
	a.runner = stream.NewRunner(a.Config, a.sender, clock.RealClock{}, rng)

	if a.api != nil {
		a.api.Watch(a.runner)
		go func() {
			if err := a.api.Serve(); err != nil {
				a.log.Errorf("Api stopped: %v", err)
			}
		}()
	}

	a.log.WithFields(logrus.Fields{
		"mode":      a.Mode,
		"pixels":    a.Config.PixelCount,
		"transport": a.Transport,
		"seed":      a.Config.Seed,
	}).Info("Streaming")

	return a.runner.Run(ctx, a.Mode, a.Args)
}

func main() {
	mqtt.ERROR = logger.GetLogger("mqtt")

	a := newApp()
	if err := a.parseArgs(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		a.log.Fatalf("Bad arguments: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := a.connect(); err != nil {
		a.log.Fatalf("Could not reach the fixture: %v", err)
	}
	defer a.sender.Close()

	if err := a.run(ctx); err != nil {
		a.log.Fatalf("Streaming %s failed: %v", a.Mode, err)
	}

	stats := a.runner.Stats()
	a.log.Infof("Sent %d frames (%d bytes)", stats.Frames, stats.Bytes)
}
