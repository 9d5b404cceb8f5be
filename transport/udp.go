package transport

import (
	"net"
	"strconv"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/matt-g-everett/ledsend/logger"
)

// UDP sends each frame as a single datagram.
type UDP struct {
	conn net.Conn
}

// DialUDP creates a UDP sender for host and port. No packets are exchanged
// until the first Send.
func DialUDP(host string, port int) (*UDP, error) {
	address := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("udp", address)
	if err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "dialling %s", address)
	}

	logger.GetProjectLogger().Debugf("Sending frames to udp://%s", address)
	u := new(UDP)
	u.conn = conn
	return u, nil
}

// Send writes b as one datagram.
func (u *UDP) Send(b []byte) error {
	if _, err := u.conn.Write(b); err != nil {
		return errors.WithStackTrace(err)
	}
	return nil
}

// Close releases the socket.
func (u *UDP) Close() error {
	return u.conn.Close()
}
