package transport

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUDPSendsOneDatagramPerFrame(t *testing.T) {
	t.Parallel()

	listener, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.LocalAddr().(*net.UDPAddr).Port
	u, err := DialUDP("127.0.0.1", port)
	require.NoError(t, err)
	defer u.Close()

	frames := [][]byte{
		{0x01, 0xff, 0x00, 0x00},
		{0x03, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
	}
	for _, f := range frames {
		require.NoError(t, u.Send(f))
	}

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 1024)
	for _, want := range frames {
		n, _, err := listener.ReadFrom(buf)
		require.NoError(t, err)
		assert.Equal(t, want, buf[:n])
	}
}

func TestDialUDPRejectsBadAddress(t *testing.T) {
	t.Parallel()

	_, err := DialUDP("127.0.0.1", -1)
	assert.Error(t, err)
}
