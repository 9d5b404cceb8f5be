// Package transport delivers encoded frames to a fixture.
package transport

// Sender delivers an encoded frame. Delivery is fire-and-forget: a nil error
// only means the bytes left this process.
type Sender interface {
	Send(b []byte) error
	Close() error
}
