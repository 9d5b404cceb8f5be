package stream

import (
	"context"
	"sync"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/matt-g-everett/ledsend/logger"
	"github.com/sirupsen/logrus"
)

// Sender delivers an encoded frame to the fixture.
type Sender interface {
	Send(b []byte) error
}

// Clock is the part of k8s.io/utils/clock.Clock the Streamer paces itself with.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Stats describes what a Streamer has sent so far.
type Stats struct {
	Mode      string    `json:"mode"`
	Frames    uint64    `json:"frames"`
	Bytes     uint64    `json:"bytes"`
	LastFrame time.Time `json:"lastFrame"`
	Finished  bool      `json:"finished"`
}

// Streamer that streams RGB data frames to a fixture.
type Streamer struct {
	sender  Sender
	encoder Encoder
	clock   Clock
	log     *logrus.Entry

	mu    sync.Mutex
	stats Stats
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(sender Sender, pixelCount int, clock Clock) *Streamer {
	s := new(Streamer)
	s.sender = sender
	s.encoder = Encoder{PixelCount: pixelCount}
	s.clock = clock
	s.log = logger.GetProjectLogger()
	return s
}

// SendFrame encodes a frame and hands it to the sender.
func (s *Streamer) SendFrame(f *Frame) error {
	b, err := s.encoder.Encode(f)
	if err != nil {
		return err
	}
	if err := s.sender.Send(b); err != nil {
		return errors.WithStackTraceAndPrefix(err, "sending %s frame", f.Command())
	}

	s.mu.Lock()
	s.stats.Frames++
	s.stats.Bytes += uint64(len(b))
	s.stats.LastFrame = s.clock.Now()
	s.mu.Unlock()
	return nil
}

// Run sends the frames of an animation, holding each one for the duration
// the animation asks for. It returns nil when the animation finishes or the
// context is cancelled, and the first send error otherwise.
func (s *Streamer) Run(ctx context.Context, mode string, a Animation) error {
	s.mu.Lock()
	s.stats = Stats{Mode: mode}
	s.mu.Unlock()

	s.log.Debugf("Streaming %s", mode)
	for {
		if ctx.Err() != nil {
			s.log.Debugf("Stopped streaming %s", mode)
			return nil
		}

		f, hold := a.CalculateFrame()
		if f == nil {
			s.mu.Lock()
			s.stats.Finished = true
			s.mu.Unlock()
			s.log.Debugf("Finished streaming %s", mode)
			return nil
		}

		if err := s.SendFrame(f); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
		case <-s.clock.After(hold):
		}
	}
}

// Stats returns a snapshot of what has been sent.
func (s *Streamer) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
