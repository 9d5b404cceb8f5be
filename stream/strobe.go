package stream

import (
	"time"

	"github.com/gruntwork-io/go-commons/errors"
)

// A Strobe is an Animation that flashes the whole strip white.
type Strobe struct {
	on  time.Duration
	off time.Duration
	lit bool
}

// NewStrobe creates an instance of a Strobe object.
func NewStrobe(settings StrobeSettings) (*Strobe, error) {
	if settings.On <= 0 || settings.Off <= 0 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "strobe %+v", settings)
	}

	s := new(Strobe)
	s.on = settings.On
	s.off = settings.Off
	return s, nil
}

// CalculateFrame creates a new Frame instance.
func (s *Strobe) CalculateFrame() (*Frame, time.Duration) {
	s.lit = !s.lit
	if s.lit {
		return NewSolidFrame(white), s.on
	}
	return NewSolidFrame(black), s.off
}
