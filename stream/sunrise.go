package stream

import (
	"time"

	"github.com/gruntwork-io/go-commons/errors"
)

const sunriseRedStart = 7

type sunrisePhase int

const (
	sunriseRed sunrisePhase = iota
	sunriseGreen
	sunriseBlue
)

// A Sunrise is an Animation that ramps the strip from dim red through
// yellow to white, one level per step.
type Sunrise struct {
	delay time.Duration
	phase sunrisePhase
	level int
}

// NewSunrise creates an instance of a Sunrise object.
func NewSunrise(settings SunriseSettings) (*Sunrise, error) {
	if settings.Delay <= 0 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "sunrise delay %s", settings.Delay)
	}

	s := new(Sunrise)
	s.delay = settings.Delay
	s.phase = sunriseRed
	s.level = sunriseRedStart
	return s, nil
}

// CalculateFrame creates a new Frame instance.
func (s *Sunrise) CalculateFrame() (*Frame, time.Duration) {
	level := uint8(s.level)
	var p Pixel
	switch s.phase {
	case sunriseRed:
		p = Pixel{R: level}
	case sunriseGreen:
		p = Pixel{R: 255, G: level}
	default:
		p = Pixel{R: 255, G: 255, B: level}
	}

	s.level++
	if s.level > 255 {
		s.level = 0
		s.phase++
		if s.phase > sunriseBlue {
			s.phase = sunriseRed
			s.level = sunriseRedStart
		}
	}

	return NewSolidFrame(p), s.delay
}
