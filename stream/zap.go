package stream

import (
	"time"

	"github.com/gruntwork-io/go-commons/errors"
)

// A Zap is an Animation that sweeps a single white pixel along the strip,
// optionally bouncing back, pausing after every full sweep.
type Zap struct {
	pixelCount int
	interval   time.Duration
	pause      time.Duration
	sweep      []int
	position   int
}

// NewZap creates an instance of a Zap object.
func NewZap(pixelCount int, settings ZapSettings) (*Zap, error) {
	if pixelCount < 1 || settings.Interval <= 0 || settings.Pause < 0 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "zap over %d pixels %+v", pixelCount, settings)
	}

	z := new(Zap)
	z.pixelCount = pixelCount
	z.interval = settings.Interval
	z.pause = settings.Pause

	// Forward over every pixel, then back without repeating the far end.
	for i := 0; i < pixelCount; i++ {
		z.sweep = append(z.sweep, i)
	}
	if settings.Bounce {
		for i := pixelCount - 2; i >= 0; i-- {
			z.sweep = append(z.sweep, i)
		}
	}

	return z, nil
}

// CalculateFrame creates a new Frame instance.
func (z *Zap) CalculateFrame() (*Frame, time.Duration) {
	f := NewPixelFrame(z.pixelCount)
	f.SetPixel(z.sweep[z.position], white)

	hold := z.interval
	z.position++
	if z.position == len(z.sweep) {
		z.position = 0
		hold += z.pause
	}

	return f, hold
}
