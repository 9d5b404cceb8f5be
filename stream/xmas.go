package stream

import (
	"math/rand"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
)

// An Xmas is an Animation that shows each pixel red or green and flips one
// random pixel every tick.
type Xmas struct {
	rng      *rand.Rand
	interval time.Duration
	states   []bool
}

// NewXmas creates an instance of an Xmas object with a random starting pattern.
func NewXmas(pixelCount int, settings IntervalSettings, rng *rand.Rand) (*Xmas, error) {
	if rng == nil || pixelCount < 1 || settings.Interval <= 0 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "xmas over %d pixels every %s", pixelCount, settings.Interval)
	}

	x := new(Xmas)
	x.rng = rng
	x.interval = settings.Interval
	x.states = make([]bool, pixelCount)
	for i := range x.states {
		x.states[i] = rng.Intn(2) == 1
	}

	return x, nil
}

// CalculateFrame creates a new Frame instance.
func (x *Xmas) CalculateFrame() (*Frame, time.Duration) {
	i := x.rng.Intn(len(x.states))
	x.states[i] = !x.states[i]

	f := NewPixelFrame(len(x.states))
	for i, isRed := range x.states {
		if isRed {
			f.SetPixel(i, red)
		} else {
			f.SetPixel(i, green)
		}
	}

	return f, x.interval
}
