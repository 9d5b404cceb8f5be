package stream

import (
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/matt-g-everett/ledsend/util"
)

// A Breathe is an Animation that eases a solid colour up from dark and back
// down again.
type Breathe struct {
	colour   Pixel
	interval time.Duration
	lut      []float64
	current  int
}

// NewBreathe creates an instance of a Breathe object.
func NewBreathe(settings BreatheSettings) (*Breathe, error) {
	if settings.Interval <= 0 || settings.Steps < 2 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "breathe %+v", settings)
	}

	colour, err := ParseHexColour(settings.Colour)
	if err != nil {
		return nil, err
	}

	b := new(Breathe)
	b.colour = colour
	b.interval = settings.Interval
	b.lut = util.GenerateLut(settings.Steps)
	return b, nil
}

// CalculateFrame creates a new Frame instance.
func (b *Breathe) CalculateFrame() (*Frame, time.Duration) {
	gain := b.lut[b.current]
	b.current = (b.current + 1) % len(b.lut)

	p := Pixel{
		R: uint8(float64(b.colour.R) * gain),
		G: uint8(float64(b.colour.G) * gain),
		B: uint8(float64(b.colour.B) * gain),
	}
	return NewSolidFrame(p), b.interval
}
