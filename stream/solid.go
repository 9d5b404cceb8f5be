package stream

import "time"

// colourRepeats is how many times a one-shot colour is sent, to survive the
// first datagram being dropped.
const colourRepeats = 2

// A Colour is an Animation that sets the strip to one colour and finishes.
type Colour struct {
	pixel Pixel
	sent  int
}

// NewColour creates a Colour from a six digit hex string.
func NewColour(hex string) (*Colour, error) {
	p, err := ParseHexColour(hex)
	if err != nil {
		return nil, err
	}

	c := new(Colour)
	c.pixel = p
	return c, nil
}

// CalculateFrame creates a new Frame instance, or nil once the colour has
// been sent enough times.
func (c *Colour) CalculateFrame() (*Frame, time.Duration) {
	if c.sent >= colourRepeats {
		return nil, 0
	}
	c.sent++
	return NewSolidFrame(c.pixel), 0
}
