package stream

import (
	"time"

	"github.com/gruntwork-io/go-commons/errors"
)

// A Rainbow is an Animation that sweeps an evenly spaced hue gradient along the strip.
type Rainbow struct {
	pixelCount  int
	calibration Calibration
	interval    time.Duration
	hue         int
}

// NewRainbow creates an instance of a Rainbow object.
func NewRainbow(pixelCount int, calibration Calibration, settings IntervalSettings) (*Rainbow, error) {
	if pixelCount < 1 || settings.Interval <= 0 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "rainbow over %d pixels every %s", pixelCount, settings.Interval)
	}

	r := new(Rainbow)
	r.pixelCount = pixelCount
	r.calibration = calibration
	r.interval = settings.Interval
	r.hue = 0

	return r, nil
}

// PixelHue returns the hue shown by pixel i when the global hue is hue.
func (r *Rainbow) PixelHue(hue, i int) float64 {
	spacing := 360.0 / float64(r.pixelCount)
	return float64(hue) + float64(i)*spacing
}

// CalculateFrame creates a new Frame instance.
func (r *Rainbow) CalculateFrame() (*Frame, time.Duration) {
	f := NewPixelFrame(r.pixelCount)
	for i := 0; i < r.pixelCount; i++ {
		f.SetPixel(i, r.calibration.HsvToPixel(r.PixelHue(r.hue, i), 1.0, 1.0))
	}

	r.hue = (r.hue + 1) % 360
	return f, r.interval
}

// A Fade is an Animation that cycles the whole strip through the hue circle.
type Fade struct {
	calibration Calibration
	interval    time.Duration
	hue         int
}

// NewFade creates an instance of a Fade object.
func NewFade(calibration Calibration, settings IntervalSettings) (*Fade, error) {
	if settings.Interval <= 0 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "fade every %s", settings.Interval)
	}

	a := new(Fade)
	a.calibration = calibration
	a.interval = settings.Interval
	return a, nil
}

// CalculateFrame creates a new Frame instance.
func (a *Fade) CalculateFrame() (*Frame, time.Duration) {
	f := NewSolidFrame(a.calibration.HsvToPixel(float64(a.hue), 1.0, 1.0))
	a.hue = (a.hue + 1) % 360
	return f, a.interval
}
