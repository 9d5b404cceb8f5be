package stream

import (
	"time"

	"github.com/gruntwork-io/go-commons/errors"
)

// A Chase is an Animation that lights every n-th pixel green and steps the
// lit set along the strip.
type Chase struct {
	pixelCount int
	buckets    int
	interval   time.Duration
	current    int
}

// NewChase creates an instance of a Chase object.
func NewChase(pixelCount int, settings ChaseSettings) (*Chase, error) {
	if settings.Buckets < 1 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "chase needs at least one bucket, got %d", settings.Buckets)
	}
	if pixelCount < 1 || settings.Interval <= 0 {
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "chase over %d pixels every %s", pixelCount, settings.Interval)
	}

	c := new(Chase)
	c.pixelCount = pixelCount
	c.buckets = settings.Buckets
	c.interval = settings.Interval
	return c, nil
}

// CalculateFrame creates a new Frame instance.
func (c *Chase) CalculateFrame() (*Frame, time.Duration) {
	f := NewPixelFrame(c.pixelCount)
	for i := 0; i < c.pixelCount; i++ {
		if i%c.buckets == c.current {
			f.SetPixel(i, green)
		}
	}

	c.current = (c.current + 1) % c.buckets
	return f, c.interval
}
