package stream

import (
	"math/rand"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/matt-g-everett/ledsend/util"
)

// sparkle holds the brightness mechanics shared by both twinkle variants.
// Each pixel is either active, ramping up towards the ceiling, or inactive,
// decaying towards the floor.
type sparkle struct {
	rng        *rand.Rand
	settings   TwinkleSettings
	active     []bool
	levels     []int
	sinceSpawn time.Duration
}

func newSparkle(pixelCount int, settings TwinkleSettings, rng *rand.Rand) (*sparkle, error) {
	switch {
	case rng == nil:
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "twinkle needs a random source")
	case pixelCount < 1:
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "twinkle over %d pixels", pixelCount)
	case settings.Interval <= 0 || settings.SpawnEvery <= 0 || settings.Step < 1:
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "twinkle timing %+v", settings)
	case settings.Floor < 0 || settings.Ceiling > 255 || settings.Floor >= settings.Ceiling:
		return nil, errors.WithStackTraceAndPrefix(ErrInvalidParameter, "twinkle levels %d-%d", settings.Floor, settings.Ceiling)
	}

	s := new(sparkle)
	s.rng = rng
	s.settings = settings
	s.active = make([]bool, pixelCount)
	s.levels = make([]int, pixelCount)
	for i := range s.levels {
		s.levels[i] = settings.Floor
	}

	return s, nil
}

// tick advances every pixel by one step, first activating a random pixel if
// a spawn is due.
func (s *sparkle) tick() {
	s.sinceSpawn += s.settings.Interval
	if s.sinceSpawn >= s.settings.SpawnEvery {
		s.sinceSpawn -= s.settings.SpawnEvery
		// Picking a pixel that is already active is a no-op.
		s.active[s.rng.Intn(len(s.active))] = true
	}

	for i := range s.levels {
		if s.active[i] {
			s.levels[i] += s.settings.Step
			if s.levels[i] >= s.settings.Ceiling {
				s.levels[i] = s.settings.Ceiling
				s.active[i] = false
			}
		} else {
			s.levels[i] = util.Clamp(s.levels[i]-s.settings.Step, s.settings.Floor, s.settings.Ceiling)
		}
	}
}

// A Twinkle is an Animation that brightens random pixels to white and lets
// them fade back.
type Twinkle struct {
	sparkle *sparkle
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(pixelCount int, settings TwinkleSettings, rng *rand.Rand) (*Twinkle, error) {
	s, err := newSparkle(pixelCount, settings, rng)
	if err != nil {
		return nil, err
	}

	t := new(Twinkle)
	t.sparkle = s
	return t, nil
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame() (*Frame, time.Duration) {
	t.sparkle.tick()

	f := NewPixelFrame(len(t.sparkle.levels))
	for i, level := range t.sparkle.levels {
		l := uint8(level)
		f.SetPixel(i, Pixel{R: l, G: l, B: l})
	}

	return f, t.sparkle.settings.Interval
}

// A Twinkle2 is a Twinkle whose pixels take their colour from a hue that
// drifts round the colour wheel.
type Twinkle2 struct {
	sparkle     *sparkle
	calibration Calibration
	hue         int
}

// NewTwinkle2 creates an instance of a Twinkle2 object.
func NewTwinkle2(pixelCount int, calibration Calibration, settings TwinkleSettings, rng *rand.Rand) (*Twinkle2, error) {
	s, err := newSparkle(pixelCount, settings, rng)
	if err != nil {
		return nil, err
	}

	t := new(Twinkle2)
	t.sparkle = s
	t.calibration = calibration
	return t, nil
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle2) CalculateFrame() (*Frame, time.Duration) {
	t.sparkle.tick()

	f := NewPixelFrame(len(t.sparkle.levels))
	for i, level := range t.sparkle.levels {
		f.SetPixel(i, t.calibration.HsvToPixel(float64(t.hue), 1.0, float64(level)/255.0))
	}

	t.hue = (t.hue + 1) % 360
	return f, t.sparkle.settings.Interval
}
