package stream

import (
	"math/rand"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
)

// Mode names one of the built-in animations.
type Mode int

const (
	ModeRainbow Mode = iota
	ModeFade
	ModeSunrise
	ModeZap
	ModeStrobe
	ModeColour
	ModeChase
	ModeTwinkle
	ModeTwinkle2
	ModeXmas
	ModeBreathe
)

var modeNames = [...]string{
	ModeRainbow:  "rainbow",
	ModeFade:     "fade",
	ModeSunrise:  "sunrise",
	ModeZap:      "zap",
	ModeStrobe:   "strobe",
	ModeColour:   "colour",
	ModeChase:    "chase",
	ModeTwinkle:  "twinkle",
	ModeTwinkle2: "twinkle2",
	ModeXmas:     "xmas",
	ModeBreathe:  "breathe",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode looks a mode up by its exact name.
func ParseMode(name string) (Mode, bool) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), true
		}
	}
	return 0, false
}

// ModeNames lists every mode name in declaration order.
func ModeNames() []string {
	return append([]string(nil), modeNames[:]...)
}

// Controller builds animations from mode names.
type Controller struct {
	config Config
	rng    *rand.Rand
}

// NewController creates an instance of a Controller.
func NewController(config Config, rng *rand.Rand) *Controller {
	c := new(Controller)
	c.config = config
	c.rng = rng
	return c
}

// NewAnimation creates the animation for a mode. The colour mode takes its
// hex value from args. A name that is not a mode is tried as a hex colour
// before being rejected.
func (c *Controller) NewAnimation(name string, args []string) (Animation, error) {
	m, ok := ParseMode(name)
	if !ok {
		a, err := NewColour(name)
		if err != nil {
			return nil, errors.WithStackTraceAndPrefix(ErrUnknownMode,
				"%q is not one of %s and is not a six digit hex colour", name, strings.Join(ModeNames(), ", "))
		}
		return a, nil
	}

	cfg := c.config
	effects := cfg.Effects
	switch m {
	case ModeRainbow:
		return NewRainbow(cfg.PixelCount, cfg.Calibration, effects.Rainbow)
	case ModeFade:
		return NewFade(cfg.Calibration, effects.Fade)
	case ModeSunrise:
		return NewSunrise(effects.Sunrise)
	case ModeZap:
		return NewZap(cfg.PixelCount, effects.Zap)
	case ModeStrobe:
		return NewStrobe(effects.Strobe)
	case ModeColour:
		if len(args) < 1 {
			return nil, errors.WithStackTraceAndPrefix(ErrBadColour, "colour mode needs a hex colour argument")
		}
		return NewColour(args[0])
	case ModeChase:
		return NewChase(cfg.PixelCount, effects.Chase)
	case ModeTwinkle:
		return NewTwinkle(cfg.PixelCount, effects.Twinkle, c.rng)
	case ModeTwinkle2:
		return NewTwinkle2(cfg.PixelCount, cfg.Calibration, effects.Twinkle2, c.rng)
	case ModeXmas:
		return NewXmas(cfg.PixelCount, effects.Xmas, c.rng)
	case ModeBreathe:
		return NewBreathe(effects.Breathe)
	}

	return nil, errors.WithStackTraceAndPrefix(ErrUnknownMode, "mode %s", m)
}
