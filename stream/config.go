package stream

import (
	"os"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"gopkg.in/yaml.v2"
)

// DefaultPixelCount is the strip length the reference fixture firmware is built for.
const DefaultPixelCount = 50

// IntervalSettings configures animations that only have a tick interval.
type IntervalSettings struct {
	Interval time.Duration `yaml:"interval"`
}

// SunriseSettings configures the sunrise ramp.
type SunriseSettings struct {
	Delay time.Duration `yaml:"delay"`
}

// ZapSettings configures the single-pixel sweep.
type ZapSettings struct {
	Interval time.Duration `yaml:"interval"`
	Pause    time.Duration `yaml:"pause"`
	Bounce   bool          `yaml:"bounce"`
}

// StrobeSettings configures the on and off hold times.
type StrobeSettings struct {
	On  time.Duration `yaml:"on"`
	Off time.Duration `yaml:"off"`
}

// ChaseSettings configures the bucketed chase.
type ChaseSettings struct {
	Buckets  int           `yaml:"buckets"`
	Interval time.Duration `yaml:"interval"`
}

// TwinkleSettings configures both twinkle variants.
type TwinkleSettings struct {
	Interval   time.Duration `yaml:"interval"`
	SpawnEvery time.Duration `yaml:"spawnEvery"`
	Floor      int           `yaml:"floor"`
	Ceiling    int           `yaml:"ceiling"`
	Step       int           `yaml:"step"`
}

// BreatheSettings configures the breathing solid colour.
type BreatheSettings struct {
	Interval time.Duration `yaml:"interval"`
	Steps    int           `yaml:"steps"`
	Colour   string        `yaml:"colour"`
}

// EffectsConfig groups the per-animation settings.
type EffectsConfig struct {
	Rainbow  IntervalSettings `yaml:"rainbow"`
	Fade     IntervalSettings `yaml:"fade"`
	Sunrise  SunriseSettings  `yaml:"sunrise"`
	Zap      ZapSettings      `yaml:"zap"`
	Strobe   StrobeSettings   `yaml:"strobe"`
	Chase    ChaseSettings    `yaml:"chase"`
	Twinkle  TwinkleSettings  `yaml:"twinkle"`
	Twinkle2 TwinkleSettings  `yaml:"twinkle2"`
	Xmas     IntervalSettings `yaml:"xmas"`
	Breathe  BreatheSettings  `yaml:"breathe"`
}

// Config holds everything fixed for the lifetime of a run.
type Config struct {
	Destination struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"destination"`
	PixelCount  int           `yaml:"pixelCount"`
	Seed        int64         `yaml:"seed"`
	Calibration Calibration   `yaml:"calibration"`
	Effects     EffectsConfig `yaml:"effects"`
	Mqtt        struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topic    string `yaml:"topic"`
	} `yaml:"mqtt"`
	Api struct {
		Listen string `yaml:"listen"`
	} `yaml:"api"`
}

// DefaultConfig returns the settings used when no config file overrides them.
func DefaultConfig() Config {
	var c Config
	c.PixelCount = DefaultPixelCount
	c.Calibration = FullScale
	c.Mqtt.Topic = "ledsend/frames"
	c.Effects = EffectsConfig{
		Rainbow: IntervalSettings{Interval: 50 * time.Millisecond},
		Fade:    IntervalSettings{Interval: 50 * time.Millisecond},
		Sunrise: SunriseSettings{Delay: 10 * time.Second},
		Zap: ZapSettings{
			Interval: 10 * time.Millisecond,
			Pause:    500 * time.Millisecond,
		},
		Strobe: StrobeSettings{On: time.Millisecond, Off: 500 * time.Millisecond},
		Chase:  ChaseSettings{Buckets: 5, Interval: 100 * time.Millisecond},
		Twinkle: TwinkleSettings{
			Interval:   10 * time.Millisecond,
			SpawnEvery: 200 * time.Millisecond,
			Floor:      10,
			Ceiling:    250,
			Step:       5,
		},
		Twinkle2: TwinkleSettings{
			Interval:   50 * time.Millisecond,
			SpawnEvery: 200 * time.Millisecond,
			Floor:      10,
			Ceiling:    250,
			Step:       5,
		},
		Xmas: IntervalSettings{Interval: 200 * time.Millisecond},
		Breathe: BreatheSettings{
			Interval: 20 * time.Millisecond,
			Steps:    200,
			Colour:   "FFFFFF",
		},
	}
	return c
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, errors.WithStackTrace(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, errors.WithStackTraceAndPrefix(err, "decoding %s", path)
	}

	return c, nil
}

// Validate checks the settings shared by every animation. Animation specific
// settings are checked when the animation is constructed.
func (c Config) Validate() error {
	if c.PixelCount < 1 {
		return errors.WithStackTraceAndPrefix(ErrInvalidParameter, "pixel count %d", c.PixelCount)
	}
	if c.Destination.Port < 0 || c.Destination.Port > 65535 {
		return errors.WithStackTraceAndPrefix(ErrInvalidParameter, "port %d", c.Destination.Port)
	}
	for _, v := range []float64{c.Calibration.Red, c.Calibration.Green, c.Calibration.Blue} {
		if v < 0 || v > 255 {
			return errors.WithStackTraceAndPrefix(ErrInvalidParameter, "calibration %+v", c.Calibration)
		}
	}
	return nil
}
