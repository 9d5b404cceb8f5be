package stream

import (
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledsend/util"
)

const hexDigits = "0123456789abcdefABCDEF"

// Calibration holds the full-scale output of each channel after HSV conversion.
type Calibration struct {
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`
}

var (
	// FullScale maps every channel onto 0-255.
	FullScale = Calibration{Red: 255, Green: 255, Blue: 255}

	// WarmFixture compensates for fixtures whose green and blue emitters
	// overpower red.
	WarmFixture = Calibration{Red: 255, Green: 100, Blue: 50}
)

// HsvToPixel converts a hue in degrees plus saturation and value in [0, 1]
// into a full-scale pixel.
func HsvToPixel(h, s, v float64) Pixel {
	return FullScale.HsvToPixel(h, s, v)
}

// HsvToPixel converts HSV to a pixel, truncating each channel after scaling
// it by the calibration.
func (c Calibration) HsvToPixel(h, s, v float64) Pixel {
	col := colorful.Hsv(util.WrapHue(h), s, v)
	return Pixel{
		R: scaleChannel(col.R, c.Red),
		G: scaleChannel(col.G, c.Green),
		B: scaleChannel(col.B, c.Blue),
	}
}

func scaleChannel(v, fullScale float64) uint8 {
	return uint8(util.Clamp(v*fullScale, 0, 255))
}

// ParseHexColour reads a colour written as six hex digits, e.g. "FF8000".
func ParseHexColour(s string) (Pixel, error) {
	if len(s) != 6 || strings.Trim(s, hexDigits) != "" {
		return Pixel{}, errors.WithStackTraceAndPrefix(ErrBadColour, "parsing colour %q", s)
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Pixel{}, errors.WithStackTraceAndPrefix(ErrBadColour, "parsing colour %q", s)
	}

	r, g, b := c.RGB255()
	return Pixel{R: r, G: g, B: b}, nil
}
