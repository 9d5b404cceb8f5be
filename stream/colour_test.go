package stream

import (
	"testing"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHsvPrimaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pixel{R: 255}, HsvToPixel(0, 1, 1))
	assert.Equal(t, Pixel{G: 255}, HsvToPixel(120, 1, 1))
	assert.Equal(t, Pixel{B: 255}, HsvToPixel(240, 1, 1))
	assert.Equal(t, Pixel{R: 255}, HsvToPixel(360, 1, 1))
	assert.Equal(t, Pixel{}, HsvToPixel(77, 1, 0))
}

func TestCalibrationScalesChannels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pixel{R: 255, G: 100, B: 50}, WarmFixture.HsvToPixel(0, 0, 1))
	assert.Equal(t, Pixel{G: 100}, WarmFixture.HsvToPixel(120, 1, 1))
	assert.Equal(t, Pixel{B: 50}, WarmFixture.HsvToPixel(240, 1, 1))
}

func TestParseHexColour(t *testing.T) {
	t.Parallel()

	p, err := ParseHexColour("FF0000")
	require.NoError(t, err)
	assert.Equal(t, Pixel{R: 255}, p)

	p, err = ParseHexColour("0a80fF")
	require.NoError(t, err)
	assert.Equal(t, Pixel{R: 0x0a, G: 0x80, B: 0xff}, p)
}

func TestParseHexColourRejectsBadInput(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "FFF", "FF00000", "GG0000", "#FF000", "rainbo", "12 456"} {
		_, err := ParseHexColour(s)
		if assert.Error(t, err, s) {
			assert.Equal(t, ErrBadColour, errors.Unwrap(err), s)
		}
	}
}
