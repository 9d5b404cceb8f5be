package stream

import (
	"testing"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, name := range ModeNames() {
		m, ok := ParseMode(name)
		require.True(t, ok, name)
		assert.Equal(t, name, m.String())
	}

	_, ok := ParseMode("Rainbow")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Mode(99).String())
}

func TestControllerBuildsEveryMode(t *testing.T) {
	t.Parallel()

	c := NewController(DefaultConfig(), newTestRand())
	for _, name := range ModeNames() {
		a, err := c.NewAnimation(name, []string{"00FF00"})
		require.NoError(t, err, name)

		f, _ := a.CalculateFrame()
		require.NotNil(t, f, name)
		_, err = Encoder{PixelCount: DefaultPixelCount}.Encode(f)
		assert.NoError(t, err, name)
	}
}

func TestControllerColourNeedsArgument(t *testing.T) {
	t.Parallel()

	c := NewController(DefaultConfig(), newTestRand())
	_, err := c.NewAnimation("colour", nil)
	require.Error(t, err)
	assert.Equal(t, ErrBadColour, errors.Unwrap(err))
}

func TestControllerFallsBackToHexColour(t *testing.T) {
	t.Parallel()

	c := NewController(DefaultConfig(), newTestRand())
	a, err := c.NewAnimation("0000ff", nil)
	require.NoError(t, err)

	f, _ := a.CalculateFrame()
	assert.Equal(t, Pixel{B: 255}, f.Pixel(0))
}

func TestControllerRejectsUnknownModes(t *testing.T) {
	t.Parallel()

	c := NewController(DefaultConfig(), newTestRand())
	for _, name := range []string{"rainbo", "", "FFFFFFF", "twinkle3"} {
		_, err := c.NewAnimation(name, nil)
		require.Error(t, err, name)
		assert.Equal(t, ErrUnknownMode, errors.Unwrap(err), name)
		assert.Contains(t, err.Error(), "rainbow", name)
	}
}

func TestControllerPassesSettings(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Effects.Chase.Buckets = 0
	c := NewController(cfg, newTestRand())

	_, err := c.NewAnimation("chase", nil)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidParameter, errors.Unwrap(err))
}
