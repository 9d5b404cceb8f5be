package stream

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partialConfig = `
destination:
  host: 10.0.0.5
  port: 7777
pixelCount: 3
calibration:
  red: 255
  green: 100
  blue: 50
effects:
  chase:
    buckets: 3
    interval: 25ms
  zap:
    bounce: true
`

func TestLoadConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledsend.yaml")
	require.NoError(t, os.WriteFile(path, []byte(partialConfig), 0o600))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "10.0.0.5", c.Destination.Host)
	assert.Equal(t, 7777, c.Destination.Port)
	assert.Equal(t, 3, c.PixelCount)
	assert.Equal(t, WarmFixture, c.Calibration)
	assert.Equal(t, ChaseSettings{Buckets: 3, Interval: 25 * time.Millisecond}, c.Effects.Chase)
	assert.True(t, c.Effects.Zap.Bounce)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Effects.Zap.Pause, c.Effects.Zap.Pause)
	assert.Equal(t, defaults.Effects.Rainbow, c.Effects.Rainbow)
	assert.Equal(t, defaults.Effects.Twinkle, c.Effects.Twinkle)
	assert.Equal(t, "ledsend/frames", c.Mqtt.Topic)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYaml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pixelCount: [1, 2"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	assert.NoError(t, c.Validate())
	assert.Equal(t, DefaultPixelCount, c.PixelCount)
	assert.Equal(t, FullScale, c.Calibration)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	c.PixelCount = 0
	err := c.Validate()
	require.Error(t, err)
	assert.Equal(t, ErrInvalidParameter, errors.Unwrap(err))

	c = DefaultConfig()
	c.Destination.Port = 70000
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Calibration.Green = 300
	assert.Error(t, c.Validate())
}
