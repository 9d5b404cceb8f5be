package stream

import (
	"testing"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSolid(t *testing.T) {
	t.Parallel()

	b, err := Encoder{PixelCount: 50}.Encode(NewSolidFrame(Pixel{R: 1, G: 2, B: 3}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 1, 2, 3}, b)
}

func TestEncodePerPixel(t *testing.T) {
	t.Parallel()

	f := NewPixelFrame(3)
	f.SetPixel(0, Pixel{R: 10})
	f.SetPixel(2, Pixel{R: 1, G: 2, B: 3})

	b, err := Encoder{PixelCount: 3}.Encode(f)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 10, 0, 0, 0, 0, 0, 1, 2, 3}, b)
}

func TestEncodedLengths(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 50, 300} {
		e := Encoder{PixelCount: n}

		b, err := e.Encode(NewSolidFrame(white))
		require.NoError(t, err)
		assert.Len(t, b, 4)

		b, err = e.Encode(NewPixelFrame(n))
		require.NoError(t, err)
		assert.Len(t, b, 1+3*n)
	}
}

func TestEncodeRejectsWrongPixelCount(t *testing.T) {
	t.Parallel()

	_, err := Encoder{PixelCount: 3}.Encode(NewPixelFrame(2))
	require.Error(t, err)
	assert.Equal(t, ErrPixelCount, errors.Unwrap(err))
}

func TestFrameFill(t *testing.T) {
	t.Parallel()

	f := NewPixelFrame(4)
	f.Fill(red)
	assert.Equal(t, CommandPerPixel, f.Command())
	assert.Equal(t, 4, f.Len())
	for i := 0; i < f.Len(); i++ {
		assert.Equal(t, red, f.Pixel(i))
	}
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "solid", CommandSolid.String())
	assert.Equal(t, "per-pixel", CommandPerPixel.String())
	assert.Equal(t, "command(0x07)", Command(7).String())
}
