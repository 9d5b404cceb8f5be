package stream

import (
	"fmt"

	"github.com/gruntwork-io/go-commons/errors"
)

// Command is the tag byte that starts every message.
type Command byte

const (
	// CommandSolid sets the whole strip to one colour.
	CommandSolid Command = 0x01
	// CommandPerPixel sets every pixel individually.
	CommandPerPixel Command = 0x03
)

func (c Command) String() string {
	switch c {
	case CommandSolid:
		return "solid"
	case CommandPerPixel:
		return "per-pixel"
	}
	return fmt.Sprintf("command(0x%02x)", byte(c))
}

// Pixel is one RGB light element.
type Pixel struct {
	R, G, B uint8
}

var (
	black = Pixel{}
	white = Pixel{R: 255, G: 255, B: 255}
	red   = Pixel{R: 255}
	green = Pixel{G: 255}
)

// Frame represents the colour state of the strip at one instant.
type Frame struct {
	command Command
	pixels  []Pixel
}

// NewSolidFrame creates a frame that paints the whole strip with p.
func NewSolidFrame(p Pixel) *Frame {
	f := new(Frame)
	f.command = CommandSolid
	f.pixels = []Pixel{p}
	return f
}

// NewPixelFrame creates a dark per-pixel frame of n pixels.
func NewPixelFrame(n int) *Frame {
	f := new(Frame)
	f.command = CommandPerPixel
	f.pixels = make([]Pixel, n)
	return f
}

// Command reports which kind of message the frame encodes to.
func (f *Frame) Command() Command {
	return f.command
}

// Len is the number of pixels carried by the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel returns the colour at index i.
func (f *Frame) Pixel(i int) Pixel {
	return f.pixels[i]
}

// SetPixel sets the colour at index i.
func (f *Frame) SetPixel(i int, p Pixel) {
	f.pixels[i] = p
}

// Fill paints every pixel in the frame with p.
func (f *Frame) Fill(p Pixel) {
	for i := range f.pixels {
		f.pixels[i] = p
	}
}

// MarshalBinary converts a Frame into its wire form: the command tag followed
// by one RGB triple per pixel, pixel 0 first.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 1, len(f.pixels)*3+1)
	data[0] = byte(f.command)
	for _, p := range f.pixels {
		data = append(data, p.R, p.G, p.B)
	}

	return data, nil
}

// Encoder serialises frames for a strip of a fixed length.
type Encoder struct {
	PixelCount int
}

// Encode checks the frame against the strip and returns its wire bytes.
func (e Encoder) Encode(f *Frame) ([]byte, error) {
	switch f.command {
	case CommandSolid:
		if len(f.pixels) != 1 {
			return nil, errors.WithStackTraceAndPrefix(ErrPixelCount, "solid frame carries %d pixels", len(f.pixels))
		}
	case CommandPerPixel:
		if len(f.pixels) != e.PixelCount {
			return nil, errors.WithStackTraceAndPrefix(ErrPixelCount, "got %d pixels for a strip of %d", len(f.pixels), e.PixelCount)
		}
	default:
		return nil, errors.WithStackTrace(fmt.Errorf("unknown %s", f.command))
	}

	return f.MarshalBinary()
}
