package stream

import "errors"

var (
	// ErrBadColour is returned for colour strings that are not exactly six hex digits.
	ErrBadColour = errors.New("colour must be exactly 6 hexadecimal digits")

	// ErrPixelCount is returned when a per-pixel frame does not match the configured strip length.
	ErrPixelCount = errors.New("frame pixel count does not match strip")

	// ErrInvalidParameter is returned when an animation is constructed with unusable settings.
	ErrInvalidParameter = errors.New("invalid animation parameter")

	// ErrUnknownMode is returned when a mode name is neither known nor a hex colour.
	ErrUnknownMode = errors.New("unknown mode")
)
