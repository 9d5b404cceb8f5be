package stream

import "time"

// An Animation implements a way to render a specific animation.
//
// CalculateFrame advances the animation by one tick and returns the frame to
// send together with how long it should be held before the next tick. A nil
// frame means the animation has finished.
type Animation interface {
	CalculateFrame() (*Frame, time.Duration)
}
