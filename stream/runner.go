package stream

import (
	"context"
	"math/rand"
)

// Runner plays a named animation to a fixture.
type Runner struct {
	controller *Controller
	streamer   *Streamer
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(config Config, sender Sender, clock Clock, rng *rand.Rand) *Runner {
	r := new(Runner)
	r.controller = NewController(config, rng)
	r.streamer = NewStreamer(sender, config.PixelCount, clock)
	return r
}

// Run builds the animation for name and streams it until it finishes or ctx
// is cancelled.
func (r *Runner) Run(ctx context.Context, name string, args []string) error {
	a, err := r.controller.NewAnimation(name, args)
	if err != nil {
		return err
	}
	return r.streamer.Run(ctx, name, a)
}

// Stats returns a snapshot of what has been sent.
func (r *Runner) Stats() Stats {
	return r.streamer.Stats()
}
