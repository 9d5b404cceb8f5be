package transport

// Fanout sends every frame to several senders in order.
type Fanout struct {
	senders []Sender
}

// NewFanout creates a Fanout over senders. The first is usually the fixture.
func NewFanout(senders ...Sender) *Fanout {
	f := new(Fanout)
	f.senders = senders
	return f
}

// Send passes b to every sender and returns the first error, after all of
// them have been tried.
func (f *Fanout) Send(b []byte) error {
	var first error
	for _, s := range f.senders {
		if err := s.Send(b); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close closes every sender and returns the first error.
func (f *Fanout) Close() error {
	var first error
	for _, s := range f.senders {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
