package transport

import "sync"

// Recorder keeps every frame sent to it. It stands in for a fixture when
// previewing or testing animations.
type Recorder struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return new(Recorder)
}

// Send stores a copy of b.
func (r *Recorder) Send(b []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, append([]byte(nil), b...))
	return nil
}

// Close marks the Recorder closed. Frames remain readable.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Frames returns the frames sent so far, oldest first.
func (r *Recorder) Frames() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.frames...)
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
