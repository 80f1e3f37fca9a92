package game

// FrameFunc runs one frame at a timestamp in milliseconds.
type FrameFunc func(timestampMs float64)

// Scheduler arranges for a frame callback to run at the next display frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// FrameScheduler holds at most one pending frame callback. The host fires it
// once per display frame with the current timestamp.
type FrameScheduler struct {
	pending FrameFunc
}

// RequestFrame replaces the pending callback.
func (s *FrameScheduler) RequestFrame(fn FrameFunc) {
	s.pending = fn
}

// Pending reports whether a callback is waiting.
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// Fire runs the pending callback, if any, and reports whether one ran.
// The callback may request the next frame while it runs.
func (s *FrameScheduler) Fire(timestampMs float64) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(timestampMs)
	return true
}
