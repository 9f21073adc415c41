package chase

// Handle identifies a pending callback. The zero Handle is never issued.
type Handle uint64

type timer struct {
	id  Handle
	due float64
	fn  func()
}

// Scheduler runs one-shot callbacks against the simulation clock instead of
// wall time, so a paused or frozen session never fires anything.
type Scheduler struct {
	now    float64
	nextID Handle
	timers []timer
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make([]timer, 0, 4)}
}

// Now returns the scheduler clock in milliseconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After schedules fn to run once the clock has advanced by delay milliseconds.
func (s *Scheduler) After(delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, due: s.now + delay, fn: fn})
	return s.nextID
}

// Cancel drops a pending callback. It reports whether the handle was still pending.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, t := range s.timers {
		if t.id == h {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of callbacks waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves the clock forward and fires every callback that became due,
// earliest first. While a callback runs the clock reads its due time, so
// callbacks that reschedule themselves keep an exact cadence.
func (s *Scheduler) Advance(dt float64) {
	target := s.now
	if dt > 0 {
		target += dt
	}
	for {
		idx := -1
		for i, t := range s.timers {
			if t.due <= target && (idx < 0 || t.due < s.timers[idx].due) {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		t := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		if t.due > s.now {
			s.now = t.due
		}
		t.fn()
	}
	s.now = target
}

// Clear drops every pending callback.
func (s *Scheduler) Clear() {
	s.timers = s.timers[:0]
}
