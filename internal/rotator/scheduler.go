package rotator

import (
	"sort"
	"sync"
	"time"
)

// Scheduler schedules functions to be called after a delay.
//
// The rotator is not safe for concurrent use, so a scheduler must call back on
// the goroutine the rotator is used from.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// LoopScheduler schedules via time.AfterFunc, but rather than calling back on
// the timer's goroutine it posts the function into a channel, from which the
// host's event loop receives and calls it.
type LoopScheduler struct {
	callbacks chan<- func()
	done      <-chan struct{}
}

// NewLoopScheduler returns a scheduler posting into callbacks. Once done is
// closed, due functions are dropped.
func NewLoopScheduler(callbacks chan<- func(), done <-chan struct{}) LoopScheduler {
	return LoopScheduler{callbacks: callbacks, done: done}
}

// AfterFunc posts f into the callback channel after d.
func (s LoopScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		select {
		case <-s.done:
			return
		default:
		}
		select {
		case s.callbacks <- f:
		case <-s.done:
		}
	})
}

// ManualScheduler is a scheduler driven by explicitly advancing its clock.
// Nothing is called back until Advance is called, which makes it suitable for
// tests and for hosts that drive their own clock.
type ManualScheduler struct {
	mtx     sync.Mutex
	now     time.Duration
	seq     int
	pending []scheduledFunc
}

type scheduledFunc struct {
	at  time.Duration
	seq int
	f   func()
}

// NewManualScheduler returns a new manual scheduler at time 0.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc schedules f to be called once the clock has been advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.seq++
	s.pending = append(s.pending, scheduledFunc{at: s.now + d, seq: s.seq, f: f})
}

// Advance advances the clock by d, calling all functions that become due in
// the order of their due time (and scheduling order, for equal due times).
// Functions scheduled by called functions are called as well, if they become
// due within d.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mtx.Lock()
	target := s.now + d
	s.mtx.Unlock()

	for {
		s.mtx.Lock()
		sort.SliceStable(s.pending, func(i, j int) bool {
			if s.pending[i].at != s.pending[j].at {
				return s.pending[i].at < s.pending[j].at
			}
			return s.pending[i].seq < s.pending[j].seq
		})
		if len(s.pending) == 0 || s.pending[0].at > target {
			s.now = target
			s.mtx.Unlock()
			return
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.now = next.at
		s.mtx.Unlock()

		next.f()
	}
}

// Pending returns the number of functions not yet called.
func (s *ManualScheduler) Pending() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.pending)
}
