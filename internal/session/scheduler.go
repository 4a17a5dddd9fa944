package session

import (
	"sort"
	"time"
)

// Scheduler runs callbacks after a delay. Callbacks must run on the
// same goroutine that drives the orchestrator.
type Scheduler interface {
	// AfterFunc schedules f after d. The returned cancel prevents f from
	// running if it has not run yet.
	AfterFunc(d time.Duration, f func()) (cancel func())
}

// ManualScheduler is a virtual clock. Nothing fires until Advance.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	at  time.Duration
	seq int
	f   func()
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) func() {
	s.seq++
	t := &manualTimer{at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return func() { s.remove(t) }
}

// Advance moves the clock forward by d, firing due callbacks in order.
// Callbacks scheduled while advancing fire too if they fall due.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.next()
		if next == nil || next.at > target {
			break
		}
		s.remove(next)
		s.now = next.at
		next.f()
	}
	s.now = target
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of scheduled callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

func (s *ManualScheduler) next() *manualTimer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	return s.pending[0]
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
