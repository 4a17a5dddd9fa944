package session

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// teaScheduler runs orchestrator timers through the bubbletea event
// loop. Each AfterFunc queues a tea.Tick; the callback runs when the
// matching timerFiredMsg reaches the screen, so the orchestrator is only
// ever touched from Update.
type teaScheduler struct {
	seq    int
	timers map[int]func()
	queued []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{timers: make(map[int]func())}
}

func (s *teaScheduler) AfterFunc(d time.Duration, f func()) func() {
	s.seq++
	id := s.seq
	s.timers[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{owner: s, id: id}
	}))
	return func() { delete(s.timers, id) }
}

// Fire runs the callback for id unless it was cancelled.
func (s *teaScheduler) Fire(id int) {
	f, ok := s.timers[id]
	if !ok {
		return
	}
	delete(s.timers, id)
	f()
}

// Drain returns the ticks queued since the last call.
func (s *teaScheduler) Drain() []tea.Cmd {
	q := s.queued
	s.queued = nil
	return q
}

// Stop drops every pending callback. Ticks already in flight arrive as
// no-ops.
func (s *teaScheduler) Stop() {
	clear(s.timers)
	s.queued = nil
}

// Pending reports the number of live timers.
func (s *teaScheduler) Pending() int {
	return len(s.timers)
}
