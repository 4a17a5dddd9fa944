package session

// timerFiredMsg is delivered when a scheduled orchestrator timer is due.
// owner ties the message to one play-through so ticks from a level that
// was left are ignored.
type timerFiredMsg struct {
	owner *teaScheduler
	id    int
}

// persistedMsg reports the outcome of an event write.
type persistedMsg struct {
	what string
	err  error
}
