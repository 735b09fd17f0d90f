// Package walktimer implements the in-progress walk stopwatch. Nothing
// here touches storage; persisting the finished walk is the caller's job.
package walktimer

import "time"

// Timer is a two-state stopwatch: Idle or Running. Elapsed time is
// always recomputed from the wall clock rather than accumulated, so a
// suspended process still reports the true duration on resume.
type Timer struct {
	now       func() time.Time
	running   bool
	startedAt time.Time
}

func New() *Timer {
	return &Timer{now: time.Now}
}

// NewWithClock injects a clock, for tests.
func NewWithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// Start transitions Idle to Running and records the start instant.
// Starting an already running timer restarts it from zero.
func (t *Timer) Start() {
	t.running = true
	t.startedAt = t.now()
}

// Running reports whether a walk is in progress.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed returns whole seconds since Start, or 0 when idle.
func (t *Timer) Elapsed() int {
	if !t.running {
		return 0
	}
	return int(t.now().Sub(t.startedAt).Seconds())
}

// Stop transitions Running to Idle and returns the final elapsed
// seconds. Stopping an idle timer returns 0.
func (t *Timer) Stop() int {
	if !t.running {
		return 0
	}
	elapsed := t.Elapsed()
	t.running = false
	t.startedAt = time.Time{}
	return elapsed
}
