// Package scheduler abstracts delayed one-shot tasks behind a clock so
// the path generator and the chat auto-responder can be driven by
// virtual time in tests. Scheduled tasks cannot be cancelled: once
// scheduled they always fire.
package scheduler

import "time"

type Scheduler interface {
	Now() time.Time
	Schedule(delay time.Duration, task func())
}

type realScheduler struct{}

func New() Scheduler {
	return realScheduler{}
}

func (realScheduler) Now() time.Time {
	return time.Now()
}

func (realScheduler) Schedule(delay time.Duration, task func()) {
	time.AfterFunc(delay, task)
}
