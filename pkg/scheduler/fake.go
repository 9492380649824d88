package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manual scheduler for tests. Time only moves when Advance
// is called; due tasks run synchronously on the advancing goroutine in
// schedule order (ties broken by insertion order).
type Fake struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []fakeTask
}

type fakeTask struct {
	due  time.Time
	seq  int
	task func()
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Schedule(delay time.Duration, task func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.tasks = append(f.tasks, fakeTask{due: f.now.Add(delay), seq: f.seq, task: task})
}

// Advance moves the clock forward and fires every task that has come
// due, including tasks scheduled by tasks fired during this call.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		idx := -1
		sort.SliceStable(f.tasks, func(i, j int) bool {
			if f.tasks[i].due.Equal(f.tasks[j].due) {
				return f.tasks[i].seq < f.tasks[j].seq
			}
			return f.tasks[i].due.Before(f.tasks[j].due)
		})
		for i, t := range f.tasks {
			if !t.due.After(target) {
				idx = i
				break
			}
		}
		if idx == -1 {
			f.now = target
			f.mu.Unlock()
			return
		}
		next := f.tasks[idx]
		f.tasks = append(f.tasks[:idx], f.tasks[idx+1:]...)
		if next.due.After(f.now) {
			f.now = next.due
		}
		f.mu.Unlock()

		next.task()
	}
}
