package game

import "sort"

// Scheduler runs deferred callbacks against the simulation clock. Tasks
// fire on a later frame's main-thread tick; there is no concurrency here,
// just bookkeeping over elapsed time.
type Scheduler struct {
	now   float64
	seq   int
	tasks []task
}

type task struct {
	at  float64
	seq int // stable order for tasks due on the same frame
	fn  func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues fn to run delay seconds from now.
func (s *Scheduler) Schedule(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.tasks = append(s.tasks, task{at: s.now + delay, seq: s.seq, fn: fn})
	s.seq++
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// Clear drops all queued tasks, e.g. on round restart.
func (s *Scheduler) Clear() { s.tasks = s.tasks[:0] }

// Advance moves the clock forward and fires every task that has come due,
// in due-time order. Tasks scheduled by a firing task run on a later
// Advance, never recursively within this one.
func (s *Scheduler) Advance(dt float64) {
	s.now += dt

	var due []task
	rest := s.tasks[:0]
	for _, t := range s.tasks {
		if t.at <= s.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.tasks = rest

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}
