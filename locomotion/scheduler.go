package locomotion

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scheduler holds the deferred jobs of one character. Each job has at most one pending timer; scheduling
// a pending job again restarts it at the back of the queue.
type Scheduler struct {
	timers *orderedmap.OrderedMap[Job, *gween.Tween]
	due    []Job
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: orderedmap.NewOrderedMap[Job, *gween.Tween]()}
}

// Schedule runs job after delay seconds of Advance.
func (s *Scheduler) Schedule(job Job, delay float32) {
	s.timers.Delete(job)
	s.timers.Set(job, gween.New(0, delay, max(delay, 0), ease.Linear))
}

// Cancel drops a pending job.
func (s *Scheduler) Cancel(job Job) bool {
	return s.timers.Delete(job)
}

// Pending reports whether job is waiting to run.
func (s *Scheduler) Pending(job Job) bool {
	_, ok := s.timers.Get(job)
	return ok
}

// Advance moves every timer forward by dt and returns the jobs that came due, in the order they were
// scheduled. The returned slice is reused by the next call.
func (s *Scheduler) Advance(dt float32) []Job {
	s.due = s.due[:0]
	for el := s.timers.Front(); el != nil; el = el.Next() {
		if _, finished := el.Value.Update(dt); finished {
			s.due = append(s.due, el.Key)
		}
	}
	for _, job := range s.due {
		s.timers.Delete(job)
	}
	return s.due
}

// Len returns the number of pending jobs.
func (s *Scheduler) Len() int {
	return s.timers.Len()
}

// Clear drops every pending job.
func (s *Scheduler) Clear() {
	for _, job := range s.timers.Keys() {
		s.timers.Delete(job)
	}
}
