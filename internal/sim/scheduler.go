package sim

import (
	"container/heap"
	"time"
)

// Scheduler runs delayed one-shot callbacks against session wall-clock time,
// independent of frame rate. Timers cannot be cancelled: a callback
// scheduled for an entity fires even if that entity changed in between.
type Scheduler struct {
	now    func() time.Duration
	timers timerHeap
	seq    uint64
}

type timer struct {
	at     time.Duration
	seq    uint64
	entity EntityID
	kind   string
	fn     func()
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any) { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// NewScheduler creates a scheduler reading the current session time from now.
func NewScheduler(now func() time.Duration) *Scheduler {
	return &Scheduler{now: now}
}

// After schedules fn to run once d from now, keyed by entity and kind.
func (s *Scheduler) After(d time.Duration, entity EntityID, kind string, fn func()) {
	s.seq++
	heap.Push(&s.timers, &timer{
		at:     s.now() + d,
		seq:    s.seq,
		entity: entity,
		kind:   kind,
		fn:     fn,
	})
}

// RunDue fires every timer due at or before now in due-time order and
// returns how many fired. Callbacks may schedule further timers.
func (s *Scheduler) RunDue(now time.Duration) int {
	fired := 0
	for len(s.timers) > 0 && s.timers[0].at <= now {
		t := heap.Pop(&s.timers).(*timer)
		t.fn()
		fired++
	}
	return fired
}

// Pending lists the kinds of timers still waiting for entity.
func (s *Scheduler) Pending(entity EntityID) []string {
	var out []string
	for _, t := range s.timers {
		if t.entity == entity {
			out = append(out, t.kind)
		}
	}
	return out
}

// Len returns the number of waiting timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}
