package usecase

import (
	"sync"
	"time"
)

// waitTimers holds at most one pending high-spend callback per campaign.
// The timers only fire early; the persisted due time is authoritative.
type waitTimers struct {
	mu      sync.Mutex
	timers  map[int64]*waitEntry
	stopped bool
}

type waitEntry struct {
	timer *time.Timer
}

func newWaitTimers() *waitTimers {
	return &waitTimers{timers: make(map[int64]*waitEntry)}
}

// Schedule replaces any pending callback for the campaign.
func (w *waitTimers) Schedule(id int64, d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if prev, ok := w.timers[id]; ok {
		prev.timer.Stop()
	}
	e := &waitEntry{}
	e.timer = time.AfterFunc(d, func() {
		w.mu.Lock()
		current := w.timers[id] == e
		if current {
			delete(w.timers, id)
		}
		w.mu.Unlock()
		if current {
			fn()
		}
	})
	w.timers[id] = e
}

func (w *waitTimers) Cancel(id int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if e, ok := w.timers[id]; ok {
		e.timer.Stop()
		delete(w.timers, id)
	}
}

func (w *waitTimers) Armed(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.timers[id]
	return ok
}

// Stop cancels every pending callback and ignores later Schedule calls.
func (w *waitTimers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	for id, e := range w.timers {
		e.timer.Stop()
		delete(w.timers, id)
	}
}
