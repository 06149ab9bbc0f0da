package usecase

import (
	"sync"
	"testing"
	"time"
)

func TestWaitTimersReplaceExisting(t *testing.T) {
	w := newWaitTimers()
	defer w.Stop()

	fired := make(chan string, 2)
	w.Schedule(1, time.Hour, func() { fired <- "first" })
	w.Schedule(1, time.Millisecond, func() { fired <- "second" })

	select {
	case got := <-fired:
		if got != "second" {
			t.Fatalf("expected replacement callback, got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
	if w.Armed(1) {
		t.Fatal("fired timer still armed")
	}
}

func TestWaitTimersCancelAndStop(t *testing.T) {
	w := newWaitTimers()

	var (
		mu    sync.Mutex
		calls int
	)
	fn := func() {
		mu.Lock()
		calls++
		mu.Unlock()
	}

	w.Schedule(1, 20*time.Millisecond, fn)
	w.Cancel(1)
	w.Schedule(2, 20*time.Millisecond, fn)
	w.Stop()
	w.Schedule(3, time.Millisecond, fn)

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Fatalf("expected no callbacks, got %d", calls)
	}
	if w.Armed(3) {
		t.Fatal("schedule after stop must be ignored")
	}
}

func TestCampaignLocksSerialise(t *testing.T) {
	l := newCampaignLocks()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		overlap bool
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.lock(7)
			defer unlock()

			mu.Lock()
			inside++
			if inside > 1 {
				overlap = true
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()
	if overlap {
		t.Fatal("two evaluations of one campaign overlapped")
	}
}
