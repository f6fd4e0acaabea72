package clock

import (
	"testing"
	"time"
)

// queueClock returns a UIClock whose dispatch queues callbacks instead of
// handing them to a running Fyne app, so the test plays the UI goroutine.
func queueClock() (*UIClock, chan func()) {
	queue := make(chan func(), 64)
	return &UIClock{dispatch: func(f func()) { queue <- f }}, queue
}

func TestUIClock_AfterFunc(t *testing.T) {
	clk, queue := queueClock()
	fired := 0
	clk.AfterFunc(time.Millisecond, func() { fired++ })

	select {
	case f := <-queue:
		f()
	case <-time.After(time.Second):
		t.Fatal("Expected timer firing to be dispatched")
	}

	if fired != 1 {
		t.Errorf("Expected callback to run once, ran %d times", fired)
	}
}

func TestUIClock_StopSuppressesQueuedFiring(t *testing.T) {
	clk, queue := queueClock()
	fired := false
	timer := clk.AfterFunc(time.Millisecond, func() { fired = true })

	var queued func()
	select {
	case queued = <-queue:
	case <-time.After(time.Second):
		t.Fatal("Expected timer firing to be dispatched")
	}

	// the firing is already queued; stopping on the UI goroutine must still win
	if !timer.Stop() {
		t.Error("Expected Stop to report the timer as pending")
	}
	queued()

	if fired {
		t.Error("Expected queued callback to be dropped after Stop")
	}
}

func TestUIClock_TickFuncStop(t *testing.T) {
	clk, queue := queueClock()
	ticks := 0
	ticker := clk.TickFunc(time.Millisecond, func() { ticks++ })

	for i := 0; i < 3; i++ {
		select {
		case f := <-queue:
			f()
		case <-time.After(time.Second):
			t.Fatal("Expected tick to be dispatched")
		}
	}
	if ticks != 3 {
		t.Fatalf("Expected 3 ticks, got %d", ticks)
	}

	ticker.Stop()
	if ticker.Stop() {
		t.Error("Expected second Stop to be a no-op")
	}

	// drain anything queued before Stop; none of it may run the callback
	deadline := time.After(20 * time.Millisecond)
	for {
		select {
		case f := <-queue:
			f()
		case <-deadline:
			if ticks != 3 {
				t.Errorf("Expected no ticks after Stop, got %d total", ticks)
			}
			return
		}
	}
}
