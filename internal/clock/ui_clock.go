package clock

import (
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
)

// UIClock runs timers on Go's runtime and delivers every callback on the Fyne
// UI goroutine. Stop must be called from the UI goroutine; after it returns the
// callback will not run, even if a firing was already queued.
type UIClock struct {
	dispatch func(func())
}

// NewUIClock creates a clock that posts callbacks through fyne.Do
func NewUIClock() *UIClock {
	return &UIClock{dispatch: fyne.Do}
}

// Now returns the wall clock time
func (c *UIClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f once after d
func (c *UIClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &uiTimer{}
	t.timer = time.AfterFunc(d, func() {
		c.dispatch(func() {
			if t.stopped.Swap(true) {
				return
			}
			f()
		})
	})
	return t
}

// TickFunc schedules f every interval until stopped
func (c *UIClock) TickFunc(interval time.Duration, f func()) Timer {
	t := &uiTicker{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				c.dispatch(func() {
					if t.stopped.Load() {
						return
					}
					f()
				})
			}
		}
	}()
	return t
}

type uiTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (t *uiTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	t.timer.Stop()
	return true
}

type uiTicker struct {
	ticker  *time.Ticker
	done    chan struct{}
	stopped atomic.Bool
}

func (t *uiTicker) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	t.ticker.Stop()
	close(t.done)
	return true
}
