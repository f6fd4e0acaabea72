package clock

import "time"

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	// Stop cancels the timer. It reports whether the call stopped a timer that
	// was still pending; calling it again is a no-op.
	Stop() bool
}

// Clock creates one-shot and repeating timers.
// Callbacks of a single Clock never run concurrently with each other.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
	TickFunc(interval time.Duration, f func()) Timer
}
