package model

import "time"

// EventKind identifies an observer notification
type EventKind string

const (
	// EventPress is a completed tap released before the hold threshold
	EventPress EventKind = "press"

	// EventHoldStarted fires once when the hold threshold elapses
	EventHoldStarted EventKind = "hold_started"

	// EventProgressChanged fires on every tick and on every reset to zero
	EventProgressChanged EventKind = "progress_changed"

	// EventEndPress fires when a hold ends, manually or by auto-complete
	EventEndPress EventKind = "end_press"
)

// String returns the string representation of EventKind
func (k EventKind) String() string {
	return string(k)
}

// Notification is a recorded observer callback
type Notification struct {
	Kind     EventKind
	Progress float64 // only meaningful for EventProgressChanged
	At       time.Time
}
