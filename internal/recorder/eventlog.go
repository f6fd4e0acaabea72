package recorder

import (
	"time"

	"github.com/ytget/record-button/internal/model"
)

// DefaultEventLogSize bounds an EventLog created with a non-positive size
const DefaultEventLogSize = 256

// EventLog records notifications in order, keeping the most recent ones
type EventLog struct {
	now     func() time.Time
	limit   int
	entries []model.Notification
	// OnAppend, when set, is called after every recorded notification
	OnAppend func(model.Notification)
}

// NewEventLog creates an event log holding at most limit entries.
// now stamps each entry; nil means time.Now.
func NewEventLog(limit int, now func() time.Time) *EventLog {
	if limit <= 0 {
		limit = DefaultEventLogSize
	}
	if now == nil {
		now = time.Now
	}
	return &EventLog{now: now, limit: limit}
}

func (l *EventLog) OnPress(*Control) {
	l.append(model.Notification{Kind: model.EventPress})
}

func (l *EventLog) OnHoldStarted(*Control) {
	l.append(model.Notification{Kind: model.EventHoldStarted})
}

func (l *EventLog) OnProgressChanged(_ *Control, value float64) {
	l.append(model.Notification{Kind: model.EventProgressChanged, Progress: value})
}

func (l *EventLog) OnEndPress(*Control) {
	l.append(model.Notification{Kind: model.EventEndPress})
}

// Entries returns a copy of the recorded notifications, oldest first
func (l *EventLog) Entries() []model.Notification {
	return append([]model.Notification(nil), l.entries...)
}

// Kinds returns the kinds of the recorded notifications, oldest first
func (l *EventLog) Kinds() []model.EventKind {
	kinds := make([]model.EventKind, 0, len(l.entries))
	for _, entry := range l.entries {
		kinds = append(kinds, entry.Kind)
	}
	return kinds
}

// Count returns how many recorded notifications have the given kind
func (l *EventLog) Count(kind model.EventKind) int {
	count := 0
	for _, entry := range l.entries {
		if entry.Kind == kind {
			count++
		}
	}
	return count
}

// ProgressValues returns the values of the recorded progress notifications
func (l *EventLog) ProgressValues() []float64 {
	var values []float64
	for _, entry := range l.entries {
		if entry.Kind == model.EventProgressChanged {
			values = append(values, entry.Progress)
		}
	}
	return values
}

// Clear drops all recorded notifications
func (l *EventLog) Clear() {
	l.entries = nil
}

func (l *EventLog) append(n model.Notification) {
	n.At = l.now()
	l.entries = append(l.entries, n)
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
	if l.OnAppend != nil {
		l.OnAppend(n)
	}
}
