package recorder

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/record-button/internal/model"
)

func TestEventLog_Bounded(t *testing.T) {
	now := epoch
	log := NewEventLog(3, func() time.Time {
		now = now.Add(time.Second)
		return now
	})

	log.OnPress(nil)
	log.OnHoldStarted(nil)
	log.OnProgressChanged(nil, 0.5)
	log.OnEndPress(nil)

	expected := []model.EventKind{model.EventHoldStarted, model.EventProgressChanged, model.EventEndPress}
	if diff := cmp.Diff(expected, log.Kinds()); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	entries := log.Entries()
	if entries[1].Progress != 0.5 {
		t.Errorf("Expected progress 0.5, got %v", entries[1].Progress)
	}
	if !entries[2].At.Equal(epoch.Add(4 * time.Second)) {
		t.Errorf("Expected last entry stamped at 4s, got %v", entries[2].At.Sub(epoch))
	}
}

func TestEventLog_OnAppendAndClear(t *testing.T) {
	log := NewEventLog(0, nil)
	var seen []model.EventKind
	log.OnAppend = func(n model.Notification) {
		seen = append(seen, n.Kind)
	}

	log.OnPress(nil)
	log.OnPress(nil)

	if log.Count(model.EventPress) != 2 {
		t.Errorf("Expected 2 presses, got %d", log.Count(model.EventPress))
	}
	if len(seen) != 2 {
		t.Errorf("Expected OnAppend to see 2 entries, saw %d", len(seen))
	}

	log.Clear()
	if len(log.Entries()) != 0 {
		t.Errorf("Expected empty log after Clear, got %d entries", len(log.Entries()))
	}
	if log.ProgressValues() != nil {
		t.Errorf("Expected no progress values, got %v", log.ProgressValues())
	}
}
