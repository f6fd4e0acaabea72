package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestMobileUIDesktop(t *testing.T) {
	test.NewApp()
	m := NewMobileUI(nil)

	if m.IsMobileDevice() {
		t.Error("A nil device should not be mobile")
	}
	if m.SplitOffset() != desktopSplitOffset {
		t.Errorf("Expected desktop split offset, got %v", m.SplitOffset())
	}

	row := m.ActionRow(widget.NewButton("a", nil), widget.NewButton("b", nil))
	if len(row.Objects) != 2 {
		t.Errorf("Expected 2 cells, got %d", len(row.Objects))
	}
}

func TestTouchTargetMinSize(t *testing.T) {
	target := touchTarget()
	if target.MinSize().Height < MinTouchTargetSize {
		t.Errorf("Touch target should be at least %v high, got %v", MinTouchTargetSize, target.MinSize().Height)
	}
}
