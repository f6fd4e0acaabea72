package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
)

func nearPos(a, b fyne.Position) bool {
	const eps = 1e-3
	return math.Abs(float64(a.X-b.X)) < eps && math.Abs(float64(a.Y-b.Y)) < eps
}

func TestVisibleSegments(t *testing.T) {
	tests := []struct {
		progress float64
		segments int
		expected int
	}{
		{0, 72, 0},
		{-0.5, 72, 0},
		{math.NaN(), 72, 0},
		{0.001, 72, 1},
		{0.1, 72, 8},
		{0.25, 72, 18},
		{0.5, 72, 36},
		{0.999, 72, 72},
		{1, 72, 72},
		{3, 72, 72},
		{0.5, 0, 0},
	}

	for _, test := range tests {
		if got := VisibleSegments(test.progress, test.segments); got != test.expected {
			t.Errorf("VisibleSegments(%v, %d) = %d, want %d", test.progress, test.segments, got, test.expected)
		}
	}
}

func TestRingPoint(t *testing.T) {
	center := fyne.NewPos(35, 35)
	radius := float32(33)

	tests := []struct {
		fraction float64
		expected fyne.Position
	}{
		{0, fyne.NewPos(35, 2)},     // top
		{0.25, fyne.NewPos(68, 35)}, // right, clockwise
		{0.5, fyne.NewPos(35, 68)},  // bottom
		{0.75, fyne.NewPos(2, 35)},  // left
		{1, fyne.NewPos(35, 2)},     // back to top
	}

	for _, test := range tests {
		if got := RingPoint(center, radius, test.fraction); !nearPos(got, test.expected) {
			t.Errorf("RingPoint(%v) = %v, want %v", test.fraction, got, test.expected)
		}
	}
}

func TestRingGeometry(t *testing.T) {
	center := fyne.NewPos(35, 35)
	radius := float32(33)

	if segments := RingGeometry(center, radius, 0, RingSegments); segments != nil {
		t.Errorf("Expected no segments at progress 0, got %d", len(segments))
	}

	quarter := RingGeometry(center, radius, 0.25, RingSegments)
	if len(quarter) != RingSegments/4 {
		t.Fatalf("Expected %d segments at a quarter, got %d", RingSegments/4, len(quarter))
	}
	if !nearPos(quarter[0].From, fyne.NewPos(35, 2)) {
		t.Errorf("Ring should start at the top, got %v", quarter[0].From)
	}
	if !nearPos(quarter[len(quarter)-1].To, fyne.NewPos(68, 35)) {
		t.Errorf("Quarter ring should end at the right, got %v", quarter[len(quarter)-1].To)
	}
	for i := 1; i < len(quarter); i++ {
		if !nearPos(quarter[i-1].To, quarter[i].From) {
			t.Errorf("Segment %d should start where segment %d ends", i, i-1)
		}
	}

	full := RingGeometry(center, radius, 1, RingSegments)
	if len(full) != RingSegments {
		t.Fatalf("Expected %d segments when full, got %d", RingSegments, len(full))
	}
	if !nearPos(full[len(full)-1].To, full[0].From) {
		t.Error("Full ring should close on its start point")
	}
}

func TestRingGeometryPartialSegment(t *testing.T) {
	center := fyne.NewPos(0, 0)
	progress := 0.1

	segments := RingGeometry(center, 10, progress, RingSegments)
	last := segments[len(segments)-1]
	if !nearPos(last.To, RingPoint(center, 10, progress)) {
		t.Errorf("Last segment should end at the progress angle, got %v", last.To)
	}
}
