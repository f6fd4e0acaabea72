package ui

import (
	"math"

	"fyne.io/fyne/v2"
)

// RingSegments is how many straight lines approximate the full progress ring
const RingSegments = 72

// ringStartAngle puts progress 0 at twelve o'clock
const ringStartAngle = -math.Pi / 2

// RingSegment is one straight piece of the progress ring
type RingSegment struct {
	From fyne.Position
	To   fyne.Position
}

// VisibleSegments returns how many of segments are drawn for progress.
// Any progress above 0 shows at least one segment.
func VisibleSegments(progress float64, segments int) int {
	if segments <= 0 || math.IsNaN(progress) || progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return segments
	}
	n := int(math.Ceil(progress*float64(segments) - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

// RingPoint returns the point at fraction of a clockwise turn starting at the top
func RingPoint(center fyne.Position, radius float32, fraction float64) fyne.Position {
	angle := ringStartAngle + fraction*2*math.Pi
	return fyne.NewPos(
		center.X+radius*float32(math.Cos(angle)),
		center.Y+radius*float32(math.Sin(angle)),
	)
}

// RingGeometry returns the segments that draw the ring up to progress. The
// last segment ends exactly at the progress angle.
func RingGeometry(center fyne.Position, radius float32, progress float64, segments int) []RingSegment {
	visible := VisibleSegments(progress, segments)
	if visible == 0 {
		return nil
	}
	if progress > 1 {
		progress = 1
	}

	out := make([]RingSegment, 0, visible)
	for i := 0; i < visible; i++ {
		from := float64(i) / float64(segments)
		to := float64(i+1) / float64(segments)
		if to > progress {
			to = progress
		}
		out = append(out, RingSegment{
			From: RingPoint(center, radius, from),
			To:   RingPoint(center, radius, to),
		})
	}
	return out
}
