package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/record-button/internal/model"
	"github.com/ytget/record-button/internal/recorder"
)

// Record button geometry
const (
	RecordButtonSize      float32 = 70
	buttonBorderWidth     float32 = 3
	buttonBorderInset     float32 = 1.5
	buttonInnerRatio      float32 = 1.3
	buttonRecordingScale  float32 = 0.88
	progressRingInset     float32 = 2
	progressRingLineWidth float32 = 3
)

// RecordButton draws a recorder.Control and feeds it mouse and touch input.
// It is the control's Renderer: state and progress arrive through
// RenderState and RenderProgress.
type RecordButton struct {
	widget.BaseWidget

	control  *recorder.Control
	palette  Palette
	state    model.State
	progress float64

	// OnStateChanged, when set, is called on every state the control renders
	OnStateChanged func(model.State)
}

var (
	_ recorder.Renderer = (*RecordButton)(nil)
	_ desktop.Mouseable = (*RecordButton)(nil)
	_ desktop.Cursorable = (*RecordButton)(nil)
	_ mobile.Touchable  = (*RecordButton)(nil)
)

// NewRecordButton creates a button bound to control
func NewRecordButton(control *recorder.Control, palette Palette) *RecordButton {
	b := &RecordButton{
		control: control,
		palette: palette,
		state:   control.State(),
	}
	b.ExtendBaseWidget(b)
	control.SetRenderer(b)
	return b
}

// Control returns the bound control
func (b *RecordButton) Control() *recorder.Control {
	return b.control
}

// Palette returns the current colors
func (b *RecordButton) Palette() Palette {
	return b.palette
}

// SetPalette changes the colors and redraws
func (b *RecordButton) SetPalette(palette Palette) {
	b.palette = palette
	b.Refresh()
}

// RenderedState returns the last state pushed by the control
func (b *RecordButton) RenderedState() model.State {
	return b.state
}

// RenderedProgress returns the last progress pushed by the control
func (b *RecordButton) RenderedProgress() float64 {
	return b.progress
}

// RenderState implements recorder.Renderer
func (b *RecordButton) RenderState(state model.State) {
	b.state = state
	b.Refresh()
	if b.OnStateChanged != nil {
		b.OnStateChanged(state)
	}
}

// RenderProgress implements recorder.Renderer
func (b *RecordButton) RenderProgress(value float64) {
	b.progress = value
	b.Refresh()
}

// MouseDown starts a pointer sequence on primary button press
func (b *RecordButton) MouseDown(ev *desktop.MouseEvent) {
	if ev != nil && ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.control.PointerDown()
}

// MouseUp ends the pointer sequence, wherever the pointer was released
func (b *RecordButton) MouseUp(ev *desktop.MouseEvent) {
	if ev != nil && ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.control.PointerUp()
}

// TouchDown starts a pointer sequence
func (b *RecordButton) TouchDown(*mobile.TouchEvent) {
	b.control.PointerDown()
}

// TouchUp ends the pointer sequence
func (b *RecordButton) TouchUp(*mobile.TouchEvent) {
	b.control.PointerUp()
}

// TouchCancel is handled as a release
func (b *RecordButton) TouchCancel(*mobile.TouchEvent) {
	b.control.PointerUp()
}

// Cursor shows a pointer over the button
func (b *RecordButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// Destroy tears down the control; the button stops reacting to input
func (b *RecordButton) Destroy() {
	b.control.Destroy()
}

// CreateRenderer creates the widget renderer
func (b *RecordButton) CreateRenderer() fyne.WidgetRenderer {
	r := &recordButtonRenderer{
		button: b,
		border: canvas.NewCircle(color.Transparent),
		inner:  canvas.NewCircle(b.palette.Button),
	}
	r.border.StrokeWidth = buttonBorderWidth

	r.ring = make([]*canvas.Line, RingSegments)
	for i := range r.ring {
		line := canvas.NewLine(b.palette.Progress)
		line.StrokeWidth = progressRingLineWidth
		line.Hide()
		r.ring[i] = line
	}

	r.objects = make([]fyne.CanvasObject, 0, len(r.ring)+2)
	r.objects = append(r.objects, r.border, r.inner)
	for _, line := range r.ring {
		r.objects = append(r.objects, line)
	}

	r.applyColors()
	return r
}

// recordButtonRenderer draws the border, the inner circle and the ring
type recordButtonRenderer struct {
	button  *RecordButton
	border  *canvas.Circle
	inner   *canvas.Circle
	ring    []*canvas.Line
	objects []fyne.CanvasObject
}

// Layout positions the circles and the visible ring segments
func (r *recordButtonRenderer) Layout(size fyne.Size) {
	diameter := fyne.Min(size.Width, size.Height)
	center := fyne.NewPos(size.Width/2, size.Height/2)

	borderSize := diameter - buttonBorderInset
	r.border.Resize(fyne.NewSize(borderSize, borderSize))
	r.border.Move(fyne.NewPos(center.X-borderSize/2, center.Y-borderSize/2))

	innerSize := diameter / buttonInnerRatio
	if r.button.state == model.StateRecording {
		innerSize *= buttonRecordingScale
	}
	r.inner.Resize(fyne.NewSize(innerSize, innerSize))
	r.inner.Move(fyne.NewPos(center.X-innerSize/2, center.Y-innerSize/2))

	segments := RingGeometry(center, diameter/2-progressRingInset, r.ringProgress(), RingSegments)
	for i, line := range r.ring {
		if i >= len(segments) {
			line.Hide()
			continue
		}
		line.Position1 = segments[i].From
		line.Position2 = segments[i].To
		line.Show()
	}
}

// MinSize returns the minimum size of the button
func (r *recordButtonRenderer) MinSize() fyne.Size {
	return fyne.NewSize(RecordButtonSize, RecordButtonSize)
}

// Refresh redraws after a state, progress or palette change
func (r *recordButtonRenderer) Refresh() {
	r.applyColors()
	r.Layout(r.button.Size())
	canvas.Refresh(r.button)
}

// Objects returns all objects in the renderer
func (r *recordButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *recordButtonRenderer) Destroy() {}

// ringProgress is the progress drawn; the ring only shows while recording
func (r *recordButtonRenderer) ringProgress() float64 {
	if r.button.state != model.StateRecording {
		return 0
	}
	return r.button.progress
}

func (r *recordButtonRenderer) applyColors() {
	palette := r.button.palette
	opacity := r.button.state.Opacity()

	borderColor, innerColor := palette.Button, palette.Button
	if r.button.state == model.StateRecording {
		borderColor, innerColor = palette.ProgressFill, palette.Progress
	}

	r.border.StrokeColor = withOpacity(borderColor, opacity)
	r.inner.FillColor = withOpacity(innerColor, opacity)
	ringColor := withOpacity(palette.Progress, opacity)
	for _, line := range r.ring {
		line.StrokeColor = ringColor
	}
}
