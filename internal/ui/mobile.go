package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Split offsets between the button area and the event list
const (
	desktopSplitOffset = 0.6
	mobileSplitOffset  = 0.5
)

// MobileUI adapts the host screen to touch devices
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for device
func NewMobileUI(device fyne.Device) *MobileUI {
	return &MobileUI{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// ActionRow lays out buttons in one row; on mobile each cell is at least a
// touch target high
func (m *MobileUI) ActionRow(buttons ...fyne.CanvasObject) *fyne.Container {
	if !m.IsMobileDevice() {
		return container.NewGridWithColumns(len(buttons), buttons...)
	}

	cells := make([]fyne.CanvasObject, 0, len(buttons))
	for _, button := range buttons {
		cells = append(cells, container.NewStack(touchTarget(), button))
	}
	return container.NewAdaptiveGrid(len(buttons), cells...)
}

// SplitOffset returns the share of the height given to the button area
func (m *MobileUI) SplitOffset() float64 {
	if m.IsMobileDevice() {
		return mobileSplitOffset
	}
	return desktopSplitOffset
}

// touchTarget is an invisible rectangle that holds the minimum touch size
func touchTarget() fyne.CanvasObject {
	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
	return rect
}
