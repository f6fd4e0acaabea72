package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconHide     = "◌"
	IconShow     = "●"
	IconReset    = "↺"
	IconClear    = "×"
	IconRecord   = "⏺"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
	EventTimeFormat     = "15:04:05.000"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 360
	WindowMinHeight float32 = 520

	SettingsDialogW float32 = 420
	SettingsDialogH float32 = 460

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Event list behavior
const (
	EventListLimit = 50
)
