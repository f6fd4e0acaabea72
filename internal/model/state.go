package model

// State represents the visible mode of the record button
type State string

const (
	// StateIdle means the button is opaque, interactive and shows no progress
	StateIdle State = "Idle"

	// StateRecording means a hold is in progress and the ring may be filling
	StateRecording State = "Recording"

	// StateHidden means the button is fully transparent and ignores presses
	StateHidden State = "Hidden"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsVisible returns true if the button is drawn opaque in this state
func (s State) IsVisible() bool {
	return s == StateIdle || s == StateRecording
}

// AcceptsPress returns true if a new pointer sequence may start in this state
func (s State) AcceptsPress() bool {
	return s != StateHidden
}

// Opacity returns the alpha the renderer applies to the whole button
func (s State) Opacity() float32 {
	if s.IsVisible() {
		return 1
	}
	return 0
}
