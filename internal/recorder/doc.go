package recorder

// Package recorder implements the hold-to-record control: a gesture classifier
// that separates taps from holds, a fixed-step progress driver, and the state
// machine tying them together. Rendering is delegated to a Renderer and
// notifications to Observers, so the control runs headless in tests.
