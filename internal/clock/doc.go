package clock

// Package clock schedules the record button's timers. Clock hides whether
// callbacks come from real Go timers marshalled onto the Fyne UI goroutine
// (UIClock) or from a simulated timeline advanced by hand (Manual).
