package model

// Package model defines the record button's domain vocabulary: control states,
// the inputs that drive them, the effects a transition asks for, and the
// notifications observers receive. Transition is a pure function so the state
// table can be tested without timers or a UI.
