package model

import "fmt"

// Input is an event fed to the state machine
type Input string

const (
	// InputHoldElapsed means the hold-threshold timer fired for an open press
	InputHoldElapsed Input = "hold_elapsed"

	// InputEndHold means a hold ended by release or by auto-complete
	InputEndHold Input = "end_hold"

	// InputHide is an explicit hide request
	InputHide Input = "hide"

	// InputReset is an explicit show/reset request
	InputReset Input = "reset"
)

// String returns the string representation of Input
func (i Input) String() string {
	return string(i)
}

// Effect is a side effect the control must run after a transition
type Effect string

const (
	EffectStartTicker       Effect = "start_ticker"
	EffectStopTicker        Effect = "stop_ticker"
	EffectResetProgress     Effect = "reset_progress"
	EffectNotifyHoldStarted Effect = "notify_hold_started"
	EffectNotifyEndPress    Effect = "notify_end_press"
)

// String returns the string representation of Effect
func (e Effect) String() string {
	return string(e)
}

// Transition returns the next state and the ordered effects for input.
// The result does not depend on the current state: entering a state always
// re-runs its entry effects, including when the state does not change.
func Transition(current State, input Input) (State, []Effect, error) {
	switch input {
	case InputHoldElapsed:
		return StateRecording, []Effect{EffectStartTicker, EffectNotifyHoldStarted}, nil
	case InputEndHold:
		return StateIdle, []Effect{EffectStopTicker, EffectResetProgress, EffectNotifyEndPress}, nil
	case InputHide:
		return StateHidden, []Effect{EffectStopTicker}, nil
	case InputReset:
		return StateIdle, []Effect{EffectStopTicker, EffectResetProgress}, nil
	default:
		return current, nil, fmt.Errorf("unknown input %q in state %s", input, current)
	}
}
