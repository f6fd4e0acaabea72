package recorder

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Default control timings
const (
	DefaultMaxDuration   = 5 * time.Second
	DefaultStep          = 50 * time.Millisecond
	DefaultHoldThreshold = 500 * time.Millisecond
)

// Configuration errors returned by Validate and the setters
var (
	ErrInvalidMaxDuration   = errors.New("max duration must be positive")
	ErrInvalidStep          = errors.New("step must be positive and not exceed max duration")
	ErrInvalidHoldThreshold = errors.New("hold threshold must be positive")
)

// Options configures a Control
type Options struct {
	MaxDuration   time.Duration // time for progress to go from 0 to 1
	Step          time.Duration // progress tick interval
	HoldThreshold time.Duration // press length that turns a tap into a hold
	AutoComplete  bool          // end the hold automatically when progress is full
}

// DefaultOptions returns the control defaults
func DefaultOptions() Options {
	return Options{
		MaxDuration:   DefaultMaxDuration,
		Step:          DefaultStep,
		HoldThreshold: DefaultHoldThreshold,
	}
}

// Validate checks that the timings can drive the progress ramp
func (o Options) Validate() error {
	if o.MaxDuration <= 0 {
		return errors.Wrapf(ErrInvalidMaxDuration, "max duration %s", o.MaxDuration)
	}
	if o.Step <= 0 || o.Step > o.MaxDuration {
		return errors.Wrapf(ErrInvalidStep, "step %s with max duration %s", o.Step, o.MaxDuration)
	}
	if o.HoldThreshold <= 0 {
		return errors.Wrapf(ErrInvalidHoldThreshold, "hold threshold %s", o.HoldThreshold)
	}
	return nil
}

// Delta returns the progress added by one tick
func (o Options) Delta() float64 {
	return float64(o.Step) / float64(o.MaxDuration)
}

// TicksToFull returns how many ticks take progress from 0 to 1
func (o Options) TicksToFull() int {
	n := o.MaxDuration / o.Step
	if o.MaxDuration%o.Step != 0 {
		n++
	}
	return int(n)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (o Options) MarshalZerologObject(e *zerolog.Event) {
	e.Dur("max_duration", o.MaxDuration).
		Dur("step", o.Step).
		Dur("hold_threshold", o.HoldThreshold).
		Bool("auto_complete", o.AutoComplete)
}
