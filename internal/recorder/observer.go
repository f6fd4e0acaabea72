package recorder

import (
	"github.com/rs/zerolog"
)

// Observer receives control notifications. Implementations embed NopObserver
// and override only what they need. Callbacks must not re-enter the control.
type Observer interface {
	OnPress(c *Control)
	OnHoldStarted(c *Control)
	OnProgressChanged(c *Control, value float64)
	OnEndPress(c *Control)
}

// NopObserver implements Observer with no-op methods
type NopObserver struct{}

func (NopObserver) OnPress(*Control)                    {}
func (NopObserver) OnHoldStarted(*Control)              {}
func (NopObserver) OnProgressChanged(*Control, float64) {}
func (NopObserver) OnEndPress(*Control)                 {}

// ObserverFuncs adapts optional callbacks to Observer; nil fields are skipped
type ObserverFuncs struct {
	Press           func(c *Control)
	HoldStarted     func(c *Control)
	ProgressChanged func(c *Control, value float64)
	EndPress        func(c *Control)
}

func (f ObserverFuncs) OnPress(c *Control) {
	if f.Press != nil {
		f.Press(c)
	}
}

func (f ObserverFuncs) OnHoldStarted(c *Control) {
	if f.HoldStarted != nil {
		f.HoldStarted(c)
	}
}

func (f ObserverFuncs) OnProgressChanged(c *Control, value float64) {
	if f.ProgressChanged != nil {
		f.ProgressChanged(c, value)
	}
}

func (f ObserverFuncs) OnEndPress(c *Control) {
	if f.EndPress != nil {
		f.EndPress(c)
	}
}

// LogObserver prints every notification through a zerolog logger
type LogObserver struct {
	logger zerolog.Logger
}

// NewLogObserver creates an observer that logs callbacks at info level
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnPress(c *Control) {
	o.logger.Info().Str("control", c.ID()).Msg("press")
}

func (o *LogObserver) OnHoldStarted(c *Control) {
	o.logger.Info().Str("control", c.ID()).Msg("long press")
}

func (o *LogObserver) OnProgressChanged(c *Control, value float64) {
	o.logger.Info().Str("control", c.ID()).Float64("value", value).Msg("progress")
}

func (o *LogObserver) OnEndPress(c *Control) {
	o.logger.Info().Str("control", c.ID()).Msg("end press")
}
