package recorder

import (
	"math"
	"time"

	"github.com/ytget/record-button/internal/clock"
)

// ProgressDriver advances a normalized progress value by a fixed step on
// every tick. Progress is accumulated as elapsed time in whole nanoseconds,
// so k ticks always give exactly min(1, k*step/max).
type ProgressDriver struct {
	clock    clock.Clock
	max      time.Duration
	step     time.Duration
	runStep  time.Duration // step captured by the running ticker
	elapsed  time.Duration
	progress float64
	ticker   clock.Timer
	onTick   func(progress float64)
}

// NewProgressDriver creates a stopped driver at progress 0.
// onTick receives the clamped progress after every tick.
func NewProgressDriver(clk clock.Clock, max, step time.Duration, onTick func(float64)) *ProgressDriver {
	return &ProgressDriver{
		clock:  clk,
		max:    max,
		step:   step,
		onTick: onTick,
	}
}

// Start begins ticking every step, replacing a ticker that is already running
func (d *ProgressDriver) Start() {
	d.Stop()
	d.runStep = d.step
	d.ticker = d.clock.TickFunc(d.runStep, d.tick)
}

// Stop cancels ticking. It is safe to call when not running.
func (d *ProgressDriver) Stop() bool {
	if d.ticker == nil {
		return false
	}
	d.ticker.Stop()
	d.ticker = nil
	return true
}

// Running returns true while the ticker is active
func (d *ProgressDriver) Running() bool {
	return d.ticker != nil
}

// Progress returns the current progress in [0,1]
func (d *ProgressDriver) Progress() float64 {
	return d.progress
}

// Full returns true once progress has reached 1
func (d *ProgressDriver) Full() bool {
	return d.progress >= 1
}

// Set stores a clamped progress value and returns it
func (d *ProgressDriver) Set(value float64) float64 {
	value = clampProgress(value)
	d.progress = value
	d.elapsed = time.Duration(math.Round(value * float64(d.max)))
	return value
}

// SetTiming updates the ramp. A new max applies from the next tick, a new
// step from the next Start.
func (d *ProgressDriver) SetTiming(max, step time.Duration) {
	d.max = max
	d.step = step
}

func (d *ProgressDriver) tick() {
	if d.ticker == nil {
		return
	}
	d.elapsed += d.runStep
	d.progress = clampProgress(float64(d.elapsed) / float64(d.max))
	if d.onTick != nil {
		d.onTick(d.progress)
	}
}

func clampProgress(value float64) float64 {
	switch {
	case math.IsNaN(value), value < 0:
		return 0
	case value > 1:
		return 1
	default:
		return value
	}
}
