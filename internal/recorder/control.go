package recorder

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ytget/record-button/internal/clock"
	"github.com/ytget/record-button/internal/model"
)

// ErrStateNotSettable is returned by SetState for states that only a gesture
// can enter
var ErrStateNotSettable = errors.New("state cannot be set directly")

// Renderer draws the control. It receives every state entry, including
// repeated entries of the same state, and every stored progress value.
type Renderer interface {
	RenderState(state model.State)
	RenderProgress(value float64)
}

// Option customizes a Control
type Option func(*Control)

// WithLogger sets the logger used for transition diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Control) {
		c.logger = logger
	}
}

// WithRenderer attaches a renderer at construction time
func WithRenderer(renderer Renderer) Option {
	return func(c *Control) {
		c.renderer = renderer
	}
}

// WithObserver subscribes an observer at construction time
func WithObserver(observer Observer) Option {
	return func(c *Control) {
		c.AddObserver(observer)
	}
}

type observerSlot struct {
	id       int
	observer Observer
}

// Control is the hold-to-record button's behaviour: it classifies pointer
// sequences as taps or holds, fills progress while a hold lasts, and ends the
// hold on release or, optionally, when progress is full.
//
// Control is not safe for concurrent use. Every method and every timer
// callback must run on one goroutine, which is what clock.UIClock arranges.
type Control struct {
	id     uuid.UUID
	clock  clock.Clock
	opts   Options
	logger zerolog.Logger

	renderer  Renderer
	observers []observerSlot
	nextSlot  int

	state     model.State
	driver    *ProgressDriver
	holdTimer clock.Timer
	sequence  uuid.UUID
	pressed   bool
	holding   bool
	destroyed bool
}

// New creates an idle control with progress 0
func New(clk clock.Clock, opts Options, options ...Option) (*Control, error) {
	if clk == nil {
		return nil, errors.New("recorder: nil clock")
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "recorder")
	}

	c := &Control{
		id:     uuid.New(),
		clock:  clk,
		opts:   opts,
		logger: zerolog.Nop(),
		state:  model.StateIdle,
	}
	c.driver = NewProgressDriver(clk, opts.MaxDuration, opts.Step, c.onTick)

	for _, option := range options {
		option(c)
	}

	c.logger.Debug().Str("control", c.ID()).Object("options", c.opts).Msg("control created")
	return c, nil
}

// ID returns the control's unique identifier
func (c *Control) ID() string {
	return c.id.String()
}

// State returns the current state
func (c *Control) State() model.State {
	return c.state
}

// Progress returns the current progress in [0,1]
func (c *Control) Progress() float64 {
	return c.driver.Progress()
}

// IsHolding returns true between the hold threshold elapsing and the end of
// that hold
func (c *Control) IsHolding() bool {
	return c.holding
}

// IsPressed returns true while a pointer sequence is open
func (c *Control) IsPressed() bool {
	return c.pressed
}

// IsTicking returns true while the progress ticker runs
func (c *Control) IsTicking() bool {
	return c.driver.Running()
}

// IsDestroyed returns true after Destroy
func (c *Control) IsDestroyed() bool {
	return c.destroyed
}

// Options returns the current configuration
func (c *Control) Options() Options {
	return c.opts
}

// SetRenderer attaches a renderer and pushes the current state and progress
func (c *Control) SetRenderer(renderer Renderer) {
	if c.destroyed {
		return
	}
	c.renderer = renderer
	if renderer != nil {
		renderer.RenderState(c.state)
		renderer.RenderProgress(c.driver.Progress())
	}
}

// AddObserver subscribes an observer. The returned func unsubscribes it.
func (c *Control) AddObserver(observer Observer) func() {
	if observer == nil || c.destroyed {
		return func() {}
	}
	c.nextSlot++
	id := c.nextSlot
	c.observers = append(c.observers, observerSlot{id: id, observer: observer})
	return func() {
		for i, slot := range c.observers {
			if slot.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// SetMaxDuration changes the time to fill progress; it applies from the next tick
func (c *Control) SetMaxDuration(d time.Duration) error {
	opts := c.opts
	opts.MaxDuration = d
	return c.setOptions(opts)
}

// SetStep changes the tick interval; it applies from the next hold
func (c *Control) SetStep(d time.Duration) error {
	opts := c.opts
	opts.Step = d
	return c.setOptions(opts)
}

// SetHoldThreshold changes the tap/hold boundary; it applies from the next press
func (c *Control) SetHoldThreshold(d time.Duration) error {
	opts := c.opts
	opts.HoldThreshold = d
	return c.setOptions(opts)
}

// SetAutoComplete sets whether full progress ends the hold by itself
func (c *Control) SetAutoComplete(enabled bool) {
	c.opts.AutoComplete = enabled
}

// Configure replaces all options at once
func (c *Control) Configure(opts Options) error {
	return c.setOptions(opts)
}

func (c *Control) setOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	c.opts = opts
	c.driver.SetTiming(opts.MaxDuration, opts.Step)
	return nil
}

// PointerDown opens a pointer sequence and arms the hold-threshold timer.
// It is ignored while hidden, after Destroy, or while a sequence is open.
func (c *Control) PointerDown() {
	if c.destroyed || c.pressed || !c.state.AcceptsPress() {
		return
	}
	c.pressed = true
	c.sequence = uuid.New()
	seq := c.sequence
	c.cancelHoldTimer()
	c.holdTimer = c.clock.AfterFunc(c.opts.HoldThreshold, func() {
		c.holdElapsed(seq)
	})
	c.logger.Debug().Str("control", c.ID()).Stringer("sequence", seq).Msg("pointer down")
}

// PointerUp closes the open pointer sequence. A release before the hold
// threshold is a tap; a release during a hold ends it. Releases outside the
// button and cancelled touches are handled the same way.
func (c *Control) PointerUp() {
	if c.destroyed || !c.pressed {
		return
	}
	c.pressed = false
	c.cancelHoldTimer()
	c.logger.Debug().Str("control", c.ID()).Stringer("sequence", c.sequence).Bool("holding", c.holding).Msg("pointer up")

	if c.holding {
		c.endHold()
		return
	}
	c.notify(func(o Observer) { o.OnPress(c) })
}

// SetProgress stores a clamped progress value and always reports it
func (c *Control) SetProgress(value float64) {
	if c.destroyed {
		return
	}
	c.publishProgress(c.driver.Set(value))
}

// Hide makes the control transparent and stops the ticker
func (c *Control) Hide() {
	c.apply(model.InputHide)
}

// Reset shows the control in the idle state with progress 0. Calling it again
// repeats the reset.
func (c *Control) Reset() {
	c.apply(model.InputReset)
}

// Show is Reset under the name hosts use to undo Hide
func (c *Control) Show() {
	c.Reset()
}

// SetState requests an explicit state. Only Idle and Hidden can be requested;
// Recording is entered by holding.
func (c *Control) SetState(state model.State) error {
	switch state {
	case model.StateIdle:
		c.Reset()
	case model.StateHidden:
		c.Hide()
	case model.StateRecording:
		return errors.Wrapf(ErrStateNotSettable, "state %s", state)
	default:
		return errors.Errorf("unknown state %q", state)
	}
	return nil
}

// Destroy cancels both timers and detaches every observer and the renderer.
// No notification is delivered after Destroy returns.
func (c *Control) Destroy() {
	if c.destroyed {
		return
	}
	c.cancelHoldTimer()
	c.driver.Stop()
	c.destroyed = true
	c.pressed = false
	c.holding = false
	c.observers = nil
	c.renderer = nil
	c.logger.Debug().Str("control", c.ID()).Msg("control destroyed")
}

func (c *Control) holdElapsed(seq uuid.UUID) {
	if c.destroyed || !c.pressed || c.holding || seq != c.sequence {
		return
	}
	c.holdTimer = nil
	c.holding = true
	c.apply(model.InputHoldElapsed)
}

func (c *Control) endHold() {
	c.holding = false
	c.apply(model.InputEndHold)
}

func (c *Control) onTick(value float64) {
	if c.destroyed {
		return
	}
	c.publishProgress(value)
	if value < 1 {
		return
	}

	if c.opts.AutoComplete {
		// the finger is still down; its release must not count as a tap
		c.pressed = false
		c.cancelHoldTimer()
		c.endHold()
		return
	}
	c.driver.Stop()
}

func (c *Control) apply(input model.Input) {
	if c.destroyed {
		return
	}
	previous := c.state
	next, effects, err := model.Transition(previous, input)
	if err != nil {
		c.logger.Error().Err(err).Str("control", c.ID()).Msg("transition rejected")
		return
	}

	c.state = next
	c.logger.Debug().
		Str("control", c.ID()).
		Stringer("input", input).
		Stringer("from", previous).
		Stringer("to", next).
		Msg("transition")

	if c.renderer != nil {
		c.renderer.RenderState(next)
	}
	for _, effect := range effects {
		c.run(effect)
	}
}

func (c *Control) run(effect model.Effect) {
	switch effect {
	case model.EffectStartTicker:
		c.driver.Start()
	case model.EffectStopTicker:
		c.driver.Stop()
	case model.EffectResetProgress:
		c.SetProgress(0)
	case model.EffectNotifyHoldStarted:
		c.notify(func(o Observer) { o.OnHoldStarted(c) })
	case model.EffectNotifyEndPress:
		c.notify(func(o Observer) { o.OnEndPress(c) })
	}
}

func (c *Control) publishProgress(value float64) {
	if c.renderer != nil {
		c.renderer.RenderProgress(value)
	}
	c.notify(func(o Observer) { o.OnProgressChanged(c, value) })
}

func (c *Control) notify(call func(Observer)) {
	if c.destroyed {
		return
	}
	slots := append([]observerSlot(nil), c.observers...)
	for _, slot := range slots {
		call(slot.observer)
	}
}

func (c *Control) cancelHoldTimer() {
	if c.holdTimer != nil {
		c.holdTimer.Stop()
		c.holdTimer = nil
	}
}
