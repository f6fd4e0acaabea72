package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/record-button/internal/recorder"
)

// Settings keys for Fyne preferences
const (
	KeyMaxDurationSeconds   = "max_duration_seconds"
	KeyStepSeconds          = "step_seconds"
	KeyHoldThresholdSeconds = "hold_threshold_seconds"
	KeyAutoComplete         = "auto_complete"
	KeyButtonColor          = "button_color"
	KeyProgressColor        = "progress_color"
	KeyProgressFillColor    = "progress_fill_color"
	KeyLanguage             = "app_language"
	KeyLogLevel             = "log_level"
)

// Default values for the host screen
const (
	DefaultMaxDurationSeconds   = 30.0
	DefaultStepSeconds          = 0.05
	DefaultHoldThresholdSeconds = 0.5
	DefaultAutoComplete         = true
	DefaultButtonColor          = "#FFFFFF"
	DefaultProgressColor        = "#FF0000"
	DefaultProgressFillColor    = "#555555"
	DefaultLanguage             = "system"
	DefaultLogLevel             = "info"
)

// Accepted ranges, in seconds
const (
	MinMaxDurationSeconds   = 1.0
	MaxMaxDurationSeconds   = 600.0
	MinStepSeconds          = 0.01
	MaxStepSeconds          = 1.0
	MinHoldThresholdSeconds = 0.1
	MaxHoldThresholdSeconds = 5.0
)

// Settings manages the record button configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMaxDurationSeconds returns the time to fill the ring
func (s *Settings) GetMaxDurationSeconds() float64 {
	value := s.app.Preferences().Float(KeyMaxDurationSeconds)
	if value <= 0 {
		s.SetMaxDurationSeconds(DefaultMaxDurationSeconds)
		return DefaultMaxDurationSeconds
	}
	return value
}

// SetMaxDurationSeconds sets the time to fill the ring
func (s *Settings) SetMaxDurationSeconds(seconds float64) {
	s.app.Preferences().SetFloat(KeyMaxDurationSeconds, clamp(seconds, MinMaxDurationSeconds, MaxMaxDurationSeconds))
}

// GetStepSeconds returns the progress tick interval
func (s *Settings) GetStepSeconds() float64 {
	value := s.app.Preferences().Float(KeyStepSeconds)
	if value <= 0 {
		s.SetStepSeconds(DefaultStepSeconds)
		return DefaultStepSeconds
	}
	return value
}

// SetStepSeconds sets the progress tick interval
func (s *Settings) SetStepSeconds(seconds float64) {
	s.app.Preferences().SetFloat(KeyStepSeconds, clamp(seconds, MinStepSeconds, MaxStepSeconds))
}

// GetHoldThresholdSeconds returns the press length that starts a hold
func (s *Settings) GetHoldThresholdSeconds() float64 {
	value := s.app.Preferences().Float(KeyHoldThresholdSeconds)
	if value <= 0 {
		s.SetHoldThresholdSeconds(DefaultHoldThresholdSeconds)
		return DefaultHoldThresholdSeconds
	}
	return value
}

// SetHoldThresholdSeconds sets the press length that starts a hold
func (s *Settings) SetHoldThresholdSeconds(seconds float64) {
	s.app.Preferences().SetFloat(KeyHoldThresholdSeconds, clamp(seconds, MinHoldThresholdSeconds, MaxHoldThresholdSeconds))
}

// GetAutoComplete returns whether a full ring ends the hold
func (s *Settings) GetAutoComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoComplete, DefaultAutoComplete)
}

// SetAutoComplete sets whether a full ring ends the hold
func (s *Settings) SetAutoComplete(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoComplete, enabled)
}

// GetButtonColor returns the idle button color as a hex string
func (s *Settings) GetButtonColor() string {
	return s.app.Preferences().StringWithFallback(KeyButtonColor, DefaultButtonColor)
}

// SetButtonColor sets the idle button color; empty restores the default
func (s *Settings) SetButtonColor(hex string) {
	s.setColor(KeyButtonColor, hex, DefaultButtonColor)
}

// GetProgressColor returns the ring color as a hex string
func (s *Settings) GetProgressColor() string {
	return s.app.Preferences().StringWithFallback(KeyProgressColor, DefaultProgressColor)
}

// SetProgressColor sets the ring color; empty restores the default
func (s *Settings) SetProgressColor(hex string) {
	s.setColor(KeyProgressColor, hex, DefaultProgressColor)
}

// GetProgressFillColor returns the border color while recording
func (s *Settings) GetProgressFillColor() string {
	return s.app.Preferences().StringWithFallback(KeyProgressFillColor, DefaultProgressFillColor)
}

// SetProgressFillColor sets the border color while recording; empty restores the default
func (s *Settings) SetProgressFillColor(hex string) {
	s.setColor(KeyProgressFillColor, hex, DefaultProgressFillColor)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level name
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// Options returns the control options described by the stored settings
func (s *Settings) Options() recorder.Options {
	opts := recorder.Options{
		MaxDuration:   seconds(s.GetMaxDurationSeconds()),
		Step:          seconds(s.GetStepSeconds()),
		HoldThreshold: seconds(s.GetHoldThresholdSeconds()),
		AutoComplete:  s.GetAutoComplete(),
	}
	if opts.Step > opts.MaxDuration {
		opts.Step = opts.MaxDuration
	}
	return opts
}

// SetOptions stores control options
func (s *Settings) SetOptions(opts recorder.Options) {
	s.SetMaxDurationSeconds(opts.MaxDuration.Seconds())
	s.SetStepSeconds(opts.Step.Seconds())
	s.SetHoldThresholdSeconds(opts.HoldThreshold.Seconds())
	s.SetAutoComplete(opts.AutoComplete)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func (s *Settings) setColor(key, hex, fallback string) {
	if hex == "" {
		hex = fallback
	}
	s.app.Preferences().SetString(key, hex)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func seconds(value float64) time.Duration {
	return time.Duration(value * float64(time.Second)).Round(time.Millisecond)
}
