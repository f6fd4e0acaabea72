package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ytget/record-button/internal/recorder"
)

const profileFileName = "profile.yaml"

// Profile is the portable form of Settings, stored as YAML
type Profile struct {
	MaxDurationSeconds   float64 `yaml:"max_duration_seconds"`
	StepSeconds          float64 `yaml:"step_seconds"`
	HoldThresholdSeconds float64 `yaml:"hold_threshold_seconds"`
	AutoComplete         bool    `yaml:"auto_complete"`
	ButtonColor          string  `yaml:"button_color"`
	ProgressColor        string  `yaml:"progress_color"`
	ProgressFillColor    string  `yaml:"progress_fill_color"`
	Language             string  `yaml:"language"`
	LogLevel             string  `yaml:"log_level"`
}

// DefaultProfile returns the host defaults
func DefaultProfile() Profile {
	return Profile{
		MaxDurationSeconds:   DefaultMaxDurationSeconds,
		StepSeconds:          DefaultStepSeconds,
		HoldThresholdSeconds: DefaultHoldThresholdSeconds,
		AutoComplete:         DefaultAutoComplete,
		ButtonColor:          DefaultButtonColor,
		ProgressColor:        DefaultProgressColor,
		ProgressFillColor:    DefaultProgressFillColor,
		Language:             DefaultLanguage,
		LogLevel:             DefaultLogLevel,
	}
}

// ProfilePath returns the profile location under the user config directory
func ProfilePath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}
	return filepath.Join(configDir, appName, profileFileName), nil
}

// LoadProfile reads a profile from path.
// If the file does not exist, the default profile is returned.
// Fields missing from the file keep their defaults.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profile, nil
		}
		return profile, errors.Wrap(err, "read profile")
	}

	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return DefaultProfile(), errors.Wrapf(err, "parse profile %s", path)
	}
	return profile, nil
}

// SaveProfile writes a profile to path, creating its directory
func SaveProfile(path string, profile Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create profile directory")
	}

	serialized, err := yaml.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "marshal profile")
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return errors.Wrapf(err, "write profile %s", path)
	}
	return nil
}

// Profile returns the stored settings as a profile
func (s *Settings) Profile() Profile {
	return Profile{
		MaxDurationSeconds:   s.GetMaxDurationSeconds(),
		StepSeconds:          s.GetStepSeconds(),
		HoldThresholdSeconds: s.GetHoldThresholdSeconds(),
		AutoComplete:         s.GetAutoComplete(),
		ButtonColor:          s.GetButtonColor(),
		ProgressColor:        s.GetProgressColor(),
		ProgressFillColor:    s.GetProgressFillColor(),
		Language:             s.GetLanguage(),
		LogLevel:             s.GetLogLevel(),
	}
}

// ApplyProfile stores every profile value through the clamping setters.
// Non-positive durations are ignored.
func (s *Settings) ApplyProfile(profile Profile) {
	if profile.MaxDurationSeconds > 0 {
		s.SetMaxDurationSeconds(profile.MaxDurationSeconds)
	}
	if profile.StepSeconds > 0 {
		s.SetStepSeconds(profile.StepSeconds)
	}
	if profile.HoldThresholdSeconds > 0 {
		s.SetHoldThresholdSeconds(profile.HoldThresholdSeconds)
	}
	s.SetAutoComplete(profile.AutoComplete)
	s.SetButtonColor(profile.ButtonColor)
	s.SetProgressColor(profile.ProgressColor)
	s.SetProgressFillColor(profile.ProgressFillColor)
	if profile.Language != "" {
		s.SetLanguage(profile.Language)
	}
	s.SetLogLevel(profile.LogLevel)
}

// Options returns the control options described by the profile. Non-positive
// durations fall back to the host defaults.
func (p Profile) Options() recorder.Options {
	pick := func(value, fallback float64) time.Duration {
		if value <= 0 {
			value = fallback
		}
		return seconds(value)
	}
	return recorder.Options{
		MaxDuration:   pick(p.MaxDurationSeconds, DefaultMaxDurationSeconds),
		Step:          pick(p.StepSeconds, DefaultStepSeconds),
		HoldThreshold: pick(p.HoldThresholdSeconds, DefaultHoldThresholdSeconds),
		AutoComplete:  p.AutoComplete,
	}
}
