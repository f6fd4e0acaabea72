package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/google/go-cmp/cmp"
)

func TestLoadProfileMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Missing profile should not be an error: %v", err)
	}
	if diff := cmp.Diff(DefaultProfile(), profile); diff != "" {
		t.Errorf("Missing profile should load defaults (-want +got):\n%s", diff)
	}
}

func TestSaveLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.yaml")
	want := Profile{
		MaxDurationSeconds:   12,
		StepSeconds:          0.1,
		HoldThresholdSeconds: 0.3,
		AutoComplete:         false,
		ButtonColor:          "#EEEEEE",
		ProgressColor:        "#00FF00",
		ProgressFillColor:    "#333333",
		Language:             "pt",
		LogLevel:             "debug",
	}

	if err := SaveProfile(path, want); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProfilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("max_duration_seconds: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile.MaxDurationSeconds != 8 {
		t.Errorf("Expected max duration 8, got %v", profile.MaxDurationSeconds)
	}
	if profile.ProgressColor != DefaultProgressColor {
		t.Errorf("Missing fields should keep defaults, got progress color %q", profile.ProgressColor)
	}
	if !profile.AutoComplete {
		t.Error("Missing auto_complete should keep the default")
	}
}

func TestLoadProfileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("max_duration_seconds: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	profile, err := LoadProfile(path)
	if err == nil {
		t.Fatal("Invalid YAML should return an error")
	}
	if diff := cmp.Diff(DefaultProfile(), profile); diff != "" {
		t.Errorf("Invalid profile should fall back to defaults (-want +got):\n%s", diff)
	}
}

func TestApplyProfile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.ApplyProfile(Profile{
		MaxDurationSeconds:   9000,
		StepSeconds:          0,
		HoldThresholdSeconds: 0.25,
		AutoComplete:         false,
		ProgressColor:        "#0000FF",
		Language:             "en",
		LogLevel:             "trace",
	})

	if settings.GetMaxDurationSeconds() != MaxMaxDurationSeconds {
		t.Error("Profile max duration should be clamped")
	}
	if settings.GetStepSeconds() != DefaultStepSeconds {
		t.Error("Zero step in profile should be ignored")
	}
	if settings.GetHoldThresholdSeconds() != 0.25 {
		t.Errorf("Expected hold threshold 0.25, got %v", settings.GetHoldThresholdSeconds())
	}
	if settings.GetAutoComplete() {
		t.Error("Auto-complete should be disabled by profile")
	}
	if settings.GetButtonColor() != DefaultButtonColor {
		t.Error("Empty button color should restore the default")
	}
	if settings.GetProgressColor() != "#0000FF" {
		t.Errorf("Expected progress color #0000FF, got %s", settings.GetProgressColor())
	}
	if settings.GetLogLevel() != "trace" {
		t.Errorf("Expected log level trace, got %s", settings.GetLogLevel())
	}

	if got := settings.Profile().Language; got != "en" {
		t.Errorf("Expected language en, got %s", got)
	}
}

func TestProfileOptions(t *testing.T) {
	opts := Profile{MaxDurationSeconds: 10, StepSeconds: 0.1, AutoComplete: true}.Options()

	if opts.MaxDuration != 10*time.Second {
		t.Errorf("Expected max duration 10s, got %v", opts.MaxDuration)
	}
	if opts.Step != 100*time.Millisecond {
		t.Errorf("Expected step 100ms, got %v", opts.Step)
	}
	if opts.HoldThreshold != 500*time.Millisecond {
		t.Errorf("Missing hold threshold should fall back to 500ms, got %v", opts.HoldThreshold)
	}
	if !opts.AutoComplete {
		t.Error("Expected auto-complete enabled")
	}
}
