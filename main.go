package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ytget/record-button/internal/clock"
	"github.com/ytget/record-button/internal/config"
	"github.com/ytget/record-button/internal/logging"
	"github.com/ytget/record-button/internal/recorder"
	"github.com/ytget/record-button/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.record-button"
	AppName = "record-button"
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIconResource)
	myApp.Settings().SetTheme(ui.NewRecorderTheme())

	settings := config.NewSettings(myApp)
	profilePath, profileErr := importProfile(settings)

	logger := newLogger(settings.GetLogLevel())
	logger.Info().Str("version", version).Msg("record button starting")
	if profileErr != nil {
		logger.Warn().Err(profileErr).Str("path", profilePath).Msg("profile not applied")
	} else if profilePath != "" {
		logger.Info().Str("path", profilePath).Msg("profile applied")
	}

	opts := settings.Options()
	control, err := recorder.New(clock.NewUIClock(), opts,
		recorder.WithLogger(logger),
		recorder.WithObserver(recorder.NewLogObserver(logger)),
	)
	if err != nil {
		logger.Error().Err(err).Object("options", opts).Msg("invalid stored options, using defaults")
		control, err = recorder.New(clock.NewUIClock(), recorder.DefaultOptions(),
			recorder.WithLogger(logger),
			recorder.WithObserver(recorder.NewLogObserver(logger)),
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot create control")
		}
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("Record Button v%s", version))
	myWindow.Resize(fyne.NewSize(ui.WindowMinWidth, ui.WindowMinHeight))

	ui.NewRootUI(myWindow, settings, control, logger)

	myWindow.ShowAndRun()
}

func newLogger(level string) zerolog.Logger {
	logger, err := logging.New(level, os.Stderr)
	if err != nil {
		logger, _ = logging.New(logging.DefaultLevel, os.Stderr)
		logger.Warn().Err(err).Str("level", level).Msg("unknown log level, using default")
	}
	return logger
}

// importProfile applies the profile file from the user config directory, if
// there is one, and returns its path. Preferences stay untouched when it is
// missing or unreadable.
func importProfile(settings *config.Settings) (string, error) {
	path, err := config.ProfilePath(AppName)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}

	profile, err := config.LoadProfile(path)
	if err != nil {
		return path, err
	}
	settings.ApplyProfile(profile)
	return path, nil
}
