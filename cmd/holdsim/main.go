// Command holdsim drives a record button control on a simulated clock and
// prints every callback it emits. It runs a number of taps followed by one
// hold, with no window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ytget/record-button/internal/clock"
	"github.com/ytget/record-button/internal/config"
	"github.com/ytget/record-button/internal/logging"
	"github.com/ytget/record-button/internal/model"
	"github.com/ytget/record-button/internal/recorder"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// tapGap separates consecutive simulated gestures
const tapGap = 200 * time.Millisecond

var simStart = time.Date(2021, 10, 30, 0, 0, 0, 0, time.UTC)

type simConfig struct {
	opts     recorder.Options
	holdFor  time.Duration
	taps     int
	logLevel string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "holdsim: %v\n", err)
		return exitUsage
	}
	if err := cfg.opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "holdsim: %v\n", err)
		return exitUsage
	}

	clk := clock.NewManual(simStart)
	logger, err := logging.New(cfg.logLevel, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "holdsim: %v\n", err)
		return exitUsage
	}
	logger = logger.Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Dur("sim", clk.Now().Sub(simStart))
	}))

	counts := map[model.EventKind]int{}
	counter := recorder.ObserverFuncs{
		Press:       func(*recorder.Control) { counts[model.EventPress]++ },
		HoldStarted: func(*recorder.Control) { counts[model.EventHoldStarted]++ },
		ProgressChanged: func(*recorder.Control, float64) {
			counts[model.EventProgressChanged]++
		},
		EndPress: func(*recorder.Control) { counts[model.EventEndPress]++ },
	}
	control, err := recorder.New(clk, cfg.opts,
		recorder.WithLogger(logger),
		recorder.WithObserver(recorder.NewLogObserver(logger)),
		recorder.WithObserver(counter),
	)
	if err != nil {
		fmt.Fprintf(stderr, "holdsim: %v\n", err)
		return exitFailure
	}
	defer control.Destroy()

	logger.Info().Object("options", cfg.opts).Int("taps", cfg.taps).Dur("hold_for", cfg.holdFor).Msg("simulation")

	simulate(control, clk, cfg)

	logger.Info().
		Int(model.EventPress.String(), counts[model.EventPress]).
		Int(model.EventHoldStarted.String(), counts[model.EventHoldStarted]).
		Int(model.EventProgressChanged.String(), counts[model.EventProgressChanged]).
		Int(model.EventEndPress.String(), counts[model.EventEndPress]).
		Stringer("state", control.State()).
		Msg("done")
	return exitOK
}

// simulate runs the taps, then one hold of cfg.holdFor
func simulate(control *recorder.Control, clk *clock.Manual, cfg simConfig) {
	tapLength := cfg.opts.HoldThreshold / 2
	for i := 0; i < cfg.taps; i++ {
		control.PointerDown()
		clk.Advance(tapLength)
		control.PointerUp()
		clk.Advance(tapGap)
	}

	if cfg.holdFor <= 0 {
		return
	}
	control.PointerDown()
	clk.Advance(cfg.holdFor)
	control.PointerUp()
	clk.Advance(tapGap)
}

// parseFlags reads the options from an optional profile, then applies the
// flags that were set explicitly
func parseFlags(args []string, stderr io.Writer) (simConfig, error) {
	defaults := recorder.DefaultOptions()

	fs := flag.NewFlagSet("holdsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	maxDuration := fs.Duration("max", defaults.MaxDuration, "time for the ring to fill")
	step := fs.Duration("step", defaults.Step, "progress tick interval")
	holdThreshold := fs.Duration("hold-threshold", defaults.HoldThreshold, "press length that starts a hold")
	auto := fs.Bool("auto", defaults.AutoComplete, "end the hold when the ring is full")
	holdFor := fs.Duration("hold-for", 2*time.Second, "length of the simulated hold, 0 to skip it")
	taps := fs.Int("taps", 1, "number of taps before the hold")
	profilePath := fs.String("profile", "", "YAML profile to read options from")
	logLevel := fs.String("log-level", logging.DefaultLevel, "error, warn, info, debug or trace")

	if err := fs.Parse(args); err != nil {
		return simConfig{}, err
	}
	if fs.NArg() > 0 {
		return simConfig{}, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *taps < 0 {
		return simConfig{}, errors.Errorf("-taps must not be negative, got %d", *taps)
	}

	cfg := simConfig{opts: defaults, holdFor: *holdFor, taps: *taps, logLevel: *logLevel}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *profilePath != "" {
		profile, err := config.LoadProfile(*profilePath)
		if err != nil {
			return simConfig{}, err
		}
		cfg.opts = profile.Options()
		if !set["log-level"] && profile.LogLevel != "" {
			cfg.logLevel = profile.LogLevel
		}
	}

	if set["max"] {
		cfg.opts.MaxDuration = *maxDuration
	}
	if set["step"] {
		cfg.opts.Step = *step
	}
	if set["hold-threshold"] {
		cfg.opts.HoldThreshold = *holdThreshold
	}
	if set["auto"] {
		cfg.opts.AutoComplete = *auto
	}
	return cfg, nil
}
