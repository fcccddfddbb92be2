package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/clockwork/internal/app"
	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/config"
	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/debug"
	"github.com/alexander-akhmetov/clockwork/internal/dirs"
	"github.com/alexander-akhmetov/clockwork/internal/event"
	"github.com/alexander-akhmetov/clockwork/internal/notify"
	"github.com/alexander-akhmetov/clockwork/internal/storage"
	"github.com/alexander-akhmetov/clockwork/internal/timing"
)

var opts startFlags

func runStart(cmd *cobra.Command, _ []string) error {
	timing.Log("runStart: begin")
	if opts.log {
		if err := debug.Enable(dirs.LogFile()); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer debug.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyCLIFlags(config.CLIFlags{SoundPath: opts.sound})
	timing.Log("runStart: config loaded")

	store := storage.Open()
	st := startState(cfg, store, opts.reset)
	st = app.Merge(configArgs(cfg, opts.args(cmd.Flags())), st, time.Now())
	timing.Log("runStart: state loaded")

	input := event.NewQueue()
	mux := event.NewMultiplexer(clock.TickValue, input)
	defer mux.Close()

	a := app.New(app.Options{
		State:    st,
		TimerMax: cfg.Timer.Max.Std(),
		RoundOn:  cfg.RoundOn(),
		Events:   mux.Notifier(),
		Notifier: notify.NewDesktop(cfg.Notify.Command),
		Player:   newPlayer(cfg.Sound.Path, cfg.Sound.Command),
	})

	timing.Log("runStart: starting terminal")
	runErr := Run(cmd.Context(), a, input, mux)
	timing.Log("runStart: terminal stopped")

	if err := store.Save(a.ToStorage()); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to save state: %w", err))
	}
	timing.Report(os.Stderr)
	return runErr
}

// newPlayer builds the sound player. A sound that cannot be used is logged
// and the app runs silently.
func newPlayer(path, command string) app.Player {
	sound, err := notify.NewSound(path, command)
	if err != nil {
		debug.Logf("sound disabled: %v", err)
		return nil
	}
	if sound == nil {
		return nil
	}
	return sound
}

// defaultState is the first run state with the configured durations and
// switches applied.
func defaultState(cfg *config.Config) storage.State {
	st := storage.Default()
	if d := cfg.Countdown.Duration.Std(); d > 0 {
		st.InitialCountdown, st.CurrentCountdown = d, d
	}
	if d := cfg.Pomodoro.Work.Std(); d > 0 {
		st.InitialWork, st.CurrentWork = d, d
	}
	if d := cfg.Pomodoro.Pause.Std(); d > 0 {
		st.InitialPause, st.CurrentPause = d, d
	}
	st.Notification = content.Toggle(cfg.Notification)
	st.Blink = content.Toggle(cfg.Blink)
	return st
}

// startState loads the stored state. An unreadable state file is reported
// and replaced by the defaults.
func startState(cfg *config.Config, store *storage.Store, reset bool) storage.State {
	defaults := defaultState(cfg)
	if reset {
		debug.Logf("state reset requested, ignoring %s", store.Path())
		return defaults
	}
	st, err := store.Load(defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, starting from defaults\n", err)
		return defaults
	}
	return st
}

// configArgs lets switches set explicitly in a config file or the
// environment win over the stored state. Flags still win over both.
func configArgs(cfg *config.Config, args app.Args) app.Args {
	if args.Notification == nil && cfg.NotificationSet {
		t := content.Toggle(cfg.Notification)
		args.Notification = &t
	}
	if args.Blink == nil && cfg.BlinkSet {
		t := content.Toggle(cfg.Blink)
		args.Blink = &t
	}
	return args
}
