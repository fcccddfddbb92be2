package app

import (
	"time"

	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/storage"
)

// Args are the startup overrides from the command line. Nil fields were not
// given.
type Args struct {
	Countdown    *time.Duration
	Work         *time.Duration
	Pause        *time.Duration
	Event        *storage.Event
	Mode         *content.Content
	Style        *content.Style
	WithDecis    bool
	Menu         bool
	Notification *content.Toggle
	Blink        *content.Toggle
}

// Merge applies startup overrides to the stored state. Overrides always
// win. An explicit duration replaces both initial and current value, and a
// countdown duration also drops the elapsed time. Without --mode the screen
// follows the durations that were given.
func Merge(args Args, st storage.State, now time.Time) storage.State {
	st.WithDecis = args.WithDecis || st.WithDecis
	st.ShowMenu = args.Menu || st.ShowMenu
	if args.Notification != nil {
		st.Notification = *args.Notification
	}
	if args.Blink != nil {
		st.Blink = *args.Blink
	}
	if args.Style != nil {
		st.Style = *args.Style
	}

	switch {
	case args.Mode != nil:
		st.Content = *args.Mode
	case args.Work != nil || args.Pause != nil:
		st.Content = content.ScreenPomodoro
	case args.Countdown != nil:
		st.Content = content.ScreenCountdown
	case args.Event != nil:
		st.Content = content.ScreenEvent
	}

	if args.Work != nil {
		st.InitialWork, st.CurrentWork = *args.Work, *args.Work
	}
	if args.Pause != nil {
		st.InitialPause, st.CurrentPause = *args.Pause, *args.Pause
	}
	if args.Countdown != nil {
		st.InitialCountdown = *args.Countdown
		st.ElapsedCountdown = 0
	}
	// A countdown always restarts from its initial value.
	st.CurrentCountdown = st.InitialCountdown

	if args.Event != nil {
		st.Event = *args.Event
		st.Event.Start = now
	}
	return st
}
