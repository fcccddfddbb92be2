package tui

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/alexander-akhmetov/clockwork/internal/app"
	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/storage"
)

// durationValue accepts SS, MM:SS, HH:MM:SS or Go duration syntax.
type durationValue time.Duration

func (d *durationValue) String() string { return clock.Format(time.Duration(*d), false) }
func (d *durationValue) Type() string   { return "duration" }

func (d *durationValue) Set(s string) error {
	v, err := clock.Parse(s)
	if err != nil {
		return err
	}
	*d = durationValue(v)
	return nil
}

type toggleValue content.Toggle

func (t *toggleValue) String() string { return content.Toggle(*t).String() }
func (t *toggleValue) Type() string   { return "on|off" }

func (t *toggleValue) Set(s string) error {
	v, err := content.ParseToggle(s)
	if err != nil {
		return err
	}
	*t = toggleValue(v)
	return nil
}

type modeValue content.Content

func (m *modeValue) String() string { return content.Content(*m).String() }
func (m *modeValue) Type() string   { return "mode" }

func (m *modeValue) Set(s string) error {
	v, err := content.ParseContent(s)
	if err != nil {
		return err
	}
	*m = modeValue(v)
	return nil
}

type styleValue content.Style

func (st *styleValue) String() string { return content.Style(*st).String() }
func (st *styleValue) Type() string   { return "style" }

func (st *styleValue) Set(s string) error {
	v, err := content.ParseStyle(s)
	if err != nil {
		return err
	}
	*st = styleValue(v)
	return nil
}

// eventValue reads "YYYY-MM-DD HH:MM:SS[,title]".
type eventValue storage.Event

func (e *eventValue) Type() string { return "event" }

func (e *eventValue) String() string {
	if e.Target.IsZero() {
		return ""
	}
	s := e.Target.Format(content.EventLayout)
	if e.Title != "" {
		s += "," + e.Title
	}
	return s
}

func (e *eventValue) Set(s string) error {
	target, title, err := content.ParseEventArg(s)
	if err != nil {
		return err
	}
	*e = eventValue{Target: target, Title: title}
	return nil
}

// startFlags holds the values of the root command's flags.
type startFlags struct {
	countdown    durationValue
	work         durationValue
	pause        durationValue
	event        eventValue
	mode         modeValue
	style        styleValue
	decis        bool
	menu         bool
	notification toggleValue
	blink        toggleValue
	sound        string
	reset        bool
	log          bool
}

func (f *startFlags) register(fs *pflag.FlagSet) {
	fs.VarP(&f.countdown, "countdown", "c", "Countdown duration (e.g. 10:00, 1:30:00 or 90m)")
	fs.VarP(&f.work, "work", "w", "Pomodoro work duration")
	fs.VarP(&f.pause, "pause", "p", "Pomodoro pause duration")
	fs.VarP(&f.event, "event", "e", `Event as "YYYY-MM-DD HH:MM:SS[,title]"`)
	fs.VarP(&f.mode, "mode", "m", "Screen to start on: countdown, timer, pomodoro, event, localtime")
	fs.VarP(&f.style, "style", "s", "Digit style: full, light, medium, dark, thick, cross, braille")
	fs.BoolVarP(&f.decis, "decis", "d", false, "Show tenths of a second")
	fs.BoolVar(&f.menu, "menu", false, "Open the key menu")
	fs.VarP(&f.notification, "notification", "n", "Desktop notification when a clock is done (on, off)")
	fs.Var(&f.blink, "blink", "Blink a finished clock (on, off)")
	fs.StringVar(&f.sound, "sound", "", "Sound file played when a clock is done")
	fs.BoolVarP(&f.reset, "reset", "r", false, "Ignore the stored state and start from defaults")
	fs.BoolVar(&f.log, "log", false, "Write debug logs to the log file")
}

// args converts the flags the user actually gave into startup overrides.
func (f *startFlags) args(fs *pflag.FlagSet) app.Args {
	args := app.Args{WithDecis: f.decis, Menu: f.menu}
	if fs.Changed("countdown") {
		d := time.Duration(f.countdown)
		args.Countdown = &d
	}
	if fs.Changed("work") {
		d := time.Duration(f.work)
		args.Work = &d
	}
	if fs.Changed("pause") {
		d := time.Duration(f.pause)
		args.Pause = &d
	}
	if fs.Changed("event") {
		ev := storage.Event(f.event)
		args.Event = &ev
	}
	if fs.Changed("mode") {
		m := content.Content(f.mode)
		args.Mode = &m
	}
	if fs.Changed("style") {
		st := content.Style(f.style)
		args.Style = &st
	}
	if fs.Changed("notification") {
		t := content.Toggle(f.notification)
		args.Notification = &t
	}
	if fs.Changed("blink") {
		t := content.Toggle(f.blink)
		args.Blink = &t
	}
	return args
}
