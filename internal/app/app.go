// Package app is the application controller. It pulls merged events,
// hands each one to the active screen, runs the global key table on keys
// the screen passed through and decides when a new frame is drawn.
//
// All state lives on the goroutine running Run; screens and the controller
// are never touched from anywhere else.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/debug"
	"github.com/alexander-akhmetov/clockwork/internal/event"
	"github.com/alexander-akhmetov/clockwork/internal/storage"
)

// Source yields merged events. *event.Multiplexer implements it.
type Source interface {
	Next(ctx context.Context) (event.Event, bool)
}

// Screen draws snapshots. Draw runs on the controller goroutine.
type Screen interface {
	Draw(s Snapshot)
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(msg string) error
}

// Player plays the completion sound.
type Player interface {
	Play() error
}

type mode int

const (
	modeRunning mode = iota
	modeQuit
)

// Options configure a new App.
type Options struct {
	State    storage.State
	TimerMax time.Duration
	RoundOn  content.Phase
	// Tick is the clock step per tick; defaults to clock.TickValue.
	Tick time.Duration
	// Events receives completion events from the clocks, usually the
	// multiplexer's internal queue.
	Events   clock.Notifier
	Notifier Notifier
	Player   Player
	// Now defaults to time.Now.
	Now func() time.Time
}

// App is the application controller.
type App struct {
	mode    mode
	content content.Content

	countdown *content.Countdown
	timer     *content.Timer
	pomodoro  *content.Pomodoro
	event     *content.Event
	localTime *content.LocalTime

	style         content.Style
	withDecis     bool
	notification  content.Toggle
	blink         content.Toggle
	appTimeFormat content.TimeFormat
	showMenu      bool
	// footerTime is false when the footer hides the local time.
	footerTime bool

	now    content.AppTime
	cursor *event.Position
	width  int
	height int

	notifier Notifier
	player   Player
	clockNow func() time.Time
}

// New builds the controller and its screens from a (merged) state.
func New(opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Tick <= 0 {
		opts.Tick = clock.TickValue
	}
	st := opts.State
	now := content.AppTime{Time: opts.Now()}

	return &App{
		mode:    modeRunning,
		content: st.Content,
		countdown: content.NewCountdown(content.CountdownConfig{
			Initial:   st.InitialCountdown,
			Current:   st.CurrentCountdown,
			Elapsed:   st.ElapsedCountdown,
			Tick:      opts.Tick,
			WithDecis: st.WithDecis,
			Now:       now,
			Notifier:  opts.Events,
		}),
		timer: content.NewTimer(clock.New(clock.Config{
			Name:      "Timer",
			Type:      event.ClockTimer,
			Direction: clock.Up,
			Current:   st.CurrentTimer,
			Tick:      opts.Tick,
			Max:       opts.TimerMax,
			WithDecis: st.WithDecis,
			Notifier:  opts.Events,
		})),
		pomodoro: content.NewPomodoro(content.PomodoroConfig{
			Phase:        st.PomodoroPhase,
			Round:        st.PomodoroRound,
			InitialWork:  st.InitialWork,
			CurrentWork:  st.CurrentWork,
			InitialPause: st.InitialPause,
			CurrentPause: st.CurrentPause,
			RoundOn:      opts.RoundOn,
			Tick:         opts.Tick,
			WithDecis:    st.WithDecis,
			Notifier:     opts.Events,
		}),
		event: content.NewEvent(content.EventConfig{
			Target:    st.Event.Target,
			Title:     st.Event.Title,
			Start:     st.Event.Start,
			Now:       now,
			WithDecis: st.WithDecis,
		}),
		localTime:     content.NewLocalTime(now, st.AppTimeFormat),
		style:         st.Style,
		withDecis:     st.WithDecis,
		notification:  st.Notification,
		blink:         st.Blink,
		appTimeFormat: st.AppTimeFormat,
		showMenu:      st.ShowMenu,
		footerTime:    bool(st.FooterAppTime),
		now:           now,
		notifier:      opts.Notifier,
		player:        opts.Player,
		clockNow:      opts.Now,
	}
}

// Run is the event loop. It draws once, then handles events until the quit
// key is pressed, the source is exhausted or ctx is cancelled.
func (a *App) Run(ctx context.Context, src Source, screen Screen) error {
	screen.Draw(a.Snapshot())
	for a.IsRunning() {
		ev, ok := src.Next(ctx)
		if !ok {
			debug.Logf("event source done: %v", ctx.Err())
			return nil
		}
		if a.Handle(ev) {
			screen.Draw(a.Snapshot())
		}
	}
	debug.Logf("quit")
	return nil
}

// IsRunning reports whether the quit key has not been pressed yet.
func (a *App) IsRunning() bool { return a.mode == modeRunning }

// Handle processes one event and reports whether a redraw is needed.
func (a *App) Handle(ev event.Event) bool {
	if ev.Kind.Internal() {
		return a.handleInternal(ev)
	}
	return a.handleTerminal(ev)
}

func (a *App) handleTerminal(ev event.Event) bool {
	switch ev.Kind {
	case event.KindTick:
		a.now = content.AppTime{Time: a.clockNow()}
		a.countdown.SetAppTime(a.now)
		a.event.SetAppTime(a.now)
		a.localTime.SetAppTime(a.now)
	case event.KindResize:
		a.width, a.height = ev.Width, ev.Height
	case event.KindInputError:
		debug.Logf("input error: %v", ev.Err)
	case event.KindKey:
		debug.Logf("key %q", ev.Key.String())
	}

	formatBefore := a.localTime.Format()
	rest, passed := a.active().Update(ev)
	if a.content == content.ScreenLocalTime && a.localTime.Format() != formatBefore {
		a.appTimeFormat = a.localTime.Format()
	}
	if passed && rest.IsKeyPress() {
		a.handleKey(rest.Key)
	}

	switch ev.Kind {
	case event.KindTick, event.KindKey, event.KindResize:
		return true
	}
	return false
}

func (a *App) active() content.Handler {
	switch a.content {
	case content.ScreenTimer:
		return a.timer
	case content.ScreenPomodoro:
		return a.pomodoro
	case content.ScreenEvent:
		return a.event
	case content.ScreenLocalTime:
		return a.localTime
	default:
		return a.countdown
	}
}

func (a *App) handleKey(k event.Key) {
	switch {
	case key.Matches(k, Keys.Quit):
		a.mode = modeQuit
	case key.Matches(k, Keys.Countdown):
		a.content = content.ScreenCountdown
	case key.Matches(k, Keys.Timer):
		a.content = content.ScreenTimer
	case key.Matches(k, Keys.Pomodoro):
		a.content = content.ScreenPomodoro
	case key.Matches(k, Keys.Event):
		a.content = content.ScreenEvent
	case key.Matches(k, Keys.LocalTime):
		a.content = content.ScreenLocalTime
	case key.Matches(k, Keys.Next):
		a.content = a.content.Next()
	case key.Matches(k, Keys.Prev):
		a.content = a.content.Prev()
	case key.Matches(k, Keys.TimeFormat):
		a.cycleFooterTime()
	case key.Matches(k, Keys.Style):
		a.style = a.style.Next()
	case key.Matches(k, Keys.Decis):
		a.SetWithDecis(!a.withDecis)
	case key.Matches(k, Keys.ToggleMenu):
		a.showMenu = !a.showMenu
	case key.Matches(k, Keys.ShowMenu):
		a.showMenu = true
	case key.Matches(k, Keys.HideMenu):
		a.showMenu = false
	}
}

// cycleFooterTime steps the footer clock through hidden, then every
// format, then hidden again.
func (a *App) cycleFooterTime() {
	switch {
	case !a.footerTime:
		a.footerTime = true
		a.appTimeFormat = content.FirstFormat
	case a.appTimeFormat != content.LastFormat:
		a.appTimeFormat = a.appTimeFormat.Next()
	default:
		a.footerTime = false
		return
	}
	a.localTime.SetFormat(a.appTimeFormat)
}

// SetWithDecis switches the sub-second display on every clock.
func (a *App) SetWithDecis(on bool) {
	a.withDecis = on
	a.countdown.SetWithDecis(on)
	a.timer.SetWithDecis(on)
	a.pomodoro.SetWithDecis(on)
	a.event.SetWithDecis(on)
}

func (a *App) handleInternal(ev event.Event) bool {
	switch ev.Kind {
	case event.KindClockDone:
		a.clockDone(ev)
		return false
	case event.KindSetCursor:
		a.cursor = ev.Cursor
		return true
	}
	return false
}

// clockDone runs the completion side effects. Failures are logged only.
func (a *App) clockDone(ev event.Event) {
	debug.Logf("clock done: %s %s", ev.Clock, ev.Name)
	if a.notification == content.On && a.notifier != nil {
		if err := a.notifier.Notify(DoneMessage(ev.Clock, ev.Name)); err != nil {
			debug.Logf("notification for %s: %v", ev.Name, err)
		}
	}
	if a.player != nil {
		if err := a.player.Play(); err != nil {
			debug.Logf("sound: %v", err)
		}
	}
}

// DoneMessage is the notification text for a finished clock.
func DoneMessage(t event.ClockType, name string) string {
	var msg string
	if t == event.ClockTimer {
		msg = fmt.Sprintf("%s stopped by reaching its maximum value.", name)
	} else {
		msg = fmt.Sprintf("%s %s done!", t, name)
	}
	return strings.ToUpper(msg)
}
