package app

import (
	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/event"
	"github.com/alexander-akhmetov/clockwork/internal/storage"
)

// EditMode tells the footer which keys apply.
type EditMode int

const (
	EditNone EditMode = iota
	// EditClock is digit editing of a clock.
	EditClock
	// EditTime is the countdown's local time entry.
	EditTime
	// EditEvent is editing of the event timestamp and title.
	EditEvent
)

// Snapshot is the read-only view handed to the screen. The screen pointers
// must not be mutated and must not be kept past Draw.
type Snapshot struct {
	Content       content.Content
	Style         content.Style
	WithDecis     bool
	Blink         bool
	ShowMenu      bool
	FooterTime    bool
	AppTimeFormat content.TimeFormat
	Now           content.AppTime
	EditMode      EditMode
	Running       bool
	Percentage    int
	HasPercentage bool
	Cursor        *event.Position
	Width         int
	Height        int

	Countdown *content.Countdown
	Timer     *content.Timer
	Pomodoro  *content.Pomodoro
	Event     *content.Event
	LocalTime *content.LocalTime
}

// Snapshot captures what the screen needs to draw a frame.
func (a *App) Snapshot() Snapshot {
	pct, hasPct := a.percentageDone()
	return Snapshot{
		Content:       a.content,
		Style:         a.style,
		WithDecis:     a.withDecis,
		Blink:         a.blink == content.On,
		ShowMenu:      a.showMenu,
		FooterTime:    a.footerTime,
		AppTimeFormat: a.appTimeFormat,
		Now:           a.now,
		EditMode:      a.editMode(),
		Running:       a.clockIsRunning(),
		Percentage:    pct,
		HasPercentage: hasPct,
		Cursor:        a.cursor,
		Width:         a.width,
		Height:        a.height,
		Countdown:     a.countdown,
		Timer:         a.timer,
		Pomodoro:      a.pomodoro,
		Event:         a.event,
		LocalTime:     a.localTime,
	}
}

func (a *App) editMode() EditMode {
	switch a.content {
	case content.ScreenCountdown:
		switch {
		case a.countdown.IsClockEditMode():
			return EditClock
		case a.countdown.IsTimeEditMode():
			return EditTime
		}
	case content.ScreenTimer:
		if a.timer.Clock().IsEditing() {
			return EditClock
		}
	case content.ScreenPomodoro:
		if a.pomodoro.Clock().IsEditing() {
			return EditClock
		}
	case content.ScreenEvent:
		if a.event.IsEditing() {
			return EditEvent
		}
	}
	return EditNone
}

func (a *App) clockIsRunning() bool {
	switch a.content {
	case content.ScreenCountdown:
		return a.countdown.IsRunning()
	case content.ScreenTimer:
		return a.timer.Clock().IsRunning()
	case content.ScreenPomodoro:
		return a.pomodoro.Clock().IsRunning()
	case content.ScreenEvent:
		return true
	}
	return false
}

func (a *App) percentageDone() (int, bool) {
	switch a.content {
	case content.ScreenCountdown:
		return a.countdown.Clock().PercentageDone()
	case content.ScreenPomodoro:
		return a.pomodoro.Clock().PercentageDone()
	case content.ScreenEvent:
		return a.event.PercentageDone(), true
	}
	return 0, false
}

// Content returns the active screen.
func (a *App) Content() content.Content { return a.content }

// ToStorage builds the state persisted at exit.
func (a *App) ToStorage() storage.State {
	work, pause := a.pomodoro.WorkClock(), a.pomodoro.PauseClock()
	return storage.State{
		Content:          a.content,
		ShowMenu:         a.showMenu,
		Notification:     a.notification,
		Blink:            a.blink,
		AppTimeFormat:    a.appTimeFormat,
		FooterAppTime:    content.Toggle(a.footerTime),
		Style:            a.style,
		WithDecis:        a.withDecis,
		PomodoroPhase:    a.pomodoro.Phase(),
		PomodoroRound:    a.pomodoro.Round(),
		InitialWork:      work.Initial(),
		CurrentWork:      work.Current(),
		InitialPause:     pause.Initial(),
		CurrentPause:     pause.Current(),
		InitialCountdown: a.countdown.Clock().Initial(),
		CurrentCountdown: a.countdown.Clock().Current(),
		ElapsedCountdown: a.countdown.Elapsed(),
		CurrentTimer:     a.timer.Clock().Current(),
		Event: storage.Event{
			Target: a.event.Target(),
			Title:  a.event.Title(),
			Start:  a.event.Start(),
		},
	}
}
