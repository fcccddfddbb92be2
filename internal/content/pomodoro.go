package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/event"
)

// Phase is the half of a pomodoro cycle.
type Phase int

const (
	PhaseWork Phase = iota
	PhasePause
)

func (p Phase) String() string {
	if p == PhasePause {
		return "pause"
	}
	return "work"
}

// Other returns the opposite phase.
func (p Phase) Other() Phase {
	if p == PhaseWork {
		return PhasePause
	}
	return PhaseWork
}

// ParsePhase reads work or pause.
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work":
		return PhaseWork, nil
	case "pause", "break":
		return PhasePause, nil
	}
	return PhaseWork, fmt.Errorf("unknown pomodoro phase %q (work, pause)", s)
}

// PomodoroConfig describes a Pomodoro screen.
type PomodoroConfig struct {
	Phase        Phase
	Round        int
	InitialWork  time.Duration
	CurrentWork  time.Duration
	InitialPause time.Duration
	CurrentPause time.Duration
	// RoundOn is the phase whose completion counts a new round.
	RoundOn   Phase
	Tick      time.Duration
	WithDecis bool
	Notifier  clock.Notifier
}

// Pomodoro alternates a work and a pause clock. When the active clock is
// done the other phase starts by itself.
type Pomodoro struct {
	work    *clock.Clock
	pause   *clock.Clock
	phase   Phase
	round   int
	roundOn Phase
}

// NewPomodoro creates the Pomodoro screen. Rounds start at 1.
func NewPomodoro(cfg PomodoroConfig) *Pomodoro {
	newClock := func(name string, initial, current time.Duration) *clock.Clock {
		return clock.New(clock.Config{
			Name:      name,
			Type:      event.ClockPomodoro,
			Direction: clock.Down,
			Initial:   initial,
			Current:   current,
			Tick:      cfg.Tick,
			WithDecis: cfg.WithDecis,
			Notifier:  cfg.Notifier,
		})
	}
	return &Pomodoro{
		work:    newClock("Work", cfg.InitialWork, cfg.CurrentWork),
		pause:   newClock("Pause", cfg.InitialPause, cfg.CurrentPause),
		phase:   cfg.Phase,
		round:   max(cfg.Round, 1),
		roundOn: cfg.RoundOn,
	}
}

func (p *Pomodoro) Update(ev event.Event) (event.Event, bool) {
	if ev.Kind == event.KindTick {
		if p.Clock().Tick() {
			p.advance()
		}
		return ev, false
	}

	k, ok := pressedKey(ev)
	if !ok {
		return ev, true
	}
	if !p.Clock().IsEditing() {
		switch {
		case key.Matches(k, Keys.SwitchPhase):
			p.SwitchPhase()
			return ev, false
		case key.Matches(k, Keys.ResetRound):
			p.ResetAll()
			return ev, false
		}
	}
	return ev, !updateClock(p.Clock(), k)
}

// advance chains into the next phase after the active clock finished.
func (p *Pomodoro) advance() {
	if p.phase == p.roundOn {
		p.round++
	}
	p.phase = p.phase.Other()
	next := p.Clock()
	next.Reset()
	next.Run()
}

// SwitchPhase flips between work and pause by hand. The clock left behind
// is paused; the round counter is not touched.
func (p *Pomodoro) SwitchPhase() {
	p.Clock().Pause()
	p.phase = p.phase.Other()
}

// ResetAll resets both clocks, the phase and the round counter.
func (p *Pomodoro) ResetAll() {
	p.work.Reset()
	p.pause.Reset()
	p.phase = PhaseWork
	p.round = 1
}

// Clock returns the clock of the active phase.
func (p *Pomodoro) Clock() *clock.Clock {
	if p.phase == PhasePause {
		return p.pause
	}
	return p.work
}

// SetWithDecis toggles the sub-second display.
func (p *Pomodoro) SetWithDecis(on bool) {
	p.work.SetWithDecis(on)
	p.pause.SetWithDecis(on)
}

func (p *Pomodoro) WorkClock() *clock.Clock  { return p.work }
func (p *Pomodoro) PauseClock() *clock.Clock { return p.pause }
func (p *Pomodoro) Phase() Phase             { return p.phase }
func (p *Pomodoro) Round() int               { return p.round }
