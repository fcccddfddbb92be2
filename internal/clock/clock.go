// Package clock implements the clock engine shared by every clock-based
// screen: a count-down or count-up value with pause, digit editing and a
// completion signal raised exactly once when the value reaches its bound.
package clock

import (
	"time"

	"github.com/alexander-akhmetov/clockwork/internal/event"
)

const (
	// TickValue is the period of the tick source and the default amount a
	// running clock moves per tick.
	TickValue = 100 * time.Millisecond

	// MaxDuration is the largest value any clock can hold (999:59:59.9).
	MaxDuration = 999*time.Hour + 59*time.Minute + 59*time.Second + 900*time.Millisecond
)

// Direction is the way a clock moves on ticks.
type Direction int

const (
	// Down counts towards zero.
	Down Direction = iota
	// Up counts towards the configured maximum.
	Up
)

// Notifier receives completion events. event.Queue satisfies it.
type Notifier interface {
	Push(e event.Event) bool
}

// Config describes a new clock.
type Config struct {
	Name      string
	Type      event.ClockType
	Direction Direction
	Initial   time.Duration
	Current   time.Duration
	Tick      time.Duration // defaults to TickValue
	Max       time.Duration // defaults to MaxDuration
	WithDecis bool
	Notifier  Notifier
}

// Clock is a single timer value. It is not safe for concurrent use; it is
// only ever touched from the run loop.
type Clock struct {
	name      string
	typ       event.ClockType
	direction Direction
	initial   time.Duration
	current   time.Duration
	tick      time.Duration
	max       time.Duration
	withDecis bool
	notifier  Notifier

	running bool
	done    bool

	editing    bool
	unit       Unit
	beforeEdit time.Duration
}

// New creates a clock. Values are clamped into [0, Max]. A clock created at
// its bound starts out Done without raising a completion event, which is how
// a finished session is resumed.
func New(cfg Config) *Clock {
	if cfg.Tick <= 0 {
		cfg.Tick = TickValue
	}
	if cfg.Max <= 0 {
		cfg.Max = MaxDuration
	}
	c := &Clock{
		name:      cfg.Name,
		typ:       cfg.Type,
		direction: cfg.Direction,
		initial:   clamp(cfg.Initial, cfg.Max),
		current:   clamp(cfg.Current, cfg.Max),
		tick:      cfg.Tick,
		max:       cfg.Max,
		withDecis: cfg.WithDecis,
		notifier:  cfg.Notifier,
		unit:      Minutes,
	}
	c.done = c.atBound()
	return c
}

func clamp(d, maxValue time.Duration) time.Duration {
	return min(max(d, 0), maxValue)
}

func (c *Clock) atBound() bool {
	if c.direction == Down {
		return c.current == 0
	}
	return c.current == c.max
}

// Tick advances a running clock by its tick value. It returns true on the
// tick that made the clock reach its bound.
func (c *Clock) Tick() bool {
	if !c.running || c.editing || c.done {
		return false
	}
	switch c.direction {
	case Down:
		c.current = clamp(c.current-c.tick, c.max)
	case Up:
		c.current = clamp(c.current+c.tick, c.max)
	}
	if !c.atBound() {
		return false
	}
	c.running = false
	c.done = true
	if c.notifier != nil {
		c.notifier.Push(event.ClockDone(c.typ, c.name))
	}
	return true
}

// ToggleRun starts a stopped clock or pauses a running one. It does nothing
// while editing or once the clock is Done.
func (c *Clock) ToggleRun() {
	if c.editing || c.done {
		return
	}
	c.running = !c.running
}

// Run starts the clock unless it is editing or Done.
func (c *Clock) Run() {
	if c.editing || c.done {
		return
	}
	c.running = true
}

// Pause stops the clock.
func (c *Clock) Pause() {
	c.running = false
}

// Reset restores the initial value and clears running, editing and Done.
func (c *Clock) Reset() {
	c.current = c.initial
	c.running = false
	c.editing = false
	c.done = false
}

// SetInitial replaces both initial and current value and stops the clock.
func (c *Clock) SetInitial(d time.Duration) {
	c.initial = clamp(d, c.max)
	c.Reset()
}

// EnterEdit switches into edit mode. Editing implies a paused clock.
func (c *Clock) EnterEdit() {
	if c.editing {
		return
	}
	c.running = false
	c.editing = true
	c.beforeEdit = c.current
	if c.unit == Decis && !c.withDecis {
		c.unit = Seconds
	}
}

// ExitEdit leaves edit mode keeping the edited value. A count-down clock
// takes the edited value as its new initial value. The clock is not resumed.
func (c *Clock) ExitEdit() {
	if !c.editing {
		return
	}
	c.editing = false
	if c.direction == Down {
		c.initial = c.current
	}
	c.done = c.atBound()
}

// CancelEdit leaves edit mode restoring the value from before the edit.
func (c *Clock) CancelEdit() {
	if !c.editing {
		return
	}
	c.current = c.beforeEdit
	c.editing = false
	c.done = c.atBound()
}

// EditAdjust moves the current value by delta units, clamped to [0, Max].
// It only works in edit mode and never while running.
func (c *Clock) EditAdjust(u Unit, delta int) {
	if !c.editing || c.running {
		return
	}
	c.current = clamp(c.current+time.Duration(delta)*u.Duration(), c.max)
	c.done = false
}

// EditUp increments the digit group under the edit cursor.
func (c *Clock) EditUp() { c.EditAdjust(c.unit, 1) }

// EditDown decrements the digit group under the edit cursor.
func (c *Clock) EditDown() { c.EditAdjust(c.unit, -1) }

// EditNext moves the edit cursor to the next larger unit, wrapping around.
func (c *Clock) EditNext() {
	if !c.editing {
		return
	}
	c.unit = c.unit.next(c.withDecis)
}

// EditPrev moves the edit cursor to the next smaller unit, wrapping around.
func (c *Clock) EditPrev() {
	if !c.editing {
		return
	}
	c.unit = c.unit.prev(c.withDecis)
}

// SetWithDecis toggles the sub-second display.
func (c *Clock) SetWithDecis(on bool) {
	c.withDecis = on
	if !on && c.unit == Decis {
		c.unit = Seconds
	}
}

// PercentageDone reports progress in percent. For count-down clocks it is
// the consumed share of the initial value; for count-up clocks the share of
// the maximum.
func (c *Clock) PercentageDone() (int, bool) {
	switch c.direction {
	case Down:
		if c.initial == 0 {
			if c.current == 0 {
				return 100, true
			}
			return 0, true
		}
		if c.current >= c.initial {
			return 0, true
		}
		return int((c.initial - c.current) * 100 / c.initial), true
	case Up:
		if c.max <= 0 {
			return 0, false
		}
		return int(c.current * 100 / c.max), true
	}
	return 0, false
}

func (c *Clock) Name() string             { return c.name }
func (c *Clock) Type() event.ClockType    { return c.typ }
func (c *Clock) Direction() Direction     { return c.direction }
func (c *Clock) Initial() time.Duration   { return c.initial }
func (c *Clock) Current() time.Duration   { return c.current }
func (c *Clock) Max() time.Duration       { return c.max }
func (c *Clock) TickValue() time.Duration { return c.tick }
func (c *Clock) IsRunning() bool          { return c.running }
func (c *Clock) IsEditing() bool          { return c.editing }
func (c *Clock) IsDone() bool             { return c.done }
func (c *Clock) EditUnit() Unit           { return c.unit }
func (c *Clock) WithDecis() bool          { return c.withDecis }

// Format renders the current value for display.
func (c *Clock) Format() string {
	return Format(c.current, c.withDecis)
}
