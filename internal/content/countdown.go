package content

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/event"
)

const day = 24 * time.Hour

// CountdownConfig describes a Countdown screen, usually restored from the
// previous session.
type CountdownConfig struct {
	Initial   time.Duration
	Current   time.Duration
	Elapsed   time.Duration
	Tick      time.Duration
	WithDecis bool
	Now       AppTime
	Notifier  clock.Notifier
}

// Countdown counts down from a duration. Next to the clock it tracks how
// long the countdown has been running in total, so a resumed session keeps
// its progress.
type Countdown struct {
	clock   *clock.Clock
	elapsed time.Duration
	entry   *TimeEntry
	now     AppTime
}

// NewCountdown creates the Countdown screen.
func NewCountdown(cfg CountdownConfig) *Countdown {
	return &Countdown{
		clock: clock.New(clock.Config{
			Name:      "Countdown",
			Type:      event.ClockCountdown,
			Direction: clock.Down,
			Initial:   cfg.Initial,
			Current:   cfg.Current,
			Tick:      cfg.Tick,
			WithDecis: cfg.WithDecis,
			Notifier:  cfg.Notifier,
		}),
		elapsed: max(cfg.Elapsed, 0),
		now:     cfg.Now,
	}
}

func (c *Countdown) Update(ev event.Event) (event.Event, bool) {
	if ev.Kind == event.KindTick {
		before := c.clock.Current()
		c.clock.Tick()
		c.elapsed += before - c.clock.Current()
		return ev, false
	}

	k, ok := pressedKey(ev)
	if !ok {
		return ev, true
	}
	if c.entry != nil {
		return ev, !c.updateEntry(k)
	}
	if !c.clock.IsEditing() {
		switch {
		case key.Matches(k, Keys.EditTime):
			c.entry = NewTimeEntry(c.now.TimeOfDay() + c.clock.Current())
			return ev, false
		case key.Matches(k, Keys.Reset):
			c.clock.Reset()
			c.elapsed = 0
			return ev, false
		}
	}
	return ev, !updateClock(c.clock, k)
}

func (c *Countdown) updateEntry(k event.Key) bool {
	switch {
	case key.Matches(k, Keys.Commit):
		remaining := c.entry.Value() - c.now.TimeOfDay()
		if remaining <= 0 {
			remaining += day
		}
		c.clock.SetInitial(remaining.Truncate(time.Second))
		c.elapsed = 0
		c.entry = nil
	case key.Matches(k, Keys.Cancel), key.Matches(k, Keys.EditTime):
		c.entry = nil
	case key.Matches(k, Keys.Left):
		c.entry.Next()
	case key.Matches(k, Keys.Right):
		c.entry.Prev()
	case key.Matches(k, Keys.Up):
		c.entry.Up()
	case key.Matches(k, Keys.Down):
		c.entry.Down()
	default:
		return false
	}
	return true
}

// SetAppTime hands the latest local time to the screen.
func (c *Countdown) SetAppTime(t AppTime) { c.now = t }

// SetWithDecis toggles the sub-second display.
func (c *Countdown) SetWithDecis(on bool) { c.clock.SetWithDecis(on) }

func (c *Countdown) Clock() *clock.Clock    { return c.clock }
func (c *Countdown) Elapsed() time.Duration { return c.elapsed }
func (c *Countdown) IsRunning() bool        { return c.clock.IsRunning() }
func (c *Countdown) IsClockEditMode() bool  { return c.clock.IsEditing() }
func (c *Countdown) IsTimeEditMode() bool   { return c.entry != nil }
func (c *Countdown) TimeEntry() *TimeEntry  { return c.entry }
func (c *Countdown) AppTime() AppTime       { return c.now }

// TimeEntry edits a local time of day, wrapping around midnight.
type TimeEntry struct {
	value time.Duration
	unit  clock.Unit
}

// NewTimeEntry starts editing at the given time of day. Sub-second parts
// are dropped.
func NewTimeEntry(tod time.Duration) *TimeEntry {
	return &TimeEntry{
		value: wrapDay(tod).Truncate(time.Second),
		unit:  clock.Minutes,
	}
}

func wrapDay(d time.Duration) time.Duration {
	d %= day
	if d < 0 {
		d += day
	}
	return d
}

func (e *TimeEntry) Value() time.Duration { return e.value }
func (e *TimeEntry) Unit() clock.Unit     { return e.unit }

func (e *TimeEntry) Up()   { e.value = wrapDay(e.value + e.unit.Duration()) }
func (e *TimeEntry) Down() { e.value = wrapDay(e.value - e.unit.Duration()) }

// Next moves the cursor to the next larger unit.
func (e *TimeEntry) Next() {
	switch e.unit {
	case clock.Seconds:
		e.unit = clock.Minutes
	case clock.Minutes:
		e.unit = clock.Hours
	default:
		e.unit = clock.Seconds
	}
}

// Prev moves the cursor to the next smaller unit.
func (e *TimeEntry) Prev() {
	switch e.unit {
	case clock.Hours:
		e.unit = clock.Minutes
	case clock.Minutes:
		e.unit = clock.Seconds
	default:
		e.unit = clock.Hours
	}
}
