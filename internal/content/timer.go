package content

import (
	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/event"
)

// Timer is a stopwatch. It counts up to the clock's maximum and stops
// there with a completion signal instead of overflowing.
type Timer struct {
	clock *clock.Clock
}

// NewTimer wraps a count-up clock.
func NewTimer(c *clock.Clock) *Timer {
	return &Timer{clock: c}
}

func (t *Timer) Update(ev event.Event) (event.Event, bool) {
	if ev.Kind == event.KindTick {
		t.clock.Tick()
		return ev, false
	}
	k, ok := pressedKey(ev)
	if !ok {
		return ev, true
	}
	return ev, !updateClock(t.clock, k)
}

// SetWithDecis toggles the sub-second display.
func (t *Timer) SetWithDecis(on bool) { t.clock.SetWithDecis(on) }

// Clock returns the underlying clock.
func (t *Timer) Clock() *clock.Clock { return t.clock }
