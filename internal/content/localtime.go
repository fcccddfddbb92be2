package content

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexander-akhmetov/clockwork/internal/event"
)

// LocalTime shows the wall clock. It keeps no clock of its own: the
// display is derived from the AppTime handed in by the controller.
type LocalTime struct {
	now    AppTime
	format TimeFormat
}

// NewLocalTime creates the LocalTime screen.
func NewLocalTime(now AppTime, format TimeFormat) *LocalTime {
	return &LocalTime{now: now, format: format}
}

func (l *LocalTime) Update(ev event.Event) (event.Event, bool) {
	if ev.Kind == event.KindTick {
		return ev, false
	}
	k, ok := pressedKey(ev)
	if ok && key.Matches(k, Keys.TimeFormat) {
		l.format = l.format.Next()
		return ev, false
	}
	return ev, true
}

// SetAppTime hands the latest local time to the screen.
func (l *LocalTime) SetAppTime(t AppTime) { l.now = t }

func (l *LocalTime) SetFormat(f TimeFormat) { l.format = f }
func (l *LocalTime) Format() TimeFormat     { return l.format }
func (l *LocalTime) AppTime() AppTime       { return l.now }
