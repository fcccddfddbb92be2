package content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/clockwork/internal/event"
)

// EventLayout is the timestamp layout used for input and storage.
const EventLayout = "2006-01-02 15:04:05"

var eventLayouts = []string{
	EventLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ErrEmptyEvent is returned when no timestamp was given.
var ErrEmptyEvent = errors.New("event timestamp is empty")

// ParseEventTime reads a local timestamp such as "2026-12-31 23:59:59".
func ParseEventTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyEvent
	}
	for _, layout := range eventLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event time %q (expected %s)", s, "YYYY-MM-DD HH:MM:SS")
}

// ParseEventArg reads "YYYY-MM-DD HH:MM:SS[,title]".
func ParseEventArg(s string) (time.Time, string, error) {
	ts, title, _ := strings.Cut(s, ",")
	t, err := ParseEventTime(ts)
	if err != nil {
		return time.Time{}, "", err
	}
	return t, strings.TrimSpace(title), nil
}

// EventConfig describes an Event screen.
type EventConfig struct {
	Target time.Time
	Title  string
	// Start is when the target was set; it anchors the percentage.
	Start     time.Time
	Now       AppTime
	WithDecis bool
}

// Event counts down to a calendar timestamp. Its value is derived from the
// current time on every tick, so it never finishes: once the target has
// passed it shows the time since.
type Event struct {
	target    time.Time
	title     string
	start     time.Time
	now       AppTime
	withDecis bool

	editing bool
	inputs  [2]textinput.Model
	focus   int
	err     error
}

const (
	fieldTime = iota
	fieldTitle
)

// NewEvent creates the Event screen.
func NewEvent(cfg EventConfig) *Event {
	e := &Event{
		target:    cfg.Target,
		title:     cfg.Title,
		start:     cfg.Start,
		now:       cfg.Now,
		withDecis: cfg.WithDecis,
	}
	if e.start.IsZero() || e.start.After(e.target) {
		e.start = cfg.Now.Time
	}
	for i := range e.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Cursor.SetMode(cursor.CursorHide)
		e.inputs[i] = ti
	}
	e.inputs[fieldTime].Placeholder = "YYYY-MM-DD HH:MM:SS"
	e.inputs[fieldTitle].Placeholder = "title"
	return e
}

func (e *Event) Update(ev event.Event) (event.Event, bool) {
	if ev.Kind == event.KindTick {
		return ev, false
	}
	k, ok := pressedKey(ev)
	if !ok {
		return ev, true
	}
	if e.editing {
		e.updateEdit(k)
		return ev, false
	}
	if key.Matches(k, Keys.Edit) {
		e.EnterEdit()
		return ev, false
	}
	return ev, true
}

// updateEdit handles every key while the inputs are open.
func (e *Event) updateEdit(k event.Key) {
	switch {
	case key.Matches(k, Keys.Commit):
		e.commit()
	case key.Matches(k, Keys.Cancel):
		e.exitEdit()
	case key.Matches(k, Keys.NextField):
		e.inputs[e.focus].Blur()
		e.focus = (e.focus + 1) % len(e.inputs)
		e.inputs[e.focus].Focus()
	default:
		e.inputs[e.focus], _ = e.inputs[e.focus].Update(tea.KeyMsg(k.Key))
		e.err = nil
	}
}

// EnterEdit opens the inputs prefilled with the current target.
func (e *Event) EnterEdit() {
	e.editing = true
	e.err = nil
	e.focus = fieldTime
	if e.target.IsZero() {
		e.inputs[fieldTime].SetValue("")
	} else {
		e.inputs[fieldTime].SetValue(e.target.Format(EventLayout))
	}
	e.inputs[fieldTitle].SetValue(e.title)
	for i := range e.inputs {
		e.inputs[i].CursorEnd()
		e.inputs[i].Blur()
	}
	e.inputs[fieldTime].Focus()
}

func (e *Event) commit() {
	t, err := ParseEventTime(e.inputs[fieldTime].Value())
	if err != nil {
		e.err = err
		return
	}
	e.target = t
	e.title = strings.TrimSpace(e.inputs[fieldTitle].Value())
	e.start = e.now.Time
	e.exitEdit()
}

func (e *Event) exitEdit() {
	e.editing = false
	e.err = nil
	for i := range e.inputs {
		e.inputs[i].Blur()
	}
}

// Remaining is the time left until the target. Once the target has passed
// it is the time since, and since is true.
func (e *Event) Remaining() (d time.Duration, since bool) {
	d = e.target.Sub(e.now.Time)
	if d < 0 {
		return -d, true
	}
	return d, false
}

// PercentageDone is the share of the span between setting the event and
// its target that has elapsed.
func (e *Event) PercentageDone() int {
	if !e.now.Before(e.target) {
		return 100
	}
	total := e.target.Sub(e.start)
	if total <= 0 {
		return 0
	}
	elapsed := e.now.Sub(e.start)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed * 100 / total)
}

// EditField returns the text of a field and the cursor column within it.
func (e *Event) EditField(i int) (value string, col int, focused bool) {
	in := e.inputs[i]
	return in.Value(), in.Position(), in.Focused()
}

// SetAppTime hands the latest local time to the screen.
func (e *Event) SetAppTime(t AppTime) { e.now = t }

// SetWithDecis toggles the sub-second display.
func (e *Event) SetWithDecis(on bool) { e.withDecis = on }

func (e *Event) Target() time.Time { return e.target }
func (e *Event) Title() string     { return e.title }
func (e *Event) Start() time.Time  { return e.start }
func (e *Event) IsEditing() bool   { return e.editing }
func (e *Event) FocusedField() int { return e.focus }
func (e *Event) Err() error        { return e.err }
func (e *Event) WithDecis() bool   { return e.withDecis }
func (e *Event) AppTime() AppTime  { return e.now }
