// Package content holds the screens of the application. Each screen is a
// small state machine fed with events by the controller; events a screen
// has no use for are handed back so the controller's global key table can
// act on them.
package content

import (
	"fmt"
	"strings"

	"github.com/alexander-akhmetov/clockwork/internal/event"
)

// Handler is implemented by every screen. Update returns the event and
// true when it was passed through, or false when the screen consumed it.
type Handler interface {
	Update(ev event.Event) (event.Event, bool)
}

// Content selects the visible screen.
type Content int

const (
	ScreenCountdown Content = iota
	ScreenTimer
	ScreenPomodoro
	ScreenEvent
	ScreenLocalTime
)

// All lists the screens in cycle order.
var All = []Content{ScreenCountdown, ScreenTimer, ScreenPomodoro, ScreenEvent, ScreenLocalTime}

var contentNames = map[Content]string{
	ScreenCountdown: "countdown",
	ScreenTimer:     "timer",
	ScreenPomodoro:  "pomodoro",
	ScreenEvent:     "event",
	ScreenLocalTime: "localtime",
}

func (c Content) String() string {
	if s, ok := contentNames[c]; ok {
		return s
	}
	return "unknown"
}

// Title is the human readable name shown in the footer.
func (c Content) Title() string {
	switch c {
	case ScreenLocalTime:
		return "Local Time"
	default:
		s := c.String()
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// Next returns the following screen, wrapping around.
func (c Content) Next() Content {
	return All[(int(c)+1)%len(All)]
}

// Prev returns the preceding screen, wrapping around.
func (c Content) Prev() Content {
	return All[(int(c)+len(All)-1)%len(All)]
}

// ParseContent reads a screen name. A few short aliases are accepted.
func ParseContent(s string) (Content, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "countdown", "c":
		return ScreenCountdown, nil
	case "timer", "t":
		return ScreenTimer, nil
	case "pomodoro", "p":
		return ScreenPomodoro, nil
	case "event", "e":
		return ScreenEvent, nil
	case "localtime", "local-time", "l":
		return ScreenLocalTime, nil
	}
	return ScreenCountdown, fmt.Errorf("unknown mode %q (countdown, timer, pomodoro, event, localtime)", s)
}

// pressedKey returns the key of a key press event.
func pressedKey(ev event.Event) (event.Key, bool) {
	if !ev.IsKeyPress() {
		return event.Key{}, false
	}
	return ev.Key, true
}
