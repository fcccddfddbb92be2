// Package event defines the typed events flowing through the run loop:
// ticks, raw terminal input and internal notifications raised by clocks and
// the renderer. All of them travel as a single Event value tagged by Kind.
package event

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies the type of event.
type Kind int

const (
	// KindTick is a fixed-period timing event.
	KindTick Kind = iota
	// KindKey is a key press from the terminal.
	KindKey
	// KindResize is a terminal size change.
	KindResize
	// KindInput is any other raw terminal input (mouse, focus, paste).
	KindInput
	// KindInputError reports a failure reading terminal input.
	KindInputError
	// KindClockDone is raised once when a clock reaches its bound.
	KindClockDone
	// KindSetCursor asks the controller to place (or clear) the cursor.
	KindSetCursor
)

var kindNames = [...]string{
	KindTick:       "tick",
	KindKey:        "key",
	KindResize:     "resize",
	KindInput:      "input",
	KindInputError: "input-error",
	KindClockDone:  "clock-done",
	KindSetCursor:  "set-cursor",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Internal reports whether events of this kind come from the internal
// notification queue rather than from the terminal or the ticker.
func (k Kind) Internal() bool {
	return k == KindClockDone || k == KindSetCursor
}

// KeyKind distinguishes physical key transitions. Only presses are
// forwarded to the run loop.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// Key is a key event. It embeds the bubbletea key so bindings from
// bubbles/key match on it directly.
type Key struct {
	tea.Key
	Kind KeyKind
}

// ClockType tags the clock that finished.
type ClockType int

const (
	ClockCountdown ClockType = iota
	ClockTimer
	ClockPomodoro
)

func (t ClockType) String() string {
	switch t {
	case ClockCountdown:
		return "Countdown"
	case ClockTimer:
		return "Timer"
	case ClockPomodoro:
		return "Pomodoro"
	default:
		return "Clock"
	}
}

// Position is a cell on screen, zero-based.
type Position struct {
	X, Y int
}

// Event is a single event handed to the controller.
type Event struct {
	Kind Kind

	Key    Key       // KindKey
	Width  int       // KindResize
	Height int       // KindResize
	Err    error     // KindInputError
	Clock  ClockType // KindClockDone
	Name   string    // KindClockDone
	Cursor *Position // KindSetCursor; nil clears the cursor
}

// Tick creates a KindTick event.
func Tick() Event { return Event{Kind: KindTick} }

// KeyPressed creates a KindKey press event from a bubbletea key.
func KeyPressed(k tea.Key) Event { return Event{Kind: KindKey, Key: Key{Key: k}} }

// Resize creates a KindResize event.
func Resize(width, height int) Event { return Event{Kind: KindResize, Width: width, Height: height} }

// Input creates a KindInput event.
func Input() Event { return Event{Kind: KindInput} }

// InputError creates a KindInputError event.
func InputError(err error) Event { return Event{Kind: KindInputError, Err: err} }

// ClockDone creates a KindClockDone event.
func ClockDone(t ClockType, name string) Event {
	return Event{Kind: KindClockDone, Clock: t, Name: name}
}

// SetCursor creates a KindSetCursor event. A nil position clears the cursor.
func SetCursor(pos *Position) Event { return Event{Kind: KindSetCursor, Cursor: pos} }

// IsKeyPress reports whether e is a key press.
func (e Event) IsKeyPress() bool {
	return e.Kind == KindKey && e.Key.Kind == KeyPress
}

// Rune builds a bubbletea rune key, mostly useful for tests and key tables.
func Rune(r rune) tea.Key {
	return tea.Key{Type: tea.KeyRunes, Runes: []rune{r}}
}
