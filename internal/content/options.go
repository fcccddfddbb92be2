package content

import (
	"fmt"
	"strings"
	"time"
)

// Toggle is an on/off setting.
type Toggle bool

const (
	On  Toggle = true
	Off Toggle = false
)

func (t Toggle) String() string {
	if t {
		return "on"
	}
	return "off"
}

// ParseToggle reads on/off (also true/false, 1/0).
func ParseToggle(s string) (Toggle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return On, nil
	case "off", "false", "0", "no":
		return Off, nil
	}
	return Off, fmt.Errorf("invalid toggle %q (on, off)", s)
}

// Style is the glyph used to draw the big digits.
type Style int

const (
	StyleFull Style = iota
	StyleLight
	StyleMedium
	StyleDark
	StyleThick
	StyleCross
	StyleBraille
)

var styles = []struct {
	name   string
	symbol string
}{
	StyleFull:    {"full", "█"},
	StyleLight:   {"light", "░"},
	StyleMedium:  {"medium", "▒"},
	StyleDark:    {"dark", "▓"},
	StyleThick:   {"thick", "┃"},
	StyleCross:   {"cross", "╬"},
	StyleBraille: {"braille", "⣿"},
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styles) {
		return "unknown"
	}
	return styles[s].name
}

// Symbol is the glyph drawn for a lit cell.
func (s Style) Symbol() string {
	if s < 0 || int(s) >= len(styles) {
		return styles[StyleFull].symbol
	}
	return styles[s].symbol
}

// Next cycles to the following style.
func (s Style) Next() Style {
	return Style((int(s) + 1) % len(styles))
}

// ParseStyle reads a style name.
func ParseStyle(v string) (Style, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, s := range styles {
		if s.name == v {
			return Style(i), nil
		}
	}
	return StyleFull, fmt.Errorf("unknown style %q", v)
}

// TimeFormat is a wall clock display format.
type TimeFormat int

const (
	// FormatHhMmSs is 24h with seconds.
	FormatHhMmSs TimeFormat = iota
	// FormatHhMm is 24h without seconds.
	FormatHhMm
	// FormatHh12Mm is 12h with an AM/PM period.
	FormatHh12Mm
)

var formatNames = []string{
	FormatHhMmSs: "24h",
	FormatHhMm:   "24h-short",
	FormatHh12Mm: "12h",
}

func (f TimeFormat) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Next cycles through the formats.
func (f TimeFormat) Next() TimeFormat {
	return TimeFormat((int(f) + 1) % len(formatNames))
}

// FirstFormat and LastFormat bound the footer's format cycle.
const (
	FirstFormat = FormatHhMmSs
	LastFormat  = FormatHh12Mm
)

// ParseTimeFormat reads a format name.
func ParseTimeFormat(v string) (TimeFormat, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range formatNames {
		if name == v {
			return TimeFormat(i), nil
		}
	}
	return FormatHhMmSs, fmt.Errorf("unknown time format %q", v)
}

// AppTime is the local time snapshot refreshed by the controller on every
// tick and threaded into the screens that show wall-clock time.
type AppTime struct {
	time.Time
}

// Now takes a snapshot of the local time.
func Now() AppTime {
	return AppTime{Time: time.Now()}
}

// TimeOfDay is the time elapsed since local midnight.
func (t AppTime) TimeOfDay() time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// Period is AM or PM.
func (t AppTime) Period() string {
	if t.Hour() < 12 {
		return "AM"
	}
	return "PM"
}

// FormatDate renders the date line shown under the local time.
func (t AppTime) FormatDate() string {
	return t.Format("Mon, Jan 2 2006")
}

// FormatTime renders the time in the given format.
func (t AppTime) FormatTime(f TimeFormat) string {
	switch f {
	case FormatHhMm:
		return t.Format("15:04")
	case FormatHh12Mm:
		return t.Format("3:04 PM")
	default:
		return t.Format("15:04:05")
	}
}
