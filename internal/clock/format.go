package clock

import (
	"fmt"
	"time"
)

// Unit is a digit group of a clock value, used by the edit cursor.
type Unit int

const (
	Decis Unit = iota
	Seconds
	Minutes
	Hours
)

// Duration is the amount one step of the unit represents.
func (u Unit) Duration() time.Duration {
	switch u {
	case Decis:
		return 100 * time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	}
	return 0
}

func (u Unit) String() string {
	switch u {
	case Decis:
		return "decis"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	}
	return "unknown"
}

func (u Unit) next(withDecis bool) Unit {
	if u == Hours {
		if withDecis {
			return Decis
		}
		return Seconds
	}
	return u + 1
}

func (u Unit) prev(withDecis bool) Unit {
	lowest := Seconds
	if withDecis {
		lowest = Decis
	}
	if u <= lowest {
		return Hours
	}
	return u - 1
}

// Parts splits d into display groups. Hours are not wrapped at 24.
func Parts(d time.Duration) (hours, minutes, seconds, decis int) {
	d = max(d, 0)
	hours = int(d / time.Hour)
	minutes = int(d/time.Minute) % 60
	seconds = int(d/time.Second) % 60
	decis = int(d/(100*time.Millisecond)) % 10
	return hours, minutes, seconds, decis
}

// Format renders d with leading zero groups dropped:
// S, SS, M:SS, MM:SS, H:MM:SS, HH:MM:SS, HHH:MM:SS, each optionally
// followed by .d when withDecis is set.
func Format(d time.Duration, withDecis bool) string {
	h, m, s, ds := Parts(d)
	var out string
	switch {
	case h > 0:
		out = fmt.Sprintf("%d:%02d:%02d", h, m, s)
	case m > 0:
		out = fmt.Sprintf("%d:%02d", m, s)
	default:
		out = fmt.Sprintf("%d", s)
	}
	if withDecis {
		out += fmt.Sprintf(".%d", ds)
	}
	return out
}

// Parse reads a duration given as SS, MM:SS or HH:MM:SS (each group may be
// any number of digits), or in Go's time.ParseDuration syntax.
func Parse(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("negative duration %q", s)
		}
		return d, nil
	}

	var groups []int
	n, digits := 0, 0
	for _, r := range s + ":" {
		switch {
		case r >= '0' && r <= '9':
			n = n*10 + int(r-'0')
			digits++
			if digits > 9 {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
		case r == ':':
			if digits == 0 {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			groups = append(groups, n)
			n, digits = 0, 0
		default:
			return 0, fmt.Errorf("invalid duration %q", s)
		}
	}

	var d time.Duration
	switch len(groups) {
	case 1:
		d = time.Duration(groups[0]) * time.Second
	case 2:
		if groups[1] >= 60 {
			return 0, fmt.Errorf("invalid seconds in %q", s)
		}
		d = time.Duration(groups[0])*time.Minute + time.Duration(groups[1])*time.Second
	case 3:
		if groups[1] >= 60 || groups[2] >= 60 {
			return 0, fmt.Errorf("invalid minutes or seconds in %q", s)
		}
		d = time.Duration(groups[0])*time.Hour + time.Duration(groups[1])*time.Minute + time.Duration(groups[2])*time.Second
	default:
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d > MaxDuration {
		return 0, fmt.Errorf("duration %q exceeds %s", s, Format(MaxDuration, false))
	}
	return d, nil
}
