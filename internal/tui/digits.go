package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexander-akhmetov/clockwork/internal/clock"
)

const digitRows = 5

// glyphs are the big digit patterns; '#' is a lit cell.
var glyphs = map[rune][digitRows]string{
	'0': {"####", "#  #", "#  #", "#  #", "####"},
	'1': {"   #", "   #", "   #", "   #", "   #"},
	'2': {"####", "   #", "####", "#   ", "####"},
	'3': {"####", "   #", "####", "   #", "####"},
	'4': {"#  #", "#  #", "####", "   #", "   #"},
	'5': {"####", "#   ", "####", "   #", "####"},
	'6': {"####", "#   ", "####", "#  #", "####"},
	'7': {"####", "   #", "   #", "   #", "   #"},
	'8': {"####", "#  #", "####", "#  #", "####"},
	'9': {"####", "#  #", "####", "   #", "####"},
	':': {" ", "#", " ", "#", " "},
	'.': {" ", " ", " ", " ", "#"},
	' ': {" ", " ", " ", " ", " "},
}

// noGroup marks separators that belong to no digit group.
const noGroup clock.Unit = -1

// digitGroups assigns every rune of a clock text to the unit it shows,
// reading from the right: decis after '.', then seconds, minutes and hours
// separated by ':'.
func digitGroups(text string) []clock.Unit {
	runes := []rune(text)
	groups := make([]clock.Unit, len(runes))
	unit := clock.Seconds
	if strings.ContainsRune(text, '.') {
		unit = clock.Decis
	}
	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case '.':
			groups[i] = noGroup
			unit = clock.Seconds
		case ':':
			groups[i] = noGroup
			unit++
		default:
			groups[i] = unit
		}
	}
	return groups
}

// bigDigits renders text as big glyphs drawn with symbol. The digits of
// the highlighted group use the edit style; pass noGroup for none. Hidden
// draws blanks of the same size, used for blinking.
func bigDigits(text, symbol string, highlight clock.Unit, hidden bool) string {
	groups := digitGroups(text)
	var rows [digitRows]strings.Builder
	for i, r := range []rune(text) {
		g, ok := glyphs[r]
		if !ok {
			g = glyphs[' ']
		}
		style := digitStyle
		if highlight != noGroup && groups[i] == highlight {
			style = editDigitStyle
		}
		for row := range digitRows {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			var cells strings.Builder
			for _, c := range g[row] {
				if c == '#' && !hidden {
					cells.WriteString(symbol)
				} else {
					cells.WriteString(" ")
				}
			}
			rows[row].WriteString(style.Render(cells.String()))
		}
	}
	lines := make([]string, digitRows)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// editText formats d like clock.Format but always shows the group under
// the edit cursor, so a zero hour can still be highlighted.
func editText(d time.Duration, unit clock.Unit, withDecis bool) string {
	text := clock.Format(d, withDecis)
	h, m, s, ds := clock.Parts(d)
	switch {
	case unit == clock.Hours && h == 0:
		text = fmt.Sprintf("%d:%02d:%02d", h, m, s)
	case unit == clock.Minutes && h == 0 && m == 0:
		text = fmt.Sprintf("%d:%02d", m, s)
	default:
		return text
	}
	if withDecis {
		text += fmt.Sprintf(".%d", ds)
	}
	return text
}
