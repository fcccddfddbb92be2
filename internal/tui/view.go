package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexander-akhmetov/clockwork/internal/app"
	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/event"
)

// cursorMark stands in for the edit cursor cell until the frame is laid out
// and its screen position can be measured.
const cursorMark = '\ue000'

const (
	maxBarWidth   = 60
	inputBoxWidth = 32
)

// Renderer turns snapshots into frames. It is used from the controller
// goroutine only.
type Renderer struct {
	// cursor receives SetCursor events when the edit cursor moved.
	cursor  clock.Notifier
	bar     progress.Model
	help    help.Model
	hidden  rune
	hasMark bool
}

// NewRenderer creates a renderer reporting cursor moves to sink. A nil sink
// disables cursor tracking.
func NewRenderer(sink clock.Notifier) *Renderer {
	return &Renderer{
		cursor: sink,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:   help.New(),
	}
}

// Render draws one frame.
func (r *Renderer) Render(s app.Snapshot) string {
	r.hasMark = false

	var parts []string
	if s.HasPercentage {
		parts = append(parts, r.renderProgress(s), "")
	}
	parts = append(parts, r.renderBody(s))
	main := lipgloss.JoinVertical(lipgloss.Center, parts...)

	footer := r.renderFooter(s)
	if s.Width > 0 && s.Height > 0 {
		bodyHeight := max(s.Height-heightOf(footer), 1)
		main = lipgloss.Place(s.Width, bodyHeight, lipgloss.Center, lipgloss.Center, main)
	}
	frame := main + "\n" + footer

	frame, pos := r.takeCursor(frame)
	r.syncCursor(s, pos)
	if s.Cursor != nil {
		frame = overlayCursor(frame, *s.Cursor)
	}
	return frame
}

func (r *Renderer) renderProgress(s app.Snapshot) string {
	width := maxBarWidth
	if s.Width > 0 {
		width = min(width, max(s.Width-10, 10))
	}
	r.bar.Width = width
	label := labelStyle.Render(fmt.Sprintf(" %3d%%", s.Percentage))
	return r.bar.ViewAs(float64(s.Percentage)/100) + label
}

func (r *Renderer) renderBody(s app.Snapshot) string {
	switch s.Content {
	case content.ScreenCountdown:
		return r.renderCountdown(s)
	case content.ScreenTimer:
		return renderClock(s, s.Timer.Clock())
	case content.ScreenPomodoro:
		return renderPomodoro(s)
	case content.ScreenEvent:
		return r.renderEvent(s)
	case content.ScreenLocalTime:
		return renderLocalTime(s)
	}
	return ""
}

// renderClock draws a clock's value as big digits, highlighting the group
// being edited and blinking a finished clock when enabled.
func renderClock(s app.Snapshot, c *clock.Clock) string {
	text := c.Format()
	highlight := noGroup
	if c.IsEditing() {
		text = editText(c.Current(), c.EditUnit(), c.WithDecis())
		highlight = c.EditUnit()
	}
	hidden := s.Blink && c.IsDone() && s.Now.Nanosecond() >= int(500*time.Millisecond)
	return bigDigits(text, s.Style.Symbol(), highlight, hidden)
}

func (r *Renderer) renderCountdown(s app.Snapshot) string {
	cd := s.Countdown
	if entry := cd.TimeEntry(); entry != nil {
		h, m, sec, _ := clock.Parts(entry.Value())
		text := fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
		return lipgloss.JoinVertical(lipgloss.Center,
			labelStyle.Render("Countdown until"),
			"",
			bigDigits(text, s.Style.Symbol(), entry.Unit(), false),
		)
	}

	lines := []string{renderClock(s, cd.Clock())}
	if elapsed := cd.Elapsed(); elapsed > 0 {
		lines = append(lines, "", labelStyle.Render("elapsed ")+valueStyle.Render(clock.Format(elapsed, s.WithDecis)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderPomodoro(s app.Snapshot) string {
	p := s.Pomodoro
	label := fmt.Sprintf("%s · round %d", p.Clock().Name(), p.Round())
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(label),
		"",
		renderClock(s, p.Clock()),
	)
}

func (r *Renderer) renderEvent(s app.Snapshot) string {
	ev := s.Event
	remaining, since := ev.Remaining()
	relation := "until"
	if since {
		relation = "since"
	}

	var lines []string
	if ev.Title() != "" {
		lines = append(lines, titleStyle.Render(ev.Title()), "")
	}
	lines = append(lines,
		bigDigits(clock.Format(remaining, ev.WithDecis()), s.Style.Symbol(), noGroup, false),
		"",
		labelStyle.Render(relation+" ")+valueStyle.Render(ev.Target().Format(content.EventLayout)),
	)

	if ev.IsEditing() {
		lines = append(lines, "",
			r.renderInput(ev, 0, "date "+labelStyle.Render("("+content.EventLayout+")")),
			r.renderInput(ev, 1, "title"),
		)
		if err := ev.Err(); err != nil {
			lines = append(lines, errorStyle.Render(err.Error()))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderInput draws one event field. The focused field carries the cursor
// mark at the text input's cursor column.
func (r *Renderer) renderInput(ev *content.Event, field int, label string) string {
	value, col, focused := ev.EditField(field)
	box := inputBoxStyle
	if focused {
		box = focusedInputBoxStyle
		value = r.markCursor(value, col)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		box.Width(inputBoxWidth).Render(value),
	)
}

func renderLocalTime(s app.Snapshot) string {
	lt := s.LocalTime
	now := lt.AppTime()
	text := now.FormatTime(lt.Format())
	lines := []string{}
	if lt.Format() == content.FormatHh12Mm {
		text = strings.TrimSuffix(text, " "+now.Period())
		lines = append(lines, bigDigits(text, s.Style.Symbol(), noGroup, false), "", valueStyle.Render(now.Period()))
	} else {
		lines = append(lines, bigDigits(text, s.Style.Symbol(), noGroup, false))
	}
	lines = append(lines, "", labelStyle.Render(now.FormatDate()))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (r *Renderer) renderFooter(s app.Snapshot) string {
	if s.ShowMenu {
		r.help.Width = s.Width
		groups := [][]key.Binding{
			contentKeys(s),
			app.Keys.ScreenKeys(),
			app.Keys.AppearanceKeys(),
		}
		return footerStyle.Render(r.help.FullHelpView(groups))
	}

	parts := []string{titleStyle.Render(s.Content.Title())}
	if state := runState(s); state != "" {
		parts = append(parts, state)
	}
	if s.FooterTime {
		parts = append(parts, valueStyle.Render(s.Now.FormatTime(s.AppTimeFormat)))
	}
	parts = append(parts, labelStyle.Render("m: menu"))
	return footerStyle.Render(strings.Join(parts, labelStyle.Render(" • ")))
}

func runState(s app.Snapshot) string {
	var c *clock.Clock
	switch s.Content {
	case content.ScreenCountdown:
		c = s.Countdown.Clock()
	case content.ScreenTimer:
		c = s.Timer.Clock()
	case content.ScreenPomodoro:
		c = s.Pomodoro.Clock()
	default:
		return ""
	}
	switch {
	case s.EditMode != app.EditNone:
		return pausedStyle.Render("editing")
	case c.IsDone():
		return doneStyle.Render("done")
	case s.Running:
		return runningStyle.Render("running")
	default:
		return pausedStyle.Render("paused")
	}
}

// contentKeys lists the bindings the active screen handles itself.
func contentKeys(s app.Snapshot) []key.Binding {
	k := content.Keys
	switch s.EditMode {
	case app.EditClock, app.EditTime:
		return []key.Binding{k.Commit, k.Cancel, k.Left, k.Right, k.Up, k.Down}
	case app.EditEvent:
		return []key.Binding{k.Commit, k.Cancel, k.NextField}
	}

	switch s.Content {
	case content.ScreenCountdown:
		return []key.Binding{k.Toggle, k.Reset, k.Edit, k.EditTime}
	case content.ScreenTimer:
		return []key.Binding{k.Toggle, k.Reset, k.Edit}
	case content.ScreenPomodoro:
		return []key.Binding{k.Toggle, k.Reset, k.Edit, k.SwitchPhase, k.ResetRound}
	case content.ScreenEvent:
		return []key.Binding{k.Edit}
	case content.ScreenLocalTime:
		return []key.Binding{k.TimeFormat}
	}
	return nil
}

// markCursor replaces the cell at col with the cursor mark. At the end of
// the value a trailing cell is added.
func (r *Renderer) markCursor(value string, col int) string {
	runes := []rune(value)
	col = max(0, min(col, len(runes)))
	r.hasMark = true
	if col == len(runes) {
		r.hidden = ' '
		return value + string(cursorMark)
	}
	r.hidden = runes[col]
	runes[col] = cursorMark
	return string(runes)
}

// takeCursor finds the cursor mark in a laid out frame, puts the hidden
// character back and returns the mark's cell.
func (r *Renderer) takeCursor(frame string) (string, *event.Position) {
	if !r.hasMark {
		return frame, nil
	}
	lines := strings.Split(frame, "\n")
	for y, line := range lines {
		i := strings.IndexRune(line, cursorMark)
		if i < 0 {
			continue
		}
		pos := &event.Position{X: ansi.StringWidth(line[:i]), Y: y}
		lines[y] = strings.Replace(line, string(cursorMark), string(r.hidden), 1)
		return strings.Join(lines, "\n"), pos
	}
	return frame, nil
}

// syncCursor tells the controller where the cursor is when it differs from
// what the snapshot says.
func (r *Renderer) syncCursor(s app.Snapshot, pos *event.Position) {
	if r.cursor == nil || samePosition(s.Cursor, pos) {
		return
	}
	r.cursor.Push(event.SetCursor(pos))
}

func samePosition(a, b *event.Position) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// overlayCursor draws the cell at pos in reverse video.
func overlayCursor(frame string, pos event.Position) string {
	lines := strings.Split(frame, "\n")
	if pos.Y < 0 || pos.Y >= len(lines) || pos.X < 0 {
		return frame
	}
	line := lines[pos.Y]
	if w := ansi.StringWidth(line); w <= pos.X {
		line += strings.Repeat(" ", pos.X-w+1)
	}
	cell := ansi.Strip(ansi.Cut(line, pos.X, pos.X+1))
	if cell == "" {
		cell = " "
	}
	lines[pos.Y] = ansi.Truncate(line, pos.X, "") + cursorStyle.Render(cell) + ansi.TruncateLeft(line, pos.X+1, "")
	return strings.Join(lines, "\n")
}

// heightOf returns the rendered height of a string, treating empty strings as 0 lines.
// This is needed because lipgloss.Height("") returns 1.
func heightOf(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}
