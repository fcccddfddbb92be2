package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/clockwork/internal/app"
	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/event"
	"github.com/alexander-akhmetov/clockwork/internal/storage"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)

func newTestApp(t *testing.T, mutate func(*storage.State)) *app.App {
	t.Helper()
	st := storage.Default()
	st.Event = storage.Event{Target: testNow.Add(2 * time.Hour), Title: "launch", Start: testNow.Add(-2 * time.Hour)}
	if mutate != nil {
		mutate(&st)
	}
	return app.New(app.Options{
		State:    st,
		TimerMax: clock.MaxDuration,
		RoundOn:  content.PhaseWork,
		Events:   event.NewQueue(),
		Now:      func() time.Time { return testNow },
	})
}

func press(r rune) event.Event { return event.KeyPressed(event.Rune(r)) }

func TestDigitGroups(t *testing.T) {
	tests := []struct {
		text string
		want []clock.Unit
	}{
		{"5", []clock.Unit{clock.Seconds}},
		{"1:05", []clock.Unit{clock.Minutes, noGroup, clock.Seconds, clock.Seconds}},
		{"2:00:09", []clock.Unit{clock.Hours, noGroup, clock.Minutes, clock.Minutes, noGroup, clock.Seconds, clock.Seconds}},
		{"9.4", []clock.Unit{clock.Seconds, noGroup, clock.Decis}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, digitGroups(tt.text))
		})
	}
}

func TestEditText(t *testing.T) {
	tests := []struct {
		name  string
		d     time.Duration
		unit  clock.Unit
		decis bool
		want  string
	}{
		{"hours shown when zero", 0, clock.Hours, false, "0:00:00"},
		{"minutes shown when zero", 5 * time.Second, clock.Minutes, false, "0:05"},
		{"natural format is enough", 90 * time.Second, clock.Seconds, false, "1:30"},
		{"decis kept", 5*time.Second + 300*time.Millisecond, clock.Hours, true, "0:00:05.3"},
		{"hours already visible", time.Hour + 2*time.Minute, clock.Hours, false, "1:02:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, editText(tt.d, tt.unit, tt.decis))
		})
	}
}

func TestBigDigits(t *testing.T) {
	out := bigDigits("1:0", "█", noGroup, false)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, digitRows)
	assert.Contains(t, lines[0], "█")

	hidden := ansi.Strip(bigDigits("1:0", "█", noGroup, true))
	assert.NotContains(t, hidden, "█")
	assert.Equal(t, ansi.StringWidth(lines[0]), ansi.StringWidth(strings.Split(hidden, "\n")[0]))
}

func TestRenderScreens(t *testing.T) {
	tests := []struct {
		name    string
		content content.Content
		want    []string
	}{
		{"countdown", content.ScreenCountdown, []string{"Countdown", "paused", "m: menu"}},
		{"timer", content.ScreenTimer, []string{"Timer", "paused"}},
		{"pomodoro", content.ScreenPomodoro, []string{"Work · round 1", "Pomodoro"}},
		{"event", content.ScreenEvent, []string{"launch", "until 2026-03-14 11:30:00"}},
		{"local time", content.ScreenLocalTime, []string{"Sat, Mar 14 2026", "Local Time"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, func(st *storage.State) { st.Content = tt.content })
			out := ansi.Strip(NewRenderer(nil).Render(a.Snapshot()))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRenderMenu(t *testing.T) {
	a := newTestApp(t, func(st *storage.State) { st.ShowMenu = true })
	out := ansi.Strip(NewRenderer(nil).Render(a.Snapshot()))
	assert.Contains(t, out, "start/stop")
	assert.Contains(t, out, "set by local time")
	assert.Contains(t, out, "quit")

	a.Handle(press('e'))
	out = ansi.Strip(NewRenderer(nil).Render(a.Snapshot()))
	assert.Contains(t, out, "apply")
	assert.NotContains(t, out, "start/stop")
}

func TestRenderFooterTime(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(press(':'))
	out := ansi.Strip(NewRenderer(nil).Render(a.Snapshot()))
	assert.Contains(t, out, "09:30:00")
}

func TestRenderFillsTerminal(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(event.Resize(80, 24))
	out := NewRenderer(nil).Render(a.Snapshot())
	assert.Equal(t, 24, strings.Count(out, "\n")+1)
	for _, line := range strings.Split(out, "\n")[:20] {
		assert.LessOrEqual(t, ansi.StringWidth(line), 80)
	}
}

func TestRenderCountdownTimeEntry(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(event.KeyPressed(tea.Key{Type: tea.KeyCtrlE}))
	require.Equal(t, app.EditTime, a.Snapshot().EditMode)
	out := ansi.Strip(NewRenderer(nil).Render(a.Snapshot()))
	assert.Contains(t, out, "Countdown until")
}

func TestEventCursorIsReported(t *testing.T) {
	a := newTestApp(t, func(st *storage.State) { st.Content = content.ScreenEvent })
	sink := event.NewQueue()
	r := NewRenderer(sink)

	a.Handle(press('e'))
	require.Equal(t, app.EditEvent, a.Snapshot().EditMode)
	r.Render(a.Snapshot())
	require.Equal(t, 1, sink.Len())
	ev, _ := sink.Pop()
	require.Equal(t, event.KindSetCursor, ev.Kind)
	require.NotNil(t, ev.Cursor)

	// Once the controller knows the position nothing more is pushed.
	a.Handle(ev)
	r.Render(a.Snapshot())
	assert.Equal(t, 0, sink.Len())

	a.Handle(event.KeyPressed(tea.Key{Type: tea.KeyEsc}))
	r.Render(a.Snapshot())
	require.Equal(t, 1, sink.Len())
	ev, _ = sink.Pop()
	assert.Nil(t, ev.Cursor)
}

func TestTakeCursor(t *testing.T) {
	r := NewRenderer(nil)
	marked := r.markCursor("abc", 1)
	frame, pos := r.takeCursor("top\nxx" + marked)
	require.NotNil(t, pos)
	assert.Equal(t, event.Position{X: 3, Y: 1}, *pos)
	assert.Equal(t, "top\nxxabc", frame)

	marked = r.markCursor("abc", 3)
	frame, pos = r.takeCursor(marked)
	require.NotNil(t, pos)
	assert.Equal(t, event.Position{X: 3, Y: 0}, *pos)
	assert.Equal(t, "abc ", frame)
}

func TestTakeCursorWithoutMark(t *testing.T) {
	r := NewRenderer(nil)
	frame, pos := r.takeCursor("plain")
	assert.Nil(t, pos)
	assert.Equal(t, "plain", frame)
}

func TestOverlayCursor(t *testing.T) {
	assert.Equal(t, "abc\ndef", ansi.Strip(overlayCursor("abc\ndef", event.Position{X: 1, Y: 1})))
	assert.Equal(t, "ab   ", ansi.Strip(overlayCursor("ab", event.Position{X: 4, Y: 0})))
	assert.Equal(t, "ab", overlayCursor("ab", event.Position{X: 0, Y: 3}))
}

func TestBlinkHidesFinishedClock(t *testing.T) {
	a := newTestApp(t, func(st *storage.State) {
		st.Blink = content.On
		st.InitialCountdown, st.CurrentCountdown = 0, 0
	})
	s := a.Snapshot()
	require.True(t, s.Countdown.Clock().IsDone())

	s.Now = content.AppTime{Time: testNow.Add(100 * time.Millisecond)}
	shown := ansi.Strip(renderClock(s, s.Countdown.Clock()))
	s.Now = content.AppTime{Time: testNow.Add(600 * time.Millisecond)}
	hidden := ansi.Strip(renderClock(s, s.Countdown.Clock()))

	assert.Contains(t, shown, s.Style.Symbol())
	assert.NotContains(t, hidden, s.Style.Symbol())
}
