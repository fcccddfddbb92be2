package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/clockwork/internal/content"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "nested", FileName))
}

func sample() State {
	return State{
		Content:          content.ScreenPomodoro,
		ShowMenu:         true,
		Notification:     content.On,
		Blink:            content.On,
		AppTimeFormat:    content.FormatHh12Mm,
		FooterAppTime:    content.On,
		Style:            content.StyleBraille,
		WithDecis:        true,
		PomodoroPhase:    content.PhasePause,
		PomodoroRound:    7,
		InitialWork:      50 * time.Minute,
		CurrentWork:      12*time.Minute + 300*time.Millisecond,
		InitialPause:     10 * time.Minute,
		CurrentPause:     3 * time.Minute,
		InitialCountdown: time.Hour,
		CurrentCountdown: 20 * time.Minute,
		ElapsedCountdown: 40 * time.Minute,
		CurrentTimer:     90 * time.Second,
		Event: Event{
			Target: time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local),
			Title:  "New Year",
			Start:  time.Date(2026, 10, 1, 8, 30, 0, 0, time.Local),
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := newStore(t)
	d := Default()

	got, err := s.Load(d)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)
	want := sample()
	require.NoError(t, s.Save(want))

	got, err := s.Load(Default())
	require.NoError(t, err)
	assert.Equal(t, want.Content, got.Content)
	assert.Equal(t, want.PomodoroRound, got.PomodoroRound)
	assert.Equal(t, want.CurrentWork, got.CurrentWork)
	assert.True(t, want.Event.Target.Equal(got.Event.Target))
	assert.True(t, want.Event.Start.Equal(got.Event.Start))

	got.Event.Target = want.Event.Target
	got.Event.Start = want.Event.Start
	assert.Equal(t, want, got)

	_, err = os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file is renamed away")
}

func TestSavedFileIsReadable(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(sample()))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `"content": "pomodoro"`)
	assert.Contains(t, text, `"initial": "50m0s"`)
	assert.Contains(t, text, "\n  \"pomodoro\": {")
}

func TestLoadFallsBackPerField(t *testing.T) {
	s := newStore(t)
	doc := `{
  // written by hand
  "content": "timer",
  "style": "sparkly",
  "with_decis": "yes",
  "pomodoro": {"round": -3, "work": {"initial": "15m", "current": "forever"}},
  "countdown": {"current": "-5s"},
  "event": {"target": "2030-01-01T00:00:00Z", "title": 42},
}`
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0o644))

	d := Default()
	got, err := s.Load(d)
	require.NoError(t, err)

	assert.Equal(t, content.ScreenTimer, got.Content)
	assert.Equal(t, 15*time.Minute, got.InitialWork)
	assert.Equal(t, d.CurrentWork, got.CurrentWork)
	assert.Equal(t, d.Style, got.Style)
	assert.Equal(t, d.WithDecis, got.WithDecis)
	assert.Equal(t, d.PomodoroRound, got.PomodoroRound)
	assert.Equal(t, time.Duration(0), got.CurrentCountdown, "negative durations clamp to zero")
	assert.Equal(t, 2030, got.Event.Target.UTC().Year())
	assert.Equal(t, d.Event.Title, got.Event.Title)
}

func TestLoadInvalidJSON(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("not json"), 0o644))

	d := Default()
	got, err := s.Load(d)
	require.Error(t, err)
	assert.Equal(t, d, got)
}

func TestRemove(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Remove(), "missing file")
	require.NoError(t, s.Save(Default()))
	require.NoError(t, s.Remove())
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}
