package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/clockwork/internal/event"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) Push(e event.Event) bool {
	r.events = append(r.events, e)
	return true
}

func newCountdown(current time.Duration, n Notifier) *Clock {
	return New(Config{
		Name:      "Countdown",
		Type:      event.ClockCountdown,
		Direction: Down,
		Initial:   current,
		Current:   current,
		Tick:      time.Second,
		Notifier:  n,
	})
}

func TestCountdownReachesZeroOnce(t *testing.T) {
	n := &recorder{}
	c := newCountdown(3*time.Second, n)
	c.ToggleRun()

	assert.False(t, c.Tick())
	assert.False(t, c.Tick())
	assert.True(t, c.Tick(), "third tick crosses the bound")

	assert.Equal(t, time.Duration(0), c.Current())
	assert.True(t, c.IsDone())
	assert.False(t, c.IsRunning())
	require.Len(t, n.events, 1)
	assert.Equal(t, event.KindClockDone, n.events[0].Kind)
	assert.Equal(t, event.ClockCountdown, n.events[0].Clock)
	assert.Equal(t, "Countdown", n.events[0].Name)

	for range 5 {
		assert.False(t, c.Tick())
	}
	assert.Len(t, n.events, 1, "no second completion signal")
}

func TestCountdownClampsAtZero(t *testing.T) {
	n := &recorder{}
	c := newCountdown(1500*time.Millisecond, n)
	c.Run()
	c.Tick()
	c.Tick()
	assert.Equal(t, time.Duration(0), c.Current())
	assert.True(t, c.IsDone())
	assert.Len(t, n.events, 1)
}

func TestTimerStopsAtMax(t *testing.T) {
	n := &recorder{}
	c := New(Config{
		Name:      "Timer",
		Type:      event.ClockTimer,
		Direction: Up,
		Tick:      time.Second,
		Max:       5 * time.Second,
		Notifier:  n,
	})
	c.Run()
	for range 5 {
		c.Tick()
	}
	assert.True(t, c.IsDone())
	assert.Equal(t, 5*time.Second, c.Current())
	require.Len(t, n.events, 1)

	assert.False(t, c.Tick(), "sixth tick is a no-op")
	assert.Equal(t, 5*time.Second, c.Current())
	assert.Len(t, n.events, 1)
}

func TestTickIgnoredWhenPausedOrEditing(t *testing.T) {
	c := newCountdown(10*time.Second, nil)
	c.Tick()
	assert.Equal(t, 10*time.Second, c.Current(), "paused clock does not move")

	c.Run()
	c.EnterEdit()
	c.Tick()
	assert.Equal(t, 10*time.Second, c.Current(), "editing clock does not move")
}

func TestEnterEditPauses(t *testing.T) {
	c := newCountdown(10*time.Second, nil)
	c.Run()
	require.True(t, c.IsRunning())

	c.EnterEdit()
	assert.True(t, c.IsEditing())
	assert.False(t, c.IsRunning())

	c.ToggleRun()
	assert.False(t, c.IsRunning(), "toggle is a no-op while editing")

	c.ExitEdit()
	assert.False(t, c.IsRunning(), "exiting edit does not resume")
}

func TestEditAdjustRequiresEditAndStopped(t *testing.T) {
	c := newCountdown(10*time.Second, nil)
	c.EditAdjust(Seconds, 5)
	assert.Equal(t, 10*time.Second, c.Current(), "not in edit mode")

	c.EnterEdit()
	c.running = true
	c.EditAdjust(Seconds, 5)
	assert.Equal(t, 10*time.Second, c.Current(), "running clock cannot be adjusted")

	c.running = false
	c.EditAdjust(Seconds, 5)
	assert.Equal(t, 15*time.Second, c.Current())
}

func TestEditAdjustClamps(t *testing.T) {
	c := newCountdown(30*time.Second, nil)
	c.EnterEdit()
	c.EditAdjust(Minutes, -1)
	assert.Equal(t, time.Duration(0), c.Current())

	c.EditAdjust(Hours, 5000)
	assert.Equal(t, MaxDuration, c.Current())
}

func TestExitEditCommitsInitialForCountdown(t *testing.T) {
	c := newCountdown(time.Minute, nil)
	c.EnterEdit()
	c.EditUp()
	c.ExitEdit()
	assert.Equal(t, 2*time.Minute, c.Initial())

	c.Run()
	c.Tick()
	c.Reset()
	assert.Equal(t, 2*time.Minute, c.Current())
}

func TestCancelEditRestores(t *testing.T) {
	c := newCountdown(time.Minute, nil)
	c.EnterEdit()
	c.EditUp()
	c.EditUp()
	c.CancelEdit()
	assert.Equal(t, time.Minute, c.Current())
	assert.Equal(t, time.Minute, c.Initial())
	assert.False(t, c.IsEditing())
}

func TestEditCursorWraps(t *testing.T) {
	c := newCountdown(time.Minute, nil)
	c.EnterEdit()
	assert.Equal(t, Minutes, c.EditUnit())
	c.EditNext()
	assert.Equal(t, Hours, c.EditUnit())
	c.EditNext()
	assert.Equal(t, Seconds, c.EditUnit(), "decis skipped without decis display")
	c.EditPrev()
	assert.Equal(t, Hours, c.EditUnit())

	c.SetWithDecis(true)
	c.EditNext()
	assert.Equal(t, Decis, c.EditUnit())
	c.SetWithDecis(false)
	assert.Equal(t, Seconds, c.EditUnit())
}

func TestResetClearsDone(t *testing.T) {
	c := newCountdown(time.Second, nil)
	c.Run()
	c.Tick()
	require.True(t, c.IsDone())

	c.ToggleRun()
	assert.False(t, c.IsRunning(), "done clock cannot be started")

	c.Reset()
	assert.False(t, c.IsDone())
	assert.Equal(t, time.Second, c.Current())
}

func TestDoneWithoutNotifier(t *testing.T) {
	c := newCountdown(time.Second, nil)
	c.Run()
	assert.NotPanics(t, func() { assert.True(t, c.Tick()) })
	assert.True(t, c.IsDone())
}

func TestNewClampsAndResumesDone(t *testing.T) {
	c := New(Config{Direction: Down, Initial: -time.Second, Current: 2 * MaxDuration})
	assert.Equal(t, time.Duration(0), c.Initial())
	assert.Equal(t, MaxDuration, c.Current())

	finished := New(Config{Direction: Down, Initial: time.Minute, Current: 0})
	assert.True(t, finished.IsDone())
}

func TestPercentageDone(t *testing.T) {
	c := newCountdown(10*time.Second, nil)
	p, ok := c.PercentageDone()
	require.True(t, ok)
	assert.Equal(t, 0, p)

	c.Run()
	for range 3 {
		c.Tick()
	}
	p, _ = c.PercentageDone()
	assert.Equal(t, 30, p)

	zero := New(Config{Direction: Down, Current: 10 * time.Second})
	p, _ = zero.PercentageDone()
	assert.Equal(t, 0, p, "saturates when current exceeds initial")

	up := New(Config{Direction: Up, Current: time.Second, Max: 4 * time.Second})
	p, ok = up.PercentageDone()
	require.True(t, ok)
	assert.Equal(t, 25, p)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d     time.Duration
		decis bool
		want  string
	}{
		{0, false, "0"},
		{5 * time.Second, false, "5"},
		{59 * time.Second, true, "59.0"},
		{time.Minute + 5*time.Second, false, "1:05"},
		{25 * time.Minute, false, "25:00"},
		{time.Hour + 2*time.Minute + 3*time.Second + 400*time.Millisecond, true, "1:02:03.4"},
		{123 * time.Hour, false, "123:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.d, tt.decis), "Format(%s)", tt.d)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "10", want: 10 * time.Second},
		{in: "5:00", want: 5 * time.Minute},
		{in: "1:30:00", want: 90 * time.Minute},
		{in: "25m", want: 25 * time.Minute},
		{in: "1h2m", want: 62 * time.Minute},
		{in: "", wantErr: true},
		{in: "1:60", wantErr: true},
		{in: "a:b", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
		{in: "-5m", wantErr: true},
		{in: "1000:00:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
