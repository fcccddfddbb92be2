package event

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "tick", KindTick.String())
	assert.Equal(t, "clock-done", KindClockDone.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKindInternal(t *testing.T) {
	assert.True(t, KindClockDone.Internal())
	assert.True(t, KindSetCursor.Internal())
	assert.False(t, KindTick.Internal())
	assert.False(t, KindKey.Internal())
	assert.False(t, KindResize.Internal())
}

func TestKeyStringMatchesBubbletea(t *testing.T) {
	e := KeyPressed(Rune('q'))
	assert.True(t, e.IsKeyPress())
	assert.Equal(t, "q", e.Key.String())

	up := KeyPressed(tea.Key{Type: tea.KeyUp})
	assert.Equal(t, "up", up.Key.String())
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(ClockDone(ClockTimer, "a"))
	q.Push(ClockDone(ClockTimer, "b"))
	q.Push(SetCursor(nil))
	require.Equal(t, 3, q.Len())

	e, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", e.Name)
	e, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", e.Name)
	e, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, KindSetCursor, e.Kind)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueueClose(t *testing.T) {
	q := NewQueue()
	q.Push(Tick())
	q.Close()

	assert.False(t, q.Push(Tick()), "push after close is dropped")
	assert.False(t, q.Drained(), "buffered event still pending")

	_, ok := q.Pop()
	require.True(t, ok)
	assert.True(t, q.Drained())
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	done := make(chan struct{})
	for range 4 {
		go func() {
			for range 100 {
				q.Push(Input())
			}
			done <- struct{}{}
		}()
	}
	for range 4 {
		<-done
	}
	assert.Equal(t, 400, q.Len())
}

func TestMultiplexerDeliversInternalInOrder(t *testing.T) {
	internal := NewQueue()
	m := newMultiplexer(nil, nil, internal)
	internal.Push(ClockDone(ClockCountdown, "first"))
	internal.Push(ClockDone(ClockCountdown, "second"))

	ctx := context.Background()
	e, ok := m.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, "first", e.Name)
	e, ok = m.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, "second", e.Name)
}

func TestMultiplexerTicks(t *testing.T) {
	ticks := make(chan time.Time, 2)
	ticks <- time.Now()
	m := newMultiplexer(ticks, nil, NewQueue())

	e, ok := m.Next(context.Background())
	require.True(t, ok)
	assert.Equal(t, KindTick, e.Kind)
}

func TestMultiplexerFiltersKeyRepeatAndRelease(t *testing.T) {
	input := NewQueue()
	m := newMultiplexer(nil, input, NewQueue())

	repeat := KeyPressed(Rune('a'))
	repeat.Key.Kind = KeyRepeat
	release := KeyPressed(Rune('a'))
	release.Key.Kind = KeyRelease

	input.Push(repeat)
	input.Push(release)
	input.Push(Resize(80, 24))
	input.Push(KeyPressed(Rune('b')))

	ctx := context.Background()
	e, ok := m.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, KindResize, e.Kind)
	assert.Equal(t, 80, e.Width)

	e, ok = m.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, "b", e.Key.String())
}

func TestMultiplexerInputError(t *testing.T) {
	input := NewQueue()
	m := newMultiplexer(nil, input, NewQueue())
	input.Push(InputError(errors.New("read failed")))

	e, ok := m.Next(context.Background())
	require.True(t, ok)
	assert.Equal(t, KindInputError, e.Kind)
	assert.EqualError(t, e.Err, "read failed")
}

func TestMultiplexerExhausted(t *testing.T) {
	ticks := make(chan time.Time)
	close(ticks)
	input := NewQueue()
	internal := NewQueue()
	input.Close()
	internal.Close()
	m := newMultiplexer(ticks, input, internal)

	_, ok := m.Next(context.Background())
	assert.False(t, ok)
}

func TestMultiplexerWakesOnClose(t *testing.T) {
	input := NewQueue()
	internal := NewQueue()
	m := newMultiplexer(nil, input, internal)

	go func() {
		time.Sleep(10 * time.Millisecond)
		input.Close()
		internal.Close()
	}()

	_, ok := m.Next(context.Background())
	assert.False(t, ok)
}

func TestMultiplexerContextCancel(t *testing.T) {
	m := NewMultiplexer(time.Hour, NewQueue())
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := m.Next(ctx)
	assert.False(t, ok)
}

func TestMultiplexerMergesAllSources(t *testing.T) {
	m := NewMultiplexer(5*time.Millisecond, NewQueue())
	defer m.Close()

	input := m.input
	input.Push(KeyPressed(Rune('x')))
	m.Notifier().Push(SetCursor(&Position{X: 1, Y: 2}))

	seen := map[Kind]bool{}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for len(seen) < 3 {
		e, ok := m.Next(ctx)
		require.True(t, ok, "sources should produce before timeout")
		seen[e.Kind] = true
	}
	assert.True(t, seen[KindTick])
	assert.True(t, seen[KindKey])
	assert.True(t, seen[KindSetCursor])
}
