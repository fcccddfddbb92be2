package event

import (
	"context"
	"time"
)

// Multiplexer merges the tick source, the terminal input queue and the
// internal notification queue into one stream. Whichever source is ready
// first wins; there is no priority between them.
type Multiplexer struct {
	ticker   *time.Ticker
	ticks    <-chan time.Time
	input    *Queue
	internal *Queue
}

// NewMultiplexer starts a ticker with the given period and merges it with
// input. The internal queue is created here; hand it to producers via
// Notifier.
func NewMultiplexer(period time.Duration, input *Queue) *Multiplexer {
	t := time.NewTicker(period)
	m := newMultiplexer(t.C, input, NewQueue())
	m.ticker = t
	return m
}

func newMultiplexer(ticks <-chan time.Time, input, internal *Queue) *Multiplexer {
	return &Multiplexer{
		ticks:    ticks,
		input:    input,
		internal: internal,
	}
}

// Notifier returns the internal notification queue.
func (m *Multiplexer) Notifier() *Queue {
	return m.internal
}

// Close stops the ticker.
func (m *Multiplexer) Close() {
	if m.ticker != nil {
		m.ticker.Stop()
	}
}

// Next blocks until an event is available. It returns false when ctx is
// cancelled or when every source is exhausted.
func (m *Multiplexer) Next(ctx context.Context) (Event, bool) {
	for {
		var inputReady, internalReady <-chan struct{}
		if m.input != nil {
			if m.input.Drained() {
				m.input = nil
			} else {
				inputReady = m.input.Ready()
			}
		}
		if m.internal != nil {
			if m.internal.Drained() {
				m.internal = nil
			} else {
				internalReady = m.internal.Ready()
			}
		}
		if m.ticks == nil && m.input == nil && m.internal == nil {
			return Event{}, false
		}

		select {
		case <-ctx.Done():
			return Event{}, false
		case _, ok := <-m.ticks:
			if !ok {
				m.ticks = nil
				continue
			}
			return Tick(), true
		case <-inputReady:
			e, ok := m.input.Pop()
			if !ok || !forwardInput(e) {
				continue
			}
			return e, true
		case <-internalReady:
			e, ok := m.internal.Pop()
			if !ok {
				continue
			}
			return e, true
		}
	}
}

// forwardInput drops key repeats and releases so a physical press yields a
// single logical event. Everything else passes unfiltered.
func forwardInput(e Event) bool {
	if e.Kind != KindKey {
		return true
	}
	return e.Key.Kind == KeyPress
}
