// Package tui implements the terminal user interface using bubbletea.
//
// bubbletea only owns the terminal here. The controller runs on its own
// goroutine, renders each snapshot itself and hands the finished frame to
// the program, while the program pushes terminal input into the
// controller's input queue.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/alexander-akhmetov/clockwork/internal/app"
	"github.com/alexander-akhmetov/clockwork/internal/debug"
	"github.com/alexander-akhmetov/clockwork/internal/event"
	"github.com/alexander-akhmetov/clockwork/internal/timing"
)

// Terminal is the app.Screen drawing through a bubbletea program.
type Terminal struct {
	renderer *Renderer
	send     func(tea.Msg)
}

// NewTerminal creates a screen rendering with r and delivering frames with
// send, usually (*tea.Program).Send.
func NewTerminal(r *Renderer, send func(tea.Msg)) *Terminal {
	return &Terminal{renderer: r, send: send}
}

// Draw renders s and hands the frame to the program.
func (t *Terminal) Draw(s app.Snapshot) {
	t.send(frameMsg{frame: t.renderer.Render(s)})
}

// Run drives the controller and the terminal until either one stops. The
// program ending closes the input queue and cancels the controller; the
// controller ending quits the program.
func Run(ctx context.Context, a *app.App, input *event.Queue, mux *event.Multiplexer) error {
	timing.Log("tui.Run: start")
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewModel(input), tea.WithAltScreen(), tea.WithReportFocus())
	screen := NewTerminal(NewRenderer(mux.Notifier()), program.Send)

	var g errgroup.Group
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		timing.Log("tui.Run: tea.Program.Run returned")
		if errors.Is(err, tea.ErrInterrupted) {
			err = nil
		}
		if err != nil {
			input.Push(event.InputError(err))
		}
		input.Close()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		defer program.Quit()
		if err := a.Run(ctx, mux, screen); err != nil {
			return fmt.Errorf("controller: %w", err)
		}
		debug.Logf("controller stopped")
		return nil
	})
	return g.Wait()
}
