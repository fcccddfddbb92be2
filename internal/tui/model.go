package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/clockwork/internal/event"
)

// frameMsg carries a finished frame from the controller.
type frameMsg struct {
	frame string
}

// Model is the bubbletea model. It owns no application state: terminal
// input is forwarded to the controller's input queue and View shows the
// last frame the controller drew.
type Model struct {
	input *event.Queue
	frame string
}

// NewModel creates a Model forwarding input to q.
func NewModel(q *event.Queue) Model {
	return Model{input: q}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = msg.frame
	case tea.KeyMsg:
		m.input.Push(event.KeyPressed(tea.Key(msg)))
	case tea.WindowSizeMsg:
		m.input.Push(event.Resize(msg.Width, msg.Height))
	case tea.MouseMsg, tea.FocusMsg, tea.BlurMsg:
		m.input.Push(event.Input())
	}
	return m, nil
}

func (m Model) View() string {
	if m.frame == "" {
		return "Initializing..."
	}
	return m.frame
}
