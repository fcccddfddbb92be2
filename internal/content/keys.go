package content

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/event"
)

// KeyMap holds the bindings the screens interpret themselves.
type KeyMap struct {
	Toggle      key.Binding
	Reset       key.Binding
	Edit        key.Binding
	Commit      key.Binding
	Cancel      key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	EditTime    key.Binding
	SwitchPhase key.Binding
	ResetRound  key.Binding
	NextField   key.Binding
	TimeFormat  key.Binding
}

// Keys are the screen key bindings.
var Keys = KeyMap{
	Toggle:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop")),
	Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "edit left")),
	Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "edit right")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "edit up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "edit down")),
	EditTime:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "set by local time")),
	SwitchPhase: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "work/pause")),
	ResetRound:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset round")),
	NextField:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
	TimeFormat:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "time format")),
}

// updateClock handles the keys every clock screen shares and reports
// whether the key was consumed. Arrow keys are only taken in edit mode so
// they keep switching screens otherwise.
func updateClock(c *clock.Clock, k event.Key) bool {
	if c.IsEditing() {
		switch {
		case key.Matches(k, Keys.Edit), key.Matches(k, Keys.Commit):
			c.ExitEdit()
		case key.Matches(k, Keys.Cancel):
			c.CancelEdit()
		case key.Matches(k, Keys.Left):
			c.EditNext()
		case key.Matches(k, Keys.Right):
			c.EditPrev()
		case key.Matches(k, Keys.Up):
			c.EditUp()
		case key.Matches(k, Keys.Down):
			c.EditDown()
		default:
			return false
		}
		return true
	}

	switch {
	case key.Matches(k, Keys.Toggle):
		c.ToggleRun()
	case key.Matches(k, Keys.Reset):
		c.Reset()
	case key.Matches(k, Keys.Edit):
		c.EnterEdit()
	default:
		return false
	}
	return true
}
