package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global bindings. They only see keys the active screen
// passed through.
type KeyMap struct {
	Quit       key.Binding
	Countdown  key.Binding
	Timer      key.Binding
	Pomodoro   key.Binding
	Event      key.Binding
	LocalTime  key.Binding
	Next       key.Binding
	Prev       key.Binding
	ShowMenu   key.Binding
	HideMenu   key.Binding
	ToggleMenu key.Binding
	Style      key.Binding
	Decis      key.Binding
	TimeFormat key.Binding
}

// Keys are the global key bindings.
var Keys = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Countdown:  key.NewBinding(key.WithKeys("1", "c"), key.WithHelp("1", "countdown")),
	Timer:      key.NewBinding(key.WithKeys("2", "t"), key.WithHelp("2", "timer")),
	Pomodoro:   key.NewBinding(key.WithKeys("3", "p"), key.WithHelp("3", "pomodoro")),
	Event:      key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "event")),
	LocalTime:  key.NewBinding(key.WithKeys("0", "l"), key.WithHelp("0", "local time")),
	Next:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next screen")),
	Prev:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev screen")),
	ShowMenu:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "show menu")),
	HideMenu:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "hide menu")),
	ToggleMenu: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Style:      key.NewBinding(key.WithKeys(","), key.WithHelp(",", "style")),
	Decis:      key.NewBinding(key.WithKeys("."), key.WithHelp(".", "1/10 sec")),
	TimeFormat: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "time format")),
}

// ScreenKeys returns the global bindings listed in the menu.
func (k KeyMap) ScreenKeys() []key.Binding {
	return []key.Binding{k.Countdown, k.Timer, k.Pomodoro, k.Event, k.LocalTime, k.Next, k.Prev}
}

// AppearanceKeys returns the display option bindings listed in the menu.
func (k KeyMap) AppearanceKeys() []key.Binding {
	return []key.Binding{k.Style, k.Decis, k.TimeFormat, k.ToggleMenu, k.Quit}
}
