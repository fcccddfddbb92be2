package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexander-akhmetov/clockwork/internal/app"
	"github.com/alexander-akhmetov/clockwork/internal/content"
)

const defaultKeysWidth = 80

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show every key binding",
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) error {
	width := defaultKeysWidth
	if w, _, err := term.GetSize(0); err == nil && w > 0 {
		width = w
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(keysMarkdown())
	if err != nil {
		return fmt.Errorf("failed to render keys: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

type keySection struct {
	title    string
	bindings []key.Binding
}

func keySections() []keySection {
	k := content.Keys
	return []keySection{
		{"Screens", app.Keys.ScreenKeys()},
		{"Display", app.Keys.AppearanceKeys()},
		{"Menu", []key.Binding{app.Keys.ShowMenu, app.Keys.HideMenu}},
		{"Clocks", []key.Binding{k.Toggle, k.Reset, k.Edit}},
		{"Countdown", []key.Binding{k.EditTime}},
		{"Pomodoro", []key.Binding{k.SwitchPhase, k.ResetRound}},
		{"Editing", []key.Binding{k.Commit, k.Cancel, k.Left, k.Right, k.Up, k.Down}},
		{"Event editing", []key.Binding{k.Commit, k.Cancel, k.NextField}},
		{"Local time", []key.Binding{k.TimeFormat}},
	}
}

// keysMarkdown renders the key tables as markdown.
func keysMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n")
	for _, s := range keySections() {
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n| --- | --- |\n", s.title)
		for _, kb := range s.bindings {
			h := kb.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", strings.Join(kb.Keys(), "`, `"), h.Desc)
		}
	}
	return b.String()
}
