package tui

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information set from main.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var rootCmd = &cobra.Command{
	Use:   "clockwork",
	Short: "Countdown, timer, pomodoro and event clocks in the terminal",
	Long: `Clockwork shows big digit clocks in the terminal: a countdown, a
stopwatch timer, a pomodoro with work and pause phases, a countdown to an
event and the local time.

The state of every clock is saved on exit and restored on the next start.
Flags override the saved state.

Press m inside the app to see every key.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runStart,
}

// Execute runs the root command. SIGTERM stops the app like the quit key,
// so the state is still saved.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	opts.register(rootCmd.Flags())
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(stateCmd)
}
