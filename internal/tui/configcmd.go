package tui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/config"
	"github.com/alexander-akhmetov/clockwork/internal/dirs"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clockwork configuration",
	Long:  `View and manage clockwork configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with source annotations",
	Long: `Show the fully resolved configuration with annotations indicating
where the values came from.

Configuration is loaded from multiple sources with the following precedence:
  1. Embedded defaults (built into binary)
  2. Global config (~/.config/clockwork/config.yaml)
  3. Environment variables (CLOCKWORK_*)
  4. CLI flags (highest precedence)

Durations are defaults for a first run. Once a state file exists the
stored clocks win; start with --reset to apply the configured durations.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long:  `Create the global config directory and write the default config file unless one already exists.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("# Clockwork Configuration")
	fmt.Println()
	fmt.Println("## Sources (in order of precedence)")
	for _, src := range cfg.Sources() {
		fmt.Printf("  - %s\n", src)
	}
	fmt.Println()

	fmt.Println("## Directories")
	fmt.Printf("  Global config: %s\n", cfg.ConfigDir())
	fmt.Printf("  State:         %s\n", dirs.StateDir())
	fmt.Printf("  Logs:          %s\n", dirs.LogsDir())
	fmt.Println()

	fmt.Println("## Clocks")
	fmt.Printf("  countdown:         %s\n", clock.Format(cfg.Countdown.Duration.Std(), false))
	fmt.Printf("  pomodoro work:     %s\n", clock.Format(cfg.Pomodoro.Work.Std(), false))
	fmt.Printf("  pomodoro pause:    %s\n", clock.Format(cfg.Pomodoro.Pause.Std(), false))
	fmt.Printf("  pomodoro round on: %s\n", cfg.RoundOn())
	fmt.Printf("  timer max:         %s\n", clock.Format(cfg.Timer.Max.Std(), true))
	fmt.Println()

	fmt.Println("## Alerts")
	fmt.Printf("  notification: %t\n", cfg.Notification)
	fmt.Printf("  blink:        %t\n", cfg.Blink)
	if cfg.Sound.Path != "" {
		fmt.Printf("  sound:        %s\n", cfg.Sound.Path)
	} else {
		fmt.Printf("  sound:        (none)\n")
	}
	if cfg.Sound.Command != "" {
		fmt.Printf("  sound player: %s\n", cfg.Sound.Command)
	} else {
		fmt.Printf("  sound player: (default)\n")
	}
	if cfg.Notify.Command != "" {
		fmt.Printf("  notifier:     %s\n", cfg.Notify.Command)
	} else {
		fmt.Printf("  notifier:     (default)\n")
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := config.InstallDefaults(dirs.ConfigDir())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", path)
	return nil
}
