package tui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/alexander-akhmetov/clockwork/internal/storage"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or clear the saved clock state",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the state file",
	Args:  cobra.NoArgs,
	RunE:  runStateShow,
}

var stateClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the state file so the next start uses defaults",
	Args:  cobra.NoArgs,
	RunE:  runStateClear,
}

func init() {
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateClearCmd)
}

func runStateShow(cmd *cobra.Command, _ []string) error {
	store := storage.Open()
	data, err := os.ReadFile(store.Path())
	if os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "No state saved yet (%s)\n", store.Path())
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", store.Path())
	fmt.Fprint(cmd.OutOrStdout(), string(pretty.Color(pretty.Pretty(data), nil)))
	return nil
}

func runStateClear(cmd *cobra.Command, _ []string) error {
	store := storage.Open()
	if err := store.Remove(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", store.Path())
	return nil
}
