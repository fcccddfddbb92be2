// Package dirs resolves the XDG base directories clockwork reads and
// writes.
package dirs

import (
	"os"
	"path/filepath"
)

const appName = "clockwork"

// StateDirEnv overrides the state directory.
const StateDirEnv = "CLOCKWORK_STATE_DIR"

// ConfigDir returns the configuration directory.
// Resolution order: XDG_CONFIG_HOME/clockwork > ~/.config/clockwork.
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// ConfigFile returns the global config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the state directory.
// Resolution order: CLOCKWORK_STATE_DIR > XDG_STATE_HOME/clockwork > ~/.local/state/clockwork.
func StateDir() string {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir
	}
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// LogsDir returns the logs directory (StateDir/logs).
func LogsDir() string {
	return filepath.Join(StateDir(), "logs")
}

// LogFile returns the debug log path.
func LogFile() string {
	return filepath.Join(LogsDir(), appName+".log")
}

func xdgDir(env, fallback string) string {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", fallback, appName)
	}
	return filepath.Join(home, fallback, appName)
}
