// Package debug provides debug logging utilities.
//
// The terminal belongs to the TUI while clockwork runs, so messages go to a
// log file instead of stderr. Logging is enabled by CLOCKWORK_DEBUG=1 or by
// calling Enable (the --log flag).
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alexander-akhmetov/clockwork/internal/dirs"
)

var (
	mu   sync.Mutex
	out  io.Writer
	file *os.File
)

func init() {
	if os.Getenv("CLOCKWORK_DEBUG") == "1" {
		if err := Enable(dirs.LogFile()); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
	}
}

// Enable starts appending debug messages to the file at path.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = f
	out = f
	return nil
}

// SetOutput redirects debug messages to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Close closes the log file, if any, and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	out = nil
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Logf writes a timestamped debug message when logging is enabled.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[DEBUG %s] %s\n", timestamp, msg)
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}
