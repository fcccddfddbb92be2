// Package notify delivers the side effects of a finished clock: a desktop
// notification and a sound. Both shell out to platform tools and never wait
// for them, so a slow or missing tool cannot stall the caller.
package notify

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/alexander-akhmetov/clockwork/internal/debug"
)

// ErrNoCommand is returned when no command is configured or found.
var ErrNoCommand = errors.New("no command available")

// Title is the notification title.
const Title = "clockwork"

// starter starts a command without waiting for it. Tests replace it.
type starter func(name string, args ...string) error

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...) //nolint:gosec // user configured command
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			debug.Logf("%s: %v", name, err)
		}
	}()
	return nil
}

// Desktop sends desktop notifications.
type Desktop struct {
	name  string
	args  []string
	start starter
}

// NewDesktop builds a notifier from a command line. The message is
// appended as the last argument. An empty command picks osascript on
// macOS and notify-send elsewhere.
func NewDesktop(command string) *Desktop {
	d := &Desktop{start: startDetached}
	if fields := strings.Fields(command); len(fields) > 0 {
		d.name, d.args = fields[0], fields[1:]
		return d
	}
	if runtime.GOOS == "darwin" {
		d.name = "osascript"
		return d
	}
	d.name = "notify-send"
	d.args = []string{"--app-name=" + Title, Title}
	return d
}

// Notify shows msg. Errors only mean the command could not be started.
func (d *Desktop) Notify(msg string) error {
	if d == nil || d.name == "" {
		return ErrNoCommand
	}
	args := append([]string(nil), d.args...)
	if d.name == "osascript" && len(d.args) == 0 {
		args = append(args, "-e", fmt.Sprintf("display notification %q with title %q", msg, Title))
	} else {
		args = append(args, msg)
	}
	if err := d.start(d.name, args...); err != nil {
		return fmt.Errorf("notify via %s: %w", d.name, err)
	}
	return nil
}

// Sound plays an audio file through an external player. A nil *Sound is a
// valid player that plays nothing.
type Sound struct {
	path  string
	name  string
	args  []string
	start starter
}

// NewSound creates a player for the file at path. It returns nil without an
// error when path is empty. The player command gets the path appended; an
// empty command picks afplay on macOS and paplay elsewhere.
func NewSound(path, command string) (*Sound, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sound file: %w", err)
	}
	s := &Sound{path: path, start: startDetached}
	if fields := strings.Fields(command); len(fields) > 0 {
		s.name, s.args = fields[0], fields[1:]
		return s, nil
	}
	if runtime.GOOS == "darwin" {
		s.name = "afplay"
	} else {
		s.name = "paplay"
	}
	return s, nil
}

// Path returns the audio file path.
func (s *Sound) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Play starts playback and returns immediately.
func (s *Sound) Play() error {
	if s == nil {
		return nil
	}
	args := append(append([]string(nil), s.args...), s.path)
	if err := s.start(s.name, args...); err != nil {
		return fmt.Errorf("play %s: %w", s.path, err)
	}
	return nil
}
