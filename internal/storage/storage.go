// Package storage persists the application state between runs as a small
// JSON document in the state directory.
//
// Reading is lenient: comments are allowed, and every field that is missing
// or malformed falls back to the value from the defaults passed to Load, so
// an old or hand-edited file never prevents startup.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"

	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/debug"
	"github.com/alexander-akhmetov/clockwork/internal/dirs"
)

// FileName is the name of the state file inside the state directory.
const FileName = "state.json"

// Event is the persisted scheduled event.
type Event struct {
	Target time.Time
	Title  string
	Start  time.Time
}

// State is everything persisted across runs.
type State struct {
	Content       content.Content
	ShowMenu      bool
	Notification  content.Toggle
	Blink         content.Toggle
	AppTimeFormat content.TimeFormat
	FooterAppTime content.Toggle
	Style         content.Style
	WithDecis     bool

	PomodoroPhase content.Phase
	PomodoroRound int
	InitialWork   time.Duration
	CurrentWork   time.Duration
	InitialPause  time.Duration
	CurrentPause  time.Duration

	InitialCountdown time.Duration
	CurrentCountdown time.Duration
	ElapsedCountdown time.Duration

	CurrentTimer time.Duration

	Event Event
}

// Default returns the state of a first run.
func Default() State {
	now := time.Now()
	return State{
		Content:          content.ScreenCountdown,
		Notification:     content.Off,
		Blink:            content.Off,
		AppTimeFormat:    content.FormatHhMmSs,
		FooterAppTime:    content.Off,
		Style:            content.StyleFull,
		PomodoroPhase:    content.PhaseWork,
		PomodoroRound:    1,
		InitialWork:      25 * time.Minute,
		CurrentWork:      25 * time.Minute,
		InitialPause:     5 * time.Minute,
		CurrentPause:     5 * time.Minute,
		InitialCountdown: 10 * time.Minute,
		CurrentCountdown: 10 * time.Minute,
		Event: Event{
			Target: time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, time.Local),
			Title:  "New Year",
			Start:  now,
		},
	}
}

// Store reads and writes the state file.
type Store struct {
	path string
}

// New creates a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Open creates a store for the default state file location.
func Open() *Store {
	return New(filepath.Join(dirs.StateDir(), FileName))
}

// Path returns the state file path.
func (s *Store) Path() string { return s.path }

// Load reads the state file. A missing file yields defaults without error.
// A file that is not JSON yields defaults and the parse error.
func (s *Store) Load(defaults State) (State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("read state: %w", err)
	}
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return defaults, fmt.Errorf("parse state %s: invalid JSON", s.path)
	}
	return decode(gjson.ParseBytes(data), defaults), nil
}

// Save writes the state file, creating the directory when needed. The file
// is replaced atomically.
func (s *Store) Save(st State) error {
	data, err := encode(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace state: %w", err)
	}
	debug.Logf("state saved to %s", s.path)
	return nil
}

// Remove deletes the state file. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove state: %w", err)
	}
	return nil
}
