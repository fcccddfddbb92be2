// Package config provides unified configuration management for clockwork.
// Configuration is loaded from multiple sources with the following precedence:
// embedded defaults → global file → env vars → CLI flags
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/clockwork/internal/clock"
	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// Duration is a YAML duration accepting Go syntax ("25m") and clock
// notation ("25:00").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := clock.Parse(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// CountdownConfig holds countdown defaults.
type CountdownConfig struct {
	Duration Duration `yaml:"duration"`
}

// PomodoroConfig holds pomodoro defaults.
type PomodoroConfig struct {
	Work    Duration `yaml:"work"`
	Pause   Duration `yaml:"pause"`
	RoundOn string   `yaml:"round_on"` // work or pause
}

// TimerConfig holds stopwatch settings.
type TimerConfig struct {
	Max Duration `yaml:"max"`
}

// SoundConfig configures the completion sound.
type SoundConfig struct {
	Path    string `yaml:"path"`
	Command string `yaml:"command"`
}

// NotifyConfig configures desktop notifications.
type NotifyConfig struct {
	Command string `yaml:"command"`
}

// Config holds all configuration settings for clockwork.
// Fields ending in *Set track whether that field was explicitly set in config.
// This allows distinguishing explicit false from "not set", so a global file
// can switch off what the embedded defaults switched on.
type Config struct {
	Countdown    CountdownConfig `yaml:"countdown"`
	Pomodoro     PomodoroConfig  `yaml:"pomodoro"`
	Timer        TimerConfig     `yaml:"timer"`
	Notification bool            `yaml:"notification"`
	Blink        bool            `yaml:"blink"`
	Sound        SoundConfig     `yaml:"sound"`
	Notify       NotifyConfig    `yaml:"notify"`

	// Set tracking for merge behavior
	NotificationSet bool `yaml:"-"`
	BlinkSet        bool `yaml:"-"`

	configDir string
	sources   []string // ordered list of sources that contributed to this config
}

// Sources lists where the config values came from, in precedence order.
func (c *Config) Sources() []string {
	return c.sources
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// RoundOn returns the pomodoro phase that counts rounds.
func (c *Config) RoundOn() content.Phase {
	p, err := content.ParsePhase(c.Pomodoro.RoundOn)
	if err != nil {
		return content.PhaseWork
	}
	return p
}

// Load loads all configuration from the default locations.
func Load() (*Config, error) {
	return LoadWithDir(dirs.ConfigDir())
}

// LoadWithDir loads configuration with an explicit global directory. The
// directory is not created; `clockwork config init` does that.
func LoadWithDir(globalDir string) (*Config, error) {
	// 1. Start with embedded defaults
	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	// 2. Merge global config
	globalPath := filepath.Join(globalDir, "config.yaml")
	if globalCfg, err := loadFile(globalPath); err == nil {
		cfg.mergeFrom(globalCfg)
		cfg.sources = append(cfg.sources, globalPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	// 3. Apply environment variables
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.configDir = globalDir
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InstallDefaults creates the config directory and writes the default
// config file unless one exists. It returns the config file path.
func InstallDefaults(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		data, err := defaultsFS.ReadFile("defaults/config.yaml")
		if err != nil {
			return "", fmt.Errorf("read embedded config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0o600); err != nil {
			return "", fmt.Errorf("write config file: %w", err)
		}
	}
	return configPath, nil
}

// Validate checks values that YAML decoding cannot.
func (c *Config) Validate() error {
	if _, err := content.ParsePhase(c.Pomodoro.RoundOn); err != nil {
		return fmt.Errorf("pomodoro.round_on: %w", err)
	}
	for name, d := range map[string]Duration{
		"countdown.duration": c.Countdown.Duration,
		"pomodoro.work":      c.Pomodoro.Work,
		"pomodoro.pause":     c.Pomodoro.Pause,
		"timer.max":          c.Timer.Max,
	} {
		if d.Std() > clock.MaxDuration {
			return fmt.Errorf("%s: %s exceeds the maximum of %s", name, d.Std(), clock.MaxDuration)
		}
	}
	if c.Timer.Max <= 0 {
		return fmt.Errorf("timer.max must be positive")
	}
	return nil
}

// loadEmbedded loads config from the embedded defaults.
func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

// loadFile loads config from a file path.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfigWithTracking(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// parseConfig parses YAML config data into a Config struct.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and tracks which fields were set.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	// Parse into a map to detect which fields were explicitly set
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if _, ok := raw["notification"]; ok {
		cfg.NotificationSet = true
	}
	if _, ok := raw["blink"]; ok {
		cfg.BlinkSet = true
	}
	return cfg, nil
}

// applyEnv applies CLOCKWORK_* environment variables to the config.
func (c *Config) applyEnv() error {
	durations := []struct {
		env string
		dst *Duration
	}{
		{"CLOCKWORK_COUNTDOWN", &c.Countdown.Duration},
		{"CLOCKWORK_WORK", &c.Pomodoro.Work},
		{"CLOCKWORK_PAUSE", &c.Pomodoro.Pause},
		{"CLOCKWORK_TIMER_MAX", &c.Timer.Max},
	}
	for _, d := range durations {
		v := os.Getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := clock.Parse(v)
		if err != nil {
			return fmt.Errorf("env %s: %w", d.env, err)
		}
		*d.dst = Duration(parsed)
		c.sources = append(c.sources, "env:"+d.env)
	}

	bools := []struct {
		env string
		dst *bool
		set *bool
	}{
		{"CLOCKWORK_NOTIFICATION", &c.Notification, &c.NotificationSet},
		{"CLOCKWORK_BLINK", &c.Blink, &c.BlinkSet},
	}
	for _, b := range bools {
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		on, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("env %s: %w", b.env, err)
		}
		*b.dst = on
		*b.set = true
		c.sources = append(c.sources, "env:"+b.env)
	}

	if v := os.Getenv("CLOCKWORK_ROUND_ON"); v != "" {
		c.Pomodoro.RoundOn = v
		c.sources = append(c.sources, "env:CLOCKWORK_ROUND_ON")
	}
	if v := os.Getenv("CLOCKWORK_SOUND"); v != "" {
		c.Sound.Path = v
		c.sources = append(c.sources, "env:CLOCKWORK_SOUND")
	}
	if v := os.Getenv("CLOCKWORK_SOUND_COMMAND"); v != "" {
		c.Sound.Command = v
		c.sources = append(c.sources, "env:CLOCKWORK_SOUND_COMMAND")
	}
	if v := os.Getenv("CLOCKWORK_NOTIFY_COMMAND"); v != "" {
		c.Notify.Command = v
		c.sources = append(c.sources, "env:CLOCKWORK_NOTIFY_COMMAND")
	}
	return nil
}

func parseBool(v string) (bool, error) {
	if t, err := content.ParseToggle(v); err == nil {
		return bool(t), nil
	}
	return strconv.ParseBool(v)
}

// mergeFrom merges non-empty/set values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.Countdown.Duration > 0 {
		c.Countdown.Duration = src.Countdown.Duration
	}
	if src.Pomodoro.Work > 0 {
		c.Pomodoro.Work = src.Pomodoro.Work
	}
	if src.Pomodoro.Pause > 0 {
		c.Pomodoro.Pause = src.Pomodoro.Pause
	}
	if src.Pomodoro.RoundOn != "" {
		c.Pomodoro.RoundOn = src.Pomodoro.RoundOn
	}
	if src.Timer.Max > 0 {
		c.Timer.Max = src.Timer.Max
	}
	if src.NotificationSet {
		c.Notification = src.Notification
		c.NotificationSet = true
	}
	if src.BlinkSet {
		c.Blink = src.Blink
		c.BlinkSet = true
	}
	if src.Sound.Path != "" {
		c.Sound.Path = src.Sound.Path
	}
	if src.Sound.Command != "" {
		c.Sound.Command = src.Sound.Command
	}
	if src.Notify.Command != "" {
		c.Notify.Command = src.Notify.Command
	}
}

// CLIFlags are the flags that override config values. Nil and empty
// values leave the config untouched.
type CLIFlags struct {
	Notification *bool
	Blink        *bool
	SoundPath    string
}

// ApplyCLIFlags applies CLI flag overrides to the config.
// CLI flags have the highest precedence.
func (c *Config) ApplyCLIFlags(f CLIFlags) {
	if f.Notification != nil {
		c.Notification = *f.Notification
		c.NotificationSet = true
		c.sources = append(c.sources, "cli:notification")
	}
	if f.Blink != nil {
		c.Blink = *f.Blink
		c.BlinkSet = true
		c.sources = append(c.sources, "cli:blink")
	}
	if f.SoundPath != "" {
		c.Sound.Path = f.SoundPath
		c.sources = append(c.sources, "cli:sound")
	}
}

// YAML renders the resolved config.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}
