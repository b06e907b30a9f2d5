package config

import (
	"fmt"
	"time"
)

// TriggerMode selects how icon toggling is triggered.
type TriggerMode string

const (
	// ModeHotkey toggles on a registered global hotkey. No mouse hook runs.
	ModeHotkey TriggerMode = "hotkey"

	// ModeDoubleClick toggles on a double-click on blank desktop space,
	// driven by a low-level mouse hook.
	ModeDoubleClick TriggerMode = "double_click"
)

// Tolerance bounds for the fullscreen size comparison, in pixels.
const (
	MinFullscreenTolerance = 0
	MaxFullscreenTolerance = 64
)

// Poll interval bounds, in milliseconds.
const (
	MinPollIntervalMS = 250
	MaxPollIntervalMS = 10000
)

// Config is the daemon configuration.
type Config struct {
	// Mode selects the trigger: "hotkey" or "double_click".
	Mode TriggerMode `yaml:"mode"`

	// Hotkey is the toggle chord for hotkey mode, e.g. "Ctrl+Alt+F1".
	Hotkey string `yaml:"hotkey"`

	// SuppressInFullscreen removes the mouse hook while a fullscreen
	// application holds the foreground.
	SuppressInFullscreen bool `yaml:"suppress_in_fullscreen"`

	// FullscreenTolerance is the pixel slack allowed when comparing the
	// foreground window's size against its monitor.
	FullscreenTolerance int `yaml:"fullscreen_tolerance"`

	// PollIntervalMS is how often the daemon re-evaluates the desired hook
	// state, in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`

	// Level controls logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile is an optional log file path; empty logs to stderr.
	LogFile string `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Mode:                 ModeHotkey,
		Hotkey:               "Ctrl+Alt+F1",
		SuppressInFullscreen: true,
		FullscreenTolerance:  3,
		PollIntervalMS:       1200,
		LogLevel:             "info",
	}
}

// Normalize repairs out-of-range values in place. Repair is silent: a
// hand-edited tolerance of 9999 or a misspelled mode should degrade, not
// kill the daemon.
func (c *Config) Normalize() {
	switch c.Mode {
	case ModeHotkey, ModeDoubleClick:
	default:
		c.Mode = ModeHotkey
	}
	if c.FullscreenTolerance < MinFullscreenTolerance {
		c.FullscreenTolerance = MinFullscreenTolerance
	}
	if c.FullscreenTolerance > MaxFullscreenTolerance {
		c.FullscreenTolerance = MaxFullscreenTolerance
	}
	if c.PollIntervalMS < MinPollIntervalMS {
		c.PollIntervalMS = MinPollIntervalMS
	}
	if c.PollIntervalMS > MaxPollIntervalMS {
		c.PollIntervalMS = MaxPollIntervalMS
	}
}

// Validate checks fields that cannot be repaired by normalization.
func (c *Config) Validate() error {
	if c.Mode == ModeHotkey && c.Hotkey == "" {
		return fmt.Errorf("hotkey: required when mode is %q", ModeHotkey)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: invalid value %q (expected debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// PollInterval returns the poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
