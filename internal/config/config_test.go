package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Mode != ModeHotkey {
		t.Fatalf("expected default mode %q, got %q", ModeHotkey, cfg.Mode)
	}
	if cfg.Hotkey != "Ctrl+Alt+F1" {
		t.Fatalf("unexpected default hotkey %q", cfg.Hotkey)
	}
	if !cfg.SuppressInFullscreen {
		t.Fatalf("expected fullscreen suppression on by default")
	}
	if cfg.FullscreenTolerance != 3 {
		t.Fatalf("expected default tolerance 3, got %d", cfg.FullscreenTolerance)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name          string
		tolerance     int
		wantTolerance int
		pollMS        int
		wantPollMS    int
	}{
		{"negative tolerance", -1, 0, 1200, 1200},
		{"oversized tolerance", 9999, MaxFullscreenTolerance, 1200, 1200},
		{"tiny poll interval", 3, 3, 1, MinPollIntervalMS},
		{"huge poll interval", 3, 3, 3600000, MaxPollIntervalMS},
		{"in range untouched", 10, 10, 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.FullscreenTolerance = tt.tolerance
			cfg.PollIntervalMS = tt.pollMS
			cfg.Normalize()
			if cfg.FullscreenTolerance != tt.wantTolerance {
				t.Fatalf("tolerance: expected %d, got %d", tt.wantTolerance, cfg.FullscreenTolerance)
			}
			if cfg.PollIntervalMS != tt.wantPollMS {
				t.Fatalf("poll interval: expected %d, got %d", tt.wantPollMS, cfg.PollIntervalMS)
			}
		})
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"hotkey mode without chord", func(c *Config) { c.Hotkey = "" }, "hotkey"},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_DoubleClickModeWithoutHotkey(t *testing.T) {
	cfg := Default()
	cfg.Mode = ModeDoubleClick
	cfg.Hotkey = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("hotkey should be optional in double_click mode: %v", err)
	}
}

func TestPollInterval(t *testing.T) {
	cfg := Default()
	cfg.PollIntervalMS = 1500
	if got := cfg.PollInterval(); got != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s, got %v", got)
	}
}

func TestLoadFromPath_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Mode != ModeHotkey || cfg.FullscreenTolerance != 3 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "mode: double_click\nfullscreen_tolerance: 5\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Mode != ModeDoubleClick {
		t.Fatalf("expected overridden mode, got %q", cfg.Mode)
	}
	if cfg.FullscreenTolerance != 5 {
		t.Fatalf("expected overridden tolerance, got %d", cfg.FullscreenTolerance)
	}
	// Untouched keys keep their defaults.
	if !cfg.SuppressInFullscreen || cfg.Hotkey != "Ctrl+Alt+F1" {
		t.Fatalf("expected defaults for unset keys, got %+v", cfg)
	}
}

func TestLoadFromPath_ClampsOutOfRangeValues(t *testing.T) {
	path := writeConfig(t, "fullscreen_tolerance: 500\npoll_interval_ms: 10\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FullscreenTolerance != MaxFullscreenTolerance {
		t.Fatalf("expected clamped tolerance, got %d", cfg.FullscreenTolerance)
	}
	if cfg.PollIntervalMS != MinPollIntervalMS {
		t.Fatalf("expected clamped poll interval, got %d", cfg.PollIntervalMS)
	}
}

func TestLoadFromPath_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "mode: hotkey\nhotkye: Ctrl+Alt+F2\n")

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestNormalize_UnknownModeFallsBackToHotkey(t *testing.T) {
	cfg := Default()
	cfg.Mode = "triple_click"
	cfg.Normalize()
	if cfg.Mode != ModeHotkey {
		t.Fatalf("expected unknown mode to fall back to %q, got %q", ModeHotkey, cfg.Mode)
	}
}

func TestLoadFromPath_UnknownModeFallsBackToHotkey(t *testing.T) {
	path := writeConfig(t, "mode: sometimes\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Mode != ModeHotkey {
		t.Fatalf("expected fallback to hotkey mode, got %q", cfg.Mode)
	}
}

func TestLoadFromPath_EmptyFileYieldsDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("empty file must not error: %v", err)
	}
	if cfg.Mode != ModeHotkey {
		t.Fatalf("expected defaults for empty file, got %+v", cfg)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
