package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies the defaults match the classic arena
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 800 || cfg.Height != 700 {
		t.Errorf("Expected 800x700, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ResetDelay() != 3*time.Second || cfg.WinDelay() != 3*time.Second {
		t.Errorf("Expected 3s announcement delays, got %v and %v", cfg.ResetDelay(), cfg.WinDelay())
	}
	if cfg.WelcomeDelay() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s welcome delay, got %v", cfg.WelcomeDelay())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

// TestLoadConfigMissingFile verifies a missing file yields defaults
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadConfigOverrides verifies file values replace only the keys they name
func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pingpong.toml")
	data := `
title = "Office Pong"
tick_rate = 120
reset_delay_ms = 500
unknown_key = 1

[audio]
volume = 0.25
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Title != "Office Pong" {
		t.Errorf("Expected title override, got %q", cfg.Title)
	}
	if cfg.TickRate != 120 {
		t.Errorf("Expected tick rate 120, got %d", cfg.TickRate)
	}
	if cfg.ResetDelay() != 500*time.Millisecond {
		t.Errorf("Expected 500ms reset delay, got %v", cfg.ResetDelay())
	}
	if cfg.Audio.Volume != 0.25 || !cfg.Audio.Enabled {
		t.Errorf("Expected volume 0.25 with audio still enabled, got %+v", cfg.Audio)
	}
	if cfg.Width != 800 {
		t.Errorf("Expected default width kept, got %d", cfg.Width)
	}
}

// TestLoadConfigErrors verifies malformed and invalid files are rejected
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "Malformed", data: "title = \n"},
		{name: "Zero tick rate", data: "tick_rate = 0\n"},
		{name: "Tiny window", data: "width = 50\n"},
		{name: "Huge ball", data: "ball_radius = 200\n"},
		{name: "Negative delay", data: "win_delay_ms = -1\n"},
		{name: "Loud audio", data: "[audio]\nvolume = 2.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

// TestTickDuration verifies the physics step follows the tick rate
func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 250
	if got := cfg.TickDuration(); got != 4*time.Millisecond {
		t.Errorf("Expected 4ms, got %v", got)
	}
}
