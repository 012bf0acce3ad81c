package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.General.Frontend != FrontendRaw {
		t.Errorf("Expected default frontend %q, got %q", FrontendRaw, cfg.General.Frontend)
	}

	if cfg.General.TTY != "/dev/tty" {
		t.Errorf("Expected tty '/dev/tty', got %q", cfg.General.TTY)
	}

	if cfg.Duration.MaxHours != 13 || cfg.Duration.MaxMinutes != 60 {
		t.Errorf("Expected duration bounds 13/60, got %d/%d", cfg.Duration.MaxHours, cfg.Duration.MaxMinutes)
	}

	if cfg.Theme.SelectSelected != "[x]" {
		t.Errorf("Expected select marker '[x]', got %q", cfg.Theme.SelectSelected)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			modify:      func(*Config) {},
			wantWarning: false,
		},
		{
			name:        "invalid frontend",
			modify:      func(c *Config) { c.General.Frontend = "gtk" },
			wantWarning: true,
		},
		{
			name:        "bubbletea frontend",
			modify:      func(c *Config) { c.General.Frontend = FrontendBubbleTea },
			wantWarning: false,
		},
		{
			name:        "empty tick binding",
			modify:      func(c *Config) { c.Keys.Tick = "" },
			wantWarning: true,
		},
		{
			name:        "same key bound twice",
			modify:      func(c *Config) { c.Keys.Up = "up,k"; c.Keys.Down = "down,k" },
			wantWarning: true,
		},
		{
			name:        "max hours too small",
			modify:      func(c *Config) { c.Duration.MaxHours = 1 },
			wantWarning: true,
		},
		{
			name:        "zero step",
			modify:      func(c *Config) { c.Duration.Step = 0 },
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			warnings := cfg.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	// Only specify some values - others should keep defaults
	tomlContent := `[general]
frontend = "bubbletea"

[keys]
up = "up,k"

[duration]
max_hours = 25
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.General.Frontend != FrontendBubbleTea {
		t.Errorf("Expected frontend 'bubbletea', got %q", cfg.General.Frontend)
	}
	if cfg.Keys.Up != "up,k" {
		t.Errorf("Expected up 'up,k', got %q", cfg.Keys.Up)
	}
	if cfg.Duration.MaxHours != 25 {
		t.Errorf("Expected max_hours 25, got %d", cfg.Duration.MaxHours)
	}

	// Defaults preserved
	if cfg.General.TTY != "/dev/tty" {
		t.Errorf("Expected default tty preserved, got %q", cfg.General.TTY)
	}
	if cfg.Keys.Down != "down" {
		t.Errorf("Expected default down preserved, got %q", cfg.Keys.Down)
	}
	if cfg.Duration.MaxMinutes != 60 {
		t.Errorf("Expected default max_minutes preserved, got %d", cfg.Duration.MaxMinutes)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.General.Frontend != FrontendRaw {
		t.Errorf("Expected default config, got frontend %q", cfg.General.Frontend)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[general\nfrontend ="), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("Expected error for malformed TOML")
	}
}

func TestDefaultConfigContentParses(t *testing.T) {
	content := generateDefaultConfigContent()

	cfg := &Config{}
	if err := toml.Unmarshal([]byte(content), cfg); err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	if cfg.General.Frontend != FrontendRaw {
		t.Errorf("Expected frontend 'raw' in generated config, got %q", cfg.General.Frontend)
	}
	if cfg.Theme.MultiCursorTicked != "{x}" {
		t.Errorf("Expected theme markers in generated config, got %q", cfg.Theme.MultiCursorTicked)
	}
	if !strings.Contains(content, "# tick = \"space\"") {
		t.Error("Expected commented key bindings in generated config")
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile failed: %v", err)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if warnings := cfg.Validate(); len(warnings) > 0 {
		t.Errorf("default config file has warnings: %v", warnings)
	}
}

func TestConfigPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := ConfigPath(); got != filepath.Join("/xdg", "promptkit", "config.toml") {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestLockAndStatePaths(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.LockPath(); got != filepath.Join(os.TempDir(), "promptkit.lock") {
		t.Errorf("LockPath() = %q", got)
	}
	cfg.General.LockFile = "/run/pk.lock"
	if got := cfg.LockPath(); got != "/run/pk.lock" {
		t.Errorf("LockPath() override = %q", got)
	}
	cfg.General.StateFile = "/var/pk.json"
	if got := cfg.StatePath(); got != "/var/pk.json" {
		t.Errorf("StatePath() override = %q", got)
	}
}
