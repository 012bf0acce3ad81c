// Package config handles promptkit configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Front ends understood by the CLI.
const (
	FrontendRaw       = "raw"
	FrontendBubbleTea = "bubbletea"
)

// Config represents promptkit configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	UI       UIConfig       `toml:"ui"`
	Theme    ThemeConfig    `toml:"theme"`
	Keys     KeysConfig     `toml:"keys"`
	Duration DurationConfig `toml:"duration"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Which driver runs the prompts: "raw" or "bubbletea"
	Frontend string `toml:"frontend"`

	// Terminal device keys are read from
	TTY string `toml:"tty"`

	// Lock file guarding the terminal across processes (empty = temp dir)
	LockFile string `toml:"lock_file"`

	// File remembered answers are stored in (empty = user cache dir)
	StateFile string `toml:"state_file"`
}

// UIConfig contains rendering settings.
type UIConfig struct {
	// Disable colors and bold text
	Plain bool `toml:"plain"`

	// Color of the active markers (ANSI index or hex)
	Accent string `toml:"accent"`

	// Color of the yes/no pointer
	Pointer string `toml:"pointer"`

	// Color of validation messages
	Error string `toml:"error"`
}

// ThemeConfig contains the marker text for every style slot.
type ThemeConfig struct {
	SelectSelected   string `toml:"select_selected"`
	SelectDeselected string `toml:"select_deselected"`
	Caption          string `toml:"caption"`

	MultiUnticked         string `toml:"multi_unticked"`
	MultiTicked           string `toml:"multi_ticked"`
	MultiCursorUnticked   string `toml:"multi_cursor_unticked"`
	MultiCursorTicked     string `toml:"multi_cursor_ticked"`
	ConfirmLabel          string `toml:"confirm_label"`
	ConfirmLabelHighlight string `toml:"confirm_label_highlight"`

	ChoiceSelected   string `toml:"choice_selected"`
	ChoiceDeselected string `toml:"choice_deselected"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Left      string `toml:"left"`
	Right     string `toml:"right"`
	Enter     string `toml:"enter"`
	Backspace string `toml:"backspace"`
	Tab       string `toml:"tab"`
	Tick      string `toml:"tick"`
	Interrupt string `toml:"interrupt"`
}

// DurationConfig bounds the duration command. Bounds are exclusive.
type DurationConfig struct {
	MaxHours   int `toml:"max_hours"`
	MaxMinutes int `toml:"max_minutes"`
	Step       int `toml:"step"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Frontend:  FrontendRaw,
			TTY:       "/dev/tty",
			LockFile:  "",
			StateFile: "",
		},
		UI: UIConfig{
			Plain:   false,
			Accent:  "2",
			Pointer: "1",
			Error:   "1",
		},
		Theme: ThemeConfig{
			SelectSelected:        "[x]",
			SelectDeselected:      "[ ]",
			Caption:               "",
			MultiUnticked:         "( )",
			MultiTicked:           "(x)",
			MultiCursorUnticked:   "{ }",
			MultiCursorTicked:     "{x}",
			ConfirmLabel:          "(( confirm ))",
			ConfirmLabelHighlight: "{{ confirm }}",
			ChoiceSelected:        ">",
			ChoiceDeselected:      " ",
		},
		Keys: KeysConfig{
			Up:        "up",
			Down:      "down",
			Left:      "left",
			Right:     "right",
			Enter:     "enter",
			Backspace: "backspace",
			Tab:       "tab",
			Tick:      "space",
			Interrupt: "ctrl+c,ctrl+d",
		},
		Duration: DurationConfig{
			MaxHours:   13,
			MaxMinutes: 60,
			Step:       1,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/promptkit/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "promptkit", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "promptkit", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "promptkit", "config.toml")
	}
	return filepath.Join(configDir, "promptkit", "config.toml")
}

// LockPath returns the terminal lock file, falling back to the temp dir.
func (c *Config) LockPath() string {
	if c.General.LockFile != "" {
		return c.General.LockFile
	}
	return filepath.Join(os.TempDir(), "promptkit.lock")
}

// StatePath returns the remembered-answers file, falling back to the user
// cache dir.
func (c *Config) StatePath() string {
	if c.General.StateFile != "" {
		return c.General.StateFile
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "promptkit", "history.json")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything unspecified.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return cfg, nil
}

// CreateDefaultConfigFile writes a commented default config to path.
func CreateDefaultConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// Marshal renders the config as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# promptkit configuration\n\n")

	b.WriteString("[general]\n")
	b.WriteString("# Driver for prompts: \"raw\" (direct terminal) or \"bubbletea\"\n")
	fmt.Fprintf(&b, "frontend = %q\n", cfg.General.Frontend)
	b.WriteString("# Terminal keys are read from (stdin is used when it is a terminal and this fails)\n")
	fmt.Fprintf(&b, "tty = %q\n", cfg.General.TTY)
	b.WriteString("# Lock file so only one prompt owns the terminal at a time\n")
	b.WriteString("# lock_file = \"/tmp/promptkit.lock\"\n")
	b.WriteString("# Where --remember stores previous answers\n")
	b.WriteString("# state_file = \"~/.cache/promptkit/history.json\"\n\n")

	b.WriteString("[ui]\n")
	b.WriteString("# Disable colors and bold text\n")
	fmt.Fprintf(&b, "plain = %v\n", cfg.UI.Plain)
	b.WriteString("# Colors: ANSI index (\"2\") or hex (\"#00ff00\")\n")
	fmt.Fprintf(&b, "accent = %q\n", cfg.UI.Accent)
	fmt.Fprintf(&b, "pointer = %q\n", cfg.UI.Pointer)
	fmt.Fprintf(&b, "error = %q\n\n", cfg.UI.Error)

	b.WriteString("[theme]\n")
	b.WriteString("# Marker text per style slot; a space is added after each marker\n")
	fmt.Fprintf(&b, "select_selected = %q\n", cfg.Theme.SelectSelected)
	fmt.Fprintf(&b, "select_deselected = %q\n", cfg.Theme.SelectDeselected)
	fmt.Fprintf(&b, "caption = %q\n", cfg.Theme.Caption)
	fmt.Fprintf(&b, "multi_unticked = %q\n", cfg.Theme.MultiUnticked)
	fmt.Fprintf(&b, "multi_ticked = %q\n", cfg.Theme.MultiTicked)
	fmt.Fprintf(&b, "multi_cursor_unticked = %q\n", cfg.Theme.MultiCursorUnticked)
	fmt.Fprintf(&b, "multi_cursor_ticked = %q\n", cfg.Theme.MultiCursorTicked)
	fmt.Fprintf(&b, "confirm_label = %q\n", cfg.Theme.ConfirmLabel)
	fmt.Fprintf(&b, "confirm_label_highlight = %q\n", cfg.Theme.ConfirmLabelHighlight)
	fmt.Fprintf(&b, "choice_selected = %q\n", cfg.Theme.ChoiceSelected)
	fmt.Fprintf(&b, "choice_deselected = %q\n\n", cfg.Theme.ChoiceDeselected)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys, \"space\" for the space bar)\n")
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# left = %q\n", cfg.Keys.Left)
	fmt.Fprintf(&b, "# right = %q\n", cfg.Keys.Right)
	fmt.Fprintf(&b, "# enter = %q\n", cfg.Keys.Enter)
	fmt.Fprintf(&b, "# backspace = %q\n", cfg.Keys.Backspace)
	fmt.Fprintf(&b, "# tab = %q\n", cfg.Keys.Tab)
	fmt.Fprintf(&b, "# tick = %q\n", cfg.Keys.Tick)
	fmt.Fprintf(&b, "# interrupt = %q\n\n", cfg.Keys.Interrupt)

	b.WriteString("[duration]\n")
	b.WriteString("# Exclusive upper bounds for the duration command\n")
	fmt.Fprintf(&b, "max_hours = %d\n", cfg.Duration.MaxHours)
	fmt.Fprintf(&b, "max_minutes = %d\n", cfg.Duration.MaxMinutes)
	fmt.Fprintf(&b, "step = %d\n", cfg.Duration.Step)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.General.Frontend != "" &&
		c.General.Frontend != FrontendRaw &&
		c.General.Frontend != FrontendBubbleTea {
		warnings = append(warnings, fmt.Sprintf("Invalid value for general.frontend: %s (expected raw or bubbletea)", c.General.Frontend))
	}

	keyFields := []struct {
		name  string
		value string
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"enter", c.Keys.Enter},
		{"tick", c.Keys.Tick},
		{"interrupt", c.Keys.Interrupt},
	}
	seen := make(map[string]string)
	for _, kf := range keyFields {
		if strings.TrimSpace(kf.value) == "" && kf.value != " " {
			warnings = append(warnings, fmt.Sprintf("keys.%s is empty; the default binding is used", kf.name))
			continue
		}
		for _, k := range strings.Split(kf.value, ",") {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			if other, ok := seen[k]; ok && other != kf.name {
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both keys.%s and keys.%s", k, other, kf.name))
			}
			seen[k] = kf.name
		}
	}

	if c.Duration.MaxHours < 2 {
		warnings = append(warnings, fmt.Sprintf("duration.max_hours must be at least 2, got %d", c.Duration.MaxHours))
	}
	if c.Duration.MaxMinutes < 2 {
		warnings = append(warnings, fmt.Sprintf("duration.max_minutes must be at least 2, got %d", c.Duration.MaxMinutes))
	}
	if c.Duration.Step < 1 {
		warnings = append(warnings, fmt.Sprintf("duration.step must be positive, got %d", c.Duration.Step))
	}

	return warnings
}
