package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/promptkit/internal/config"
)

// KeyMap defines the bindings every prompt understands.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Editing
	Enter     key.Binding
	Backspace key.Binding
	Tab       key.Binding
	Tick      key.Binding

	// General
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "erase"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "confirm"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Tick: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "tick"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()
	if cfg == nil {
		return km
	}

	rebind(&km.Up, cfg.Up, "up")
	rebind(&km.Down, cfg.Down, "down")
	rebind(&km.Left, cfg.Left, "erase")
	rebind(&km.Right, cfg.Right, "confirm")
	rebind(&km.Enter, cfg.Enter, "confirm")
	rebind(&km.Backspace, cfg.Backspace, "erase")
	rebind(&km.Tab, cfg.Tab, "complete")
	rebind(&km.Tick, cfg.Tick, "tick")
	rebind(&km.Interrupt, cfg.Interrupt, "abort")

	return km
}

func rebind(b *key.Binding, spec, desc string) {
	if spec == "" {
		return
	}
	ks := ParseKeys(spec)
	if len(ks) == 0 {
		return
	}
	*b = key.NewBinding(
		key.WithKeys(ks...),
		key.WithHelp(spec, desc),
	)
}

// ParseKeys parses a comma-separated list of keys. A lone space is kept
// as the space key.
func ParseKeys(s string) []string {
	if s == " " {
		return []string{" "}
	}
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		if p == " " {
			keys = append(keys, p)
			continue
		}
		p = strings.TrimSpace(p)
		if p == "space" {
			p = " "
		}
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// Matches reports whether k triggers any of the bindings.
func Matches(k Key, bindings ...key.Binding) bool {
	return key.Matches(k, bindings...)
}
