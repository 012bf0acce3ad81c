// Package ui handles prompt rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/promptkit/internal/config"
)

// Default colors
var (
	ColorAccent  = lipgloss.Color("2") // Green
	ColorPointer = lipgloss.Color("1") // Red
	ColorDanger  = lipgloss.Color("1") // Red
	ColorMuted   = lipgloss.Color("245")
)

// SelectTheme holds the prefixes of a single-select list.
type SelectTheme struct {
	Selected   string
	Deselected string
	Caption    string
}

// MultiTheme holds the prefixes and confirm labels of a multi-select list.
type MultiTheme struct {
	Unticked       string
	Ticked         string
	CursorUnticked string
	CursorTicked   string
	Caption        string
	Confirm        string
	ConfirmActive  string
}

// ChoiceTheme holds the prefixes of the two options of a boolean prompt.
type ChoiceTheme struct {
	Selected   string
	Deselected string
}

// Theme collects every style slot used by the prompts. Prefixes are
// rendered strings, already styled; a zero-styled Theme is plain text.
type Theme struct {
	Select SelectTheme
	Multi  MultiTheme
	Choice ChoiceTheme

	Prompt lipgloss.Style
	Hint   lipgloss.Style
	Error  lipgloss.Style
}

// prefix turns a marker into a line prefix. Empty markers stay empty.
func prefix(marker string) string {
	if marker == "" {
		return ""
	}
	return marker + " "
}

// PlainTheme returns the default markers with no styling.
func PlainTheme() Theme {
	return plainFromConfig(config.DefaultConfig().Theme)
}

func plainFromConfig(tc config.ThemeConfig) Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Select: SelectTheme{
			Selected:   prefix(tc.SelectSelected),
			Deselected: prefix(tc.SelectDeselected),
			Caption:    prefix(tc.Caption),
		},
		Multi: MultiTheme{
			Unticked:       prefix(tc.MultiUnticked),
			Ticked:         prefix(tc.MultiTicked),
			CursorUnticked: prefix(tc.MultiCursorUnticked),
			CursorTicked:   prefix(tc.MultiCursorTicked),
			Caption:        prefix(tc.Caption),
			Confirm:        tc.ConfirmLabel,
			ConfirmActive:  tc.ConfirmLabelHighlight,
		},
		Choice: ChoiceTheme{
			Selected:   prefix(tc.ChoiceSelected),
			Deselected: prefix(tc.ChoiceDeselected),
		},
		Prompt: plain,
		Hint:   plain,
		Error:  plain,
	}
}

// ThemeFromConfig builds a theme from config. Styles are bound to r so the
// color profile matches the terminal the prompts are drawn on; a nil r uses
// lipgloss's default renderer.
func ThemeFromConfig(cfg *config.Config, r *lipgloss.Renderer) Theme {
	if cfg.UI.Plain {
		return plainFromConfig(cfg.Theme)
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	accent := ColorAccent
	if cfg.UI.Accent != "" {
		accent = lipgloss.Color(cfg.UI.Accent)
	}
	pointer := ColorPointer
	if cfg.UI.Pointer != "" {
		pointer = lipgloss.Color(cfg.UI.Pointer)
	}
	danger := ColorDanger
	if cfg.UI.Error != "" {
		danger = lipgloss.Color(cfg.UI.Error)
	}

	bold := r.NewStyle().Bold(true)
	active := r.NewStyle().Bold(true).Foreground(accent)
	tc := cfg.Theme

	styled := func(s lipgloss.Style, marker string) string {
		if marker == "" {
			return ""
		}
		return s.Render(marker) + " "
	}

	return Theme{
		Select: SelectTheme{
			Selected:   styled(active, tc.SelectSelected),
			Deselected: styled(bold, tc.SelectDeselected),
			Caption:    prefix(tc.Caption),
		},
		Multi: MultiTheme{
			Unticked:       styled(bold, tc.MultiUnticked),
			Ticked:         styled(r.NewStyle().Foreground(accent), tc.MultiTicked),
			CursorUnticked: styled(active, tc.MultiCursorUnticked),
			CursorTicked:   styled(active, tc.MultiCursorTicked),
			Caption:        prefix(tc.Caption),
			Confirm:        bold.Render(tc.ConfirmLabel),
			ConfirmActive:  active.Render(tc.ConfirmLabelHighlight),
		},
		Choice: ChoiceTheme{
			Selected:   styled(r.NewStyle().Foreground(pointer), tc.ChoiceSelected),
			Deselected: prefix(tc.ChoiceDeselected),
		},
		Prompt: bold,
		Hint:   r.NewStyle().Foreground(ColorMuted),
		Error:  r.NewStyle().Foreground(danger),
	}
}
