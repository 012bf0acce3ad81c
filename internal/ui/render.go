package ui

import (
	"fmt"
	"strconv"
)

// SelectParams contains everything needed to render a single-select list.
type SelectParams struct {
	Options  []string
	Captions map[int]bool
	Cursor   int
	Theme    Theme
}

// RenderSelect renders one line per option.
func RenderSelect(p SelectParams) []string {
	lines := make([]string, len(p.Options))
	for i, option := range p.Options {
		switch {
		case p.Captions[i]:
			lines[i] = p.Theme.Select.Caption + option
		case i == p.Cursor:
			lines[i] = p.Theme.Select.Selected + option
		default:
			lines[i] = p.Theme.Select.Deselected + option
		}
	}
	return lines
}

// MultiParams contains everything needed to render a multi-select list.
type MultiParams struct {
	Options     []string
	Captions    map[int]bool
	Ticked      map[int]bool
	Cursor      int
	ShowConfirm bool
	Error       string
	Theme       Theme
}

// RenderMulti renders one line per option plus, when shown, the confirm
// row carrying the current validation message.
func RenderMulti(p MultiParams) []string {
	t := p.Theme.Multi
	lines := make([]string, 0, len(p.Options)+1)
	for i, option := range p.Options {
		var pre string
		switch {
		case p.Captions[i]:
			pre = t.Caption
		case i == p.Cursor && p.Ticked[i]:
			pre = t.CursorTicked
		case i == p.Cursor:
			pre = t.CursorUnticked
		case p.Ticked[i]:
			pre = t.Ticked
		default:
			pre = t.Unticked
		}
		lines = append(lines, pre+option)
	}

	if p.ShowConfirm {
		label := t.Confirm
		if p.Cursor == len(p.Options) {
			label = t.ConfirmActive
		}
		if p.Error != "" {
			label += " " + p.Theme.Error.Render(p.Error)
		}
		lines = append(lines, label)
	}
	return lines
}

// NumberParams contains everything needed to render an arrow-stepped number.
type NumberParams struct {
	Prompt string
	Min    int
	Max    int
	Value  int
	Theme  Theme
}

// RenderNumber renders the prompt, the exclusive range and the value.
func RenderNumber(p NumberParams) []string {
	bounds := p.Theme.Hint.Render(fmt.Sprintf("(%d,%d)", p.Min, p.Max))
	return []string{
		fmt.Sprintf("%s %s: %d", p.Theme.Prompt.Render(p.Prompt), bounds, p.Value),
	}
}

// ChoiceParams contains everything needed to render a two-option prompt.
type ChoiceParams struct {
	Question    string
	First       string
	Second      string
	Shorthand   bool
	Buffer      string
	FirstActive bool
	Selected    bool
	Theme       Theme
}

// Shorthand returns the " (Y/N) " style suffix built from the first
// character of each label.
func Shorthand(first, second string) string {
	return fmt.Sprintf(" (%s/%s) ", firstChar(first), firstChar(second))
}

func firstChar(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// RenderChoice renders the question line followed by both options.
func RenderChoice(p ChoiceParams) []string {
	suffix := ": "
	if p.Shorthand {
		suffix = Shorthand(p.First, p.Second)
	}

	firstPrefix := p.Theme.Choice.Deselected
	secondPrefix := p.Theme.Choice.Deselected
	if p.Selected && p.FirstActive {
		firstPrefix = p.Theme.Choice.Selected
	}
	if p.Selected && !p.FirstActive {
		secondPrefix = p.Theme.Choice.Selected
	}

	return []string{
		p.Theme.Prompt.Render(p.Question) + suffix + p.Buffer,
		firstPrefix + p.First,
		secondPrefix + p.Second,
	}
}

// InputParams contains everything needed to render a typed number prompt.
type InputParams struct {
	Prompt string
	Buffer string
	Error  string
	Theme  Theme
}

// RenderInput renders the prompt line and the validation line below it.
func RenderInput(p InputParams) []string {
	errLine := ""
	if p.Error != "" {
		errLine = p.Theme.Error.Render(p.Error)
	}
	return []string{
		p.Theme.Prompt.Render(p.Prompt) + " " + p.Buffer,
		errLine,
	}
}

// FormatNumber prints a bound the way it is shown in validation messages.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
