package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/prompt"
)

// Model is the Bubble Tea model driving one prompt loop.
type Model struct {
	loop  prompt.Loop
	width int
}

// New creates a Model for l.
func New(l prompt.Loop) Model {
	return Model{loop: l}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.loop.Done() {
		return tea.Quit
	}
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		for _, k := range keys.FromTea(msg) {
			debug.With("key", "key", k.String())
			m.loop.Feed(k)
			if m.loop.Done() {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// View renders the loop's current block.
func (m Model) View() string {
	lines := m.loop.Lines()
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "")
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// Done reports whether the wrapped loop has ended.
func (m Model) Done() bool {
	return m.loop.Done()
}
