package keys

import tea "github.com/charmbracelet/bubbletea"

// FromTea converts a Bubble Tea key message into key events. Pasted or
// batched runes produce one Key per rune.
func FromTea(msg tea.KeyMsg) []Key {
	switch msg.Type {
	case tea.KeyUp:
		return []Key{KeyUp}
	case tea.KeyDown:
		return []Key{KeyDown}
	case tea.KeyLeft:
		return []Key{KeyLeft}
	case tea.KeyRight:
		return []Key{KeyRight}
	case tea.KeyEnter:
		return []Key{KeyEnter}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []Key{KeyBackspace}
	case tea.KeyTab:
		return []Key{KeyTab}
	case tea.KeyEsc:
		return []Key{KeyEscape}
	case tea.KeyCtrlC:
		return []Key{KeyCtrlC}
	case tea.KeyCtrlD:
		return []Key{KeyCtrlD}
	case tea.KeySpace:
		return []Key{KeySpace}
	case tea.KeyRunes:
		if msg.Alt {
			return []Key{{Kind: Other, Name: msg.String()}}
		}
		out := make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, Char(r))
		}
		return out
	}
	return []Key{{Kind: Other, Name: msg.String()}}
}
