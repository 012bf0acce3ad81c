package keys

import "fmt"

// Kind identifies a logical key.
type Kind int

const (
	Other Kind = iota
	Up
	Down
	Left
	Right
	Enter
	Backspace
	Tab
	Escape
	Interrupt
	Rune
)

// Key is a single logical key event.
type Key struct {
	Kind Kind
	// Rune is set for Rune keys.
	Rune rune
	// Name is the Bubble Tea style name for Interrupt and Other keys
	// (e.g. "ctrl+c", "f1").
	Name string
}

// Named constructors for the fixed keys.
var (
	KeyUp        = Key{Kind: Up}
	KeyDown      = Key{Kind: Down}
	KeyLeft      = Key{Kind: Left}
	KeyRight     = Key{Kind: Right}
	KeyEnter     = Key{Kind: Enter}
	KeyBackspace = Key{Kind: Backspace}
	KeyTab       = Key{Kind: Tab}
	KeyEscape    = Key{Kind: Escape}
	KeyCtrlC     = Key{Kind: Interrupt, Name: "ctrl+c"}
	KeyCtrlD     = Key{Kind: Interrupt, Name: "ctrl+d"}
	KeySpace     = Key{Kind: Rune, Rune: ' '}
)

// Char returns the key for a printable rune.
func Char(r rune) Key {
	return Key{Kind: Rune, Rune: r}
}

// String returns the key name using the same vocabulary as Bubble Tea, so
// bindings from bubbles/key match raw and Bubble Tea keys alike.
func (k Key) String() string {
	switch k.Kind {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Enter:
		return "enter"
	case Backspace:
		return "backspace"
	case Tab:
		return "tab"
	case Escape:
		return "esc"
	case Rune:
		return string(k.Rune)
	case Interrupt, Other:
		if k.Name != "" {
			return k.Name
		}
	}
	return fmt.Sprintf("unknown(%d)", int(k.Kind))
}

// Printable reports whether the key carries a printable rune.
func (k Key) Printable() bool {
	return k.Kind == Rune
}
