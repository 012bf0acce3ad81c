package terminal

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Renderer redraws a block of lines in place.
type Renderer struct {
	w      io.Writer
	width  int
	height int
}

// NewRenderer returns a Renderer writing to w. Lines wider than width are
// truncated; width 0 disables truncation.
func NewRenderer(w io.Writer, width int) *Renderer {
	return &Renderer{w: w, width: width}
}

// Draw replaces the previously drawn block with lines. A shorter block is
// padded with empty lines so no stale rows remain.
func (r *Renderer) Draw(lines []string) error {
	var b strings.Builder
	b.WriteByte('\r')
	if r.height > 1 {
		b.WriteString(ansi.CursorUp(r.height - 1))
	}

	n := max(len(lines), r.height)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString("\r\n")
		}
		if i < len(lines) {
			b.WriteString(r.fit(lines[i]))
		}
		b.WriteString(ansi.EraseLineRight)
	}
	r.height = n

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) fit(line string) string {
	if r.width <= 0 || ansi.StringWidth(line) <= r.width {
		return line
	}
	return ansi.Truncate(line, r.width, "")
}

// Finish moves the cursor below the block so later output starts on a
// fresh line.
func (r *Renderer) Finish() error {
	if r.height == 0 {
		return nil
	}
	r.height = 0
	_, err := io.WriteString(r.w, "\r\n")
	return err
}

// Height returns the number of rows in the last drawn block.
func (r *Renderer) Height() int { return r.height }
