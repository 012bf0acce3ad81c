package keys

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

const esc = 0x1b

// Decoder turns a raw terminal byte stream into key events.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// ReadKey blocks until one complete key is available.
func (d *Decoder) ReadKey() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch {
	case b == esc:
		return d.readEscape()
	case b == '\r' || b == '\n':
		return KeyEnter, nil
	case b == 0x7f || b == 0x08:
		return KeyBackspace, nil
	case b == '\t':
		return KeyTab, nil
	case b == 0x03:
		return KeyCtrlC, nil
	case b == 0x04:
		return KeyCtrlD, nil
	case b < 0x20:
		return Key{Kind: Other, Name: fmt.Sprintf("ctrl+%c", b+'a'-1)}, nil
	case b < utf8.RuneSelf:
		return Char(rune(b)), nil
	}

	if err := d.r.UnreadByte(); err != nil {
		return Key{}, err
	}
	r, _, err := d.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	return Char(r), nil
}

// readEscape handles ESC. A lone ESC (nothing else buffered) is the escape
// key; ESC [ and ESC O introduce cursor sequences.
func (d *Decoder) readEscape() (Key, error) {
	if d.r.Buffered() == 0 {
		return KeyEscape, nil
	}
	intro, err := d.r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if intro != '[' && intro != 'O' {
		// Alt+key: report the key itself as Other.
		return Key{Kind: Other, Name: "alt+" + string(rune(intro))}, nil
	}

	seq := []byte{esc, intro}
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		seq = append(seq, c)
		// Final byte of a CSI/SS3 sequence.
		if c >= 0x40 && c <= 0x7e {
			break
		}
		if len(seq) > 16 {
			break
		}
	}

	if len(seq) == 3 {
		switch seq[2] {
		case 'A':
			return KeyUp, nil
		case 'B':
			return KeyDown, nil
		case 'C':
			return KeyRight, nil
		case 'D':
			return KeyLeft, nil
		}
	}
	return Key{Kind: Other, Name: fmt.Sprintf("%q", seq)}, nil
}
