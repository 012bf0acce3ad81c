package terminal

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/prompt"
)

// KeyReader yields one key per call. Source and keys.Decoder implement it.
type KeyReader interface {
	ReadKey() (keys.Key, error)
}

// Driver runs prompt loops on a raw terminal.
type Driver struct {
	in KeyReader
	r  *Renderer
}

// NewDriver returns a Driver reading keys from in and drawing with r.
func NewDriver(in KeyReader, r *Renderer) *Driver {
	return &Driver{in: in, r: r}
}

// Drive renders the loop, feeds it one key at a time and finishes the
// block once the loop is done.
func (d *Driver) Drive(l prompt.Loop) error {
	for {
		if err := d.r.Draw(l.Lines()); err != nil {
			return errors.Wrap(err, "draw prompt")
		}
		if l.Done() {
			return d.r.Finish()
		}

		k, err := d.in.ReadKey()
		if err != nil {
			_ = d.r.Finish()
			if errors.Is(err, io.EOF) {
				return errors.Wrap(ErrInputUnavailable, "input closed")
			}
			return errors.Wrap(err, "read key")
		}
		debug.With("key", "key", k.String())
		l.Feed(k)
	}
}
