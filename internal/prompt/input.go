package prompt

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/ui"
)

// InputOptions configures a typed number prompt. Bounds are inclusive and
// optional.
type InputOptions struct {
	Prompt     string
	Min        *float64
	Max        *float64
	AllowFloat bool
}

// Validate checks the preconditions NewInput relies on.
func (o InputOptions) Validate() error {
	if o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		return errors.Newf("min %s exceeds max %s", ui.FormatNumber(*o.Min), ui.FormatNumber(*o.Max))
	}
	return nil
}

// InputModel is the state of a typed number prompt.
type InputModel struct {
	opts   InputOptions
	buffer []rune
	errMsg string
	value  float64
	status Status
	env    Env
}

// NewInput creates a typed number model.
func NewInput(o InputOptions, env Env) InputModel {
	return InputModel{opts: o, env: env}
}

// parse validates text and returns the number, or the message to show.
func (m InputModel) parse(text string) (float64, string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, "Not a valid number."
	}
	if !m.opts.AllowFloat && v != math.Trunc(v) {
		return 0, "Has to be an integer."
	}
	if m.opts.Min != nil && v < *m.opts.Min {
		return 0, "Has to be at least " + ui.FormatNumber(*m.opts.Min) + "."
	}
	if m.opts.Max != nil && v > *m.opts.Max {
		return 0, "Has to be at most " + ui.FormatNumber(*m.opts.Max) + "."
	}
	return v, ""
}

// Update applies one key. A rejected ENTER clears the buffer and leaves the
// message up until the next key.
func (m InputModel) Update(k keys.Key) InputModel {
	if m.status != Pending {
		return m
	}
	m.errMsg = ""

	km := m.env.Keys
	switch {
	case keys.Matches(k, km.Interrupt):
		m.status = Cancelled
	case keys.Matches(k, km.Enter):
		v, msg := m.parse(string(m.buffer))
		if msg != "" {
			m.errMsg = msg
			m.buffer = nil
			break
		}
		m.value = v
		m.status = Committed
	case keys.Matches(k, km.Backspace, km.Left):
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	case k.Printable():
		m.buffer = append(m.buffer[:len(m.buffer):len(m.buffer)], k.Rune)
	}
	return m
}

// Lines renders the prompt and the validation line.
func (m InputModel) Lines() []string {
	return ui.RenderInput(ui.InputParams{
		Prompt: m.opts.Prompt,
		Buffer: string(m.buffer),
		Error:  m.errMsg,
		Theme:  m.env.Theme,
	})
}

// Done reports whether the loop has ended.
func (m InputModel) Done() bool { return m.status != Pending }

// Status returns the loop status.
func (m InputModel) Status() Status { return m.status }

// Value returns the committed number.
func (m InputModel) Value() float64 { return m.value }

// Buffer returns the typed text.
func (m InputModel) Buffer() string { return string(m.buffer) }

// Error returns the validation message shown in the current render.
func (m InputModel) Error() string { return m.errMsg }

// Input runs a typed number prompt.
func Input(d Driver, env Env, o InputOptions) (float64, error) {
	defer debug.Timed("input")()

	m, err := run(d, NewInput(o, env))
	if err != nil {
		return 0, err
	}
	debug.With("input finished", "prompt", o.Prompt, "status", m.Status(), "value", m.Value())
	if m.Status() != Committed {
		return 0, ErrCancelled
	}
	return m.Value(), nil
}
