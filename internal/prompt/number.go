package prompt

import (
	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/ui"
)

// NumberOptions configures an arrow-stepped number. Both bounds are
// exclusive and the value starts at Min.
type NumberOptions struct {
	Prompt    string
	Increment int
	Min       int
	Max       int
}

// Validate checks the preconditions NewNumber relies on.
func (o NumberOptions) Validate() error {
	if o.Increment <= 0 {
		return errors.Newf("increment must be positive, got %d", o.Increment)
	}
	if o.Max-o.Min < 2 {
		return errors.WithHint(
			errors.Newf("no value lies strictly between %d and %d", o.Min, o.Max),
			"bounds are exclusive; widen --min/--max",
		)
	}
	return nil
}

// NumberModel is the state of an arrow-stepped number.
type NumberModel struct {
	opts   NumberOptions
	value  int
	status Status
	env    Env
}

// NewNumber creates an arrow-stepped number model.
func NewNumber(o NumberOptions, env Env) NumberModel {
	return NumberModel{opts: o, value: o.Min, env: env}
}

func (m NumberModel) inRange(v int) bool {
	return v > m.opts.Min && v < m.opts.Max
}

// Update applies one key. Steps that would reach or cross a bound are
// ignored, and ENTER only commits a value strictly inside the bounds.
func (m NumberModel) Update(k keys.Key) NumberModel {
	if m.status != Pending {
		return m
	}

	km := m.env.Keys
	switch {
	case keys.Matches(k, km.Interrupt):
		m.status = Cancelled
	case keys.Matches(k, km.Down):
		if m.value-m.opts.Increment > m.opts.Min {
			m.value -= m.opts.Increment
		}
	case keys.Matches(k, km.Up):
		if m.value+m.opts.Increment < m.opts.Max {
			m.value += m.opts.Increment
		}
	case keys.Matches(k, km.Enter):
		if m.inRange(m.value) {
			m.status = Committed
		}
	}
	return m
}

// Lines renders the prompt line.
func (m NumberModel) Lines() []string {
	return ui.RenderNumber(ui.NumberParams{
		Prompt: m.opts.Prompt,
		Min:    m.opts.Min,
		Max:    m.opts.Max,
		Value:  m.value,
		Theme:  m.env.Theme,
	})
}

// Done reports whether the loop has ended.
func (m NumberModel) Done() bool { return m.status != Pending }

// Status returns the loop status.
func (m NumberModel) Status() Status { return m.status }

// Value returns the current value.
func (m NumberModel) Value() int { return m.value }

// Number runs an arrow-stepped number prompt and returns the committed
// value.
func Number(d Driver, env Env, o NumberOptions) (int, error) {
	defer debug.Timed("number")()

	m, err := run(d, NewNumber(o, env))
	if err != nil {
		return 0, err
	}
	debug.With("number finished", "prompt", o.Prompt, "status", m.Status(), "value", m.Value())
	if m.Status() != Committed {
		return 0, ErrCancelled
	}
	return m.Value(), nil
}
