package prompt

import (
	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/ui"
)

// SelectOptions configures a single-select list.
type SelectOptions struct {
	Options  []string
	Captions []int
	Start    int
}

// Validate checks the preconditions NewSelect relies on.
func (o SelectOptions) Validate() error {
	if len(o.Options) == 0 {
		return errors.New("no options to select from")
	}
	captions := indexSet(o.Captions)
	for i := range captions {
		if i < 0 || i >= len(o.Options) {
			return errors.Newf("caption index %d out of range", i)
		}
	}
	if len(captions) == len(o.Options) {
		return errors.New("every option is a caption")
	}
	if o.Start < 0 || o.Start >= len(o.Options) {
		return errors.Newf("start index %d out of range", o.Start)
	}
	if captions[o.Start] {
		return errors.Newf("start index %d is a caption", o.Start)
	}
	return nil
}

// SelectModel is the state of a single-select list.
type SelectModel struct {
	options  []string
	captions map[int]bool
	cursor   int
	status   Status
	env      Env
}

// NewSelect creates a single-select model. Options are assumed valid.
func NewSelect(o SelectOptions, env Env) SelectModel {
	return SelectModel{
		options:  o.Options,
		captions: indexSet(o.Captions),
		cursor:   o.Start,
		env:      env,
	}
}

// Update applies one key. UP/DOWN move to the nearest non-caption option,
// interrupt cancels, and any other key commits the current option.
func (m SelectModel) Update(k keys.Key) SelectModel {
	if m.status != Pending {
		return m
	}

	km := m.env.Keys
	switch {
	case keys.Matches(k, km.Interrupt):
		m.status = Cancelled
	case keys.Matches(k, km.Up):
		m.cursor = nearest(m.cursor, -1, len(m.options)-1, m.captions)
	case keys.Matches(k, km.Down):
		m.cursor = nearest(m.cursor, 1, len(m.options)-1, m.captions)
	default:
		m.status = Committed
	}
	return m
}

// Lines renders the list.
func (m SelectModel) Lines() []string {
	return ui.RenderSelect(ui.SelectParams{
		Options:  m.options,
		Captions: m.captions,
		Cursor:   m.cursor,
		Theme:    m.env.Theme,
	})
}

// Done reports whether the loop has ended.
func (m SelectModel) Done() bool { return m.status != Pending }

// Status returns the loop status.
func (m SelectModel) Status() Status { return m.status }

// Cursor returns the currently selected index.
func (m SelectModel) Cursor() int { return m.cursor }

// Select runs a single-select list and returns the chosen index.
func Select(d Driver, env Env, o SelectOptions) (int, error) {
	defer debug.Timed("select")()

	m, err := run(d, NewSelect(o, env))
	if err != nil {
		return 0, err
	}
	debug.With("select finished", "status", m.Status(), "index", m.Cursor())
	if m.Status() != Committed {
		return 0, ErrCancelled
	}
	return m.Cursor(), nil
}
