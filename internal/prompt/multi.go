package prompt

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/ui"
)

// MultiOptions configures a multi-select list.
type MultiOptions struct {
	Options  []string
	Captions []int
	// Ticked are the initially ticked indices, in tick order.
	Ticked []int
	Cursor int
	// Min and Max bound the number of ticks. Max 0 means no upper bound.
	Min int
	Max int
	// HideConfirm drops the confirm row; ENTER then confirms instead of
	// ticking.
	HideConfirm bool
}

// Validate checks the preconditions NewMulti relies on.
func (o MultiOptions) Validate() error {
	if len(o.Options) == 0 {
		return errors.New("no options to select from")
	}
	captions := indexSet(o.Captions)
	for i := range captions {
		if i < 0 || i >= len(o.Options) {
			return errors.Newf("caption index %d out of range", i)
		}
	}
	seen := make(map[int]bool, len(o.Ticked))
	for _, i := range o.Ticked {
		if i < 0 || i >= len(o.Options) {
			return errors.Newf("ticked index %d out of range", i)
		}
		if captions[i] {
			return errors.Newf("ticked index %d is a caption", i)
		}
		if seen[i] {
			return errors.Newf("ticked index %d listed twice", i)
		}
		seen[i] = true
	}
	last := len(o.Options) - 1
	if !o.HideConfirm {
		last = len(o.Options)
	}
	if o.Cursor < 0 || o.Cursor > last {
		return errors.Newf("cursor index %d out of range", o.Cursor)
	}
	if captions[o.Cursor] {
		return errors.Newf("cursor index %d is a caption", o.Cursor)
	}
	if o.Min < 0 {
		return errors.Newf("minimal count %d is negative", o.Min)
	}
	if o.Max < 0 {
		return errors.Newf("maximal count %d is negative", o.Max)
	}
	if o.Max > 0 && o.Min > o.Max {
		return errors.Newf("minimal count %d exceeds maximal count %d", o.Min, o.Max)
	}
	if selectable := len(o.Options) - len(captions); o.Min > selectable {
		return errors.WithHint(
			errors.Newf("minimal count %d exceeds the %d selectable options", o.Min, selectable),
			"lower --min or remove captions",
		)
	}
	return nil
}

// MultiModel is the state of a multi-select list.
type MultiModel struct {
	options     []string
	captions    map[int]bool
	ticked      []int
	cursor      int
	min         int
	max         int
	hideConfirm bool
	errMsg      string
	status      Status
	env         Env
}

// NewMulti creates a multi-select model. Options are assumed valid.
func NewMulti(o MultiOptions, env Env) MultiModel {
	return MultiModel{
		options:     o.Options,
		captions:    indexSet(o.Captions),
		ticked:      slices.Clone(o.Ticked),
		cursor:      o.Cursor,
		min:         o.Min,
		max:         o.Max,
		hideConfirm: o.HideConfirm,
		env:         env,
	}
}

// confirmIndex is the synthetic position of the confirm row.
func (m MultiModel) confirmIndex() int {
	return len(m.options)
}

func (m MultiModel) lastIndex() int {
	if m.hideConfirm {
		return len(m.options) - 1
	}
	return m.confirmIndex()
}

func (m MultiModel) isTickKey(k keys.Key) bool {
	if keys.Matches(k, m.env.Keys.Tick) {
		return true
	}
	return !m.hideConfirm && keys.Matches(k, m.env.Keys.Enter)
}

// boundsError returns the message for a tick count outside [min, max], or
// "" when the count is acceptable.
func (m MultiModel) boundsError() string {
	if m.min > len(m.ticked) {
		return fmt.Sprintf("Must select at least %d options", m.min)
	}
	if m.max > 0 && m.max < len(m.ticked) {
		return fmt.Sprintf("Must select at most %d options", m.max)
	}
	return ""
}

// Update applies one key. The validation message only lives for the render
// that follows the key which produced it.
func (m MultiModel) Update(k keys.Key) MultiModel {
	if m.status != Pending {
		return m
	}
	m.errMsg = ""

	km := m.env.Keys
	switch {
	case keys.Matches(k, km.Interrupt):
		m.status = Cancelled
	case keys.Matches(k, km.Up):
		m.cursor = nearest(m.cursor, -1, m.lastIndex(), m.captions)
	case keys.Matches(k, km.Down):
		m.cursor = nearest(m.cursor, 1, m.lastIndex(), m.captions)
	case m.isTickKey(k):
		if !m.hideConfirm && m.cursor == m.confirmIndex() {
			m = m.confirm()
			break
		}
		m.ticked = m.toggle(m.cursor)
	default:
		m = m.confirm()
	}
	return m
}

func (m MultiModel) confirm() MultiModel {
	if msg := m.boundsError(); msg != "" {
		m.errMsg = msg
		return m
	}
	m.status = Committed
	return m
}

// toggle returns the tick list after pressing a tick key on index i. A
// change that would leave the count outside its bounds is dropped.
func (m MultiModel) toggle(i int) []int {
	if pos := slices.Index(m.ticked, i); pos >= 0 {
		if len(m.ticked)-1 < m.min {
			return m.ticked
		}
		return slices.Delete(slices.Clone(m.ticked), pos, pos+1)
	}
	if m.max > 0 && len(m.ticked)+1 > m.max {
		return m.ticked
	}
	return append(slices.Clone(m.ticked), i)
}

// Lines renders the list and the confirm row.
func (m MultiModel) Lines() []string {
	return ui.RenderMulti(ui.MultiParams{
		Options:     m.options,
		Captions:    m.captions,
		Ticked:      indexSet(m.ticked),
		Cursor:      m.cursor,
		ShowConfirm: !m.hideConfirm,
		Error:       m.errMsg,
		Theme:       m.env.Theme,
	})
}

// Done reports whether the loop has ended.
func (m MultiModel) Done() bool { return m.status != Pending }

// Status returns the loop status.
func (m MultiModel) Status() Status { return m.status }

// Cursor returns the cursor position; len(options) is the confirm row.
func (m MultiModel) Cursor() int { return m.cursor }

// Ticked returns the ticked indices in the order they were ticked.
func (m MultiModel) Ticked() []int { return slices.Clone(m.ticked) }

// Error returns the validation message shown in the current render.
func (m MultiModel) Error() string { return m.errMsg }

// Multi runs a multi-select list and returns the ticked indices in tick
// order.
func Multi(d Driver, env Env, o MultiOptions) ([]int, error) {
	defer debug.Timed("multi")()

	m, err := run(d, NewMulti(o, env))
	if err != nil {
		return nil, err
	}
	debug.With("multi finished", "status", m.Status(), "ticked", m.Ticked())
	if m.Status() != Committed {
		return nil, ErrCancelled
	}
	return m.Ticked(), nil
}
