package prompt

import (
	"strings"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/ui"
)

// Answer is the tri-state result of a two-option prompt. Yes stands for the
// first label and No for the second.
type Answer int

const (
	AnswerNone Answer = iota
	AnswerYes
	AnswerNo
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	}
	return "none"
}

// ChoiceOptions configures a two-option prompt.
type ChoiceOptions struct {
	Question string
	// First and Second are the option labels ("Yes"/"No").
	First  string
	Second string
	// CaseSensitive makes type-ahead matching respect case.
	CaseSensitive bool
	// EmptyConfirms lets ENTER accept the default before anything is typed.
	EmptyConfirms bool
	// DefaultFirst makes the first option active initially.
	DefaultFirst bool
	// Abort is returned when the prompt is interrupted.
	Abort Answer
	// Shorthand appends " (Y/N) " to the question instead of ": ".
	Shorthand bool
}

// YesNo returns the options of a plain yes/no question.
func YesNo(question string) ChoiceOptions {
	return ChoiceOptions{
		Question:      question,
		First:         "Yes",
		Second:        "No",
		EmptyConfirms: true,
		DefaultFirst:  false,
		Abort:         AnswerNone,
		Shorthand:     true,
	}
}

// MinuteHour returns the options of a minute/hour unit question. AnswerYes
// means minutes.
func MinuteHour(question string) ChoiceOptions {
	return ChoiceOptions{
		Question:      question,
		First:         "Minute",
		Second:        "Hour",
		EmptyConfirms: true,
		DefaultFirst:  true,
		Abort:         AnswerNone,
		Shorthand:     true,
	}
}

// ChoiceModel is the state of a two-option prompt.
type ChoiceModel struct {
	opts     ChoiceOptions
	first    bool
	selected bool
	buffer   []rune
	status   Status
	env      Env
}

// NewChoice creates a two-option prompt model.
func NewChoice(o ChoiceOptions, env Env) ChoiceModel {
	return ChoiceModel{
		opts:     o,
		first:    o.DefaultFirst,
		selected: o.EmptyConfirms,
		env:      env,
	}
}

func (m ChoiceModel) activeLabel() string {
	if m.first {
		return m.opts.First
	}
	return m.opts.Second
}

func (m ChoiceModel) fold(s string) string {
	if m.opts.CaseSensitive {
		return s
	}
	return strings.ToUpper(s)
}

// match re-evaluates the type-ahead buffer against both labels. The second
// label wins when both match.
func (m ChoiceModel) match() ChoiceModel {
	text := m.fold(string(m.buffer))
	switch {
	case strings.HasPrefix(m.fold(m.opts.Second), text):
		m.first, m.selected = false, true
	case strings.HasPrefix(m.fold(m.opts.First), text):
		m.first, m.selected = true, true
	default:
		m.selected = false
	}
	return m
}

// Update applies one key.
func (m ChoiceModel) Update(k keys.Key) ChoiceModel {
	if m.status != Pending {
		return m
	}

	km := m.env.Keys
	switch {
	case keys.Matches(k, km.Interrupt):
		m.status = Cancelled
	case keys.Matches(k, km.Up, km.Down):
		m.first = !m.first
		m.selected = true
		m.buffer = []rune(m.activeLabel())
	case keys.Matches(k, km.Backspace, km.Left):
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	case keys.Matches(k, km.Enter, km.Right):
		if m.selected {
			m.status = Committed
		}
	case keys.Matches(k, km.Tab):
		if m.selected {
			m.buffer = []rune(m.activeLabel())
		}
	case k.Printable():
		m.buffer = append(m.buffer[:len(m.buffer):len(m.buffer)], k.Rune)
		m = m.match()
	}
	return m
}

// Lines renders the question and both options.
func (m ChoiceModel) Lines() []string {
	return ui.RenderChoice(ui.ChoiceParams{
		Question:    m.opts.Question,
		First:       m.opts.First,
		Second:      m.opts.Second,
		Shorthand:   m.opts.Shorthand,
		Buffer:      string(m.buffer),
		FirstActive: m.first,
		Selected:    m.selected,
		Theme:       m.env.Theme,
	})
}

// Done reports whether the loop has ended.
func (m ChoiceModel) Done() bool { return m.status != Pending }

// Status returns the loop status.
func (m ChoiceModel) Status() Status { return m.status }

// Selected reports whether the active option is currently confirmable.
func (m ChoiceModel) Selected() bool { return m.selected }

// FirstActive reports whether the first option is the active one.
func (m ChoiceModel) FirstActive() bool { return m.first }

// Buffer returns the type-ahead text.
func (m ChoiceModel) Buffer() string { return string(m.buffer) }

// Answer returns the abort value for an interrupted prompt, otherwise the
// active option if it is selected.
func (m ChoiceModel) Answer() Answer {
	if m.status == Cancelled {
		return m.opts.Abort
	}
	if m.selected && m.first {
		return AnswerYes
	}
	return AnswerNo
}

// Choice runs a two-option prompt. Interruption is not an error: the
// configured abort answer is returned instead.
func Choice(d Driver, env Env, o ChoiceOptions) (Answer, error) {
	defer debug.Timed("choice")()

	m, err := run(d, NewChoice(o, env))
	if err != nil {
		return AnswerNone, err
	}
	if m.Status() == Pending {
		return o.Abort, nil
	}
	debug.With("choice finished", "status", m.Status(), "answer", m.Answer())
	return m.Answer(), nil
}
