package prompt

import (
	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/ui"
)

// ErrCancelled is returned when the user interrupts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Status is the lifecycle of an interaction loop.
type Status int

const (
	Pending Status = iota
	Committed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Env carries what every prompt needs besides its own options.
type Env struct {
	Theme ui.Theme
	Keys  keys.KeyMap
}

// DefaultEnv returns the plain theme with default key bindings.
func DefaultEnv() Env {
	return Env{
		Theme: ui.PlainTheme(),
		Keys:  keys.DefaultKeyMap(),
	}
}

// Loop is the mutable view of a prompt a Driver works with.
type Loop interface {
	Feed(k keys.Key)
	Lines() []string
	Done() bool
}

// Driver runs a Loop to completion against some input and output.
type Driver interface {
	Drive(l Loop) error
}

// Machine is implemented by every prompt model: a pure transition function
// plus a pure render function.
type Machine[M any] interface {
	Update(k keys.Key) M
	Lines() []string
	Done() bool
}

// Adapter exposes a Machine as a Loop.
type Adapter[M Machine[M]] struct {
	m M
}

// Adapt wraps m so a Driver can feed it keys.
func Adapt[M Machine[M]](m M) *Adapter[M] {
	return &Adapter[M]{m: m}
}

func (a *Adapter[M]) Feed(k keys.Key) { a.m = a.m.Update(k) }

func (a *Adapter[M]) Lines() []string { return a.m.Lines() }

func (a *Adapter[M]) Done() bool { return a.m.Done() }

// Model returns the current state.
func (a *Adapter[M]) Model() M { return a.m }

// run drives m to completion and returns its final state.
func run[M Machine[M]](d Driver, m M) (M, error) {
	a := Adapt(m)
	if err := d.Drive(a); err != nil {
		return a.m, err
	}
	return a.m, nil
}

// nearest returns the closest index from cursor in direction dir (+1 or
// -1) that is within [0, last] and not a caption. If there is none the
// cursor does not move.
func nearest(cursor, dir, last int, captions map[int]bool) int {
	for i := cursor + dir; i >= 0 && i <= last; i += dir {
		if !captions[i] {
			return i
		}
	}
	return cursor
}

func indexSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}
