package prompt

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/keys"
)

// scriptDriver feeds a fixed key sequence and stops when the loop is done
// or the script runs out.
type scriptDriver struct {
	keys   []keys.Key
	frames [][]string
	err    error
}

func (d *scriptDriver) Drive(l Loop) error {
	if d.err != nil {
		return d.err
	}
	d.frames = append(d.frames, l.Lines())
	for _, k := range d.keys {
		if l.Done() {
			break
		}
		l.Feed(k)
		d.frames = append(d.frames, l.Lines())
	}
	return nil
}

func script(ks ...keys.Key) *scriptDriver {
	return &scriptDriver{keys: ks}
}

func repeat(k keys.Key, n int) []keys.Key {
	out := make([]keys.Key, n)
	for i := range out {
		out[i] = k
	}
	return out
}

func feed[M Machine[M]](m M, ks ...keys.Key) M {
	for _, k := range ks {
		m = m.Update(k)
	}
	return m
}

func TestNearest(t *testing.T) {
	captions := map[int]bool{0: true, 2: true}
	tests := []struct {
		name   string
		cursor int
		dir    int
		last   int
		want   int
	}{
		{"down skips caption", 1, 1, 4, 3},
		{"up stops before leading caption", 1, -1, 4, 1},
		{"down at end stays", 4, 1, 4, 4},
		{"up skips caption", 3, -1, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearest(tt.cursor, tt.dir, tt.last, captions); got != tt.want {
				t.Errorf("nearest(%d, %d) = %d, want %d", tt.cursor, tt.dir, got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if Committed.String() != "committed" || Cancelled.String() != "cancelled" || Pending.String() != "pending" {
		t.Error("unexpected status names")
	}
	if Status(42).String() != "unknown" {
		t.Error("out of range status should be unknown")
	}
}

func TestRunPropagatesDriverError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Select(&scriptDriver{err: boom}, DefaultEnv(), SelectOptions{Options: []string{"a"}})
	if !errors.Is(err, boom) {
		t.Errorf("Select() error = %v, want %v", err, boom)
	}
}

func TestUnfinishedLoopIsCancelled(t *testing.T) {
	_, err := Number(script(keys.KeyUp), DefaultEnv(), NumberOptions{Increment: 1, Min: 0, Max: 10})
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("Number() error = %v, want ErrCancelled", err)
	}
}

func TestAdapterTracksModel(t *testing.T) {
	a := Adapt(NewNumber(NumberOptions{Increment: 2, Min: 0, Max: 10}, DefaultEnv()))
	a.Feed(keys.KeyUp)
	a.Feed(keys.KeyUp)
	if got := a.Model().Value(); got != 4 {
		t.Errorf("Value() = %d, want 4", got)
	}
	if a.Done() {
		t.Error("adapter should not be done before ENTER")
	}
	if !slices.Equal(a.Lines(), []string{" (0,10): 4"}) {
		t.Errorf("Lines() = %q", a.Lines())
	}
}
