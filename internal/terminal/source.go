package terminal

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
	"golang.org/x/term"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/keys"
)

// ErrInputUnavailable is returned when no interactive terminal can be
// acquired. It is raised before any prompt loop starts.
var ErrInputUnavailable = errors.New("interactive terminal unavailable")

// Options configures Open.
type Options struct {
	// TTY is the device to read keys from and draw on.
	TTY string
	// LockPath guards the terminal across processes. Empty disables it.
	LockPath string
}

// Source is a tty in raw mode.
type Source struct {
	file   *os.File
	out    *os.File
	owned  bool
	state  *term.State
	lock   *flock.Flock
	dec    *keys.Decoder
	closed bool
}

// Open acquires the terminal lock, opens the tty and enters raw mode.
func Open(o Options) (*Source, error) {
	lock, err := lockTerminal(o.LockPath)
	if err != nil {
		return nil, err
	}

	s := &Source{lock: lock}
	if err := s.openTTY(o.TTY); err != nil {
		s.unlock()
		return nil, err
	}

	state, err := term.MakeRaw(int(s.file.Fd()))
	if err != nil {
		s.release()
		return nil, errors.Wrap(ErrInputUnavailable, err.Error())
	}
	s.state = state
	s.dec = keys.NewDecoder(s.file)

	debug.With("raw mode enabled", "tty", s.file.Name(), "locked", lock != nil)
	return s, nil
}

func (s *Source) openTTY(path string) error {
	if path != "" {
		f, err := os.OpenFile(path, os.O_RDWR, 0)
		if err == nil && term.IsTerminal(int(f.Fd())) {
			s.file, s.out, s.owned = f, f, true
			return nil
		}
		if f != nil {
			_ = f.Close()
		}
		debug.Log("cannot use %s: %v", path, err)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		s.file, s.out = os.Stdin, os.Stderr
		return nil
	}
	return errors.WithHint(
		errors.Wrapf(ErrInputUnavailable, "%q is not usable and stdin is not a terminal", path),
		"run promptkit from an interactive shell",
	)
}

// Lock takes the terminal lock for front ends that do not go through Open.
// The returned func releases it.
func Lock(path string) (func(), error) {
	lock, err := lockTerminal(path)
	if err != nil {
		return nil, err
	}
	return func() {
		if lock != nil {
			_ = lock.Unlock()
		}
	}, nil
}

// lockTerminal takes a non-blocking exclusive lock on path. A nil lock
// means locking is disabled.
func lockTerminal(path string) (*flock.Flock, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrapf(err, "create lock directory for %s", path)
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s", path)
	}
	if !ok {
		return nil, errors.WithHint(
			errors.Wrap(ErrInputUnavailable, "terminal is in use by another prompt"),
			"wait for the other promptkit process to finish",
		)
	}
	debug.Log("acquired terminal lock %s", path)
	return lock, nil
}

// ReadKey blocks until one key is available.
func (s *Source) ReadKey() (keys.Key, error) {
	return s.dec.ReadKey()
}

// Output returns the file prompts are drawn on.
func (s *Source) Output() io.Writer {
	return s.out
}

// Width returns the terminal width, or 0 when it cannot be determined.
func (s *Source) Width() int {
	w, _, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// Close restores the terminal mode and releases the lock. It is safe to
// call more than once.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.state != nil {
		err = term.Restore(int(s.file.Fd()), s.state)
		debug.Log("raw mode restored")
	}
	s.release()
	return err
}

func (s *Source) release() {
	if s.owned {
		_ = s.file.Close()
	}
	s.unlock()
}

func (s *Source) unlock() {
	if s.lock != nil {
		_ = s.lock.Unlock()
	}
}
