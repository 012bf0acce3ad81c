package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/prompt"
	"github.com/henri123lemoine/promptkit/internal/terminal"
)

// Options configures a Driver.
type Options struct {
	// Input is read for key events. Nil opens the controlling terminal.
	Input io.Reader
	// Output receives the rendered prompt.
	Output io.Writer
	// LockPath guards the terminal across processes. Empty disables it.
	LockPath string
}

// Driver runs prompt loops as Bubble Tea programs.
type Driver struct {
	opts Options
}

// NewDriver returns a Bubble Tea driver.
func NewDriver(o Options) *Driver {
	return &Driver{opts: o}
}

// Drive runs a program for l until the loop is done or the program exits.
func (d *Driver) Drive(l prompt.Loop) error {
	unlock, err := terminal.Lock(d.opts.LockPath)
	if err != nil {
		return err
	}
	defer unlock()

	opts := []tea.ProgramOption{tea.WithOutput(d.opts.Output)}
	if d.opts.Input != nil {
		opts = append(opts, tea.WithInput(d.opts.Input))
	} else {
		opts = append(opts, tea.WithInputTTY())
	}

	if _, err := tea.NewProgram(New(l), opts...).Run(); err != nil {
		return errors.Mark(errors.Wrap(err, "run bubbletea program"), terminal.ErrInputUnavailable)
	}
	return nil
}
