package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"

	"github.com/henri123lemoine/promptkit/internal/config"
	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/prompt"
	"github.com/henri123lemoine/promptkit/internal/terminal"
	"github.com/henri123lemoine/promptkit/internal/tui"
	"github.com/henri123lemoine/promptkit/internal/ui"
)

// session is a front end ready to run prompts.
type session struct {
	env    prompt.Env
	driver prompt.Driver
	close  func() error
}

// openSession builds the configured front end. The caller must call close.
func openSession(c *config.Config) (*session, error) {
	keymap := keys.KeyMapFromConfig(&c.Keys)

	switch c.General.Frontend {
	case config.FrontendBubbleTea:
		return &session{
			env: prompt.Env{
				Theme: ui.ThemeFromConfig(c, lipgloss.NewRenderer(os.Stderr)),
				Keys:  keymap,
			},
			driver: tui.NewDriver(tui.Options{Output: os.Stderr, LockPath: c.LockPath()}),
			close:  func() error { return nil },
		}, nil

	case config.FrontendRaw, "":
		src, err := terminal.Open(terminal.Options{TTY: c.General.TTY, LockPath: c.LockPath()})
		if err != nil {
			return nil, err
		}
		out := src.Output()
		return &session{
			env: prompt.Env{
				Theme: ui.ThemeFromConfig(c, lipgloss.NewRenderer(out)),
				Keys:  keymap,
			},
			driver: terminal.NewDriver(src, terminal.NewRenderer(out, src.Width())),
			close:  src.Close,
		}, nil
	}

	return nil, errors.WithHint(
		errors.Newf("unknown front end %q", c.General.Frontend),
		"use --frontend raw or --frontend bubbletea",
	)
}

// withSession runs fn on a fresh session and always restores the terminal.
func withSession(fn func(s *session) error) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()
	return fn(s)
}

// readOptions returns args, or one option per non-empty stdin line when no
// args are given.
func readOptions(args []string, stdin io.Reader, stdinIsTerminal bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if stdinIsTerminal {
		return nil, errors.WithHint(
			errors.New("no options given"),
			"pass options as arguments or pipe them one per line",
		)
	}

	var options []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		options = append(options, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read options from stdin")
	}
	if len(options) == 0 {
		return nil, errors.New("no options on stdin")
	}
	return options, nil
}

func stdinOptions(args []string) ([]string, error) {
	return readOptions(args, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
}
