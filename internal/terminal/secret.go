package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// ReadSecret prints prompt to out and reads one line from in without echo.
func ReadSecret(in *os.File, out io.Writer, prompt string) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.Wrapf(ErrInputUnavailable, "%s is not a terminal", in.Name())
	}

	fmt.Fprint(out, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprint(out, "\r\n")
	if err != nil {
		return "", errors.Wrap(err, "read secret")
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
