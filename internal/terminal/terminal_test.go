package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"

	"github.com/henri123lemoine/promptkit/internal/keys"
	"github.com/henri123lemoine/promptkit/internal/prompt"
)

func TestRendererFirstDraw(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 0)
	if err := r.Draw([]string{"a", "b"}); err != nil {
		t.Fatal(err)
	}

	want := "\r" + "a" + ansi.EraseLineRight + "\r\n" + "b" + ansi.EraseLineRight
	if buf.String() != want {
		t.Errorf("Draw() wrote %q, want %q", buf.String(), want)
	}
	if r.Height() != 2 {
		t.Errorf("Height() = %d, want 2", r.Height())
	}
}

func TestRendererRedrawPadsShorterBlock(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 0)
	_ = r.Draw([]string{"one", "two", "three"})
	buf.Reset()

	if err := r.Draw([]string{"x"}); err != nil {
		t.Fatal(err)
	}
	want := "\r" + ansi.CursorUp(2) +
		"x" + ansi.EraseLineRight + "\r\n" +
		ansi.EraseLineRight + "\r\n" +
		ansi.EraseLineRight
	if buf.String() != want {
		t.Errorf("Draw() wrote %q, want %q", buf.String(), want)
	}
	if r.Height() != 3 {
		t.Errorf("Height() = %d, want 3", r.Height())
	}
}

func TestRendererTruncates(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 3)
	_ = r.Draw([]string{"abcdef"})
	if strings.Contains(buf.String(), "abcd") || !strings.Contains(buf.String(), "abc") {
		t.Errorf("Draw() wrote %q, want line truncated to 3 cells", buf.String())
	}
}

func TestRendererFinish(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 0)
	if err := r.Finish(); err != nil || buf.Len() != 0 {
		t.Errorf("Finish() before Draw wrote %q, err %v", buf.String(), err)
	}

	_ = r.Draw([]string{"a"})
	buf.Reset()
	_ = r.Finish()
	if buf.String() != "\r\n" {
		t.Errorf("Finish() wrote %q", buf.String())
	}
	if r.Height() != 0 {
		t.Errorf("Height() = %d after Finish, want 0", r.Height())
	}
}

func TestDriverSelect(t *testing.T) {
	var out bytes.Buffer
	in := keys.NewDecoder(strings.NewReader("\x1b[B\x1b[B\x1b[A\r"))
	d := NewDriver(in, NewRenderer(&out, 0))

	got, err := prompt.Select(d, prompt.DefaultEnv(), prompt.SelectOptions{Options: []string{"a", "b", "c"}})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Select() = %d, want 1", got)
	}
	if !strings.Contains(out.String(), "[x] c") {
		t.Errorf("output never showed the cursor on c: %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "\r\n") {
		t.Error("driver should finish the block")
	}
}

func TestDriverInterrupt(t *testing.T) {
	in := keys.NewDecoder(strings.NewReader("\x03"))
	d := NewDriver(in, NewRenderer(&bytes.Buffer{}, 0))

	_, err := prompt.Multi(d, prompt.DefaultEnv(), prompt.MultiOptions{Options: []string{"a"}})
	if !errors.Is(err, prompt.ErrCancelled) {
		t.Errorf("Multi() error = %v, want ErrCancelled", err)
	}
}

func TestDriverInputClosed(t *testing.T) {
	in := keys.NewDecoder(strings.NewReader("\x1b[A"))
	d := NewDriver(in, NewRenderer(&bytes.Buffer{}, 0))

	_, err := prompt.Number(d, prompt.DefaultEnv(), prompt.NumberOptions{Increment: 1, Min: 0, Max: 5})
	if !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("Number() error = %v, want ErrInputUnavailable", err)
	}
}

func TestLockTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "promptkit.lock")

	first, err := lockTerminal(path)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}
	defer first.Unlock()

	if _, err := lockTerminal(path); !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("second lock error = %v, want ErrInputUnavailable", err)
	}

	if err := first.Unlock(); err != nil {
		t.Fatal(err)
	}
	again, err := lockTerminal(path)
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	_ = again.Unlock()
}

func TestLockTerminalDisabled(t *testing.T) {
	lock, err := lockTerminal("")
	if err != nil || lock != nil {
		t.Errorf("lockTerminal(\"\") = %v, %v, want nil, nil", lock, err)
	}
}

func TestReadSecretRequiresTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "secret")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var out bytes.Buffer
	if _, err := ReadSecret(f, &out, "Password: "); !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("ReadSecret() error = %v, want ErrInputUnavailable", err)
	}
	if out.Len() != 0 {
		t.Errorf("prompt should not be printed without a terminal, got %q", out.String())
	}
}
