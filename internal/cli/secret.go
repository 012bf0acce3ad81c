package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/terminal"
)

var secretCmd = &cobra.Command{
	Use:   "secret <prompt>",
	Short: "Read a line without echoing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unlock, err := terminal.Lock(cfg.LockPath())
		if err != nil {
			return err
		}
		defer unlock()

		in := os.Stdin
		if tty, err := os.OpenFile(cfg.General.TTY, os.O_RDWR, 0); err == nil {
			defer tty.Close()
			in = tty
		} else {
			debug.Log("cannot open %s, reading stdin: %v", cfg.General.TTY, err)
		}

		secret, err := terminal.ReadSecret(in, promptOutput(in), args[0]+" ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), secret)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(secretCmd)
}

// promptOutput draws on the tty when one was opened, else on stderr.
func promptOutput(in *os.File) *os.File {
	if in == os.Stdin {
		return os.Stderr
	}
	return in
}
