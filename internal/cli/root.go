// Package cli wires the prompts to cobra commands.
//
// Every command prints its answer on stdout and draws on the terminal, so
// promptkit can be used in shell pipelines and command substitutions.
package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/promptkit/internal/config"
	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/prompt"
)

var (
	configPath string
	debugPath  string
	frontend   string
	plain      bool

	cfg *config.Config
)

// Answers that are not failures but still map to a non-zero exit status.
var (
	errAnsweredNo = errors.New("answered no")
	errNoAnswer   = errors.New("no answer")
)

var rootCmd = &cobra.Command{
	Use:   "promptkit",
	Short: "Interactive terminal prompts for shell scripts",
	Long: `promptkit - interactive terminal prompts for shell scripts.

Each command draws a prompt on the terminal and prints the answer on stdout.
Cancelling with ctrl+c exits with status 130.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/promptkit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&debugPath, "debug", "", "write a debug log to this file")
	rootCmd.PersistentFlags().StringVar(&frontend, "frontend", "", "prompt front end: raw or bubbletea")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colors")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	if debugPath != "" {
		if err := debug.Enable(debugPath); err != nil {
			return errors.Wrapf(err, "enable debug log %s", debugPath)
		}
	}

	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	loaded, err := config.LoadFromPath(path)
	if err != nil {
		return errors.WithHint(err, "run `promptkit config validate` or fix the file by hand")
	}
	if frontend != "" {
		loaded.General.Frontend = frontend
	}
	if plain {
		loaded.UI.Plain = true
	}
	for _, w := range loaded.Validate() {
		debug.Log("config warning: %s", w)
	}
	cfg = loaded

	debug.With("command started", "cmd", cmd.Name(), "config", path, "frontend", cfg.General.Frontend)
	return nil
}

// ExitCode maps the result of Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrCancelled), errors.Is(err, errNoAnswer):
		return 130
	default:
		return 1
	}
}

// Report prints err on stderr unless it only carries an answer.
func Report(err error) {
	if err == nil || errors.Is(err, errAnsweredNo) || errors.Is(err, errNoAnswer) {
		return
	}
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(os.Stderr, "Cancelled.")
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}
}
