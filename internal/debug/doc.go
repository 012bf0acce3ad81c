// Package debug provides debug logging functionality for promptkit.
//
// When enabled via the --debug flag, it logs key events, terminal mode
// changes and prompt outcomes to a file, never to the terminal the prompts
// are drawn on.
package debug
