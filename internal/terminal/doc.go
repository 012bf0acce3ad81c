// Package terminal is the raw front end: it reads keys from a tty in raw
// mode and redraws a prompt's block in place.
//
// A Source owns the tty, the raw mode state and a cross-process lock file,
// all released by Close. A Renderer only tracks the height of the block it
// last drew. Driver combines the two into a prompt.Driver.
package terminal
