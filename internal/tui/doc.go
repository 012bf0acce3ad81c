// Package tui provides the Bubble Tea front end for the prompts.
//
// Model wraps a prompt.Loop in the Bubble Tea interface (Init, Update,
// View): key messages are converted with keys.FromTea and fed to the loop,
// and the program quits as soon as the loop reports done. The program runs
// inline, without the alternate screen, so the final frame stays on the
// terminal like the raw front end's does.
package tui
