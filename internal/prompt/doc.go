// Package prompt implements the interactive prompts as pure state machines.
//
// Every model has a value-receiver Update(keys.Key) returning the next
// state and a Lines method rendering it through package ui. Models never
// touch the terminal: a Driver feeds them keys until they report Done, so
// the same model runs under the raw terminal driver, the Bubble Tea driver,
// or a scripted driver in tests.
//
// The top-level functions (Select, Multi, Number, Input, Choice) run a
// model on a Driver and return its typed result. An interrupted prompt
// returns ErrCancelled, except Choice, which returns its abort Answer.
package prompt
