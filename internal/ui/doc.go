// Package ui provides rendering functions for the promptkit prompts.
//
// Each prompt has a Render function taking a params struct and returning
// the lines of its block. Rendering is pure (no side effects) and separated
// from state management; all styling comes from an injected Theme, so a
// plain theme yields deterministic text for tests and non-color output.
package ui
