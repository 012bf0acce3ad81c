// Package keys defines the logical key events consumed by every prompt.
//
// Keys come from two places: a Decoder reading raw terminal bytes, and
// FromTea converting Bubble Tea key messages. Both produce the same Key
// values, and Key.String uses Bubble Tea's key names so a KeyMap built from
// bubbles/key bindings matches either source.
package keys
