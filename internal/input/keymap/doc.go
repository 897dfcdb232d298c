// Package keymap dispatches incoming key codes to bound actions.
//
// A Matcher holds a trie of chord sequences. Each call to Handle feeds one
// terminal key code: the code is appended to the pending prefix and the
// trie decides between three outcomes.
//
//   - Exact match: the pending prefix is cleared and the action fires.
//   - Strict prefix: the key is consumed and the matcher waits for more.
//   - No match: the pending prefix is discarded and Handle returns false so
//     the caller can apply its default handling to the key.
//
// An exact match is checked before the prefix test, so binding "C-x" hides
// any longer sequence beginning with "C-x".
package keymap
