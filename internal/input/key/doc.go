// Package key defines the chord and sequence values the editor binds
// commands to, and the parser for the textual notation used in
// configuration files and scripts.
//
// A Chord is one terminal key code plus a modifier set. Terminal input
// arrives as plain integer codes, so chords are kept in a normalized form
// that mirrors what a terminal can actually deliver:
//
//   - Ctrl with a letter is the control code 1..26 ("C-a" is 1).
//   - Ctrl with one of @ [ \ ] ^ _ ? is the raw control code (0, 27..31, 127).
//   - Meta is the Escape prefix, so "M-f" is the two chord sequence "ESC f".
//   - Shift with a letter is the upper-case letter.
//
// Special keys (arrows, Home, End, Page Up, Page Down, Delete) use codes
// above the Unicode range so every rune stays insertable.
//
// # Notation
//
// ParseSequence accepts space separated chords in either notation:
//
//   - Emacs style: "C-x C-s", "C-M-f", "M-x", "S-a", "C-]", "ESC C-k"
//   - Plus style: "ctrl+x ctrl+s", "alt+f", "ctrl+shift+a"
//
// Named keys are matched case-insensitively and may be wrapped in angle
// brackets: up, down, left, right, home, end, pageup, pagedown, delete,
// backspace, enter, return, ret, tab, escape, esc, space, spc, del.
package key
