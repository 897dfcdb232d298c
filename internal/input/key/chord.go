package key

import "strings"

// Chord is a single key code with its modifier set.
//
// Chords produced by FromCode, Ctrl and the parser are normalized: control
// codes 1..26 always carry ModCtrl, and Meta and Shift are folded away.
// Normalized chords are comparable and used directly as map keys.
type Chord struct {
	Mods Modifier
	Code int
}

// FromCode classifies a raw terminal code. Codes 1..26 are control
// chords; everything else is taken literally.
func FromCode(code int) Chord {
	if code >= 1 && code <= 26 {
		return Chord{Mods: ModCtrl, Code: code}
	}
	return Chord{Code: code}
}

// Ctrl returns the control chord for a letter: Ctrl('x') is code 24.
// Non-letters go through the same normalization as "C-" notation.
func Ctrl(r rune) Chord {
	return applyCtrl(int(r))
}

// IsCtrl reports whether the chord is a control chord.
func (c Chord) IsCtrl() bool {
	return c.Mods.Has(ModCtrl)
}

// String returns the Emacs-style description, e.g. "C-x", "ESC", "<up>".
func (c Chord) String() string {
	prefix := c.Mods.Without(ModCtrl).String()

	if c.Mods.Has(ModCtrl) {
		switch {
		case c.Code == CodeTab:
			return prefix + "TAB"
		case c.Code == CodeEnter:
			return prefix + "RET"
		case c.Code >= 1 && c.Code <= 26:
			return prefix + "C-" + string(rune('a'+c.Code-1))
		}
		return prefix + "C-" + codeName(c.Code)
	}

	switch {
	case c.Code == CodeNull:
		return prefix + "C-@"
	case c.Code >= 28 && c.Code <= 31:
		return prefix + "C-" + string(rune(c.Code+64))
	}
	return prefix + codeName(c.Code)
}

func codeName(code int) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	if code < 0 || IsSpecial(code) {
		return "<unknown>"
	}
	return string(rune(code))
}

// applyCtrl maps a code to its control chord the way a terminal does.
func applyCtrl(code int) Chord {
	switch {
	case code >= 'a' && code <= 'z':
		return Chord{Mods: ModCtrl, Code: code - 'a' + 1}
	case code >= 'A' && code <= 'Z':
		return Chord{Mods: ModCtrl, Code: code - 'A' + 1}
	case code == '@' || code == ' ':
		return Chord{Code: CodeNull}
	case code >= '[' && code <= '_':
		return Chord{Code: code - 64}
	case code == '?':
		return Chord{Code: CodeBackspace}
	case code >= 1 && code <= 26:
		return Chord{Mods: ModCtrl, Code: code}
	}
	return Chord{Mods: ModCtrl, Code: code}
}

// Sequence is an ordered list of chords, e.g. "C-x C-s".
type Sequence []Chord

// Seq builds a sequence from chords.
func Seq(chords ...Chord) Sequence {
	return Sequence(chords)
}

// Equal reports whether two sequences contain the same chords.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String returns the space separated chord descriptions.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Normalize folds Meta into an Escape prefix and Shift into upper-case
// letters so that the result only contains chords a terminal can produce.
func (s Sequence) Normalize() Sequence {
	out := make(Sequence, 0, len(s))
	for _, c := range s {
		out = append(out, normalize(c)...)
	}
	return out
}

func normalize(c Chord) []Chord {
	var out []Chord
	if c.Mods.Has(ModAlt) {
		out = append(out, Chord{Code: CodeEscape})
	}
	code := c.Code
	if c.Mods.Has(ModShift) && code >= 'a' && code <= 'z' {
		code -= 'a' - 'A'
	}
	if c.Mods.Has(ModCtrl) {
		return append(out, applyCtrl(code))
	}
	return append(out, FromCode(code))
}
