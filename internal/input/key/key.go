package key

import (
	"strings"
	"unicode"
)

// ASCII codes that terminals deliver for common keys.
const (
	CodeNull      = 0
	CodeTab       = 9
	CodeEnter     = 10
	CodeReturn    = 13
	CodeEscape    = 27
	CodeSpace     = 32
	CodeBackspace = 127
)

const specialBase int = unicode.MaxRune + 1

// Codes for keys that have no character representation.
const (
	CodeUp int = specialBase + iota
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeDelete
)

var keyNames = map[string]int{
	"up":        CodeUp,
	"down":      CodeDown,
	"left":      CodeLeft,
	"right":     CodeRight,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pageup":    CodePageUp,
	"pgup":      CodePageUp,
	"prior":     CodePageUp,
	"pagedown":  CodePageDown,
	"pgdn":      CodePageDown,
	"next":      CodePageDown,
	"delete":    CodeDelete,
	"backspace": CodeBackspace,
	"del":       CodeBackspace,
	"bs":        CodeBackspace,
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"ret":       CodeEnter,
	"tab":       CodeTab,
	"escape":    CodeEscape,
	"esc":       CodeEscape,
	"space":     CodeSpace,
	"spc":       CodeSpace,
}

var codeNames = map[int]string{
	CodeUp:        "<up>",
	CodeDown:      "<down>",
	CodeLeft:      "<left>",
	CodeRight:     "<right>",
	CodeHome:      "<home>",
	CodeEnd:       "<end>",
	CodePageUp:    "<pageup>",
	CodePageDown:  "<pagedown>",
	CodeDelete:    "<delete>",
	CodeBackspace: "DEL",
	CodeEscape:    "ESC",
	CodeSpace:     "SPC",
}

// CodeFromName returns the code for a named key such as "pageup" or
// "<esc>". The lookup ignores case.
func CodeFromName(name string) (int, bool) {
	if len(name) > 2 && name[0] == '<' && name[len(name)-1] == '>' {
		name = name[1 : len(name)-1]
	}
	code, ok := keyNames[strings.ToLower(name)]
	return code, ok
}

// IsSpecial reports whether code is one of the non-character key codes.
func IsSpecial(code int) bool {
	return code >= specialBase && code <= CodeDelete
}

// IsPrintable reports whether code is a rune that should be inserted as text.
func IsPrintable(code int) bool {
	if code < CodeSpace || code == CodeBackspace || code > unicode.MaxRune {
		return false
	}
	return unicode.IsPrint(rune(code))
}
