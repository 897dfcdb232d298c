package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the Alt (Meta) key.
	ModAlt

	// ModShift indicates the Shift key.
	ModShift
)

// ModNone indicates no modifiers.
const ModNone Modifier = 0

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns the Emacs-style prefix for the set, e.g. "C-M-".
func (m Modifier) String() string {
	var sb strings.Builder
	if m.Has(ModCtrl) {
		sb.WriteString("C-")
	}
	if m.Has(ModAlt) {
		sb.WriteString("M-")
	}
	if m.Has(ModShift) {
		sb.WriteString("S-")
	}
	return sb.String()
}

// ModifierFromName returns the modifier for a name used in plus notation.
// Returns ModNone for unknown names.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "ctrl", "control", "c":
		return ModCtrl
	case "alt", "meta", "option", "opt", "m":
		return ModAlt
	case "shift", "s":
		return ModShift
	default:
		return ModNone
	}
}
