package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// ParseSequence parses a space separated key sequence such as "C-x C-s"
// or "ctrl+x ctrl+s". The result is normalized; "M-f" yields two chords.
func ParseSequence(spec string) (Sequence, error) {
	parts := strings.Fields(spec)
	if len(parts) == 0 {
		return nil, ErrEmptySpec
	}

	var seq Sequence
	for _, part := range parts {
		c, err := ParseChord(part)
		if err != nil {
			return nil, err
		}
		seq = append(seq, c)
	}
	return seq.Normalize(), nil
}

// ParseChord parses one chord. The returned chord may still carry ModAlt;
// use Sequence.Normalize before matching against terminal input.
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	if isPlusStyle(spec) {
		return parsePlusStyle(spec)
	}
	return parseEmacsStyle(spec)
}

func isPlusStyle(spec string) bool {
	if len(spec) < 2 || !strings.Contains(spec, "+") {
		return false
	}
	return !hasEmacsPrefix(spec)
}

func hasEmacsPrefix(spec string) bool {
	if len(spec) < 3 || spec[1] != '-' {
		return false
	}
	switch spec[0] {
	case 'c', 'C', 'm', 'M', 's', 'S':
		return true
	}
	return false
}

// parseEmacsStyle parses "C-x", "C-M-f", "M-x", "S-a", "C--".
func parseEmacsStyle(spec string) (Chord, error) {
	var mods Modifier
	rest := spec
	for hasEmacsPrefix(rest) {
		switch rest[0] {
		case 'c', 'C':
			mods = mods.With(ModCtrl)
		case 'm', 'M':
			mods = mods.With(ModAlt)
		case 's', 'S':
			mods = mods.With(ModShift)
		}
		rest = rest[2:]
	}
	return buildChord(spec, rest, mods)
}

// parsePlusStyle parses "ctrl+s", "alt+shift+x", "ctrl++".
func parsePlusStyle(spec string) (Chord, error) {
	var keyPart, modPart string
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		modPart = spec[:len(spec)-2]
	} else {
		i := strings.LastIndex(spec, "+")
		keyPart = spec[i+1:]
		modPart = spec[:i]
	}

	var mods Modifier
	for _, name := range strings.Split(modPart, "+") {
		mod := ModifierFromName(strings.TrimSpace(name))
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, name, spec)
		}
		mods = mods.With(mod)
	}
	return buildChord(spec, keyPart, mods)
}

func buildChord(spec, keyPart string, mods Modifier) (Chord, error) {
	code, ok := CodeFromName(keyPart)
	if !ok {
		r, size := utf8.DecodeRuneInString(keyPart)
		if r == utf8.RuneError || size != len(keyPart) {
			return Chord{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidSpec, keyPart, spec)
		}
		code = int(r)
	}

	if mods.Has(ModShift) {
		if code > unicode.MaxRune || !unicode.IsLetter(rune(code)) {
			return Chord{}, fmt.Errorf("%w: shift needs a letter in %q", ErrInvalidSpec, spec)
		}
		code = int(unicode.ToUpper(rune(code)))
		mods = mods.Without(ModShift)
	}

	c := Chord{Mods: mods.Without(ModCtrl), Code: code}
	if mods.Has(ModCtrl) {
		ctrl := applyCtrl(code)
		c.Code = ctrl.Code
		c.Mods = c.Mods | ctrl.Mods
	} else if c.Code >= 1 && c.Code <= 26 {
		c.Mods = c.Mods.With(ModCtrl)
	}
	return c, nil
}

// MustParseSequence is like ParseSequence but panics on error.
// It is intended for built-in binding tables.
func MustParseSequence(spec string) Sequence {
	seq, err := ParseSequence(spec)
	if err != nil {
		panic(err)
	}
	return seq
}
