// Package sexp implements structural navigation over balanced
// delimiters in a buffer.
//
// The delimiter pairs are (), [] and {}. Each pair only balances with its
// own kind, so "(]" never matches. Scans cross line boundaries.
package sexp

import (
	"errors"
	"unicode"

	"github.com/dshills/lispedit/internal/engine/buffer"
)

// Navigation errors. Both leave the buffer unchanged.
var (
	ErrNoMatch = errors.New("no matching delimiter")
	ErrNoSexp  = errors.New("no sexp at point")
)

// Pusher receives killed text.
type Pusher interface {
	Push(text string)
}

var pairs = []struct{ open, close rune }{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
}

// IsOpen reports whether r opens a group.
func IsOpen(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// IsClose reports whether r closes a group.
func IsClose(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// IsDelimiter reports whether r is any group delimiter.
func IsDelimiter(r rune) bool {
	return IsOpen(r) || IsClose(r)
}

// FindMatch returns the position of the delimiter that balances the one
// at p. The second result is false when p is not on a delimiter or the
// group is unterminated.
func FindMatch(b *buffer.Buffer, p buffer.Point) (buffer.Point, bool) {
	r, ok := b.RuneAt(p)
	if !ok {
		return buffer.Point{}, false
	}
	for _, pair := range pairs {
		switch r {
		case pair.open:
			return scanForward(b, p, pair.open, pair.close)
		case pair.close:
			return scanBackward(b, p, pair.open, pair.close)
		}
	}
	return buffer.Point{}, false
}

// FindMatchingDelimiter is FindMatch at the cursor.
func FindMatchingDelimiter(b *buffer.Buffer) (buffer.Point, bool) {
	return FindMatch(b, b.Cursor())
}

// GotoMatchingDelimiter moves the cursor onto the partner of the
// delimiter under it.
func GotoMatchingDelimiter(b *buffer.Buffer) error {
	p, ok := FindMatchingDelimiter(b)
	if !ok {
		return ErrNoMatch
	}
	b.SetCursor(p)
	return nil
}

func scanForward(b *buffer.Buffer, from buffer.Point, open, close rune) (buffer.Point, bool) {
	depth := 1
	x := from.Column + 1
	for y := from.Line; y < b.LineCount(); y++ {
		line := []rune(b.Line(y))
		for ; x < len(line); x++ {
			switch line[x] {
			case open:
				depth++
			case close:
				depth--
			}
			if depth == 0 {
				return buffer.Point{Line: y, Column: x}, true
			}
		}
		x = 0
	}
	return buffer.Point{}, false
}

func scanBackward(b *buffer.Buffer, from buffer.Point, open, close rune) (buffer.Point, bool) {
	depth := 1
	x := from.Column - 1
	for y := from.Line; y >= 0; y-- {
		line := []rune(b.Line(y))
		if y != from.Line {
			x = len(line) - 1
		}
		for ; x >= 0; x-- {
			switch line[x] {
			case close:
				depth++
			case open:
				depth--
			}
			if depth == 0 {
				return buffer.Point{Line: y, Column: x}, true
			}
		}
	}
	return buffer.Point{}, false
}

// ForwardSexp moves the cursor past the next sexp. Leading whitespace,
// including line breaks, is skipped. A group moves the cursor one past
// its closing delimiter; an atom stops before the next whitespace or
// closing delimiter. A closing delimiter ahead stops the cursor on it.
//
// ErrNoSexp is returned when only whitespace remains and ErrNoMatch when
// the next group is unterminated. The cursor does not move on error.
func ForwardSexp(b *buffer.Buffer) error {
	p, ok := skipSpaceForward(b, b.Cursor())
	if !ok {
		return ErrNoSexp
	}

	line := []rune(b.Line(p.Line))
	if IsOpen(line[p.Column]) {
		end, ok := FindMatch(b, p)
		if !ok {
			return ErrNoMatch
		}
		b.SetCursor(buffer.Point{Line: end.Line, Column: end.Column + 1})
		return nil
	}

	x := p.Column
	for x < len(line) && !unicode.IsSpace(line[x]) && !IsClose(line[x]) {
		x++
	}
	b.SetCursor(buffer.Point{Line: p.Line, Column: x})
	return nil
}

// BackwardSexp moves the cursor to the start of the previous sexp. It is
// the mirror of ForwardSexp: a closing delimiter moves to its opening
// partner and an atom moves to its first rune. An opening delimiter
// behind the cursor stops the cursor on it.
func BackwardSexp(b *buffer.Buffer) error {
	p, ok := skipSpaceBackward(b, b.Cursor())
	if !ok {
		return ErrNoSexp
	}

	line := []rune(b.Line(p.Line))
	r := line[p.Column]
	switch {
	case IsClose(r):
		start, ok := FindMatch(b, p)
		if !ok {
			return ErrNoMatch
		}
		b.SetCursor(start)
		return nil
	case IsOpen(r):
		b.SetCursor(p)
		return nil
	}

	x := p.Column
	for x > 0 && !unicode.IsSpace(line[x-1]) && !IsOpen(line[x-1]) {
		x--
	}
	b.SetCursor(buffer.Point{Line: p.Line, Column: x})
	return nil
}

// KillSexp removes the text from the cursor to the end of the next sexp
// and pushes it to ring. The cursor stays where it was. Nothing changes
// when ForwardSexp would not move.
func KillSexp(b *buffer.Buffer, ring Pusher) error {
	start := b.Cursor()
	if err := ForwardSexp(b); err != nil {
		return err
	}
	end := b.Cursor()
	if end == start {
		return ErrNoSexp
	}

	ring.Push(b.Text(start, end))
	b.DeleteRange(start, end)
	b.SetCursor(start)
	return nil
}

// skipSpaceForward returns the first non-space position at or after p.
func skipSpaceForward(b *buffer.Buffer, p buffer.Point) (buffer.Point, bool) {
	x := p.Column
	for y := p.Line; y < b.LineCount(); y++ {
		line := []rune(b.Line(y))
		for ; x < len(line); x++ {
			if !unicode.IsSpace(line[x]) {
				return buffer.Point{Line: y, Column: x}, true
			}
		}
		x = 0
	}
	return buffer.Point{}, false
}

// skipSpaceBackward returns the last non-space position before p.
func skipSpaceBackward(b *buffer.Buffer, p buffer.Point) (buffer.Point, bool) {
	x := p.Column - 1
	for y := p.Line; y >= 0; y-- {
		line := []rune(b.Line(y))
		if y != p.Line {
			x = len(line) - 1
		}
		for ; x >= 0; x-- {
			if !unicode.IsSpace(line[x]) {
				return buffer.Point{Line: y, Column: x}, true
			}
		}
	}
	return buffer.Point{}, false
}
