package buffer

import "strings"

// LineEnding specifies the line ending style used when the buffer is
// written back out.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// DetectLineEnding returns LineEndingCRLF when most line breaks in text
// are CRLF, otherwise LineEndingLF.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	if crlf > 0 && crlf >= lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithViewportHeight sets the number of visible lines. Values below one
// are raised to one.
func WithViewportHeight(h int) Option {
	return func(b *Buffer) {
		b.setViewportHeight(h)
	}
}

// WithFilename associates the buffer with a file path.
func WithFilename(name string) Option {
	return func(b *Buffer) {
		b.filename = name
	}
}

// WithLineEnding sets the line ending used by Encoded.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}
