package buffer

import "strings"

// DefaultViewportHeight is used until the editor reports a screen size.
const DefaultViewportHeight = 24

// Buffer is a mutable multi-line text buffer with one cursor.
type Buffer struct {
	lines      [][]rune
	cursor     Point
	scrollY    int
	viewport   int
	filename   string
	modified   bool
	lineEnding LineEnding
}

// New creates a buffer holding a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:    [][]rune{{}},
		viewport: DefaultViewportHeight,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer with the given content. The cursor starts
// at the beginning and the buffer is unmodified.
func NewFromString(content string, opts ...Option) *Buffer {
	b := New(opts...)
	b.Load(content)
	return b
}

// Load replaces the buffer content, resets the cursor and scroll, and
// clears the modified flag. CRLF line breaks are normalized and
// remembered for Encoded.
func (b *Buffer) Load(content string) {
	b.lineEnding = DetectLineEnding(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	parts := strings.Split(content, "\n")
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}
	b.cursor = Point{}
	b.scrollY = 0
	b.modified = false
}

// Content returns the buffer text with lines joined by "\n".
func (b *Buffer) Content() string {
	return b.join("\n")
}

// Encoded returns the buffer text using the buffer's line ending.
func (b *Buffer) Encoded() string {
	return b.join(b.lineEnding.Sequence())
}

func (b *Buffer) join(sep string) string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// LineCount returns the number of lines. It is always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line n, or "" when n is out of range.
func (b *Buffer) Line(n int) string {
	if n < 0 || n >= len(b.lines) {
		return ""
	}
	return string(b.lines[n])
}

// LineLen returns the rune length of line n, or 0 when out of range.
func (b *Buffer) LineLen(n int) int {
	if n < 0 || n >= len(b.lines) {
		return 0
	}
	return len(b.lines[n])
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// VisibleLines returns the lines inside the viewport.
func (b *Buffer) VisibleLines() []string {
	end := min(b.scrollY+b.viewport, len(b.lines))
	out := make([]string, 0, end-b.scrollY)
	for i := b.scrollY; i < end; i++ {
		out = append(out, string(b.lines[i]))
	}
	return out
}

// RuneAt returns the rune at p. The second result is false when p is at
// or past the end of its line or outside the buffer.
func (b *Buffer) RuneAt(p Point) (rune, bool) {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return 0, false
	}
	line := b.lines[p.Line]
	if p.Column < 0 || p.Column >= len(line) {
		return 0, false
	}
	return line[p.Column], true
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Point {
	return b.cursor
}

// SetCursor moves the cursor to p, clamped to the buffer, and scrolls it
// into view.
func (b *Buffer) SetCursor(p Point) {
	b.cursor = b.Clamp(p)
	b.scrollIfNeeded()
}

// Clamp returns the nearest valid cursor position to p.
func (b *Buffer) Clamp(p Point) Point {
	p.Line = max(0, min(p.Line, len(b.lines)-1))
	p.Column = max(0, min(p.Column, len(b.lines[p.Line])))
	return p
}

// ScrollY returns the first visible line.
func (b *Buffer) ScrollY() int {
	return b.scrollY
}

// ViewportHeight returns the number of visible lines.
func (b *Buffer) ViewportHeight() int {
	return b.viewport
}

// SetViewportHeight changes the number of visible lines and scrolls the
// cursor back into view.
func (b *Buffer) SetViewportHeight(h int) {
	b.setViewportHeight(h)
	b.scrollIfNeeded()
}

func (b *Buffer) setViewportHeight(h int) {
	b.viewport = max(1, h)
}

// scrollIfNeeded scrolls by the minimum amount that keeps the cursor line
// inside the viewport.
func (b *Buffer) scrollIfNeeded() {
	if b.cursor.Line < b.scrollY {
		b.scrollY = b.cursor.Line
	} else if b.cursor.Line >= b.scrollY+b.viewport {
		b.scrollY = b.cursor.Line - b.viewport + 1
	}
}

// Filename returns the associated file path, or "".
func (b *Buffer) Filename() string {
	return b.filename
}

// SetFilename associates the buffer with a file path.
func (b *Buffer) SetFilename(name string) {
	b.filename = name
}

// Modified reports whether the buffer changed since it was loaded or
// last marked clean.
func (b *Buffer) Modified() bool {
	return b.modified
}

// SetModified sets or clears the modified flag.
func (b *Buffer) SetModified(m bool) {
	b.modified = m
}

// Text returns the text between two positions, in either order, with
// line breaks rendered as "\n".
func (b *Buffer) Text(from, to Point) string {
	from, to = b.order(from, to)
	if from.Line == to.Line {
		return string(b.lines[from.Line][from.Column:to.Column])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[from.Line][from.Column:]))
	for i := from.Line + 1; i < to.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[to.Line][:to.Column]))
	return sb.String()
}

// DeleteRange removes the text between two positions, in either order,
// and leaves the cursor at the start of the removed range.
func (b *Buffer) DeleteRange(from, to Point) {
	from, to = b.order(from, to)
	if from == to {
		return
	}

	head := b.lines[from.Line][:from.Column]
	tail := b.lines[to.Line][to.Column:]
	joined := make([]rune, 0, len(head)+len(tail))
	joined = append(joined, head...)
	joined = append(joined, tail...)

	b.lines[from.Line] = joined
	b.lines = append(b.lines[:from.Line+1], b.lines[to.Line+1:]...)
	b.cursor = from
	b.modified = true
	b.scrollIfNeeded()
}

func (b *Buffer) order(from, to Point) (Point, Point) {
	from, to = b.Clamp(from), b.Clamp(to)
	if to.Before(from) {
		return to, from
	}
	return from, to
}
