package buffer

// InsertChar inserts r at the cursor and advances the cursor by one.
func (b *Buffer) InsertChar(r rune) {
	if r == '\n' {
		b.InsertNewline()
		return
	}
	line := b.lines[b.cursor.Line]
	line = append(line, 0)
	copy(line[b.cursor.Column+1:], line[b.cursor.Column:])
	line[b.cursor.Column] = r
	b.lines[b.cursor.Line] = line
	b.cursor.Column++
	b.modified = true
}

// InsertText inserts s at the cursor. Line breaks in s split the line as
// InsertNewline does, so killed multi-line text can be yanked back.
func (b *Buffer) InsertText(s string) {
	for _, r := range s {
		if r == '\r' {
			continue
		}
		b.InsertChar(r)
	}
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	y, x := b.cursor.Line, b.cursor.Column
	line := b.lines[y]

	head := make([]rune, x)
	copy(head, line[:x])
	tail := make([]rune, len(line)-x)
	copy(tail, line[x:])

	b.lines[y] = head
	b.lines = append(b.lines, nil)
	copy(b.lines[y+2:], b.lines[y+1:])
	b.lines[y+1] = tail

	b.cursor = Point{Line: y + 1}
	b.modified = true
	b.scrollIfNeeded()
}

// Backspace deletes the rune before the cursor, joining with the previous
// line at column zero. It does nothing at the start of the buffer.
func (b *Buffer) Backspace() {
	y, x := b.cursor.Line, b.cursor.Column
	switch {
	case x > 0:
		line := b.lines[y]
		b.lines[y] = append(line[:x-1], line[x:]...)
		b.cursor.Column--
	case y > 0:
		prevLen := len(b.lines[y-1])
		b.joinLines(y - 1)
		b.cursor = Point{Line: y - 1, Column: prevLen}
		b.scrollIfNeeded()
	default:
		return
	}
	b.modified = true
}

// DeleteChar deletes the rune under the cursor, joining the next line at
// end of line. It does nothing at the end of the buffer.
func (b *Buffer) DeleteChar() {
	y, x := b.cursor.Line, b.cursor.Column
	switch {
	case x < len(b.lines[y]):
		line := b.lines[y]
		b.lines[y] = append(line[:x], line[x+1:]...)
	case y < len(b.lines)-1:
		b.joinLines(y)
	default:
		return
	}
	b.modified = true
}

// KillToEndOfLine removes the text from the cursor to the end of the
// line and returns it. At end of line it removes the line break instead
// and returns "\n". At the end of the buffer it returns "" and false.
func (b *Buffer) KillToEndOfLine() (string, bool) {
	y, x := b.cursor.Line, b.cursor.Column
	line := b.lines[y]
	switch {
	case x < len(line):
		killed := string(line[x:])
		b.lines[y] = line[:x]
		b.modified = true
		return killed, true
	case y < len(b.lines)-1:
		b.joinLines(y)
		b.modified = true
		return "\n", true
	}
	return "", false
}

// joinLines appends line y+1 to line y and removes it.
func (b *Buffer) joinLines(y int) {
	joined := make([]rune, 0, len(b.lines[y])+len(b.lines[y+1]))
	joined = append(joined, b.lines[y]...)
	joined = append(joined, b.lines[y+1]...)
	b.lines[y] = joined
	b.lines = append(b.lines[:y+1], b.lines[y+2:]...)
}
