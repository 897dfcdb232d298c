package buffer

// MoveUp moves to the previous line, clamping the column.
func (b *Buffer) MoveUp() {
	if b.cursor.Line > 0 {
		b.cursor.Line--
		b.clampColumn()
		b.scrollIfNeeded()
	}
}

// MoveDown moves to the next line, clamping the column.
func (b *Buffer) MoveDown() {
	if b.cursor.Line < len(b.lines)-1 {
		b.cursor.Line++
		b.clampColumn()
		b.scrollIfNeeded()
	}
}

// MoveLeft moves back one rune, wrapping to the end of the previous line.
func (b *Buffer) MoveLeft() {
	if b.cursor.Column > 0 {
		b.cursor.Column--
	} else if b.cursor.Line > 0 {
		b.cursor.Line--
		b.cursor.Column = len(b.lines[b.cursor.Line])
		b.scrollIfNeeded()
	}
}

// MoveRight moves forward one rune, wrapping to the start of the next line.
func (b *Buffer) MoveRight() {
	if b.cursor.Column < len(b.lines[b.cursor.Line]) {
		b.cursor.Column++
	} else if b.cursor.Line < len(b.lines)-1 {
		b.cursor.Line++
		b.cursor.Column = 0
		b.scrollIfNeeded()
	}
}

// MoveHome moves to the start of the line.
func (b *Buffer) MoveHome() {
	b.cursor.Column = 0
}

// MoveEnd moves to the end of the line.
func (b *Buffer) MoveEnd() {
	b.cursor.Column = len(b.lines[b.cursor.Line])
}

// MovePageUp moves the cursor and the viewport up by one screen.
func (b *Buffer) MovePageUp() {
	b.cursor.Line = max(0, b.cursor.Line-b.viewport)
	b.scrollY = max(0, b.scrollY-b.viewport)
	b.clampColumn()
	b.scrollIfNeeded()
}

// MovePageDown moves the cursor and the viewport down by one screen.
func (b *Buffer) MovePageDown() {
	b.cursor.Line = min(len(b.lines)-1, b.cursor.Line+b.viewport)
	b.scrollY = min(max(0, len(b.lines)-b.viewport), b.scrollY+b.viewport)
	b.clampColumn()
	b.scrollIfNeeded()
}

func (b *Buffer) clampColumn() {
	b.cursor.Column = min(b.cursor.Column, len(b.lines[b.cursor.Line]))
}
