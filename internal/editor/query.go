package editor

import "github.com/dshills/lispedit/internal/engine/buffer"

// Cursor returns the cursor position.
func (e *Editor) Cursor() buffer.Point { return e.buf.Cursor() }

// LineCount returns the number of lines in the buffer.
func (e *Editor) LineCount() int { return e.buf.LineCount() }

// CurrentLine returns the text of the cursor line.
func (e *Editor) CurrentLine() string { return e.buf.Line(e.buf.Cursor().Line) }

// Content returns the whole buffer text.
func (e *Editor) Content() string { return e.buf.Content() }

// Filename returns the buffer's file, or "".
func (e *Editor) Filename() string { return e.buf.Filename() }

// Modified reports whether the buffer has unsaved changes.
func (e *Editor) Modified() bool { return e.buf.Modified() }
