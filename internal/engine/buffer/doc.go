// Package buffer implements the editable text of a single file.
//
// A Buffer stores its text as a slice of rune lines and always holds at
// least one (possibly empty) line. It owns a single cursor and a vertical
// scroll offset. Every operation clamps out-of-range requests instead of
// failing, so after any sequence of calls the cursor satisfies
//
//	0 <= Line < LineCount()
//	0 <= Column <= LineLen(Line)
//	ScrollY() <= Line < ScrollY()+ViewportHeight()
//
// Columns count runes, not bytes.
//
// A Buffer is not safe for concurrent use; the editor drives it from a
// single goroutine.
package buffer
