package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/lispedit/internal/input/key"
)

// ctrlG is the abort key; it cancels a pending prefix even though the
// prefix plus C-g is not itself bound.
const ctrlG = 7

// HandleInput processes one raw key code.
func (e *Editor) HandleInput(code int) {
	if e.debug {
		e.status = fmt.Sprintf("[DEBUG] Key: %d | Bindings: %d", code, e.keys.Len())
	} else {
		e.status = ""
	}

	if e.keys.Handle(code) {
		switch {
		case e.keys.HasPending():
			e.status = e.keys.PendingPrefix() + "-"
		case e.debug:
			e.status += " | HANDLED by keymap"
		}
		return
	}

	e.handleDefault(code)
}

func (e *Editor) handleDefault(code int) {
	switch code {
	case key.CodeUp:
		e.buf.MoveUp()
	case key.CodeDown:
		e.buf.MoveDown()
	case key.CodeLeft:
		e.buf.MoveLeft()
	case key.CodeRight:
		e.buf.MoveRight()
	case key.CodeHome:
		e.buf.MoveHome()
	case key.CodeEnd:
		e.buf.MoveEnd()
	case key.CodePageUp:
		e.buf.MovePageUp()
	case key.CodePageDown:
		e.buf.MovePageDown()
	case key.CodeBackspace, 8:
		e.buf.Backspace()
	case key.CodeDelete:
		e.buf.DeleteChar()
	case key.CodeEnter, key.CodeReturn:
		e.buf.InsertNewline()
	case key.CodeTab:
		e.buf.InsertText(strings.Repeat(" ", e.tabWidth))
	case key.CodeEscape:
	case ctrlG:
		e.KeyboardQuit()
	default:
		if key.IsPrintable(code) {
			e.buf.InsertChar(rune(code))
		}
	}
}

// InsertChar inserts one rune at the cursor.
func (e *Editor) InsertChar(r rune) {
	e.buf.InsertChar(r)
}

// InsertText inserts text at the cursor; line breaks split lines.
func (e *Editor) InsertText(s string) {
	e.buf.InsertText(s)
}
