package editor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/lispedit/internal/engine/sexp"
	"github.com/dshills/lispedit/internal/input/key"
	"github.com/dshills/lispedit/internal/input/keymap"
)

// Binding errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNotBound       = errors.New("sequence not bound")
)

// Command is a named editor operation.
type Command func(e *Editor)

// Command names.
const (
	CmdBeginningOfLine   = "beginning-of-line"
	CmdEndOfLine         = "end-of-line"
	CmdForwardChar       = "forward-char"
	CmdBackwardChar      = "backward-char"
	CmdNextLine          = "next-line"
	CmdPreviousLine      = "previous-line"
	CmdHome              = "home"
	CmdEnd               = "end"
	CmdPageUp            = "page-up"
	CmdPageDown          = "page-down"
	CmdKillLine          = "kill-line"
	CmdYank              = "yank"
	CmdDeleteChar        = "delete-char"
	CmdBackwardDelete    = "backward-delete-char"
	CmdNewline           = "newline"
	CmdKeyboardQuit      = "keyboard-quit"
	CmdGotoMatchingParen = "goto-matching-paren"
	CmdForwardSexp       = "forward-sexp"
	CmdBackwardSexp      = "backward-sexp"
	CmdKillSexp          = "kill-sexp"
	CmdSaveBuffer        = "save-buffer"
	CmdExit              = "exit"
	CmdFindFile          = "find-file"
)

// DefaultBindings is the built-in key table: sequence to command name.
var DefaultBindings = []struct {
	Keys    string
	Command string
}{
	{"C-a", CmdBeginningOfLine},
	{"C-e", CmdEndOfLine},
	{"C-f", CmdForwardChar},
	{"C-b", CmdBackwardChar},
	{"C-n", CmdNextLine},
	{"C-p", CmdPreviousLine},
	{"C-k", CmdKillLine},
	{"C-y", CmdYank},
	{"C-d", CmdDeleteChar},
	{"C-g", CmdKeyboardQuit},
	{"C-]", CmdGotoMatchingParen},
	{"C-M-f", CmdForwardSexp},
	{"C-M-b", CmdBackwardSexp},
	{"C-M-k", CmdKillSexp},
	{"C-x C-s", CmdSaveBuffer},
	{"C-x C-c", CmdExit},
	{"C-x C-f", CmdFindFile},
	{"<home>", CmdHome},
	{"<end>", CmdEnd},
	{"<pageup>", CmdPageUp},
	{"<pagedown>", CmdPageDown},
}

func (e *Editor) registerCommands() {
	e.commands = map[string]Command{
		CmdBeginningOfLine:   func(e *Editor) { e.buf.MoveHome() },
		CmdEndOfLine:         func(e *Editor) { e.buf.MoveEnd() },
		CmdForwardChar:       func(e *Editor) { e.buf.MoveRight() },
		CmdBackwardChar:      func(e *Editor) { e.buf.MoveLeft() },
		CmdNextLine:          func(e *Editor) { e.buf.MoveDown() },
		CmdPreviousLine:      func(e *Editor) { e.buf.MoveUp() },
		CmdHome:              func(e *Editor) { e.buf.MoveHome() },
		CmdEnd:               func(e *Editor) { e.buf.MoveEnd() },
		CmdPageUp:            func(e *Editor) { e.buf.MovePageUp() },
		CmdPageDown:          func(e *Editor) { e.buf.MovePageDown() },
		CmdKillLine:          (*Editor).KillLine,
		CmdYank:              (*Editor).Yank,
		CmdDeleteChar:        func(e *Editor) { e.buf.DeleteChar() },
		CmdBackwardDelete:    func(e *Editor) { e.buf.Backspace() },
		CmdNewline:           func(e *Editor) { e.buf.InsertNewline() },
		CmdKeyboardQuit:      (*Editor).KeyboardQuit,
		CmdGotoMatchingParen: (*Editor).GotoMatchingParen,
		CmdForwardSexp:       (*Editor).ForwardSexp,
		CmdBackwardSexp:      (*Editor).BackwardSexp,
		CmdKillSexp:          (*Editor).KillSexp,
		CmdSaveBuffer:        func(e *Editor) { _ = e.Save() },
		CmdExit:              (*Editor).Quit,
		CmdFindFile:          func(e *Editor) { e.status = "find-file: not implemented" },
	}
}

func (e *Editor) installDefaultBindings() {
	for _, b := range DefaultBindings {
		if err := e.BindCommand(b.Keys, b.Command); err != nil {
			panic(fmt.Sprintf("default binding %q: %v", b.Keys, err))
		}
	}
}

// RegisterCommand adds or replaces a named command.
func (e *Editor) RegisterCommand(name string, cmd Command) {
	e.commands[name] = cmd
}

// Command returns the named command.
func (e *Editor) Command(name string) (Command, bool) {
	cmd, ok := e.commands[name]
	return cmd, ok
}

// RunCommand runs the named command.
func (e *Editor) RunCommand(name string) error {
	cmd, ok := e.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	cmd(e)
	return nil
}

// Commands returns the names of all commands, sorted.
func (e *Editor) Commands() []string {
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BindCommand binds a key sequence in either notation to a named command.
func (e *Editor) BindCommand(keys, command string) error {
	seq, err := key.ParseSequence(keys)
	if err != nil {
		return err
	}
	if _, ok := e.commands[command]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
	e.keys.BindFunc(seq, command, func() { _ = e.RunCommand(command) })
	return nil
}

// BindAction binds a key sequence to an arbitrary action. The name is
// what AllBindings reports; an empty name uses the sequence text.
func (e *Editor) BindAction(keys, name string, action keymap.Action) error {
	seq, err := key.ParseSequence(keys)
	if err != nil {
		return err
	}
	if name == "" {
		name = keys
	}
	e.keys.Bind(seq, name, action)
	return nil
}

// Unbind removes the binding at exactly the given sequence.
func (e *Editor) Unbind(keys string) error {
	seq, err := key.ParseSequence(keys)
	if err != nil {
		return err
	}
	if !e.keys.UnbindSequence(seq) {
		return fmt.Errorf("%w: %s", ErrNotBound, keys)
	}
	return nil
}

// BindingNames returns the names of all named bindings.
func (e *Editor) BindingNames() []string {
	return e.keys.Names()
}

// Bindings returns every named binding.
func (e *Editor) Bindings() []keymap.BindingInfo {
	return e.keys.AllBindings()
}

// KillLine kills to the end of the line, or the line break at its end.
func (e *Editor) KillLine() {
	if killed, ok := e.buf.KillToEndOfLine(); ok {
		e.ring.Push(killed)
	}
}

// Yank inserts the most recent kill at the cursor.
func (e *Editor) Yank() {
	text, ok := e.ring.Yank()
	if !ok {
		e.status = "Kill ring is empty"
		return
	}
	e.buf.InsertText(text)
}

// KeyboardQuit abandons a pending key sequence.
func (e *Editor) KeyboardQuit() {
	e.keys.CancelPending()
	e.status = "Quit"
}

// GotoMatchingParen jumps to the partner of the delimiter at the cursor.
func (e *Editor) GotoMatchingParen() {
	if err := sexp.GotoMatchingDelimiter(e.buf); err != nil {
		e.status = "No matching paren"
	}
}

// ForwardSexp moves over the next sexp.
func (e *Editor) ForwardSexp() {
	e.reportSexp(sexp.ForwardSexp(e.buf))
}

// BackwardSexp moves back over the previous sexp.
func (e *Editor) BackwardSexp() {
	e.reportSexp(sexp.BackwardSexp(e.buf))
}

// KillSexp kills the next sexp into the kill ring.
func (e *Editor) KillSexp() {
	e.reportSexp(sexp.KillSexp(e.buf, e.ring))
}

func (e *Editor) reportSexp(err error) {
	if errors.Is(err, sexp.ErrNoMatch) {
		e.status = "No matching delimiter"
	}
}
