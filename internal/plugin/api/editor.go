package api

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"
)

// EditorModule implements the editor table.
type EditorModule struct {
	ctx *Context
}

// NewEditorModule creates a new editor module.
func NewEditorModule(ctx *Context) *EditorModule {
	return &EditorModule{ctx: ctx}
}

// Name returns the module name.
func (m *EditorModule) Name() string {
	return "editor"
}

// commandFuncs maps Lua function names to editor commands.
var commandFuncs = map[string]string{
	"moveUp":            "previous-line",
	"moveDown":          "next-line",
	"moveLeft":          "backward-char",
	"moveRight":         "forward-char",
	"moveHome":          "beginning-of-line",
	"moveEnd":           "end-of-line",
	"pageUp":            "page-up",
	"pageDown":          "page-down",
	"save":              "save-buffer",
	"quit":              "exit",
	"newline":           "newline",
	"backspace":         "backward-delete-char",
	"deleteChar":        "delete-char",
	"forwardSexp":       "forward-sexp",
	"backwardSexp":      "backward-sexp",
	"gotoMatchingParen": "goto-matching-paren",
	"killSexp":          "kill-sexp",
	"killLine":          "kill-line",
	"yank":              "yank",
	"keyboardQuit":      "keyboard-quit",
}

// Register registers the module into the Lua state.
func (m *EditorModule) Register(L *lua.LState) error {
	mod := L.NewTable()
	for fn, cmd := range commandFuncs {
		L.SetField(mod, fn, L.NewFunction(m.runCommand(cmd)))
	}

	L.SetField(mod, "command", L.NewFunction(m.command))
	L.SetField(mod, "commands", L.NewFunction(m.commands))
	L.SetField(mod, "insertChar", L.NewFunction(m.insertChar))
	L.SetField(mod, "insertText", L.NewFunction(m.insertText))
	L.SetField(mod, "getCursorX", L.NewFunction(m.getCursorX))
	L.SetField(mod, "getCursorY", L.NewFunction(m.getCursorY))
	L.SetField(mod, "getLineCount", L.NewFunction(m.getLineCount))
	L.SetField(mod, "getCurrentLine", L.NewFunction(m.getCurrentLine))
	L.SetField(mod, "getContent", L.NewFunction(m.getContent))
	L.SetField(mod, "getFilename", L.NewFunction(m.getFilename))
	L.SetField(mod, "isModified", L.NewFunction(m.isModified))
	L.SetField(mod, "setStatusMessage", L.NewFunction(m.setStatusMessage))
	L.SetField(mod, "getStatusMessage", L.NewFunction(m.getStatusMessage))

	L.SetGlobal(m.Name(), mod)
	return nil
}

func (m *EditorModule) runCommand(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		if err := m.ctx.Editor.RunCommand(name); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}
}

// command(name) -> bool
func (m *EditorModule) command(L *lua.LState) int {
	name := L.CheckString(1)
	L.Push(lua.LBool(m.ctx.Editor.RunCommand(name) == nil))
	return 1
}

// commands() -> {name, ...}
func (m *EditorModule) commands(L *lua.LState) int {
	L.Push(stringList(L, m.ctx.Editor.Commands()))
	return 1
}

// insertChar(c) inserts the first character of c.
func (m *EditorModule) insertChar(L *lua.LState) int {
	s := L.CheckString(1)
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		L.ArgError(1, "character expected")
		return 0
	}
	m.ctx.Editor.InsertText(string(r))
	return 0
}

func (m *EditorModule) insertText(L *lua.LState) int {
	m.ctx.Editor.InsertText(L.CheckString(1))
	return 0
}

func (m *EditorModule) getCursorX(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.Cursor().Column))
	return 1
}

func (m *EditorModule) getCursorY(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.Cursor().Line))
	return 1
}

func (m *EditorModule) getLineCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Editor.LineCount()))
	return 1
}

func (m *EditorModule) getCurrentLine(L *lua.LState) int {
	L.Push(lua.LString(m.ctx.Editor.CurrentLine()))
	return 1
}

func (m *EditorModule) getContent(L *lua.LState) int {
	L.Push(lua.LString(m.ctx.Editor.Content()))
	return 1
}

func (m *EditorModule) getFilename(L *lua.LState) int {
	if name := m.ctx.Editor.Filename(); name != "" {
		L.Push(lua.LString(name))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

func (m *EditorModule) isModified(L *lua.LState) int {
	L.Push(lua.LBool(m.ctx.Editor.Modified()))
	return 1
}

func (m *EditorModule) setStatusMessage(L *lua.LState) int {
	m.ctx.Editor.SetStatus(L.CheckString(1))
	return 0
}

func (m *EditorModule) getStatusMessage(L *lua.LState) int {
	L.Push(lua.LString(m.ctx.Editor.Status()))
	return 1
}
