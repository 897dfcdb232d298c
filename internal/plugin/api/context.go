package api

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lispedit/internal/engine/buffer"
	"github.com/dshills/lispedit/internal/input/keymap"
	"github.com/dshills/lispedit/internal/logging"
	"github.com/dshills/lispedit/internal/plugin/hook"
	plua "github.com/dshills/lispedit/internal/plugin/lua"
)

// EditorProvider is the editor surface scripts can drive.
type EditorProvider interface {
	RunCommand(name string) error
	Commands() []string
	InsertText(s string)
	Cursor() buffer.Point
	LineCount() int
	CurrentLine() string
	Content() string
	Filename() string
	Modified() bool
	Status() string
	SetStatus(msg string)
}

// KeymapProvider is the binding surface scripts can change.
type KeymapProvider interface {
	BindCommand(keys, command string) error
	BindAction(keys, name string, action keymap.Action) error
	Unbind(keys string) error
	BindingNames() []string
	Bindings() []keymap.BindingInfo
	SetDebug(on bool)
}

// Context carries what the modules need.
type Context struct {
	State  *plua.State
	Editor EditorProvider
	Keymap KeymapProvider
	Hooks  *hook.Registry
	Logger *logging.Logger

	// OnError receives errors raised by Lua key bindings. Nil logs only.
	OnError func(error)
}

func (c *Context) report(err error) {
	if c.Logger != nil {
		c.Logger.Error("%v", err)
	}
	if c.OnError != nil {
		c.OnError(err)
	}
}

// Module is a Lua API table.
type Module interface {
	Name() string
	Register(L *lua.LState) error
}

// Install registers every module as a global table.
func Install(ctx *Context) error {
	if ctx.Logger == nil {
		ctx.Logger = logging.Discard()
	}
	modules := []Module{
		NewKeymapModule(ctx),
		NewEditorModule(ctx),
		NewHooksModule(ctx),
	}
	for _, m := range modules {
		if err := m.Register(ctx.State.L); err != nil {
			return fmt.Errorf("register %s module: %w", m.Name(), err)
		}
	}
	return nil
}

// LuaAction runs a Lua function when a key binding fires.
type LuaAction struct {
	ctx *Context
	fn  *lua.LFunction
}

// Invoke calls the function. Errors go to the context's error reporter.
func (a *LuaAction) Invoke() {
	if _, err := a.ctx.State.Call(a.fn); err != nil {
		a.ctx.report(fmt.Errorf("lua binding: %w", err))
	}
}

// LuaHook runs a Lua function from a hook list.
type LuaHook struct {
	state *plua.State
	fn    *lua.LFunction
}

// Run calls the function with args converted to Lua values.
func (h *LuaHook) Run(args ...any) error {
	values := make([]lua.LValue, len(args))
	for i, a := range args {
		values[i] = toLua(a)
	}
	_, err := h.state.Call(h.fn, values...)
	return err
}

func toLua(v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case lua.LValue:
		return x
	case string:
		return lua.LString(x)
	case bool:
		return lua.LBool(x)
	case int:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	default:
		return lua.LString(fmt.Sprint(x))
	}
}

func fromLua(v lua.LValue) any {
	switch x := v.(type) {
	case lua.LString:
		return string(x)
	case lua.LNumber:
		return float64(x)
	case lua.LBool:
		return bool(x)
	case *lua.LNilType:
		return nil
	default:
		return v
	}
}

func stringList(L *lua.LState, items []string) *lua.LTable {
	tbl := L.CreateTable(len(items), 0)
	for _, s := range items {
		tbl.Append(lua.LString(s))
	}
	return tbl
}
