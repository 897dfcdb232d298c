package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lispedit/internal/plugin/hook"
)

// HooksModule implements the hooks table.
type HooksModule struct {
	ctx *Context
}

// NewHooksModule creates a new hooks module.
func NewHooksModule(ctx *Context) *HooksModule {
	return &HooksModule{ctx: ctx}
}

// Name returns the module name.
func (m *HooksModule) Name() string {
	return "hooks"
}

// Register registers the module into the Lua state.
func (m *HooksModule) Register(L *lua.LState) error {
	mod := L.NewTable()
	L.SetField(mod, "add", L.NewFunction(m.add))
	L.SetField(mod, "remove", L.NewFunction(m.remove))
	L.SetField(mod, "run", L.NewFunction(m.run))
	L.SetField(mod, "list", L.NewFunction(m.list))
	L.SetField(mod, "clear", L.NewFunction(m.clear))

	names := L.NewTable()
	for _, name := range hook.StandardNames {
		names.Append(lua.LString(name))
	}
	L.SetField(mod, "names", names)

	L.SetGlobal(m.Name(), mod)
	return nil
}

// add(name, fn)
func (m *HooksModule) add(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	m.ctx.Hooks.Add(name, &LuaHook{state: m.ctx.State, fn: fn})
	return 0
}

// remove(name, fn) -> count
func (m *HooksModule) remove(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	n := m.ctx.Hooks.RemoveMatching(name, func(h hook.Hook) bool {
		lh, ok := h.(*LuaHook)
		return ok && lh.fn == fn
	})
	L.Push(lua.LNumber(n))
	return 1
}

// run(name, ...) -> ok, err
func (m *HooksModule) run(L *lua.LState) int {
	name := L.CheckString(1)
	args := make([]any, 0, L.GetTop()-1)
	for i := 2; i <= L.GetTop(); i++ {
		args = append(args, fromLua(L.Get(i)))
	}
	if err := m.ctx.Hooks.Run(name, args...); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

// list() -> {name, ...}
func (m *HooksModule) list(L *lua.LState) int {
	L.Push(stringList(L, m.ctx.Hooks.Names()))
	return 1
}

// clear(name)
func (m *HooksModule) clear(L *lua.LState) int {
	m.ctx.Hooks.Clear(L.CheckString(1))
	return 0
}
