package api

import (
	lua "github.com/yuin/gopher-lua"
)

// KeymapModule implements the keymap table.
type KeymapModule struct {
	ctx *Context
}

// NewKeymapModule creates a new keymap module.
func NewKeymapModule(ctx *Context) *KeymapModule {
	return &KeymapModule{ctx: ctx}
}

// Name returns the module name.
func (m *KeymapModule) Name() string {
	return "keymap"
}

// Register registers the module into the Lua state.
func (m *KeymapModule) Register(L *lua.LState) error {
	mod := L.NewTable()
	L.SetField(mod, "bind", L.NewFunction(m.bind))
	L.SetField(mod, "unbind", L.NewFunction(m.unbind))
	L.SetField(mod, "list", L.NewFunction(m.list))
	L.SetField(mod, "bindings", L.NewFunction(m.bindings))
	L.SetField(mod, "debug", L.NewFunction(m.debug))
	L.SetGlobal(m.Name(), mod)
	return nil
}

// bind(keys, fn|command, name?) -> bool
func (m *KeymapModule) bind(L *lua.LState) int {
	keys := L.CheckString(1)
	target := L.Get(2)
	name := L.OptString(3, "")

	var err error
	switch t := target.(type) {
	case *lua.LFunction:
		err = m.ctx.Keymap.BindAction(keys, name, &LuaAction{ctx: m.ctx, fn: t})
	case lua.LString:
		err = m.ctx.Keymap.BindCommand(keys, string(t))
	default:
		L.ArgError(2, "function or command name expected")
		return 0
	}

	if err != nil {
		m.ctx.Logger.Warn("keymap.bind(%q): %v", keys, err)
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LTrue)
	return 1
}

// unbind(keys) -> bool
func (m *KeymapModule) unbind(L *lua.LState) int {
	keys := L.CheckString(1)
	if err := m.ctx.Keymap.Unbind(keys); err != nil {
		m.ctx.Logger.Debug("keymap.unbind(%q): %v", keys, err)
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LTrue)
	return 1
}

// list() -> {name, ...}
func (m *KeymapModule) list(L *lua.LState) int {
	L.Push(stringList(L, m.ctx.Keymap.BindingNames()))
	return 1
}

// bindings() -> {{keys=, name=?}, ...}
func (m *KeymapModule) bindings(L *lua.LState) int {
	all := m.ctx.Keymap.Bindings()
	tbl := L.CreateTable(len(all), 0)
	for _, b := range all {
		entry := L.NewTable()
		L.SetField(entry, "keys", lua.LString(b.Sequence.String()))
		if b.Name != "" {
			L.SetField(entry, "name", lua.LString(b.Name))
		}
		tbl.Append(entry)
	}
	L.Push(tbl)
	return 1
}

// debug(on)
func (m *KeymapModule) debug(L *lua.LState) int {
	m.ctx.Keymap.SetDebug(L.ToBool(1))
	return 0
}
