// Package plugin hosts the user's init script.
//
// A Host owns one sandboxed Lua state for the life of the editor. It
// installs the keymap, editor and hooks modules from package api, loads
// the first init script it finds and then runs the after-init hook:
//
//	host := plugin.NewHost(sess, ed)
//	defer host.Close()
//	if err := host.Init(cfg.Script.Path); err != nil {
//	    // the editor keeps running with whatever the script managed to set up
//	}
//
// Script lookup order is the explicit path, then ./.lispedit.lua, then
// ~/.lispedit.lua. A broken script never stops the editor; the error is
// logged and shown in the status line.
package plugin
