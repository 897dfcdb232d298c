// Package api exposes the editor to Lua scripts.
//
// Three global tables are installed:
//
//	keymap  bind(keys, fn|command [, name]), unbind(keys), list(), bindings(), debug(on)
//	editor  movement, editing, sexp navigation, file and status functions
//	hooks   add(name, fn), remove(name, fn), run(name, ...), list(), clear(name)
//
// Key strings use either notation accepted by the key package. Functions
// that take key strings return false on a parse failure instead of raising
// a Lua error.
package api
