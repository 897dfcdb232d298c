// Package lua wraps a gopher-lua state for running user scripts.
//
// The state opens only the base, table, string and math libraries and
// removes the loaders that read files or compile strings at run time.
// print writes to the editor log instead of the terminal, which the editor
// owns.
//
// Script code runs on the editor goroutine. Calls may nest: a Lua key
// binding can save the buffer, which runs a Lua hook. Only the outermost
// call installs the execution timeout.
package lua
