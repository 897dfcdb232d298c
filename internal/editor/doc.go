// Package editor implements the controller that ties key input to the
// text buffer.
//
// An Editor owns one buffer, one kill ring and one key matcher. Each raw
// key code goes to the matcher first; keys it does not consume fall
// through to default handling (cursor keys, backspace, enter, tab and
// printable runes). Bound actions are named commands from a command
// table, so configuration files and scripts can rebind them by name.
//
// Lifecycle hooks from the session run synchronously around open, save
// and quit. All methods must be called from the goroutine running the
// editor.
package editor
