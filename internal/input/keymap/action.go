package keymap

// Action is invoked when a bound sequence completes.
type Action interface {
	Invoke()
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func()

// Invoke calls f.
func (f ActionFunc) Invoke() { f() }
