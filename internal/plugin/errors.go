package plugin

import "errors"

// Plugin host errors.
var (
	// ErrScriptNotFound is returned when an explicitly named script does not exist.
	ErrScriptNotFound = errors.New("init script not found")

	// ErrHostClosed is returned when using a host after Close.
	ErrHostClosed = errors.New("plugin host is closed")
)
