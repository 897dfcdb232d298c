// Package session holds the per-run context shared by the editor and its
// scripting layer: identity, hook lists and the logger.
package session

import (
	"github.com/google/uuid"

	"github.com/dshills/lispedit/internal/logging"
	"github.com/dshills/lispedit/internal/plugin/hook"
)

// Session is the explicit context passed to the editor at construction.
type Session struct {
	ID     uuid.UUID
	Hooks  *hook.Registry
	Logger *logging.Logger
}

// New creates a session with a fresh ID and empty hook lists. A nil
// logger is replaced with one that discards output.
func New(logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	id := uuid.New()
	return &Session{
		ID:     id,
		Hooks:  hook.NewRegistry(),
		Logger: logger.WithField("session", id.String()[:8]),
	}
}

// RunHook runs the named hooks and logs any failure. The error is returned
// for callers that report it; it is never fatal.
func (s *Session) RunHook(name string, args ...any) error {
	err := s.Hooks.Run(name, args...)
	if err != nil {
		s.Logger.WithComponent("hook").Warn("%v", err)
	}
	return err
}
