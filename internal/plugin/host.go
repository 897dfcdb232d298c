package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/lispedit/internal/logging"
	"github.com/dshills/lispedit/internal/plugin/api"
	"github.com/dshills/lispedit/internal/plugin/hook"
	plua "github.com/dshills/lispedit/internal/plugin/lua"
	"github.com/dshills/lispedit/internal/session"
)

// ScriptName is the init script file name looked up in the working and
// home directories.
const ScriptName = ".lispedit.lua"

// Editor is what the host exposes to scripts.
type Editor interface {
	api.EditorProvider
	api.KeymapProvider
}

// Host manages the Lua state that runs the init script.
type Host struct {
	sess   *session.Session
	editor Editor
	log    *logging.Logger

	state  *plua.State
	ctx    *api.Context
	script string

	executionTimeout time.Duration
	disabled         bool
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithExecutionTimeout bounds each call from Go into Lua.
func WithExecutionTimeout(d time.Duration) HostOption {
	return func(h *Host) {
		h.executionTimeout = d
	}
}

// WithDisabled skips script loading; hooks still run.
func WithDisabled(disabled bool) HostOption {
	return func(h *Host) {
		h.disabled = disabled
	}
}

// NewHost creates a host with the API modules installed.
func NewHost(sess *session.Session, ed Editor, opts ...HostOption) *Host {
	h := &Host{
		sess:             sess,
		editor:           ed,
		log:              sess.Logger.WithComponent("plugin"),
		executionTimeout: plua.DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.state = plua.NewState(
		plua.WithExecutionTimeout(h.executionTimeout),
		plua.WithOutput(sess.Logger.WithComponent("lua")),
	)
	h.ctx = &api.Context{
		State:   h.state,
		Editor:  ed,
		Keymap:  ed,
		Hooks:   sess.Hooks,
		Logger:  h.log,
		OnError: h.reportError,
	}
	if err := api.Install(h.ctx); err != nil {
		// Modules register plain tables; this only fails on a closed state.
		h.log.Error("install api: %v", err)
	}
	return h
}

func (h *Host) reportError(err error) {
	h.editor.SetStatus("Lua error: " + err.Error())
}

// Script returns the path of the loaded init script, if any.
func (h *Host) Script() string {
	return h.script
}

// State returns the underlying Lua state.
func (h *Host) State() *plua.State {
	return h.state
}

// Init loads the init script and runs the after-init hook. The hook runs
// even when the script fails; both errors are returned joined.
func (h *Host) Init(explicit string) error {
	if h.state.IsClosed() {
		return ErrHostClosed
	}

	var loadErr error
	if !h.disabled {
		path, err := FindScript(explicit)
		switch {
		case err != nil:
			loadErr = err
			h.log.Warn("%v", err)
			h.editor.SetStatus(fmt.Sprintf("Error loading script: %v", err))
		case path != "":
			loadErr = h.Load(path)
		default:
			h.log.Debug("no init script")
		}
	}

	hookErr := h.sess.RunHook(hook.AfterInit)
	return errors.Join(loadErr, hookErr)
}

// Load runs the script at path. Bindings and hooks it registered before
// an error stay in place.
func (h *Host) Load(path string) error {
	if err := h.state.DoFile(path); err != nil {
		err = fmt.Errorf("load %s: %w", path, err)
		h.log.Error("%v", err)
		h.editor.SetStatus(fmt.Sprintf("Error loading script: %v", err))
		return err
	}
	h.script = path
	h.log.Info("loaded init script %s", path)
	return nil
}

// Close releases the Lua state.
func (h *Host) Close() error {
	return h.state.Close()
}

// FindScript returns the init script to load. An explicit path must
// exist; otherwise ./.lispedit.lua and then ~/.lispedit.lua are tried. It
// returns "" when there is nothing to load.
func FindScript(explicit string) (string, error) {
	if explicit != "" {
		if !isFile(explicit) {
			return "", fmt.Errorf("%w: %s", ErrScriptNotFound, explicit)
		}
		return explicit, nil
	}

	for _, path := range scriptCandidates() {
		if isFile(path) {
			return path, nil
		}
	}
	return "", nil
}

func scriptCandidates() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ScriptName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ScriptName))
	}
	return paths
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
