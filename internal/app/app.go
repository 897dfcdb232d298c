package app

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/dshills/lispedit/internal/config"
	"github.com/dshills/lispedit/internal/config/watcher"
	"github.com/dshills/lispedit/internal/editor"
	"github.com/dshills/lispedit/internal/logging"
	"github.com/dshills/lispedit/internal/plugin"
	"github.com/dshills/lispedit/internal/renderer"
	"github.com/dshills/lispedit/internal/renderer/backend"
	"github.com/dshills/lispedit/internal/session"
)

// Application owns every component of one editor process. All of its
// methods except Stop must be called from the goroutine that runs it.
type Application struct {
	opts Options
	cfg  *config.Config

	log       *logging.Logger
	logCloser io.Closer

	sess   *session.Session
	editor *editor.Editor
	host   *plugin.Host

	term     *backend.Terminal
	renderer *renderer.Renderer
	watcher  *watcher.Watcher

	// live mirrors term for Stop and the watcher goroutine.
	live atomic.Pointer[backend.Terminal]
}

// Options configures the application.
type Options struct {
	// ConfigPath is an explicit config file layered above the others.
	ConfigPath string

	// ScriptPath overrides the configured Lua script.
	ScriptPath string

	// LogLevel overrides the configured log level when not empty.
	LogLevel string

	// Debug turns on the key binding debug line.
	Debug bool

	// File is opened at startup. Empty starts an unnamed buffer.
	File string

	// UserConfigDir and ProjectDir replace the default search directories.
	UserConfigDir string
	ProjectDir    string
}

func (o Options) configOptions() []config.Option {
	var opts []config.Option
	if o.ConfigPath != "" {
		opts = append(opts, config.WithFile(o.ConfigPath))
	}
	if o.UserConfigDir != "" {
		opts = append(opts, config.WithUserConfigDir(o.UserConfigDir))
	}
	if o.ProjectDir != "" {
		opts = append(opts, config.WithProjectDir(o.ProjectDir))
	}
	return opts
}

// New loads the configuration and builds the editor and script host. The
// terminal is attached separately with SetBackend.
func New(opts Options) (*Application, error) {
	a := &Application{opts: opts}
	if err := a.bootstrap(); err != nil {
		a.Shutdown()
		return nil, err
	}
	return a, nil
}

// Config returns the active configuration.
func (a *Application) Config() *config.Config { return a.cfg }

// Editor returns the editor.
func (a *Application) Editor() *editor.Editor { return a.editor }

// Host returns the script host.
func (a *Application) Host() *plugin.Host { return a.host }

// SetBackend attaches and initializes the terminal, and starts watching
// the config files when enabled.
func (a *Application) SetBackend(term *backend.Terminal) error {
	if err := term.Init(); err != nil {
		return &OperationError{Op: "init", Target: "terminal", Err: err}
	}
	a.term = term
	a.live.Store(term)
	a.renderer = renderer.New(term.Screen(), a.cfg.Theme)

	_, h := term.Size()
	a.editor.Resize(h)

	term.OnResize(func(_, height int) {
		a.editor.Resize(height)
		a.renderer.Render(a.editor.View())
	})
	term.OnInterrupt(a.handleInterrupt)

	if a.cfg.Watch {
		if err := a.startWatcher(); err != nil {
			a.log.Warn("config watcher disabled: %v", err)
		}
	}
	return nil
}

// Run drives the editor until the user quits, input ends or ctx is
// cancelled. A user quit is reported as ErrQuit.
func (a *Application) Run(ctx context.Context) error {
	if a.term == nil {
		return ErrNoBackend
	}
	a.log.Info("running")

	err := a.editor.Run(ctx, a.term, a.renderer)
	switch {
	case err != nil:
		return err
	case a.editor.Done():
		return ErrQuit
	default:
		return nil
	}
}

// Stop makes a running Run return. It may be called from any goroutine.
func (a *Application) Stop() {
	if t := a.live.Load(); t != nil {
		t.Shutdown()
	}
}

// Shutdown stops the watcher, closes the script host, restores the
// terminal and closes the log. It is safe to call more than once.
func (a *Application) Shutdown() {
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Close())
		a.watcher = nil
	}
	if a.host != nil {
		errs = append(errs, a.host.Close())
		a.host = nil
	}
	if a.term != nil {
		a.live.Store(nil)
		a.term.Shutdown()
		a.term = nil
	}
	if err := errors.Join(errs...); err != nil && a.log != nil {
		a.log.Warn("shutdown: %v", err)
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

// handleInterrupt runs on the main goroutine when the terminal delivers an
// interrupt posted by another goroutine.
func (a *Application) handleInterrupt(data any) {
	switch data.(type) {
	case reloadRequest:
		a.Reload()
		a.renderer.Render(a.editor.View())
	default:
		a.log.Debug("ignoring interrupt %T", data)
	}
}

func (a *Application) logLevel() logging.Level {
	if a.opts.LogLevel != "" {
		return logging.ParseLevel(a.opts.LogLevel)
	}
	return logging.ParseLevel(a.cfg.Logging.Level)
}

func (a *Application) scriptPath() string {
	if a.opts.ScriptPath != "" {
		return a.opts.ScriptPath
	}
	return a.cfg.Script.Path
}
