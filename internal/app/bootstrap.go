package app

import (
	"github.com/dshills/lispedit/internal/config"
	"github.com/dshills/lispedit/internal/editor"
	"github.com/dshills/lispedit/internal/logging"
	"github.com/dshills/lispedit/internal/plugin"
	"github.com/dshills/lispedit/internal/session"
)

// bootstrap initializes the components in dependency order. On failure the
// caller runs Shutdown to release what was already created.
func (a *Application) bootstrap() error {
	// 1. Configuration
	cfg, err := config.Load(a.opts.configOptions()...)
	if err != nil {
		return &OperationError{Op: "load config", Target: a.opts.ConfigPath, Err: err}
	}
	a.cfg = cfg

	// 2. Logging
	a.initLogging()

	// 3. Session and editor
	a.sess = session.New(a.log)
	a.editor = editor.New(a.sess,
		editor.WithTabWidth(cfg.Editor.TabWidth),
		editor.WithKillRingSize(cfg.Editor.KillRingSize),
		editor.WithDebugKeys(cfg.Editor.DebugKeys || a.opts.Debug),
	)
	if err := cfg.ApplyKeys(a.editor); err != nil {
		a.log.Warn("key bindings: %v", err)
		a.editor.Statusf("Config error: %v", err)
	}

	// 4. Initial file
	if a.opts.File != "" {
		if err := a.editor.Open(a.opts.File); err != nil {
			return &OperationError{Op: "open", Target: a.opts.File, Err: err}
		}
	}

	// 5. Script host. Script failures are shown in the status line and the
	// editor keeps running.
	a.host = plugin.NewHost(a.sess, a.editor, plugin.WithDisabled(cfg.Script.Disabled))
	if err := a.host.Init(a.scriptPath()); err != nil {
		a.log.Warn("script: %v", err)
	}

	a.log.Info("started (config files: %v)", cfg.Sources)
	return nil
}

// initLogging opens the configured log file. When it cannot be opened the
// editor runs without a log.
func (a *Application) initLogging() {
	logCfg := logging.DefaultConfig()
	logCfg.Level = a.logLevel()

	if a.cfg.Logging.File == "" {
		a.log = logging.Discard()
		return
	}
	log, closer, err := logging.Open(a.cfg.Logging.File, logCfg)
	if err != nil {
		a.log = logging.Discard()
		return
	}
	a.log = log
	a.logCloser = closer
}
