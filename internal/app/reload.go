package app

import (
	"github.com/dshills/lispedit/internal/config"
	"github.com/dshills/lispedit/internal/config/watcher"
)

// reloadRequest is posted to the terminal by the watcher goroutine.
type reloadRequest struct {
	path string
}

func (a *Application) startWatcher() error {
	if len(a.cfg.Sources) == 0 {
		return nil
	}
	w, err := watcher.New(a.onConfigChange, watcher.WithLogger(a.log))
	if err != nil {
		return err
	}
	for _, path := range a.cfg.Sources {
		if err := w.Watch(path); err != nil {
			_ = w.Close()
			return err
		}
	}
	a.watcher = w
	return nil
}

// onConfigChange runs on the watcher goroutine and only forwards the
// change to the main loop.
func (a *Application) onConfigChange(ev watcher.Event) {
	if ev.Op == watcher.OpRemove {
		return
	}
	term := a.live.Load()
	if term == nil {
		return
	}
	if err := term.Interrupt(reloadRequest{path: ev.Path}); err != nil {
		a.log.Warn("post reload for %s: %v", ev.Path, err)
	}
}

// Reload re-reads the configuration and applies the settings that can
// change while running: key bindings, tab width, debug mode, log level and
// theme. On error the previous settings stay in effect.
func (a *Application) Reload() error {
	cfg, err := config.Load(a.opts.configOptions()...)
	if err != nil {
		a.log.Warn("reload config: %v", err)
		a.editor.Statusf("Config reload failed: %v", err)
		return &OperationError{Op: "reload config", Err: err}
	}
	a.apply(cfg)
	a.editor.SetStatus("Configuration reloaded")
	a.log.Info("configuration reloaded from %v", cfg.Sources)
	return nil
}

func (a *Application) apply(cfg *config.Config) {
	prev := a.cfg
	a.cfg = cfg

	a.log.SetLevel(a.logLevel())
	a.editor.SetTabWidth(cfg.Editor.TabWidth)
	a.editor.KillRing().SetMax(cfg.Editor.KillRingSize)
	if !a.opts.Debug && cfg.Editor.DebugKeys != prev.Editor.DebugKeys {
		a.editor.SetDebug(cfg.Editor.DebugKeys)
	}
	if err := cfg.ApplyKeys(a.editor); err != nil {
		a.log.Warn("key bindings: %v", err)
	}
	if a.renderer != nil {
		a.renderer.SetTheme(cfg.Theme)
	}
}
