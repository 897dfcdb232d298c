package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/lispedit/internal/config/loader"
)

// Config holds every lispedit setting.
type Config struct {
	Editor  EditorConfig
	Theme   Theme
	Keys    map[string]string
	Script  ScriptConfig
	Logging LoggingConfig
	Watch   bool

	// Sources lists the files that were merged, lowest priority first.
	Sources []string
}

// EditorConfig holds editing settings.
type EditorConfig struct {
	TabWidth     int
	KillRingSize int
	DebugKeys    bool
}

// ScriptConfig controls the Lua init script.
type ScriptConfig struct {
	Path     string
	Disabled bool
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string
	File  string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:     2,
			KillRingSize: 60,
		},
		Theme: DefaultTheme(),
		Keys:  map[string]string{},
		Logging: LoggingConfig{
			Level: "info",
			File:  DefaultLogFile(),
		},
		Watch: true,
	}
}

// DefaultLogFile returns $XDG_STATE_HOME/lispedit/lispedit.log, falling
// back to ~/.local/state.
func DefaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "lispedit", "lispedit.log")
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs         loader.FileSystem
	userDir    string
	projectDir string
	explicit   string
	env        loader.Loader
}

// WithUserConfigDir sets the directory searched for config.*.
func WithUserConfigDir(dir string) Option {
	return func(o *options) {
		o.userDir = dir
	}
}

// WithProjectDir sets the directory searched for .lispedit.*.
func WithProjectDir(dir string) Option {
	return func(o *options) {
		o.projectDir = dir
	}
}

// WithFile adds an explicit config file above the project layer. It must
// exist.
func WithFile(path string) Option {
	return func(o *options) {
		o.explicit = path
	}
}

// WithFileSystem replaces the OS file system.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnv replaces the environment loader. Nil disables the layer.
func WithEnv(l loader.Loader) Option {
	return func(o *options) {
		o.env = l
	}
}

func defaultOptions() options {
	o := options{
		fs:  loader.OSFS{},
		env: loader.NewEnvLoader(),
	}
	if dir, err := os.UserConfigDir(); err == nil {
		o.userDir = filepath.Join(dir, "lispedit")
	}
	if cwd, err := os.Getwd(); err == nil {
		o.projectDir = cwd
	}
	return o
}

// Files returns the config files Load would read, lowest priority first.
// It is what the watcher observes.
func Files(opts ...Option) ([]string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o.files()
}

func (o *options) files() ([]string, error) {
	var files []string
	if o.userDir != "" {
		if path := loader.Find(o.fs, o.userDir, "config"); path != "" {
			files = append(files, path)
		}
	}
	if o.projectDir != "" {
		if path := loader.Find(o.fs, o.projectDir, ".lispedit"); path != "" {
			files = append(files, path)
		}
	}
	if o.explicit != "" {
		if _, err := o.fs.Stat(o.explicit); err != nil {
			return nil, fmt.Errorf("config file %s: %w", o.explicit, err)
		}
		files = append(files, o.explicit)
	}
	return files, nil
}

// Load merges every layer and returns the validated result.
func Load(opts ...Option) (*Config, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	files, err := o.files()
	if err != nil {
		return nil, err
	}

	merged := map[string]any{}
	for _, path := range files {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}
	if o.env != nil {
		data, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
		merged = loader.DeepMerge(merged, data)
	}

	cfg, err := FromMap(merged)
	if err != nil {
		return nil, err
	}
	cfg.Sources = files
	return cfg, nil
}

// FromMap decodes m over the defaults and validates the result.
func FromMap(m map[string]any) (*Config, error) {
	cfg := Default()
	d := &decoder{}
	d.decode(cfg, m)
	if err := cfg.Validate(); err != nil {
		d.errs = append(d.errs, err)
	}
	if len(d.errs) > 0 {
		return nil, errors.Join(d.errs...)
	}
	return cfg, nil
}

// Validate checks ranges and formats.
func (c *Config) Validate() error {
	var errs []error
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, &ValidationError{Path: "editor.tabWidth", Message: "must be between 1 and 16", Value: c.Editor.TabWidth})
	}
	if c.Editor.KillRingSize < 1 {
		errs = append(errs, &ValidationError{Path: "editor.killRingSize", Message: "must be positive", Value: c.Editor.KillRingSize})
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "must be debug, info, warn or error", Value: c.Logging.Level})
	}
	errs = append(errs, c.Theme.validate()...)
	return errors.Join(errs...)
}
