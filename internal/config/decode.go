package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// decoder copies loosely typed layer data into a Config. TOML yields
// int64, YAML int and JSON float64, so numbers are normalized here.
type decoder struct {
	errs []error
}

func (d *decoder) fail(path, msg string, v any) {
	d.errs = append(d.errs, &ValidationError{Path: path, Message: msg, Value: v})
}

func (d *decoder) decode(cfg *Config, m map[string]any) {
	if editor, ok := d.section(m, "editor"); ok {
		d.int(editor, "editor", "tabWidth", &cfg.Editor.TabWidth)
		d.int(editor, "editor", "killRingSize", &cfg.Editor.KillRingSize)
		d.bool(editor, "editor", "debugKeys", &cfg.Editor.DebugKeys)
	}
	if theme, ok := d.section(m, "theme"); ok {
		for role, v := range theme {
			s, ok := v.(string)
			if !ok {
				d.fail("theme."+role, "must be a color string", v)
				continue
			}
			cfg.Theme[role] = s
		}
	}
	if keys, ok := d.section(m, "keys"); ok {
		for seq, v := range keys {
			s, ok := v.(string)
			if !ok {
				d.fail("keys."+seq, "must be a command name", v)
				continue
			}
			cfg.Keys[seq] = s
		}
	}
	if script, ok := d.section(m, "script"); ok {
		d.string(script, "script", "path", &cfg.Script.Path)
		d.bool(script, "script", "disabled", &cfg.Script.Disabled)
		cfg.Script.Path = expandHome(cfg.Script.Path)
	}
	if logging, ok := d.section(m, "logging"); ok {
		d.string(logging, "logging", "level", &cfg.Logging.Level)
		d.string(logging, "logging", "file", &cfg.Logging.File)
		cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
		cfg.Logging.File = expandHome(cfg.Logging.File)
	}
	d.bool(m, "", "watch", &cfg.Watch)
}

func (d *decoder) section(m map[string]any, name string) (map[string]any, bool) {
	v, ok := m[name]
	if !ok {
		return nil, false
	}
	section, ok := v.(map[string]any)
	if !ok {
		d.fail(name, "must be a table", v)
		return nil, false
	}
	return section, true
}

func join(section, key string) string {
	if section == "" {
		return key
	}
	return section + "." + key
}

func (d *decoder) int(m map[string]any, section, key string, dst *int) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch n := v.(type) {
	case int:
		*dst = n
	case int64:
		*dst = int(n)
	case float64:
		if n != math.Trunc(n) {
			d.fail(join(section, key), "must be a whole number", v)
			return
		}
		*dst = int(n)
	default:
		d.fail(join(section, key), "must be a number", v)
	}
}

func (d *decoder) bool(m map[string]any, section, key string, dst *bool) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch b := v.(type) {
	case bool:
		*dst = b
	case int, int64:
		switch fmt.Sprint(b) {
		case "0":
			*dst = false
		case "1":
			*dst = true
		default:
			d.fail(join(section, key), "must be true or false", v)
		}
	default:
		d.fail(join(section, key), "must be true or false", v)
	}
}

func (d *decoder) string(m map[string]any, section, key string, dst *string) {
	v, ok := m[key]
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		d.fail(join(section, key), "must be a string", fmt.Sprint(v))
		return
	}
	*dst = s
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
