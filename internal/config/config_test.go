package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type staticLoader map[string]any

func (s staticLoader) Load() (map[string]any, error) { return s, nil }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func isolated(t *testing.T) (user, project string) {
	t.Helper()
	return t.TempDir(), t.TempDir()
}

func TestLoadDefaults(t *testing.T) {
	user, project := isolated(t)
	cfg, err := Load(WithUserConfigDir(user), WithProjectDir(project), WithEnv(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Editor.TabWidth != 2 || cfg.Editor.KillRingSize != 60 || cfg.Editor.DebugKeys {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if !cfg.Watch {
		t.Error("Watch should default to true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if len(cfg.Sources) != 0 {
		t.Errorf("Sources = %v, want none", cfg.Sources)
	}
}

func TestLoadLayers(t *testing.T) {
	user, project := isolated(t)
	writeFile(t, filepath.Join(user, "config.toml"), `
[editor]
tabWidth = 4
killRingSize = 10

[theme]
keyword = "#112233"

[keys]
"C-c C-e" = "end-of-line"
"C-c C-a" = "beginning-of-line"
`)
	writeFile(t, filepath.Join(project, ".lispedit.yaml"), `
editor:
  tabWidth: 8
keys:
  "C-c C-e": yank
`)
	explicit := filepath.Join(t.TempDir(), "extra.json")
	writeFile(t, explicit, `{"editor": {"debugKeys": true}, "watch": false}`)

	env := staticLoader{"editor": map[string]any{"killRingSize": int64(5)}}

	cfg, err := Load(
		WithUserConfigDir(user),
		WithProjectDir(project),
		WithFile(explicit),
		WithEnv(env),
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantEditor := EditorConfig{TabWidth: 8, KillRingSize: 5, DebugKeys: true}
	if diff := cmp.Diff(wantEditor, cfg.Editor); diff != "" {
		t.Errorf("Editor mismatch (-want +got):\n%s", diff)
	}
	wantKeys := map[string]string{"C-c C-e": "yank", "C-c C-a": "beginning-of-line"}
	if diff := cmp.Diff(wantKeys, cfg.Keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if cfg.Theme[RoleKeyword] != "#112233" || cfg.Theme[RoleString] != DefaultTheme()[RoleString] {
		t.Errorf("Theme = %v", cfg.Theme)
	}
	if cfg.Watch {
		t.Error("explicit file should turn watch off")
	}

	wantSources := []string{
		filepath.Join(user, "config.toml"),
		filepath.Join(project, ".lispedit.yaml"),
		explicit,
	}
	if diff := cmp.Diff(wantSources, cfg.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	user, project := isolated(t)
	_, err := Load(
		WithUserConfigDir(user),
		WithProjectDir(project),
		WithFile(filepath.Join(project, "nope.toml")),
		WithEnv(nil),
	)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}

func TestLoadParseError(t *testing.T) {
	user, project := isolated(t)
	writeFile(t, filepath.Join(project, ".lispedit.toml"), "[editor\n")
	_, err := Load(WithUserConfigDir(user), WithProjectDir(project), WithEnv(nil))
	if err == nil || !strings.Contains(err.Error(), ".lispedit.toml") {
		t.Errorf("Load() error = %v, want parse error naming the file", err)
	}
}

func TestFromMapValidation(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		path string
	}{
		{"tab width too small", map[string]any{"editor": map[string]any{"tabWidth": 0}}, "editor.tabWidth"},
		{"tab width type", map[string]any{"editor": map[string]any{"tabWidth": "four"}}, "editor.tabWidth"},
		{"fractional", map[string]any{"editor": map[string]any{"killRingSize": 2.5}}, "editor.killRingSize"},
		{"kill ring", map[string]any{"editor": map[string]any{"killRingSize": int64(0)}}, "editor.killRingSize"},
		{"log level", map[string]any{"logging": map[string]any{"level": "loud"}}, "logging.level"},
		{"bad color", map[string]any{"theme": map[string]any{"keyword": "purple"}}, "theme.keyword"},
		{"unknown role", map[string]any{"theme": map[string]any{"cursor": "#ffffff"}}, "theme.cursor"},
		{"section type", map[string]any{"editor": "fast"}, "editor"},
		{"key target", map[string]any{"keys": map[string]any{"C-t": 3}}, "keys.C-t"},
		{"watch type", map[string]any{"watch": "sometimes"}, "watch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.data)
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("FromMap() error = %v, want validation error", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Path != tt.path {
				t.Errorf("FromMap() error = %v, want path %q", err, tt.path)
			}
		})
	}
}

func TestFromMapNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := FromMap(map[string]any{
		"editor":  map[string]any{"tabWidth": float64(4), "debugKeys": int64(1)},
		"logging": map[string]any{"level": "DEBUG"},
		"script":  map[string]any{"path": "~/init.lua"},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if cfg.Editor.TabWidth != 4 || !cfg.Editor.DebugKeys {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if want := filepath.Join(home, "init.lua"); cfg.Script.Path != want {
		t.Errorf("Script.Path = %q, want %q", cfg.Script.Path, want)
	}
}

func TestThemeColor(t *testing.T) {
	theme := Theme{RoleKeyword: "#ff0000", RoleString: "garbage"}

	r, g, b := theme.Color(RoleKeyword).RGB255()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("keyword = %d,%d,%d", r, g, b)
	}

	want := DefaultTheme().Color(RoleString)
	if got := theme.Color(RoleString); got != want {
		t.Errorf("invalid color should fall back to the default, got %v", got)
	}
	if got := theme.Color("unknown"); got != DefaultTheme().Color(RoleNormal) {
		t.Errorf("unknown role = %v, want normal color", got)
	}
}

type recordingBinder struct {
	bound map[string]string
}

func (r *recordingBinder) BindCommand(keys, command string) error {
	if command == "missing" {
		return errors.New("unknown command")
	}
	r.bound[keys] = command
	return nil
}

func TestApplyKeys(t *testing.T) {
	cfg := Default()
	cfg.Keys = map[string]string{
		"C-c a": "yank",
		"C-c b": "missing",
		"C-c c": "kill-line",
	}
	b := &recordingBinder{bound: map[string]string{}}

	err := cfg.ApplyKeys(b)
	if err == nil || !strings.Contains(err.Error(), "keys.C-c b") {
		t.Errorf("ApplyKeys() error = %v", err)
	}
	want := map[string]string{"C-c a": "yank", "C-c c": "kill-line"}
	if diff := cmp.Diff(want, b.bound); diff != "" {
		t.Errorf("bound mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultLogFile(); got != filepath.Join("/state", "lispedit", "lispedit.log") {
		t.Errorf("DefaultLogFile() = %q", got)
	}
}
