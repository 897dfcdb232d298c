package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment variable the editor reads.
const EnvPrefix = "LISPEDIT_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]string // Env var -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader with the default variable mapping.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{
		mapping: DefaultEnvMapping(),
		lookup:  os.LookupEnv,
	}
}

// DefaultEnvMapping returns the environment variable mappings.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "TAB_WIDTH":       "editor.tabWidth",
		EnvPrefix + "KILL_RING_SIZE":  "editor.killRingSize",
		EnvPrefix + "DEBUG_KEYS":      "editor.debugKeys",
		EnvPrefix + "LOG_LEVEL":       "logging.level",
		EnvPrefix + "LOG_FILE":        "logging.file",
		EnvPrefix + "SCRIPT":          "script.path",
		EnvPrefix + "SCRIPT_DISABLED": "script.disabled",
		EnvPrefix + "WATCH":           "watch",
	}
}

// Load reads the mapped variables. Empty values count as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			SetByPath(config, path, parseValue(val))
		}
	}
	return config, nil
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// SetByPath sets a value in a nested map using a dot-separated path.
func SetByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
