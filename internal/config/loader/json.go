package loader

import (
	"errors"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// JSONLoader loads configuration from JSON files.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a new JSON loader for the given path.
func NewJSONLoader(fsys FileSystem, path string) *JSONLoader {
	return &JSONLoader{fs: fsys, path: path}
}

// Load reads configuration from the configured path. Numbers decode as
// float64.
func (l *JSONLoader) Load() (map[string]any, error) {
	data, err := readFile(l.fs, l.path)
	if err != nil || data == nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: l.path, Message: errInvalidJSON.Error(), Err: errInvalidJSON}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &ParseError{Path: l.path, Message: "top level must be an object", Err: errInvalidJSON}
	}

	config, _ := root.Value().(map[string]any)
	return config, nil
}
