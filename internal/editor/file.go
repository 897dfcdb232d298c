package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/dshills/lispedit/internal/plugin/hook"
)

// Files loads and stores buffer content.
type Files interface {
	Load(path string) (string, error)
	Save(path, content string) error
}

// OSFiles reads and writes the local file system. Saves are atomic: the
// content goes to a temporary file in the same directory which is then
// renamed over the target.
type OSFiles struct{}

// Load reads the file at path.
func (OSFiles) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save writes content to path atomically, keeping the existing file mode.
func (OSFiles) Save(path, content string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

// Save errors.
var (
	// ErrNoFilename is returned by Save when the buffer has no file.
	ErrNoFilename = errors.New("no filename")

	// ErrLossySave is returned by the first Save of a file that was not
	// valid UTF-8. A second Save writes it anyway.
	ErrLossySave = errors.New("invalid UTF-8 would be replaced")
)

// Open loads path into the buffer. A missing file starts an empty buffer
// that will be created on save. The after-open hook runs in both cases.
func (e *Editor) Open(path string) error {
	content, err := e.files.Load(path)
	e.lossy, e.saveArmed = false, false
	switch {
	case err == nil:
		e.buf.Load(content)
		if !utf8.ValidString(content) {
			e.lossy = true
			e.status = "Warning: invalid UTF-8 shown as \uFFFD; saving will replace those bytes"
			e.log.Warn("open %s: invalid UTF-8", path)
		}
	case errors.Is(err, fs.ErrNotExist):
		e.buf.Load("")
		e.status = "(New file)"
	default:
		e.status = fmt.Sprintf("Error opening: %v", err)
		e.log.Error("open %s: %v", path, err)
		return err
	}
	e.buf.SetFilename(path)
	e.log.Info("opened %s (%d lines)", path, e.buf.LineCount())

	_ = e.sess.RunHook(hook.AfterOpen, path)
	return nil
}

// Save writes the buffer to its file. On failure the buffer stays
// modified and the error is shown in the status line.
func (e *Editor) Save() error {
	path := e.buf.Filename()
	if path == "" {
		e.status = "No filename. Start the editor with a file to save."
		return ErrNoFilename
	}

	if e.lossy && !e.saveArmed {
		e.saveArmed = true
		e.status = "File had invalid UTF-8! C-x C-s again to save with \uFFFD replacements."
		return ErrLossySave
	}

	_ = e.sess.RunHook(hook.BeforeSave, path)

	if err := e.files.Save(path, e.buf.Encoded()); err != nil {
		e.status = fmt.Sprintf("Error saving: %v", err)
		e.log.Error("save %s: %v", path, err)
		return err
	}
	e.buf.SetModified(false)
	e.quitArmed = false
	e.lossy, e.saveArmed = false, false
	e.status = "Saved: " + path
	e.log.Info("saved %s", path)

	_ = e.sess.RunHook(hook.AfterSave, path)
	return nil
}

// Quit asks the editor to exit. With unsaved changes the first request
// only warns; a second request exits anyway.
func (e *Editor) Quit() {
	_ = e.sess.RunHook(hook.BeforeQuit)

	if e.buf.Modified() && !e.quitArmed {
		e.quitArmed = true
		e.status = "Unsaved changes! C-x C-c again to quit, C-x C-s to save."
		return
	}
	e.done = true
}
