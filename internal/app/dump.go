package app

import (
	"fmt"
	"io"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// DumpBindings writes the active key bindings, the command names and the
// config files in use as an indented JSON document.
func (a *Application) DumpBindings(w io.Writer) error {
	doc := []byte(`{"bindings":[],"commands":[],"sources":[]}`)
	var err error

	for _, b := range a.editor.Bindings() {
		entry := map[string]string{"keys": b.Sequence.String()}
		if b.Name != "" {
			entry["command"] = b.Name
		}
		if doc, err = sjson.SetBytes(doc, "bindings.-1", entry); err != nil {
			return fmt.Errorf("encode binding %s: %w", b.Sequence, err)
		}
	}
	for _, name := range a.editor.Commands() {
		if doc, err = sjson.SetBytes(doc, "commands.-1", name); err != nil {
			return fmt.Errorf("encode command %s: %w", name, err)
		}
	}
	for _, path := range a.cfg.Sources {
		if doc, err = sjson.SetBytes(doc, "sources.-1", path); err != nil {
			return fmt.Errorf("encode source %s: %w", path, err)
		}
	}
	if script := a.host.Script(); script != "" {
		if doc, err = sjson.SetBytes(doc, "script", script); err != nil {
			return fmt.Errorf("encode script: %w", err)
		}
	}

	_, err = w.Write(pretty.Pretty(doc))
	return err
}
