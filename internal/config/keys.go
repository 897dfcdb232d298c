package config

import (
	"errors"
	"fmt"
	"sort"
)

// Binder installs a key binding for a named command.
type Binder interface {
	BindCommand(keys, command string) error
}

// ApplyKeys binds every entry of the keys table, in sequence order so
// the outcome is deterministic. A bad entry does not stop the others.
func (c *Config) ApplyKeys(b Binder) error {
	seqs := make([]string, 0, len(c.Keys))
	for seq := range c.Keys {
		seqs = append(seqs, seq)
	}
	sort.Strings(seqs)

	var errs []error
	for _, seq := range seqs {
		if err := b.BindCommand(seq, c.Keys[seq]); err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", seq, err))
		}
	}
	return errors.Join(errs...)
}
