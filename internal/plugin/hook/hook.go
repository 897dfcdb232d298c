// Package hook keeps named lists of callbacks that the editor runs at
// lifecycle transitions such as before and after a save.
package hook

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Standard hook names.
const (
	AfterInit  = "after-init-hook"
	AfterOpen  = "after-open-hook"
	BeforeSave = "before-save-hook"
	AfterSave  = "after-save-hook"
	BeforeQuit = "before-quit-hook"
)

// StandardNames lists the hooks the editor runs itself.
var StandardNames = []string{AfterInit, AfterOpen, BeforeSave, AfterSave, BeforeQuit}

// Hook is a callback attached to a named hook list.
type Hook interface {
	Run(args ...any) error
}

// Func adapts a plain function to the Hook interface.
type Func func(args ...any) error

// Run calls f.
func (f Func) Run(args ...any) error { return f(args...) }

// ID identifies one registration so it can be removed later.
type ID uint64

type entry struct {
	id   ID
	hook Hook
}

// Registry holds the hook lists of one editor session.
type Registry struct {
	mu     sync.Mutex
	nextID ID
	hooks  map[string][]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{hooks: make(map[string][]entry)}
}

// Add appends h to the named list.
func (r *Registry) Add(name string, h Hook) ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.hooks[name] = append(r.hooks[name], entry{id: r.nextID, hook: h})
	return r.nextID
}

// AddFunc appends fn to the named list.
func (r *Registry) AddFunc(name string, fn func(args ...any) error) ID {
	return r.Add(name, Func(fn))
}

// Remove deletes the registration with the given id.
func (r *Registry) Remove(name string, id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.hooks[name]
	for i, e := range list {
		if e.id == id {
			r.set(name, append(list[:i:i], list[i+1:]...))
			return true
		}
	}
	return false
}

// RemoveMatching deletes every hook in the named list for which match
// returns true and reports how many were removed.
func (r *Registry) RemoveMatching(name string, match func(Hook) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.hooks[name]
	kept := make([]entry, 0, len(list))
	for _, e := range list {
		if !match(e.hook) {
			kept = append(kept, e)
		}
	}
	r.set(name, kept)
	return len(list) - len(kept)
}

func (r *Registry) set(name string, list []entry) {
	if len(list) == 0 {
		delete(r.hooks, name)
		return
	}
	r.hooks[name] = list
}

// Run calls every hook in the named list in registration order. A failing
// hook does not stop the others; their errors are joined. Hooks may add or
// remove hooks while running; changes apply to the next Run.
func (r *Registry) Run(name string, args ...any) error {
	r.mu.Lock()
	list := make([]entry, len(r.hooks[name]))
	copy(list, r.hooks[name])
	r.mu.Unlock()

	var errs []error
	for _, e := range list {
		if err := e.hook.Run(args...); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Clear removes every hook in the named list.
func (r *Registry) Clear(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.hooks, name)
}

// Count returns the number of hooks in the named list.
func (r *Registry) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hooks[name])
}

// Names returns the names of all non-empty hook lists, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.hooks))
	for name := range r.hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
