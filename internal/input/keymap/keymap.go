package keymap

import (
	"sort"
	"sync"

	"github.com/dshills/lispedit/internal/input/key"
)

// BindingInfo describes a named binding.
type BindingInfo struct {
	Name     string
	Sequence key.Sequence
}

// Matcher is a modal key-sequence dispatcher.
//
// Actions are invoked without the internal lock held, so an action may
// bind, unbind or cancel on the matcher that fired it.
type Matcher struct {
	mu      sync.Mutex
	tree    *prefixTree
	names   map[string]key.Sequence
	pending key.Sequence
}

// NewMatcher creates an empty matcher.
func NewMatcher() *Matcher {
	return &Matcher{
		tree:  newPrefixTree(),
		names: make(map[string]key.Sequence),
	}
}

// Bind binds seq to action, replacing any binding at exactly seq.
// A non-empty name makes the binding visible to Binding and AllBindings.
// Empty sequences are ignored.
func (m *Matcher) Bind(seq key.Sequence, name string, action Action) {
	seq = seq.Normalize()
	if len(seq) == 0 {
		return
	}
	if action == nil {
		action = ActionFunc(func() {})
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.tree.insert(&binding{seq: seq, name: name, action: action})
	if old != nil && old.name != "" && old.name != name {
		m.forgetName(old.name, seq)
	}
	if name != "" {
		m.names[name] = seq
	}
}

// BindFunc is Bind with a plain function.
func (m *Matcher) BindFunc(seq key.Sequence, name string, fn func()) {
	m.Bind(seq, name, ActionFunc(fn))
}

// Unbind removes the binding for a single chord. Longer sequences that
// start with the chord are left alone.
func (m *Matcher) Unbind(c key.Chord) bool {
	return m.UnbindSequence(key.Seq(c))
}

// UnbindSequence removes the binding at exactly seq and any name that
// referred to it.
func (m *Matcher) UnbindSequence(seq key.Sequence) bool {
	seq = seq.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.tree.remove(seq)
	if old == nil {
		return false
	}
	if old.name != "" {
		m.forgetName(old.name, seq)
	}
	if len(m.pending) > 0 {
		if node := m.tree.find(m.pending); node == nil || len(node.children) == 0 {
			m.pending = nil
		}
	}
	return true
}

func (m *Matcher) forgetName(name string, seq key.Sequence) {
	if cur, ok := m.names[name]; ok && cur.Equal(seq) {
		delete(m.names, name)
	}
}

// Handle feeds one key code to the matcher. It returns true when the key
// was consumed, either by completing a binding or by extending a pending
// prefix. On false the pending prefix has been discarded.
func (m *Matcher) Handle(code int) bool {
	m.mu.Lock()
	m.pending = append(m.pending, key.FromCode(code))
	node := m.tree.find(m.pending)

	switch {
	case node != nil && node.binding != nil:
		action := node.binding.action
		m.pending = nil
		m.mu.Unlock()
		action.Invoke()
		return true
	case node != nil && len(node.children) > 0:
		m.mu.Unlock()
		return true
	}

	m.pending = nil
	m.mu.Unlock()
	return false
}

// CancelPending discards any partially entered sequence.
func (m *Matcher) CancelPending() {
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()
}

// HasPending reports whether a partial sequence has been entered.
func (m *Matcher) HasPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending) > 0
}

// PendingPrefix returns the partial sequence in Emacs notation, or "".
func (m *Matcher) PendingPrefix() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending.String()
}

// Binding returns the sequence bound under name.
func (m *Matcher) Binding(name string) (key.Sequence, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seq, ok := m.names[name]
	return seq, ok
}

// Lookup returns the name bound at exactly seq. Unnamed bindings report
// an empty name with ok set.
func (m *Matcher) Lookup(seq key.Sequence) (name string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	node := m.tree.find(seq.Normalize())
	if node == nil || node.binding == nil {
		return "", false
	}
	return node.binding.name, true
}

// AllBindings returns every bound sequence ordered by sequence. Name is
// empty for unnamed bindings and for bindings whose name has since moved
// to another sequence.
func (m *Matcher) AllBindings() []BindingInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []BindingInfo
	m.tree.walk(func(b *binding) {
		info := BindingInfo{Sequence: b.seq}
		if seq, ok := m.names[b.name]; ok && seq.Equal(b.seq) {
			info.Name = b.name
		}
		out = append(out, info)
	})
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].Sequence.String(), out[j].Sequence.String()
		if si != sj {
			return si < sj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns the names of all named bindings, sorted.
func (m *Matcher) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.names))
	for name := range m.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound sequences, named or not.
func (m *Matcher) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	m.tree.walk(func(*binding) { n++ })
	return n
}
