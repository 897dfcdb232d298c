package keymap

import "github.com/dshills/lispedit/internal/input/key"

// prefixTree maps chord sequences to bindings. Interior nodes exist only
// while some bound sequence passes through them.
type prefixTree struct {
	root *prefixNode
}

type prefixNode struct {
	children map[key.Chord]*prefixNode
	binding  *binding
}

type binding struct {
	seq    key.Sequence
	name   string
	action Action
}

func newPrefixTree() *prefixTree {
	return &prefixTree{root: newPrefixNode()}
}

func newPrefixNode() *prefixNode {
	return &prefixNode{children: make(map[key.Chord]*prefixNode)}
}

// insert stores b at the node for its sequence, returning the binding it
// replaced, if any.
func (t *prefixTree) insert(b *binding) *binding {
	node := t.root
	for _, c := range b.seq {
		child, ok := node.children[c]
		if !ok {
			child = newPrefixNode()
			node.children[c] = child
		}
		node = child
	}
	old := node.binding
	node.binding = b
	return old
}

// remove deletes the binding at seq and prunes nodes left empty.
func (t *prefixTree) remove(seq key.Sequence) *binding {
	if len(seq) == 0 {
		return nil
	}

	path := make([]*prefixNode, 0, len(seq)+1)
	path = append(path, t.root)
	node := t.root
	for _, c := range seq {
		child, ok := node.children[c]
		if !ok {
			return nil
		}
		path = append(path, child)
		node = child
	}

	old := node.binding
	node.binding = nil

	for i := len(path) - 1; i > 0; i-- {
		current := path[i]
		if current.binding != nil || len(current.children) > 0 {
			break
		}
		delete(path[i-1].children, seq[i-1])
	}
	return old
}

// find returns the node for seq, or nil when no bound sequence starts
// with it.
func (t *prefixTree) find(seq key.Sequence) *prefixNode {
	node := t.root
	for _, c := range seq {
		child, ok := node.children[c]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// walk visits every binding in the tree.
func (t *prefixTree) walk(fn func(*binding)) {
	var visit func(*prefixNode)
	visit = func(n *prefixNode) {
		if n.binding != nil {
			fn(n.binding)
		}
		for _, child := range n.children {
			visit(child)
		}
	}
	visit(t.root)
}
