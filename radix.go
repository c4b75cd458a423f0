// file:radix/radix.go

// Package radix implements a compressed prefix tree (radix trie) mapping
// byte-string keys to values of any type. Keys are treated as opaque byte
// sequences compared for equality only. The tree supports insertion and
// exact-match lookup; terms are never removed individually, only the whole
// structure is released at once.
package radix

import (
	"github.com/rs/zerolog"
)

//---------------------
// Tree
//---------------------

// Tree is a compressed prefix tree. Each node stores the full cumulative
// prefix from the root, so an edge carries only its single distinguishing
// label byte and splitting is a matter of rewiring one child slot.
//
// A Tree is not safe for concurrent use; callers must serialize access.
type Tree[T any] struct {
	nodes []node[T]
	size  int
	log   zerolog.Logger
}

// New creates a tree holding only the empty-prefix root.
func New[T any](opts ...Option) *Tree[T] {
	o := WithDefaults()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[T]{log: o.Logger}
	t.nodes = append(t.nodes, node[T]{parent: nilNode})
	return t
}

// Size returns the number of stored terms.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Destroy releases every node at once. The tree reverts to a fresh empty
// state and may be reused. Safe to call repeatedly; other Tree instances
// are unaffected.
func (t *Tree[T]) Destroy() {
	if t == nil {
		return
	}
	t.nodes = nil
	t.nodes = append(t.nodes, node[T]{parent: nilNode})
	t.size = 0
}

//---------------------
// Lookup
//---------------------

// Lookup returns the value stored for key. The boolean is false when no
// node covers the key or the covering node holds no value; a miss is a
// normal outcome, not an error.
func (t *Tree[T]) Lookup(key []byte) (*T, bool) {
	if t == nil {
		return nil, false
	}
	id := t.idealNode(key)
	if id == nilNode {
		return nil, false
	}
	if n := t.node(id); n.hasValue {
		return &n.value, true
	}
	return nil, false
}

//---------------------
// Insert
//---------------------

// Insert stores value under key. When the key diverges partway through an
// existing node's prefix, that node is split around the shared portion
// first. Re-inserting an existing key overwrites the stored value.
func (t *Tree[T]) Insert(key []byte, value T) {
	if t == nil {
		return
	}
	if len(key) == 0 {
		t.setValue(rootID, value)
		return
	}

	pid := t.bestNode(key)
	if m := commonPrefixLen(key, t.node(pid).prefix); pid != rootID && m < len(t.node(pid).prefix) {
		// The best node only partially matches; introduce a shared-prefix
		// ancestor and attach under it instead.
		pid = t.split(pid, m, key)
	}

	if len(t.node(pid).prefix) == len(key) {
		t.setValue(pid, value)
		return
	}
	t.attach(pid, key, value)
}

// setValue marks id as a terminus for its own prefix.
func (t *Tree[T]) setValue(id nodeID, value T) {
	n := t.node(id)
	if !n.hasValue {
		t.size++
	}
	n.value, n.hasValue = value, true
}

// attach creates a new leaf for key directly under pid, whose prefix must
// already be a strict prefix of key.
func (t *Tree[T]) attach(pid nodeID, key []byte, value T) nodeID {
	label := key[len(t.node(pid).prefix)]
	id := t.newNode(key, pid, label)
	t.node(pid).setChild(label, id)
	t.setValue(id, value)

	t.log.Debug().
		Bytes("key", key).
		Int32("node", int32(id)).
		Int32("parent", int32(pid)).
		Msg("attach")
	return id
}

// split inserts a valueless intermediate node above id, carrying the first
// commonLen bytes shared between key and the node's prefix. The incoming
// edge keeps its original label and is redirected to the intermediate;
// the old node is re-linked below it. Returns the intermediate's id.
func (t *Tree[T]) split(id nodeID, commonLen int, key []byte) nodeID {
	gid, inEdge := t.node(id).parent, t.node(id).inEdge
	mid := t.newNode(key[:commonLen], gid, inEdge)
	t.node(gid).setChild(inEdge, mid)

	label := t.node(id).prefix[commonLen]
	t.node(mid).setChild(label, id)
	n := t.node(id)
	n.parent, n.inEdge = mid, label

	t.log.Debug().
		Bytes("common", key[:commonLen]).
		Int32("node", int32(mid)).
		Int32("below", int32(id)).
		Msg("split")
	return mid
}
