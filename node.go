// file:radix/node.go
package radix

//---------------------
// Node Store
//---------------------

// nodeID is a stable index into the tree's node arena.
type nodeID int32

const (
	nilNode nodeID = -1
	rootID  nodeID = 0
)

// node is a single vertex of the tree. The prefix is the full cumulative
// path from the root, not a local edge suffix, so every descent decision
// can compare it against the whole lookup key.
type node[T any] struct {
	prefix   []byte
	value    T
	hasValue bool
	children map[byte]nodeID
	parent   nodeID
	inEdge   byte // label of the edge from parent into this node
}

// child returns the outgoing edge labeled c, if any.
func (n *node[T]) child(c byte) (nodeID, bool) {
	id, ok := n.children[c]
	return id, ok
}

// setChild links (or redirects) the outgoing edge labeled c.
func (n *node[T]) setChild(c byte, id nodeID) {
	if n.children == nil {
		n.children = make(map[byte]nodeID)
	}
	n.children[c] = id
}

//---------------------
// Arena Helpers
//---------------------

// node resolves an arena id. Pointers become stale after the next
// newNode call; re-resolve after any structural edit.
func (t *Tree[T]) node(id nodeID) *node[T] {
	return &t.nodes[id]
}

// newNode appends a valueless node to the arena and returns its id.
// The prefix is copied.
func (t *Tree[T]) newNode(prefix []byte, parent nodeID, inEdge byte) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[T]{
		prefix: copyBytes(prefix),
		parent: parent,
		inEdge: inEdge,
	})
	return id
}

//---------------------
// Utilities
//---------------------

// copyBytes returns a new copy of the byte slice.
func copyBytes(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}
