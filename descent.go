// file:radix/descent.go
package radix

//---------------------
// Matcher
//---------------------

// commonPrefixLen returns length of common prefix.
func commonPrefixLen(s1, s2 []byte) int {
	limit := min(len(s1), len(s2))
	var i int
	for ; i < limit; i++ {
		if s1[i] != s2[i] {
			break
		}
	}
	return i
}

//---------------------
// Descent Step
//---------------------

type stepKind int

const (
	stepNoMatch stepKind = iota // dead end, key cannot live below this node
	stepStay                    // this node is the best candidate for key
	stepDescend                 // continue into next
)

// descentStep is the tagged outcome of one descent decision. Using an
// explicit tag keeps "no match" distinct from any real node id.
type descentStep struct {
	kind stepKind
	next nodeID
}

// step decides the next move from the node at id toward key. The node's
// cumulative prefix is compared against the full key, never a re-sliced
// suffix of it.
func (t *Tree[T]) step(id nodeID, key []byte) descentStep {
	n := t.node(id)
	nl, kl := len(n.prefix), len(key)
	m := commonPrefixLen(n.prefix, key)

	switch {
	case nl > kl:
		// Node prefix is longer than the key. Stay when the key is fully
		// contained in it, whether or not this node is an exact terminus.
		if m < kl {
			return descentStep{kind: stepNoMatch}
		}
		return descentStep{kind: stepStay}

	case nl == kl:
		if m == kl {
			return descentStep{kind: stepStay}
		}
		return descentStep{kind: stepNoMatch}

	default: // nl < kl
		if m < nl {
			// Key diverges before exhausting the node's prefix.
			return descentStep{kind: stepNoMatch}
		}
		// Prefix fully consumed; follow the edge labeled by the first
		// byte of key past it, if one exists.
		if next, ok := n.child(key[nl]); ok {
			return descentStep{kind: stepDescend, next: next}
		}
		return descentStep{kind: stepNoMatch}
	}
}

//---------------------
// Walks
//---------------------

// bestNode walks from the root toward key and returns the deepest node
// compatible with it. Used for insertion placement; the root is always a
// valid fallback, so this never fails.
func (t *Tree[T]) bestNode(key []byte) nodeID {
	id := rootID
	for {
		s := t.step(id, key)
		if s.kind != stepDescend {
			return id
		}
		id = s.next
	}
}

// idealNode resolves key to the node covering it, or nilNode when no node
// does. A stay on a node whose prefix is longer than key still resolves:
// the walk does not distinguish "exact terminus" from "key exhausted
// inside a longer prefix".
func (t *Tree[T]) idealNode(key []byte) nodeID {
	id := rootID
	for {
		if len(key) == 0 {
			return id
		}
		s := t.step(id, key)
		switch s.kind {
		case stepStay:
			return id
		case stepDescend:
			id = s.next
		default:
			return nilNode
		}
	}
}
