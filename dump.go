// file:radix/dump.go
package radix

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes a visual tree representation to writer. Children print in
// edge-label order so output is stable.
func (t *Tree[T]) Dump(w io.Writer) {
	if t == nil || len(t.nodes) == 0 {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	t.dump(w, rootID, 0)
	fmt.Fprintln(w)
}

// dump writes a single node (recursive).
func (t *Tree[T]) dump(w io.Writer, id nodeID, depth int) {
	n := t.node(id)
	if n.hasValue {
		fmt.Fprintf(w, "%s TERM: Prefix: %q Value: %+v\n", dumpPre(depth), n.prefix, n.value)
	} else {
		fmt.Fprintf(w, "%s NODE: Prefix: %q\n", dumpPre(depth), n.prefix)
	}

	labels := make([]byte, 0, len(n.children))
	for c := range n.children {
		labels = append(labels, c)
	}
	slices.Sort(labels)
	for _, c := range labels {
		t.dump(w, n.children[c], depth+1)
	}
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__")
	return b.String()
}
