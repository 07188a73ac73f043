// Package traceflat linearizes the inline-action tree of one applied
// transaction.
//
// The tree is copied into an arena in breadth-first order: every top-level
// action first, then their children grouped by parent in parent order, each
// group in dispatch order, and so on one depth at a time. Parents are recorded
// as arena indices, so a node's parent always sits at a lower index and has
// already been visited when the node itself is visited.
package traceflat

import (
	"errors"
	"fmt"

	"github.com/gabapcia/tracestream/internal/ledger"
)

// NoParent is the Parent index of top-level nodes.
const NoParent = -1

// Node is one action of the flattened tree.
type Node struct {
	// Index is the node's position in the arena.
	Index int

	// Parent is the arena index of the dispatching action, NoParent for
	// top-level actions.
	Parent int

	// Depth is 0 for top-level actions.
	Depth int

	// Trace points into the input tree. It is never nil.
	Trace *ledger.ActionTrace
}

// IsRoot reports whether the node is a top-level action.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

// Flatten returns every node of the tree rooted at roots, in visit order.
// The input is not modified.
func Flatten(roots []ledger.ActionTrace) []Node {
	nodes := make([]Node, 0, len(roots))
	for i := range roots {
		nodes = append(nodes, Node{
			Index:  len(nodes),
			Parent: NoParent,
			Trace:  &roots[i],
		})
	}

	// The arena doubles as the work queue: head walks it while children are
	// appended behind the current level.
	for head := 0; head < len(nodes); head++ {
		parent := nodes[head]
		for i := range parent.Trace.InlineTraces {
			nodes = append(nodes, Node{
				Index:  len(nodes),
				Parent: parent.Index,
				Depth:  parent.Depth + 1,
				Trace:  &parent.Trace.InlineTraces[i],
			})
		}
	}

	return nodes
}

// VisitFunc is called once per node. nodes is the whole arena so that the
// parent of n is nodes[n.Parent].
type VisitFunc func(nodes []Node, n Node) error

// Walk flattens roots and calls visit for every node in visit order. A failing
// visit does not stop the walk; all errors are returned joined, each annotated
// with the node position.
func Walk(roots []ledger.ActionTrace, visit VisitFunc) error {
	nodes := Flatten(roots)

	var errs []error
	for _, n := range nodes {
		if err := visit(nodes, n); err != nil {
			errs = append(errs, fmt.Errorf("action node %d (depth %d): %w", n.Index, n.Depth, err))
		}
	}

	return errors.Join(errs...)
}
