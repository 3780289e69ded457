package autodiff

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph is returned by Validate when a node breaks an arena invariant.
var ErrInvalidGraph = errors.New("invalid graph")

// Validate checks that every node has a known operation and that each of its
// operands refers to an earlier node.
//
// Graphs built only through the construction methods always validate; the
// check exists for diagnostics and tests.
func (g *Graph[T]) Validate() error {
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.op > OpPow {
			return fmt.Errorf("%w: node %d: unknown operation %d", ErrInvalidGraph, i, uint8(n.op))
		}
		for _, p := range n.Operands() {
			if p < 0 || p >= i {
				return fmt.Errorf("%w: node %d (%s): operand %d is not an earlier node", ErrInvalidGraph, i, n.op, p)
			}
		}
	}
	return nil
}

// Ancestors returns, in ascending order, the indices of root and every node
// with a forward path to root.
func (g *Graph[T]) Ancestors(root int) []int {
	g.at(root)

	reached := make([]bool, root+1)
	reached[root] = true
	count := 0
	for i := root; i >= 0; i-- {
		if !reached[i] {
			continue
		}
		count++
		for _, p := range g.nodes[i].Operands() {
			reached[p] = true
		}
	}

	out := make([]int, 0, count)
	for i, ok := range reached {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
