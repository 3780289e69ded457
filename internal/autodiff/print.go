package autodiff

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fprint writes the subgraph reachable from root as an indented tree.
//
// Each line has the form "idx: value (op) [grad=g]". Operands are listed
// under the node that uses them. A node reached a second time, through
// another consumer, is not printed again.
//
// Example for x=2, w = x*x + x after Backward(w):
//
//	2: 6.0000 (+) [grad=1.0000]
//	|-- 1: 4.0000 (*) [grad=1.0000]
//	|   |-- 0: 2.0000 (input) [grad=5.0000]
func (g *Graph[T]) Fprint(w io.Writer, root int) error {
	g.at(root)

	bw := bufio.NewWriter(w)
	visited := make(map[int]bool)
	g.printNode(bw, root, nil, visited)
	return bw.Flush()
}

// Sprint returns the tree printed by Fprint as a string.
func (g *Graph[T]) Sprint(root int) string {
	var sb strings.Builder
	_ = g.Fprint(&sb, root) // strings.Builder never fails
	return sb.String()
}

// printNode prints node idx; lastFlags records, for each ancestor below the
// root, whether it was the last operand of its parent.
func (g *Graph[T]) printNode(w *bufio.Writer, idx int, lastFlags []bool, visited map[int]bool) {
	if visited[idx] {
		return
	}
	visited[idx] = true

	if depth := len(lastFlags); depth > 0 {
		for _, last := range lastFlags[:depth-1] {
			if last {
				w.WriteString("    ")
			} else {
				w.WriteString("|   ")
			}
		}
		if lastFlags[depth-1] {
			w.WriteString("|__ ")
		} else {
			w.WriteString("|-- ")
		}
	}

	n := &g.nodes[idx]
	fmt.Fprintf(w, "%d: %.4f (%s) [grad=%.4f]\n", idx, n.value, n.op, n.grad)

	operands := n.Operands()
	for i, p := range operands {
		flags := append(lastFlags[:len(lastFlags):len(lastFlags)], i == len(operands)-1)
		g.printNode(w, p, flags, visited)
	}
}
