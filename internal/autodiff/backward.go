package autodiff

import "math"

// Backward computes d(root)/d(node) for every node in the graph.
//
// Algorithm:
//  1. Reset every gradient to zero
//  2. Seed the root with 1
//  3. Walk the arena from the last node to the first, adding each node's
//     local-derivative contribution into its operands
//
// Every node that can write into grad(n) was created after n, so it is
// visited before n and grad(n) is complete by the time n propagates. Nodes
// with no path to root end with a zero gradient. Nodes appended after this
// call are not part of it.
//
// Backward is a full recomputation; calling it twice on an unchanged graph
// yields identical gradients.
func (g *Graph[T]) Backward(root int) {
	g.at(root)

	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
	g.nodes[root].grad = 1

	for i := len(g.nodes) - 1; i >= 0; i-- {
		g.propagate(i)
	}
}

// propagate adds node i's chain-rule contributions into its operands.
func (g *Graph[T]) propagate(i int) {
	n := &g.nodes[i]
	grad := n.grad

	switch n.op {
	case OpInput:
		return

	case OpAdd:
		a, b := &g.nodes[n.operands[0]], &g.nodes[n.operands[1]]
		a.grad += grad
		b.grad += grad

	case OpSub:
		a, b := &g.nodes[n.operands[0]], &g.nodes[n.operands[1]]
		a.grad += grad
		b.grad -= grad

	case OpMul:
		a, b := &g.nodes[n.operands[0]], &g.nodes[n.operands[1]]
		// Read both values before writing; a and b may be the same node.
		va, vb := a.value, b.value
		a.grad += vb * grad
		b.grad += va * grad

	case OpDiv:
		a, b := &g.nodes[n.operands[0]], &g.nodes[n.operands[1]]
		va, vb := a.value, b.value
		a.grad += grad / vb
		b.grad += -(va * grad) / (vb * vb)

	case OpReLU:
		a := &g.nodes[n.operands[0]]
		if a.value > 0 {
			a.grad += grad
		}

	case OpTanh:
		a := &g.nodes[n.operands[0]]
		y := n.value
		a.grad += (1 - y*y) * grad

	case OpPow:
		a := &g.nodes[n.operands[0]]
		e := n.exponent
		d := T(float64(e) * math.Pow(float64(a.value), float64(e)-1))
		a.grad += d * grad
	}
}
