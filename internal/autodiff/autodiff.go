// Package autodiff implements reverse-mode automatic differentiation over
// scalar values stored in an append-only arena.
//
// Architecture:
//   - Graph: owns every Node; a node's identity is its index
//   - Construction methods (Input, Add, Mul, Tanh, Pow, ...) append a node and
//     compute its forward value immediately
//   - Backward: walks the arena in reverse creation order and accumulates
//     gradients with the chain rule
//
// Operands must exist before they are referenced, so every operand index is
// smaller than the index of the node using it. Creation order is therefore a
// topological order and Backward needs no sort and no visited set.
//
// Usage:
//
//	g := autodiff.New[float64]()
//	x := g.Input(2)
//	z := g.Mul(x, x) // x²
//	w := g.Add(z, x) // x² + x
//	g.Backward(w)
//	fmt.Println(g.Grad(x)) // 2x + 1 = 5
//
// A Graph is not safe for concurrent use. Independent graphs can be driven
// from different goroutines.
package autodiff

import (
	"fmt"
	"math"
)

// Float is the set of element types a Graph can hold.
type Float interface {
	~float32 | ~float64
}

// Graph is an append-only arena of nodes.
//
// Indices are assigned sequentially from 0 and stay valid for the lifetime of
// the graph. Invalid indices passed to any method cause a panic.
type Graph[T Float] struct {
	nodes []Node[T]
}

// New creates an empty graph.
func New[T Float]() *Graph[T] {
	return &Graph[T]{
		nodes: make([]Node[T], 0, 64), // Pre-allocate for common case
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Clear discards every node while keeping the allocated capacity.
// Indices returned before Clear must not be used afterwards.
func (g *Graph[T]) Clear() {
	g.nodes = g.nodes[:0]
}

// Input appends a leaf node holding v.
func (g *Graph[T]) Input(v T) int {
	return g.push(Node[T]{value: v, op: OpInput})
}

// Add appends a + b.
func (g *Graph[T]) Add(a, b int) int {
	return g.Combine(OpAdd, a, b)
}

// Sub appends a - b.
func (g *Graph[T]) Sub(a, b int) int {
	return g.Combine(OpSub, a, b)
}

// Mul appends a * b.
func (g *Graph[T]) Mul(a, b int) int {
	return g.Combine(OpMul, a, b)
}

// Div appends a / b. Division by zero follows IEEE-754.
func (g *Graph[T]) Div(a, b int) int {
	return g.Combine(OpDiv, a, b)
}

// Combine appends a binary node. op must be one of OpAdd, OpSub, OpMul, OpDiv.
func (g *Graph[T]) Combine(op OpKind, a, b int) int {
	va, vb := g.at(a).value, g.at(b).value

	var v T
	switch op {
	case OpAdd:
		v = va + vb
	case OpSub:
		v = va - vb
	case OpMul:
		v = va * vb
	case OpDiv:
		v = va / vb
	default:
		panic(fmt.Sprintf("autodiff: combine: %s is not a binary operation", op))
	}

	return g.push(Node[T]{value: v, op: op, operands: [2]int{a, b}})
}

// ReLU appends max(0, a).
func (g *Graph[T]) ReLU(a int) int {
	return g.Unary(OpReLU, a)
}

// Tanh appends tanh(a).
func (g *Graph[T]) Tanh(a int) int {
	return g.Unary(OpTanh, a)
}

// Unary appends an activation node. op must be OpReLU or OpTanh.
func (g *Graph[T]) Unary(op OpKind, a int) int {
	x := g.at(a).value

	var v T
	switch op {
	case OpReLU:
		// NaN is passed through rather than clamped to zero.
		if x > 0 || math.IsNaN(float64(x)) {
			v = x
		}
	case OpTanh:
		v = T(math.Tanh(float64(x)))
	default:
		panic(fmt.Sprintf("autodiff: unary: %s is not an activation", op))
	}

	return g.push(Node[T]{value: v, op: op, operands: [2]int{a}})
}

// Pow appends a^exponent. The exponent is a constant, not a node.
func (g *Graph[T]) Pow(a int, exponent T) int {
	v := T(math.Pow(float64(g.at(a).value), float64(exponent)))
	return g.push(Node[T]{value: v, op: OpPow, exponent: exponent, operands: [2]int{a}})
}

// Node returns a copy of node i.
func (g *Graph[T]) Node(i int) Node[T] {
	return *g.at(i)
}

// Value returns the forward value of node i.
func (g *Graph[T]) Value(i int) T {
	return g.at(i).value
}

// Grad returns the gradient of node i from the last Backward call.
func (g *Graph[T]) Grad(i int) T {
	return g.at(i).grad
}

// Read returns the value and gradient of node i.
func (g *Graph[T]) Read(i int) (value, grad T) {
	n := g.at(i)
	return n.value, n.grad
}

// SetValue overwrites the value of node i.
//
// Nodes already built from i keep their old values; rebuild them if they
// must reflect the change. Gradients computed afterwards use the new value for
// i together with the stale downstream values.
func (g *Graph[T]) SetValue(i int, v T) {
	g.at(i).value = v
}

func (g *Graph[T]) push(n Node[T]) int {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	return idx
}

// at returns node i or panics if i is out of range.
func (g *Graph[T]) at(i int) *Node[T] {
	if i < 0 || i >= len(g.nodes) {
		panic(fmt.Sprintf("autodiff: node index %d out of range [0, %d)", i, len(g.nodes)))
	}
	return &g.nodes[i]
}
