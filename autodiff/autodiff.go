// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Values live in an append-only Graph. Every construction method appends one
// node, computes its value immediately and returns the node's index. Backward
// then fills in the gradient of every node with respect to a chosen root.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    g := autodiff.New[float64]()
//	    x := g.Input(2)
//	    w := g.Add(g.Mul(x, x), x) // x² + x
//
//	    g.Backward(w)
//	    fmt.Println(g.Grad(x)) // 5
//	}
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Float is the set of element types a Graph can hold.
type Float = autodiff.Float

// Graph is an append-only arena of scalar nodes.
type Graph[T Float] = autodiff.Graph[T]

// Node is a read-only view of one graph node.
type Node[T Float] = autodiff.Node[T]

// OpKind identifies the operation that produced a node.
type OpKind = autodiff.OpKind

// Operation kinds.
const (
	OpInput = autodiff.OpInput
	OpAdd   = autodiff.OpAdd
	OpSub   = autodiff.OpSub
	OpMul   = autodiff.OpMul
	OpDiv   = autodiff.OpDiv
	OpReLU  = autodiff.OpReLU
	OpTanh  = autodiff.OpTanh
	OpPow   = autodiff.OpPow
)

// ErrInvalidGraph is returned by Graph.Validate.
var ErrInvalidGraph = autodiff.ErrInvalidGraph

// New creates an empty graph.
//
// Example:
//
//	g := autodiff.New[float32]()
func New[T Float]() *Graph[T] {
	return autodiff.New[T]()
}
