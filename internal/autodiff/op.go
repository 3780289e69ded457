package autodiff

import "fmt"

// OpKind identifies the operation that produced a node.
//
// The set is closed. Every kind has a forward formula applied at construction
// time and a local-derivative rule applied by Backward:
//   - Input: leaf, no operands
//   - Add, Sub, Mul, Div: two operands, order preserved
//   - ReLU, Tanh: one operand
//   - Pow: one operand plus a constant exponent stored on the node
type OpKind uint8

// Operation kinds.
const (
	OpInput OpKind = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpReLU
	OpTanh
	OpPow
)

// String returns the short symbol used by the tree printer.
func (k OpKind) String() string {
	switch k {
	case OpInput:
		return "input"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpReLU:
		return "relu"
	case OpTanh:
		return "tanh"
	case OpPow:
		return "pow"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Arity returns the number of operands a node of this kind has.
func (k OpKind) Arity() int {
	switch k {
	case OpAdd, OpSub, OpMul, OpDiv:
		return 2
	case OpReLU, OpTanh, OpPow:
		return 1
	default:
		return 0
	}
}

// IsBinary reports whether k is accepted by Graph.Combine.
func (k OpKind) IsBinary() bool {
	return k.Arity() == 2
}

// IsActivation reports whether k is accepted by Graph.Unary.
func (k OpKind) IsActivation() bool {
	return k == OpReLU || k == OpTanh
}

// Node is a single value in the computation graph.
//
// Operands are indices into the owning Graph. For binary kinds the first
// operand is the left side (minuend, dividend) and the second the right side.
type Node[T Float] struct {
	value    T
	grad     T
	op       OpKind
	exponent T      // OpPow only
	operands [2]int // first Arity() entries are meaningful
}

// Value returns the forward value computed when the node was created.
func (n Node[T]) Value() T { return n.value }

// Grad returns the gradient accumulated by the last Backward call.
func (n Node[T]) Grad() T { return n.grad }

// Op returns the operation that produced the node.
func (n Node[T]) Op() OpKind { return n.op }

// Exponent returns the constant exponent of a Pow node, or zero otherwise.
func (n Node[T]) Exponent() T { return n.exponent }

// Operands returns the operand indices in order. Leaves return an empty slice.
func (n Node[T]) Operands() []int {
	ops := n.operands
	return ops[:n.op.Arity()]
}
