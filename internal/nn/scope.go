package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Scope is one forward pass: a graph plus the node each parameter was bound to.
//
// A parameter is bound to a leaf node the first time a module asks for it, so
// a parameter used in several places shares one node and Backward sums its
// contributions. Scopes are cheap; build one per sample and per goroutine.
type Scope struct {
	graph  *autodiff.Graph[float64]
	params map[*Parameter]int
}

// NewScope creates a scope over an empty graph.
func NewScope() *Scope {
	return &Scope{
		graph:  autodiff.New[float64](),
		params: make(map[*Parameter]int),
	}
}

// Graph returns the underlying graph.
func (s *Scope) Graph() *autodiff.Graph[float64] {
	return s.graph
}

// Param returns the node holding p's value, creating it on first use.
func (s *Scope) Param(p *Parameter) int {
	if idx, ok := s.params[p]; ok {
		return idx
	}
	idx := s.graph.Input(p.Value())
	s.params[p] = idx
	return idx
}

// Inputs appends one leaf per data value and returns their indices.
func (s *Scope) Inputs(xs []float64) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = s.graph.Input(x)
	}
	return out
}

// Values returns the forward values of the given nodes.
func (s *Scope) Values(nodes []int) []float64 {
	out := make([]float64, len(nodes))
	for i, idx := range nodes {
		out[i] = s.graph.Value(idx)
	}
	return out
}

// Grads returns the gradient of each parameter from the last Backward call.
// Parameters never bound in this scope get zero.
func (s *Scope) Grads(params []*Parameter) []float64 {
	out := make([]float64, len(params))
	for i, p := range params {
		if idx, ok := s.params[p]; ok {
			out[i] = s.graph.Grad(idx)
		}
	}
	return out
}

// Reset empties the graph and forgets every binding.
func (s *Scope) Reset() {
	s.graph.Clear()
	clear(s.params)
}
