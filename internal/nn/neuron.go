package nn

import (
	"fmt"
	"math/rand"
)

// Neuron computes act(b + Σ wᵢ·xᵢ).
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
	act     Activation
}

// NewNeuron creates a neuron with the given initial weights and bias.
// Parameters are named name.w0, name.w1, ..., name.b.
func NewNeuron(name string, weights []float64, bias float64, act Activation) *Neuron {
	ws := make([]*Parameter, len(weights))
	for i, w := range weights {
		ws[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), w)
	}
	return &Neuron{
		weights: ws,
		bias:    NewParameter(name+".b", bias),
		act:     act,
	}
}

// NewRandomNeuron creates a neuron with nin Xavier-initialized weights and a
// zero bias. fanOut is the width of the layer the neuron belongs to.
func NewRandomNeuron(name string, nin, fanOut int, act Activation, rng *rand.Rand) *Neuron {
	weights := make([]float64, nin)
	for i := range weights {
		weights[i] = Xavier(nin, fanOut, rng)
	}
	return NewNeuron(name, weights, 0, act)
}

// Forward appends the neuron's computation and returns a single output node.
// It panics if len(inputs) differs from the number of weights.
func (n *Neuron) Forward(s *Scope, inputs []int) []int {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	g := s.Graph()
	sum := s.Param(n.bias)
	for i, x := range inputs {
		prod := g.Mul(x, s.Param(n.weights[i]))
		sum = g.Add(sum, prod)
	}
	return []int{n.act.Apply(g, sum)}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Activation returns the neuron's activation.
func (n *Neuron) Activation() Activation {
	return n.act
}
