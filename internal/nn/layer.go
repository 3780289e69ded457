package nn

import (
	"fmt"
	"math/rand"
)

// Layer is a set of neurons reading the same inputs. Its outputs are the
// neurons' outputs in order.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewRandomNeuron(fmt.Sprintf("%s.n%d", name, i), nin, nout, act, rng)
	}
	return &Layer{neurons: neurons}
}

// NewLayerFromNeurons creates a layer from existing neurons.
func NewLayerFromNeurons(neurons ...*Neuron) *Layer {
	return &Layer{neurons: neurons}
}

// Forward applies every neuron to inputs.
func (l *Layer) Forward(s *Scope, inputs []int) []int {
	out := make([]int, 0, len(l.neurons))
	for _, n := range l.neurons {
		out = append(out, n.Forward(s, inputs)...)
	}
	return out
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Size returns the number of neurons.
func (l *Layer) Size() int {
	return len(l.neurons)
}
