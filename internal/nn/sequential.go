package nn

import (
	"fmt"
	"math/rand"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output nodes become the next module's input nodes.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("l0", 2, 8, nn.Tanh, rng),
//	    nn.NewLayer("l1", 8, 1, nn.Linear, rng),
//	)
//
//	out := model.Forward(scope, scope.Inputs(x))
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(scope *Scope, inputs []int) []int {
	out := inputs
	for _, module := range s.modules {
		out = module.Forward(scope, out)
	}
	return out
}

// Parameters returns all trainable parameters from all modules.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// StateDict returns a map of parameter names to values.
func (s *Sequential) StateDict() map[string]float64 {
	state := make(map[string]float64)
	for _, p := range s.Parameters() {
		state[p.Name()] = p.Value()
	}
	return state
}

// LoadStateDict sets parameter values from a state dictionary.
//
// Every parameter must be present; extra keys are ignored.
func (s *Sequential) LoadStateDict(state map[string]float64) error {
	params := s.Parameters()
	for _, p := range params {
		if _, ok := state[p.Name()]; !ok {
			return fmt.Errorf("load state: missing parameter %q", p.Name())
		}
	}
	for _, p := range params {
		p.SetValue(state[p.Name()])
	}
	return nil
}

// MLP is a multi-layer perceptron: a Sequential of Layers.
type MLP struct {
	*Sequential
	sizes []int
}

// NewMLP creates an MLP with nin inputs and one layer per entry of sizes.
//
// Hidden layers use the hidden activation, the last layer uses output.
// Panics if sizes is empty or contains a non-positive width.
//
// Example:
//
//	// 3 inputs, two hidden layers of 4 tanh units, 1 linear output
//	mlp := nn.NewMLP(3, []int{4, 4, 1}, nn.Tanh, nn.Linear, rng)
func NewMLP(nin int, sizes []int, hidden, output Activation, rng *rand.Rand) *MLP {
	if len(sizes) == 0 {
		panic("nn: mlp: at least one layer is required")
	}

	seq := NewSequential()
	in := nin
	for i, size := range sizes {
		if size <= 0 {
			panic(fmt.Sprintf("nn: mlp: layer %d has size %d", i, size))
		}
		act := hidden
		if i == len(sizes)-1 {
			act = output
		}
		seq.Add(NewLayer(fmt.Sprintf("l%d", i), in, size, act, rng))
		in = size
	}

	return &MLP{
		Sequential: seq,
		sizes:      append([]int(nil), sizes...),
	}
}

// Sizes returns the width of each layer.
func (m *MLP) Sizes() []int {
	return append([]int(nil), m.sizes...)
}
