// Package nn builds neural networks on top of the autodiff graph.
//
// This package provides building blocks for small networks:
//   - Module interface: base interface for all NN components
//   - Parameter: trainable scalar
//   - Scope: binds parameters into one graph for one forward pass
//   - Neuron, Layer: weighted sum plus activation
//   - Sequential, MLP: containers for stacking layers
//   - MSELoss: mean squared error
//
// Modules only call the graph's construction methods; they never touch
// gradients directly.
package nn

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: append the module's computation to the scope's graph
//   - Parameters: return all trainable parameters
//
// Modules can be composed to build larger networks:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("l0", 3, 4, nn.Tanh, rng),
//	    nn.NewLayer("l1", 4, 1, nn.Linear, rng),
//	)
type Module interface {
	// Forward maps input node indices to output node indices.
	Forward(s *Scope, inputs []int) []int

	// Parameters returns all trainable parameters of this module,
	// including those of nested modules, in a stable order.
	Parameters() []*Parameter
}

// NumParameters returns the number of trainable parameters in m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}

// ZeroGrad clears the gradient of every parameter in m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
