// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value float64) *Parameter {
	return nn.NewParameter(name, value)
}

// Scope binds parameters into a single graph for one forward pass.
type Scope = nn.Scope

// NewScope creates a scope over an empty graph.
func NewScope() *Scope {
	return nn.NewScope()
}

// Activation selects the non-linearity applied by a neuron.
type Activation = nn.Activation

// Supported activations.
const (
	Linear = nn.Linear
	ReLU   = nn.ReLU
	Tanh   = nn.Tanh
)

// ParseActivation returns the activation with the given name.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Layers

// Neuron computes act(b + Σ wᵢ·xᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with explicit initial weights and bias.
func NewNeuron(name string, weights []float64, bias float64, act Activation) *Neuron {
	return nn.NewNeuron(name, weights, bias, act)
}

// Layer is a set of neurons reading the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout Xavier-initialized neurons.
//
// Example:
//
//	layer := nn.NewLayer("hidden", 3, 4, nn.Tanh, rng)
func NewLayer(name string, nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(name, nin, nout, act, rng)
}

// Containers

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with one layer per entry of sizes.
//
// Example:
//
//	mlp := nn.NewMLP(3, []int{4, 4, 1}, nn.Tanh, nn.Linear, rng)
func NewMLP(nin int, sizes []int, hidden, output Activation, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, sizes, hidden, output, rng)
}

// Loss

// MSELoss appends mean((pred - target)²) to g and returns the loss node.
func MSELoss(g *autodiff.Graph[float64], preds, targets []int) int {
	return nn.MSELoss(g, preds, targets)
}

// Initialization

// Xavier draws one weight from the Xavier uniform distribution.
func Xavier(fanIn, fanOut int, rng *rand.Rand) float64 {
	return nn.Xavier(fanIn, fanOut, rng)
}

// NumParameters returns the number of trainable parameters in m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}
