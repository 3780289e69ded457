// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on top of autodiff.
//
// # Overview
//
// This package contains:
//   - Neuron, Layer: weighted sum plus activation
//   - Sequential, MLP: containers for stacking layers
//   - Activations: Linear, ReLU, Tanh
//   - Loss functions: MSELoss
//   - Utilities: Module interface, Parameter, Scope, Xavier initialization
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    model := nn.NewMLP(3, []int{4, 4, 1}, nn.Tanh, nn.Linear, rng)
//
//	    s := nn.NewScope()
//	    out := model.Forward(s, s.Inputs([]float64{2, 3, -1}))
//	    loss := nn.MSELoss(s.Graph(), out, s.Inputs([]float64{1}))
//	    s.Graph().Backward(loss)
//
//	    grads := s.Grads(model.Parameters())
//	}
//
// # Scopes
//
// A Scope is one forward pass. Parameters are bound to leaf nodes on first
// use, so a parameter read in several places receives the sum of all its
// gradient contributions. Use one Scope per goroutine.
package nn
