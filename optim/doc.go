// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	model := nn.NewMLP(3, []int{4, 1}, nn.Tanh, nn.Linear, rng)
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01})
//
//	// after setting each parameter's gradient:
//	optimizer.Step()
//	optimizer.ZeroGrad()
package optim
