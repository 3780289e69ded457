// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's gradient (set by the trainer after
// Backward) and update its value in place.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{
//	    LR: 0.01,
//	})
//
//	for epoch := range epochs {
//	    s := nn.NewScope()
//	    loss := nn.MSELoss(s.Graph(), model.Forward(s, s.Inputs(x)), s.Inputs(y))
//	    s.Graph().Backward(loss)
//	    for i, g := range s.Grads(params) {
//	        params[i].SetGrad(g)
//	    }
//
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/born-ml/scalargrad/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies the current parameter gradients to the parameter values.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// gradients collects the gradient of every parameter.
func gradients(params []*nn.Parameter) []float64 {
	out := make([]float64, len(params))
	for i, p := range params {
		out[i] = p.Grad()
	}
	return out
}

// values collects the value of every parameter.
func values(params []*nn.Parameter) []float64 {
	out := make([]float64, len(params))
	for i, p := range params {
		out[i] = p.Value()
	}
	return out
}

// setValues writes vs back into params.
func setValues(params []*nn.Parameter, vs []float64) {
	for i, p := range params {
		p.SetValue(vs[i])
	}
}

func zeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
