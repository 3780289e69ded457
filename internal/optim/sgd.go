package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalargrad/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params   []*nn.Parameter
	lr       float64
	momentum float64
	velocity []float64 // aligned with params
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
		velocity: make([]float64, len(params)),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	grads := gradients(s.params)
	vs := values(s.params)

	if s.momentum == 0 {
		floats.AddScaled(vs, -s.lr, grads)
	} else {
		floats.Scale(s.momentum, s.velocity)
		floats.Add(s.velocity, grads)
		floats.AddScaled(vs, -s.lr, s.velocity)
	}

	setValues(s.params, vs)
}

// ZeroGrad clears all parameter gradients.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR sets the learning rate, for schedules.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
