package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
)

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	param := nn.NewParameter("x", 2.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	param.SetGrad(1.0)
	optimizer.Step()

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, param.Value(), 1e-12)
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	param := nn.NewParameter("x", 1.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	param.SetGrad(1.0)
	optimizer.Step()
	// v = 1, x = 1 - 0.1 = 0.9
	assert.InDelta(t, 0.9, param.Value(), 1e-12)

	optimizer.Step()
	// v = 0.9 + 1 = 1.9, x = 0.9 - 0.19 = 0.71
	assert.InDelta(t, 0.71, param.Value(), 1e-12)
}

func TestSGD_Defaults(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())

	optimizer.SetLR(0.5)
	assert.Equal(t, 0.5, optimizer.GetLR())
	optimizer.Step() // no parameters is a no-op
}

// TestSGD_MinimizesQuadratic tests convergence on f(x) = (x - 3)².
func TestSGD_MinimizesQuadratic(t *testing.T) {
	param := nn.NewParameter("x", 0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	for i := 0; i < 200; i++ {
		s := nn.NewScope()
		g := s.Graph()
		loss := g.Pow(g.Sub(s.Param(param), g.Input(3)), 2)
		g.Backward(loss)
		param.SetGrad(s.Grads([]*nn.Parameter{param})[0])

		optimizer.Step()
		optimizer.ZeroGrad()
	}

	assert.InDelta(t, 3.0, param.Value(), 1e-6)
	assert.Equal(t, 0.0, param.Grad())
}

// TestAdam_FirstStep tests that the first bias-corrected step has size lr.
func TestAdam_FirstStep(t *testing.T) {
	a := nn.NewParameter("a", 1.0)
	b := nn.NewParameter("b", 1.0)
	optimizer := optim.NewAdam([]*nn.Parameter{a, b}, optim.AdamConfig{LR: 0.01})

	a.SetGrad(5.0)
	b.SetGrad(-0.001)
	optimizer.Step()

	// m̂ = g, v̂ = g², so the step is lr * sign(g) up to eps.
	assert.InDelta(t, 0.99, a.Value(), 1e-6)
	assert.InDelta(t, 1.01, b.Value(), 1e-4)
}

func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())

	optimizer.SetLR(0.1)
	assert.Equal(t, 0.1, optimizer.GetLR())
}

// TestAdam_MinimizesQuadratic tests convergence on f(x, y) = x² + 10(y - 1)².
func TestAdam_MinimizesQuadratic(t *testing.T) {
	x := nn.NewParameter("x", 2)
	y := nn.NewParameter("y", -2)
	params := []*nn.Parameter{x, y}
	optimizer := optim.NewAdam(params, optim.AdamConfig{LR: 0.05})

	for i := 0; i < 2000; i++ {
		s := nn.NewScope()
		g := s.Graph()
		fx := g.Pow(s.Param(x), 2)
		fy := g.Mul(g.Input(10), g.Pow(g.Sub(s.Param(y), g.Input(1)), 2))
		g.Backward(g.Add(fx, fy))

		for j, grad := range s.Grads(params) {
			params[j].SetGrad(grad)
		}
		optimizer.Step()
		optimizer.ZeroGrad()
	}

	require.False(t, math.IsNaN(x.Value()))
	assert.InDelta(t, 0.0, x.Value(), 5e-2)
	assert.InDelta(t, 1.0, y.Value(), 5e-2)
}

func TestOptimizer_Interface(t *testing.T) {
	var _ optim.Optimizer = optim.NewSGD(nil, optim.SGDConfig{})
	var _ optim.Optimizer = optim.NewAdam(nil, optim.AdamConfig{})
}
