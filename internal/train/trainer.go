// Package train fits an nn.Module to a dataset by gradient descent.
//
// Every sample of a batch is evaluated in its own Scope, and so in its own
// graph. Samples can therefore run on different goroutines; their parameter
// gradients are averaged before the optimizer step.
package train

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
	"github.com/born-ml/scalargrad/internal/parallel"
)

// Common errors.
var (
	ErrEmptyBatch    = errors.New("empty batch")
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Config controls how a Trainer evaluates batches.
type Config struct {
	Parallel parallel.Config // Per-sample parallelism.
}

// DefaultConfig returns parallel per-sample evaluation.
func DefaultConfig() Config {
	return Config{Parallel: parallel.DefaultConfig()}
}

// Trainer minimizes the mean squared error of a model with an optimizer.
type Trainer struct {
	model  nn.Module
	opt    optim.Optimizer
	params []*nn.Parameter
	cfg    Config
}

// NewTrainer creates a trainer. The optimizer must have been created over
// model.Parameters().
func NewTrainer(model nn.Module, opt optim.Optimizer, cfg Config) *Trainer {
	return &Trainer{
		model:  model,
		opt:    opt,
		params: model.Parameters(),
		cfg:    cfg,
	}
}

// sampleResult is the outcome of one forward and backward pass.
type sampleResult struct {
	loss  float64
	grads []float64
	err   error
}

// Step runs one optimization step over the batch and returns its mean loss
// before the update.
//
// xs[i] is fed to the model and compared with ys[i]. The model panics if
// an input has the wrong width; a target whose width differs from the model
// output is reported as ErrShapeMismatch.
func (t *Trainer) Step(xs, ys [][]float64) (float64, error) {
	if err := checkBatch(xs, ys); err != nil {
		return 0, err
	}

	results := parallel.Map(len(xs), func(i int) sampleResult {
		return t.sample(xs[i], ys[i])
	}, t.cfg.Parallel)

	total := make([]float64, len(t.params))
	var lossSum float64
	for i, r := range results {
		if r.err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, r.err)
		}
		floats.Add(total, r.grads)
		lossSum += r.loss
	}

	n := float64(len(xs))
	floats.Scale(1/n, total)
	for i, p := range t.params {
		p.SetGrad(total[i])
	}

	t.opt.Step()
	t.opt.ZeroGrad()

	return lossSum / n, nil
}

// Fit runs Step for the given number of epochs and returns the loss of the
// last epoch. onEpoch, if not nil, is called after every epoch.
func (t *Trainer) Fit(xs, ys [][]float64, epochs int, onEpoch func(epoch int, loss float64)) (float64, error) {
	var loss float64
	for epoch := 0; epoch < epochs; epoch++ {
		var err error
		loss, err = t.Step(xs, ys)
		if err != nil {
			return 0, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if onEpoch != nil {
			onEpoch(epoch, loss)
		}
	}
	return loss, nil
}

// Predict runs a forward pass and returns the output values.
func (t *Trainer) Predict(x []float64) []float64 {
	s := nn.NewScope()
	return s.Values(t.model.Forward(s, s.Inputs(x)))
}

// Loss returns the mean loss over the batch without updating parameters.
func (t *Trainer) Loss(xs, ys [][]float64) (float64, error) {
	if err := checkBatch(xs, ys); err != nil {
		return 0, err
	}

	var sum float64
	for i := range xs {
		r := t.sample(xs[i], ys[i])
		if r.err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, r.err)
		}
		sum += r.loss
	}
	return sum / float64(len(xs)), nil
}

func (t *Trainer) sample(x, y []float64) sampleResult {
	s := nn.NewScope()
	g := s.Graph()

	out := t.model.Forward(s, s.Inputs(x))
	if len(out) != len(y) {
		return sampleResult{err: fmt.Errorf("%w: model has %d outputs, target has %d", ErrShapeMismatch, len(out), len(y))}
	}

	loss := nn.MSELoss(g, out, s.Inputs(y))
	g.Backward(loss)

	return sampleResult{
		loss:  g.Value(loss),
		grads: s.Grads(t.params),
	}
}

func checkBatch(xs, ys [][]float64) error {
	if len(xs) == 0 {
		return ErrEmptyBatch
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrShapeMismatch, len(xs), len(ys))
	}
	return nil
}
