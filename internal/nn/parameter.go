package nn

// Parameter is a trainable scalar, such as one weight or one bias.
//
// The value is read when a Scope binds the parameter into a graph. The
// gradient is written by the trainer after Backward and consumed by an
// optimizer.
//
// Example:
//
//	w := nn.NewParameter("layer0.neuron0.w0", 0.25)
//	idx := scope.Param(w)
//	...
//	w.SetGrad(scope.Grads([]*nn.Parameter{w})[0])
type Parameter struct {
	name  string  // Parameter name (e.g., "layer0.neuron1.b")
	value float64 // Current value
	grad  float64 // Gradient from the last training step
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current value.
func (p *Parameter) Value() float64 {
	return p.value
}

// SetValue replaces the current value. Graphs already built from the old
// value are not affected.
func (p *Parameter) SetValue(v float64) {
	p.value = v
}

// Grad returns the gradient stored by the last SetGrad call.
func (p *Parameter) Grad() float64 {
	return p.grad
}

// SetGrad sets the gradient.
func (p *Parameter) SetGrad(grad float64) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = 0
}
