package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Activation selects the non-linearity applied after a weighted sum.
type Activation uint8

// Supported activations.
const (
	Linear Activation = iota // identity
	ReLU                     // max(0, x)
	Tanh                     // tanh(x)
)

// Apply appends the activation of node x to g and returns the result.
// Linear returns x unchanged.
func (a Activation) Apply(g *autodiff.Graph[float64], x int) int {
	switch a {
	case Linear:
		return x
	case ReLU:
		return g.ReLU(x)
	case Tanh:
		return g.Tanh(x)
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", uint8(a)))
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "linear"
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// ParseActivation returns the activation with the given name.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "linear", "":
		return Linear, nil
	case "relu":
		return ReLU, nil
	case "tanh":
		return Tanh, nil
	default:
		return 0, fmt.Errorf("nn: unknown activation %q", name)
	}
}
