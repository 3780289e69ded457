package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// MSELoss appends mean((pred - target)²) to g and returns the loss node.
//
// preds and targets are node indices of equal, non-zero length. Targets are
// usually leaves created with Scope.Inputs.
func MSELoss(g *autodiff.Graph[float64], preds, targets []int) int {
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("nn: mse: %d predictions, %d targets", len(preds), len(targets)))
	}
	if len(preds) == 0 {
		panic("nn: mse: empty input")
	}

	sum := -1
	for i := range preds {
		sq := g.Pow(g.Sub(preds[i], targets[i]), 2)
		if sum < 0 {
			sum = sq
			continue
		}
		sum = g.Add(sum, sq)
	}

	if len(preds) == 1 {
		return sum
	}
	return g.Div(sum, g.Input(float64(len(preds))))
}
