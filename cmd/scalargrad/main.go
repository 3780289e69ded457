// Package main provides the scalargrad CLI.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/config"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
	"github.com/born-ml/scalargrad/internal/train"
)

const version = "v0.1.0"

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "version":
		fmt.Printf("scalargrad %s\n", version)
	case "demo":
		demo()
	case "train":
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := runTrain(cfg); err != nil {
			log.Fatalf("Training failed: %v", err)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("scalargrad - reverse-mode autodiff on scalars")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate x*x + x at x = 2 and print the graph")
	fmt.Println("  train      Train a small MLP (configured via SCALARGRAD_* or .env)")
}

// demo builds w = x*x + x at x = 2 and prints the graph after Backward.
func demo() {
	g := autodiff.New[float64]()
	x := g.Input(2)
	z := g.Mul(x, x)
	w := g.Add(z, x)
	g.Backward(w)

	if err := g.Fprint(os.Stdout, w); err != nil {
		log.Fatalf("Failed to print graph: %v", err)
	}
	fmt.Printf("\ndw/dx = %.4f\n", g.Grad(x))
}

func runTrain(cfg config.TrainConfig) error {
	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := [][]float64{{1.0}, {-1.0}, {-1.0}, {1.0}}

	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(cfg.Seed))
	sizes := append(append([]int(nil), cfg.Hidden...), 1)
	model := nn.NewMLP(len(xs[0]), sizes, nn.Tanh, nn.Tanh, rng)

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case "adam":
		opt = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.LR})
	default:
		opt = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum})
	}

	fmt.Printf("Model: MLP %d -> %v (%d parameters)\n", len(xs[0]), sizes, nn.NumParameters(model))
	fmt.Printf("Optimizer: %s (lr=%.4f), epochs: %d\n\n", cfg.Optimizer, opt.GetLR(), cfg.Epochs)

	trainer := train.NewTrainer(model, opt, train.DefaultConfig())
	_, err := trainer.Fit(xs, ys, cfg.Epochs, func(epoch int, loss float64) {
		if epoch%10 == 0 || epoch == cfg.Epochs-1 {
			fmt.Printf("Epoch %4d/%d: loss=%.6f\n", epoch+1, cfg.Epochs, loss)
		}
	})
	if err != nil {
		return err
	}

	fmt.Println("\nPredictions:")
	for i, x := range xs {
		fmt.Printf("  %v -> %.4f (target %.1f)\n", x, trainer.Predict(x)[0], ys[i][0])
	}
	return nil
}
