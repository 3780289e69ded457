package nn

import (
	"math"
	"math/rand"
)

// XavierBound returns the Xavier (Glorot) uniform bound sqrt(6/(fanIn+fanOut)).
func XavierBound(fanIn, fanOut int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}

// Xavier draws one weight from U(-bound, bound) with the Xavier bound.
//
// This initialization helps maintain variance of activations across layers.
func Xavier(fanIn, fanOut int, rng *rand.Rand) float64 {
	bound := XavierBound(fanIn, fanOut)
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return (rng.Float64()*2.0 - 1.0) * bound
}
