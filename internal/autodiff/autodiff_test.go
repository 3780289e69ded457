package autodiff_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

func TestGraph_ForwardBinary(t *testing.T) {
	pairs := [][2]float64{{2, 3}, {-1.5, 4}, {0, 7}, {1e-3, -2e3}}

	for _, p := range pairs {
		g := autodiff.New[float64]()
		a, b := g.Input(p[0]), g.Input(p[1])

		assert.InDelta(t, p[0]+p[1], g.Value(g.Add(a, b)), 1e-12)
		assert.InDelta(t, p[0]-p[1], g.Value(g.Sub(a, b)), 1e-12)
		assert.InDelta(t, p[0]*p[1], g.Value(g.Mul(a, b)), 1e-12)
		assert.InDelta(t, p[0]/p[1], g.Value(g.Div(a, b)), 1e-12)

		assert.Equal(t, g.Value(g.Add(a, b)), g.Value(g.Combine(autodiff.OpAdd, a, b)))
		assert.Equal(t, g.Value(g.Div(a, b)), g.Value(g.Combine(autodiff.OpDiv, a, b)))
	}
}

func TestGraph_ForwardUnary(t *testing.T) {
	g := autodiff.New[float64]()
	neg, zero, pos := g.Input(-2), g.Input(0), g.Input(1.5)

	assert.Equal(t, 0.0, g.Value(g.ReLU(neg)))
	assert.Equal(t, 0.0, g.Value(g.ReLU(zero)))
	assert.Equal(t, 1.5, g.Value(g.Unary(autodiff.OpReLU, pos)))

	assert.InDelta(t, math.Tanh(-2), g.Value(g.Tanh(neg)), 1e-12)
	assert.InDelta(t, math.Tanh(1.5), g.Value(g.Unary(autodiff.OpTanh, pos)), 1e-12)

	p := g.Pow(pos, 3)
	assert.InDelta(t, 3.375, g.Value(p), 1e-12)
	assert.Equal(t, 3.0, g.Node(p).Exponent())
	assert.Equal(t, autodiff.OpPow, g.Node(p).Op())
}

func TestGraph_IndicesAndOperands(t *testing.T) {
	g := autodiff.New[float64]()
	require.Equal(t, 0, g.Len())

	a := g.Input(5)
	b := g.Input(3)
	d := g.Sub(b, a)

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, d)
	assert.Equal(t, 3, g.Len())

	// Order is preserved for non-commutative ops.
	assert.Equal(t, []int{b, a}, g.Node(d).Operands())
	assert.Equal(t, -2.0, g.Value(d))
	assert.Empty(t, g.Node(a).Operands())
	assert.Equal(t, autodiff.OpInput, g.Node(a).Op())
}

func TestGraph_TopologicalSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := autodiff.New[float64]()
	for i := 0; i < 4; i++ {
		g.Input(rng.Float64()*2 - 1)
	}

	for i := 0; i < 500; i++ {
		a := rng.Intn(g.Len())
		b := rng.Intn(g.Len())
		switch rng.Intn(7) {
		case 0:
			g.Add(a, b)
		case 1:
			g.Sub(a, b)
		case 2:
			g.Mul(a, b)
		case 3:
			g.Div(a, b)
		case 4:
			g.ReLU(a)
		case 5:
			g.Tanh(a)
		default:
			g.Pow(a, 2)
		}
	}

	for i := 0; i < g.Len(); i++ {
		for _, p := range g.Node(i).Operands() {
			require.Less(t, p, i, "node %d references operand %d", i, p)
		}
	}
	require.NoError(t, g.Validate())

	// Backward over an arbitrary graph must terminate and touch every ancestor.
	g.Backward(g.Len() - 1)
	assert.Equal(t, 1.0, g.Grad(g.Len()-1))
}

// TestBackward_Accumulation tests x² + x at x = 2, where x feeds two consumers.
func TestBackward_Accumulation(t *testing.T) {
	g := autodiff.New[float64]()
	x := g.Input(2)
	z := g.Combine(autodiff.OpMul, x, x)
	w := g.Combine(autodiff.OpAdd, z, x)

	require.Equal(t, 4.0, g.Value(z))
	require.Equal(t, 6.0, g.Value(w))

	g.Backward(w)

	assert.Equal(t, 5.0, g.Grad(x))
	assert.Equal(t, 1.0, g.Grad(z))
	assert.Equal(t, 1.0, g.Grad(w))
}

func TestBackward_PowerRule(t *testing.T) {
	g := autodiff.New[float64]()
	x := g.Input(3)
	y := g.Pow(x, 2.0)

	require.Equal(t, 9.0, g.Value(y))
	g.Backward(y)

	assert.Equal(t, 6.0, g.Grad(x))
}

func TestBackward_ReLUBoundary(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"positive", 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := autodiff.New[float64]()
			x := g.Input(tt.x)
			y := g.Unary(autodiff.OpReLU, x)
			g.Backward(y)
			if got := g.Grad(x); got != tt.want {
				t.Errorf("grad(x) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBackward_LocalRules(t *testing.T) {
	g := autodiff.New[float64]()
	a := g.Input(6)
	b := g.Input(-2)

	sub := g.Sub(a, b)
	g.Backward(sub)
	assert.Equal(t, 1.0, g.Grad(a))
	assert.Equal(t, -1.0, g.Grad(b))

	div := g.Div(a, b)
	g.Backward(div)
	assert.InDelta(t, 1/-2.0, g.Grad(a), 1e-12)
	assert.InDelta(t, -6/4.0, g.Grad(b), 1e-12)

	mul := g.Mul(a, b)
	g.Backward(mul)
	assert.Equal(t, -2.0, g.Grad(a))
	assert.Equal(t, 6.0, g.Grad(b))

	th := g.Tanh(b)
	g.Backward(th)
	y := math.Tanh(-2)
	assert.InDelta(t, 1-y*y, g.Grad(b), 1e-12)
	assert.Equal(t, 0.0, g.Grad(a))
}

func TestBackward_Idempotent(t *testing.T) {
	g := autodiff.New[float64]()
	a := g.Input(0.7)
	b := g.Input(-1.3)
	c := g.Tanh(g.Add(g.Mul(a, b), g.Pow(a, 3)))
	root := g.Div(c, g.Sub(b, a))

	g.Backward(root)
	first := make([]float64, g.Len())
	for i := range first {
		first[i] = g.Grad(i)
	}

	g.Backward(root)
	for i := range first {
		assert.Equal(t, first[i], g.Grad(i), "node %d", i)
	}
}

func TestBackward_UnreachedNodesStayZero(t *testing.T) {
	g := autodiff.New[float64]()
	a := g.Input(4)
	b := g.Input(2)
	side := g.Mul(a, g.Input(2))
	root := g.Add(b, g.Input(1))

	// A previous pass through a gives it a non-zero gradient first.
	g.Backward(side)
	require.Equal(t, 2.0, g.Grad(a))

	g.Backward(root)
	assert.Equal(t, 0.0, g.Grad(a))
	assert.Equal(t, 0.0, g.Grad(side))
	assert.Equal(t, 1.0, g.Grad(b))
}

func TestBackward_ConstructionAfterBackward(t *testing.T) {
	g := autodiff.New[float64]()
	x := g.Input(3)
	y := g.Mul(x, x)
	g.Backward(y)
	require.Equal(t, 6.0, g.Grad(x))

	z := g.Add(y, x)
	assert.Equal(t, 0.0, g.Grad(z), "node created after Backward is not part of it")
	assert.Equal(t, 6.0, g.Grad(x))

	g.Backward(z)
	assert.Equal(t, 7.0, g.Grad(x))
}

func TestBackward_NumericSpecialValues(t *testing.T) {
	g := autodiff.New[float64]()
	one := g.Input(1)
	zero := g.Input(0)

	inf := g.Div(one, zero)
	assert.True(t, math.IsInf(g.Value(inf), 1))
	g.Backward(inf)
	assert.True(t, math.IsInf(g.Grad(one), 1))
	assert.True(t, math.IsInf(g.Grad(zero), -1))

	nan := g.Div(zero, zero)
	assert.True(t, math.IsNaN(g.Value(nan)))

	neg := g.Input(-8)
	root := g.Pow(neg, 0.5)
	assert.True(t, math.IsNaN(g.Value(root)))
	g.Backward(root)
	assert.True(t, math.IsNaN(g.Grad(neg)))

	// NaN keeps flowing through later nodes instead of being clamped.
	after := g.Add(g.ReLU(root), one)
	assert.True(t, math.IsNaN(g.Value(after)))
}

func TestGraph_SetValueDoesNotRecompute(t *testing.T) {
	g := autodiff.New[float64]()
	x := g.Input(2)
	y := g.Mul(x, g.Input(3))

	g.SetValue(x, 5)

	assert.Equal(t, 5.0, g.Value(x))
	assert.Equal(t, 6.0, g.Value(y), "downstream value is stale by contract")

	v, grad := g.Read(x)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 0.0, grad)
}

func TestGraph_InvalidIndexPanics(t *testing.T) {
	g := autodiff.New[float64]()
	x := g.Input(1)

	assert.Panics(t, func() { g.Add(x, 1) })
	assert.Panics(t, func() { g.Mul(-1, x) })
	assert.Panics(t, func() { g.Tanh(5) })
	assert.Panics(t, func() { g.Pow(2, 2) })
	assert.Panics(t, func() { g.Backward(1) })
	assert.Panics(t, func() { g.Value(-1) })
	assert.Panics(t, func() { g.Combine(autodiff.OpReLU, x, x) })
	assert.Panics(t, func() { g.Unary(autodiff.OpAdd, x) })
	assert.Equal(t, 1, g.Len(), "failed construction must not append")
}

func TestGraph_Clear(t *testing.T) {
	g := autodiff.New[float64]()
	g.Add(g.Input(1), g.Input(2))
	require.Equal(t, 3, g.Len())

	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.Input(9))
}

func TestGraph_Float32(t *testing.T) {
	g := autodiff.New[float32]()
	x := g.Input(2)
	w := g.Add(g.Mul(x, x), x)
	g.Backward(w)

	assert.Equal(t, float32(6), g.Value(w))
	assert.Equal(t, float32(5), g.Grad(x))

	th := g.Tanh(x)
	assert.InDelta(t, math.Tanh(2), float64(g.Value(th)), 1e-6)
}

func TestGraph_Ancestors(t *testing.T) {
	g := autodiff.New[float64]()
	a := g.Input(1)
	b := g.Input(2)
	c := g.Input(3)
	ab := g.Mul(a, b)
	g.Add(c, c)
	root := g.Tanh(ab)

	assert.Equal(t, []int{a, b, ab, root}, g.Ancestors(root))
	assert.Equal(t, []int{c}, g.Ancestors(c))
	assert.Panics(t, func() { g.Ancestors(99) })
}

func TestOpKind_String(t *testing.T) {
	tests := []struct {
		op    autodiff.OpKind
		want  string
		arity int
	}{
		{autodiff.OpInput, "input", 0},
		{autodiff.OpAdd, "+", 2},
		{autodiff.OpSub, "-", 2},
		{autodiff.OpMul, "*", 2},
		{autodiff.OpDiv, "/", 2},
		{autodiff.OpReLU, "relu", 1},
		{autodiff.OpTanh, "tanh", 1},
		{autodiff.OpPow, "pow", 1},
		{autodiff.OpKind(42), "OpKind(42)", 0},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.op.Arity(); got != tt.arity {
			t.Errorf("%s.Arity() = %d, want %d", tt.want, got, tt.arity)
		}
	}

	assert.True(t, autodiff.OpDiv.IsBinary())
	assert.False(t, autodiff.OpPow.IsBinary())
	assert.True(t, autodiff.OpTanh.IsActivation())
	assert.False(t, autodiff.OpPow.IsActivation())
}
