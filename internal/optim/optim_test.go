package optim_test

import (
	"math"
	"testing"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/feedforward-ml/feedforward/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func scalar(t *testing.T, v float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromColumn([]float64{v})
	require.NoError(t, err)
	return m
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := scalar(t, 2.0)
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	err := optimizer.Step([]*matrix.Matrix{x}, []*matrix.Matrix{scalar(t, 1.0)})
	require.NoError(t, err)

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if !floatEqual(x.At(0, 0), 1.9, 1e-12) {
		t.Errorf("SGD update: got %f, want %f", x.At(0, 0), 1.9)
	}
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	x := scalar(t, 1.0)
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	grad := scalar(t, 1.0)

	// Step 1: v = 1, x = 1 - 0.1 = 0.9
	require.NoError(t, optimizer.Step([]*matrix.Matrix{x}, []*matrix.Matrix{grad}))
	assert.InDelta(t, 0.9, x.At(0, 0), 1e-12)

	// Step 2: v = 0.9*1 + 1 = 1.9, x = 0.9 - 0.19 = 0.71
	require.NoError(t, optimizer.Step([]*matrix.Matrix{x}, []*matrix.Matrix{grad}))
	assert.InDelta(t, 0.71, x.At(0, 0), 1e-12)

	assert.Equal(t, 1.0, grad.At(0, 0), "gradient must not change")

	optimizer.Reset()
	require.NoError(t, optimizer.Step([]*matrix.Matrix{x}, []*matrix.Matrix{grad}))
	assert.InDelta(t, 0.61, x.At(0, 0), 1e-12)
}

func TestSGD_DefaultLR(t *testing.T) {
	optimizer := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())

	var _ optim.Optimizer = optimizer
}

// TestSGD_ValidatesBeforeUpdate checks that a bad gradient leaves every parameter untouched.
func TestSGD_ValidatesBeforeUpdate(t *testing.T) {
	a := scalar(t, 1)
	b := scalar(t, 2)
	wide, err := matrix.FromGrid([][]float64{{1, 1}})
	require.NoError(t, err)
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.5})

	err = optimizer.Step([]*matrix.Matrix{a, b}, []*matrix.Matrix{scalar(t, 1), wide})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 2.0, b.At(0, 0))

	err = optimizer.Step([]*matrix.Matrix{a, b}, []*matrix.Matrix{scalar(t, 1)})
	assert.ErrorIs(t, err, optim.ErrParamCount)

	err = optimizer.Step([]*matrix.Matrix{a}, []*matrix.Matrix{nil})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSGD_MomentumPerParameter steps two parameter groups of different shapes
// through one optimizer, the way a network steps weights then biases.
func TestSGD_MomentumPerParameter(t *testing.T) {
	w, err := matrix.FromGrid([][]float64{{0, 0}})
	require.NoError(t, err)
	b := scalar(t, 0)
	gw, err := matrix.FromGrid([][]float64{{1, 1}})
	require.NoError(t, err)
	gb := scalar(t, 1)

	optimizer := optim.NewSGD(optim.SGDConfig{LR: 1, Momentum: 0.9})
	for range 3 {
		require.NoError(t, optimizer.Step([]*matrix.Matrix{w}, []*matrix.Matrix{gw}))
		require.NoError(t, optimizer.Step([]*matrix.Matrix{b}, []*matrix.Matrix{gb}))
	}

	// v: 1, 1.9, 2.71 -> param: -1 - 1.9 - 2.71
	assert.InDelta(t, -5.61, w.At(0, 0), 1e-12)
	assert.InDelta(t, -5.61, w.At(0, 1), 1e-12)
	assert.InDelta(t, -5.61, b.At(0, 0), 1e-12)
}
