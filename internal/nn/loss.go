package nn

import (
	"github.com/feedforward-ml/feedforward/internal/matrix"
)

// SquaredError computes the element-wise cost (actual - expected)².
//
// The result has the shape of its operands; sum it with matrix.Sum for a
// scalar cost. Both operands must share a shape, otherwise the matrix
// dimension error is returned.
//
// Example:
//
//	cost, err := nn.SquaredError(output, target)
//	total := matrix.Sum(cost)
func SquaredError(actual, expected *matrix.Matrix) (*matrix.Matrix, error) {
	diff, err := matrix.Sub(actual, expected)
	if err != nil {
		return nil, err
	}
	return diff.Apply(func(x float64) float64 { return x * x }), nil
}

// SquaredErrorDerivative computes ∂cost/∂actual = 2·(actual - expected) element-wise.
func SquaredErrorDerivative(actual, expected *matrix.Matrix) (*matrix.Matrix, error) {
	diff, err := matrix.Sub(actual, expected)
	if err != nil {
		return nil, err
	}
	return diff.Scale(2), nil
}
