// Package nn provides the activation and cost functions of the network.
//
// Every layer uses the logistic sigmoid, and training minimizes the squared
// error between the network output and the expected output.
package nn

import (
	"math"

	"github.com/feedforward-ml/feedforward/internal/matrix"
)

// Sigmoid is the logistic function σ(x) = 1 / (1 + e^-x).
//
// It squashes any real input into the open range (0, 1). Very large
// magnitudes saturate to exactly 0 or 1 in float64.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative returns σ'(x) = σ(x)·(1 - σ(x)).
func SigmoidDerivative(x float64) float64 {
	s := Sigmoid(x)
	return s * (1 - s)
}

// Activate applies Sigmoid element-wise and returns a new matrix.
//
// Example:
//
//	z, _ := matrix.Dot(w, a)
//	a = nn.Activate(z)
func Activate(z *matrix.Matrix) *matrix.Matrix {
	return matrix.Map(z, Sigmoid)
}

// ActivateDerivative applies SigmoidDerivative element-wise and returns a new matrix.
func ActivateDerivative(z *matrix.Matrix) *matrix.Matrix {
	return matrix.Map(z, SigmoidDerivative)
}
