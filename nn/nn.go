// Copyright 2025 Feedforward Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/feedforward-ml/feedforward/internal/nn"
	"github.com/feedforward-ml/feedforward/matrix"
)

// Activations

// Sigmoid is the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 { return nn.Sigmoid(x) }

// SigmoidDerivative returns Sigmoid(x) * (1 - Sigmoid(x)).
func SigmoidDerivative(x float64) float64 { return nn.SigmoidDerivative(x) }

// Activate applies Sigmoid element-wise and returns a new matrix.
func Activate(z *matrix.Matrix) *matrix.Matrix { return nn.Activate(z) }

// ActivateDerivative applies SigmoidDerivative element-wise and returns a new matrix.
func ActivateDerivative(z *matrix.Matrix) *matrix.Matrix { return nn.ActivateDerivative(z) }

// Cost

// SquaredError returns (actual - expected)² element-wise.
func SquaredError(actual, expected *matrix.Matrix) (*matrix.Matrix, error) {
	return nn.SquaredError(actual, expected)
}

// SquaredErrorDerivative returns 2 * (actual - expected) element-wise.
func SquaredErrorDerivative(actual, expected *matrix.Matrix) (*matrix.Matrix, error) {
	return nn.SquaredErrorDerivative(actual, expected)
}
