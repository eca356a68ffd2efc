// Package optim implements the parameter update applied after each
// backward pass.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	grads, _ := backprop.Compute(activations, weights, biases, expected)
//	if err := sgd.Step(weights, grads.Weights); err != nil {
//	    return err
//	}
package optim

import (
	"errors"
	"fmt"

	"github.com/feedforward-ml/feedforward/internal/matrix"
)

// ErrParamCount is returned when parameters and gradients differ in number.
var ErrParamCount = errors.New("optim: parameter and gradient counts differ")

// Optimizer updates parameters in place from their gradients.
type Optimizer interface {
	// Step applies one update. grads[i] is the gradient of params[i].
	// Nothing is modified when an error is returned.
	Step(params, grads []*matrix.Matrix) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// validateStep checks counts and shapes before any parameter is touched.
func validateStep(params, grads []*matrix.Matrix) error {
	if len(params) != len(grads) {
		return fmt.Errorf("%w: %d params, %d grads", ErrParamCount, len(params), len(grads))
	}
	for i := range params {
		if params[i] == nil || grads[i] == nil {
			return fmt.Errorf("optim: parameter %d: %w", i, matrix.ErrNilMatrix)
		}
		if !params[i].Shape().Equal(grads[i].Shape()) {
			return fmt.Errorf("optim: parameter %d: %w: %v vs %v",
				i, matrix.ErrDimensionMismatch, params[i].Shape(), grads[i].Shape())
		}
	}
	return nil
}
