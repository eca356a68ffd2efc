// Package backprop computes the gradient of the squared-error cost with
// respect to every weight matrix and bias vector of a sigmoid network.
//
// Layers are indexed from 0 to L-1 by weight matrix. activations[0] is the
// network input and activations[l+1] is the output of layer l, so
//
//	z(l)      = W(l)·a(l) + b(l)
//	a(l+1)    = σ(z(l))
//	dC/dA(L-1) = 2·(a(L) - y)
//	dC/dA(l)  = W(l+1)ᵀ · (dC/dA(l+1) ⊙ σ'(z(l+1)))
//	δb(l)     = dC/dA(l) ⊙ σ'(z(l))
//	δW(l)     = δb(l) · a(l)ᵀ
package backprop

import (
	"errors"
	"fmt"
	"slices"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/feedforward-ml/feedforward/internal/nn"
)

// ErrLayerCount is returned when activations, weights and biases do not
// describe the same number of layers.
var ErrLayerCount = errors.New("backprop: layer count mismatch")

// ErrLayerIndex is returned by Deltas for a layer index outside [0, L).
var ErrLayerIndex = errors.New("backprop: layer index out of range")

// Gradients holds the per-layer deltas of one example, in layer order.
type Gradients struct {
	Weights []*matrix.Matrix
	Biases  []*matrix.Matrix
	// Cost is the element-wise squared error of the output layer.
	Cost *matrix.Matrix
}

// Compute runs the backward pass for one example.
//
// activations must come from a forward pass over weights and biases and
// include the input as its first element. Layers are visited from the
// output layer down to the first, each reusing the dC/dA its successor
// produced, and the result is returned in layer order. None of the
// arguments are modified.
func Compute(activations, weights, biases []*matrix.Matrix, expected *matrix.Matrix) (*Gradients, error) {
	d, err := NewDeltas(activations, weights, biases, expected)
	if err != nil {
		return nil, err
	}

	last := len(weights) - 1
	cost, err := nn.SquaredError(activations[last+1], expected)
	if err != nil {
		return nil, fmt.Errorf("backprop: cost: %w", err)
	}

	grads := &Gradients{
		Weights: make([]*matrix.Matrix, 0, len(weights)),
		Biases:  make([]*matrix.Matrix, 0, len(biases)),
		Cost:    cost,
	}
	for l := last; l >= 0; l-- {
		dw, db, err := d.Layer(l)
		if err != nil {
			return nil, err
		}
		grads.Weights = append(grads.Weights, dw)
		grads.Biases = append(grads.Biases, db)
	}

	slices.Reverse(grads.Weights)
	slices.Reverse(grads.Biases)
	return grads, nil
}

// weightedInput returns z = W·a + b.
func weightedInput(w, a, b *matrix.Matrix) (*matrix.Matrix, error) {
	z, err := matrix.Dot(w, a)
	if err != nil {
		return nil, err
	}
	if err := z.AddInPlace(b); err != nil {
		return nil, err
	}
	return z, nil
}

// layerDeltas computes (δW, δb) of one layer given its input activation and
// the cost gradient with respect to its output.
func layerDeltas(aPrev, w, b, costToActivation *matrix.Matrix) (dw, db *matrix.Matrix, err error) {
	z, err := weightedInput(w, aPrev, b)
	if err != nil {
		return nil, nil, err
	}
	db, err = matrix.Hadamard(costToActivation, nn.ActivateDerivative(z))
	if err != nil {
		return nil, nil, err
	}
	aPrevT, err := matrix.Transpose(aPrev)
	if err != nil {
		return nil, nil, err
	}
	dw, err = matrix.Dot(db, aPrevT)
	if err != nil {
		return nil, nil, err
	}
	return dw, db, nil
}

func validate(activations, weights, biases []*matrix.Matrix, expected *matrix.Matrix) error {
	if len(weights) == 0 {
		return fmt.Errorf("%w: no layers", ErrLayerCount)
	}
	if len(biases) != len(weights) || len(activations) != len(weights)+1 {
		return fmt.Errorf("%w: %d activations, %d weights, %d biases",
			ErrLayerCount, len(activations), len(weights), len(biases))
	}
	if expected == nil {
		return fmt.Errorf("backprop: expected output: %w", matrix.ErrNilMatrix)
	}
	return nil
}
