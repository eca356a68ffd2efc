package backprop

import (
	"fmt"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/feedforward-ml/feedforward/internal/nn"
)

// Deltas answers per-layer gradient queries for one example.
//
// Results are memoized: dC/dA of layer l is derived from the bias delta of
// layer l+1, so walking the layers from the output down computes each
// product once. A query for a single layer pays only for the layers above it.
type Deltas struct {
	activations []*matrix.Matrix
	weights     []*matrix.Matrix
	biases      []*matrix.Matrix
	expected    *matrix.Matrix

	costToActivation []*matrix.Matrix
	deltaWeights     []*matrix.Matrix
	deltaBiases      []*matrix.Matrix
}

// NewDeltas captures the state of one forward pass. activations[0] is the input.
func NewDeltas(activations, weights, biases []*matrix.Matrix, expected *matrix.Matrix) (*Deltas, error) {
	if err := validate(activations, weights, biases, expected); err != nil {
		return nil, err
	}
	return &Deltas{
		activations:      activations,
		weights:          weights,
		biases:           biases,
		expected:         expected,
		costToActivation: make([]*matrix.Matrix, len(weights)),
		deltaWeights:     make([]*matrix.Matrix, len(weights)),
		deltaBiases:      make([]*matrix.Matrix, len(weights)),
	}, nil
}

// Layers returns the number of weight layers.
func (d *Deltas) Layers() int {
	return len(d.weights)
}

// Layer returns the weight and bias deltas of layer l.
// The returned matrices are shared with later queries and must not be modified.
func (d *Deltas) Layer(l int) (deltaWeight, deltaBias *matrix.Matrix, err error) {
	if err := d.checkLayer(l); err != nil {
		return nil, nil, err
	}
	if d.deltaBiases[l] != nil {
		return d.deltaWeights[l], d.deltaBiases[l], nil
	}

	next, err := d.CostToActivation(l)
	if err != nil {
		return nil, nil, err
	}
	dw, db, err := layerDeltas(d.activations[l], d.weights[l], d.biases[l], next)
	if err != nil {
		return nil, nil, fmt.Errorf("backprop: layer %d: %w", l, err)
	}
	d.deltaWeights[l], d.deltaBiases[l] = dw, db
	return dw, db, nil
}

// CostToActivation returns dC/dA for the output of layer l.
// The returned matrix is shared with later queries and must not be modified.
func (d *Deltas) CostToActivation(l int) (*matrix.Matrix, error) {
	if err := d.checkLayer(l); err != nil {
		return nil, err
	}
	if cached := d.costToActivation[l]; cached != nil {
		return cached, nil
	}

	last := len(d.weights) - 1
	var (
		result *matrix.Matrix
		err    error
	)
	if l == last {
		result, err = nn.SquaredErrorDerivative(d.activations[last+1], d.expected)
	} else {
		result, err = d.propagate(l)
	}
	if err != nil {
		return nil, fmt.Errorf("backprop: layer %d: %w", l, err)
	}
	d.costToActivation[l] = result
	return result, nil
}

// propagate computes W(l+1)ᵀ · δb(l+1).
func (d *Deltas) propagate(l int) (*matrix.Matrix, error) {
	_, upstream, err := d.Layer(l + 1)
	if err != nil {
		return nil, err
	}
	wt, err := matrix.Transpose(d.weights[l+1])
	if err != nil {
		return nil, err
	}
	return matrix.Dot(wt, upstream)
}

func (d *Deltas) checkLayer(l int) error {
	if l < 0 || l >= len(d.weights) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrLayerIndex, l, len(d.weights))
	}
	return nil
}
