package network

import (
	"slices"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/feedforward-ml/feedforward/internal/nn"
)

// Run feeds a sample forward and returns the output layer in the same kind:
// a Vector for a Vector input, a Record keyed by the recorded output field
// names for a Record input.
func (n *Network) Run(in Sample) (Sample, error) {
	switch s := in.(type) {
	case Vector:
		out, err := n.RunVector(s)
		if err != nil {
			return nil, err
		}
		return Vector(out), nil
	case Record:
		out, err := n.RunRecord(s)
		if err != nil {
			return nil, err
		}
		return Record(out), nil
	default:
		return nil, categorize(ErrRun, ErrInvalidSample, "%T", in)
	}
}

// RunVector runs a positional input. It fails on a network trained with records.
func (n *Network) RunVector(input []float64) ([]float64, error) {
	if !n.initialized {
		return nil, categorize(ErrRun, ErrNotInitialized, "")
	}
	if n.kind == KindRecord {
		return nil, categorize(ErrRun, ErrKindMismatch, "network was trained with records, got a vector")
	}
	if len(input) != n.sizes[0] {
		return nil, categorize(ErrRun, ErrInputSize, "got %d values, want %d", len(input), n.sizes[0])
	}
	out, err := n.feedForward(input)
	if err != nil {
		return nil, categorize(ErrRun, err, "")
	}
	return out, nil
}

// RunRecord runs a named-field input. The field names must equal the input
// keys recorded by training, in any order.
func (n *Network) RunRecord(input map[string]float64) (map[string]float64, error) {
	if !n.initialized {
		return nil, categorize(ErrRun, ErrNotInitialized, "")
	}
	switch n.kind {
	case KindVector:
		return nil, categorize(ErrRun, ErrKindMismatch, "network was trained with vectors, got a record")
	case KindNone:
		return nil, categorize(ErrRun, ErrMissingKeys, "train with records first")
	}

	rec := Record(input)
	if keys := rec.Keys(); !slices.Equal(keys, n.inputKeys) {
		return nil, categorize(ErrRun, ErrKeyMismatch, "got %v, want %v", keys, n.inputKeys)
	}
	out, err := n.feedForward(rec.Values())
	if err != nil {
		return nil, categorize(ErrRun, err, "")
	}

	result := make(map[string]float64, len(n.outputKeys))
	for i, key := range n.outputKeys {
		result[key] = out[i]
	}
	return result, nil
}

// feedForward computes a(i+1) = σ(W(i)·a(i) + b(i)) for every layer, stores
// the activations and returns the output layer. The caller validates input.
func (n *Network) feedForward(input []float64) ([]float64, error) {
	a, err := matrix.FromColumn(input)
	if err != nil {
		return nil, err
	}
	activations := make([]*matrix.Matrix, len(n.activations))
	activations[0] = a

	for i, w := range n.weights {
		z, err := matrix.Dot(w, a)
		if err != nil {
			return nil, err
		}
		if err := z.AddInPlace(n.biases[i]); err != nil {
			return nil, err
		}
		a = nn.Activate(z)
		activations[i+1] = a
	}

	n.activations = activations
	return matrix.ToColumn(a)
}
