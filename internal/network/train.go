package network

import (
	"math"
	"slices"

	"github.com/feedforward-ml/feedforward/internal/backprop"
	"github.com/feedforward-ml/feedforward/internal/matrix"
)

// pair is an example resolved to neuron order.
type pair struct {
	input    []float64
	expected *matrix.Matrix
}

// Train fits the network to examples and returns the mean cost of the last
// iteration.
//
// Each iteration feeds every example forward, backpropagates the squared
// error and immediately subtracts the learning-rate scaled deltas from the
// weights and biases. Training stops after MaxIterations iterations or as
// soon as the mean cost drops below ErrorThreshold.
//
// All examples must be of one kind. For records, the sorted field names of
// the first example become the network's input and output keys, and every
// other example must use the same names. Nothing is modified when
// validation fails.
func (n *Network) Train(examples []Example) (float64, error) {
	if !n.initialized {
		return 0, categorize(ErrTraining, ErrNotInitialized, "")
	}
	prepared, err := n.prepare(examples)
	if err != nil {
		return 0, err
	}

	n.kind = prepared.kind
	if prepared.kind == KindRecord {
		n.inputKeys = prepared.inputKeys
		n.outputKeys = prepared.outputKeys
	}

	var cost float64
	n.iterations = 0
	n.optimizer.Reset()
	for n.iterations < n.config.MaxIterations {
		sum := 0.0
		for _, p := range prepared.pairs {
			c, err := n.step(p)
			if err != nil {
				return 0, categorize(ErrTraining, err, "")
			}
			sum += c
		}
		cost = sum / float64(len(prepared.pairs))
		n.iterations++

		if n.config.Progress != nil {
			n.config.Progress(n.iterations, cost)
		}
		if cost < n.config.ErrorThreshold {
			break
		}
	}

	n.trained = true
	return cost, nil
}

// step trains on one example and returns its summed squared error.
func (n *Network) step(p pair) (float64, error) {
	if _, err := n.feedForward(p.input); err != nil {
		return 0, err
	}
	grads, err := backprop.Compute(n.activations, n.weights, n.biases, p.expected)
	if err != nil {
		return 0, err
	}
	if err := n.optimizer.Step(n.weights, grads.Weights); err != nil {
		return 0, err
	}
	if err := n.optimizer.Step(n.biases, grads.Biases); err != nil {
		return 0, err
	}
	return matrix.Sum(grads.Cost), nil
}

type preparedExamples struct {
	kind       Kind
	inputKeys  []string
	outputKeys []string
	pairs      []pair
}

// prepare validates examples and resolves them to neuron order.
func (n *Network) prepare(examples []Example) (*preparedExamples, error) {
	if len(examples) == 0 {
		return nil, categorize(ErrTraining, ErrNoExamples, "")
	}

	out := &preparedExamples{pairs: make([]pair, 0, len(examples))}
	for i, ex := range examples {
		kind, err := exampleKind(ex)
		if err != nil {
			return nil, categorize(ErrTraining, err, "example %d", i)
		}
		if i == 0 {
			out.kind = kind
			if n.kind != KindNone && n.kind != kind {
				return nil, categorize(ErrTraining, ErrKindMismatch, "network was trained with %v, got %v", n.kind, kind)
			}
		} else if kind != out.kind {
			return nil, categorize(ErrTraining, ErrMixedExamples, "example %d is a %v, example 0 is a %v", i, kind, out.kind)
		}

		var input, output []float64
		switch kind {
		case KindVector:
			input, output = ex.Input.(Vector), ex.Output.(Vector)
		case KindRecord:
			in, exp := ex.Input.(Record), ex.Output.(Record)
			inKeys, outKeys := in.Keys(), exp.Keys()
			if i == 0 {
				out.inputKeys, out.outputKeys = inKeys, outKeys
			} else if !slices.Equal(inKeys, out.inputKeys) || !slices.Equal(outKeys, out.outputKeys) {
				return nil, categorize(ErrTraining, ErrKeyMismatch, "example %d has fields %v -> %v, want %v -> %v",
					i, inKeys, outKeys, out.inputKeys, out.outputKeys)
			}
			input, output = in.Values(), exp.Values()
		}

		if len(input) != n.sizes[0] {
			return nil, categorize(ErrTraining, ErrInputSize, "example %d has %d inputs, want %d", i, len(input), n.sizes[0])
		}
		want := n.sizes[len(n.sizes)-1]
		if len(output) != want {
			return nil, categorize(ErrTraining, ErrOutputSize, "example %d has %d outputs, want %d", i, len(output), want)
		}
		if !unitRange(input) || !unitRange(output) {
			return nil, categorize(ErrTraining, ErrValueRange, "example %d", i)
		}

		expected, err := matrix.FromColumn(output)
		if err != nil {
			return nil, categorize(ErrTraining, err, "example %d", i)
		}
		out.pairs = append(out.pairs, pair{input: slices.Clone(input), expected: expected})
	}
	return out, nil
}

// exampleKind returns the shared kind of an example's input and output.
func exampleKind(ex Example) (Kind, error) {
	if !isSample(ex.Input) || !isSample(ex.Output) {
		return KindNone, ErrInvalidSample
	}
	if ex.Input.Kind() != ex.Output.Kind() {
		return KindNone, ErrExampleKinds
	}
	return ex.Input.Kind(), nil
}

func isSample(s Sample) bool {
	switch s.(type) {
	case Vector, Record:
		return true
	}
	return false
}

// unitRange reports whether every value lies in [0, 1].
func unitRange(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}
