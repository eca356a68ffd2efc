package network

import (
	"testing"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evenIndexExamples = []Example{
	{Input: Vector{1, 0, 0, 0}, Output: Vector{1, 1}},
	{Input: Vector{0, 0, 1, 0}, Output: Vector{1, 1}},
	{Input: Vector{0, 1, 0, 0}, Output: Vector{0, 0}},
	{Input: Vector{0, 0, 0, 1}, Output: Vector{0, 0}},
}

func TestTrainConverges(t *testing.T) {
	matrix.Seed(2024)
	n := initialized(t, Config{
		InputSize:      4,
		OutputSize:     2,
		LayerSizes:     []int{3, 3},
		MaxIterations:  int(1e9),
		ErrorThreshold: 0.05,
	})

	cost, err := n.Train(evenIndexExamples)
	require.NoError(t, err)
	assert.Less(t, cost, 0.05)
	assert.True(t, n.Trained())
	assert.Equal(t, KindVector, n.Kind())
	assert.Greater(t, n.Iterations(), 0)

	out, err := n.RunVector([]float64{1, 0, 0, 0})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 1, out[0], 0.1)
	assert.InDelta(t, 1, out[1], 0.1)

	out, err = n.RunVector([]float64{0, 1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, out[0], 0.1)
	assert.InDelta(t, 0, out[1], 0.1)
}

func TestTrainStopsAtMaxIterations(t *testing.T) {
	matrix.Seed(7)
	var calls []int
	n := initialized(t, Config{
		InputSize:      4,
		OutputSize:     2,
		MaxIterations:  100,
		ErrorThreshold: 1e-7,
		Progress:       func(iteration int, _ float64) { calls = append(calls, iteration) },
	})

	cost, err := n.Train(evenIndexExamples)
	require.NoError(t, err)
	assert.Greater(t, cost, 1e-7)
	assert.Equal(t, 100, n.Iterations())
	require.Len(t, calls, 100)
	assert.Equal(t, 1, calls[0])
	assert.Equal(t, 100, calls[99])
}

func TestTrainReducesCost(t *testing.T) {
	matrix.Seed(99)
	cfg := Config{InputSize: 4, OutputSize: 2, MaxIterations: 1}
	n := initialized(t, cfg)

	first, err := n.Train(evenIndexExamples)
	require.NoError(t, err)

	var last float64
	for range 500 {
		last, err = n.Train(evenIndexExamples)
		require.NoError(t, err)
	}
	assert.Less(t, last, first)
}

func TestTrainWithMomentum(t *testing.T) {
	matrix.Seed(99)
	var costs []float64
	n := initialized(t, Config{
		InputSize:     4,
		OutputSize:    2,
		MaxIterations: 300,
		Momentum:      0.5,
		Progress:      func(_ int, cost float64) { costs = append(costs, cost) },
	})

	_, err := n.Train(evenIndexExamples)
	require.NoError(t, err)
	require.NotEmpty(t, costs)
	assert.Less(t, costs[len(costs)-1], costs[0])
}

func TestTrainNamedFields(t *testing.T) {
	matrix.Seed(5)
	n := initialized(t, Config{InputSize: 4, OutputSize: 2, MaxIterations: 50})

	examples := []Example{
		{Input: Record{"d": 0, "b": 0, "a": 1, "c": 0}, Output: Record{"answer2": 1, "answer1": 1}},
		{Input: Record{"a": 0, "b": 0, "c": 1, "d": 0}, Output: Record{"answer1": 1, "answer2": 1}},
		{Input: Record{"c": 0, "a": 0, "d": 0, "b": 1}, Output: Record{"answer2": 0, "answer1": 0}},
	}
	_, err := n.Train(examples)
	require.NoError(t, err)

	assert.Equal(t, KindRecord, n.Kind())
	assert.Equal(t, []string{"a", "b", "c", "d"}, n.InputKeys())
	assert.Equal(t, []string{"answer1", "answer2"}, n.OutputKeys())

	out, err := n.RunRecord(map[string]float64{"d": 0.4, "c": 0.3, "b": 0.2, "a": 0.1})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Contains(t, out, "answer1")
	assert.Contains(t, out, "answer2")

	// The input vector is bound by sorted key, not by literal order.
	assert.Equal(t, [][]float64{{0.1}, {0.2}, {0.3}, {0.4}}, n.Activations()[0].Grid())
	output := n.Activations()[3]
	assert.Equal(t, output.At(0, 0), out["answer1"])
	assert.Equal(t, output.At(1, 0), out["answer2"])
}

func TestTrainValidation(t *testing.T) {
	tests := []struct {
		name     string
		examples []Example
		want     error
	}{
		{"empty", nil, ErrNoExamples},
		{"nil sample", []Example{{Input: Vector{1, 0}}}, ErrInvalidSample},
		{"input size", []Example{{Input: Vector{1}, Output: Vector{1}}}, ErrInputSize},
		{"output size", []Example{{Input: Vector{1, 0}, Output: Vector{1, 0}}}, ErrOutputSize},
		{"input out of range", []Example{{Input: Vector{1.5, 0}, Output: Vector{1}}}, ErrValueRange},
		{"output out of range", []Example{{Input: Vector{1, 0}, Output: Vector{-0.1}}}, ErrValueRange},
		{"kinds within example", []Example{{Input: Vector{1, 0}, Output: Record{"y": 1}}}, ErrExampleKinds},
		{"mixed examples", []Example{
			{Input: Vector{1, 0}, Output: Vector{1}},
			{Input: Record{"a": 1, "b": 0}, Output: Record{"y": 1}},
		}, ErrMixedExamples},
		{"drifting keys", []Example{
			{Input: Record{"a": 1, "b": 0}, Output: Record{"y": 1}},
			{Input: Record{"a": 1, "c": 0}, Output: Record{"y": 1}},
		}, ErrKeyMismatch},
		{"record size", []Example{{Input: Record{"a": 1}, Output: Record{"y": 1}}}, ErrInputSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := initialized(t, Config{InputSize: 2, OutputSize: 1, MaxIterations: 3})
			before := n.Save()

			_, err := n.Train(tt.examples)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrTraining)

			assert.Equal(t, before, n.Save())
			assert.Equal(t, KindNone, n.Kind())
			assert.False(t, n.Trained())
		})
	}
}

func TestTrainRequiresInitialize(t *testing.T) {
	_, err := New(Config{InputSize: 1, OutputSize: 1}).Train(evenIndexExamples)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, err, ErrTraining)
}

func TestTrainKeepsKind(t *testing.T) {
	n := initialized(t, Config{InputSize: 1, OutputSize: 1, MaxIterations: 2})
	_, err := n.Train([]Example{{Input: Vector{1}, Output: Vector{1}}})
	require.NoError(t, err)

	_, err = n.Train([]Example{{Input: Record{"x": 1}, Output: Record{"y": 1}}})
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = n.Initialize()
	require.NoError(t, err)
	_, err = n.Train([]Example{{Input: Record{"x": 1}, Output: Record{"y": 1}}})
	assert.NoError(t, err)
}

func TestTrainAsync(t *testing.T) {
	n := initialized(t, Config{InputSize: 4, OutputSize: 2, MaxIterations: 3})

	res := <-n.TrainAsync(evenIndexExamples)
	require.NoError(t, res.Err)
	assert.Greater(t, res.Cost, 0.0)

	res = <-n.TrainAsync(nil)
	assert.ErrorIs(t, res.Err, ErrNoExamples)

	run := <-n.RunAsync(Vector{1, 0, 0, 0})
	require.NoError(t, run.Err)
	assert.Equal(t, 2, run.Output.Len())

	run, ok := <-n.RunAsync(Vector{1})
	require.True(t, ok)
	assert.ErrorIs(t, run.Err, ErrInputSize)
	assert.Nil(t, run.Output)
}
