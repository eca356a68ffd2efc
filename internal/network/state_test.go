package network

import (
	"encoding/json"
	"testing"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Config{InputSize: 4, OutputSize: 2, MaxIterations: 20}
	trained := initialized(t, cfg)
	_, err := trained.Train(evenIndexExamples)
	require.NoError(t, err)

	fresh := initialized(t, cfg)
	require.NoError(t, fresh.Load(trained.Save()))

	for i, w := range trained.Weights() {
		assert.True(t, matrix.Equal(w, fresh.Weights()[i]), "weights[%d]", i)
		assert.True(t, matrix.Equal(trained.Biases()[i], fresh.Biases()[i]), "biases[%d]", i)
	}

	want, err := trained.RunVector([]float64{0, 0, 1, 0})
	require.NoError(t, err)
	got, err := fresh.RunVector([]float64{0, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveSurvivesJSON(t *testing.T) {
	n := initialized(t, Config{InputSize: 2, OutputSize: 1})

	data, err := json.Marshal(n.Save())
	require.NoError(t, err)

	var s State
	require.NoError(t, json.Unmarshal(data, &s))

	copyNet := initialized(t, Config{InputSize: 2, OutputSize: 1})
	require.NoError(t, copyNet.Load(s))
	assert.Equal(t, n.Save(), copyNet.Save())
}

func TestPartialLoad(t *testing.T) {
	source := initialized(t, Config{InputSize: 2, OutputSize: 1})
	target := initialized(t, Config{InputSize: 2, OutputSize: 1})
	biases := target.Save().Biases

	require.NoError(t, target.Load(State{Weights: source.Save().Weights}))
	assert.Equal(t, source.Save().Weights, target.Save().Weights)
	assert.Equal(t, biases, target.Save().Biases)

	data, err := json.Marshal(State{Biases: biases})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "weights")
}

func TestLoadValidation(t *testing.T) {
	n := initialized(t, Config{InputSize: 2, OutputSize: 1, LayerSizes: []int{3}})
	good := n.Save()
	other := initialized(t, Config{InputSize: 2, OutputSize: 1, LayerSizes: []int{3}}).Save()

	tests := []struct {
		name  string
		state State
		want  error
	}{
		{"too few layers", State{Weights: other.Weights[:1]}, ErrLayerCount},
		{"transposed weights", State{Weights: [][][]float64{
			{{1, 1, 1}, {1, 1, 1}},
			other.Weights[1],
		}}, ErrShapeMismatch},
		{"ragged grid", State{Weights: [][][]float64{
			{{1, 1}, {1}, {1, 1}},
			other.Weights[1],
		}}, ErrShapeMismatch},
		{"valid weights bad biases", State{
			Weights: other.Weights,
			Biases:  [][][]float64{{{1}, {1}}, {{1}}},
		}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := n.Load(tt.state)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrLoad)
			assert.Equal(t, good, n.Save())
		})
	}

	err := New(Config{InputSize: 2, OutputSize: 1}).Load(good)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSnapshotRoundTrip(t *testing.T) {
	n := initialized(t, Config{InputSize: 2, OutputSize: 1, MaxIterations: 10})
	_, err := n.Train([]Example{{Input: Record{"b": 1, "a": 0}, Output: Record{"out": 1}}})
	require.NoError(t, err)

	data, err := json.Marshal(n.Snapshot())
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, KindRecord, snap.Kind)

	restored, err := FromSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, n.Save(), restored.Save())
	assert.Equal(t, []string{"a", "b"}, restored.InputKeys())
	assert.Equal(t, []string{"out"}, restored.OutputKeys())
	assert.True(t, restored.Trained())

	want, err := n.RunRecord(map[string]float64{"a": 0.5, "b": 0.5})
	require.NoError(t, err)
	got, err := restored.RunRecord(map[string]float64{"a": 0.5, "b": 0.5})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFromSnapshotValidation(t *testing.T) {
	snap := initialized(t, Config{InputSize: 2, OutputSize: 1}).Snapshot()
	snap.Kind = KindRecord
	snap.InputKeys = []string{"only"}
	snap.OutputKeys = []string{"y"}

	_, err := FromSnapshot(snap)
	assert.ErrorIs(t, err, ErrKeyMismatch)

	_, err = FromSnapshot(Snapshot{Config: Config{InputSize: 1}})
	assert.ErrorIs(t, err, ErrMissingSizes)
}
