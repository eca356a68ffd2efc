package network

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func initialized(t *testing.T, cfg Config) *Network {
	t.Helper()
	n, err := New(cfg).Initialize()
	require.NoError(t, err)
	return n
}

func TestNewMergesDefaults(t *testing.T) {
	n := New(Config{InputSize: 2, OutputSize: 1})
	cfg := n.Config()

	assert.Equal(t, []int{3, 3}, cfg.LayerSizes)
	assert.Equal(t, 10000, cfg.MaxIterations)
	assert.Equal(t, 0.1, cfg.LearningRate)
	assert.Equal(t, 0.001, cfg.ErrorThreshold)
	assert.Equal(t, []int{2, 3, 3, 1}, n.Sizes())
	assert.False(t, n.Initialized())

	custom := New(Config{InputSize: 2, OutputSize: 1, LayerSizes: []int{5}, LearningRate: 0.5})
	assert.Equal(t, []int{2, 5, 1}, custom.Sizes())
	assert.Equal(t, 0.5, custom.Config().LearningRate)
}

func TestNewCopiesLayerSizes(t *testing.T) {
	layers := []int{4}
	n := New(Config{InputSize: 1, OutputSize: 1, LayerSizes: layers})
	layers[0] = 9
	assert.Equal(t, []int{1, 4, 1}, n.Sizes())

	cfg := n.Config()
	cfg.LayerSizes[0] = 7
	assert.Equal(t, []int{4}, n.Config().LayerSizes)
}

func TestInitialize(t *testing.T) {
	matrix.Seed(1)
	n := initialized(t, Config{InputSize: 4, OutputSize: 2, LayerSizes: []int{3, 5}})

	assert.True(t, n.Initialized())
	assert.False(t, n.Trained())
	assert.Equal(t, KindNone, n.Kind())

	sizes := n.Sizes()
	weights, biases, activations := n.Weights(), n.Biases(), n.Activations()
	require.Len(t, weights, len(sizes)-1)
	require.Len(t, biases, len(sizes)-1)
	require.Len(t, activations, len(sizes))

	for i := range weights {
		assert.Equal(t, matrix.Shape{Rows: sizes[i+1], Cols: sizes[i]}, weights[i].Shape())
		assert.Equal(t, matrix.Shape{Rows: sizes[i+1], Cols: 1}, biases[i].Shape())
		for _, m := range []*matrix.Matrix{weights[i], biases[i]} {
			m.ForEach(func(x float64) {
				assert.GreaterOrEqual(t, x, 0.0)
				assert.Less(t, x, 1.0)
			})
		}
	}
	for i, a := range activations {
		assert.Equal(t, matrix.Shape{Rows: sizes[i], Cols: 1}, a.Shape())
		assert.Equal(t, 0.0, matrix.Sum(a))
	}
}

func TestInitializeResets(t *testing.T) {
	n := initialized(t, Config{InputSize: 1, OutputSize: 1})
	_, err := n.Train([]Example{{Input: Record{"x": 1}, Output: Record{"y": 0}}})
	require.NoError(t, err)
	require.Equal(t, KindRecord, n.Kind())
	before := n.Weights()

	again, err := n.Initialize()
	require.NoError(t, err)
	assert.Same(t, n, again)
	assert.Equal(t, KindNone, n.Kind())
	assert.False(t, n.Trained())
	assert.Empty(t, n.InputKeys())
	assert.Empty(t, n.OutputKeys())
	assert.False(t, matrix.Equal(before[0], n.Weights()[0]))
}

func TestInitializeValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"missing input", Config{OutputSize: 1}, ErrMissingSizes},
		{"missing output", Config{InputSize: 1}, ErrMissingSizes},
		{"zero hidden width", Config{InputSize: 1, OutputSize: 1, LayerSizes: []int{2, 0}}, ErrMissingSizes},
		{"negative width", Config{InputSize: -1, OutputSize: 1}, ErrMissingSizes},
		{"empty hidden layers", Config{InputSize: 1, OutputSize: 1, LayerSizes: []int{}}, ErrMissingHiddenLayers},
		{"negative iterations", Config{InputSize: 1, OutputSize: 1, MaxIterations: -1}, ErrMaxIterations},
		{"learning rate one", Config{InputSize: 1, OutputSize: 1, LearningRate: 1}, ErrLearningRate},
		{"negative learning rate", Config{InputSize: 1, OutputSize: 1, LearningRate: -0.1}, ErrLearningRate},
		{"NaN learning rate", Config{InputSize: 1, OutputSize: 1, LearningRate: math.NaN()}, ErrLearningRate},
		{"threshold above one", Config{InputSize: 1, OutputSize: 1, ErrorThreshold: 1.5}, ErrErrorThreshold},
		{"negative momentum", Config{InputSize: 1, OutputSize: 1, Momentum: -0.1}, ErrMomentum},
		{"momentum one", Config{InputSize: 1, OutputSize: 1, Momentum: 1}, ErrMomentum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(tt.cfg)
			got, err := n.Initialize()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInitialization)
			assert.False(t, n.Initialized())
		})
	}
}

func TestDecodedConfig(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"inputSize": 2, "outputSize": 1}`), &cfg))
	n := New(cfg)
	assert.Equal(t, DefaultConfig().LayerSizes, n.Config().LayerSizes)
	assert.Equal(t, 10000, n.Config().MaxIterations)
	assert.Equal(t, 0.1, n.Config().LearningRate)
	_, err := n.Initialize()
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"zero iterations", `{"inputSize": 1, "outputSize": 1, "maxIterations": 0}`, ErrMaxIterations},
		{"zero learning rate", `{"inputSize": 1, "outputSize": 1, "learningRate": 0}`, ErrLearningRate},
		{"zero threshold", `{"inputSize": 1, "outputSize": 1, "errorThreshold": 0}`, ErrErrorThreshold},
		{"null hidden layers", `{"inputSize": 1, "outputSize": 1, "layerSizes": null}`, ErrMissingHiddenLayers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &cfg))
			_, err := New(cfg).Initialize()
			assert.ErrorIs(t, err, tt.want)
		})
	}

	var fromYAML Config
	require.NoError(t, yaml.Unmarshal([]byte("inputSize: 1\noutputSize: 1\nlearningRate: 0\n"), &fromYAML))
	assert.Equal(t, 0.001, fromYAML.ErrorThreshold)
	_, err = New(fromYAML).Initialize()
	assert.ErrorIs(t, err, ErrLearningRate)
}

func TestErrorMessages(t *testing.T) {
	_, err := New(Config{InputSize: 1, OutputSize: 1, LearningRate: 2}).Initialize()
	assert.EqualError(t, err, "network: initialization: learning rate in config must be a number between 0 and 1")

	_, err = New(Config{}).RunVector([]float64{1})
	assert.EqualError(t, err, "network: run: network is not initialized")
	assert.True(t, errors.Is(err, ErrRun))
	assert.False(t, errors.Is(err, ErrTraining))
}

func TestAccessorsReturnCopies(t *testing.T) {
	n := initialized(t, Config{InputSize: 2, OutputSize: 1})

	w := n.Weights()
	w[0].Set(0, 0, 42)
	assert.NotEqual(t, 42.0, n.Weights()[0].At(0, 0))

	sizes := n.Sizes()
	sizes[0] = 99
	assert.Equal(t, 2, n.Sizes()[0])
}
