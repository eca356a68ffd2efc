package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedforward-ml/feedforward/matrix"
	"github.com/feedforward-ml/feedforward/network"
)

func TestPublicTrainAndRun(t *testing.T) {
	matrix.Seed(7)

	net, err := network.New(network.Config{
		InputSize:      2,
		OutputSize:     1,
		LayerSizes:     []int{3},
		MaxIterations:  200,
		ErrorThreshold: 0.0001,
	}).Initialize()
	require.NoError(t, err)

	_, err = net.Train([]network.Example{
		{Input: network.Vector{1, 0}, Output: network.Vector{1}},
		{Input: network.Vector{0, 1}, Output: network.Vector{0}},
	})
	require.NoError(t, err)
	assert.True(t, net.Trained())
	assert.Equal(t, network.KindVector, net.Kind())

	out, err := net.RunVector([]float64{1, 0})
	require.NoError(t, err)
	require.Len(t, out, 1)

	_, err = net.RunRecord(map[string]float64{"a": 1})
	assert.ErrorIs(t, err, network.ErrRun)
	assert.ErrorIs(t, err, network.ErrKindMismatch)
}

func TestPublicConfigErrors(t *testing.T) {
	_, err := network.New(network.Config{InputSize: 1, OutputSize: 1, LayerSizes: []int{}}).Initialize()
	assert.ErrorIs(t, err, network.ErrInitialization)
	assert.ErrorIs(t, err, network.ErrMissingHiddenLayers)
}
