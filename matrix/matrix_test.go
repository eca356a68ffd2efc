package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedforward-ml/feedforward/matrix"
)

func TestPublicAPI(t *testing.T) {
	w, err := matrix.FromGrid([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	x, err := matrix.FromColumn([]float64{1, 1})
	require.NoError(t, err)

	y, err := matrix.Dot(w, x)
	require.NoError(t, err)
	col, err := matrix.ToColumn(y)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, col)

	_, err = matrix.Dot(x, w)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
