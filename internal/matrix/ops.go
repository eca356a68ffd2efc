package matrix

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/feedforward-ml/feedforward/internal/parallel"
)

var (
	dotMu      sync.RWMutex
	dotWorkers = parallel.DefaultConfig()
)

// SetWorkers sets how many goroutines Dot may split a large product across.
// The default of 1 keeps every operation on the calling goroutine; n < 1
// restores it.
func SetWorkers(n int) {
	dotMu.Lock()
	defer dotMu.Unlock()
	dotWorkers.Workers = max(n, 1)
}

// Workers returns the value set by SetWorkers.
func Workers() int {
	dotMu.RLock()
	defer dotMu.RUnlock()
	return dotWorkers.Workers
}

func dotConfig() parallel.Config {
	dotMu.RLock()
	defer dotMu.RUnlock()
	return dotWorkers
}

// Add returns a + b element-wise. Operands are not modified.
func Add(a, b *Matrix) (*Matrix, error) {
	if err := validateSameShape(opAdd, a, b); err != nil {
		return nil, err
	}
	res := newMatrix(a.rows, a.cols)
	floats.AddTo(res.data, a.data, b.data)
	return res, nil
}

// Sub returns a - b element-wise. Operands are not modified.
func Sub(a, b *Matrix) (*Matrix, error) {
	if err := validateSameShape(opSub, a, b); err != nil {
		return nil, err
	}
	res := newMatrix(a.rows, a.cols)
	floats.SubTo(res.data, a.data, b.data)
	return res, nil
}

// Hadamard returns the element-wise product of a and b.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	if err := validateSameShape(opHadamard, a, b); err != nil {
		return nil, err
	}
	res := newMatrix(a.rows, a.cols)
	floats.MulTo(res.data, a.data, b.data)
	return res, nil
}

// Dot returns the matrix product a·b with shape (a.Rows, b.Cols).
//
// a.Cols must equal b.Rows. Each output row is accumulated over k in
// ascending order, so results match the textbook triple loop. After
// SetWorkers(n > 1), large products are split by output row across
// goroutines with bit-identical results.
// Complexity: O(a.Rows · a.Cols · b.Cols).
func Dot(a, b *Matrix) (*Matrix, error) {
	if err := validateBinary(opDot, a, b); err != nil {
		return nil, err
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("%s: %w: %v · %v", opDot, ErrDimensionMismatch, a.Shape(), b.Shape())
	}

	n := b.cols
	res := newMatrix(a.rows, n)
	parallel.Rows(a.rows, a.cols*n, dotConfig(), func(i int) {
		out := res.data[i*n : (i+1)*n]
		for k := 0; k < a.cols; k++ {
			floats.AddScaled(out, a.data[i*a.cols+k], b.data[k*n:(k+1)*n])
		}
	})
	return res, nil
}

// Transpose returns the (cols, rows) matrix t with t[j][i] == m[i][j].
func Transpose(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	if m.Shape().Degenerate() {
		return nil, fmt.Errorf("%s: %w: %v", opTranspose, ErrDegenerateMatrix, m.Shape())
	}
	res := newMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return res, nil
}

// Map returns a new matrix holding f applied to every element of m.
func Map(m *Matrix, f func(float64) float64) *Matrix {
	res := newMatrix(m.rows, m.cols)
	for i, v := range m.data {
		res.data[i] = f(v)
	}
	return res
}

// Sum returns the total of all elements.
func Sum(m *Matrix) float64 {
	return floats.Sum(m.data)
}

// Equal reports whether a and b have the same shape and identical elements.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Shape().Equal(b.Shape()) && floats.Equal(a.data, b.data)
}
