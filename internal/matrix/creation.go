package matrix

import "fmt"

// New creates a zero-filled rows×cols matrix.
//
// Zero rows or columns are allowed and produce an empty matrix.
//
// Example:
//
//	m, err := matrix.New(2, 3) // [[0 0 0] [0 0 0]]
func New(rows, cols int) (*Matrix, error) {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	return newMatrix(rows, cols), nil
}

// Identity creates an n×n matrix with ones on the diagonal.
func Identity(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: %w: %d", opIdentity, ErrInvalidDimension, n)
	}
	m := newMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// FromColumn builds an n×1 column vector from values.
func FromColumn(values []float64) (*Matrix, error) {
	if len(values) == 0 {
		return nil, matrixErrorf(opFromColumn, ErrEmptyInput)
	}
	m := newMatrix(len(values), 1)
	copy(m.data, values)
	return m, nil
}

// FromGrid builds a matrix from a rectangular grid given as rows of columns.
//
// The outer slice must be non-empty, and every row must be non-empty and of
// the same length as the first.
func FromGrid(grid [][]float64) (*Matrix, error) {
	if len(grid) == 0 {
		return nil, matrixErrorf(opFromGrid, ErrEmptyInput)
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) == 0 || len(row) != cols {
			return nil, fmt.Errorf("%s: %w: row %d has %d columns, want %d", opFromGrid, ErrRaggedInput, i, len(row), cols)
		}
	}
	m := newMatrix(len(grid), cols)
	for i, row := range grid {
		copy(m.data[i*cols:], row)
	}
	return m, nil
}

// ToColumn flattens a column vector into a slice, top to bottom.
func ToColumn(m *Matrix) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opToColumn, ErrNilMatrix)
	}
	if m.cols > 1 {
		return nil, fmt.Errorf("%s: %w: %v", opToColumn, ErrNotAVector, m.Shape())
	}
	if m.Shape().Degenerate() {
		return nil, fmt.Errorf("%s: %w: %v", opToColumn, ErrDegenerateMatrix, m.Shape())
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out, nil
}
