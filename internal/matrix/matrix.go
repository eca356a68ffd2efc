// Package matrix implements the dense float64 matrix used by the network.
//
// A Matrix has a fixed shape and mutable contents stored row-major in a flat
// slice. Binary operations (Add, Sub, Dot, Hadamard, Transpose, Map) always
// allocate a new Matrix and leave their operands untouched; the backpropagation
// bookkeeping relies on that. The receiver methods AddScalar, SubScalar,
// AddInPlace, SubInPlace, Scale, Apply and Randomize mutate in place and return
// the receiver for chaining.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a dense rows×cols grid of float64 values.
//
// The zero value is a valid 0×0 matrix.
type Matrix struct {
	rows int
	cols int
	data []float64 // row-major, len == rows*cols
}

// newMatrix allocates a zero-filled matrix. Callers validate the shape.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the (rows, cols) pair.
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// At returns the element at row i, column j.
// It panics if the index is out of range, like slice indexing.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns v to the element at row i, column j.
// It panics if the index is out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %v", i, j, m.Shape()))
	}
}

// Grid returns a deep copy of the contents as rows of columns.
func (m *Matrix) Grid() [][]float64 {
	grid := make([][]float64, m.rows)
	for i := range grid {
		row := make([]float64, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		grid[i] = row
	}
	return grid
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := newMatrix(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// AddScalar adds v to every element in place.
func (m *Matrix) AddScalar(v float64) *Matrix {
	floats.AddConst(v, m.data)
	return m
}

// SubScalar subtracts v from every element in place.
func (m *Matrix) SubScalar(v float64) *Matrix {
	floats.AddConst(-v, m.data)
	return m
}

// AddInPlace adds other to m element-wise, mutating m.
func (m *Matrix) AddInPlace(other *Matrix) error {
	if err := validateSameShape(opAddInPlace, m, other); err != nil {
		return err
	}
	floats.Add(m.data, other.data)
	return nil
}

// SubInPlace subtracts other from m element-wise, mutating m.
func (m *Matrix) SubInPlace(other *Matrix) error {
	if err := validateSameShape(opSubInPlace, m, other); err != nil {
		return err
	}
	floats.Sub(m.data, other.data)
	return nil
}

// Scale multiplies every element by k in place.
func (m *Matrix) Scale(k float64) *Matrix {
	floats.Scale(k, m.data)
	return m
}

// Apply replaces every element x with f(x), visiting in row-major order.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	for i, v := range m.data {
		m.data[i] = f(v)
	}
	return m
}

// ForEach calls visit with every element in row-major order without modifying m.
func (m *Matrix) ForEach(visit func(float64)) *Matrix {
	for _, v := range m.data {
		visit(v)
	}
	return m
}
