package matrix

import "fmt"

// Shape is the (rows, cols) pair of a matrix.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns rows*cols.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that neither dimension is negative.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDimension, s)
	}
	return nil
}

// Degenerate reports whether the shape has a zero dimension.
func (s Shape) Degenerate() bool {
	return s.Rows == 0 || s.Cols == 0
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// String formats the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
