package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by matrix constructors and operations.
// Callers match them with errors.Is; the returned error is wrapped with the
// name of the failing operation, e.g. "Dot: matrix: dimension mismatch: 2x3 · 2x3".
var (
	// ErrInvalidDimension is returned when a requested row or column count is negative.
	ErrInvalidDimension = errors.New("matrix: dimensions must not be negative")

	// ErrEmptyInput is returned when a constructor receives an empty sequence.
	ErrEmptyInput = errors.New("matrix: input is empty")

	// ErrRaggedInput is returned when grid rows are empty or differ in length.
	ErrRaggedInput = errors.New("matrix: rows must be non-empty and of equal length")

	// ErrNotAVector is returned when a multi-column matrix is flattened as a column vector.
	ErrNotAVector = errors.New("matrix: matrix has more than one column")

	// ErrNilMatrix is returned when a nil matrix is passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch is returned when operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDegenerateMatrix is returned when an operation needs at least one row and one column.
	ErrDegenerateMatrix = errors.New("matrix: matrix must have at least 1 row and 1 column")
)

// Operation tags used as error prefixes.
const (
	opNew        = "New"
	opIdentity   = "Identity"
	opFromColumn = "FromColumn"
	opFromGrid   = "FromGrid"
	opToColumn   = "ToColumn"
	opAdd        = "Add"
	opSub        = "Sub"
	opDot        = "Dot"
	opHadamard   = "Hadamard"
	opTranspose  = "Transpose"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
)

// matrixErrorf wraps err with an operation tag, keeping the sentinel reachable via errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateBinary checks that both operands are present.
func validateBinary(op string, a, b *Matrix) error {
	if a == nil || b == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	return nil
}

// validateSameShape checks that both operands are present and share a shape.
func validateSameShape(op string, a, b *Matrix) error {
	if err := validateBinary(op, a, b); err != nil {
		return err
	}
	if !a.Shape().Equal(b.Shape()) {
		return fmt.Errorf("%s: %w: %v vs %v", op, ErrDimensionMismatch, a.Shape(), b.Shape())
	}
	return nil
}
