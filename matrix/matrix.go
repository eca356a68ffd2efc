// Copyright 2025 Feedforward Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand/v2"

	"github.com/feedforward-ml/feedforward/internal/matrix"
)

// Matrix is a dense rows×cols grid of float64 values.
type Matrix = matrix.Matrix

// Shape is a (rows, cols) pair.
type Shape = matrix.Shape

// Errors returned by constructors and operations.
var (
	ErrInvalidDimension  = matrix.ErrInvalidDimension
	ErrEmptyInput        = matrix.ErrEmptyInput
	ErrRaggedInput       = matrix.ErrRaggedInput
	ErrNotAVector        = matrix.ErrNotAVector
	ErrNilMatrix         = matrix.ErrNilMatrix
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrDegenerateMatrix  = matrix.ErrDegenerateMatrix
)

// Constructors

// New returns a zero-filled rows×cols matrix.
func New(rows, cols int) (*Matrix, error) { return matrix.New(rows, cols) }

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) { return matrix.Identity(n) }

// FromColumn returns an n×1 column vector holding a copy of values.
func FromColumn(values []float64) (*Matrix, error) { return matrix.FromColumn(values) }

// FromGrid returns a matrix holding a copy of grid.
func FromGrid(grid [][]float64) (*Matrix, error) { return matrix.FromGrid(grid) }

// ToColumn flattens a single-column matrix into a slice.
func ToColumn(m *Matrix) ([]float64, error) { return matrix.ToColumn(m) }

// Operations

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) { return matrix.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) { return matrix.Sub(a, b) }

// Hadamard returns the element-wise product of a and b.
func Hadamard(a, b *Matrix) (*Matrix, error) { return matrix.Hadamard(a, b) }

// Dot returns the matrix product a·b.
func Dot(a, b *Matrix) (*Matrix, error) { return matrix.Dot(a, b) }

// Transpose returns the transpose of m.
func Transpose(m *Matrix) (*Matrix, error) { return matrix.Transpose(m) }

// Map returns a new matrix with f applied to every element of m.
func Map(m *Matrix, f func(float64) float64) *Matrix { return matrix.Map(m, f) }

// Sum returns the sum of all elements.
func Sum(m *Matrix) float64 { return matrix.Sum(m) }

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b *Matrix) bool { return matrix.Equal(a, b) }

// Random source

// Seed makes Randomize deterministic.
func Seed(seed uint64) { matrix.Seed(seed) }

// SetRandSource replaces the source used by Randomize.
func SetRandSource(src rand.Source) { matrix.SetRandSource(src) }

// SetWorkers lets Dot split large products across n goroutines.
// The default is 1.
func SetWorkers(n int) { matrix.SetWorkers(n) }
