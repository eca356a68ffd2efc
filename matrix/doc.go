// Copyright 2025 Feedforward Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrix used by feedforward networks.
//
// Matrices are stored row-major. The free functions (Add, Sub, Hadamard, Dot,
// Transpose, Map) return a new matrix and never modify their operands; the
// methods AddScalar, SubScalar, AddInPlace, SubInPlace, Apply and Randomize
// work in place.
//
// Example:
//
//	w, _ := matrix.FromGrid([][]float64{{1, 2}, {3, 4}})
//	x, _ := matrix.FromColumn([]float64{1, 1})
//	y, _ := matrix.Dot(w, x) // 2x1: [3 7]
//
// Errors are sentinels such as ErrDimensionMismatch, matched with errors.Is.
package matrix
