// Copyright 2025 Feedforward Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the activation and cost functions used by feedforward
// networks.
//
// # Overview
//
// This package contains:
//   - Activations: Sigmoid and its derivative, element-wise over a matrix
//   - Cost: SquaredError and its derivative
//
// # Basic Usage
//
//	z, _ := matrix.Dot(w, a)
//	z, _ = matrix.Add(z, b)
//	out := nn.Activate(z)
//
//	cost, _ := nn.SquaredError(out, expected)
//	total := matrix.Sum(cost)
package nn
