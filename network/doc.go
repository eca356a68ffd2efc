// Copyright 2025 Feedforward Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides a small fully connected feed-forward network with
// sigmoid activations, trained by gradient descent on the squared error.
//
// # Basic Usage
//
//	net, err := network.New(network.Config{
//	    InputSize:  4,
//	    OutputSize: 1,
//	    LayerSizes: []int{4, 3},
//	}).Initialize()
//	if err != nil {
//	    return err
//	}
//
//	cost, err := net.Train([]network.Example{
//	    {Input: network.Vector{1, 0, 0, 0}, Output: network.Vector{1}},
//	    {Input: network.Vector{0, 1, 0, 0}, Output: network.Vector{0}},
//	})
//
//	out, err := net.RunVector([]float64{0, 0, 1, 0})
//
// # Named fields
//
// Examples may use records instead of vectors. The field names seen in the
// first example are recorded at training time and later runs must use the
// same names:
//
//	net.Train([]network.Example{
//	    {Input: network.Record{"r": 1, "g": 0}, Output: network.Record{"light": 1}},
//	})
//	out, err := net.RunRecord(map[string]float64{"r": 0, "g": 1})
//
// # Errors
//
// Every error matches one of ErrInitialization, ErrRun, ErrTraining or ErrLoad
// with errors.Is, together with a more specific sentinel.
package network
