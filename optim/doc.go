// Copyright 2025 Feedforward Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the gradient-descent update used to train
// feedforward networks.
//
// # Basic Usage
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//
//	// grads[i] is the gradient of params[i].
//	if err := sgd.Step(params, grads); err != nil {
//	    return err
//	}
//
// With momentum, velocities are kept per parameter position:
//
//	sgd := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
package optim
