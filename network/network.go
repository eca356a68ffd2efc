// Copyright 2025 Feedforward Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"encoding/json"

	"github.com/feedforward-ml/feedforward/internal/network"
)

// Network is a feed-forward network.
type Network = network.Network

// Config holds the layer sizes and training parameters of a Network.
type Config = network.Config

// State holds trained weights and biases, as returned by Network.Save.
type State = network.State

// Snapshot is everything needed to rebuild a Network.
type Snapshot = network.Snapshot

// Samples

// Sample is an input or output value: a Vector or a Record.
type Sample = network.Sample

// Vector is a positional sample.
type Vector = network.Vector

// Record is a sample with named fields.
type Record = network.Record

// Example is one training pair.
type Example = network.Example

// Kind tells vector networks from record networks.
type Kind = network.Kind

// Sample kinds.
const (
	KindNone   = network.KindNone
	KindVector = network.KindVector
	KindRecord = network.KindRecord
)

// Async results

// RunResult is delivered by Network.RunAsync.
type RunResult = network.RunResult

// TrainResult is delivered by Network.TrainAsync.
type TrainResult = network.TrainResult

// Section selects what Network.Dump prints.
type Section = network.Section

// Dump sections.
const (
	SectionAll         = network.SectionAll
	SectionInput       = network.SectionInput
	SectionOutput      = network.SectionOutput
	SectionActivations = network.SectionActivations
	SectionWeights     = network.SectionWeights
	SectionBiases      = network.SectionBiases
)

// Error categories.
var (
	ErrInitialization = network.ErrInitialization
	ErrRun            = network.ErrRun
	ErrTraining       = network.ErrTraining
	ErrLoad           = network.ErrLoad
)

// Specific errors.
var (
	ErrMissingSizes        = network.ErrMissingSizes
	ErrMissingHiddenLayers = network.ErrMissingHiddenLayers
	ErrMaxIterations       = network.ErrMaxIterations
	ErrLearningRate        = network.ErrLearningRate
	ErrErrorThreshold      = network.ErrErrorThreshold
	ErrMomentum            = network.ErrMomentum
	ErrNotInitialized      = network.ErrNotInitialized
	ErrInvalidSample       = network.ErrInvalidSample
	ErrInputSize           = network.ErrInputSize
	ErrOutputSize          = network.ErrOutputSize
	ErrKeyMismatch         = network.ErrKeyMismatch
	ErrMissingKeys         = network.ErrMissingKeys
	ErrKindMismatch        = network.ErrKindMismatch
	ErrNoExamples          = network.ErrNoExamples
	ErrExampleKinds        = network.ErrExampleKinds
	ErrMixedExamples       = network.ErrMixedExamples
	ErrValueRange          = network.ErrValueRange
	ErrLayerCount          = network.ErrLayerCount
	ErrShapeMismatch       = network.ErrShapeMismatch
)

// New returns an uninitialized network. Zero fields of cfg take their
// values from DefaultConfig.
func New(cfg Config) *Network { return network.New(cfg) }

// DefaultConfig returns the default hidden layers and training parameters.
func DefaultConfig() Config { return network.DefaultConfig() }

// FromSnapshot rebuilds a network saved with Network.Snapshot.
func FromSnapshot(s Snapshot) (*Network, error) { return network.FromSnapshot(s) }

// DecodeSample decodes a JSON array as a Vector and a JSON object as a Record.
func DecodeSample(data json.RawMessage) (Sample, error) { return network.DecodeSample(data) }
