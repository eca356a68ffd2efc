package network

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by a Network method matches exactly
// one of them with errors.Is, together with the specific error below.
var (
	ErrInitialization = errors.New("network: initialization")
	ErrRun            = errors.New("network: run")
	ErrTraining       = errors.New("network: training")
	ErrLoad           = errors.New("network: load")
)

// Configuration errors, reported by Initialize and Config.Validate.
var (
	ErrMissingSizes        = fmt.Errorf("%w: neural network cannot have empty activation layers", ErrInitialization)
	ErrMissingHiddenLayers = fmt.Errorf("%w: hidden layers are required but couldn't be found in config", ErrInitialization)
	ErrMaxIterations       = fmt.Errorf("%w: invalid max iterations in config", ErrInitialization)
	ErrLearningRate        = fmt.Errorf("%w: learning rate in config must be a number between 0 and 1", ErrInitialization)
	ErrErrorThreshold      = fmt.Errorf("%w: error threshold in config must be a number between 0 and 1", ErrInitialization)
	ErrMomentum            = fmt.Errorf("%w: momentum in config must be in [0, 1)", ErrInitialization)
)

// Errors shared by run, training and load. They are wrapped together with
// the category of the failing call.
var (
	ErrNotInitialized = errors.New("network is not initialized")
	ErrInvalidSample  = errors.New("sample must be a vector or a record")
	ErrInputSize      = errors.New("input size does not match the configured input layer")
	ErrOutputSize     = errors.New("output size does not match the configured output layer")
	ErrKeyMismatch    = errors.New("field names do not match the recorded keys")
	ErrMissingKeys    = errors.New("network has no recorded field names")
	// ErrKindMismatch is returned when vector input reaches a network trained
	// on records, or the other way round.
	ErrKindMismatch = errors.New("sample kind does not match the kind the network was trained with")

	ErrNoExamples    = errors.New("training data is empty")
	ErrExampleKinds  = errors.New("example input and output must be of the same kind")
	ErrMixedExamples = errors.New("examples mix vectors and records")
	ErrValueRange    = errors.New("training values must be between 0 and 1")

	ErrLayerCount    = errors.New("layer count does not match the network")
	ErrShapeMismatch = errors.New("matrix shape does not match the configured layer sizes")

	ErrUnknownSection = errors.New("unknown dump section")
)

// categorize wraps err with a call category and optional detail.
func categorize(category, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", category, err)
	}
	return fmt.Errorf("%w: %w: %s", category, err, fmt.Sprintf(format, args...))
}
