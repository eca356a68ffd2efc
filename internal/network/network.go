// Package network implements a fully connected feed-forward network with
// sigmoid activations, trained by online gradient descent on the squared
// error.
//
// A Network goes through three states. New returns an unconfigured network.
// Initialize validates the configuration and allocates random weights and
// biases; calling it again always starts over. Train moves the network to the
// trained state and fixes the kind of sample (Vector or Record) it accepts
// from then on.
//
// Example:
//
//	net, err := network.New(network.Config{InputSize: 4, OutputSize: 1}).Initialize()
//	if err != nil {
//	    return err
//	}
//	cost, err := net.Train(examples)
//	out, err := net.Run(network.Vector{1, 0, 0, 0})
//
// A Network is not safe for concurrent use: Run and Train both overwrite the
// stored activations.
package network

import (
	"slices"

	"github.com/feedforward-ml/feedforward/internal/matrix"
	"github.com/feedforward-ml/feedforward/internal/optim"
)

// Network holds the topology and learned state of one model.
type Network struct {
	config Config
	sizes  []int

	// activations[0] is the input; activations[i+1] is the output of layer i.
	activations []*matrix.Matrix
	weights     []*matrix.Matrix // weights[i] has shape (sizes[i+1], sizes[i])
	biases      []*matrix.Matrix // biases[i] has shape (sizes[i+1], 1)

	inputKeys  []string
	outputKeys []string
	kind       Kind

	optimizer   *optim.SGD
	initialized bool
	trained     bool
	iterations  int
}

// New returns an unconfigured network. Zero-valued fields of cfg take their
// value from DefaultConfig; nothing is validated until Initialize.
func New(cfg Config) *Network {
	cfg = cfg.withDefaults()
	return &Network{
		config: cfg,
		sizes:  cfg.Sizes(),
	}
}

// Initialize validates the configuration and allocates fresh state:
// zero activations, and weights and biases drawn uniformly from [0, 1).
// Recorded field names and the trained kind are cleared.
//
// It returns the network itself so calls can be chained.
func (n *Network) Initialize() (*Network, error) {
	if err := n.config.Validate(); err != nil {
		return nil, err
	}

	layers := len(n.sizes) - 1
	activations := make([]*matrix.Matrix, len(n.sizes))
	weights := make([]*matrix.Matrix, layers)
	biases := make([]*matrix.Matrix, layers)

	for i, size := range n.sizes {
		a, err := matrix.New(size, 1)
		if err != nil {
			return nil, categorize(ErrInitialization, err, "")
		}
		activations[i] = a
		if i == 0 {
			continue
		}

		w, err := matrix.New(size, n.sizes[i-1])
		if err != nil {
			return nil, categorize(ErrInitialization, err, "")
		}
		b, err := matrix.New(size, 1)
		if err != nil {
			return nil, categorize(ErrInitialization, err, "")
		}
		weights[i-1] = w.Randomize()
		biases[i-1] = b.Randomize()
	}

	n.activations = activations
	n.weights = weights
	n.biases = biases
	n.inputKeys = nil
	n.outputKeys = nil
	n.kind = KindNone
	n.optimizer = optim.NewSGD(optim.SGDConfig{
		LR:       n.config.LearningRate,
		Momentum: n.config.Momentum,
	})
	n.initialized = true
	n.trained = false
	n.iterations = 0
	return n, nil
}

// Config returns a copy of the effective configuration.
func (n *Network) Config() Config {
	return n.config.clone()
}

// Sizes returns the layer widths [input, hidden..., output].
func (n *Network) Sizes() []int {
	return slices.Clone(n.sizes)
}

// Activations returns copies of the activations of the last forward pass,
// input first.
func (n *Network) Activations() []*matrix.Matrix {
	return cloneAll(n.activations)
}

// Weights returns copies of the weight matrices in layer order.
func (n *Network) Weights() []*matrix.Matrix {
	return cloneAll(n.weights)
}

// Biases returns copies of the bias vectors in layer order.
func (n *Network) Biases() []*matrix.Matrix {
	return cloneAll(n.biases)
}

// InputKeys returns the input field names recorded by training on records.
func (n *Network) InputKeys() []string {
	return slices.Clone(n.inputKeys)
}

// OutputKeys returns the output field names recorded by training on records.
func (n *Network) OutputKeys() []string {
	return slices.Clone(n.outputKeys)
}

// Kind returns the sample kind the network was trained with, or KindNone.
func (n *Network) Kind() Kind {
	return n.kind
}

// Initialized reports whether Initialize has succeeded.
func (n *Network) Initialized() bool {
	return n.initialized
}

// Trained reports whether Train has completed at least once since the last
// Initialize.
func (n *Network) Trained() bool {
	return n.trained
}

// Iterations returns the number of iterations the last Train call ran.
func (n *Network) Iterations() int {
	return n.iterations
}

func cloneAll(ms []*matrix.Matrix) []*matrix.Matrix {
	if ms == nil {
		return nil
	}
	out := make([]*matrix.Matrix, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}
