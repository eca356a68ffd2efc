package network

import (
	"github.com/feedforward-ml/feedforward/internal/matrix"
)

// State is the learned parameters of a network as nested grids.
// Either field may be omitted when loading.
type State struct {
	Weights [][][]float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	Biases  [][][]float64 `json:"biases,omitempty" yaml:"biases,omitempty"`
}

// Save returns a copy of the weights and biases. Activations, sizes and
// field names are not included; see Snapshot for those.
func (n *Network) Save() State {
	return State{
		Weights: grids(n.weights),
		Biases:  grids(n.biases),
	}
}

// Load replaces the weights, the biases, or both. A nil field leaves the
// corresponding parameters untouched. Every grid is checked against the
// configured layer sizes before anything is replaced.
func (n *Network) Load(s State) error {
	if !n.initialized {
		return categorize(ErrLoad, ErrNotInitialized, "")
	}

	var weights, biases []*matrix.Matrix
	if s.Weights != nil {
		var err error
		if weights, err = n.loadLayers("weights", s.Weights, n.weightShape); err != nil {
			return err
		}
	}
	if s.Biases != nil {
		var err error
		if biases, err = n.loadLayers("biases", s.Biases, n.biasShape); err != nil {
			return err
		}
	}

	if weights != nil {
		n.weights = weights
	}
	if biases != nil {
		n.biases = biases
	}
	return nil
}

func (n *Network) weightShape(layer int) matrix.Shape {
	return matrix.Shape{Rows: n.sizes[layer+1], Cols: n.sizes[layer]}
}

func (n *Network) biasShape(layer int) matrix.Shape {
	return matrix.Shape{Rows: n.sizes[layer+1], Cols: 1}
}

func (n *Network) loadLayers(name string, data [][][]float64, shape func(int) matrix.Shape) ([]*matrix.Matrix, error) {
	layers := len(n.sizes) - 1
	if len(data) != layers {
		return nil, categorize(ErrLoad, ErrLayerCount, "%s: got %d layers, want %d", name, len(data), layers)
	}
	out := make([]*matrix.Matrix, layers)
	for i, grid := range data {
		m, err := matrix.FromGrid(grid)
		if err != nil {
			return nil, categorize(ErrLoad, ErrShapeMismatch, "%s[%d]: %v", name, i, err)
		}
		if want := shape(i); !m.Shape().Equal(want) {
			return nil, categorize(ErrLoad, ErrShapeMismatch, "%s[%d]: got %v, want %v", name, i, m.Shape(), want)
		}
		out[i] = m
	}
	return out, nil
}

func grids(ms []*matrix.Matrix) [][][]float64 {
	if ms == nil {
		return nil
	}
	out := make([][][]float64, len(ms))
	for i, m := range ms {
		out[i] = m.Grid()
	}
	return out
}

// Snapshot is everything needed to rebuild a network elsewhere.
type Snapshot struct {
	Config     Config   `json:"config"`
	State      State    `json:"state"`
	Kind       Kind     `json:"kind"`
	InputKeys  []string `json:"inputKeys,omitempty"`
	OutputKeys []string `json:"outputKeys,omitempty"`
	Trained    bool     `json:"trained"`
}

// Snapshot captures the configuration, parameters and field names.
func (n *Network) Snapshot() Snapshot {
	return Snapshot{
		Config:     n.Config(),
		State:      n.Save(),
		Kind:       n.kind,
		InputKeys:  n.InputKeys(),
		OutputKeys: n.OutputKeys(),
		Trained:    n.trained,
	}
}

// FromSnapshot builds an initialized network from s. The snapshot's
// parameters replace the random ones drawn by Initialize.
func FromSnapshot(s Snapshot) (*Network, error) {
	n, err := New(s.Config).Initialize()
	if err != nil {
		return nil, err
	}
	if err := n.Load(s.State); err != nil {
		return nil, err
	}
	if s.Kind == KindRecord {
		if len(s.InputKeys) != n.sizes[0] || len(s.OutputKeys) != n.sizes[len(n.sizes)-1] {
			return nil, categorize(ErrLoad, ErrKeyMismatch, "snapshot has %d input and %d output keys for sizes %v",
				len(s.InputKeys), len(s.OutputKeys), n.sizes)
		}
		n.inputKeys = append([]string(nil), s.InputKeys...)
		n.outputKeys = append([]string(nil), s.OutputKeys...)
	}
	n.kind = s.Kind
	n.trained = s.Trained
	return n, nil
}
