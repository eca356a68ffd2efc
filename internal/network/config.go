package network

import (
	"encoding/json"
	"math"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config describes the topology and training schedule of a network.
type Config struct {
	InputSize  int   `json:"inputSize" yaml:"inputSize"`
	OutputSize int   `json:"outputSize" yaml:"outputSize"`
	LayerSizes []int `json:"layerSizes" yaml:"layerSizes"`

	MaxIterations  int     `json:"maxIterations" yaml:"maxIterations"`
	LearningRate   float64 `json:"learningRate" yaml:"learningRate"`
	ErrorThreshold float64 `json:"errorThreshold" yaml:"errorThreshold"`

	// Momentum is the SGD momentum factor in [0, 1). Zero disables it.
	Momentum float64 `json:"momentum,omitempty" yaml:"momentum,omitempty"`

	// Progress, when set, is called after every training iteration with the
	// 1-based iteration number and the mean cost of that iteration.
	Progress func(iteration int, cost float64) `json:"-" yaml:"-"`

	// decoded is set by UnmarshalJSON and UnmarshalYAML, which start from
	// DefaultConfig. Fields present in the document are then kept as given,
	// including explicit zeros.
	decoded bool
}

// UnmarshalJSON decodes over DefaultConfig, so absent fields keep their
// defaults and present fields, zero or not, are validated as written.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	p := plain(DefaultConfig())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Config(p)
	c.decoded = true
	return nil
}

// UnmarshalYAML is the YAML counterpart of UnmarshalJSON.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config
	p := plain(DefaultConfig())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = Config(p)
	c.decoded = true
	return nil
}

// DefaultConfig returns the values New uses for unset fields.
// Input and output sizes have no default.
func DefaultConfig() Config {
	return Config{
		LayerSizes:     []int{3, 3},
		MaxIterations:  10000,
		LearningRate:   0.1,
		ErrorThreshold: 0.001,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig.
// A nil LayerSizes is unset; an empty non-nil slice is kept as given.
// Decoded configs already carry their defaults and are kept as given.
func (c Config) withDefaults() Config {
	if c.decoded {
		return c.clone()
	}
	def := DefaultConfig()
	if c.LayerSizes == nil {
		c.LayerSizes = def.LayerSizes
	} else {
		c.LayerSizes = slices.Clone(c.LayerSizes)
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = def.MaxIterations
	}
	if c.LearningRate == 0 {
		c.LearningRate = def.LearningRate
	}
	if c.ErrorThreshold == 0 {
		c.ErrorThreshold = def.ErrorThreshold
	}
	return c
}

// Sizes returns the layer widths [input, hidden..., output].
func (c Config) Sizes() []int {
	sizes := make([]int, 0, len(c.LayerSizes)+2)
	sizes = append(sizes, c.InputSize)
	sizes = append(sizes, c.LayerSizes...)
	return append(sizes, c.OutputSize)
}

// Validate reports the first configuration problem, if any.
func (c Config) Validate() error {
	if len(c.LayerSizes) == 0 {
		return ErrMissingHiddenLayers
	}
	for _, size := range c.Sizes() {
		if size < 1 {
			return ErrMissingSizes
		}
	}
	if c.MaxIterations < 1 {
		return ErrMaxIterations
	}
	if !openUnit(c.LearningRate) {
		return ErrLearningRate
	}
	if !openUnit(c.ErrorThreshold) {
		return ErrErrorThreshold
	}
	if c.Momentum < 0 || c.Momentum >= 1 || math.IsNaN(c.Momentum) {
		return ErrMomentum
	}
	return nil
}

// openUnit reports whether 0 < v < 1. NaN is rejected.
func openUnit(v float64) bool {
	return v > 0 && v < 1 && !math.IsNaN(v)
}

func (c Config) clone() Config {
	c.LayerSizes = slices.Clone(c.LayerSizes)
	return c
}
