package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Kind tells positional samples from named-field samples.
type Kind int

const (
	// KindNone marks a network that has not been trained yet.
	KindNone Kind = iota
	KindVector
	KindRecord
)

var kindNames = map[Kind]string{
	KindNone:   "none",
	KindVector: "vector",
	KindRecord: "record",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("network: unknown kind %q", text)
}

// Sample is the input or output of a network: either a Vector or a Record.
type Sample interface {
	Kind() Kind
	Len() int
}

// Vector is a positional sample, one value per neuron.
type Vector []float64

// Kind returns KindVector.
func (Vector) Kind() Kind { return KindVector }

// Len returns the number of values.
func (v Vector) Len() int { return len(v) }

// Record is a named-field sample. Field names are sorted lexicographically
// to obtain the neuron order.
type Record map[string]float64

// Kind returns KindRecord.
func (Record) Kind() Kind { return KindRecord }

// Len returns the number of fields.
func (r Record) Len() int { return len(r) }

// Keys returns the field names in neuron order.
func (r Record) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// Values returns the field values in neuron order.
func (r Record) Values() []float64 {
	keys := r.Keys()
	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = r[k]
	}
	return values
}

// Example is one training pair. Input and Output must be of the same kind.
type Example struct {
	Input  Sample `json:"input"`
	Output Sample `json:"output"`
}

// UnmarshalJSON decodes arrays as Vector and objects as Record.
func (e *Example) UnmarshalJSON(data []byte) error {
	var raw struct {
		Input  json.RawMessage `json:"input"`
		Output json.RawMessage `json:"output"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in, err := DecodeSample(raw.Input)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	out, err := DecodeSample(raw.Output)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	e.Input, e.Output = in, out
	return nil
}

// DecodeSample decodes a JSON array into a Vector and a JSON object into a Record.
func DecodeSample(data json.RawMessage) (Sample, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrInvalidSample
	}
	switch trimmed[0] {
	case '[':
		var v Vector
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSample, err)
		}
		return v, nil
	case '{':
		var r Record
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSample, err)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: got %.20q", ErrInvalidSample, trimmed)
	}
}
