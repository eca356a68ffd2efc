package network

import (
	"fmt"
	"io"

	"github.com/feedforward-ml/feedforward/internal/matrix"
)

// Section selects what Dump prints.
type Section string

// Dump sections.
const (
	SectionAll         Section = "all"
	SectionInput       Section = "input"
	SectionOutput      Section = "output"
	SectionActivations Section = "activations"
	SectionWeights     Section = "weights"
	SectionBiases      Section = "biases"
)

// Dump writes the selected matrices to w. An empty section means SectionAll.
func (n *Network) Dump(w io.Writer, section Section) error {
	if !n.initialized {
		return ErrNotInitialized
	}

	switch section {
	case SectionInput:
		return n.activations[0].Print(w, "input ")
	case SectionOutput:
		return n.activations[len(n.activations)-1].Print(w, "output ")
	case SectionActivations:
		return printAll(w, "activation", n.activations)
	case SectionWeights:
		return printAll(w, "weight", n.weights)
	case SectionBiases:
		return printAll(w, "bias", n.biases)
	case SectionAll, "":
		for _, s := range []Section{SectionActivations, SectionWeights, SectionBiases} {
			if err := n.Dump(w, s); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
}

func printAll(w io.Writer, label string, ms []*matrix.Matrix) error {
	for i, m := range ms {
		if err := m.Print(w, fmt.Sprintf("%s[%d] ", label, i)); err != nil {
			return err
		}
	}
	return nil
}
