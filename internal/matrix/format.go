package matrix

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// String renders the matrix with its shape, e.g.
//
//	2x2
//	⎡1  2⎤
//	⎣3  4⎦
//
// Matrices with a zero dimension render as "[] (0x3)".
func (m *Matrix) String() string {
	if m.Shape().Degenerate() {
		return fmt.Sprintf("[] (%v)", m.Shape())
	}
	dense := mat.NewDense(m.rows, m.cols, m.Clone().data)
	return fmt.Sprintf("%v\n%v", m.Shape(), mat.Formatted(dense, mat.Squeeze()))
}

// Print writes the rendered matrix to w, prefixing the first line with label.
func (m *Matrix) Print(w io.Writer, label string) error {
	_, err := fmt.Fprintf(w, "%s%s\n", label, m.String())
	return err
}
