// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix: element (i, j) lives at data[i*c + j].
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a rows×cols zero matrix. Zero-sized shapes are legal
// (the distance table of an empty graph is 0×0).
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDistanceTable returns an n×n table with 0 on the diagonal and +Inf
// elsewhere.
func NewDistanceTable(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	for i := range d.data {
		d.data[i] = inf
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
	}

	return d, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). NaN is rejected; ±Inf is a legal distance.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, row, col, ErrNaN)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice aliasing the underlying buffer, or nil if i
// is out of range. Writes through the slice are visible in m.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Col copies column j into dst (grown if needed) and returns it.
func (m *Dense) Col(j int, dst []float64) []float64 {
	if j < 0 || j >= m.c {
		return dst[:0]
	}
	if cap(dst) < m.r {
		dst = make([]float64, m.r)
	}
	dst = dst[:m.r]
	for i := 0; i < m.r; i++ {
		dst[i] = m.data[i*m.c+j]
	}

	return dst
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String renders the matrix one row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
