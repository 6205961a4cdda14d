// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// method tags for wrapped errors
const (
	opAt  = "At"
	opSet = "Set"
	opRow = "Row"
	opCol = "Col"
)

// wrapAt attaches the Dense method and coordinates to a sentinel.
func wrapAt(op string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, i, j, err)
}

// Dense stores an r×c matrix in one flat row-major slice: cell (i,j) lives
// at data[i*c+j]. With the finite-only policy on, Set refuses NaN and ±Inf.
type Dense struct {
	r, c   int
	data   []float64
	finite bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates a zero-filled rows×cols matrix.
//
// Errors: ErrInvalidDimensions when rows or cols is not positive.
// Complexity: O(rows*cols).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), finite: o.validateNaNInf}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) inside(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns cell (i,j).
func (m *Dense) At(i, j int) (float64, error) {
	if !m.inside(i, j) {
		return 0, wrapAt(opAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set writes v into cell (i,j). Errors: ErrOutOfRange, or ErrNaNInf under
// the finite-only policy.
func (m *Dense) Set(i, j int, v float64) error {
	if !m.inside(i, j) {
		return wrapAt(opSet, i, j, ErrOutOfRange)
	}
	if m.finite && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return wrapAt(opSet, i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, wrapAt(opRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Col returns a copy of column j, top to bottom.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, wrapAt(opCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy that keeps the numeric policy.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...), finite: m.finite}
}

// String prints one bracketed row per line, values in %g:
//
//	[1, 1]
//	[2, 0]
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
