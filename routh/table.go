// SPDX-License-Identifier: MIT

package routh

import (
	"github.com/katalvlaran/stability/matrix"
)

// Table is a completed Routh array of shape n × ⌈n/2⌉.
//
// Row i corresponds to x^(n-1-i). Unused trailing cells are zero padding.
// A Table is immutable: accessors return copies, never views.
type Table struct {
	data    *matrix.Dense // row-major storage, finite-only policy
	stopRow int           // first row left underived under PivotDefer; -1 when complete
}

// Rows returns n, the number of coefficients the table was built from.
func (t *Table) Rows() int { return t.data.Rows() }

// Width returns ⌈n/2⌉, the number of columns.
func (t *Table) Width() int { return t.data.Cols() }

// Degree returns the degree of the characteristic polynomial (n-1).
func (t *Table) Degree() int { return t.data.Rows() - 1 }

// At returns table[i][j]; out-of-range indices yield matrix.ErrOutOfRange.
func (t *Table) At(i, j int) (float64, error) { return t.data.At(i, j) }

// Row returns a copy of row i including its zero padding.
func (t *Table) Row(i int) ([]float64, error) { return t.data.Row(i) }

// FirstColumn returns a copy of table[i][0] for every row.
func (t *Table) FirstColumn() []float64 {
	col, _ := t.data.Col(0) // column 0 always exists

	return col
}

// Rows2D returns the whole table as a fresh [][]float64.
func (t *Table) Rows2D() [][]float64 {
	out, _ := matrix.ToRows(t.data) // data is never nil for a built Table

	return out
}

// Matrix returns an independent copy of the underlying storage.
func (t *Table) Matrix() matrix.Matrix { return t.data.Clone() }

// Complete reports whether every row was derived. It is false only when
// PivotDefer stopped construction at a zero pivot.
func (t *Table) Complete() bool { return t.stopRow < 0 }

// StoppedAt returns the first underived row under PivotDefer, or -1.
func (t *Table) StoppedAt() int { return t.stopRow }

// String renders the table one row per line, like matrix.Dense.
func (t *Table) String() string { return t.data.String() }
