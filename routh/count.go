// SPDX-License-Identifier: MIT

package routh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stability/matrix"
)

// Verdict is the outcome of CountUnstable: a non-negative number of unstable
// poles, or SpecialCase.
type Verdict int

// SpecialCase marks a table whose first column contains a zero. The
// sign-change rule does not apply and no count is reported.
const SpecialCase Verdict = -1

// IsSpecial reports whether v is SpecialCase.
func (v Verdict) IsSpecial() bool { return v < 0 }

// Count returns the unstable-pole count and true, or (0, false) for SpecialCase.
func (v Verdict) Count() (int, bool) {
	if v.IsSpecial() {
		return 0, false
	}

	return int(v), true
}

// String implements fmt.Stringer.
func (v Verdict) String() string {
	if v.IsSpecial() {
		return "special case"
	}

	return fmt.Sprintf("%d unstable poles", int(v))
}

// CountUnstable counts sign changes down the first column of t.
//
// Returns SpecialCase (with a nil error) if any first-column entry is zero.
// Returns ErrInvalidArray for a nil table.
//
// Complexity: O(n).
func CountUnstable(t *Table) (Verdict, error) {
	if t == nil || t.data == nil {
		return 0, fmt.Errorf("CountUnstable: nil table: %w", ErrInvalidArray)
	}

	return countColumn(t.FirstColumn()), nil
}

// CountUnstableMatrix applies the counting rule to any matrix.Matrix, so
// arrays built outside BuildTable are accepted. The loop bound is m.Rows().
//
// Errors: ErrInvalidArray for nil/empty matrices or a non-finite first column.
// Complexity: O(rows).
func CountUnstableMatrix(m matrix.Matrix) (Verdict, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return 0, fmt.Errorf("CountUnstableMatrix: %w: %w", ErrInvalidArray, err)
	}
	col := make([]float64, m.Rows())
	var err error
	for i := range col {
		if col[i], err = m.At(i, 0); err != nil {
			return 0, fmt.Errorf("CountUnstableMatrix: %w: %w", ErrInvalidArray, err)
		}
		if math.IsNaN(col[i]) || math.IsInf(col[i], 0) {
			return 0, fmt.Errorf("CountUnstableMatrix: row %d: %w: %w", i, ErrInvalidArray, matrix.ErrNaNInf)
		}
	}

	return countColumn(col), nil
}

// CountUnstableRows is CountUnstableMatrix for a plain [][]float64.
// Ragged or empty input yields ErrInvalidArray.
func CountUnstableRows(rows [][]float64) (Verdict, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return 0, fmt.Errorf("CountUnstableRows: %w: %w", ErrInvalidArray, err)
	}

	return CountUnstableMatrix(m)
}

// SignChanges returns the row indices i (i ≥ 1) where the first column
// changes sign between rows i-1 and i. It returns nil for a special-case table.
func SignChanges(t *Table) []int {
	if t == nil || t.data == nil {
		return nil
	}
	col := t.FirstColumn()
	if hasZero(col) {
		return nil
	}

	return signFlips(col)
}

// countColumn is the counting rule shared by every entry point.
func countColumn(col []float64) Verdict {
	if hasZero(col) {
		return SpecialCase
	}

	return Verdict(len(signFlips(col)))
}

// signFlips compares signs rather than multiplying neighbours, so tiny
// entries cannot underflow the product to zero. col must not contain zeros.
func signFlips(col []float64) []int {
	var out []int
	for i := 1; i < len(col); i++ {
		if (col[i-1] < 0) != (col[i] < 0) {
			out = append(out, i)
		}
	}

	return out
}

func hasZero(col []float64) bool {
	for _, v := range col {
		if v == 0 {
			return true
		}
	}

	return false
}
