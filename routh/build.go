// SPDX-License-Identifier: MIT

package routh

import (
	"fmt"

	"github.com/katalvlaran/stability/matrix"
)

// BuildTable constructs the Routh array for coeffs (highest degree first).
//
// Algorithm:
//  1. n = len(coeffs), w = ⌈n/2⌉.
//  2. Row 0 ← coeffs[0], coeffs[2], …; row 1 ← coeffs[1], coeffs[3], …;
//     both left-aligned and zero-padded to w.
//  3. For i = 2..n-1 with a = t[i-1][0], b = t[i-2][0]:
//     t[i][j-1] = (a·t[i-2][j] − b·t[i-1][j]) / a   for j = 1..w-1,
//     last cell zero.
//  4. Copy the rows into an immutable Table.
//
// Zero pivots (a == 0) are detected before dividing. Under PivotFail a
// *PivotError is returned; under PivotDefer derivation stops and the
// remaining rows stay zero.
//
// Errors:
//   - ErrEmptyCoefficients — len(coeffs) == 0.
//   - ErrNonFinite         — NaN/±Inf coefficient, or a derived entry overflowed.
//   - ErrInvalidDegree     — coeffs[0] == 0.
//   - ErrZeroPivot         — zero divisor under PivotFail (as *PivotError).
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²)
//
// coeffs is never modified.
func BuildTable(coeffs []float64, opts ...Option) (*Table, error) {
	n := len(coeffs)
	if n == 0 {
		return nil, ErrEmptyCoefficients
	}
	if err := matrix.ValidateFinite(coeffs); err != nil {
		return nil, fmt.Errorf("BuildTable: %w: %w", ErrNonFinite, err)
	}
	if coeffs[0] == 0 {
		return nil, ErrInvalidDegree
	}
	o := gatherOptions(opts...)

	w := (n + 1) / 2
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, w)
	}

	// Seed rows: even-indexed and odd-indexed coefficients.
	for k, c := range coeffs {
		rows[k%2][k/2] = c
	}

	stop := -1
	var a, b float64
	for i := 2; i < n; i++ {
		a, b = rows[i-1][0], rows[i-2][0]
		if a == 0 {
			if o.pivot == PivotFail {
				return nil, &PivotError{Row: i}
			}
			stop = i
			break
		}
		for j := 1; j < w; j++ {
			rows[i][j-1] = (a*rows[i-2][j] - b*rows[i-1][j]) / a
		}
	}

	data, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		// Only a derived entry overflowing to ±Inf can fail here.
		return nil, fmt.Errorf("BuildTable: %w: %w", ErrNonFinite, err)
	}

	return &Table{data: data, stopRow: stop}, nil
}
