// SPDX-License-Identifier: MIT
package routh_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stability/routh"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuildTable
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Characteristic polynomial x³ + 3x² + 2x + 7.
//	First column: 1, 3, -1/3, 7 → two sign changes → two unstable poles.
//
// Complexity: O(n²) time, O(n²) memory
func ExampleBuildTable() {
	tbl, err := routh.BuildTable([]float64{1, 3, 2, 7})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, _ := routh.CountUnstable(tbl)
	fmt.Printf("first column=%.3f\nverdict=%v\n", tbl.FirstColumn(), v)
	// Output:
	// first column=[1.000 3.000 -0.333 7.000]
	// verdict=2 unstable poles
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAnalyze_zeroPivot
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	x³ + x² + x + 1 produces a zero in row 2 of the first column.
//	PivotFail (default) reports ErrZeroPivot; PivotDefer reports SpecialCase.
func ExampleAnalyze_zeroPivot() {
	coeffs := []float64{1, 1, 1, 1}

	_, err := routh.Analyze(coeffs)
	fmt.Println(errors.Is(err, routh.ErrZeroPivot))

	res, _ := routh.Analyze(coeffs, routh.WithPivotPolicy(routh.PivotDefer))
	fmt.Println(res.Verdict, res.Stability)
	// Output:
	// true
	// special case inconclusive
}
