// SPDX-License-Identifier: MIT

// Package routh decides stability of a linear time-invariant system from the
// coefficients of its characteristic polynomial with the Routh–Hurwitz
// criterion.
//
// 🚀 What is the Routh–Hurwitz criterion?
//
//	Given p(x) = c₀xⁿ⁻¹ + c₁xⁿ⁻² + … + cₙ₋₁, the Routh array is a triangular
//	tableau whose first two rows are the even- and odd-indexed coefficients.
//	Every further row is derived from the two rows above it:
//
//	    t[i][j-1] = (a·t[i-2][j] − b·t[i-1][j]) / a,   a = t[i-1][0], b = t[i-2][0]
//
//	The number of sign changes down the first column equals the number of
//	roots with a strictly positive real part (unstable poles).
//
// ✨ Key features:
//   - BuildTable: n × ⌈n/2⌉ array, zero-padded, never mutated after return
//   - CountUnstable: sign-change count or the SpecialCase verdict when a
//     first-column entry is zero
//   - explicit zero-pivot policy (PivotFail / PivotDefer) instead of NaN/Inf
//   - Analyze: both steps plus a Stable/Unstable/Inconclusive classification
//
// ⚙️ Usage:
//
//	tbl, err := routh.BuildTable([]float64{1, 3, 2, 7})
//	if err != nil {
//	  // ErrEmptyCoefficients, ErrInvalidDegree, ErrNonFinite, ErrZeroPivot
//	}
//	v, err := routh.CountUnstable(tbl) // v == 2
//
// Remediation of the special cases (epsilon substitution, auxiliary
// polynomial for an all-zero row) is not performed; such inputs are reported
// as SpecialCase (or ErrZeroPivot under PivotFail).
//
// Performance:
//
//   - Time:   O(n²)
//   - Memory: O(n²)
//
// All functions are pure and safe for concurrent use.
package routh
