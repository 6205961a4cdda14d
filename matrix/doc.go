// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the stability
// toolkit.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and a finite-only numeric policy.
//   - NewDenseFromRows for building a Dense from ragged-checked row slices.
//   - Validators shared by callers that accept any Matrix implementation.
//   - ToGonum / FromGonum bridges for interop with gonum.org/v1/gonum/mat.
//
// All operations are deterministic: loops run in fixed row-major order and
// no map iteration is involved.
//
// See the examples in this package for usage patterns.
package matrix
