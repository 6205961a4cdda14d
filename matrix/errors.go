// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels are returned wrapped with call-site context; match with errors.Is.
var (
	// ErrInvalidDimensions: a requested or ingested shape has zero rows or columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf: a non-finite value under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil Matrix, including a typed nil pointer.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
