// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write surface shared by Dense and any caller-supplied
// array handed to the routh counters. Indexing never panics.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns cell (i,j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes cell (i,j); ErrOutOfRange or ErrNaNInf on rejection.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
