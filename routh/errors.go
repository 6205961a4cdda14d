// SPDX-License-Identifier: MIT

package routh

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCoefficients indicates that no coefficients were supplied.
	ErrEmptyCoefficients = errors.New("routh: coefficient sequence must be non-empty")

	// ErrInvalidDegree indicates a zero leading coefficient: the input does not
	// describe a polynomial of degree len(coeffs)-1.
	ErrInvalidDegree = errors.New("routh: leading coefficient must be non-zero")

	// ErrNonFinite indicates a NaN/±Inf coefficient, or a derived entry that
	// overflowed to ±Inf.
	ErrNonFinite = errors.New("routh: non-finite value")

	// ErrZeroPivot indicates a zero first-column divisor during construction
	// under the PivotFail policy.
	ErrZeroPivot = errors.New("routh: zero pivot")

	// ErrInvalidArray indicates a malformed array handed to the counter
	// (nil, no rows, no columns, ragged rows, non-finite first column).
	ErrInvalidArray = errors.New("routh: invalid array")
)

// PivotError reports where construction hit a zero pivot.
// It unwraps to ErrZeroPivot.
type PivotError struct {
	Row int // row that could not be derived; the divisor is table[Row-1][0]
}

// Error implements error.
func (e *PivotError) Error() string {
	return fmt.Sprintf("%v: row %d (divisor table[%d][0] is zero)", ErrZeroPivot, e.Row, e.Row-1)
}

// Unwrap lets errors.Is(err, ErrZeroPivot) match.
func (e *PivotError) Unwrap() error { return ErrZeroPivot }
