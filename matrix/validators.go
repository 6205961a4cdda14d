// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// ValidateNotNil rejects a nil Matrix, including a typed nil such as
// (*Dense)(nil) stored in the interface.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty is ValidateNotNil plus a positive shape check.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("ValidateNonEmpty: %w", err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return fmt.Errorf("ValidateNonEmpty: %dx%d: %w", m.Rows(), m.Cols(), ErrInvalidDimensions)
	}

	return nil
}

// ValidateFinite returns ErrNaNInf, tagged with the index, for the first
// NaN or ±Inf in xs.
func ValidateFinite(xs []float64) error {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateFinite: index %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}
