// SPDX-License-Identifier: MIT

package routh

import (
	"fmt"
	"strings"
)

// PivotPolicy controls what BuildTable does when a first-column divisor is zero.
//
//   - PivotFail  — stop and return *PivotError (errors.Is ErrZeroPivot).
//   - PivotDefer — stop deriving rows and return the partial table; the rows
//     below the zero pivot stay zero, so CountUnstable reports SpecialCase.
//
// Neither policy ever divides by zero.
type PivotPolicy int

const (
	// PivotFail returns ErrZeroPivot at the first zero divisor.
	PivotFail PivotPolicy = iota

	// PivotDefer leaves the decision to CountUnstable.
	PivotDefer
)

// DefaultPivotPolicy is used when no WithPivotPolicy option is given.
const DefaultPivotPolicy = PivotFail

const (
	pivotFailName  = "fail"
	pivotDeferName = "defer"
)

// String returns the policy name accepted by ParsePivotPolicy.
func (p PivotPolicy) String() string {
	switch p {
	case PivotFail:
		return pivotFailName
	case PivotDefer:
		return pivotDeferName
	default:
		return fmt.Sprintf("PivotPolicy(%d)", int(p))
	}
}

// ParsePivotPolicy maps "fail" / "defer" (case-insensitive) to a PivotPolicy.
func ParsePivotPolicy(s string) (PivotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case pivotFailName:
		return PivotFail, nil
	case pivotDeferName:
		return PivotDefer, nil
	default:
		return PivotFail, fmt.Errorf("routh: unknown pivot policy %q (want %q or %q)", s, pivotFailName, pivotDeferName)
	}
}

// Option configures BuildTable and Analyze.
type Option func(*options)

type options struct {
	pivot PivotPolicy
}

// WithPivotPolicy selects the zero-pivot policy.
// Panics on an unknown policy value (programmer error).
func WithPivotPolicy(p PivotPolicy) Option {
	if p != PivotFail && p != PivotDefer {
		panic(fmt.Sprintf("routh: WithPivotPolicy(%d): unknown policy", int(p)))
	}

	return func(o *options) { o.pivot = p }
}

// gatherOptions applies setters over the defaults; last writer wins.
func gatherOptions(user ...Option) options {
	o := options{pivot: DefaultPivotPolicy}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
