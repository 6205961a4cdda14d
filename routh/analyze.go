// SPDX-License-Identifier: MIT

package routh

// Stability classifies a Verdict.
type Stability int

const (
	// Stable: no sign changes, every root lies in the open left half-plane.
	Stable Stability = iota

	// Unstable: at least one root with positive real part.
	Unstable

	// Inconclusive: the first column holds a zero (SpecialCase).
	Inconclusive
)

// String implements fmt.Stringer.
func (s Stability) String() string {
	switch s {
	case Stable:
		return "stable"
	case Unstable:
		return "unstable"
	default:
		return "inconclusive"
	}
}

// Classify maps a Verdict to Stable, Unstable or Inconclusive.
func Classify(v Verdict) Stability {
	switch {
	case v.IsSpecial():
		return Inconclusive
	case v == 0:
		return Stable
	default:
		return Unstable
	}
}

// Result bundles everything Analyze computed.
type Result struct {
	Coefficients []float64 // copy of the input
	Table        *Table
	Verdict      Verdict
	Stability    Stability
	SignChanges  []int // rows where the first column flips sign; nil for SpecialCase
}

// Analyze runs BuildTable followed by CountUnstable.
//
// Errors are those of BuildTable. Under PivotDefer a zero pivot is reported
// as Verdict == SpecialCase rather than as an error.
func Analyze(coeffs []float64, opts ...Option) (Result, error) {
	tbl, err := BuildTable(coeffs, opts...)
	if err != nil {
		return Result{}, err
	}
	v, err := CountUnstable(tbl)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Coefficients: append([]float64(nil), coeffs...),
		Table:        tbl,
		Verdict:      v,
		Stability:    Classify(v),
		SignChanges:  SignChanges(tbl),
	}, nil
}
