// Package report turns routh analysis results into serialisable reports and
// renders them as text, JSON or YAML.
package report

import (
	"errors"

	"github.com/katalvlaran/stability/routh"
)

// Report is the presentation model of one analysis.
// Field names map 1:1 to the JSON and YAML keys.
type Report struct {
	Coefficients  []float64   `json:"coefficients" yaml:"coefficients"`
	Degree        int         `json:"degree" yaml:"degree"`
	PivotPolicy   string      `json:"pivot_policy" yaml:"pivot_policy"`
	Table         [][]float64 `json:"table,omitempty" yaml:"table,omitempty"`
	FirstColumn   []float64   `json:"first_column,omitempty" yaml:"first_column,omitempty"`
	SignChanges   []int       `json:"sign_changes,omitempty" yaml:"sign_changes,omitempty"`
	Complete      bool        `json:"complete" yaml:"complete"`
	SpecialCase   bool        `json:"special_case" yaml:"special_case"`
	UnstablePoles int         `json:"unstable_poles" yaml:"unstable_poles"`
	Stability     string      `json:"stability" yaml:"stability"`
	Note          string      `json:"note,omitempty" yaml:"note,omitempty"`
}

// FromResult builds a Report from a successful routh.Analyze call.
func FromResult(res routh.Result, policy routh.PivotPolicy) Report {
	r := Report{
		Coefficients: res.Coefficients,
		PivotPolicy:  policy.String(),
		SignChanges:  res.SignChanges,
		SpecialCase:  res.Verdict.IsSpecial(),
		Stability:    res.Stability.String(),
	}
	if n, ok := res.Verdict.Count(); ok {
		r.UnstablePoles = n
	}
	if res.Table != nil {
		r.Degree = res.Table.Degree()
		r.Table = res.Table.Rows2D()
		r.FirstColumn = res.Table.FirstColumn()
		r.Complete = res.Table.Complete()
	}

	return r
}

// FromZeroPivot reports an ErrZeroPivot failure as the special case.
// It returns false when err is not a zero-pivot error.
func FromZeroPivot(coeffs []float64, policy routh.PivotPolicy, err error) (Report, bool) {
	var pe *routh.PivotError
	if !errors.As(err, &pe) {
		return Report{}, false
	}

	return Report{
		Coefficients: append([]float64(nil), coeffs...),
		Degree:       len(coeffs) - 1,
		PivotPolicy:  policy.String(),
		SpecialCase:  true,
		Stability:    routh.Inconclusive.String(),
		Note:         pe.Error(),
	}, true
}
