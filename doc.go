// Package stability decides whether a linear time-invariant system is stable
// by looking only at the coefficients of its characteristic polynomial.
//
// 🚀 What is inside?
//
//	A small, dependency-light toolkit built around the Routh–Hurwitz criterion:
//		• Routh array construction from a coefficient sequence
//		• First-column sign-change counting (number of unstable poles)
//		• Explicit zero-pivot policy instead of silent NaN/Inf propagation
//		• Serialisable reports (JSON / YAML) and a CLI front end
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/     — row-major Dense storage with a finite-only numeric policy
//	routh/      — BuildTable, CountUnstable, Analyze
//	report/     — Report model and JSON/YAML/text encoders
//	cmd/routh/  — command line driver
//
// Quick example (x³ + 3x² + 2x + 7):
//
//	res, err := routh.Analyze([]float64{1, 3, 2, 7})
//	// res.Verdict == 2, res.Stability == routh.Unstable
//
//	go get github.com/katalvlaran/stability
package stability
