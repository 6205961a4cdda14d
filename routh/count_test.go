// SPDX-License-Identifier: MIT
package routh_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/stability/matrix"
	"github.com/katalvlaran/stability/routh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestCountUnstable_Table covers the worked examples end to end.
func TestCountUnstable_Table(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		want   routh.Verdict
	}{
		{"x^3+3x^2+2x+7", []float64{1, 3, 2, 7}, 2},
		{"(x+1)^2", []float64{1, 2, 1}, 0},
		{"(x+1)(x+2)(x+3)(x+4)", []float64{1, 10, 35, 50, 24}, 0},
		{"x^3+2x^2+4", []float64{1, 2, 0, 4}, 2},
		{"x-3", []float64{1, -3}, 1},
		{"2x+3", []float64{2, 3}, 0},
		{"constant", []float64{5}, 0},
		{"negative constant", []float64{-5}, 0},
		{"all negative stable", []float64{-1, -2, -1}, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := routh.BuildTable(tc.coeffs)
			require.NoError(t, err)
			got, err := routh.CountUnstable(tbl)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestCountUnstable_SpecialCase reports SpecialCase, never a count, for a
// first-column zero produced under PivotDefer.
func TestCountUnstable_SpecialCase(t *testing.T) {
	for _, coeffs := range [][]float64{
		{1, 1, 1, 1},
		{1, 0, 2, 4},
		{1, 0, 1},
	} {
		tbl, err := routh.BuildTable(coeffs, routh.WithPivotPolicy(routh.PivotDefer))
		require.NoError(t, err)
		v, err := routh.CountUnstable(tbl)
		require.NoError(t, err)
		assert.Equal(t, routh.SpecialCase, v, "coeffs %v", coeffs)
		assert.True(t, v.IsSpecial())
		assert.Nil(t, routh.SignChanges(tbl))
	}
}

// TestCountUnstable_LastRowZero hits a zero in the final row, where no
// division follows and the builder itself succeeds under PivotFail.
func TestCountUnstable_LastRowZero(t *testing.T) {
	// x² + x + 0: rows [1,0] [1,0] [0,0]
	tbl, err := routh.BuildTable([]float64{1, 1, 0})
	require.NoError(t, err)
	v, err := routh.CountUnstable(tbl)
	require.NoError(t, err)
	assert.Equal(t, routh.SpecialCase, v)
}

// TestCountUnstable_Nil rejects a nil table.
func TestCountUnstable_Nil(t *testing.T) {
	_, err := routh.CountUnstable(nil)
	require.ErrorIs(t, err, routh.ErrInvalidArray)
}

// TestCountUnstableMatrix_IndependentArray feeds arrays that did not come
// from BuildTable; the loop bound must follow the array's own row count.
func TestCountUnstableMatrix_IndependentArray(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1}, {-1}, {1}, {-1}, {1}, {-1}})
	require.NoError(t, err)
	v, err := routh.CountUnstableMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, routh.Verdict(5), v)

	short, err := matrix.NewDenseFromRows([][]float64{{3, 1}, {-2, 0}})
	require.NoError(t, err)
	v, err = routh.CountUnstableMatrix(short)
	require.NoError(t, err)
	assert.Equal(t, routh.Verdict(1), v)
}

// TestCountUnstableMatrix_Invalid covers malformed inputs.
func TestCountUnstableMatrix_Invalid(t *testing.T) {
	_, err := routh.CountUnstableMatrix(nil)
	require.ErrorIs(t, err, routh.ErrInvalidArray)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	loose, err := matrix.NewDense(2, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, 1))
	require.NoError(t, loose.Set(1, 0, math.NaN()))
	_, err = routh.CountUnstableMatrix(loose)
	require.ErrorIs(t, err, routh.ErrInvalidArray)
}

// TestCountUnstableRows covers ragged, empty and single-cell arrays.
func TestCountUnstableRows(t *testing.T) {
	_, err := routh.CountUnstableRows(nil)
	require.ErrorIs(t, err, routh.ErrInvalidArray)

	_, err = routh.CountUnstableRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, routh.ErrInvalidArray)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	v, err := routh.CountUnstableRows([][]float64{{0}})
	require.NoError(t, err)
	assert.Equal(t, routh.SpecialCase, v)

	v, err = routh.CountUnstableRows([][]float64{{4}})
	require.NoError(t, err)
	assert.Equal(t, routh.Verdict(0), v)
}

// TestSignChanges lists the rows where the first column flips.
func TestSignChanges(t *testing.T) {
	tbl, err := routh.BuildTable([]float64{1, 3, 2, 7})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, routh.SignChanges(tbl))
	assert.Nil(t, routh.SignChanges(nil))
}

// TestSignChanges_TinyEntries guards against product underflow.
func TestSignChanges_TinyEntries(t *testing.T) {
	v, err := routh.CountUnstableRows([][]float64{{1e-200}, {-1e-200}})
	require.NoError(t, err)
	assert.Equal(t, routh.Verdict(1), v)
}

// TestVerdict_Methods covers Count/String on both branches.
func TestVerdict_Methods(t *testing.T) {
	n, ok := routh.Verdict(3).Count()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, "3 unstable poles", routh.Verdict(3).String())

	n, ok = routh.SpecialCase.Count()
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.Equal(t, "special case", routh.SpecialCase.String())
}

// unstableRootsByEigen counts roots with Re > 0 from the eigenvalues of the
// companion matrix. ok is false when a root sits too close to the imaginary
// axis for a reliable comparison.
func unstableRootsByEigen(t *testing.T, coeffs []float64) (count int, ok bool) {
	t.Helper()
	d := len(coeffs) - 1
	comp, err := matrix.NewDense(d, d)
	require.NoError(t, err)
	for j := 0; j < d; j++ {
		require.NoError(t, comp.Set(0, j, -coeffs[j+1]/coeffs[0]))
	}
	for i := 1; i < d; i++ {
		require.NoError(t, comp.Set(i, i-1, 1))
	}
	a, err := matrix.ToGonum(comp)
	require.NoError(t, err)

	var eig mat.Eigen
	require.True(t, eig.Factorize(a, mat.EigenNone), "eigen factorization failed for %v", coeffs)
	for _, z := range eig.Values(nil) {
		if math.Abs(real(z)) < 1e-6*math.Max(1, cmplx.Abs(z)) {
			return 0, false
		}
		if real(z) > 0 {
			count++
		}
	}

	return count, true
}

// TestCountUnstable_MatchesEigenvalues cross-checks the criterion against
// companion-matrix eigenvalues on random polynomials of degree 2..6.
func TestCountUnstable_MatchesEigenvalues(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const trials = 300
	checked := 0
	for k := 0; k < trials; k++ {
		n := 3 + rng.Intn(5) // degree 2..6
		coeffs := make([]float64, n)
		coeffs[0] = 0.5 + rng.Float64()*2
		for i := 1; i < n; i++ {
			coeffs[i] = rng.Float64()*10 - 5
		}

		tbl, err := routh.BuildTable(coeffs, routh.WithPivotPolicy(routh.PivotDefer))
		require.NoError(t, err)
		nearZero := false
		for _, v := range tbl.FirstColumn() {
			if math.Abs(v) < 1e-3 {
				nearZero = true
			}
		}
		if nearZero {
			continue
		}
		want, ok := unstableRootsByEigen(t, coeffs)
		if !ok {
			continue
		}

		got, err := routh.CountUnstable(tbl)
		require.NoError(t, err)
		require.Equal(t, routh.Verdict(want), got, "coeffs %v", coeffs)
		checked++
	}
	assert.Greater(t, checked, trials/2, "too many skipped trials")
}
