// Package gauss_test contains scenario and contract tests for the
// reduction & classification orchestrator.
package gauss_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/builder"
	"github.com/katalvlaran/linsolve/gauss"
)

// residual returns max_i |Σ_j A[i][j]·x[j] − b[i]| over the ORIGINAL
// (pre-solve) augmented matrix orig.
func residual(orig [][]float64, x []float64, n int) float64 {
	worst := 0.0
	for _, row := range orig {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += row[j] * x[j]
		}
		if r := math.Abs(sum - row[n]); r > worst {
			worst = r
		}
	}

	return worst
}

// TestSolve_Scenarios drives the six canonical systems through Solve and
// checks classification, solution, and message in one table.
func TestSolve_Scenarios(t *testing.T) {
	for _, tc := range []struct {
		name      string
		rows      [][]float64
		m, n      int
		wantClass gauss.Classification
		wantSol   []float64 // nil ⇒ only length is checked (or absence for Inconsistent)
		wantLen   int
	}{
		{
			name: "unique 2x2",
			rows: [][]float64{{1, 1, 3}, {2, 3, 8}},
			m:    2, n: 2,
			wantClass: gauss.Unique,
			wantSol:   []float64{1, 2},
		},
		{
			name: "infinite dependent rows",
			rows: [][]float64{{1, 1, 3}, {2, 2, 6}},
			m:    2, n: 2,
			wantClass: gauss.Infinite,
			wantLen:   2,
		},
		{
			name: "inconsistent",
			rows: [][]float64{{1, 1, 3}, {2, 2, 7}},
			m:    2, n: 2,
			wantClass: gauss.Inconsistent,
		},
		{
			name: "overdetermined consistent",
			rows: [][]float64{{1, 1, 3}, {2, 1, 5}, {3, 2, 8}},
			m:    3, n: 2,
			wantClass: gauss.Unique,
			wantSol:   []float64{2, 1},
		},
		{
			name: "underdetermined",
			rows: [][]float64{{1, 1, 1, 6}, {2, 1, 3, 14}},
			m:    2, n: 3,
			wantClass: gauss.Infinite,
			wantLen:   3,
		},
		{
			name: "empty system",
			rows: nil,
			m:    0, n: 2,
			wantClass: gauss.Infinite,
			wantSol:   []float64{0, 0},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mat := builder.Clone(tc.rows)
			res, err := gauss.Solve(mat, tc.m, tc.n, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.wantClass, res.Class)

			switch tc.wantClass {
			case gauss.Inconsistent:
				assert.Nil(t, res.Solution, "inconsistent systems carry no solution vector")
				assert.Equal(t, gauss.MsgInconsistent, res.Message)
			case gauss.Unique:
				assert.Equal(t, gauss.MsgUnique, res.Message)
			case gauss.Infinite:
				assert.Contains(t, res.Message, "infinitely many solutions")
			}

			if tc.wantSol != nil {
				require.Len(t, res.Solution, len(tc.wantSol))
				for i, want := range tc.wantSol {
					assert.InDelta(t, want, res.Solution[i], 1e-9, "solution[%d]", i)
				}
			} else if tc.wantLen > 0 {
				assert.Len(t, res.Solution, tc.wantLen)
			}

			// Any returned solution must satisfy the ORIGINAL equations.
			if res.Solution != nil && tc.m > 0 {
				assert.Less(t, residual(tc.rows, res.Solution, tc.n), 1e-9,
					"solution must satisfy the pre-solve equations")
			}
		})
	}
}

// TestSolve_UnderdeterminedFreeVariable pins the particular-solution
// convention: the unpivoted column stays at exactly 0.
func TestSolve_UnderdeterminedFreeVariable(t *testing.T) {
	mat := [][]float64{
		{1, 1, 1, 6},
		{2, 1, 3, 14},
	}
	orig := builder.Clone(mat)

	res, err := gauss.Solve(mat, 2, 3, nil)
	require.NoError(t, err)
	require.Equal(t, gauss.Infinite, res.Class)
	require.Len(t, res.Solution, 3)
	assert.Equal(t, 0.0, res.Solution[2], "free variable is fixed at 0")
	assert.Less(t, residual(orig, res.Solution, 3), 1e-9)
}

// TestSolve_Idempotent re-runs reduction on an already-reduced matrix:
// classification and solution must be unchanged.
func TestSolve_Idempotent(t *testing.T) {
	mat := [][]float64{
		{1, 1, 3},
		{2, 3, 8},
	}
	first, err := gauss.Solve(mat, 2, 2, nil)
	require.NoError(t, err)

	second, err := gauss.Solve(mat, 2, 2, nil) // mat is now in RREF
	require.NoError(t, err)

	assert.Equal(t, first.Class, second.Class)
	assert.Equal(t, first.Solution, second.Solution)
	assert.Equal(t, first.Message, second.Message)
}

// TestSolve_ColumnSkip verifies that a coefficient column with no usable
// pivot is skipped (free variable) rather than aborting the reduction, and
// that the next column still gets its pivot.
func TestSolve_ColumnSkip(t *testing.T) {
	mat := [][]float64{
		{0, 2, 4},
		{0, 1, 2},
	}
	res, err := gauss.Solve(mat, 2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, gauss.Infinite, res.Class)
	require.Len(t, res.Solution, 2)
	assert.Equal(t, 0.0, res.Solution[0], "unpivotable column stays free at 0")
	assert.InDelta(t, 2.0, res.Solution[1], 1e-12)
}

// TestSolve_TinyCoefficientsInconsistent: a column below tolerance combined
// with a nonzero constant is reported as inconsistent, not solved.
func TestSolve_TinyCoefficientsInconsistent(t *testing.T) {
	mat := [][]float64{
		{1e-12, 5},
	}
	res, err := gauss.Solve(mat, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, gauss.Inconsistent, res.Class)
	assert.Nil(t, res.Solution)
}

// TestSolve_ZeroVariables: n = 0 with all-zero constants is a vacuously
// unique (empty) solution; a nonzero constant is a contradiction.
func TestSolve_ZeroVariables(t *testing.T) {
	res, err := gauss.Solve([][]float64{{0}}, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, gauss.Unique, res.Class)
	assert.Empty(t, res.Solution)

	res, err = gauss.Solve([][]float64{{3}}, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, gauss.Inconsistent, res.Class)
}

// TestSolve_ContractViolations checks the fail-fast validators at the facade.
func TestSolve_ContractViolations(t *testing.T) {
	_, err := gauss.Solve(nil, 1, 1, nil)
	assert.ErrorIs(t, err, gauss.ErrNilMatrix, "nil matrix with m > 0")

	_, err = gauss.Solve([][]float64{{1, 2}}, 2, 1, nil)
	assert.ErrorIs(t, err, gauss.ErrBadShape, "fewer rows than m")

	_, err = gauss.Solve([][]float64{{1}}, 1, 1, nil)
	assert.ErrorIs(t, err, gauss.ErrBadShape, "row shorter than n+1")

	_, err = gauss.Solve([][]float64{{1, 2}}, -1, 1, nil)
	assert.ErrorIs(t, err, gauss.ErrNegativeDimension)

	opts := gauss.Options{Epsilon: -1}
	_, err = gauss.Solve([][]float64{{1, 2}}, 1, 1, &opts)
	assert.ErrorIs(t, err, gauss.ErrBadEpsilon)
}

// TestSolve_CustomEpsilon: a looser tolerance demotes small-but-valid pivots
// into free variables.
func TestSolve_CustomEpsilon(t *testing.T) {
	mat := [][]float64{{1e-6, 1}}

	res, err := gauss.Solve(builder.Clone(mat), 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, gauss.Unique, res.Class, "1e-6 is a fine pivot under the default tolerance")

	opts := gauss.DefaultOptions()
	opts.Epsilon = 1e-3
	res, err = gauss.Solve(builder.Clone(mat), 1, 1, &opts)
	require.NoError(t, err)
	assert.Equal(t, gauss.Inconsistent, res.Class,
		"under eps=1e-3 the coefficient is zero and the row reads 0 = 1")
}

// TestSolveSquare_Mapping checks the legacy wrapper's two-way result:
// Unique passes the vector through; anything else is ErrNoUniqueSolution
// carrying the classification's message.
func TestSolveSquare_Mapping(t *testing.T) {
	sol, err := gauss.SolveSquare([][]float64{
		{1, 1, 3},
		{2, 3, 8},
	}, 2, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sol[0], 1e-9)
	assert.InDelta(t, 2.0, sol[1], 1e-9)

	_, err = gauss.SolveSquare([][]float64{
		{1, 1, 3},
		{2, 2, 6},
	}, 2, nil)
	require.ErrorIs(t, err, gauss.ErrNoUniqueSolution)
	assert.Contains(t, err.Error(), "infinitely many solutions")

	_, err = gauss.SolveSquare([][]float64{
		{1, 1, 3},
		{2, 2, 7},
	}, 2, nil)
	require.ErrorIs(t, err, gauss.ErrNoUniqueSolution)
	assert.Contains(t, err.Error(), "no solution")

	_, err = gauss.SolveSquare(nil, 1, nil)
	assert.ErrorIs(t, err, gauss.ErrNilMatrix, "contract violations propagate")
}

// TestResult_String smoke-tests the output-layer rendering.
func TestResult_String(t *testing.T) {
	res, err := gauss.Solve([][]float64{
		{1, 1, 3},
		{2, 3, 8},
	}, 2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "unique solution: x0=1, x1=2", res.String())

	res, err = gauss.Solve([][]float64{{1, 1, 3}, {2, 2, 7}}, 2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, gauss.MsgInconsistent, res.String())
}

// TestClassification_String covers the tag names used in logs.
func TestClassification_String(t *testing.T) {
	assert.Equal(t, "unique", gauss.Unique.String())
	assert.Equal(t, "infinite", gauss.Infinite.String())
	assert.Equal(t, "inconsistent", gauss.Inconsistent.String())
}
