// SPDX-License-Identifier: MIT
// Package gauss: reduction & classification orchestrator.
//
// Purpose:
//   - Compose the kernels from gauss.go into the full Gauss-Jordan pipeline:
//     pivot search → swap → normalize → eliminate everywhere → record pivot.
//   - Classify the reduced system and extract the solution vector.
//
// Notes:
//   - Solve is the only place validation happens; kernels stay lean.
//   - The matrix is caller-owned and destroyed by the call (in-place RREF).

package gauss

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opSolve       = "Solve"
	opSolveSquare = "SolveSquare"
)

// gaussErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still branch with errors.Is. Call only with err != nil.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// resolveEpsilon extracts the working tolerance from opts (nil ⇒ defaults,
// zero Epsilon ⇒ package default) after validating it.
func resolveEpsilon(opts *Options) (float64, error) {
	if opts == nil || opts.Epsilon == 0 {
		return Epsilon, nil
	}
	if err := ValidateEpsilon(opts.Epsilon); err != nil {
		return 0, err
	}

	return opts.Epsilon, nil
}

// Solve reduces the augmented matrix mat (m rows, n coefficient columns plus
// one RHS column) to reduced row-echelon form IN PLACE and classifies the
// linear system it represents.
//
// Implementation:
//   - Stage 1: Validate the contract (shape, dimensions, epsilon) via the
//     canonical validators; fail fast with wrapped sentinels.
//   - Stage 2: Reduction sweep. A working row cursor starts at 0. For each
//     coefficient column col = 0..n-1 while the cursor has not reached m:
//     find a pivot at or below the cursor (FindPivot); if none, SKIP the
//     column (it becomes a free variable or an inconsistency, detected
//     later); otherwise swap it up (SwapRows), normalize the cursor row
//     (NormalizeRow — defensively rechecked even though FindPivot already
//     vetted the magnitude), eliminate col from every other row above and
//     below (EliminateRow), record col in the pivot-column list, advance.
//   - Stage 3: Inconsistency scan. Any row whose n coefficients are all
//     within eps of zero but whose RHS exceeds eps encodes 0 = c, c ≠ 0 ⇒
//     Inconsistent, nil solution.
//   - Stage 4: Classification. rank = len(pivot list). rank == n ⇒ Unique;
//     rank < n ⇒ Infinite. Either way the vector is built by writing
//     mat[i][n] into solution[pivotCol] for each recorded pivot, with
//     unpivoted (free) variables left at 0.
//
// Behavior highlights:
//   - Column-skip semantics: a column with no usable pivot at the cursor is
//     skipped permanently even if later row swaps would have exposed a
//     larger value there. This is standard partial pivoting, preserved
//     deliberately.
//   - m = 0 degenerates to rank 0: Infinite with an all-zero particular
//     solution when n > 0, Unique with an empty vector when n = 0.
//   - Numerical outcomes are never errors: rank deficiency and inconsistency
//     surface as classifications. The error return covers contract
//     violations only.
//
// Inputs:
//   - mat:  augmented matrix with at least m rows of at least n+1 entries;
//     mutated in place (the caller's data is destroyed).
//   - m:    equation (row) count.
//   - n:    variable (coefficient column) count.
//   - opts: numeric policy; nil means DefaultOptions.
//
// Returns:
//   - Result: classification, solution vector (nil iff Inconsistent), and
//     the fixed status message.
//   - error : wrapped ErrNegativeDimension / ErrNilMatrix / ErrBadShape /
//     ErrBadEpsilon on contract violations; nil otherwise.
//
// Determinism:
//   - Fixed column order, fixed pivot scan order, fixed elimination order
//     0..m-1; identical inputs produce identical reduced matrices.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(min(m,n)) for the pivot list plus O(n)
//     for the solution vector.
func Solve(mat [][]float64, m, n int, opts *Options) (Result, error) {
	// Contract checks (the kernels below run unvalidated).
	if err := ValidateSystem(mat, m, n); err != nil {
		return Result{}, gaussErrorf(opSolve, err)
	}
	eps, err := resolveEpsilon(opts)
	if err != nil {
		return Result{}, gaussErrorf(opSolve, err)
	}

	// Reduction sweep: cursor row + pivot-column list.
	var (
		row    int                            // working row cursor
		pivots = make([]int, 0, minInt(m, n)) // pivot columns in discovery order
		p      int                            // candidate pivot row
		r      int                            // elimination iterator
	)
	for col := 0; col < n && row < m; col++ {
		p = FindPivot(mat, row, col, m, eps)
		if p == NoPivot {
			continue // column skipped: free variable or inconsistency, seen later
		}
		SwapRows(mat, row, p)
		if !NormalizeRow(mat, row, col, eps) {
			continue // defensive: FindPivot already vetted the magnitude
		}
		for r = 0; r < m; r++ {
			EliminateRow(mat, row, col, r, eps) // above AND below ⇒ RREF
		}
		pivots = append(pivots, col)
		row++
	}

	// Inconsistency scan: all-zero coefficients with a nonzero constant.
	var allZero bool
	for r = 0; r < m; r++ {
		allZero = true
		for j := 0; j < n; j++ {
			if math.Abs(mat[r][j]) > eps {
				allZero = false
				break
			}
		}
		if allZero && math.Abs(mat[r][n]) > eps {
			return Result{Class: Inconsistent, Message: MsgInconsistent}, nil
		}
	}

	// Classification + solution extraction. Free variables stay at 0.
	solution := make([]float64, n)
	for i, pc := range pivots {
		solution[pc] = mat[i][n]
	}
	if len(pivots) == n {
		return Result{Class: Unique, Solution: solution, Message: MsgUnique}, nil
	}

	return Result{Class: Infinite, Solution: solution, Message: MsgInfinite}, nil
}

// SolveSquare is the legacy square-only entry point: n is used as both the
// row and column count, and the three-way classification collapses to a
// two-way success/failure result.
//
// Behavior:
//   - Unique       ⇒ the solution vector, nil error.
//   - Infinite or Inconsistent ⇒ nil vector and ErrNoUniqueSolution wrapped
//     with the classification's message.
//   - Contract violations propagate from Solve unchanged.
//
// The matrix is mutated in place exactly as by Solve.
func SolveSquare(mat [][]float64, n int, opts *Options) ([]float64, error) {
	res, err := Solve(mat, n, n, opts)
	if err != nil {
		return nil, gaussErrorf(opSolveSquare, err)
	}
	if res.Class != Unique {
		return nil, fmt.Errorf("%s: %s: %w", opSolveSquare, res.Message, ErrNoUniqueSolution)
	}

	return res.Solution, nil
}

// minInt returns the smaller of a and b.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
