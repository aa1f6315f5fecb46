// SPDX-License-Identifier: MIT
// Package gauss: elimination kernels.
//
// Purpose:
//   - Declare the four primitives every Gauss-Jordan reduction is made of:
//     pivot search, row swap, row normalization, row elimination.
//   - Each primitive is exported so callers can compose custom pipelines
//     (e.g. plain echelon form, blocked reductions) from the same parts
//     Solve uses.
//
// Notes:
//   - Kernels perform NO bounds validation: indices must lie inside the
//     caller's matrix. Solve enforces the contract once at its facade via
//     the canonical validators; direct kernel callers carry that burden.
//   - All kernels are deterministic: fixed scan orders, no randomness.

package gauss

import "math"

// FindPivot scans column col over rows [startRow, rowBound) and returns the
// index of the row holding the largest absolute value, provided that value
// is at least eps; otherwise it returns NoPivot.
//
// Implementation:
//   - Stage 1: Walk rows startRow..rowBound-1 in fixed ascending order,
//     tracking the maximum |mat[r][col]|.
//   - Stage 2: Compare the winner against eps; below tolerance ⇒ NoPivot.
//
// Behavior highlights:
//   - Partial pivoting: largest-magnitude selection minimizes the relative
//     rounding error introduced when other rows are divided by the pivot.
//   - The eps gate prevents promoting a value numerically indistinguishable
//     from zero, which would corrupt normalization via near-divide-by-zero.
//   - Ties resolve to the earliest row (strict > comparison), so the result
//     is independent of call order.
//
// Inputs:
//   - mat:      augmented matrix (read-only here).
//   - startRow: first row to consider (inclusive).
//   - col:      target column.
//   - rowBound: row scan limit (exclusive).
//   - eps:      magnitude tolerance; candidates below it are invisible.
//
// Returns:
//   - int: winning row index in [startRow, rowBound), or NoPivot (-1).
//
// Determinism:
//   - Fixed ascending scan; identical inputs yield identical results.
//
// Complexity:
//   - Time O(rowBound − startRow), Space O(1). No mutation.
func FindPivot(mat [][]float64, startRow, col, rowBound int, eps float64) int {
	best := NoPivot
	bestAbs := 0.0
	var abs float64
	for r := startRow; r < rowBound; r++ { // fixed ascending order
		abs = math.Abs(mat[r][col])
		if abs > bestAbs {
			bestAbs, best = abs, r
		}
	}
	// Reject a winner that is numerically zero.
	if bestAbs < eps {
		return NoPivot
	}

	return best
}

// FindDiagonalPivot is the square-case convenience form of FindPivot:
// the search starts at the row equal to the column index (diagonal
// convention). Appropriate only when pivots are expected on the diagonal,
// as in the legacy square entry point.
func FindDiagonalPivot(mat [][]float64, col, rowBound int, eps float64) int {
	return FindPivot(mat, col, col, rowBound, eps)
}

// SwapRows exchanges rows i and j wholesale (all columns, RHS included).
// Equal indices are a no-op. Never fails; no numeric precondition.
// Complexity: O(1) — row headers are swapped, not element storage.
func SwapRows(mat [][]float64, i, j int) {
	if i == j {
		return
	}
	mat[i], mat[j] = mat[j], mat[i]
}

// NormalizeRow divides every entry of mat[row] by the value at pivotCol,
// turning the pivot entry into exactly 1.
//
// Implementation:
//   - Stage 1: Guard — if |mat[row][pivotCol]| < eps, return false with NO
//     mutation (dividing would amplify noise unboundedly).
//   - Stage 2: Scale the entire row, RHS column included, in fixed order.
//
// Behavior highlights:
//   - A unit pivot reduces later elimination factors to the raw off-pivot
//     values of the other rows — no per-row division remains.
//   - The pivot entry is written as exactly 1.0 rather than v/v, so the
//     RREF invariant holds bit-for-bit, not merely within tolerance.
//
// Inputs:
//   - mat:      augmented matrix (mutated on success).
//   - row:      row to scale.
//   - pivotCol: column whose entry becomes 1.
//   - eps:      magnitude tolerance for the divide guard.
//
// Returns:
//   - bool: true when the row was scaled; false when the pivot magnitude
//     was below eps and the row was left untouched.
//
// Complexity:
//   - Time O(len(row)), Space O(1).
func NormalizeRow(mat [][]float64, row, pivotCol int, eps float64) bool {
	pivot := mat[row][pivotCol]
	if math.Abs(pivot) < eps {
		return false
	}
	r := mat[row]
	for j := range r {
		r[j] /= pivot
	}
	r[pivotCol] = 1.0 // exact unit pivot

	return true
}

// NormalizeDiagonal is the square-case convenience form of NormalizeRow:
// the pivot column equals the row index (diagonal convention). Used by the
// legacy square entry point only.
func NormalizeDiagonal(mat [][]float64, row int, eps float64) bool {
	return NormalizeRow(mat, row, row, eps)
}

// EliminateRow subtracts factor × mat[pivotRow] from mat[target], where
// factor is the target row's current entry at pivotCol — driving that entry
// to (numerically) zero.
//
// Implementation:
//   - Stage 1: Guards — no-op when target == pivotRow, or when |factor| < eps
//     (nothing to eliminate).
//   - Stage 2: Fused subtract over the full row, RHS column included; the
//     pivot-column entry is written as exactly 0.
//
// Behavior highlights:
//   - The pivot row is expected to be normalized already (unit pivot), so
//     factor is read directly instead of being divided by the pivot value.
//   - Applying this to EVERY row other than the pivot row — above and below —
//     is what makes the reduction RREF rather than plain echelon form.
//
// Inputs:
//   - mat:      augmented matrix (target row mutated).
//   - pivotRow: normalized pivot row (never mutated).
//   - pivotCol: column being cleared.
//   - target:   row to eliminate from.
//   - eps:      magnitude tolerance for the factor guard.
//
// Complexity:
//   - Time O(len(row)), Space O(1).
func EliminateRow(mat [][]float64, pivotRow, pivotCol, target int, eps float64) {
	if target == pivotRow {
		return
	}
	factor := mat[target][pivotCol]
	if math.Abs(factor) < eps {
		return
	}
	src, dst := mat[pivotRow], mat[target]
	for j := range dst {
		dst[j] -= factor * src[j]
	}
	dst[pivotCol] = 0.0 // exact zero under the pivot
}

// EliminateDiagonal is the square-case convenience form of EliminateRow:
// the elimination column equals the pivot row index (diagonal convention).
func EliminateDiagonal(mat [][]float64, pivotRow, target int, eps float64) {
	EliminateRow(mat, pivotRow, pivotRow, target, eps)
}
