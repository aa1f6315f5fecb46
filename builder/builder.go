// SPDX-License-Identifier: MIT
// Package: linsolve/builder
//
// builder.go — allocation, ingestion, and snapshot helpers for augmented
// matrices. All constructors return row-slice matrices shaped m×(n+1),
// ready for gauss.Solve(mat, m, n, ...).

package builder

import (
	"fmt"
	"math"
)

// New allocates a zeroed m×(n+1) augmented matrix.
//
// Inputs: m (equation count, ≥ 0), n (variable count, ≥ 0).
// Returns: the matrix, or wrapped ErrBadShape on negative dimensions.
// Complexity: O(m·n).
func New(m, n int) ([][]float64, error) {
	if m < 0 || n < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", m, n, ErrBadShape)
	}
	mat := make([][]float64, m)
	for i := range mat {
		mat[i] = make([]float64, n+1)
	}

	return mat, nil
}

// FromRows deep-copies rows into a freshly allocated augmented matrix,
// validating that every row carries exactly n+1 finite values. The caller's
// slices are never aliased, so the engine's in-place mutation cannot reach
// the originals.
//
// Inputs: rows (source data), n (variable count, ≥ 0).
// Returns: the copy, or wrapped ErrBadShape / ErrNilRows / ErrBadArity /
// ErrNotFinite.
// Complexity: O(m·n).
func FromRows(rows [][]float64, n int) ([][]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromRows(n=%d): %w", n, ErrBadShape)
	}
	mat := make([][]float64, len(rows))
	for i, src := range rows {
		if src == nil {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrNilRows)
		}
		if len(src) != n+1 {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(src), n+1, ErrBadArity)
		}
		dst := make([]float64, n+1)
		for j, v := range src {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows: row %d, field %d: %w", i, j, ErrNotFinite)
			}
			dst[j] = v
		}
		mat[i] = dst
	}

	return mat, nil
}

// Clone returns a deep copy of mat. Use it to snapshot a system before
// handing the original to gauss.Solve, which destroys its input — e.g. to
// verify residuals of the returned solution against the original equations.
// A nil matrix clones to nil; ragged rows are copied at their own lengths.
// Complexity: O(total elements).
func Clone(mat [][]float64) [][]float64 {
	if mat == nil {
		return nil
	}
	out := make([][]float64, len(mat))
	for i, row := range mat {
		if row == nil {
			continue // preserve nil rows verbatim
		}
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}
