// SPDX-License-Identifier: MIT
// Package: gauss
//
// Purpose:
//  - Provide a single, canonical source of truth for the contract checks
//    performed at the Solve/SolveSquare facades.
//  - Keep kernels minimal: FindPivot, SwapRows, NormalizeRow, EliminateRow
//    perform NO validation (documented precondition: indices in range).
//  - Return plain sentinel errors wrapped with the validator tag so call
//    sites can wrap uniformly and tests can branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateSystem runs O(m) over row headers only; it never reads values.

package gauss

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of contract violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDimensions – Ensures the declared logical dimensions are non-negative.
//
// Inputs: m (equation count), n (variable count).
// Returns: nil or wrapped ErrNegativeDimension.
// Complexity: O(1).
func ValidateDimensions(m, n int) error {
	if m < 0 {
		return validatorErrorf("ValidateDimensions: rows", ErrNegativeDimension)
	}
	if n < 0 {
		return validatorErrorf("ValidateDimensions: cols", ErrNegativeDimension)
	}

	return nil
}

// ValidateSystem – Ensures mat physically covers the declared m×(n+1) window.
//
// Implementation: dimension check, then nil check (only when m > 0, since an
// empty system carries no storage), then per-row length check over the first
// m rows. Extra rows or columns beyond the logical window are permitted and
// ignored by the engine.
//
// Inputs: mat (augmented matrix), m (rows), n (coefficient columns).
// Returns: nil, or wrapped ErrNegativeDimension / ErrNilMatrix / ErrBadShape.
// Complexity: O(m).
func ValidateSystem(mat [][]float64, m, n int) error {
	if err := ValidateDimensions(m, n); err != nil {
		return err
	}
	if m == 0 {
		return nil // empty system: nil or any matrix is acceptable
	}
	if mat == nil {
		return validatorErrorf("ValidateSystem", ErrNilMatrix)
	}
	if len(mat) < m {
		return validatorErrorf("ValidateSystem: rows", ErrBadShape)
	}
	// Each logical row must expose n coefficients plus the RHS column.
	for i := 0; i < m; i++ {
		if len(mat[i]) < n+1 {
			return validatorErrorf(fmt.Sprintf("ValidateSystem: row %d", i), ErrBadShape)
		}
	}

	return nil
}

// ValidateEpsilon – Ensures a tolerance value is usable by the kernels.
//
// Inputs: eps (magnitude tolerance).
// Returns: nil or wrapped ErrBadEpsilon (negative, NaN, or +Inf).
// Complexity: O(1).
func ValidateEpsilon(eps float64) error {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, +1) {
		return validatorErrorf("ValidateEpsilon", ErrBadEpsilon)
	}

	return nil
}
