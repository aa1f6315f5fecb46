// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the gauss
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. Numerical outcomes (rank deficiency, inconsistency)
// are classifications, never errors — sentinels here cover contract
// violations and the legacy square wrapper's failure path only.

package gauss

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "gauss: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels at definition
// site; attach context at the facade via fmt.Errorf("ctx: %w", ErrX) —
// callers still match with errors.Is.

var (
	// ErrNilMatrix indicates that a nil matrix was supplied while m > 0.
	// An empty system (m == 0) legitimately accepts a nil matrix.
	ErrNilMatrix = errors.New("gauss: nil matrix")

	// ErrBadShape indicates the supplied matrix does not cover the declared
	// logical dimensions: fewer than m rows, or a row shorter than n+1.
	ErrBadShape = errors.New("gauss: matrix shape does not match declared dimensions")

	// ErrNegativeDimension indicates m < 0 or n < 0.
	ErrNegativeDimension = errors.New("gauss: negative dimension")

	// ErrBadEpsilon indicates Options.Epsilon is negative or NaN.
	// Zero is accepted and resolves to the package default.
	ErrBadEpsilon = errors.New("gauss: epsilon must be a non-negative finite value")

	// ErrNoUniqueSolution is the failure sentinel of SolveSquare: the system
	// classified as Infinite or Inconsistent, so no single solution vector
	// exists. The wrapped context carries the classification's message.
	ErrNoUniqueSolution = errors.New("gauss: system has no unique solution")
)
