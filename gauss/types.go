// SPDX-License-Identifier: MIT

// Package gauss: result types and numeric policy for the elimination engine.
// This file defines:
//   - Classification (three-way outcome tag),
//   - Result (classification + optional solution vector + message),
//   - Options / DefaultOptions (explicit epsilon policy),
//   - documented constants (Epsilon, NoPivot, fixed messages).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - The tag and the payload travel together: Result.Solution is nil
//     exactly when Result.Class is Inconsistent, by construction.
//   - Numeric policy is explicit: every kernel takes eps as a parameter;
//     Solve resolves it once from Options.
package gauss

import (
	"fmt"
	"strconv"
	"strings"
)

// Epsilon is the default magnitude tolerance of the engine.
// Values with |v| < Epsilon are treated as numerically zero: they are never
// selected as pivots, never divided by, and never trigger elimination.
const Epsilon = 1e-10

// NoPivot is the sentinel row index returned by FindPivot when no entry in
// the scanned column range reaches the tolerance.
const NoPivot = -1

// Fixed human-readable status messages attached to Result.Message.
const (
	// MsgUnique reports a full-rank system with exactly one solution.
	MsgUnique = "unique solution"

	// MsgInfinite reports a rank-deficient but consistent system; the returned
	// vector is one particular solution with all free variables fixed at 0.
	MsgInfinite = "infinitely many solutions (free variables fixed at 0)"

	// MsgInconsistent reports a structurally contradictory system
	// (a zero coefficient row with a nonzero constant).
	MsgInconsistent = "no solution (inconsistent system)"
)

// Classification is the three-way outcome of a reduction, decided only after
// the full Gauss-Jordan pass completes.
//
//   - Unique       — rank == n: exactly one solution exists.
//   - Infinite     — rank < n and the system is consistent: the solution
//     set is an affine subspace; one particular point is returned.
//   - Inconsistent — some equation reduced to 0 = c with c ≠ 0: no
//     solution exists and Result.Solution is nil.
type Classification int

const (
	// Unique: every coefficient column became a pivot column.
	Unique Classification = iota

	// Infinite: at least one free variable remains; a particular solution is returned.
	Infinite

	// Inconsistent: the reduced matrix contains a contradictory row.
	Inconsistent
)

// String returns the lowercase tag name for logs and test output.
func (c Classification) String() string {
	switch c {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}

// Result carries the full outcome of one Solve invocation.
//
// Fields:
//   - Class    — the Classification tag.
//   - Solution — n values: the unique solution (Unique) or one particular
//     solution with free variables at 0 (Infinite); nil when Inconsistent.
//   - Message  — the fixed status message for the classification
//     (MsgUnique / MsgInfinite / MsgInconsistent).
type Result struct {
	Class    Classification
	Solution []float64
	Message  string
}

// String renders the result for human consumption: the status message,
// followed by "x0=…, x1=…, …" when a solution vector is present.
// Numbers use strconv.FormatFloat with the shortest round-trip form ('g', -1).
func (r Result) String() string {
	if r.Solution == nil {
		return r.Message
	}
	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(": ")
	for i, v := range r.Solution {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("x")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("=")
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}

	return sb.String()
}

// Options configures a Solve call.
//
// Fields:
//   - Epsilon — magnitude tolerance for pivot selection, normalization
//     guards, and the inconsistency scan. Zero means "use the package
//     default"; negative values are rejected with ErrBadEpsilon.
//
// Example:
//
//	opts := gauss.DefaultOptions()
//	opts.Epsilon = 1e-12 // tighter tolerance for well-scaled data
//	res, err := gauss.Solve(mat, m, n, &opts)
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the documented defaults (Epsilon = 1e-10).
func DefaultOptions() Options {
	return Options{Epsilon: Epsilon}
}
