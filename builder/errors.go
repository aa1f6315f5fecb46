// SPDX-License-Identifier: MIT
// Package: linsolve/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w (row index, offending token).
//   • Parsing and construction MUST NOT panic; validation panics are
//     confined to option constructor functions (WithX...).

package builder

import "errors"

// ErrBadShape indicates non-negative dimension constraints were violated
// (m < 0 or n < 0 for New, n < 0 for parsers).
// Usage: if errors.Is(err, ErrBadShape) { /* fix requested dimensions */ }.
var ErrBadShape = errors.New("builder: invalid matrix shape")

// ErrEmptyInput indicates a blank line (ParseRow) or an input with no usable
// rows (ParseSystem without WithAllowBlankLines, or only blank lines).
// Usage: if errors.Is(err, ErrEmptyInput) { /* prompt for data again */ }.
var ErrEmptyInput = errors.New("builder: empty input")

// ErrBadArity indicates a row does not carry exactly n coefficients plus one
// right-hand-side constant (n+1 fields / values).
// Usage: if errors.Is(err, ErrBadArity) { /* report expected field count */ }.
var ErrBadArity = errors.New("builder: wrong number of values in row")

// ErrBadNumber indicates a field failed locale-invariant numeric parsing
// (strconv.ParseFloat). Comma-decimal input lands here by policy.
// Usage: if errors.Is(err, ErrBadNumber) { /* show offending token */ }.
var ErrBadNumber = errors.New("builder: unparseable numeric field")

// ErrNotFinite indicates a parsed or supplied value is NaN or ±Inf; the
// engine's contract requires finite entries.
// Usage: if errors.Is(err, ErrNotFinite) { /* reject the row */ }.
var ErrNotFinite = errors.New("builder: non-finite value")

// ErrNilRows indicates FromRows or Clone received a nil row inside an
// otherwise non-nil matrix.
var ErrNilRows = errors.New("builder: nil row")
