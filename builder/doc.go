// Package builder constructs well-formed augmented matrices for the gauss
// engine from external representations: text lines, caller-supplied row
// slices, or blank allocations.
//
// 🚀 Why a builder?
//
//	The elimination engine assumes a syntactically valid, dimensionally
//	consistent m×(n+1) matrix of finite numbers and mutates it in place.
//	This package is the input layer that upholds that contract: parsing,
//	arity checks, finiteness checks, and pre-call snapshots all live here,
//	so the engine itself never touches I/O or validation of raw data.
//
// ✨ Key features:
//   - New / FromRows — zeroed or deep-copied matrices with validated shape
//   - ParseRow / ParseSystem — whitespace-separated numeric lines
//   - Clone — snapshot a matrix before the engine destroys it
//   - locale-invariant parsing: dot-decimal only, via strconv.ParseFloat
//     (comma-decimal input is rejected, never silently reinterpreted)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/linsolve/builder"
//	  "github.com/katalvlaran/linsolve/gauss"
//	)
//
//	mat, err := builder.ParseSystem([]string{
//	  "1 1 3",
//	  "2 3 8",
//	}, 2)
//	orig := builder.Clone(mat)            // keep originals for residual checks
//	res, err := gauss.Solve(mat, len(mat), 2, nil)
//	_ = orig
//
// Errors are package-level sentinels ("builder: ..."); branch with errors.Is.
package builder
