// SPDX-License-Identifier: MIT
// Package: linsolve/builder
//
// parse.go — text ingestion for augmented matrix rows.
//
// Parsing policy (fixed, documented):
//   - locale-invariant numbers only: strconv.ParseFloat syntax, dot decimal
//     separator. Comma-decimal locales must convert before calling; we never
//     silently try a second interpretation of the same token.
//   - NaN and ±Inf tokens parse syntactically but are rejected with
//     ErrNotFinite — the engine requires finite entries.

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// splitFields tokenizes one line under cfg: strings.Fields for the default
// whitespace policy, or an exact-separator split with per-field trimming.
func splitFields(line string, cfg config) []string {
	if cfg.fieldSep == DefaultFieldSeparator {
		return strings.Fields(line)
	}
	parts := strings.Split(line, cfg.fieldSep)
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}

	return fields
}

// ParseRow parses one equation row: n coefficients followed by the
// right-hand-side constant, exactly n+1 numeric fields.
//
// Implementation:
//   - Stage 1: Resolve options; tokenize; blank line ⇒ ErrEmptyInput.
//   - Stage 2: Arity check (exactly n+1 fields) ⇒ ErrBadArity.
//   - Stage 3: ParseFloat each field (ErrBadNumber on syntax), reject
//     non-finite values (ErrNotFinite).
//
// Inputs: line (raw text), n (variable count, ≥ 0), opts (parsing policy).
// Returns: a fresh []float64 of length n+1, or a wrapped sentinel.
// Complexity: O(len(line)).
func ParseRow(line string, n int, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("ParseRow(n=%d): %w", n, ErrBadShape)
	}
	cfg := newConfig(opts...)

	fields := splitFields(line, cfg)
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseRow: %w", ErrEmptyInput)
	}
	if len(fields) != n+1 {
		return nil, fmt.Errorf("ParseRow: got %d fields, want %d: %w", len(fields), n+1, ErrBadArity)
	}

	row := make([]float64, n+1)
	for j, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseRow: field %d %q: %w", j, f, ErrBadNumber)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("ParseRow: field %d %q: %w", j, f, ErrNotFinite)
		}
		row[j] = v
	}

	return row, nil
}

// ParseSystem parses a sequence of equation rows into an m×(n+1) augmented
// matrix, where m is the number of (non-blank, under WithAllowBlankLines)
// lines. An input that yields zero rows fails with ErrEmptyInput — an empty
// SYSTEM is legitimate for the engine, but asking the parser for one is
// almost certainly an ingestion bug upstream.
//
// Inputs: lines (raw text rows), n (variable count, ≥ 0), opts (policy).
// Returns: the matrix, or the first row error wrapped with its line index.
// Complexity: O(total input length).
func ParseSystem(lines []string, n int, opts ...Option) ([][]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("ParseSystem(n=%d): %w", n, ErrBadShape)
	}
	cfg := newConfig(opts...)

	mat := make([][]float64, 0, len(lines))
	for i, line := range lines {
		if cfg.allowBlankLines && strings.TrimSpace(line) == "" {
			continue
		}
		row, err := ParseRow(line, n, opts...)
		if err != nil {
			return nil, fmt.Errorf("ParseSystem: line %d: %w", i, err)
		}
		mat = append(mat, row)
	}
	if len(mat) == 0 {
		return nil, fmt.Errorf("ParseSystem: %w", ErrEmptyInput)
	}

	return mat, nil
}
