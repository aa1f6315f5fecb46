// SPDX-License-Identifier: MIT

// Package builder: functional configuration for parsing.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - newConfig helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: config fields are unexported; public APIs consume ...Option.

package builder

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultFieldSeparator is the empty string, meaning "any run of Unicode
	// whitespace" (strings.Fields semantics).
	DefaultFieldSeparator = ""

	// DefaultAllowBlankLines controls whether ParseSystem skips blank lines
	// (true) or fails on them with ErrEmptyInput (false).
	DefaultAllowBlankLines = false
)

// config is the resolved, immutable parsing configuration.
type config struct {
	fieldSep        string // "" ⇒ whitespace splitting via strings.Fields
	allowBlankLines bool   // ParseSystem: skip blank lines instead of erroring
}

// Option mutates the parsing configuration during resolution.
type Option func(*config)

// WithFieldSeparator makes parsers split rows on the exact separator string
// sep instead of arbitrary whitespace (e.g. "," or ";"). Surrounding
// whitespace around each field is still trimmed.
// Panics if sep is empty — programmer error, use the default instead.
func WithFieldSeparator(sep string) Option {
	if sep == "" {
		panic("builder: WithFieldSeparator requires a non-empty separator")
	}

	return func(c *config) { c.fieldSep = sep }
}

// WithAllowBlankLines makes ParseSystem silently skip blank lines rather
// than failing with ErrEmptyInput. ParseRow is unaffected: a blank single
// row is always an error.
func WithAllowBlankLines() Option {
	return func(c *config) { c.allowBlankLines = true }
}

// newConfig resolves options over the documented defaults.
func newConfig(opts ...Option) config {
	c := config{
		fieldSep:        DefaultFieldSeparator,
		allowBlankLines: DefaultAllowBlankLines,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
