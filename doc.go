// Package linsolve solves and classifies systems of linear equations
// expressed as augmented coefficient matrices — from square textbook
// systems to rectangular, rank-deficient ones.
//
// 🚀 What is linsolve?
//
//	A small, deterministic numerical library built around Gauss-Jordan
//	elimination to reduced row-echelon form (RREF):
//		• Elimination kernels: pivot search, row swap, normalization, elimination
//		• Partial pivoting with a fixed magnitude tolerance for stability
//		• Three-way classification: unique / infinite / inconsistent
//		• Particular solutions for underdetermined systems (free variables = 0)
//		• Text ingestion helpers for building augmented matrices
//
// ✨ Why choose linsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – explicit epsilon policy, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Caller-owned storage – matrices are mutated in place, no copies
//
// Under the hood, everything is organized under two subpackages:
//
//	gauss/   — the elimination engine: kernels, Solve orchestrator, classification
//	builder/ — input layer: allocate, parse, and snapshot augmented matrices
//
// Quick ASCII example:
//
//	 x +  y = 3        ⎡ 1  1 | 3 ⎤
//	2x + 3y = 8   ⇒    ⎣ 2  3 | 8 ⎦   ⇒  Unique: x=1, y=2
//
// Dive into README-style examples in each package's example_test.go for
// full walkthroughs of every classification outcome.
//
//	go get github.com/katalvlaran/linsolve
package linsolve
