// Package gauss solves systems of linear equations via Gauss-Jordan
// elimination to reduced row-echelon form (RREF), and classifies the
// result as unique, infinite, or inconsistent.
//
// 🚀 What is Gauss-Jordan elimination?
//
//	A direct method that reduces an augmented matrix [A|b] until every
//	pivot column holds a single 1 and zeros elsewhere. Once reduced,
//	the solution set of A·x = b can be read straight off the matrix.
//	It handles square, overdetermined, and underdetermined systems alike.
//
// ✨ Key features:
//   - partial pivoting: the largest-magnitude candidate wins, for stability
//   - fixed tolerance Epsilon = 1e-10 guards every division (configurable)
//   - three-way classification: Unique / Infinite / Inconsistent
//   - one particular solution for rank-deficient systems (free variables = 0)
//   - in-place reduction on caller-owned storage, zero copies
//   - exported kernels (FindPivot, SwapRows, NormalizeRow, EliminateRow)
//     for callers composing their own reduction pipelines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/gauss"
//
//	mat := [][]float64{
//	  {1, 1, 3},
//	  {2, 3, 8},
//	}
//	res, err := gauss.Solve(mat, 2, 2, nil) // nil ⇒ DefaultOptions
//	// res.Class == gauss.Unique, res.Solution == []float64{1, 2}
//
// ⚠️ Ownership:
//
//	Solve mutates the supplied matrix in place — the caller's original
//	rows are destroyed by the call. Snapshot with builder.Clone first if
//	the original coefficients are needed afterwards (e.g. for residual
//	checks). The matrix must not be shared across concurrent solves.
//
// Performance:
//
//   - Time:   O(m·n·min(m,n)) — one elimination sweep per pivot column
//   - Memory: O(min(m,n)) beyond the caller's matrix (pivot-column list)
//
// See examples in example_test.go for every classification outcome.
package gauss
