// Package lvmatrix is a small dense-matrix engine: row-major float64 storage
// with explicit ownership, element-wise algebra, products, and the classical
// minor → determinant → cofactor → adjugate → inverse chain.
//
// 🚀 What is inside?
//
//	matrix/           — Dense type, element-wise ops, Mul/Transpose,
//	                    Minor, Determinant, Cofactors, Adjugate, Inverse
//	internal/matfile/ — YAML documents ⇄ Dense
//	cmd/matcalc/      — command-line calculator over YAML files
//
// ✨ Guarantees
//
//   - Fail-fast: every kernel validates once and returns a sentinel error
//     wrapped with the operation name (match with errors.Is).
//   - Deterministic: fixed loop orders, no hidden parallelism.
//   - Value semantics: results are always freshly allocated; in-place variants
//     leave the receiver untouched on error.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	inv, _ := matrix.Inverse(a) // [[-2, 1], [1.5, -0.5]]
//
// Determinant and the cofactor family use Laplace expansion, O(n!) in n.
// They are meant for small matrices.
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
