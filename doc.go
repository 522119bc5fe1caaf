// Package lvmat is a compact, generic dense-matrix toolkit — one container,
// bounds-checked accessors, and a full element-wise/matrix arithmetic suite
// over any built-in numeric element type.
//
// 🚀 What is lvmat?
//
//	A small, dependency-free library built around a single idea:
//		• Matrix[N]: a generic rows×cols container over one contiguous row-major buffer
//		• Safe access: At/Set return errors instead of panicking on bad indices
//		• Arithmetic: element-wise add/sub, Hadamard product, scalar scale/divide
//		• True matrix product with fail-fast inner-dimension checks
//		• Transpose, deep Clone, Row/Col copies, visitors (Do/Apply)
//		• Ready-made aliases: IntMatrix, Float32Matrix, Float64Matrix, Complex128Matrix
//
// ✨ Why choose lvmat?
//
//   - One source of truth – in-place primitives are canonical; value-returning
//     forms clone first and delegate
//   - Predictable failures – sentinel errors, matched with errors.Is
//   - Pure Go – no cgo, no hidden deps, generics instead of reflection
//   - Deterministic – fixed loop orders, no map iteration, no global state
//
// Everything lives in a single subpackage:
//
//	matrix/ — the Matrix[N] container, constructors, operators and validators
//
// Quick taste:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {2, 3}})
//	b, _ := matrix.FromRows([][]int{{4, 3}, {3, 2}})
//	p, _ := matrix.Mul(a, b) // [[10, 7], [17, 12]]
//
// Demo drivers live under examples/; they print matrices and are external
// collaborators, not part of the container itself.
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
