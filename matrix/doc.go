// Package matrix implements a generic dense rows×cols container over any
// built-in numeric element type.
//
// The matrix package provides:
//
//   - Constructors for zero-filled, fill-valued, square, nested-slice and
//     flat-slice sources, all producing an independently owned buffer.
//   - Bounds-checked At/Set element access and O(1) shape queries.
//   - In-place compound-assignment arithmetic (AddInPlace, SubInPlace,
//     ScaleInPlace, DivInPlace, HadamardInPlace, MulInPlace,
//     TransposeInPlace) as the single source of truth per algorithm.
//   - Value-returning counterparts (Add, Sub, Scale, Div, Hadamard, Mul,
//     Transpose) that never mutate their operands.
//
// Storage is one contiguous row-major slice; element (r, c) lives at
// offset r*cols+c. Failures surface as wrapped sentinel errors
// (ErrOutOfRange, ErrShapeMismatch, ErrDimensionMismatch, ErrBadShape,
// ErrNilMatrix) matchable with errors.Is.
//
// Instances are not safe for concurrent mutation; wrap shared matrices in
// external synchronization if needed.
//
// See the examples in this package for usage patterns.
package matrix
