// SPDX-License-Identifier: MIT

// Package matrix: sentinel errors and wrap helpers.
//
// Every failure mode in this package is represented by exactly one sentinel
// below. Methods never build ad-hoc error strings: they wrap the sentinel
// with operation context via matrixErrorf / indexErrorf, so callers can both
// read a precise message and branch with errors.Is.
//
//	if err := a.AddInPlace(b); errors.Is(err, matrix.ErrShapeMismatch) { ... }
//
// All sentinel texts share the "matrix:" prefix to keep wrapped messages
// grep-able in logs.
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure mode.
var (
	// ErrOutOfRange is returned by At / Set / Row / Col when a row or column
	// index falls outside the receiver's bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch is returned by element-wise operations (Add, Sub,
	// Hadamard) when the two operands do not share the exact same
	// rows×cols shape.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionMismatch is returned by the matrix product when the inner
	// dimensions disagree (left.cols != right.rows), and by the bulk
	// constructors: FromRows on a row shorter than the first, FromFlat on a
	// slice length that disagrees with the requested shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned by constructors when a requested dimension is
	// negative. Zero is a valid dimension: 0×n and n×0 matrices exist.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix is returned when an operation receives a nil *Matrix
	// operand or a nil receiver.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag: "Add: matrix: shape mismatch".
// The sentinel stays reachable through errors.Is / errors.Unwrap.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps err with the method name and the offending coordinates,
// e.g. "At(3,0): matrix: index out of range".
func indexErrorf(method string, r, c int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, r, c, err)
}

// axisErrorf wraps err with the method name and a single axis index,
// e.g. "Row(2): matrix: index out of range". For methods that take one
// coordinate, not a pair.
func axisErrorf(method string, i int, err error) error {
	return fmt.Errorf("%s(%d): %w", method, i, err)
}
