// SPDX-License-Identifier: MIT

// matrix.go: the Matrix container and its constructors.
//
// Storage layout is a single row-major flat slice: the element at (r, c)
// lives at data[r*cols+c]. One allocation per matrix, cache-friendly row
// traversal, and index arithmetic that inlines everywhere.
//
// Shape invariants, maintained by every constructor and method:
//   - rows >= 0 && cols >= 0
//   - len(data) == rows*cols
//
// Degenerate shapes (0×0, 0×n, n×0) are first-class values: constructible,
// comparable, transposable. Only negative dimensions are rejected.
package matrix

// Constructor operation tags used in wrapped errors.
const (
	opNew      = "New"
	opNewSq    = "NewSquare"
	opFromRows = "FromRows"
	opFromFlat = "FromFlat"
)

// Matrix is a dense rows×cols container over any Number element type N.
//
// The zero value is an empty 0×0 matrix, ready to use. All methods treat
// shape as immutable except TransposeInPlace and MulInPlace, which document
// how they change it.
type Matrix[N Number] struct {
	rows, cols int // dimensions; always non-negative
	data       []N // row-major backing store; len == rows*cols
}

// newMatrix allocates a rows×cols matrix without validation.
// Callers guarantee rows >= 0 and cols >= 0.
func newMatrix[N Number](rows, cols int) *Matrix[N] {
	return &Matrix[N]{
		rows: rows,
		cols: cols,
		data: make([]N, rows*cols),
	}
}

// New returns a zero-filled rows×cols matrix.
//
// Returns ErrBadShape if either dimension is negative.
// Complexity: O(rows*cols).
func New[N Number](rows, cols int) (*Matrix[N], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	return newMatrix[N](rows, cols), nil
}

// NewFilled returns a rows×cols matrix with every element set to fill.
//
// Returns ErrBadShape if either dimension is negative.
// Complexity: O(rows*cols).
func NewFilled[N Number](rows, cols int, fill N) (*Matrix[N], error) {
	m, err := New[N](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(fill)
	return m, nil
}

// NewSquare returns a zero-filled n×n matrix.
//
// Returns ErrBadShape if n is negative.
// Complexity: O(n²).
func NewSquare[N Number](n int) (*Matrix[N], error) {
	if err := validateDims(n, n); err != nil {
		return nil, matrixErrorf(opNewSq, err)
	}
	return newMatrix[N](n, n), nil
}

// NewSquareFilled returns an n×n matrix with every element set to fill.
//
// Returns ErrBadShape if n is negative.
// Complexity: O(n²).
func NewSquareFilled[N Number](n int, fill N) (*Matrix[N], error) {
	m, err := NewSquare[N](n)
	if err != nil {
		return nil, err
	}
	m.Fill(fill)
	return m, nil
}

// FromRows builds a matrix from a slice of rows, deep-copying the input.
// The first row fixes the column count; every subsequent row must supply at
// least that many elements, and any excess beyond it is ignored.
//
// An empty input yields the 0×0 matrix. A non-empty input whose first row
// is empty yields a rows×0 matrix.
//
// Returns ErrDimensionMismatch if any row is shorter than the first.
// Complexity: O(rows*cols).
func FromRows[N Number](rows [][]N) (*Matrix[N], error) {
	nr := len(rows)
	if nr == 0 {
		return newMatrix[N](0, 0), nil
	}
	nc := len(rows[0])

	// Validate the whole input before copying a single element.
	for i := 1; i < nr; i++ {
		if len(rows[i]) < nc {
			return nil, matrixErrorf(opFromRows, ErrDimensionMismatch)
		}
	}

	m := newMatrix[N](nr, nc)
	for i, row := range rows {
		copy(m.data[i*nc:(i+1)*nc], row) // copy stops at nc; longer rows truncate
	}
	return m, nil
}

// FromFlat builds a rows×cols matrix from a row-major flat slice,
// deep-copying the input. len(data) must equal rows*cols.
//
// Returns ErrBadShape on negative dimensions and ErrDimensionMismatch when
// the slice length disagrees with the requested shape.
// Complexity: O(rows*cols).
func FromFlat[N Number](rows, cols int, data []N) (*Matrix[N], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFromFlat, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromFlat, ErrDimensionMismatch)
	}
	m := newMatrix[N](rows, cols)
	copy(m.data, data)
	return m, nil
}
