// SPDX-License-Identifier: MIT

// validators.go centralizes every precondition check used by the package.
// Each validator returns a bare sentinel; call sites add operation context
// with matrixErrorf / indexErrorf so the sentinel remains matchable via
// errors.Is.
package matrix

// validateNotNil rejects a nil *Matrix operand.
// A zero-value Matrix (0×0, nil data) is valid and passes.
func validateNotNil[N Number](m *Matrix[N]) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// validateDims rejects negative dimensions at construction time.
// Zero dimensions pass: degenerate 0×n and n×0 shapes are constructible.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	return nil
}

// validateIndex bounds-checks a single (row, col) coordinate pair.
func (m *Matrix[N]) validateIndex(r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return ErrOutOfRange
	}
	return nil
}

// validateSameShape requires both operands non-nil and of identical shape.
// Used by every element-wise binary operation.
func validateSameShape[N Number](a, b *Matrix[N]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return ErrShapeMismatch
	}
	return nil
}

// validateMulDims requires both operands non-nil and the inner dimensions
// aligned for the matrix product: a.cols must equal b.rows.
func validateMulDims[N Number](a, b *Matrix[N]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}
	return nil
}
