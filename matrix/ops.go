// SPDX-License-Identifier: MIT

// ops.go: value-returning arithmetic forms.
//
// Each function here is "clone the left operand, apply the in-place
// primitive, return the clone". Neither input is ever mutated; the
// algorithms themselves live in ops_inplace.go.
package matrix

// Free-function operation tags used in wrapped errors.
const (
	opScale = "Scale"
	opDiv   = "Div"
)

// Add returns a + b element-wise. Neither operand is mutated.
//
// Returns ErrNilMatrix on a nil operand and ErrShapeMismatch when the
// shapes differ.
// Complexity: O(rows*cols).
func Add[N Number](a, b *Matrix[N]) (*Matrix[N], error) {
	out := a.Clone()
	if err := out.AddInPlace(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Sub returns a - b element-wise. Neither operand is mutated.
//
// Returns ErrNilMatrix on a nil operand and ErrShapeMismatch when the
// shapes differ.
// Complexity: O(rows*cols).
func Sub[N Number](a, b *Matrix[N]) (*Matrix[N], error) {
	out := a.Clone()
	if err := out.SubInPlace(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Scale returns m with every element multiplied by s. m is not mutated.
// Scalar multiplication commutes: s*m and m*s are the same value.
//
// Returns ErrNilMatrix on a nil operand.
// Complexity: O(rows*cols).
func Scale[N Number](m *Matrix[N], s N) (*Matrix[N], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.Clone()
	out.ScaleInPlace(s)
	return out, nil
}

// Div returns m with every element divided by s. m is not mutated.
// As with DivInPlace, no zero-divisor check is performed.
//
// Returns ErrNilMatrix on a nil operand.
// Complexity: O(rows*cols).
func Div[N Number](m *Matrix[N], s N) (*Matrix[N], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	out := m.Clone()
	out.DivInPlace(s)
	return out, nil
}

// Hadamard returns the element-wise product a ∘ b. Neither operand is
// mutated.
//
// Returns ErrNilMatrix on a nil operand and ErrShapeMismatch when the
// shapes differ.
// Complexity: O(rows*cols).
func Hadamard[N Number](a, b *Matrix[N]) (*Matrix[N], error) {
	out := a.Clone()
	if err := out.HadamardInPlace(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Mul returns the matrix product a×b with shape (a.rows, b.cols). Neither
// operand is mutated.
//
// Returns ErrNilMatrix on a nil operand and ErrDimensionMismatch when
// a.cols != b.rows.
// Complexity: O(a.rows * a.cols * b.cols).
func Mul[N Number](a, b *Matrix[N]) (*Matrix[N], error) {
	out := a.Clone()
	if err := out.MulInPlace(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Transpose returns the cols×rows transpose of m. m is not mutated.
//
// Returns ErrNilMatrix on a nil operand.
// Complexity: O(rows*cols).
func Transpose[N Number](m *Matrix[N]) (*Matrix[N], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := m.Clone()
	out.TransposeInPlace()
	return out, nil
}
