// SPDX-License-Identifier: MIT

// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical
//     constructors and kernels.
//   - Avoid any logic duplication: each facade delegates, never re-implements.
//
// Validation lives in the constructors and kernels; facades only compose or
// forward, so error tags and sentinels come through unchanged.
package matrix

// ---------- Constructors with intent-revealing names ----------

// NewZeros returns a zero-initialized rows×cols matrix.
// Thin alias of New; the element type's zero value is the fill.
// Complexity: O(rows*cols).
func NewZeros[N Number](rows, cols int) (*Matrix[N], error) {
	return New[N](rows, cols)
}

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
//
// Returns ErrBadShape if n is negative.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity[N Number](n int) (*Matrix[N], error) {
	ident, err := NewSquare[N](n)
	if err != nil {
		return nil, err
	}
	one := N(1)
	for i := 0; i < n; i++ {
		_ = ident.Set(i, i, one) // bounds hold for every i < n
	}
	return ident, nil
}

// ZerosLike returns a zero matrix with the same shape as m.
// Handy for staging buffers.
// Complexity: O(rows*cols).
func ZerosLike[N Number](m *Matrix[N]) (*Matrix[N], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	return New[N](m.rows, m.cols)
}

// IdentityLike returns I with dimension Rows(m); m must be square.
//
// Returns ErrNilMatrix on nil input and ErrDimensionMismatch when
// m is not square.
// Complexity: O(n²).
func IdentityLike[N Number](m *Matrix[N]) (*Matrix[N], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if m.rows != m.cols {
		return nil, matrixErrorf("IdentityLike", ErrDimensionMismatch)
	}
	return NewIdentity[N](m.rows)
}

// ---------- Arithmetic aliases (1:1 with ops.go; same contracts) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rows*cols).
func Sum[N Number](a, b *Matrix[N]) (*Matrix[N], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rows*cols).
func Diff[N Number](a, b *Matrix[N]) (*Matrix[N], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(a.rows * a.cols * b.cols).
func Product[N Number](a, b *Matrix[N]) (*Matrix[N], error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
// Complexity: O(rows*cols).
func HadamardProd[N Number](a, b *Matrix[N]) (*Matrix[N], error) { return Hadamard(a, b) }

// ScaleBy is an alias for Scale: s·m. Scalar order does not matter.
// Complexity: O(rows*cols).
func ScaleBy[N Number](m *Matrix[N], s N) (*Matrix[N], error) { return Scale(m, s) }

// DivBy is an alias for Div: m with every element divided by s.
// Complexity: O(rows*cols).
func DivBy[N Number](m *Matrix[N], s N) (*Matrix[N], error) { return Div(m, s) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rows*cols).
func T[N Number](m *Matrix[N]) (*Matrix[N], error) { return Transpose(m) }
