// SPDX-License-Identifier: MIT

// ops_inplace.go: compound-assignment arithmetic primitives.
//
// Every algorithm in this package lives here exactly once, as an in-place
// method mutating the receiver. The value-returning forms in ops.go are thin
// clone-then-delegate wrappers, so there is a single source of truth per
// operation.
//
// Contracts shared by all primitives:
//   - validate first, write second: a rejected operation leaves the receiver
//     bit-for-bit unchanged;
//   - element arithmetic is whatever the element type defines (integer
//     division truncates, float division follows IEEE-754, and so on).
package matrix

// Operation tags used in wrapped errors.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
)

// AddInPlace adds o to the receiver element-wise: m[r][c] += o[r][c].
//
// Returns ErrNilMatrix on a nil operand and ErrShapeMismatch when the
// shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix[N]) AddInPlace(o *Matrix[N]) error {
	return m.addSubInPlace(o, false, opAdd)
}

// SubInPlace subtracts o from the receiver element-wise: m[r][c] -= o[r][c].
//
// Returns ErrNilMatrix on a nil operand and ErrShapeMismatch when the
// shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix[N]) SubInPlace(o *Matrix[N]) error {
	return m.addSubInPlace(o, true, opSub)
}

// addSubInPlace is the shared kernel behind AddInPlace and SubInPlace.
func (m *Matrix[N]) addSubInPlace(o *Matrix[N], sub bool, op string) error {
	// Stage 1: validate both operands before any write.
	if err := validateSameShape(m, o); err != nil {
		return matrixErrorf(op, err)
	}
	// Stage 2: one tight pass over the flat buffers.
	if sub {
		for i, v := range o.data {
			m.data[i] -= v
		}
		return nil
	}
	for i, v := range o.data {
		m.data[i] += v
	}
	return nil
}

// ScaleInPlace multiplies every element by s: m[r][c] *= s.
// Always succeeds. Complexity: O(rows*cols).
func (m *Matrix[N]) ScaleInPlace(s N) {
	for i := range m.data {
		m.data[i] *= s
	}
}

// DivInPlace divides every element by s: m[r][c] /= s.
//
// No zero-divisor check is performed: the element type's own division
// semantics govern, so integer elements panic on s == 0 while floats
// produce ±Inf or NaN.
// Complexity: O(rows*cols).
func (m *Matrix[N]) DivInPlace(s N) {
	for i := range m.data {
		m.data[i] /= s
	}
}

// HadamardInPlace multiplies the receiver by o element-wise:
// m[r][c] *= o[r][c].
//
// Returns ErrNilMatrix on a nil operand and ErrShapeMismatch when the
// shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix[N]) HadamardInPlace(o *Matrix[N]) error {
	if err := validateSameShape(m, o); err != nil {
		return matrixErrorf(opHadamard, err)
	}
	for i, v := range o.data {
		m.data[i] *= v
	}
	return nil
}

// MulInPlace replaces the receiver with the matrix product m×o, so the
// receiver's shape becomes (m.rows, o.cols):
//
//	result[r][c] = Σ m[r][k] * o[k][c]  for k in [0, m.cols)
//
// The product is accumulated into a fresh buffer and swapped in whole, so
// m.MulInPlace(m) squares a matrix correctly.
//
// Returns ErrNilMatrix on a nil operand and ErrDimensionMismatch when
// m.cols != o.rows.
// Complexity: O(m.rows * m.cols * o.cols).
func (m *Matrix[N]) MulInPlace(o *Matrix[N]) error {
	// Stage 1: validate inner dimensions.
	if err := validateMulDims(m, o); err != nil {
		return matrixErrorf(opMul, err)
	}

	// Stage 2: i→k→j accumulation. Walking k in the middle keeps both the
	// o row and the result row on sequential addresses; rows of m that hold
	// zeros are skipped outright.
	rows, inner, cols := m.rows, m.cols, o.cols
	buf := make([]N, rows*cols)
	var zero N
	for i := 0; i < rows; i++ {
		mRow := m.data[i*inner : (i+1)*inner]
		outRow := buf[i*cols : (i+1)*cols]
		for k := 0; k < inner; k++ {
			av := mRow[k]
			if av == zero {
				continue
			}
			oRow := o.data[k*cols : (k+1)*cols]
			for j := 0; j < cols; j++ {
				outRow[j] += av * oRow[j]
			}
		}
	}

	// Stage 3: swap the result in atomically.
	m.data = buf
	m.cols = cols
	return nil
}

// TransposeInPlace rebuilds the receiver as its cols×rows transpose:
// result[c][r] = original[r][c].
//
// Zero-sized matrices are returned untouched, shape included. Because the
// source and destination layouts differ, the transpose is built in a fresh
// buffer and swapped in rather than permuted over aliased memory.
// Complexity: O(rows*cols).
func (m *Matrix[N]) TransposeInPlace() {
	if m.rows == 0 || m.cols == 0 {
		return
	}
	rows, cols := m.rows, m.cols
	buf := make([]N, len(m.data))
	for r := 0; r < rows; r++ {
		base := r * cols
		for c := 0; c < cols; c++ {
			buf[c*rows+r] = m.data[base+c]
		}
	}
	m.data = buf
	m.rows, m.cols = cols, rows
}
