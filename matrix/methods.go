// SPDX-License-Identifier: MIT

// methods.go: accessors, shape queries, element access and traversal.
package matrix

import (
	"fmt"
	"strings"
)

// Method context tags used in wrapped errors.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// String rendering fragments.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// indexOf maps (r, c) to the flat row-major offset r*cols+c.
// Callers bounds-check first.
func (m *Matrix[N]) indexOf(r, c int) int {
	return r*m.cols + c
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[N]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[N]) Cols() int { return m.cols }

// Shape returns (rows, cols). Complexity: O(1).
func (m *Matrix[N]) Shape() (rows, cols int) { return m.rows, m.cols }

// Size returns the total element count rows*cols. Complexity: O(1).
func (m *Matrix[N]) Size() int { return m.rows * m.cols }

// At returns the element at (r, c).
//
// Returns ErrOutOfRange when the coordinate falls outside the matrix.
// Complexity: O(1).
func (m *Matrix[N]) At(r, c int) (N, error) {
	if err := m.validateIndex(r, c); err != nil {
		var zero N
		return zero, indexErrorf(ctxAt, r, c, err)
	}
	return m.data[m.indexOf(r, c)], nil
}

// Set stores v at (r, c).
//
// Returns ErrOutOfRange when the coordinate falls outside the matrix.
// Complexity: O(1).
func (m *Matrix[N]) Set(r, c int, v N) error {
	if err := m.validateIndex(r, c); err != nil {
		return indexErrorf(ctxSet, r, c, err)
	}
	m.data[m.indexOf(r, c)] = v
	return nil
}

// Row returns a copy of row r. Mutating the returned slice leaves the
// matrix untouched.
//
// Returns ErrOutOfRange when r is outside [0, rows).
// Complexity: O(cols).
func (m *Matrix[N]) Row(r int) ([]N, error) {
	if r < 0 || r >= m.rows {
		return nil, axisErrorf(ctxRow, r, ErrOutOfRange)
	}
	out := make([]N, m.cols)
	copy(out, m.data[r*m.cols:(r+1)*m.cols])
	return out, nil
}

// Col returns a copy of column c. Mutating the returned slice leaves the
// matrix untouched.
//
// Returns ErrOutOfRange when c is outside [0, cols).
// Complexity: O(rows).
func (m *Matrix[N]) Col(c int) ([]N, error) {
	if c < 0 || c >= m.cols {
		return nil, axisErrorf(ctxCol, c, ErrOutOfRange)
	}
	out := make([]N, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[m.indexOf(r, c)]
	}
	return out, nil
}

// Fill sets every element to v. Complexity: O(rows*cols).
func (m *Matrix[N]) Fill(v N) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Do calls fn for every element in row-major order. Read-only traversal;
// the walk stops early when fn returns false.
// Complexity: O(rows*cols).
func (m *Matrix[N]) Do(fn func(r, c int, v N) bool) {
	for r := 0; r < m.rows; r++ {
		base := r * m.cols
		for c := 0; c < m.cols; c++ {
			if !fn(r, c, m.data[base+c]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces every element with fn(r, c, v) in row-major order.
// Complexity: O(rows*cols).
func (m *Matrix[N]) Apply(fn func(r, c int, v N) N) {
	for r := 0; r < m.rows; r++ {
		base := r * m.cols
		for c := 0; c < m.cols; c++ {
			m.data[base+c] = fn(r, c, m.data[base+c])
		}
	}
}

// Equal reports whether m and o have the same shape and identical elements.
// Two nil matrices compare equal; nil never equals non-nil.
// Complexity: O(rows*cols).
func (m *Matrix[N]) Equal(o *Matrix[N]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy sharing no storage with the receiver.
// Cloning nil yields nil.
// Complexity: O(rows*cols).
func (m *Matrix[N]) Clone() *Matrix[N] {
	if m == nil {
		return nil
	}
	out := newMatrix[N](m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// String renders the matrix one bracketed row per line:
//
//	[1, 2]
//	[3, 4]
//
// Elements print with fmt's %v verb. The 0×0 matrix renders as "".
func (m *Matrix[N]) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteString(_fmtRowOpen)
		base := r * m.cols
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[base+c])
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}
