// SPDX-License-Identifier: MIT

package matrix

// Number is the type-set constraint for matrix elements: every built-in
// integer, floating-point and complex type, plus any named type whose
// underlying type is one of them.
//
// Arithmetic semantics follow the element type. Integer division truncates
// and dividing by zero panics, exactly as it does for plain Go ints; float
// division by zero yields ±Inf or NaN per IEEE-754. The package adds no
// checks of its own on top of that.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Convenience aliases for the most common instantiations.
type (
	// IntMatrix is a Matrix over int.
	IntMatrix = Matrix[int]
	// Float32Matrix is a Matrix over float32.
	Float32Matrix = Matrix[float32]
	// Float64Matrix is a Matrix over float64.
	Float64Matrix = Matrix[float64]
	// Complex128Matrix is a Matrix over complex128.
	Complex128Matrix = Matrix[complex128]
)
