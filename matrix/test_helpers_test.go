// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures and assertion helpers.
//
// Purpose:
//   - Keep per-test boilerplate down: Must* helpers abort the test on
//     unexpected errors so the happy path stays readable.
//   - Keep all fixture data finite and deterministic.
package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
)

// MustNew allocates a zero-filled r×c matrix or fails the test.
func MustNew[N matrix.Number](t *testing.T, r, c int) *matrix.Matrix[N] {
	t.Helper()
	m, err := matrix.New[N](r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a matrix from nested rows or fails the test.
func MustFromRows[N matrix.Number](t *testing.T, rows [][]N) *matrix.Matrix[N] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt reads m[r,c] or fails the test.
func MustAt[N matrix.Number](t *testing.T, m *matrix.Matrix[N], r, c int) N {
	t.Helper()
	v, err := m.At(r, c)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", r, c, err)
	}

	return v
}

// MustSet writes v to m[r,c] or fails the test.
func MustSet[N matrix.Number](t *testing.T, m *matrix.Matrix[N], r, c int, v N) {
	t.Helper()
	if err := m.Set(r, c, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", r, c, v, err)
	}
}

// CompareExact asserts strict equality between m and a 2D literal,
// failing with the exact mismatch location. Use only for values where ==
// is meaningful (integers, exactly representable floats).
func CompareExact[N matrix.Number](t *testing.T, want [][]N, m *matrix.Matrix[N]) {
	t.Helper()
	r, c := m.Shape()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v N
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// AssertErrorIs wraps errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// RandomFill fills m with deterministic U(-1,1) values by seed.
// Reproducible randomness for property tests.
func RandomFill(t *testing.T, m *matrix.Float64Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// RandFilled returns a new r×c float64 matrix filled with deterministic
// U(-1,1) values by seed.
func RandFilled(t *testing.T, r, c int, seed int64) *matrix.Float64Matrix {
	t.Helper()
	m := MustNew[float64](t, r, c)
	RandomFill(t, m, seed)

	return m
}

// RandomWholeFill fills m with deterministic whole-number values in
// [-100, 100] by seed. Whole numbers this small add and subtract without
// rounding, so round-trip properties can compare with Equal.
func RandomWholeFill(t *testing.T, m *matrix.Float64Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, float64(rng.Intn(201)-100))
		}
	}
}

// RandWholeFilled returns a new r×c float64 matrix filled with
// deterministic whole-number values by seed.
func RandWholeFilled(t *testing.T, r, c int, seed int64) *matrix.Float64Matrix {
	t.Helper()
	m := MustNew[float64](t, r, c)
	RandomWholeFill(t, m, seed)

	return m
}

// ---------- bench helpers ----------

func mustBench(b *testing.B, r, c int) *matrix.Float64Matrix {
	m, err := matrix.NewZeros[float64](r, c)
	if err != nil {
		b.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}
	return m
}

func fillBenchRand(b *testing.B, m *matrix.Float64Matrix, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
