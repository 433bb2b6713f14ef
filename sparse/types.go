// SPDX-License-Identifier: MIT

// Package sparse: sentinel errors and shared triplet types.
// Concrete storage lives in coo.go (accumulation) and csr.go (compacted form).
package sparse

import "errors"

// Sentinel errors returned by the sparse package.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the declared shape.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates that a vector length disagrees with the matrix shape.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)

// triplet is a single (row, col, value) contribution recorded by a COO
// accumulator. Duplicate (row, col) keys are legal; Compact sums them.
type triplet struct {
	row int     // 0-based row index, 0 ≤ row < rows
	col int     // 0-based column index, 0 ≤ col < cols
	val float64 // signed contribution; summed with duplicates on Compact
}
