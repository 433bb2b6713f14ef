// SPDX-License-Identifier: MIT

// Package sparse provides the two sparse-matrix representations used by the
// iterative adjustment pipeline: a coordinate-list (COO) accumulator for easy
// assembly and a compressed-sparse-row (CSR) form for fast repeated
// matrix-vector products.
//
// Overview:
//
//   - COO collects (row, col, value) triplets in arbitrary order. Multiple
//     triplets with the same (row, col) key are allowed and are summed during
//     compaction — this is what lets many edges contribute to one diagonal
//     entry without the caller pre-aggregating anything.
//   - CSR is the read-only, compacted form: three flat slices (rowPtr, colInd,
//     val) giving O(1) row-range lookup and a branch-light, allocation-free
//     MulVec kernel.
//
// Typical lifecycle:
//
//	coo, _ := sparse.NewCOO(n, n)
//	for each contribution { coo.Append(i, j, v) }
//	a := coo.Compact()          // one-time O(nnz log nnz) cost
//	for each solver iteration { a.MulVec(dst, x) }  // O(nnz), zero allocs
//
// Complexity:
//
//   - Append:  O(1) amortized
//   - Compact: O(nnz log nnz) for the sort, O(nnz) for the merge
//   - MulVec:  O(nnz) per call, no allocation
//
// Error handling (sentinel):
//
//   - ErrInvalidDimensions if requested dimensions are not positive.
//   - ErrIndexOutOfBounds  if a triplet lies outside the declared shape.
//   - ErrDimensionMismatch if MulVec buffers disagree with the matrix shape.
//
// The CSR form is safe for concurrent readers: MulVec never mutates the
// matrix, so any number of goroutines may share one *CSR as long as each
// owns its input and output vectors.
package sparse
