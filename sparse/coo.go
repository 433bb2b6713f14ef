// SPDX-License-Identifier: MIT

// Package sparse: COO (coordinate-list) accumulator.
// COO favors easy, order-independent assembly; convert to CSR via Compact
// before any repeated numerical work.
package sparse

import "sort"

// COO accumulates sparse matrix entries as (row, col, value) triplets.
// Entries may arrive in any order and the same (row, col) key may be
// appended many times — summation is deferred to Compact. A COO is not
// safe for concurrent writers.
type COO struct {
	rows, cols int       // declared shape; immutable after NewCOO
	entries    []triplet // raw contributions in insertion order
}

// NewCOO creates an empty rows×cols COO accumulator.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Finalize): return the accumulator or ErrInvalidDimensions.
// Complexity: O(1).
func NewCOO(rows, cols int) (*COO, error) {
	// Validate dimensions before allocating anything.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &COO{rows: rows, cols: cols}, nil
}

// Rows returns the declared number of rows.
// Complexity: O(1).
func (m *COO) Rows() int { return m.rows }

// Cols returns the declared number of columns.
// Complexity: O(1).
func (m *COO) Cols() int { return m.cols }

// NNZ returns the number of raw (pre-merge) triplets recorded so far.
// Duplicates count individually until Compact merges them.
// Complexity: O(1).
func (m *COO) NNZ() int { return len(m.entries) }

// Append records the contribution v at (row, col).
// Duplicate keys are allowed and will be summed by Compact; appending an
// explicit zero is legal and simply survives as a stored entry.
// Returns ErrIndexOutOfBounds if (row, col) lies outside the declared shape.
// Complexity: O(1) amortized.
func (m *COO) Append(row, col int, v float64) error {
	// Validate row index.
	if row < 0 || row >= m.rows {
		return ErrIndexOutOfBounds
	}
	// Validate column index.
	if col < 0 || col >= m.cols {
		return ErrIndexOutOfBounds
	}

	// Record the raw triplet; merging happens once, in Compact.
	m.entries = append(m.entries, triplet{row: row, col: col, val: v})

	return nil
}

// Compact converts the accumulated triplets into a CSR matrix, summing every
// group of entries that shares a (row, col) key. The COO itself is left
// untouched and may keep accumulating for a later, independent Compact.
//
// Stage 1 (Order): sort a copy of the triplets by (row, col).
// Stage 2 (Merge): fold runs of equal keys into single summed values.
// Stage 3 (Index): build the rowPtr offsets over the merged entries.
//
// Complexity: O(nnz log nnz) time for the sort, O(nnz) memory.
func (m *COO) Compact() *CSR {
	// 1) Copy so the accumulator stays reusable and unsorted.
	sorted := make([]triplet, len(m.entries))
	copy(sorted, m.entries)

	// 2) Order by row, then column, so duplicates become adjacent and each
	//    CSR row ends up with ascending column indices.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].row != sorted[j].row {
			return sorted[i].row < sorted[j].row
		}

		return sorted[i].col < sorted[j].col
	})

	// 3) Merge adjacent duplicates by summation: many edges legitimately
	//    contribute to one diagonal entry, and those contributions must
	//    add, never overwrite.
	merged := sorted[:0]
	for _, t := range sorted {
		n := len(merged)
		if n > 0 && merged[n-1].row == t.row && merged[n-1].col == t.col {
			merged[n-1].val += t.val
			continue
		}
		merged = append(merged, t)
	}

	// 4) Lay the merged entries out as CSR: values and column indices in one
	//    flat pass, rowPtr[r] pointing at the first entry of row r.
	csr := &CSR{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: make([]int, m.rows+1),
		colInd: make([]int, len(merged)),
		val:    make([]float64, len(merged)),
	}
	for i, t := range merged {
		csr.colInd[i] = t.col
		csr.val[i] = t.val
		csr.rowPtr[t.row+1]++ // count entries per row first
	}
	// Prefix-sum the per-row counts into absolute offsets.
	for r := 0; r < m.rows; r++ {
		csr.rowPtr[r+1] += csr.rowPtr[r]
	}

	return csr
}
