// SPDX-License-Identifier: MIT

// Package sparse: CSR (compressed sparse row) matrix.
// CSR is produced exclusively by COO.Compact and is immutable afterwards,
// which makes it safe to share across concurrent solver goroutines.
package sparse

// CSR is a row-compressed sparse matrix of float64 values.
// For row r, the stored entries live at positions rowPtr[r]..rowPtr[r+1]-1
// of colInd/val, with colInd ascending within each row.
type CSR struct {
	rows, cols int       // matrix shape
	rowPtr     []int     // length rows+1; rowPtr[r] = first entry of row r
	colInd     []int     // length nnz; column index per stored entry
	val        []float64 // length nnz; value per stored entry
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored (merged) entries.
// Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.val) }

// At returns the value stored at (row, col), or 0 for structural zeros.
// Intended for tests and debugging; the solver hot path never calls it.
// Returns ErrIndexOutOfBounds for indices outside the shape.
// Complexity: O(row nnz) linear scan of one row.
func (m *CSR) At(row, col int) (float64, error) {
	// Validate both indices against the shape.
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfBounds
	}

	// Scan the row's compact range for the requested column.
	for i := m.rowPtr[row]; i < m.rowPtr[row+1]; i++ {
		if m.colInd[i] == col {
			return m.val[i], nil
		}
	}

	// Absent entry: structural zero.
	return 0, nil
}

// MulVec computes dst = A·x into the caller-supplied dst buffer.
// dst must have length Rows() and x length Cols(); every dst entry is
// overwritten. The kernel allocates nothing and never mutates the matrix,
// so concurrent MulVec calls over one CSR are safe as long as each caller
// owns its own dst and x.
//
// This is the dominant cost of every CG iteration; keep it branch-light.
// Complexity: O(nnz) time, O(1) extra memory.
func (m *CSR) MulVec(dst, x []float64) error {
	// Validate buffer lengths once; the inner loop stays check-free.
	if len(dst) != m.rows || len(x) != m.cols {
		return ErrDimensionMismatch
	}

	// Row-major accumulation: one dot product of stored entries per row.
	var sum float64
	for r := 0; r < m.rows; r++ {
		sum = 0
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			sum += m.val[i] * x[m.colInd[i]]
		}
		dst[r] = sum
	}

	return nil
}
