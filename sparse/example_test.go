// SPDX-License-Identifier: MIT

// Package sparse_test provides runnable examples for the COO→CSR lifecycle.
package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/netadjust/sparse"
)

// ExampleCOO_Compact demonstrates duplicate summation during compaction.
// Two separate contributions to the diagonal entry (0,0) merge into one
// stored value of 3.
func ExampleCOO_Compact() {
	// 1) Start a 2×2 accumulator.
	coo, _ := sparse.NewCOO(2, 2)

	// 2) Append contributions in any order; (0,0) receives two.
	_ = coo.Append(0, 0, 1)
	_ = coo.Append(1, 1, 2)
	_ = coo.Append(0, 0, 2)

	// 3) Compact merges duplicates by summation.
	a := coo.Compact()

	v, _ := a.At(0, 0)
	fmt.Printf("nnz=%d a[0,0]=%g\n", a.NNZ(), v)
	// Output: nnz=2 a[0,0]=3
}

// ExampleCSR_MulVec demonstrates the allocation-free mat-vec kernel that
// drives every conjugate-gradient iteration.
func ExampleCSR_MulVec() {
	// 1) Assemble a small tridiagonal operator.
	coo, _ := sparse.NewCOO(2, 2)
	_ = coo.Append(0, 0, 2)
	_ = coo.Append(0, 1, -1)
	_ = coo.Append(1, 0, -1)
	_ = coo.Append(1, 1, 2)
	a := coo.Compact()

	// 2) Multiply into a caller-owned buffer; dst is fully overwritten.
	dst := make([]float64, 2)
	_ = a.MulVec(dst, []float64{1, 1})

	fmt.Println(dst)
	// Output: [1 1]
}
