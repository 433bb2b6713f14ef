// Package netadjust is a compact toolkit for least-squares adjustment of
// 2D measurement networks — closing accumulated drift in chains of
// position estimates anchored to known-good reference points.
//
// 🚀 What is netadjust?
//
//	A small, dependency-light library that brings together:
//		• Sparse matrices: COO accumulation + CSR compaction with a fast mat-vec product
//		• Conjugate Gradient: an allocation-frugal iterative SPD solver with breakdown guards
//		• Network adjustment: normal-equations assembly with anchor (boundary-condition) folding
//		• Dual-axis solving: X and Y sub-problems solved concurrently over one shared matrix
//		• Pluggable adjusters: Noop, Proportional and LeastSquares strategies over named networks
//
// ✨ Why choose netadjust?
//
//   - Predictable numerics – explicit tolerances, iteration caps and stall guards
//   - Graceful degradation – near-singular systems return their best iterate, never hang
//   - Pure Go – no cgo, no BLAS, no hidden deps
//   - Anchors stay put – fixed vertices are eliminated as boundary conditions, never rewritten
//
// Everything is organized under four subpackages:
//
//	sparse/ — COO / CSR sparse matrix storage and the mat-vec kernel
//	cg/     — conjugate-gradient solver for symmetric positive-definite systems
//	adjust/ — index reduction, normal-equations assembly, concurrent dual-axis solve
//	solver/ — named-station network model with pluggable adjustment strategies
//
// Quick ASCII example:
//
//	    ⊙A────●B
//	          │
//	    ⊙D────●C
//
//	⊙ are anchors with surveyed coordinates, ● are free stations whose
//	positions are recomputed so every edge observation is satisfied as
//	closely as possible in the weighted least-squares sense.
//
// Dive into the per-package doc.go files for algorithms, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/netadjust
package netadjust
