// Package cg implements the Conjugate Gradient method for solving
// symmetric positive-definite (SPD) linear systems A·x = b held in
// compressed sparse row form.
//
// Overview:
//
//   - CG iteratively refines a solution without ever forming A⁻¹; in exact
//     arithmetic it converges within N steps for an N×N system, and in
//     practice far sooner for the diffusion-like operators produced by
//     network adjustment.
//   - The solver reuses one scratch buffer for A·p across all iterations of
//     a solve, so the steady-state cost per iteration is one O(nnz) mat-vec
//     plus a handful of O(n) vector updates with zero allocation.
//
// Termination, in priority order each iteration:
//
//  1. Convergence: the residual norm √(r·r) drops below Tolerance.
//  2. Breakdown: |p·A·p| < BreakdownEpsilon — the search direction carries
//     no usable curvature (typically a semi-definite system, e.g. a free
//     component with no anchor). The solver stops and keeps its current
//     iterate rather than dividing by a vanishing quantity.
//  3. Iteration cap: MaxIterations reached.
//
// Graceful degradation is deliberate: Solve never reports stall or
// non-convergence as an error. The returned Result always carries the best
// iterate; callers that need to distinguish outcomes inspect
// Result.Status and Result.Residual instead of the error value. Errors are
// reserved for structurally invalid inputs (nil or non-square matrix,
// mismatched vector lengths).
//
// Options:
//
//   - WithMaxIterations(n): iteration cap (default DefaultMaxIterations).
//   - WithTolerance(t):     residual-norm stopping threshold (default DefaultTolerance).
//
// Complexity:
//
//   - Time:  O(k·nnz) for k iterations over a matrix with nnz stored entries.
//   - Space: O(n) for the four working vectors (x, r, p, scratch A·p).
//
// Thread safety: Solve has no package-level state. The input matrix is only
// read, so any number of concurrent Solve calls may share one *sparse.CSR as
// long as each call owns its b, x0 and result vectors.
package cg
