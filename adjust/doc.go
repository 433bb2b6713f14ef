// Package adjust performs weighted least-squares adjustment of a 2D graph
// of vertices connected by relative-displacement observations — the classic
// loop-closure problem of distributing accumulated drift across a network
// anchored to known-good coordinates.
//
// Overview:
//
//   - Fixed vertices are anchors: their coordinates are trusted and are
//     eliminated from the linear system as boundary conditions, never
//     rewritten. Free vertices are the unknowns.
//   - Each edge (u, v, dx, dy, w) is the observation x_v − x_u = dx,
//     y_v − y_u = dy with weight w (typically an inverse variance).
//     Minimizing the weighted squared residuals yields the normal equations
//     (AᵀWA)·x = AᵀWb — a sparse symmetric positive-definite system over
//     the free vertices only.
//   - The X and Y sub-systems share one coefficient matrix (the constraint
//     topology is axis-independent); only the right-hand sides differ, so
//     both axes are solved concurrently over the shared read-only matrix.
//
// Pipeline, leaf-first:
//
//	index reduction → normal-equations assembly → COO→CSR compaction
//	→ dual-axis Conjugate Gradient (errgroup fork-join) → writeback
//
// Positive-definiteness holds when every connected component of the
// free-vertex subgraph reaches at least one anchor. Components with no
// anchor leave the matrix merely semi-definite; the CG layer then stalls
// gracefully (Breakdown) and those vertices keep their best iterate —
// by policy this is never an error.
//
// Two entry points:
//
//   - Adjust(*Problem, ...Option): the library API. Validates shapes and
//     edge references, returns sentinel errors, mutates Problem.X/Y in
//     place for free vertices only.
//   - SolveGraphLeastSquares(...): the trusting boundary surface modeled on
//     a native-call contract. No validation beyond what Go's runtime
//     enforces, a reserved sentinel iteration count for fault-injection
//     testing, panic containment, and an integer status code.
//
// Error handling (sentinel, library API only):
//
//   - ErrNilProblem      if the problem pointer is nil.
//   - ErrLengthMismatch  if X, Y and Fixed lengths disagree.
//   - ErrVertexRange     if an edge references a vertex outside [0, n).
//   - ErrNegativeWeight  if an edge weight is negative.
//
// Concurrency: exactly two worker goroutines per call, structured — spawned
// and joined inside Adjust, no detached work, no shared mutable state.
// Writeback happens strictly after both workers have joined; there is no
// partial visibility of results. The call is otherwise synchronous and
// keeps no state between invocations.
//
// Complexity:
//
//   - Assembly: O(E) contributions, O(nnz log nnz) compaction.
//   - Solve:    O(k·nnz) per axis for k CG iterations, run in parallel.
//   - Space:    O(V + E).
package adjust
