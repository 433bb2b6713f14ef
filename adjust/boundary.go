// Package adjust: the trusting boundary surface, modeled on a native-call
// (FFI-style) contract with integer status codes and panic containment.
package adjust

import (
	"fmt"
	"os"
)

// Status codes returned by SolveGraphLeastSquares.
const (
	// StatusOK reports success, including the trivial no-free-vertices case.
	StatusOK = 0

	// StatusFault reports a contained internal fault (including the
	// deliberate SentinelFault trigger). Coordinate buffers are then in an
	// unspecified but memory-safe state.
	StatusFault = -1
)

// SentinelFault is the reserved maxIterations value that deliberately
// trips the boundary's fault path. It exists purely so callers can test
// their status-code handling; it must never be used as a real cap.
const SentinelFault = -1

// SolveGraphLeastSquares is the boundary entry point for foreign or
// buffer-oriented callers. It adjusts the free vertices of a 2D graph in
// place and reports an integer status instead of an error value.
//
// Trust contract: the caller guarantees that x, y and fixed share one
// length (the vertex count) and that from, to, dx, dy and weight share
// another (the edge count), with every from/to index in range. No bounds
// validation is performed here beyond what the Go runtime enforces; a
// violated contract surfaces as a contained fault, not a crash.
//
// Parameters:
//
//   - x, y:     per-vertex coordinates; initial guess in, adjusted out.
//     Fixed vertices' entries are read but never written.
//   - fixed:    per-vertex flags; 0 = free, nonzero = fixed anchor.
//   - from, to: per-edge vertex indices.
//   - dx, dy:   per-edge observed displacements from → to.
//   - weight:   per-edge non-negative observation weights.
//   - maxIterations: CG iteration cap per axis. SentinelFault (-1) is
//     reserved and triggers the fault path deliberately.
//   - tolerance: CG residual-norm stopping threshold per axis.
//
// Returns StatusOK on success. On any internal fault — the sentinel
// trigger, a violated trust contract, or an unexpected runtime failure —
// a diagnostic is written to stderr and StatusFault is returned; no panic
// ever escapes this function.
func SolveGraphLeastSquares(
	x, y []float64,
	fixed []int32,
	from, to []int32,
	dx, dy, weight []float64,
	maxIterations int,
	tolerance float64,
) (status int) {
	// Contain every fault at this single entry point: convert to a status
	// code plus one stderr diagnostic, mirroring an FFI boundary where
	// unwinding must never cross into the caller.
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "adjust: fault contained in SolveGraphLeastSquares: %v\n", rec)
			status = StatusFault
		}
	}()

	// Reserved test trigger, checked before any buffer is touched so the
	// caller's coordinates provably survive the fault path intact.
	if maxIterations == SentinelFault {
		panic("deliberate test fault (SentinelFault iteration count)")
	}

	// Borrowed views: wrap the caller's buffers once, allocate only the
	// flag and edge translations. x and y are aliased, not copied, so the
	// in-place writeback lands directly in the caller's memory.
	p := &Problem{
		X:     x,
		Y:     y,
		Fixed: make([]bool, len(fixed)),
		Edges: make([]Edge, len(from)),
	}
	for i, f := range fixed {
		p.Fixed[i] = f != 0
	}
	for i := range from {
		p.Edges[i] = Edge{
			From:   int(from[i]),
			To:     int(to[i]),
			DX:     dx[i],
			DY:     dy[i],
			Weight: weight[i],
		}
	}

	if err := Adjust(p, WithMaxIterations(maxIterations), WithTolerance(tolerance)); err != nil {
		fmt.Fprintf(os.Stderr, "adjust: SolveGraphLeastSquares failed: %v\n", err)

		return StatusFault
	}

	return StatusOK
}
