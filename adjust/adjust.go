// Package adjust: the top-level adjustment pipeline and its concurrent
// dual-axis orchestration.
package adjust

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netadjust/cg"
	"github.com/katalvlaran/netadjust/sparse"
)

// Adjust solves the weighted least-squares adjustment problem in place:
// on return, the X and Y entries of every free vertex hold the adjusted
// coordinates and every fixed entry is untouched. It accepts functional
// options to tune the per-axis CG solves (WithMaxIterations, WithTolerance).
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProblem).
//  2. len(p.X) == len(p.Y) == len(p.Fixed) (ErrLengthMismatch).
//  3. Every edge endpoint lies in [0, vertex count) (ErrVertexRange).
//  4. Every edge weight is non-negative (ErrNegativeWeight).
//
// A problem with no free vertices is a no-op success. Numerical stall on
// semi-definite systems (free components with no anchor) is not an error:
// the affected vertices simply keep their best iterate. With zero edges the
// residual starts at zero and every free vertex keeps its initial guess.
//
// Concurrency: the X and Y systems share one read-only CSR matrix and are
// solved by exactly two goroutines in a structured fork-join; each owns its
// RHS, guess and scratch state, and writeback only happens after both join.
//
// Complexity: O(E + nnz log nnz) assembly plus O(k·nnz) per axis solve.
func Adjust(p *Problem, opts ...Option) error {
	// 1) Build Options from defaults plus overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the problem shape.
	if p == nil {
		return ErrNilProblem
	}
	n := len(p.X)
	if len(p.Y) != n || len(p.Fixed) != n {
		return ErrLengthMismatch
	}

	// 3) Validate edges before any numeric work: fail fast, mutate nothing.
	for i, e := range p.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d→%d), %d vertices", ErrVertexRange, i, e.From, e.To, n)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d weight=%g", ErrNegativeWeight, i, e.Weight)
		}
	}

	// 4) Reduce: fixed vertices leave the system as boundary conditions.
	slots, active := reduceIndex(p.Fixed)
	if active == 0 {
		// Nothing to solve; trivially adjusted.
		return nil
	}

	// 5) Assemble the shared coefficient matrix and per-axis RHS vectors,
	//    then compact once for the many mat-vec passes ahead.
	coo, bx, by, err := assemble(p.Edges, slots, active, p.X, p.Y)
	if err != nil {
		return err
	}
	a := coo.Compact()

	// 6) Gather the initial guesses into reduced space.
	x0 := make([]float64, active)
	y0 := make([]float64, active)
	for i, s := range slots {
		if s.free {
			x0[s.index] = p.X[i]
			y0[s.index] = p.Y[i]
		}
	}

	// 7) Dual-axis fork-join: two goroutines over the shared read-only
	//    matrix, disjoint vectors, joined before any result is visible.
	resX, resY, err := solveAxes(a, bx, by, x0, y0, cfg)
	if err != nil {
		return err
	}

	// 8) Writeback: scatter reduced solutions to free entries only.
	for i, s := range slots {
		if s.free {
			p.X[i] = resX.X[s.index]
			p.Y[i] = resY.X[s.index]
		}
	}

	return nil
}

// solveAxes runs the two CG solves concurrently and blocks until both have
// joined. The matrix is immutable after compaction, so sharing it without
// locks is safe; everything else is per-axis exclusive state.
func solveAxes(a *sparse.CSR, bx, by, x0, y0 []float64, cfg Options) (cg.Result, cg.Result, error) {
	cgOpts := []cg.Option{
		cg.WithMaxIterations(cfg.MaxIterations),
		cg.WithTolerance(cfg.Tolerance),
	}

	var (
		g          errgroup.Group
		resX, resY cg.Result
	)
	g.Go(func() error {
		var err error
		if resX, err = cg.Solve(a, bx, x0, cgOpts...); err != nil {
			return fmt.Errorf("adjust: x-axis solve: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		if resY, err = cg.Solve(a, by, y0, cgOpts...); err != nil {
			return fmt.Errorf("adjust: y-axis solve: %w", err)
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return cg.Result{}, cg.Result{}, err
	}

	return resX, resY, nil
}
