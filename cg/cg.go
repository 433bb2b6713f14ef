// Package cg implements the Conjugate Gradient iteration over CSR matrices.
// See doc.go for the algorithm contract and termination rules.
package cg

import (
	"math"

	"github.com/katalvlaran/netadjust/sparse"
)

// Solve runs the Conjugate Gradient method on the SPD system a·x = b,
// starting from the initial guess x0. It accepts functional options to
// customize the iteration cap and convergence tolerance.
//
// Returns:
//
//   - Result: best iterate reached, iteration count, final residual norm
//     and termination Status. The iterate is returned unconditionally —
//     stall and non-convergence are Status values, never errors.
//   - err: a sentinel for structurally invalid inputs only
//     (ErrNilMatrix, ErrNotSquare, ErrDimensionMismatch).
//
// Preconditions and validation (in order):
//  1. a must be non-nil (ErrNilMatrix).
//  2. a must be square (ErrNotSquare).
//  3. len(b) and len(x0) must equal the matrix order (ErrDimensionMismatch).
//
// Neither a, b nor x0 is mutated; the solution vector is freshly allocated.
//
// Complexity:
//
//   - Time:  O(k·nnz) for k performed iterations.
//   - Space: O(n) working vectors, allocated once per call.
func Solve(a *sparse.CSR, b, x0 []float64, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate matrix shape.
	if a == nil {
		return Result{}, ErrNilMatrix
	}
	n := a.Rows()
	if n != a.Cols() {
		return Result{}, ErrNotSquare
	}

	// 3) Validate vector lengths against the matrix order.
	if len(b) != n || len(x0) != n {
		return Result{}, ErrDimensionMismatch
	}

	// 4) Working state. x starts as a copy of the guess; r = b − A·x₀ is the
	//    initial residual; p starts equal to r; ap is the single scratch
	//    buffer reused for A·p across all iterations of this solve.
	x := make([]float64, n)
	copy(x, x0)

	r := make([]float64, n)
	ap := make([]float64, n)
	// MulVec cannot fail here: all lengths equal the validated order n.
	_ = a.MulVec(ap, x)
	for i := 0; i < n; i++ {
		r[i] = b[i] - ap[i]
	}

	p := make([]float64, n)
	copy(p, r)

	// ρ₀ = r·r. Carries the squared residual norm between iterations.
	rho := dot(r, r)

	// 5) Main iteration. Convergence is checked at the top so a zero
	//    residual (e.g. no edges, or an exact guess) performs no work.
	res := Result{Status: MaxIterations}
	var (
		pap, alpha, beta, rhoNew float64
		iter                     int
	)
	for iter = 0; iter < cfg.MaxIterations; iter++ {
		// 5a) Converged when √ρ < tolerance.
		if math.Sqrt(rho) < cfg.Tolerance {
			res.Status = Converged
			break
		}

		// 5b) ap = A·p via the shared read-only kernel; no allocation.
		_ = a.MulVec(ap, p)

		// 5c) Breakdown guard: vanishing curvature means the matrix is
		//     singular along p (unanchored component). Keep the current
		//     iterate rather than dividing by ~0.
		pap = dot(p, ap)
		if math.Abs(pap) < BreakdownEpsilon {
			res.Status = Breakdown
			break
		}

		// 5d) Standard CG updates:
		//     α = ρ/(p·ap);  x += α·p;  r −= α·ap;
		//     β = ρ_new/ρ;   p = r + β·p.
		alpha = rho / pap
		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}

		rhoNew = dot(r, r)
		beta = rhoNew / rho
		for i := 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
		rho = rhoNew
	}

	// A final top-of-loop convergence check for the iteration-cap exit, so a
	// solve that converges exactly at the cap still reports Converged.
	if res.Status == MaxIterations && math.Sqrt(rho) < cfg.Tolerance {
		res.Status = Converged
	}

	// 6) Package the best iterate unconditionally.
	res.X = x
	res.Iterations = iter
	res.Residual = math.Sqrt(rho)

	return res, nil
}

// dot returns the inner product of two equal-length vectors.
// Complexity: O(n).
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}
