// Package cg: sentinel errors, result/status types and functional options
// for the Conjugate Gradient solver.
package cg

import "errors"

// Sentinel errors returned by Solve for structurally invalid inputs.
// Numerical difficulties (stall, breakdown, iteration cap) are never
// errors; they are reported through Result.Status.
var (
	// ErrNilMatrix indicates that a nil *sparse.CSR was passed to Solve.
	ErrNilMatrix = errors.New("cg: matrix is nil")

	// ErrNotSquare indicates that the coefficient matrix is not square.
	ErrNotSquare = errors.New("cg: matrix must be square")

	// ErrDimensionMismatch indicates that b or x0 length differs from the matrix order.
	ErrDimensionMismatch = errors.New("cg: vector length must equal matrix order")

	// ErrBadMaxIterations indicates a negative iteration cap (via option panic).
	ErrBadMaxIterations = errors.New("cg: MaxIterations must be non-negative")

	// ErrBadTolerance indicates a negative tolerance (via option panic).
	ErrBadTolerance = errors.New("cg: Tolerance must be non-negative")
)

// BreakdownEpsilon is the curvature threshold below which a search
// direction is considered numerically non-informative: if |p·A·p| drops
// under this value the iteration stops and returns its current iterate.
// This guards the α = ρ/(p·A·p) division on semi-definite systems.
const BreakdownEpsilon = 1e-15

const (
	// DefaultMaxIterations caps a solve when no explicit option is given.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the default residual-norm stopping threshold.
	DefaultTolerance = 1e-10
)

// Status classifies how a solve terminated. All statuses still deliver the
// best iterate reached; none of them is an error.
type Status int

const (
	// Converged: the residual norm dropped below Tolerance.
	Converged Status = iota

	// MaxIterations: the iteration cap was reached before convergence.
	MaxIterations

	// Breakdown: the search-direction curvature vanished (|p·A·p| below
	// BreakdownEpsilon); the system is singular along that direction.
	Breakdown
)

// String implements fmt.Stringer for diagnostics and test output.
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case MaxIterations:
		return "MaxIterations"
	case Breakdown:
		return "Breakdown"
	default:
		return "Unknown"
	}
}

// Result carries the outcome of one Solve call.
//
// X          – best iterate reached (freshly allocated, caller-owned).
// Iterations – number of completed CG iterations.
// Residual   – final residual norm √(r·r).
// Status     – how the iteration terminated (see Status).
type Result struct {
	X          []float64
	Iterations int
	Residual   float64
	Status     Status
}

// Options configures a single Solve call.
//
// MaxIterations – iteration cap; a cap of 0 returns x0 immediately.
// Tolerance     – residual-norm threshold below which the solve converges.
type Options struct {
	MaxIterations int
	Tolerance     float64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxIterations caps the number of CG iterations.
// Must pass a non-negative value; negative values panic with
// ErrBadMaxIterations (invalid configuration is a programming error).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the residual-norm stopping threshold.
// Must pass a non-negative value; negative values panic with ErrBadTolerance.
// A tolerance of 0 disables the convergence test, running until breakdown
// or the iteration cap.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = t
	}
}

// DefaultOptions returns the Options used when no functional overrides are
// supplied: DefaultMaxIterations iterations at DefaultTolerance.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}
