// Package adjust: public problem types, sentinel errors and functional
// options for the adjustment pipeline.
package adjust

import (
	"errors"

	"github.com/katalvlaran/netadjust/cg"
)

// Sentinel errors returned by Adjust for invalid problems.
var (
	// ErrNilProblem indicates that a nil *Problem was passed to Adjust.
	ErrNilProblem = errors.New("adjust: problem is nil")

	// ErrLengthMismatch indicates that X, Y and Fixed differ in length.
	ErrLengthMismatch = errors.New("adjust: X, Y and Fixed must have equal length")

	// ErrVertexRange indicates that an edge references a vertex index
	// outside [0, vertex count).
	ErrVertexRange = errors.New("adjust: edge vertex index out of range")

	// ErrNegativeWeight indicates that an edge carries a negative weight;
	// weights are inverse variances and must be non-negative.
	ErrNegativeWeight = errors.New("adjust: edge weight must be non-negative")
)

// Edge is a single relative-displacement observation between two vertices,
// identified by their 0-based original indices. It states that vertex To
// lies (DX, DY) away from vertex From, with confidence Weight (typically
// the inverse variance of the measurement). Edges are read-only input;
// an edge between two fixed vertices contributes nothing.
type Edge struct {
	From, To int     // original vertex indices
	DX, DY   float64 // observed displacement From → To
	Weight   float64 // non-negative observation weight
}

// Problem is the full in-memory adjustment problem. The coordinate slices
// double as the initial guess on input and the adjusted result on output:
// Adjust mutates X and Y in place for free vertices and never writes the
// entries of fixed ones. All three vertex slices must share one length.
type Problem struct {
	X, Y  []float64 // per-vertex coordinates; in/out
	Fixed []bool    // true = anchor (immutable), false = free (solved for)
	Edges []Edge    // displacement observations; read-only
}

// Options configures one Adjust call. Both knobs forward to the underlying
// cg solver, identically for the X and Y axes.
//
// MaxIterations – CG iteration cap per axis (a wall-clock bound in disguise:
// no other cancellation mechanism exists).
// Tolerance     – residual-norm stopping threshold per axis.
type Options struct {
	MaxIterations int
	Tolerance     float64
}

// Option represents a functional option for configuring Adjust.
type Option func(*Options)

// WithMaxIterations caps the CG iterations of each axis solve.
// Must pass a non-negative value; negative values panic with
// cg.ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(cg.ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the residual-norm stopping threshold of each axis
// solve. Must pass a non-negative value; negative values panic with
// cg.ErrBadTolerance.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 {
			panic(cg.ErrBadTolerance.Error())
		}
		o.Tolerance = t
	}
}

// DefaultOptions returns the Options used when no overrides are supplied,
// mirroring the cg package defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: cg.DefaultMaxIterations,
		Tolerance:     cg.DefaultTolerance,
	}
}
