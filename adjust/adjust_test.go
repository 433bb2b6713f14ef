// Package adjust_test contains unit tests for the adjustment pipeline:
// validation sentinels, anchor invariance, convergence on the canonical
// small networks, weighted averaging against closed forms, degenerate
// (unanchored) components and determinism.
package adjust_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netadjust/adjust"
)

// ------------------------------------------------------------------------
// 1. Validation: sentinel errors, mutate nothing on failure.
// ------------------------------------------------------------------------

func TestAdjust_NilProblem(t *testing.T) {
	require.ErrorIs(t, adjust.Adjust(nil), adjust.ErrNilProblem)
}

func TestAdjust_LengthMismatch(t *testing.T) {
	p := &adjust.Problem{
		X:     []float64{0, 0},
		Y:     []float64{0},
		Fixed: []bool{false, false},
	}
	require.ErrorIs(t, adjust.Adjust(p), adjust.ErrLengthMismatch)
}

func TestAdjust_VertexRange(t *testing.T) {
	p := &adjust.Problem{
		X:     []float64{0, 5},
		Y:     []float64{0, 5},
		Fixed: []bool{true, false},
		Edges: []adjust.Edge{{From: 0, To: 2, DX: 1, Weight: 1}},
	}
	err := adjust.Adjust(p)
	require.ErrorIs(t, err, adjust.ErrVertexRange)

	// Fail-fast means the guess survives untouched.
	assert.Equal(t, []float64{0, 5}, p.X)
	assert.Equal(t, []float64{0, 5}, p.Y)
}

func TestAdjust_NegativeWeight(t *testing.T) {
	p := &adjust.Problem{
		X:     []float64{0, 5},
		Y:     []float64{0, 5},
		Fixed: []bool{true, false},
		Edges: []adjust.Edge{{From: 0, To: 1, DX: 1, Weight: -2}},
	}
	require.ErrorIs(t, adjust.Adjust(p), adjust.ErrNegativeWeight)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { adjust.WithMaxIterations(-2)(&adjust.Options{}) })
	assert.Panics(t, func() { adjust.WithTolerance(-1)(&adjust.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Trivial cases: nothing to solve, nothing moves.
// ------------------------------------------------------------------------

func TestAdjust_AllFixedIsNoOp(t *testing.T) {
	// No free vertices at all: success with zero mutation, even with edges.
	p := &adjust.Problem{
		X:     []float64{1, 2},
		Y:     []float64{3, 4},
		Fixed: []bool{true, true},
		Edges: []adjust.Edge{{From: 0, To: 1, DX: 99, DY: 99, Weight: 1}},
	}
	require.NoError(t, adjust.Adjust(p))

	assert.Equal(t, []float64{1, 2}, p.X)
	assert.Equal(t, []float64{3, 4}, p.Y)
}

func TestAdjust_ZeroEdgesKeepsGuess(t *testing.T) {
	// With no observations the residual is already zero: every free vertex
	// keeps its initial guess exactly (CG stops at iteration 0).
	p := &adjust.Problem{
		X:     []float64{0, 5.5, -3},
		Y:     []float64{0, 2.25, 7},
		Fixed: []bool{true, false, false},
	}
	require.NoError(t, adjust.Adjust(p))

	assert.Equal(t, []float64{0, 5.5, -3}, p.X)
	assert.Equal(t, []float64{0, 2.25, 7}, p.Y)
}

func TestAdjust_FixedFixedEdgesAreInert(t *testing.T) {
	// Removing anchor-to-anchor check observations must not change the
	// result at all: they contribute to neither the matrix nor the RHS.
	base := func() *adjust.Problem {
		return &adjust.Problem{
			X:     []float64{0, 10, 4},
			Y:     []float64{0, 0, 4},
			Fixed: []bool{true, true, false},
			Edges: []adjust.Edge{
				{From: 0, To: 2, DX: 5, DY: 1, Weight: 2},
				{From: 2, To: 1, DX: 5, DY: -1, Weight: 1},
			},
		}
	}

	with := base()
	with.Edges = append(with.Edges, adjust.Edge{From: 0, To: 1, DX: 123, DY: -7, Weight: 9})
	without := base()

	require.NoError(t, adjust.Adjust(with))
	require.NoError(t, adjust.Adjust(without))

	assert.Equal(t, without.X, with.X)
	assert.Equal(t, without.Y, with.Y)
}

// ------------------------------------------------------------------------
// 3. Convergence on the canonical small networks.
// ------------------------------------------------------------------------

func TestAdjust_TwoVertexChain(t *testing.T) {
	// Anchor at the origin, one free vertex with a deliberately poor guess
	// and a single observation placing it at (1, 0). Must converge there
	// well within the default iteration budget.
	p := &adjust.Problem{
		X:     []float64{0, 5},
		Y:     []float64{0, 5},
		Fixed: []bool{true, false},
		Edges: []adjust.Edge{{From: 0, To: 1, DX: 1, DY: 0, Weight: 1}},
	}
	require.NoError(t, adjust.Adjust(p, adjust.WithMaxIterations(10), adjust.WithTolerance(1e-9)))

	assert.InDelta(t, 1.0, p.X[1], 1e-9)
	assert.InDelta(t, 0.0, p.Y[1], 1e-9)
	// The anchor itself must be byte-identical.
	assert.Zero(t, p.X[0])
	assert.Zero(t, p.Y[0])
}

func TestAdjust_RedundantConsistentTriangle(t *testing.T) {
	// Two independent observations place vertices 1 and 2 at (2, 0), and a
	// third consistency observation ties them together with zero offset.
	// The system is consistent and exactly satisfiable.
	p := &adjust.Problem{
		X:     []float64{0, 1, 3},
		Y:     []float64{0, 1, -1},
		Fixed: []bool{true, false, false},
		Edges: []adjust.Edge{
			{From: 0, To: 1, DX: 2, DY: 0, Weight: 1},
			{From: 0, To: 2, DX: 2, DY: 0, Weight: 1},
			{From: 1, To: 2, DX: 0, DY: 0, Weight: 1},
		},
	}
	require.NoError(t, adjust.Adjust(p))

	assert.InDelta(t, 2.0, p.X[1], 1e-8)
	assert.InDelta(t, 0.0, p.Y[1], 1e-8)
	assert.InDelta(t, 2.0, p.X[2], 1e-8)
	assert.InDelta(t, 0.0, p.Y[2], 1e-8)
}

func TestAdjust_WeightedAveragePull(t *testing.T) {
	// A free vertex between two anchors with conflicting implied positions:
	// anchor 0 at (0,0) implies x₁ = 1 (weight 3), anchor 2 at (10,0)
	// implies x₁ = 10 (weight 1). The normal equations give the closed-form
	// weighted average x₁ = (3·1 + 1·10)/(3+1) = 3.25 — proportionally
	// closer to the higher-weight anchor's implied position.
	p := &adjust.Problem{
		X:     []float64{0, 5, 10},
		Y:     []float64{0, 5, 0},
		Fixed: []bool{true, false, true},
		Edges: []adjust.Edge{
			{From: 0, To: 1, DX: 1, DY: 0, Weight: 3},
			{From: 1, To: 2, DX: 0, DY: 0, Weight: 1},
		},
	}
	require.NoError(t, adjust.Adjust(p))

	assert.InDelta(t, 3.25, p.X[1], 1e-9)
	assert.InDelta(t, 0.0, p.Y[1], 1e-9)
}

// ------------------------------------------------------------------------
// 4. Degenerate systems: unanchored components terminate gracefully.
// ------------------------------------------------------------------------

func TestAdjust_UnanchoredComponentTerminates(t *testing.T) {
	// Vertices 1 and 2 form a free component with no path to any anchor:
	// their sub-matrix is only positive semi-definite. The solve must
	// terminate within the iteration cap, return success, and produce
	// finite coordinates.
	p := &adjust.Problem{
		X:     []float64{0, 1, 2},
		Y:     []float64{0, 1, 2},
		Fixed: []bool{true, false, false},
		Edges: []adjust.Edge{
			{From: 1, To: 2, DX: 1, DY: 0, Weight: 1},
		},
	}
	require.NoError(t, adjust.Adjust(p, adjust.WithMaxIterations(50)))

	for i := range p.X {
		assert.False(t, math.IsNaN(p.X[i]) || math.IsInf(p.X[i], 0), "X[%d] must stay finite", i)
		assert.False(t, math.IsNaN(p.Y[i]) || math.IsInf(p.Y[i], 0), "Y[%d] must stay finite", i)
	}
	// The relative observation inside the floating component is still honored.
	assert.InDelta(t, 1.0, p.X[2]-p.X[1], 1e-8)
}

func TestAdjust_ZeroWeightEdgesAreHarmless(t *testing.T) {
	// Zero-weight observations contribute nothing and must not disturb the
	// solution or the solver.
	p := &adjust.Problem{
		X:     []float64{0, 5},
		Y:     []float64{0, 5},
		Fixed: []bool{true, false},
		Edges: []adjust.Edge{
			{From: 0, To: 1, DX: 1, DY: 0, Weight: 1},
			{From: 0, To: 1, DX: 100, DY: 100, Weight: 0},
		},
	}
	require.NoError(t, adjust.Adjust(p))

	assert.InDelta(t, 1.0, p.X[1], 1e-9)
	assert.InDelta(t, 0.0, p.Y[1], 1e-9)
}

// ------------------------------------------------------------------------
// 5. Determinism and parallel-edge accumulation.
// ------------------------------------------------------------------------

func TestAdjust_Deterministic(t *testing.T) {
	// Two runs over identical input must agree bitwise, concurrency
	// notwithstanding: the axes never share mutable state.
	build := func() *adjust.Problem {
		return &adjust.Problem{
			X:     []float64{0, 3, 7, 10},
			Y:     []float64{0, 1, -1, 0},
			Fixed: []bool{true, false, false, true},
			Edges: []adjust.Edge{
				{From: 0, To: 1, DX: 3.2, DY: 0.1, Weight: 1.5},
				{From: 1, To: 2, DX: 3.4, DY: -0.2, Weight: 0.8},
				{From: 2, To: 3, DX: 3.1, DY: 0.1, Weight: 1.2},
			},
		}
	}
	a, b := build(), build()
	require.NoError(t, adjust.Adjust(a))
	require.NoError(t, adjust.Adjust(b))

	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Y, b.Y)
}

func TestAdjust_ParallelEdgesAccumulate(t *testing.T) {
	// Two identical unit-weight observations must behave exactly like one
	// observation of weight 2 (duplicate matrix keys sum, never overwrite).
	doubled := &adjust.Problem{
		X:     []float64{0, 5, 10},
		Y:     []float64{0, 5, 0},
		Fixed: []bool{true, false, true},
		Edges: []adjust.Edge{
			{From: 0, To: 1, DX: 1, DY: 0, Weight: 1},
			{From: 0, To: 1, DX: 1, DY: 0, Weight: 1},
			{From: 1, To: 2, DX: 0, DY: 0, Weight: 1},
		},
	}
	weighted := &adjust.Problem{
		X:     []float64{0, 5, 10},
		Y:     []float64{0, 5, 0},
		Fixed: []bool{true, false, true},
		Edges: []adjust.Edge{
			{From: 0, To: 1, DX: 1, DY: 0, Weight: 2},
			{From: 1, To: 2, DX: 0, DY: 0, Weight: 1},
		},
	}
	require.NoError(t, adjust.Adjust(doubled))
	require.NoError(t, adjust.Adjust(weighted))

	assert.InDelta(t, weighted.X[1], doubled.X[1], 1e-12)
	assert.InDelta(t, weighted.Y[1], doubled.Y[1], 1e-12)
}
