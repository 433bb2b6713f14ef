// Package solver: the least-squares strategy bridging named networks onto
// the sparse adjustment pipeline.
package solver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netadjust/adjust"
	"github.com/katalvlaran/netadjust/cg"
)

// minWeightDistance floors shot lengths in the 1/length weighting so a
// very short shot cannot dominate the normal equations.
const minWeightDistance = 0.1

// LeastSquares adjusts the whole network at once by weighted least squares:
// stations become vertices (anchors fixed), shots become edges weighted by
// inverse length, and the misclosure is distributed by the sparse
// conjugate-gradient pipeline of the adjust package.
//
// The zero value is ready to use with the cg package defaults; set
// MaxIterations/Tolerance to override the per-axis solver knobs.
type LeastSquares struct {
	MaxIterations int     // CG iteration cap per axis; 0 = cg default
	Tolerance     float64 // residual threshold per axis; 0 = cg default
}

// Name implements Adjuster.
func (LeastSquares) Name() string { return "LeastSquares" }

// Adjust implements Adjuster.
//
// Steps:
//  1. Validate, then order stations by name for a deterministic indexing.
//  2. Translate: anchors → fixed vertices, shots → edges with weight
//     1/max(length, 0.1) — longer shots are less trusted.
//  3. Run the in-place adjust pipeline on scratch coordinate slices.
//  4. Scatter the adjusted coordinates back into a fresh result map.
//
// Complexity: O(V log V) ordering plus the adjust pipeline cost.
func (ls LeastSquares) Adjust(n *Network) (map[string]Vec2, error) {
	// 1) Preconditions, then a stable vertex order.
	if err := validate(n); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(n.Stations))
	for name := range n.Stations {
		names = append(names, name)
	}
	sort.Strings(names)
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	// 2) Build the index-space problem on scratch slices; the network
	//    itself is never mutated.
	p := &adjust.Problem{
		X:     make([]float64, len(names)),
		Y:     make([]float64, len(names)),
		Fixed: make([]bool, len(names)),
		Edges: make([]adjust.Edge, 0, len(n.Shots)),
	}
	for i, name := range names {
		pos := n.Stations[name]
		p.X[i] = pos.X
		p.Y[i] = pos.Y
		_, p.Fixed[i] = n.Anchors[name]
	}
	for _, s := range n.Shots {
		dist := s.Distance
		if dist < minWeightDistance {
			dist = minWeightDistance
		}
		p.Edges = append(p.Edges, adjust.Edge{
			From:   index[s.From],
			To:     index[s.To],
			DX:     s.Delta.X,
			DY:     s.Delta.Y,
			Weight: 1 / dist,
		})
	}

	// 3) Solve, honoring the zero-value-means-default knobs.
	opts := []adjust.Option{
		adjust.WithMaxIterations(cg.DefaultMaxIterations),
		adjust.WithTolerance(cg.DefaultTolerance),
	}
	if ls.MaxIterations > 0 {
		opts[0] = adjust.WithMaxIterations(ls.MaxIterations)
	}
	if ls.Tolerance > 0 {
		opts[1] = adjust.WithTolerance(ls.Tolerance)
	}
	if err := adjust.Adjust(p, opts...); err != nil {
		return nil, fmt.Errorf("solver: least squares: %w", err)
	}

	// 4) Back to named space.
	result := make(map[string]Vec2, len(names))
	for i, name := range names {
		result[name] = Vec2{X: p.X[i], Y: p.Y[i]}
	}

	return result, nil
}
