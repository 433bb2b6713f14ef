// Package adjust: normal-equations assembly — folding edge observations
// and fixed-vertex boundary conditions into a sparse SPD system.
package adjust

import (
	"fmt"

	"github.com/katalvlaran/netadjust/sparse"
)

// assemble builds the normal-equations system over the free vertices from
// the edge list. It produces one COO coefficient accumulator (shared by
// both axes — the constraint topology is axis-independent) and the two
// right-hand-side vectors bx, by of length active.
//
// Per edge (u, v, dx, dy, w), the observation is x_v − x_u = dx (same for
// y with dy). The four endpoint cases:
//
//  1. free u, free v:  A[ui,ui]+=w  A[vi,vi]+=w  A[ui,vi]-=w  A[vi,ui]-=w
//     bx[ui]-=w·dx  bx[vi]+=w·dx
//  2. free u, fixed v: A[ui,ui]+=w
//     bx[ui]-=w·dx  bx[ui]+=w·x_v   (v's constant folded to the RHS)
//  3. fixed u, free v: A[vi,vi]+=w
//     bx[vi]+=w·dx  bx[vi]+=w·x_u
//  4. fixed u, fixed v: nothing — a check observation between two anchors.
//
// Every off-diagonal contribution is mirrored, so the compacted matrix is
// symmetric by construction. The x, y slices provide the constant
// coordinates of fixed endpoints and are only read.
//
// Preconditions (enforced by Adjust): edge indices lie in
// [0, len(slots)) and weights are non-negative.
//
// Complexity: O(E) appended contributions, O(active) RHS memory.
func assemble(edges []Edge, slots []slot, active int, x, y []float64) (*sparse.COO, []float64, []float64, error) {
	// 1) One accumulator for both axes plus a fresh RHS pair.
	coo, err := sparse.NewCOO(active, active)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("adjust: assemble: %w", err)
	}
	bx := make([]float64, active)
	by := make([]float64, active)

	// 2) Fold every edge through the four-case dispatch. Appends cannot
	//    fail once the preconditions hold, but the error is still threaded
	//    through rather than swallowed.
	for _, e := range edges {
		su, sv := slots[e.From], slots[e.To]
		w := e.Weight

		switch {
		case su.free && sv.free:
			// Case 1: both endpoints are unknowns; full 2×2 stencil.
			ui, vi := su.index, sv.index
			if err = appendStencil(coo, ui, vi, w); err != nil {
				return nil, nil, nil, err
			}
			bx[ui] -= w * e.DX
			bx[vi] += w * e.DX
			by[ui] -= w * e.DY
			by[vi] += w * e.DY

		case su.free: // v fixed
			// Case 2: v's coordinate is a constant; its coupling term
			// −w·x_v moves to the RHS with flipped sign.
			ui := su.index
			if err = coo.Append(ui, ui, w); err != nil {
				return nil, nil, nil, fmt.Errorf("adjust: assemble: %w", err)
			}
			bx[ui] += w * (x[e.To] - e.DX)
			by[ui] += w * (y[e.To] - e.DY)

		case sv.free: // u fixed
			// Case 3: symmetric to case 2, with the observation sign
			// pointing the other way.
			vi := sv.index
			if err = coo.Append(vi, vi, w); err != nil {
				return nil, nil, nil, fmt.Errorf("adjust: assemble: %w", err)
			}
			bx[vi] += w * (x[e.From] + e.DX)
			by[vi] += w * (y[e.From] + e.DY)

		default:
			// Case 4: anchor-to-anchor check observation; no unknowns touched.
		}
	}

	return coo, bx, by, nil
}

// appendStencil records the symmetric four-entry contribution of one
// free–free edge: +w on both diagonals, −w mirrored off-diagonal.
func appendStencil(coo *sparse.COO, ui, vi int, w float64) error {
	for _, t := range [4]struct {
		r, c int
		v    float64
	}{
		{ui, ui, w},
		{vi, vi, w},
		{ui, vi, -w},
		{vi, ui, -w},
	} {
		if err := coo.Append(t.r, t.c, t.v); err != nil {
			return fmt.Errorf("adjust: assemble: %w", err)
		}
	}

	return nil
}
