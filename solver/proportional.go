// Package solver: proportional traverse adjustment by graph distance.
package solver

// minMisclosure is the misclosure magnitude below which an anchor pair is
// considered already closed and contributes no correction.
const minMisclosure = 1e-9

// Proportional distributes anchor-pair misclosure across the whole network
// in proportion to graph distance.
//
// With several anchors, independent propagation fronts meet with a visible
// seam: positions near one anchor disagree with positions near another.
// For each connected anchor pair (A, B) this strategy re-propagates the
// entire network from A along measurement deltas, computes the misclosure
// at B (propagated minus known position), then corrects every reachable
// station by
//
//	−d_A/(d_A + d_B) · misclosure
//
// where d_A and d_B are cumulative shot-length distances to each anchor.
// A itself gets no correction (d_A = 0), B absorbs the full misclosure and
// lands exactly on its known coordinates, and everything between — side
// branches included — interpolates smoothly with no seam. When several
// pairs reach the same station, its final position is the average of the
// per-pair corrected positions.
type Proportional struct{}

// Name implements Adjuster.
func (Proportional) Name() string { return "Proportional" }

// Adjust implements Adjuster.
//
// Steps:
//  1. Validate and start from a copy of the current positions.
//  2. Fewer than two placed anchors → nothing to close, return the copy.
//  3. For each anchor pair (A, B), in lexicographic order:
//     a. BFS-propagate positions and distances from A along deltas.
//     b. Skip pairs not connected by shots or already closed
//     (misclosure below minMisclosure).
//     c. BFS distances from B; collect the distance-weighted corrected
//     position of every non-anchor station reachable from A.
//  4. Write each corrected station back, averaging across all pairs that
//     reached it. Anchors are never collected, so they keep their
//     surveyed coordinates bit-exactly.
//
// Complexity: O(P·(V + E)) for P connected anchor pairs.
func (Proportional) Adjust(n *Network) (map[string]Vec2, error) {
	// 1) Shared preconditions, then the identity baseline.
	if err := validate(n); err != nil {
		return nil, err
	}
	result := copyStations(n)

	// 2) A single anchor (or none) fixes no loop; positions stand.
	anchors := sortedAnchors(n)
	if len(anchors) < 2 {
		return result, nil
	}

	adj := adjacency(n)

	// corrected accumulates one candidate position per station per
	// connected anchor pair; the per-station slices fill in deterministic
	// pair order.
	corrected := make(map[string][]Vec2)

	// 3) Close each connected anchor pair.
	for i := 0; i < len(anchors); i++ {
		for j := i + 1; j < len(anchors); j++ {
			a, b := anchors[i], anchors[j]

			// 3a) Re-propagate the whole network from A. Using measurement
			//     deltas (not current coordinates) is what exposes the true
			//     misclosure instead of the already-smeared propagation error.
			posFromA, distFromA := propagate(a, n.Stations[a], adj)

			// 3b) Disconnected anchor pair: no loop to close between them.
			propB, ok := posFromA[b]
			if !ok {
				continue
			}
			misclosure := propB.Sub(n.Stations[b])
			if misclosure.Len() < minMisclosure {
				// Already closed; a zero correction would only dilute the
				// averages of pairs that do carry error.
				continue
			}

			// 3c) Distance-weighted corrected position for every non-anchor
			//     station seen from A. A station unreachable from B keeps
			//     d_B = 0 and absorbs the full misclosure.
			distFromB := distances(b, adj)
			for name, pos := range posFromA {
				if _, isAnchor := n.Anchors[name]; isAnchor {
					continue
				}
				dA := distFromA[name]
				dB := distFromB[name]
				if dA+dB <= 0 {
					continue
				}
				corrected[name] = append(corrected[name], pos.Add(misclosure.Scale(-dA/(dA+dB))))
			}
		}
	}

	// 4) Write back, averaging when several pairs corrected one station.
	for name, positions := range corrected {
		sum := Vec2{}
		for _, p := range positions {
			sum = sum.Add(p)
		}
		result[name] = sum.Scale(1 / float64(len(positions)))
	}

	return result, nil
}

// propagate walks the network breadth-first from start, accumulating
// positions by summing measurement deltas and distances by summing shot
// lengths. Each station is placed the first time it is reached.
// Complexity: O(V + E).
func propagate(start string, startPos Vec2, adj map[string][]Shot) (map[string]Vec2, map[string]float64) {
	positions := map[string]Vec2{start: startPos}
	dist := map[string]float64{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, s := range adj[cur] {
			if _, seen := positions[s.To]; seen {
				continue
			}
			positions[s.To] = positions[cur].Add(s.Delta)
			dist[s.To] = dist[cur] + s.Distance
			queue = append(queue, s.To)
		}
	}

	return positions, dist
}

// distances is the position-free variant of propagate: cumulative
// shot-length distances from start only.
// Complexity: O(V + E).
func distances(start string, adj map[string][]Shot) map[string]float64 {
	dist := map[string]float64{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, s := range adj[cur] {
			if _, seen := dist[s.To]; seen {
				continue
			}
			dist[s.To] = dist[cur] + s.Distance
			queue = append(queue, s.To)
		}
	}

	return dist
}
