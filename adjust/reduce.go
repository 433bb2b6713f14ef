// Package adjust: index reduction — mapping original vertex indices onto
// the dense index space of free vertices only.
package adjust

// slot is the reduced status of one original vertex: either Free with a
// dense index into the linear system, or Fixed and absent from it. An
// explicit two-variant tag (rather than a bare -1 sentinel) keeps the
// per-edge dispatch in assemble.go honest about which case it is handling.
type slot struct {
	free  bool // true when the vertex participates in the system
	index int  // dense reduced index, meaningful only when free
}

// freeSlot tags a vertex as free at reduced index i.
func freeSlot(i int) slot { return slot{free: true, index: i} }

// fixedSlot tags a vertex as an anchor, absent from the system.
var fixedSlot = slot{}

// reduceIndex builds the index map from original vertex indices to the
// dense free-vertex space. Free vertices receive sequential reduced
// indices in original-index order (stable and deterministic); fixed
// vertices map to fixedSlot.
//
// Returns the per-vertex slots and activeCount, the number of free
// vertices; the free slots' indices are exactly {0, …, activeCount−1},
// each used once.
//
// Complexity: O(V) time and memory.
func reduceIndex(fixed []bool) ([]slot, int) {
	slots := make([]slot, len(fixed))
	active := 0
	for i, isFixed := range fixed {
		if isFixed {
			slots[i] = fixedSlot
			continue
		}
		slots[i] = freeSlot(active)
		active++
	}

	return slots, active
}
