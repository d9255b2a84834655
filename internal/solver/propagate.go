package solver

import "svw.info/sudokulab/internal/topology"

// assign restricts a cell to digit d by eliminating every other remaining
// digit. Returns false on contradiction; the store is then partially
// mutated and must be discarded by the caller.
func (v *candidates) assign(cell int, d uint8) bool {
	rest := v[cell] &^ digitBit(d)
	for d2 := uint8(1); d2 <= 9; d2++ {
		if rest&digitBit(d2) != 0 {
			if !v.eliminate(cell, d2) {
				return false
			}
		}
	}
	return true
}

// eliminate removes digit d from a cell's domain and propagates:
//
//  1. a domain collapsing to one digit eliminates that digit from all 20
//     peers (naked single);
//  2. a unit left with a single place for d gets d assigned there
//     (hidden single).
//
// Recursion terminates because every step strictly shrinks some domain.
// Returns false when a domain empties or a unit loses its last place
// for a digit.
func (v *candidates) eliminate(cell int, d uint8) bool {
	bit := digitBit(d)
	if v[cell]&bit == 0 {
		return true // already eliminated
	}
	v[cell] &^= bit

	switch v.count(cell) {
	case 0:
		return false // removed the last candidate
	case 1:
		d2 := v.single(cell)
		for _, p := range topology.PeersOf[cell] {
			if !v.eliminate(p, d2) {
				return false
			}
		}
	}

	for _, u := range topology.UnitsOf[cell] {
		place, n := -1, 0
		for _, s := range topology.Units[u] {
			if v[s]&bit != 0 {
				place = s
				if n++; n > 1 {
					break
				}
			}
		}
		if n == 0 {
			return false // no place left for d in this unit
		}
		if n == 1 {
			if !v.assign(place, d) {
				return false
			}
		}
	}
	return true
}
