package localsearch

import (
	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/topology"
)

// bestNeighbor generates all 36 configurations reachable by swapping two
// cells of the given box and returns the one with the fewest conflicts.
// Every candidate is a value copy, so speculative states never alias the
// current configuration. Swapping inside a box preserves the
// box-permutation invariant by construction.
func bestNeighbor(b *domain.Board, box int) (*domain.Board, int) {
	cells := topology.Box(box)
	var best *domain.Board
	bestConf := 0
	for i := 0; i < 9; i++ {
		for j := i + 1; j < 9; j++ {
			nb := b.Clone()
			ri, ci := topology.Coord(cells[i])
			rj, cj := topology.Coord(cells[j])
			nb.Values[ri][ci], nb.Values[rj][cj] = nb.Values[rj][cj], nb.Values[ri][ci]
			if conf := Conflicts(nb); best == nil || conf < bestConf {
				best, bestConf = nb, conf
			}
		}
	}
	return best, bestConf
}
