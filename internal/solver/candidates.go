package solver

import (
	"math/bits"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/topology"
)

// candidates is the per-cell domain store: bit d of candidates[i] is set
// while digit d is still admissible for cell i. The whole store is a value
// type, so branch isolation is a plain assignment.
type candidates [topology.Cells]uint16

// fullDomain has bits 1..9 set.
const fullDomain uint16 = 0x3FE

func digitBit(d uint8) uint16 { return 1 << d }

// count reports the domain size of a cell.
func (v *candidates) count(cell int) int { return bits.OnesCount16(v[cell]) }

// single returns the sole remaining digit of a cell. Only meaningful when
// count(cell) == 1.
func (v *candidates) single(cell int) uint8 {
	return uint8(bits.TrailingZeros16(v[cell]))
}

// has reports whether digit d is still admissible for a cell.
func (v *candidates) has(cell int, d uint8) bool { return v[cell]&digitBit(d) != 0 }

// fromBoard builds a store with every domain full, then assigns the givens.
// Returns ok=false when the givens already contradict each other.
func fromBoard(b *domain.Board) (candidates, bool) {
	var v candidates
	for i := range v {
		v[i] = fullDomain
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if d := b.Values[r][c]; d != 0 {
				if !v.assign(topology.Index(r, c), d) {
					return v, false
				}
			}
		}
	}
	return v, true
}

// toBoard converts a fully determined store back into a board, keeping the
// fixed markers of the input.
func toBoard(v *candidates, fixed [9][9]bool) *domain.Board {
	out := &domain.Board{Fixed: fixed}
	for i := range v {
		r, c := topology.Coord(i)
		out.Values[r][c] = v.single(i)
	}
	return out
}
