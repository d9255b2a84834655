package hint

import (
	"context"
	"fmt"
	"math/bits"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/topology"
)

// Singles suggests naked singles and, one tier up, hidden singles, working
// from the per-cell candidate masks of the visible board.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	var masks [topology.Cells]uint16
	for i := 0; i < topology.Cells; i++ {
		r, c := topology.Coord(i)
		if b.Values[r][c] != 0 {
			continue
		}
		m := uint16(0x3FE)
		for _, p := range topology.PeersOf[i] {
			pr, pc := topology.Coord(p)
			m &^= 1 << b.Values[pr][pc]
		}
		masks[i] = m
	}

	// naked singles: a cell with one admissible digit left
	for i := 0; i < topology.Cells; i++ {
		m := masks[i]
		if m != 0 && bits.OnesCount16(m) == 1 {
			r, c := topology.Coord(i)
			d := uint8(bits.TrailingZeros16(m))
			return domain.Hint{
				Message:  fmt.Sprintf("Naked single: only %d fits in %s", d, topology.Names[i]),
				Cells:    []domain.CellCoord{{Row: r, Col: c}},
				Digit:    d,
				Strategy: domain.StrategyNakedSingle,
			}, true, nil
		}
	}
	if max < domain.StrategyHiddenSingle {
		return domain.Hint{}, false, nil
	}

	// hidden singles: a digit with one admissible place left in a unit
	for _, unit := range topology.Units {
		for d := uint8(1); d <= 9; d++ {
			bit := uint16(1) << d
			place, n := -1, 0
			taken := false
			for _, cell := range unit {
				r, c := topology.Coord(cell)
				if b.Values[r][c] == d {
					taken = true
					break
				}
				if masks[cell]&bit != 0 {
					place = cell
					n++
				}
			}
			if taken || n != 1 {
				continue
			}
			r, c := topology.Coord(place)
			return domain.Hint{
				Message:  fmt.Sprintf("Hidden single: %d has only one place left, %s", d, topology.Names[place]),
				Cells:    []domain.CellCoord{{Row: r, Col: c}},
				Digit:    d,
				Strategy: domain.StrategyHiddenSingle,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
