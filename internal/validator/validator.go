package validator

import (
	"context"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/topology"
)

// FastValidator checks rows, columns and boxes with digit bitmasks.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for _, unit := range topology.Units {
		m := 0
		for _, cell := range unit {
			r, c := topology.Coord(cell)
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

// full has bits 1..9 set.
const full = 0x3FE

// Solved reports whether every row, column and box is a permutation of the
// digits 1-9.
func Solved(b *domain.Board) bool {
	for _, unit := range topology.Units {
		m := 0
		for _, cell := range unit {
			r, c := topology.Coord(cell)
			m |= 1 << b.Values[r][c]
		}
		if m != full {
			return false
		}
	}
	return true
}
