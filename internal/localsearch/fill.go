package localsearch

import (
	"math/rand"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/topology"
)

// fillBoxes completes every box of the board with a random permutation of
// the digits absent from that box, preserving the already-filled cells.
// Afterwards each box contains each digit 1-9 exactly once; rows and
// columns may still conflict.
func fillBoxes(b *domain.Board, rng *rand.Rand) {
	for box := 0; box < 9; box++ {
		cells := topology.Box(box)
		var present [10]bool
		for _, i := range cells {
			r, c := topology.Coord(i)
			present[b.Values[r][c]] = true
		}
		missing := make([]uint8, 0, 9)
		for d := uint8(1); d <= 9; d++ {
			if !present[d] {
				missing = append(missing, d)
			}
		}
		rng.Shuffle(len(missing), func(i, j int) {
			missing[i], missing[j] = missing[j], missing[i]
		})
		k := 0
		for _, i := range cells {
			r, c := topology.Coord(i)
			if b.Values[r][c] != 0 {
				continue
			}
			if k >= len(missing) {
				break // box givens repeat a digit; leave the rest unfilled
			}
			b.Values[r][c] = missing[k]
			k++
		}
	}
}
