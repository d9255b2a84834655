// Package localsearch refines fully filled, box-consistent boards by
// stochastic search over within-box swaps. Box constraints hold by
// construction; rows and columns are repaired by minimizing conflicts.
package localsearch

import "svw.info/sudokulab/internal/domain"

// Conflicts counts the unordered pairs of cells in the same row or the same
// column holding equal non-zero digits. Zero means the configuration is a
// true solution when every box is a permutation of 1-9.
func Conflicts(b *domain.Board) int {
	n := 0
	for r := 0; r < 9; r++ {
		for i := 0; i < 9; i++ {
			v := b.Values[r][i]
			if v == 0 {
				continue
			}
			for j := i + 1; j < 9; j++ {
				if b.Values[r][j] == v {
					n++
				}
			}
		}
	}
	for c := 0; c < 9; c++ {
		for i := 0; i < 9; i++ {
			v := b.Values[i][c]
			if v == 0 {
				continue
			}
			for j := i + 1; j < 9; j++ {
				if b.Values[j][c] == v {
					n++
				}
			}
		}
	}
	return n
}
