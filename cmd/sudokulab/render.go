package main

import (
	"strings"

	"svw.info/sudokulab/internal/domain"
)

// renderBoard lays a board out as a 9x9 grid with box separators, '.' for
// empty cells.
func renderBoard(b *domain.Board) string {
	var sb strings.Builder
	line := strings.Repeat("-", 6) + "+" + strings.Repeat("-", 7) + "+" + strings.Repeat("-", 6)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c == 8 {
				break
			}
			sb.WriteByte(' ')
			if c == 2 || c == 5 {
				sb.WriteString("| ")
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
