package domain

import "fmt"

// GridError reports a raw grid string that could not be reduced to exactly
// 81 admissible characters.
type GridError struct {
	Got int // admissible characters found after filtering
}

func (e *GridError) Error() string {
	return fmt.Sprintf("grid must contain exactly 81 cells, got %d", e.Got)
}

func admissible(ch byte) bool {
	return ch == '.' || (ch >= '0' && ch <= '9')
}

// ParseGrid converts a raw puzzle string into a Board. Characters outside
// {'1'..'9', '0', '.'} are treated as noise and skipped; what remains must
// be exactly 81 characters in row-major order, with '0' or '.' marking an
// empty cell. Pre-filled cells are marked fixed.
func ParseGrid(raw string) (*Board, error) {
	var b Board
	n := 0
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if !admissible(ch) {
			continue
		}
		if n >= 81 {
			n++
			continue
		}
		if ch >= '1' && ch <= '9' {
			r, c := n/9, n%9
			b.Values[r][c] = ch - '0'
			b.Fixed[r][c] = true
		}
		n++
	}
	if n != 81 {
		return nil, &GridError{Got: n}
	}
	return &b, nil
}

// GridString renders a board as the 81-character row-major form, with '.'
// for empty cells. It is the inverse of ParseGrid for well-formed input.
func GridString(b *Board) string {
	out := make([]byte, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				out[r*9+c] = '.'
			} else {
				out[r*9+c] = '0' + v
			}
		}
	}
	return string(out)
}
