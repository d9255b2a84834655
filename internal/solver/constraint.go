package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// ErrUnsolvable marks a puzzle whose constraints cannot all be satisfied.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// ConstraintSolver combines constraint propagation with depth-first search
// over the most constrained cell.
type ConstraintSolver struct{}

func NewConstraintSolver() *ConstraintSolver { return &ConstraintSolver{} }

func (s *ConstraintSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0

	v, ok := fromBoard(b)
	if ok {
		v, ok = search(ctx, v, &nodes)
	}
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return toBoard(&v, b.Fixed), st, nil
}

// search picks the undetermined cell with the smallest domain and tries its
// digits in ascending order, each on a copy of the store so sibling
// branches never observe each other's mutations. First success wins.
func search(ctx context.Context, v candidates, nodes *int) (candidates, bool) {
	if ctx.Err() != nil {
		return v, false
	}
	cell, size := -1, 10
	for i := range v {
		if n := v.count(i); n > 1 && n < size {
			cell, size = i, n
			if n == 2 {
				break
			}
		}
	}
	if cell == -1 {
		return v, true // every domain is a single digit
	}
	for d := uint8(1); d <= 9; d++ {
		if !v.has(cell, d) {
			continue
		}
		*nodes++
		branch := v
		if !branch.assign(cell, d) {
			continue
		}
		if res, ok := search(ctx, branch, nodes); ok {
			return res, true
		}
	}
	return v, false
}

// Unique reports whether the puzzle has exactly one solution, counting
// solutions up to 2 with propagation-driven search.
func (s *ConstraintSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0

	v, ok := fromBoard(b)
	if ok {
		countSolutions(ctx, v, &nodes, &count)
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func countSolutions(ctx context.Context, v candidates, nodes, count *int) {
	if ctx.Err() != nil || *count >= 2 {
		return
	}
	cell, size := -1, 10
	for i := range v {
		if n := v.count(i); n > 1 && n < size {
			cell, size = i, n
		}
	}
	if cell == -1 {
		*count++
		return
	}
	for d := uint8(1); d <= 9; d++ {
		if !v.has(cell, d) {
			continue
		}
		*nodes++
		branch := v
		if branch.assign(cell, d) {
			countSolutions(ctx, branch, nodes, count)
		}
		if *count >= 2 {
			return
		}
	}
}
