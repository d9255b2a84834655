package localsearch

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// HillClimber greedily accepts the best within-box swap while it strictly
// reduces conflicts and stops at the first local optimum.
type HillClimber struct{}

func NewHillClimber() *HillClimber { return &HillClimber{} }

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (h *HillClimber) Approximate(ctx context.Context, b *domain.Board, p domain.SearchParams) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	p = p.Normalized(false)
	rng := newRand(p.Seed)

	cur := b.Clone()
	fillBoxes(cur, rng)

	iters := 0
	for i := 0; i < p.MaxIterations; i++ {
		if ctx.Err() != nil {
			break
		}
		curConf := Conflicts(cur)
		if curConf == 0 {
			break
		}
		iters++
		next, nextConf := bestNeighbor(cur, rng.Intn(9))
		if nextConf >= curConf {
			break // local optimum, possibly non-zero
		}
		cur = next
	}
	st := ports.Stats{
		Iterations: iters,
		Conflicts:  Conflicts(cur),
		Duration:   time.Since(start),
	}
	return cur, st, ctx.Err()
}
