package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// Service is the application façade wiring solver engines, local search,
// generation, validation, hints and persistence.
type Service struct {
	Solver      ports.Solver
	Annealer    ports.Approximator
	HillClimber ports.Approximator
	Generator   ports.Generator
	Validator   ports.Validator
	Hinter      ports.Hinter
	Storage     ports.Storage
}

func NewService(s ports.Solver, an, hc ports.Approximator, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Annealer: an, HillClimber: hc, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

// Anneal runs simulated annealing. The returned board is best-effort:
// check Stats.Conflicts to know whether it is a solution.
func (u *Service) Anneal(ctx context.Context, b *domain.Board, p domain.SearchParams) (*domain.Board, ports.Stats, error) {
	if u.Annealer == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Annealer.Approximate(ctx, b, p)
}

// HillClimb runs greedy local search with the same best-effort contract.
func (u *Service) HillClimb(ctx context.Context, b *domain.Board, p domain.SearchParams) (*domain.Board, ports.Stats, error) {
	if u.HillClimber == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.HillClimber.Approximate(ctx, b, p)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}

// Persistence. Save assigns an ID when the puzzle has none.
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p != nil && p.ID == "" {
		p.ID = uuid.NewString()
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
