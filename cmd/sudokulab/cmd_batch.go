package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/localsearch"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/validator"
)

var (
	batchMethod   string
	batchParallel int
	batchSeed     int64
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Solve a corpus of puzzles, one 81-character grid per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchMethod, "method", "exact", "exact|backtrack|anneal|climb")
	batchCmd.Flags().IntVar(&batchParallel, "parallel", 4, "concurrent solves")
	batchCmd.Flags().Int64Var(&batchSeed, "seed", 0, "base random seed for local search (0 = time-based)")
	rootCmd.AddCommand(batchCmd)
}

func readCorpus(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var grids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			grids = append(grids, line)
		}
	}
	return grids, sc.Err()
}

// solveOne returns whether the grid ended up solved and how long it took.
func solveOne(ctx context.Context, grid string, seed int64) (bool, time.Duration, error) {
	b, err := domain.ParseGrid(grid)
	if err != nil {
		return false, 0, err
	}
	start := time.Now()
	switch batchMethod {
	case "anneal", "climb":
		p := domain.SearchParams{InitialTemperature: domain.DefaultTemperature, Seed: seed}
		var a ports.Approximator = localsearch.NewAnnealer()
		if batchMethod == "climb" {
			a = localsearch.NewHillClimber()
		}
		out, _, err := a.Approximate(ctx, b, p)
		if err != nil {
			return false, time.Since(start), err
		}
		return validator.Solved(out), time.Since(start), nil
	default:
		s := pickEngine(batchMethod)
		out, _, err := s.Solve(ctx, b)
		if err != nil {
			return false, time.Since(start), nil // unsolvable counts as a miss
		}
		return validator.Solved(out), time.Since(start), nil
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	grids, err := readCorpus(args[0])
	if err != nil {
		return err
	}
	baseSeed := batchSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var mu sync.Mutex
	solved := 0
	var total, max time.Duration

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(batchParallel)
	for i, grid := range grids {
		i, grid := i, grid
		g.Go(func() error {
			ok, dur, err := solveOne(ctx, grid, baseSeed+int64(i))
			if err != nil {
				slog.Warn("skipping grid", "line", i+1, "err", err)
				return nil
			}
			mu.Lock()
			if ok {
				solved++
			}
			total += dur
			if dur > max {
				max = dur
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	n := len(grids)
	if n == 0 {
		return fmt.Errorf("no grids in %s", args[0])
	}
	avg := total / time.Duration(n)
	fmt.Printf("Solved %d of %d puzzles (method %s, avg %v, max %v)\n",
		solved, n, batchMethod, avg.Round(time.Microsecond), max.Round(time.Microsecond))
	return nil
}
