package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/localsearch"
	"svw.info/sudokulab/internal/ports"
)

var (
	approxMethod string
	approxTemp   float64
	approxCool   float64
	approxIters  int
	approxSeed   int64
)

var approxCmd = &cobra.Command{
	Use:   "approx <grid>",
	Short: "Solve a puzzle approximately by local search",
	Long: `Approx fills every box with a random permutation and then reduces
row/column conflicts by within-box swaps, using either greedy hill climbing
or simulated annealing. The result is best-effort: a conflict count of zero
means a true solution.`,
	Args: cobra.ExactArgs(1),
	RunE: runApprox,
}

func init() {
	approxCmd.Flags().StringVar(&approxMethod, "method", "anneal", "local search method: anneal|climb")
	approxCmd.Flags().Float64Var(&approxTemp, "temperature", domain.DefaultTemperature, "initial annealing temperature")
	approxCmd.Flags().Float64Var(&approxCool, "cooling", domain.DefaultCoolingRate, "per-iteration cooling rate")
	approxCmd.Flags().IntVar(&approxIters, "iterations", 0, "iteration cap (default 500 anneal, 150 climb)")
	approxCmd.Flags().Int64Var(&approxSeed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.AddCommand(approxCmd)
}

func runApprox(cmd *cobra.Command, args []string) error {
	b, err := domain.ParseGrid(args[0])
	if err != nil {
		return err
	}
	p := domain.SearchParams{
		InitialTemperature: approxTemp,
		CoolingRate:        approxCool,
		MaxIterations:      approxIters,
		Seed:               approxSeed,
	}
	var a ports.Approximator
	if approxMethod == "climb" || approxMethod == "hillclimb" {
		a = localsearch.NewHillClimber()
	} else {
		a = localsearch.NewAnnealer()
	}
	out, st, err := a.Approximate(context.Background(), b, p)
	if err != nil {
		return err
	}
	fmt.Print(renderBoard(out))
	if st.Conflicts == 0 {
		slog.Info("solved", "method", approxMethod, "iterations", st.Iterations, "dur", st.Duration)
	} else {
		slog.Warn("did not converge", "method", approxMethod,
			"conflicts", st.Conflicts, "iterations", st.Iterations, "dur", st.Duration)
	}
	return nil
}
