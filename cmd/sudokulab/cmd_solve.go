package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/solver"
)

var solveEngine string

var solveCmd = &cobra.Command{
	Use:   "solve <grid>",
	Short: "Solve a puzzle exactly",
	Long: `Solve reads an 81-character grid (digits 1-9 for givens, 0 or . for
empty cells; other characters are ignored) and prints the solved grid, or
fails when the puzzle has no solution.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveEngine, "engine", "constraint", "exact engine: constraint|backtrack")
	rootCmd.AddCommand(solveCmd)
}

func pickEngine(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewConstraintSolver()
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := domain.ParseGrid(args[0])
	if err != nil {
		return err
	}
	s := pickEngine(solveEngine)
	out, st, err := s.Solve(context.Background(), b)
	if err != nil {
		slog.Error("solve failed", "err", err, "nodes", st.Nodes, "dur", st.Duration)
		os.Exit(1)
	}
	fmt.Print(renderBoard(out))
	slog.Info("solved", "engine", solveEngine, "nodes", st.Nodes, "dur", st.Duration)
	return nil
}
