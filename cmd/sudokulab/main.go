package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "sudokulab",
	Short: "Solve, approximate, generate and serve 9x9 Sudoku puzzles",
	Long: `sudokulab solves Sudoku puzzles with two engines: an exact one based on
constraint propagation plus backtracking, and an approximate one based on
stochastic local search (hill climbing or simulated annealing) over
box-consistent configurations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(logLevel))
	},
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
