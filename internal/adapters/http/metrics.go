package httpadapter

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudokulab_solve_total",
		Help: "Solve requests by engine kind and outcome.",
	}, []string{"engine", "outcome"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sudokulab_solve_duration_seconds",
		Help:    "Duration of solve requests.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"engine"})
)

func observeSolve(engine string, ok bool, d time.Duration) {
	outcome := "solved"
	if !ok {
		outcome = "unsolved"
	}
	solveTotal.WithLabelValues(engine, outcome).Inc()
	solveDuration.WithLabelValues(engine).Observe(d.Seconds())
}
