package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokulab/internal/adapters/http"
	"svw.info/sudokulab/internal/generator"
	"svw.info/sudokulab/internal/hint"
	"svw.info/sudokulab/internal/infrastructure/config"
	"svw.info/sudokulab/internal/infrastructure/storage"
	"svw.info/sudokulab/internal/localsearch"
	"svw.info/sudokulab/internal/usecase"
	"svw.info/sudokulab/internal/validator"
)

var (
	serveAddr    string
	serveConfig  string
	servePersist string
	serveEngine  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "YAML config file")
	serveCmd.Flags().StringVar(&servePersist, "persist-path", "", "save directory (overrides config)")
	serveCmd.Flags().StringVar(&serveEngine, "engine", "", "exact engine: constraint|backtrack (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

// requestLogger logs method, path, status and duration for every request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if servePersist != "" {
		cfg.Server.PersistDir = servePersist
	}
	if serveEngine != "" {
		cfg.Server.Engine = serveEngine
	}
	logger := newLogger(cfg.Server.LogLevel)
	if err := os.MkdirAll(cfg.Server.PersistDir, 0o755); err != nil {
		return err
	}

	s := pickEngine(cfg.Server.Engine)
	uc := usecase.NewService(
		s,
		localsearch.NewAnnealer(),
		localsearch.NewHillClimber(),
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(cfg.Server.PersistDir),
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())
	httpadapter.New(uc, cfg.Search, logger).Register(r)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Server.Addr, "persist", cfg.Server.PersistDir, "engine", cfg.Server.Engine)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
