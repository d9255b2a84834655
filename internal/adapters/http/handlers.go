// Package httpadapter exposes the usecase service as a JSON API.
package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// Defaults fills approx request fields that are absent, so the server
	// config's search section applies to every client.
	Defaults domain.SearchParams
	Log      *slog.Logger
}

func New(uc *usecase.Service, defaults domain.SearchParams, log *slog.Logger) *Handler {
	return &Handler{UC: uc, Defaults: defaults, Log: log}
}

// Register mounts all routes on the router.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/solve", h.handleSolve)
	api.POST("/approx", h.handleApprox)
	api.POST("/validate", h.handleValidate)
	api.POST("/generate", h.handleGenerate)
	api.POST("/hint", h.handleHint)
	api.POST("/save", h.handleSave)
	api.GET("/load/:id", h.handleLoad)
	api.GET("/list", h.handleList)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

type errorResp struct {
	Error string `json:"error"`
}

// boardReq is shared by endpoints accepting a puzzle either as the raw
// 81-character grid string or as a 9x9 value matrix.
type boardReq struct {
	Grid  string       `json:"grid,omitempty"`
	Board *[9][9]uint8 `json:"board,omitempty"`
}

func (q *boardReq) board() (*domain.Board, error) {
	if q.Grid != "" {
		return domain.ParseGrid(q.Grid)
	}
	if q.Board == nil {
		return nil, errors.New("missing grid or board")
	}
	b := &domain.Board{Values: *q.Board}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
	return b, nil
}

// ---- Solve ----

type solveResp struct {
	Board      [9][9]uint8 `json:"board"`
	Grid       string      `json:"grid"`
	Nodes      int         `json:"nodes"`
	DurationMs int64       `json:"durationMs"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.board()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), b)
	observeSolve("exact", err == nil, st.Duration)
	if err != nil {
		h.Log.Warn("solve failed", "err", err, "nodes", st.Nodes)
		c.JSON(http.StatusUnprocessableEntity, errorResp{Error: err.Error()})
		return
	}
	h.Log.Debug("solved", "nodes", st.Nodes, "dur", st.Duration)
	c.JSON(http.StatusOK, solveResp{
		Board:      out.Values,
		Grid:       domain.GridString(out),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Approximate ----

type approxReq struct {
	boardReq
	Method             string   `json:"method,omitempty"` // anneal (default) | climb
	InitialTemperature *float64 `json:"initialTemperature,omitempty"`
	CoolingRate        float64  `json:"coolingRate,omitempty"`
	MaxIterations      int      `json:"maxIterations,omitempty"`
	Seed               int64    `json:"seed,omitempty"`
}

type approxResp struct {
	Board      [9][9]uint8 `json:"board"`
	Grid       string      `json:"grid"`
	Conflicts  int         `json:"conflicts"`
	Solved     bool        `json:"solved"`
	Iterations int         `json:"iterations"`
	DurationMs int64       `json:"durationMs"`
}

func (h *Handler) handleApprox(c *gin.Context) {
	var req approxReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.board()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	// start from the server defaults; request fields override when present.
	// A temperature of 0 is meaningful, so that field is a pointer.
	p := h.Defaults
	if req.InitialTemperature != nil {
		p.InitialTemperature = *req.InitialTemperature
	}
	if req.CoolingRate != 0 {
		p.CoolingRate = req.CoolingRate
	}
	if req.MaxIterations != 0 {
		p.MaxIterations = req.MaxIterations
	}
	if req.Seed != 0 {
		p.Seed = req.Seed
	}

	run := h.UC.Anneal
	if req.Method == "climb" || req.Method == "hillclimb" {
		run = h.UC.HillClimb
	}
	out, st, err := run(c.Request.Context(), b, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	observeSolve("approx", st.Conflicts == 0, st.Duration)
	h.Log.Debug("approx done", "method", req.Method, "conflicts", st.Conflicts, "iterations", st.Iterations)
	c.JSON(http.StatusOK, approxResp{
		Board:      out.Values,
		Grid:       domain.GridString(out),
		Conflicts:  st.Conflicts,
		Solved:     st.Conflicts == 0,
		Iterations: st.Iterations,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.board()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board"`
	Grid       string       `json:"grid"`
	Seed       int64        `json:"seed"`
	Difficulty string       `json:"difficulty"`
	Nodes      int          `json:"nodes"`
	DurationMs int64        `json:"durationMs"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(c.Request.Context(), seed, diff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Board:      p.Board,
		Grid:       domain.GridString(&p.Board),
		Seed:       seed,
		Difficulty: diff.String(),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Hint ----

type hintReq struct {
	boardReq
	MaxTier int `json:"maxTier,omitempty"`
}

type hintResp struct {
	Hint  domain.Hint `json:"hint"`
	Found bool        `json:"found"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.board()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	tier := domain.StrategyTier(req.MaxTier)
	hint, found, err := h.UC.Hint(c.Request.Context(), b, tier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Hint: hint, Found: found})
}

// ---- Persistence ----

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) handleLoad(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, errorResp{Error: "puzzle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) handleList(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": metas})
}
