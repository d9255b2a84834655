package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/generator"
	"svw.info/sudokulab/internal/hint"
	"svw.info/sudokulab/internal/infrastructure/config"
	"svw.info/sudokulab/internal/infrastructure/storage"
	"svw.info/sudokulab/internal/localsearch"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/usecase"
	"svw.info/sudokulab/internal/validator"
)

const easyGrid = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"

func newRouterWithDefaults(t *testing.T, defaults domain.SearchParams) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := usecase.NewService(
		solver.NewConstraintSolver(),
		localsearch.NewAnnealer(),
		localsearch.NewHillClimber(),
		generator.NewUniqueGenerator(solver.NewBacktrackingSolver()),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
	h := New(uc, defaults, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := gin.New()
	h.Register(r)
	return r
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newRouterWithDefaults(t, config.Default().Search)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	r := newRouter(t)
	w := postJSON(t, r, "/api/solve", gin.H{"grid": easyGrid})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Grid, "483921657"))
	assert.NotContains(t, resp.Grid, ".")
	assert.Greater(t, resp.Nodes, 0)
}

func TestSolveRejectsShortGrid(t *testing.T) {
	r := newRouter(t)
	w := postJSON(t, r, "/api/solve", gin.H{"grid": easyGrid[:80]})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveRejectsContradiction(t *testing.T) {
	r := newRouter(t)
	bad := "11" + strings.Repeat("0", 79)
	w := postJSON(t, r, "/api/solve", gin.H{"grid": bad})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestApproxEndpoint(t *testing.T) {
	r := newRouter(t)
	w := postJSON(t, r, "/api/approx", gin.H{"grid": easyGrid, "seed": 7})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp approxResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Grid, ".")
	assert.Equal(t, resp.Conflicts == 0, resp.Solved)
}

func TestApproxZeroTemperatureReturnsInitialFill(t *testing.T) {
	r := newRouter(t)
	zero := 0.0
	w := postJSON(t, r, "/api/approx", gin.H{
		"grid":               easyGrid,
		"seed":               7,
		"initialTemperature": zero,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp approxResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Iterations)
}

func TestApproxUsesServerSearchDefaults(t *testing.T) {
	// a request that sets nothing beyond the grid runs with the server's
	// configured search parameters
	r := newRouterWithDefaults(t, domain.SearchParams{
		InitialTemperature: domain.DefaultTemperature,
		CoolingRate:        domain.DefaultCoolingRate,
		MaxIterations:      2,
		Seed:               123,
	})
	w := postJSON(t, r, "/api/approx", gin.H{"grid": easyGrid})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp approxResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.Iterations, 1)
	assert.LessOrEqual(t, resp.Iterations, 2)

	// an explicit request field still overrides the configured default
	w = postJSON(t, r, "/api/approx", gin.H{"grid": easyGrid, "maxIterations": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Iterations)
}

func TestApproxClimbMethod(t *testing.T) {
	r := newRouter(t)
	w := postJSON(t, r, "/api/approx", gin.H{"grid": easyGrid, "method": "climb", "seed": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp approxResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Grid, ".")
}

func TestValidateEndpoint(t *testing.T) {
	r := newRouter(t)

	w := postJSON(t, r, "/api/validate", gin.H{"grid": easyGrid})
	require.Equal(t, http.StatusOK, w.Code)
	var resp validateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)

	dup := "55" + strings.Repeat("0", 79)
	w = postJSON(t, r, "/api/validate", gin.H{"grid": dup})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestGenerateEndpoint(t *testing.T) {
	r := newRouter(t)
	w := postJSON(t, r, "/api/generate", gin.H{"difficulty": "easy", "seed": 11})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp generateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "easy", resp.Difficulty)
	assert.Equal(t, int64(11), resp.Seed)
	assert.Len(t, resp.Grid, 81)
}

func TestHintEndpoint(t *testing.T) {
	r := newRouter(t)
	// row A holds 1-8, so the only candidate for A9 is 9
	grid := "12345678" + strings.Repeat("0", 73)
	w := postJSON(t, r, "/api/hint", gin.H{"grid": grid, "maxTier": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp hintResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	assert.Equal(t, uint8(9), resp.Hint.Digit)
}

func TestSaveLoadListEndpoints(t *testing.T) {
	r := newRouter(t)

	w := postJSON(t, r, "/api/save", gin.H{"difficulty": 1, "name": "kept"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var saved struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/load/"+saved.ID, nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/load/missing", nil)
	w2 = httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusNotFound, w2.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/list", nil)
	w2 = httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), saved.ID)
}
