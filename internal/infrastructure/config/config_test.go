package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "constraint", cfg.Server.Engine)
	assert.Equal(t, 1.15, cfg.Search.InitialTemperature)
	assert.Equal(t, 0.99, cfg.Search.CoolingRate)
	assert.Equal(t, 500, cfg.Search.MaxIterations)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sudokulab.yaml")
	doc := `
server:
  addr: ":9090"
  engine: backtrack
search:
  cooling_rate: 0.95
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "backtrack", cfg.Server.Engine)
	assert.Equal(t, 0.95, cfg.Search.CoolingRate)
	// untouched fields keep their defaults
	assert.Equal(t, "./data", cfg.Server.PersistDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
