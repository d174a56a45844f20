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

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "float64", cfg.Raster.CellType)
	assert.Equal(t, 1024, cfg.Raster.Columns)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terracell.yaml")
	content := `
logging:
  level: debug
  encoding: json
raster:
  cell_type: int32
  columns: 256
history:
  dir: /data/hist
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Encoding)
	assert.Equal(t, "int32", cfg.Raster.CellType)
	assert.Equal(t, 256, cfg.Raster.Columns)
	assert.Equal(t, "/data/hist", cfg.History.Dir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Raster.CellType = "decimal"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Raster.Columns = 0
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	cfg := Default()
	cfg.Raster.CellType = "float32"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "float32", got.Raster.CellType)
}
