package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, DefaultDataDir, cfg.Paths.DataDir)
	assert.Equal(t, DefaultTopN, cfg.Pipeline.TopN)
	assert.Equal(t, DefaultRequiredColumns(), cfg.Pipeline.RequiredColumns)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: debug
  format: text
paths:
  data_dir: /tmp/catalog
pipeline:
  top_n: 5
  required_columns:
    - Brand Name
    - Price
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "/tmp/catalog", cfg.Paths.DataDir)
	assert.Equal(t, 5, cfg.Pipeline.TopN)
	assert.Equal(t, []string{ColBrandName, ColPrice}, cfg.Pipeline.RequiredColumns)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging:\n  level: debug\n"), 0644))

	t.Setenv("MOBILE_LOGGING_LEVEL", "warn")

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_InvalidLevel(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging:\n  level: loud\n"), 0644))

	_, err := Load(configFile)
	assert.Error(t, err)
}

func TestNewPaths(t *testing.T) {
	p := NewPaths("data", "logs")

	assert.Equal(t, filepath.Join("data", "raw", "mobile.csv"), p.RawCatalogCSV)
	assert.Equal(t, filepath.Join("data", "preprocess", "mobile_final_cleaned.csv"), p.FinalCleanedCSV)
	assert.Equal(t, filepath.Join("data", "processed", "brand_family_trends.csv"), p.LaunchedTrendsCSV)
	assert.Equal(t, filepath.Join("data", "figures", "upcoming_report.xlsx"), p.UpcomingReportXLSX)
	assert.Equal(t, filepath.Join("logs", "run.log"), p.GetLogPath("run.log"))
}

func TestPaths_EnsureDirectories(t *testing.T) {
	root := t.TempDir()
	p := NewPaths(filepath.Join(root, "data"), filepath.Join(root, "logs"))

	require.NoError(t, p.EnsureDirectories())

	for _, dir := range []string{p.RawDir, p.PreprocessDir, p.ProcessedDir, p.FiguresDir, p.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
