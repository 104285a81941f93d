package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilecli/internal/config"
	"mobilecli/internal/dataset"
	"mobilecli/internal/exporter"
	"mobilecli/internal/preprocess"
	"mobilecli/internal/report"
	"mobilecli/internal/trends"
)

func writeRawFixture(t *testing.T, path string) {
	t.Helper()
	tbl := dataset.New("Name", "Spec Score", "rating", "price", "tag", "processor", "storage", "battery", "display", "img")
	rows := []map[string]string{
		{
			"Name": "Samsung Galaxy M35", "Spec Score": "81", "rating": "4.4", "price": "16999",
			"tag": "Launched", "processor": "Exynos 1380, Octa Core, 2.4GHz",
			"storage": "6 GB RAM, 128 GB inbuilt", "battery": "6000mAh Battery with 25W Fast Charging",
			"display": "6.6 inches, 1080 x 2340 px, 120Hz", "img": "https://img/m35",
		},
		{
			"Name": "Vivo Y200", "Spec Score": "74", "rating": "4.2", "price": "13999",
			"tag": "Launched", "processor": "Dimensity 7020, Octa Core",
			"storage": "8 GB RAM, 128 GB inbuilt", "battery": "5000mAh Battery with 44W Fast Charging",
			"display": "6.67 inches, 1080 x 2400 px", "img": "https://img/y200",
		},
		{
			"Name": "Xiaomi 15 Ultra", "Spec Score": "96", "rating": "4.7", "price": "89999",
			"tag": "Upcoming", "processor": "Snapdragon 8 Elite, Octa Core, 4.3GHz",
			"storage": "16 GB RAM, 512 GB inbuilt", "battery": "5410mAh Battery with 90W Fast Charging",
			"display": "6.73 inches, 1440 x 3200 px, 120Hz", "img": "https://img/15u",
		},
		{
			// Missing price, dropped during initial cleaning.
			"Name": "Ghost Phone", "Spec Score": "50", "rating": "3.0", "tag": "Launched",
		},
	}
	for _, r := range rows {
		row := dataset.Row{}
		for k, v := range r {
			row.Set(k, v)
		}
		tbl.Append(row)
	}
	require.NoError(t, dataset.WriteCSV(path, tbl))
}

func TestAnalysisSteps_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	paths := config.NewPaths(filepath.Join(dir, "data"), filepath.Join(dir, "logs"))
	require.NoError(t, paths.EnsureDirectories())

	rawPath := filepath.Join(dir, "catalog.csv")
	writeRawFixture(t, rawPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := Services{
		Paths:        paths,
		Preprocessor: preprocess.New(logger, nil),
		Aggregator:   trends.NewAggregator(logger),
		CSV:          exporter.NewCSVWriter(),
		Reporter:     report.NewReporter(logger),
		RawPath:      rawPath,
		TopN:         config.DefaultTopN,
	}

	result, err := NewRunner(logger, false).Run(context.Background(), NewState(), AnalysisSteps(svc))
	require.NoError(t, err)
	assert.False(t, result.Failed())

	for _, artifact := range []string{
		paths.RawCatalogCSV,
		paths.CleanedCSV,
		paths.FinalCleanedCSV,
		paths.LaunchedCSV,
		paths.UpcomingRumoredCSV,
		paths.LaunchedCleanedCSV,
		paths.UpcomingCleanedCSV,
		paths.LaunchedTrendsCSV,
		paths.UpcomingTrendsCSV,
		paths.TopUpcomingBrandsCSV,
		paths.LaunchedReportXLSX,
		paths.UpcomingReportXLSX,
	} {
		_, statErr := os.Stat(artifact)
		assert.NoError(t, statErr, "expected artifact %s", artifact)
	}

	launched, err := dataset.ReadCSV(paths.LaunchedCleanedCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, launched.Len())
	families := launched.ColumnValues(config.ColBrandFamily)
	assert.ElementsMatch(t, []string{"Samsung", "Vivo"}, families)

	topData, err := os.ReadFile(paths.TopUpcomingBrandsCSV)
	require.NoError(t, err)
	top := string(topData)
	assert.Contains(t, top, "Xiaomi")
	assert.Contains(t, top, "96.00")
	assert.Contains(t, top, ">=12K(High)")
}

func TestLoadRawStep_DoesNotRewriteInputInPlace(t *testing.T) {
	dir := t.TempDir()
	paths := config.NewPaths(filepath.Join(dir, "data"), filepath.Join(dir, "logs"))
	require.NoError(t, paths.EnsureDirectories())

	// Input already at the snapshot path, without a BOM.
	original := []byte("Name,price\npixel,59999\n")
	require.NoError(t, os.WriteFile(paths.RawCatalogCSV, original, 0644))

	step := &loadRawStep{svc: Services{Paths: paths, RawPath: paths.RawCatalogCSV}}
	require.NoError(t, step.Execute(context.Background(), NewState()))

	after, err := os.ReadFile(paths.RawCatalogCSV)
	require.NoError(t, err)
	assert.Equal(t, original, after, "input file must not be rewritten in place")
}

func TestLoadRawStep_SnapshotsExternalInput(t *testing.T) {
	dir := t.TempDir()
	paths := config.NewPaths(filepath.Join(dir, "data"), filepath.Join(dir, "logs"))
	require.NoError(t, paths.EnsureDirectories())

	external := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(external, []byte("Name,price\npixel,59999\n"), 0644))

	step := &loadRawStep{svc: Services{Paths: paths, RawPath: external}}
	require.NoError(t, step.Execute(context.Background(), NewState()))

	snapshot, err := dataset.ReadCSV(paths.RawCatalogCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
}

func TestAnalysisSteps_MissingRawFileFailsPipeline(t *testing.T) {
	dir := t.TempDir()
	paths := config.NewPaths(filepath.Join(dir, "data"), filepath.Join(dir, "logs"))
	require.NoError(t, paths.EnsureDirectories())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := Services{
		Paths:        paths,
		Preprocessor: preprocess.New(logger, nil),
		Aggregator:   trends.NewAggregator(logger),
		CSV:          exporter.NewCSVWriter(),
		Reporter:     report.NewReporter(logger),
		RawPath:      filepath.Join(dir, "nope.csv"),
		TopN:         config.DefaultTopN,
	}

	result, err := NewRunner(logger, true).Run(context.Background(), NewState(), AnalysisSteps(svc))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), StepLoadRaw))
	assert.Equal(t, StepStatusSkipped, result.States[StepPreprocess].GetStatus())
	assert.Equal(t, StepStatusSkipped, result.States[StepAnalyzeLaunched].GetStatus())
}
