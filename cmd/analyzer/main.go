// Command analyzer runs the mobile catalog analysis pipeline: it loads a raw
// catalog export, cleans and normalizes it, splits it into the launched and
// upcoming/rumored segments and writes per-segment trend CSVs and report
// workbooks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"mobilecli/internal/config"
	"mobilecli/internal/exporter"
	"mobilecli/internal/infrastructure"
	"mobilecli/internal/pipeline"
	"mobilecli/internal/preprocess"
	"mobilecli/internal/report"
	"mobilecli/internal/trends"
)

func main() {
	if err := run(); err != nil {
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	rawPath := flag.String("raw", "", "raw catalog file (.csv, .xlsx); defaults to data/raw/mobile.csv")
	dataDir := flag.String("data", "", "data directory root (default \"data\")")
	configFile := flag.String("config", "", "optional YAML config file")
	topN := flag.Int("top", 0, "row count for the top-brands export (overrides config)")
	sequential := flag.Bool("sequential", false, "process segment branches one at a time")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *topN > 0 {
		cfg.Pipeline.TopN = *topN
	}
	if *sequential {
		cfg.Pipeline.Sequential = true
	}

	paths := config.NewPaths(cfg.Paths.DataDir, cfg.Paths.LogsDir)
	if err := paths.EnsureDirectories(); err != nil {
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger = logger.With(slog.String("app", config.AppName))

	raw := *rawPath
	if raw == "" {
		raw = paths.RawCatalogCSV
	}

	svc := pipeline.Services{
		Paths:        paths,
		Preprocessor: preprocess.New(logger, cfg.Pipeline.RequiredColumns),
		Aggregator:   trends.NewAggregator(logger),
		CSV:          exporter.NewCSVWriter(),
		Reporter:     report.NewReporter(logger),
		RawPath:      raw,
		TopN:         cfg.Pipeline.TopN,
	}

	runner := pipeline.NewRunner(logger, cfg.Pipeline.Sequential)
	result, err := runner.Run(ctx, pipeline.NewState(), pipeline.AnalysisSteps(svc))
	if err != nil {
		return err
	}

	for id, state := range result.States {
		logger.InfoContext(ctx, "step summary",
			slog.String("step", id),
			slog.String("status", string(state.GetStatus())),
			slog.Duration("duration", state.Duration()))
	}
	logger.InfoContext(ctx, "analysis complete",
		slog.String("launched_trends", paths.LaunchedTrendsCSV),
		slog.String("upcoming_trends", paths.UpcomingTrendsCSV))
	return nil
}
