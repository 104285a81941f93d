package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"mobilecli/internal/config"
	"mobilecli/internal/dataset"
	apperrors "mobilecli/internal/errors"
	"mobilecli/internal/exporter"
	"mobilecli/internal/preprocess"
	"mobilecli/internal/report"
	"mobilecli/internal/trends"
)

// Step IDs.
const (
	StepLoadRaw         = "load_raw"
	StepPreprocess      = "preprocess"
	StepSegment         = "segment"
	StepAnalyzeLaunched = "analyze_launched"
	StepAnalyzeUpcoming = "analyze_upcoming"
)

// State keys for the artifacts steps pass to each other.
const (
	keyRawTable     = "raw_table"
	keyCleanedTable = "cleaned_table"
	keyLaunched     = "launched_table"
	keyUpcoming     = "upcoming_table"
)

// Services bundles everything the concrete steps need.
type Services struct {
	Paths        *config.Paths
	Preprocessor *preprocess.Preprocessor
	Aggregator   *trends.Aggregator
	CSV          *exporter.CSVWriter
	Reporter     *report.Reporter
	RawPath      string
	TopN         int
}

// AnalysisSteps builds the full step set: load, preprocess, segment, and the
// two per-segment analysis branches. The branches only share the segment
// output, so a concurrent runner executes them in parallel.
func AnalysisSteps(svc Services) []Step {
	return []Step{
		&loadRawStep{svc: svc},
		&preprocessStep{svc: svc},
		&segmentStep{svc: svc},
		&analyzeStep{
			svc:       svc,
			id:        StepAnalyzeLaunched,
			name:      "Analyze launched segment",
			stateKey:  keyLaunched,
			vocab:     preprocess.LaunchedVocab(),
			cleanPath: svc.Paths.LaunchedCleanedCSV,
			trendPath: svc.Paths.LaunchedTrendsCSV,
			xlsxPath:  svc.Paths.LaunchedReportXLSX,
		},
		&analyzeStep{
			svc:       svc,
			id:        StepAnalyzeUpcoming,
			name:      "Analyze upcoming/rumored segment",
			stateKey:  keyUpcoming,
			vocab:     preprocess.UpcomingVocab(),
			cleanPath: svc.Paths.UpcomingCleanedCSV,
			trendPath: svc.Paths.UpcomingTrendsCSV,
			topPath:   svc.Paths.TopUpcomingBrandsCSV,
			xlsxPath:  svc.Paths.UpcomingReportXLSX,
			upcoming:  true,
		},
	}
}

func tableFromState(state *State, key string) (*dataset.Table, error) {
	v, ok := state.Get(key)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("missing pipeline artifact %q", key))
	}
	t, ok := v.(*dataset.Table)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("pipeline artifact %q is not a table", key))
	}
	return t, nil
}

// loadRawStep reads the raw catalog file and snapshots it as CSV.
type loadRawStep struct {
	svc Services
}

func (s *loadRawStep) ID() string             { return StepLoadRaw }
func (s *loadRawStep) Name() string           { return "Load raw catalog" }
func (s *loadRawStep) Dependencies() []string { return nil }

func (s *loadRawStep) Execute(ctx context.Context, state *State) error {
	raw, err := dataset.Load(s.svc.RawPath)
	if err != nil {
		return err
	}
	if raw.Len() == 0 {
		return apperrors.NewValidationError("raw catalog has no records")
	}

	// Snapshot external inputs into the data tree, but never rewrite an
	// input that already lives at the snapshot path.
	if filepath.Clean(s.svc.RawPath) != filepath.Clean(s.svc.Paths.RawCatalogCSV) {
		if err := dataset.WriteCSV(s.svc.Paths.RawCatalogCSV, raw); err != nil {
			return err
		}
	}
	state.Set(keyRawTable, raw)
	return nil
}

// preprocessStep cleans and normalizes the raw table.
type preprocessStep struct {
	svc Services
}

func (s *preprocessStep) ID() string             { return StepPreprocess }
func (s *preprocessStep) Name() string           { return "Preprocess catalog" }
func (s *preprocessStep) Dependencies() []string { return []string{StepLoadRaw} }

func (s *preprocessStep) Execute(ctx context.Context, state *State) error {
	raw, err := tableFromState(state, keyRawTable)
	if err != nil {
		return err
	}

	p := s.svc.Preprocessor
	p.RenameColumns(raw)
	cleaned := p.InitialClean(ctx, raw)
	if err := dataset.WriteCSV(s.svc.Paths.CleanedCSV, cleaned); err != nil {
		return err
	}

	p.StandardizeAndFill(cleaned)
	p.SplitCompoundFields(cleaned)
	if err := dataset.WriteCSV(s.svc.Paths.FinalCleanedCSV, cleaned); err != nil {
		return err
	}

	state.Set(keyCleanedTable, cleaned)
	return nil
}

// segmentStep partitions the cleaned table by tag.
type segmentStep struct {
	svc Services
}

func (s *segmentStep) ID() string             { return StepSegment }
func (s *segmentStep) Name() string           { return "Segment by tag" }
func (s *segmentStep) Dependencies() []string { return []string{StepPreprocess} }

func (s *segmentStep) Execute(ctx context.Context, state *State) error {
	cleaned, err := tableFromState(state, keyCleanedTable)
	if err != nil {
		return err
	}

	launched, upcoming := s.svc.Preprocessor.Segment(ctx, cleaned)
	if err := dataset.WriteCSV(s.svc.Paths.LaunchedCSV, launched); err != nil {
		return err
	}
	if err := dataset.WriteCSV(s.svc.Paths.UpcomingRumoredCSV, upcoming); err != nil {
		return err
	}

	state.Set(keyLaunched, launched)
	state.Set(keyUpcoming, upcoming)
	return nil
}

// analyzeStep enriches one segment, aggregates its brand family trends and
// writes the CSV and workbook outputs. Both segment branches are instances
// of this step.
type analyzeStep struct {
	svc       Services
	id        string
	name      string
	stateKey  string
	vocab     preprocess.SegmentVocab
	cleanPath string
	trendPath string
	topPath   string
	xlsxPath  string
	upcoming  bool
}

func (s *analyzeStep) ID() string             { return s.id }
func (s *analyzeStep) Name() string           { return s.name }
func (s *analyzeStep) Dependencies() []string { return []string{StepSegment} }

func (s *analyzeStep) Execute(ctx context.Context, state *State) error {
	segment, err := tableFromState(state, s.stateKey)
	if err != nil {
		return err
	}

	enriched := s.svc.Preprocessor.EnrichSegment(ctx, segment, s.vocab)
	if err := dataset.WriteCSV(s.cleanPath, enriched); err != nil {
		return err
	}

	trendRows := s.svc.Aggregator.Aggregate(ctx, enriched)
	if err := s.svc.CSV.WriteTrends(s.trendPath, trendRows); err != nil {
		return err
	}
	if s.topPath != "" {
		top := trends.TopN(trendRows, s.svc.TopN)
		if err := s.svc.CSV.WriteTrends(s.topPath, top); err != nil {
			return err
		}
	}

	return s.svc.Reporter.WriteSegmentReport(ctx, s.xlsxPath, enriched, trendRows, s.upcoming)
}
