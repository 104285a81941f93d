package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for every file path the pipeline
// reads or writes.
type Paths struct {
	DataDir       string
	RawDir        string
	PreprocessDir string
	ProcessedDir  string
	FiguresDir    string
	LogsDir       string

	// Well-known artifacts
	RawCatalogCSV        string
	CleanedCSV           string
	FinalCleanedCSV      string
	LaunchedCSV          string
	UpcomingRumoredCSV   string
	LaunchedCleanedCSV   string
	UpcomingCleanedCSV   string
	LaunchedTrendsCSV    string
	UpcomingTrendsCSV    string
	TopUpcomingBrandsCSV string
	LaunchedReportXLSX   string
	UpcomingReportXLSX   string
}

// NewPaths builds the path set rooted at the given data and logs directories.
// Relative directories are resolved against the current working directory,
// which is where the analyst runs the tool.
func NewPaths(dataDir, logsDir string) *Paths {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	if logsDir == "" {
		logsDir = DefaultLogsDir
	}

	rawDir := filepath.Join(dataDir, DefaultRawDir)
	preprocessDir := filepath.Join(dataDir, DefaultPreprocessDir)
	processedDir := filepath.Join(dataDir, DefaultProcessedDir)
	figuresDir := filepath.Join(dataDir, DefaultFiguresDir)

	return &Paths{
		DataDir:       dataDir,
		RawDir:        rawDir,
		PreprocessDir: preprocessDir,
		ProcessedDir:  processedDir,
		FiguresDir:    figuresDir,
		LogsDir:       logsDir,

		RawCatalogCSV:        filepath.Join(rawDir, RawCatalogCSV),
		CleanedCSV:           filepath.Join(preprocessDir, CleanedCSV),
		FinalCleanedCSV:      filepath.Join(preprocessDir, FinalCleanedCSV),
		LaunchedCSV:          filepath.Join(preprocessDir, LaunchedCSV),
		UpcomingRumoredCSV:   filepath.Join(preprocessDir, UpcomingRumoredCSV),
		LaunchedCleanedCSV:   filepath.Join(preprocessDir, LaunchedCleanedCSV),
		UpcomingCleanedCSV:   filepath.Join(preprocessDir, UpcomingCleanedCSV),
		LaunchedTrendsCSV:    filepath.Join(processedDir, LaunchedTrendsCSV),
		UpcomingTrendsCSV:    filepath.Join(processedDir, UpcomingTrendsCSV),
		TopUpcomingBrandsCSV: filepath.Join(processedDir, TopUpcomingBrandsCSV),
		LaunchedReportXLSX:   filepath.Join(figuresDir, LaunchedReportXLSX),
		UpcomingReportXLSX:   filepath.Join(figuresDir, UpcomingReportXLSX),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.DataDir,
		p.RawDir,
		p.PreprocessDir,
		p.ProcessedDir,
		p.FiguresDir,
		p.LogsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetPreprocessPath returns the path of a file in the preprocess directory
func (p *Paths) GetPreprocessPath(filename string) string {
	return filepath.Join(p.PreprocessDir, filename)
}

// GetProcessedPath returns the path of a file in the processed directory
func (p *Paths) GetProcessedPath(filename string) string {
	return filepath.Join(p.ProcessedDir, filename)
}

// GetFigurePath returns the path of a file in the figures directory
func (p *Paths) GetFigurePath(filename string) string {
	return filepath.Join(p.FiguresDir, filename)
}

// GetLogPath returns the path of a file in the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
