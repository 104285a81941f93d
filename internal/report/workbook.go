// Package report renders per-segment Excel workbooks: the enriched data,
// distribution and count charts, and the brand family trend summary.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mobilecli/internal/config"
	"mobilecli/internal/dataset"
	apperrors "mobilecli/internal/errors"
	"mobilecli/pkg/contracts/domain"
)

// Reporter writes segment report workbooks.
type Reporter struct {
	logger *slog.Logger
}

func NewReporter(logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{logger: logger}
}

// histogramColumns are charted as binned distributions.
var histogramColumns = []string{
	config.ColSpecScore,
	config.ColPrice,
	config.ColRating,
}

// countColumns are charted as value-count bars in every segment report.
var countColumns = []string{
	config.ColBrandFamily,
	config.ColProcessorFamily,
	config.ColRAM,
	config.ColInternalStorage,
	config.ColBatteryCapacityRange,
}

// upcomingCountColumns adds the display-size distribution tracked for the
// upcoming/rumored segment.
var upcomingCountColumns = append(append([]string{}, countColumns...), config.ColDisplaySizeRange)

// WriteSegmentReport writes one workbook for a segment: a Data sheet with
// the enriched table, one chart sheet per distribution and count column, a
// Trends sheet with the aggregated rows and, for the upcoming segment, the
// display-size count chart and a trend line chart. A single failed chart is
// logged and skipped; only workbook-level failures are returned.
func (r *Reporter) WriteSegmentReport(ctx context.Context, path string, segment *dataset.Table, trendRows []domain.TrendRow, upcoming bool) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeDataSheet(f, segment); err != nil {
		return apperrors.NewStorageError("failed to write data sheet", err)
	}

	for _, col := range histogramColumns {
		if !segment.HasColumn(col) {
			continue
		}
		if err := r.addHistogramSheet(f, segment, col); err != nil {
			r.logger.WarnContext(ctx, "skipping histogram chart",
				slog.String("column", col), slog.String("error", err.Error()))
		}
	}

	counts := countColumns
	if upcoming {
		counts = upcomingCountColumns
	}
	for _, col := range counts {
		if !segment.HasColumn(col) {
			continue
		}
		if err := r.addCountSheet(f, segment, col); err != nil {
			r.logger.WarnContext(ctx, "skipping count chart",
				slog.String("column", col), slog.String("error", err.Error()))
		}
	}

	if len(trendRows) > 0 {
		if err := r.addTrendSheet(f, trendRows, upcoming); err != nil {
			r.logger.WarnContext(ctx, "skipping trend sheet",
				slog.String("error", err.Error()))
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create report directory", err)
	}
	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to save report %s", filepath.Base(path)), err)
	}

	r.logger.InfoContext(ctx, "segment report written",
		slog.String("path", path),
		slog.Int("rows", segment.Len()))
	return nil
}

// writeDataSheet renames the default sheet to Data and writes the table,
// coercing numeric-looking cells to numbers so Excel treats them as such.
func writeDataSheet(f *excelize.File, t *dataset.Table) error {
	const sheet = "Data"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = cellValue(row.Value(col))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

func cellValue(v string) interface{} {
	if v == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n
	}
	return v
}

// sheetName keeps Excel's 31-character sheet name limit.
func sheetName(parts ...string) string {
	name := strings.Join(parts, " ")
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
