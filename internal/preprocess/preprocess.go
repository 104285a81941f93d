// Package preprocess implements the cleaning half of the pipeline: column
// normalization, record cleaning, standardization and compound-field
// extraction, followed by tag-based segmentation.
package preprocess

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"mobilecli/internal/config"
	"mobilecli/internal/dataset"
	"mobilecli/internal/extract"
)

// Preprocessor owns the cleaning stages. Every method returns a fresh table
// or mutates only the table it was handed; earlier-stage outputs are never
// altered retroactively.
type Preprocessor struct {
	logger   *slog.Logger
	required []string
}

// New creates a preprocessor. An empty required set falls back to the
// default {Brand Name, Price, Spec Score, Rating, Tag}.
func New(logger *slog.Logger, required []string) *Preprocessor {
	if logger == nil {
		logger = slog.Default()
	}
	if len(required) == 0 {
		required = config.DefaultRequiredColumns()
	}
	return &Preprocessor{logger: logger, required: required}
}

// sourceRenames maps raw feed headers to canonical column names. Only
// columns that actually exist in the input are renamed.
var sourceRenames = map[string]string{
	"Name":           config.ColBrandName,
	"Spec Score":     config.ColSpecScore,
	"rating":         config.ColRating,
	"price":          config.ColPrice,
	"img":            config.ColImagePreview,
	"tag":            config.ColTag,
	"sim":            config.ColSIMNetwork,
	"processor":      config.ColProcessor,
	"storage":        config.ColStorage,
	"battery":        config.ColBattery,
	"display":        config.ColDisplay,
	"camera":         config.ColCamera,
	"memoryExternal": config.ColMemoryExternal,
	"version":        config.ColOSVersion,
	"fm":             config.ColFMRadio,
}

// textColumns are trimmed and lowercased during standardization. Image
// Preview is deliberately absent so URLs survive intact.
var textColumns = []string{
	config.ColBrandName,
	config.ColTag,
	config.ColSIMNetwork,
	config.ColProcessor,
	config.ColStorage,
	config.ColBattery,
	config.ColDisplay,
	config.ColCamera,
	config.ColMemoryExternal,
	config.ColOSVersion,
}

// numericColumns are coerced to numbers during standardization, with
// unparseable cells filled by the column mean.
var numericColumns = []string{
	config.ColPrice,
	config.ColSpecScore,
	config.ColRating,
}

// preferredOrder is the canonical column arrangement of the final cleaned
// table; columns not listed keep their relative order at the end.
var preferredOrder = []string{
	config.ColBrandName, config.ColSpecScore, config.ColRating, config.ColPrice,
	config.ColTag, config.ColProcessorName, config.ColProcessorType, config.ColProcessorSpeed,
	config.ColRAM, config.ColInternalStorage,
	config.ColBatteryCapacity, config.ColBatteryFeature,
	config.ColSIMType, config.ColExtraFeature,
	config.ColDisplaySize, config.ColDisplayResolution, config.ColDisplayFeature,
	config.ColMemoryExternal, config.ColOSVersion, config.ColCamera, config.ColImagePreview,
}

// RenameColumns renames raw headers to canonical names in place, tolerating
// any subset of recognized columns. Cell values are never touched.
func (p *Preprocessor) RenameColumns(t *dataset.Table) {
	for raw, canonical := range sourceRenames {
		t.RenameColumn(raw, canonical)
	}
}

// InitialClean converts blank-only cells to missing and drops rows missing a
// required field. Only required columns that exist in the input participate
// in the filter.
func (p *Preprocessor) InitialClean(ctx context.Context, t *dataset.Table) *dataset.Table {
	if t.HasColumn(config.ColFMRadio) {
		t.DropColumn(config.ColFMRadio)
	}

	for _, row := range t.Rows {
		for _, col := range t.Columns {
			if v, ok := row.Get(col); ok && strings.TrimSpace(v) == "" {
				row.Delete(col)
			}
		}
	}

	var required []string
	for _, col := range p.required {
		if t.HasColumn(col) {
			required = append(required, col)
		}
	}

	cleaned := t.Filter(func(row dataset.Row) bool {
		for _, col := range required {
			if !row.Has(col) {
				return false
			}
		}
		return true
	})

	p.logger.InfoContext(ctx, "initial cleaning complete",
		slog.Int("rows_in", t.Len()),
		slog.Int("rows_out", cleaned.Len()),
		slog.Any("required_columns", required))

	return cleaned
}

// StandardizeAndFill trims and lowercases the free-text columns and coerces
// the numeric columns, filling unparseable or missing cells with the column
// mean when the column has any usable value at all.
func (p *Preprocessor) StandardizeAndFill(t *dataset.Table) {
	for _, col := range textColumns {
		if !t.HasColumn(col) {
			continue
		}
		for _, row := range t.Rows {
			if v, ok := row.Get(col); ok {
				row.Set(col, strings.ToLower(strings.TrimSpace(v)))
			}
		}
	}

	for _, col := range numericColumns {
		if t.HasColumn(col) {
			fillWithMean(t, col)
		}
	}
}

// fillWithMean replaces missing or unparseable cells of a numeric column
// with the mean of the parseable ones. A column with no parseable value is
// left untouched.
func fillWithMean(t *dataset.Table, col string) {
	var sum float64
	var count int
	for _, row := range t.Rows {
		if v, ok := row.Get(col); ok {
			if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				sum += n
				count++
			}
		}
	}
	if count == 0 {
		return
	}

	mean := strconv.FormatFloat(sum/float64(count), 'f', -1, 64)
	for _, row := range t.Rows {
		v, ok := row.Get(col)
		if !ok {
			row.Set(col, mean)
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			row.Set(col, mean)
		}
	}
}

// SplitCompoundFields runs the six extractors over their columns, replacing
// each compound column with its typed sub-fields, then rearranges columns
// into the canonical order. Extractors only see their own cell; a missing
// cell yields the extractor's defaults.
func (p *Preprocessor) SplitCompoundFields(t *dataset.Table) {
	if t.HasColumn(config.ColProcessor) {
		t.AddColumn(config.ColProcessorName)
		t.AddColumn(config.ColProcessorType)
		t.AddColumn(config.ColProcessorSpeed)
		for _, row := range t.Rows {
			parts := extract.Processor(row.Value(config.ColProcessor))
			setIfPresent(row, config.ColProcessorName, parts.Name)
			setIfPresent(row, config.ColProcessorType, parts.Type)
			setIfPresent(row, config.ColProcessorSpeed, parts.Speed)
		}
		t.DropColumn(config.ColProcessor)
	}

	if t.HasColumn(config.ColSIMNetwork) {
		t.AddColumn(config.ColSIMType)
		t.AddColumn(config.ColExtraFeature)
		for _, row := range t.Rows {
			parts := extract.SIMNetwork(row.Value(config.ColSIMNetwork))
			setIfPresent(row, config.ColSIMType, parts.SIMType)
			setIfPresent(row, config.ColExtraFeature, parts.ExtraFeature)
		}
		t.DropColumn(config.ColSIMNetwork)
	}

	if t.HasColumn(config.ColStorage) {
		t.AddColumn(config.ColRAM)
		t.AddColumn(config.ColInternalStorage)
		for _, row := range t.Rows {
			parts := extract.Storage(row.Value(config.ColStorage))
			setIfPresent(row, config.ColRAM, parts.RAM)
			setIfPresent(row, config.ColInternalStorage, parts.Internal)
		}
		t.DropColumn(config.ColStorage)
	}

	if t.HasColumn(config.ColBattery) {
		t.AddColumn(config.ColBatteryCapacity)
		t.AddColumn(config.ColBatteryFeature)
		for _, row := range t.Rows {
			parts := extract.Battery(row.Value(config.ColBattery))
			setIfPresent(row, config.ColBatteryCapacity, parts.Capacity)
			row.Set(config.ColBatteryFeature, parts.Feature)
		}
		t.DropColumn(config.ColBattery)
	}

	if t.HasColumn(config.ColDisplay) {
		t.AddColumn(config.ColDisplaySize)
		t.AddColumn(config.ColDisplayResolution)
		t.AddColumn(config.ColDisplayFeature)
		for _, row := range t.Rows {
			parts := extract.Display(row.Value(config.ColDisplay))
			setIfPresent(row, config.ColDisplaySize, parts.Size)
			setIfPresent(row, config.ColDisplayResolution, parts.Resolution)
			row.Set(config.ColDisplayFeature, parts.Feature)
		}
		t.DropColumn(config.ColDisplay)
	}

	if t.HasColumn(config.ColMemoryExternal) {
		for _, row := range t.Rows {
			row.Set(config.ColMemoryExternal, extract.MemoryExternal(row.Value(config.ColMemoryExternal)))
		}
	}

	t.Reorder(preferredOrder)
}

func setIfPresent(row dataset.Row, col, val string) {
	if val != "" {
		row.Set(col, val)
	}
}

// Run executes the full preprocessing chain on a raw table and returns the
// final cleaned table. The input table is consumed.
func (p *Preprocessor) Run(ctx context.Context, raw *dataset.Table) *dataset.Table {
	p.RenameColumns(raw)
	cleaned := p.InitialClean(ctx, raw)
	p.StandardizeAndFill(cleaned)
	p.SplitCompoundFields(cleaned)

	p.logger.InfoContext(ctx, "preprocessing complete",
		slog.Int("rows", cleaned.Len()),
		slog.Int("columns", len(cleaned.Columns)))

	return cleaned
}
