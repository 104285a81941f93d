package preprocess

import (
	"context"
	"log/slog"
	"strings"

	"mobilecli/internal/classify"
	"mobilecli/internal/config"
	"mobilecli/internal/dataset"
	"mobilecli/internal/ranges"
	"mobilecli/pkg/contracts/domain"
)

// SegmentVocab carries the classification vocabularies for one market
// segment. Order matters: the first matching family wins.
type SegmentVocab struct {
	Brands     []string
	Processors []string
}

// LaunchedVocab is the vocabulary pair applied to the launched segment.
func LaunchedVocab() SegmentVocab {
	return SegmentVocab{
		Brands:     classify.LaunchedBrandFamilies(),
		Processors: classify.LaunchedProcessorFamilies(),
	}
}

// UpcomingVocab is the vocabulary pair applied to the upcoming/rumored
// segment, which tracks a wider brand and chipset universe.
func UpcomingVocab() SegmentVocab {
	return SegmentVocab{
		Brands:     classify.UpcomingBrandFamilies(),
		Processors: classify.UpcomingProcessorFamilies(),
	}
}

// Segment partitions a cleaned table by its Tag column into the launched
// and the upcoming/rumored segments. Rows whose tag matches neither bucket
// are dropped. A table with no Tag column yields two empty segments.
func (p *Preprocessor) Segment(ctx context.Context, t *dataset.Table) (launched, upcoming *dataset.Table) {
	if !t.HasColumn(config.ColTag) {
		p.logger.WarnContext(ctx, "tag column missing, segments will be empty")
		empty := dataset.New(t.Columns...)
		return empty, empty.Clone()
	}

	launched = t.Filter(func(row dataset.Row) bool {
		return normalizeTag(row.Value(config.ColTag)) == domain.TagLaunched
	})
	upcoming = t.Filter(func(row dataset.Row) bool {
		tag := normalizeTag(row.Value(config.ColTag))
		return tag == domain.TagUpcoming || tag == domain.TagRumored
	})

	p.logger.InfoContext(ctx, "segmentation complete",
		slog.Int("launched", launched.Len()),
		slog.Int("upcoming_rumored", upcoming.Len()))

	return launched, upcoming
}

func normalizeTag(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// EnrichSegment drops rows missing a segment-critical field, then derives
// the Brand Family, Processor Family, Display Size Range and Battery
// Capacity Range columns. Classification is a first-match substring scan
// over the segment vocabulary with an Unknown fallback.
func (p *Preprocessor) EnrichSegment(ctx context.Context, t *dataset.Table, vocab SegmentVocab) *dataset.Table {
	var required []string
	for _, col := range config.SegmentRequiredColumns() {
		if t.HasColumn(col) {
			required = append(required, col)
		}
	}

	enriched := t.Filter(func(row dataset.Row) bool {
		for _, col := range required {
			if !row.Has(col) {
				return false
			}
		}
		return true
	})

	enriched.AddColumn(config.ColBrandFamily)
	enriched.AddColumn(config.ColProcessorFamily)
	enriched.AddColumn(config.ColDisplaySizeRange)
	enriched.AddColumn(config.ColBatteryCapacityRange)

	for _, row := range enriched.Rows {
		row.Set(config.ColBrandFamily, classify.FirstMatch(row.Value(config.ColBrandName), vocab.Brands))
		row.Set(config.ColProcessorFamily, classify.FirstMatch(row.Value(config.ColProcessorName), vocab.Processors))
		row.Set(config.ColDisplaySizeRange, ranges.DisplaySize(row.Value(config.ColDisplaySize)))
		row.Set(config.ColBatteryCapacityRange, ranges.BatteryCapacity(row.Value(config.ColBatteryCapacity)))
	}

	p.logger.InfoContext(ctx, "segment enrichment complete",
		slog.Int("rows_in", t.Len()),
		slog.Int("rows_out", enriched.Len()))

	return enriched
}
