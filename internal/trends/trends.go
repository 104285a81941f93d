// Package trends aggregates an enriched segment into one summary row per
// brand family: means over the numeric columns and safe-mode picks over the
// categorical ones.
package trends

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"mobilecli/internal/config"
	"mobilecli/internal/dataset"
	"mobilecli/internal/ranges"
	"mobilecli/pkg/contracts/domain"
)

// Aggregator groups enriched segment tables by brand family.
type Aggregator struct {
	logger *slog.Logger
}

func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// group accumulates one brand family's rows in input order. Ordered slices
// matter: the safe-mode tie-break is first-seen.
type group struct {
	specSum, ratingSum, priceSum       float64
	specCount, ratingCount, priceCount int

	priceRanges []string
	procFams    []string
	rams        []float64
	storages    []float64
}

// Aggregate produces one TrendRow per distinct brand family, with rows
// lacking a family collected under Unknown. Rows are ordered by mean Spec
// Score descending, families without a usable Spec Score last. The numeric
// aggregates are rounded to 2 decimal places.
func (a *Aggregator) Aggregate(ctx context.Context, t *dataset.Table) []domain.TrendRow {
	groups := make(map[string]*group)

	for _, row := range t.Rows {
		family := row.Value(config.ColBrandFamily)
		if family == "" {
			family = domain.UnknownLabel
		}
		g := groups[family]
		if g == nil {
			g = &group{}
			groups[family] = g
		}

		if v, ok := parseNumber(row.Value(config.ColSpecScore)); ok {
			g.specSum += v
			g.specCount++
		}
		if v, ok := parseNumber(row.Value(config.ColRating)); ok {
			g.ratingSum += v
			g.ratingCount++
		}
		if v, ok := parseNumber(row.Value(config.ColPrice)); ok {
			g.priceSum += v
			g.priceCount++
			if label := ranges.Price(v); label != "" {
				g.priceRanges = append(g.priceRanges, label)
			}
		}

		if fam := row.Value(config.ColProcessorFamily); fam != "" {
			g.procFams = append(g.procFams, fam)
		}
		if v, ok := ranges.FirstNumber(row.Value(config.ColRAM)); ok {
			g.rams = append(g.rams, v)
		}
		if v, ok := ranges.FirstNumber(row.Value(config.ColInternalStorage)); ok {
			g.storages = append(g.storages, v)
		}
	}

	families := make([]string, 0, len(groups))
	for family := range groups {
		families = append(families, family)
	}
	sort.Strings(families)

	rows := make([]domain.TrendRow, 0, len(families))
	for _, family := range families {
		g := groups[family]
		out := domain.TrendRow{BrandFamily: family}

		if g.specCount > 0 {
			out.SpecScore = round2(g.specSum / float64(g.specCount))
			out.SpecScoreValid = true
		}
		if g.ratingCount > 0 {
			out.Rating = round2(g.ratingSum / float64(g.ratingCount))
			out.RatingValid = true
		}
		if g.priceCount > 0 {
			out.Price = round2(g.priceSum / float64(g.priceCount))
			out.PriceValid = true
		}

		out.PriceRange = modeOrUnknown(g.priceRanges)
		out.ProcessorFamily = modeOrUnknown(g.procFams)
		if v, ok := ModeFloat(g.rams); ok {
			out.RAMGB = round2(v)
			out.RAMGBValid = true
		}
		if v, ok := ModeFloat(g.storages); ok {
			out.StorageGB = round2(v)
			out.StorageGBValid = true
		}

		rows = append(rows, out)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].SpecScoreValid != rows[j].SpecScoreValid {
			return rows[i].SpecScoreValid
		}
		return rows[i].SpecScore > rows[j].SpecScore
	})

	a.logger.InfoContext(ctx, "trend aggregation complete",
		slog.Int("input_rows", t.Len()),
		slog.Int("brand_families", len(rows)))

	return rows
}

// TopN returns the first n trend rows, or all of them when fewer exist.
func TopN(rows []domain.TrendRow, n int) []domain.TrendRow {
	if n < 0 {
		n = 0
	}
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]domain.TrendRow, n)
	copy(out, rows[:n])
	return out
}

func modeOrUnknown(values []string) string {
	if v, ok := Mode(values); ok {
		return v
	}
	return domain.UnknownLabel
}

func parseNumber(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
