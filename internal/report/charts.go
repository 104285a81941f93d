package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mobilecli/internal/config"
	"mobilecli/internal/dataset"
	"mobilecli/pkg/contracts/domain"
)

const histogramBins = 10

// addHistogramSheet writes a binned distribution of a numeric column and a
// column chart over it.
func (r *Reporter) addHistogramSheet(f *excelize.File, t *dataset.Table, col string) error {
	var values []float64
	for _, raw := range t.ColumnValues(col) {
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			values = append(values, n)
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("column %q has no numeric values", col)
	}

	labels, counts := histogram(values, histogramBins)
	sheet := sheetName(col, "Distribution")
	if err := writeCountBlock(f, sheet, col, labels, counts); err != nil {
		return err
	}
	return addColumnChart(f, sheet, col+" Distribution", len(labels))
}

// addCountSheet writes the value counts of a categorical column and a
// column chart over them.
func (r *Reporter) addCountSheet(f *excelize.File, t *dataset.Table, col string) error {
	labels, counts := valueCounts(t, col)
	if len(labels) == 0 {
		return fmt.Errorf("column %q has no values", col)
	}

	sheet := sheetName(col, "Counts")
	if err := writeCountBlock(f, sheet, col, labels, counts); err != nil {
		return err
	}
	return addColumnChart(f, sheet, col+" Counts", len(labels))
}

// addTrendSheet writes the aggregated trend rows and, when asked for, a
// line chart of mean spec score per brand family.
func (r *Reporter) addTrendSheet(f *excelize.File, rows []domain.TrendRow, chart bool) error {
	const sheet = "Brand Trends"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{
		config.ColBrandFamily, config.ColSpecScore, config.ColRating, config.ColPrice,
		config.ColPriceRange, config.ColProcessorFamily, config.ColRAMGB, config.ColStorageGB,
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cells := []interface{}{
			row.BrandFamily,
			optional(row.SpecScore, row.SpecScoreValid),
			optional(row.Rating, row.RatingValid),
			optional(row.Price, row.PriceValid),
			row.PriceRange,
			row.ProcessorFamily,
			optional(row.RAMGB, row.RAMGBValid),
			optional(row.StorageGB, row.StorageGBValid),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	if !chart {
		return nil
	}
	return f.AddChart(sheet, "J2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", quoteSheet(sheet)),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", quoteSheet(sheet), len(rows)+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", quoteSheet(sheet), len(rows)+1),
		}},
		Title: []excelize.RichTextRun{{Text: "Mean Spec Score by Brand Family"}},
	})
}

func optional(v float64, valid bool) interface{} {
	if !valid {
		return nil
	}
	return v
}

// writeCountBlock writes a label/count table into columns A and B.
func writeCountBlock(f *excelize.File, sheet, label string, labels []string, counts []int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{label, "Count"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range labels {
		cells := []interface{}{labels[i], counts[i]}
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

func addColumnChart(f *excelize.File, sheet, title string, n int) error {
	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", quoteSheet(sheet)),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", quoteSheet(sheet), n+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", quoteSheet(sheet), n+1),
		}},
		Title: []excelize.RichTextRun{{Text: title}},
	})
}

func quoteSheet(sheet string) string {
	if strings.ContainsAny(sheet, " -") {
		return "'" + sheet + "'"
	}
	return sheet
}

// valueCounts tallies the present values of a column, ordered by frequency
// descending with first-seen tie-break.
func valueCounts(t *dataset.Table, col string) ([]string, []int) {
	counts := make(map[string]int)
	var order []string
	for _, v := range t.ColumnValues(col) {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	labels := make([]string, len(order))
	copy(labels, order)
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(labels, func(i, j int) bool {
		return counts[labels[i]] > counts[labels[j]]
	})

	out := make([]int, len(labels))
	for i, l := range labels {
		out[i] = counts[l]
	}
	return labels, out
}

// histogram buckets values into equal-width bins between the observed min
// and max. All-equal input collapses to a single bin.
func histogram(values []float64, bins int) ([]string, []int) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []string{formatBound(lo)}, []int{len(values)}
	}

	width := (hi - lo) / float64(bins)
	labels := make([]string, bins)
	counts := make([]int, bins)
	for i := 0; i < bins; i++ {
		labels[i] = formatBound(lo+float64(i)*width) + " - " + formatBound(lo+float64(i+1)*width)
	}
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return labels, counts
}

func formatBound(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
