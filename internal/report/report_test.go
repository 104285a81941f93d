package report

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mobilecli/internal/config"
	"mobilecli/internal/dataset"
	"mobilecli/pkg/contracts/domain"
)

func newTestReporter() *Reporter {
	return NewReporter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestValueCounts(t *testing.T) {
	tbl := dataset.New("Brand Family")
	for _, v := range []string{"Vivo", "Samsung", "Vivo", "Oppo", "Samsung", "Vivo"} {
		row := dataset.Row{}
		row.Set("Brand Family", v)
		tbl.Append(row)
	}

	labels, counts := valueCounts(tbl, "Brand Family")

	assert.Equal(t, []string{"Vivo", "Samsung", "Oppo"}, labels)
	assert.Equal(t, []int{3, 2, 1}, counts)
}

func TestValueCounts_TieKeepsFirstSeen(t *testing.T) {
	tbl := dataset.New("c")
	for _, v := range []string{"b", "a", "b", "a"} {
		row := dataset.Row{}
		row.Set("c", v)
		tbl.Append(row)
	}

	labels, _ := valueCounts(tbl, "c")
	assert.Equal(t, []string{"b", "a"}, labels)
}

func TestHistogram(t *testing.T) {
	labels, counts := histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}, 10)

	require.Len(t, labels, 10)
	require.Len(t, counts, 10)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, "0 - 1", labels[0])
	assert.Equal(t, 1, counts[9], "max value lands in the last bin")
}

func TestHistogram_AllEqual(t *testing.T) {
	labels, counts := histogram([]float64{5, 5, 5}, 10)
	assert.Equal(t, []string{"5"}, labels)
	assert.Equal(t, []int{3}, counts)
}

func segmentFixture() *dataset.Table {
	tbl := dataset.New(
		config.ColBrandName, config.ColSpecScore, config.ColRating, config.ColPrice,
		config.ColBrandFamily, config.ColProcessorFamily,
		config.ColRAM, config.ColInternalStorage,
		config.ColBatteryCapacityRange, config.ColDisplaySizeRange,
	)
	rows := []map[string]string{
		{
			config.ColBrandName: "vivo y200", config.ColSpecScore: "74", config.ColRating: "4.2",
			config.ColPrice: "13999", config.ColBrandFamily: "Vivo", config.ColProcessorFamily: "Dimensity",
			config.ColRAM: "8 gb ram", config.ColInternalStorage: "128 gb inbuilt",
			config.ColBatteryCapacityRange: "Very High (>=5000mAh)",
			config.ColDisplaySizeRange:     "6 to 7 inch",
		},
		{
			config.ColBrandName: "samsung m35", config.ColSpecScore: "81", config.ColRating: "4.4",
			config.ColPrice: "16999", config.ColBrandFamily: "Samsung", config.ColProcessorFamily: "Exynos",
			config.ColRAM: "6 gb ram", config.ColInternalStorage: "128 gb inbuilt",
			config.ColBatteryCapacityRange: "Very High (>=5000mAh)",
			config.ColDisplaySizeRange:     "6 to 7 inch",
		},
	}
	for _, r := range rows {
		row := dataset.Row{}
		for k, v := range r {
			row.Set(k, v)
		}
		tbl.Append(row)
	}
	return tbl
}

func TestWriteSegmentReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "launched_report.xlsx")
	trendRows := []domain.TrendRow{
		{BrandFamily: "Samsung", SpecScore: 81, SpecScoreValid: true, PriceRange: ">=12K(High)", ProcessorFamily: "Exynos"},
		{BrandFamily: "Vivo", SpecScore: 74, SpecScoreValid: true, PriceRange: ">=12K(High)", ProcessorFamily: "Dimensity"},
	}

	err := newTestReporter().WriteSegmentReport(context.Background(), path, segmentFixture(), trendRows, false)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Data")
	assert.Contains(t, sheets, "Spec Score Distribution")
	assert.Contains(t, sheets, "Brand Family Counts")
	assert.Contains(t, sheets, "Brand Trends")
	assert.NotContains(t, sheets, "Display Size Range Counts",
		"display size counts belong to the upcoming report only")

	got, err := f.GetCellValue("Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, config.ColBrandName, got)

	family, err := f.GetCellValue("Brand Trends", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Samsung", family)
}

func TestWriteSegmentReport_UpcomingIncludesDisplaySizeCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "upcoming_report.xlsx")
	trendRows := []domain.TrendRow{
		{BrandFamily: "Vivo", SpecScore: 74, SpecScoreValid: true, PriceRange: ">=12K(High)", ProcessorFamily: "Dimensity"},
	}

	err := newTestReporter().WriteSegmentReport(context.Background(), path, segmentFixture(), trendRows, true)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Display Size Range Counts")
	assert.Contains(t, sheets, "Brand Trends")

	label, err := f.GetCellValue("Display Size Range Counts", "A2")
	require.NoError(t, err)
	assert.Equal(t, "6 to 7 inch", label)
}

func TestWriteSegmentReport_EmptySegment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty_report.xlsx")
	empty := dataset.New(config.ColBrandName, config.ColSpecScore)

	// Charts cannot be built from an empty segment, but the workbook still
	// gets written with its data sheet.
	err := newTestReporter().WriteSegmentReport(context.Background(), path, empty, nil, false)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Data")
}
