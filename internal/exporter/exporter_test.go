package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilecli/pkg/contracts/domain"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999, "999.00"},
		{1000, "1,000.00"},
		{14999, "14,999.00"},
		{14999.5, "14,999.50"},
		{1234567.89, "1,234,567.89"},
		{-14999, "-14,999.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.in))
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "4.30", formatFloat(4.3))
	assert.Equal(t, "81.33", formatFloat(81.33))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "8", formatNumber(8))
	assert.Equal(t, "1.5", formatNumber(1.5))
}

func TestTrendRecords(t *testing.T) {
	rows := []domain.TrendRow{
		{
			BrandFamily: "Samsung",
			SpecScore:   85.5, SpecScoreValid: true,
			Rating: 4.3, RatingValid: true,
			Price: 14999, PriceValid: true,
			PriceRange:      ">=12K(High)",
			ProcessorFamily: "Exynos",
			RAMGB:           8, RAMGBValid: true,
			StorageGB: 128, StorageGBValid: true,
		},
		{BrandFamily: "Unknown", PriceRange: "Unknown", ProcessorFamily: "Unknown"},
	}

	records := TrendRecords(rows)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"Samsung", "85.50", "4.30", "14,999.00", ">=12K(High)", "Exynos", "8", "128"}, records[0])
	assert.Equal(t, []string{"Unknown", "", "", "", "Unknown", "Unknown", "", ""}, records[1])
}

func TestWriteTrends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "trends.csv")
	w := NewCSVWriter()

	err := w.WriteTrends(path, []domain.TrendRow{
		{BrandFamily: "Vivo", SpecScore: 72.4, SpecScoreValid: true, PriceRange: "6K-8K(Mid)", ProcessorFamily: "Dimensity"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xef\xbb\xbf"), "expected UTF-8 BOM prefix")
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(content, "\xef\xbb\xbf")), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Brand Family,Spec Score,Rating,Price,Price Range,Processor Family,RAM_GB,Storage_GB", lines[0])
	assert.Equal(t, `Vivo,72.40,,,6K-8K(Mid),Dimensity,,`, lines[1])
}

func TestWriteCSV_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	w := NewCSVWriter()

	require.NoError(t, w.WriteSimpleCSV(path, []string{"a", "b"}, [][]string{{"1", "2"}}))
	require.NoError(t, w.WriteCSV(path, WriteOptions{Records: [][]string{{"3", "4"}}, Append: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(data), "\xef\xbb\xbf")), "\n")
	assert.Equal(t, []string{"a,b", "1,2", "3,4"}, lines)
}
