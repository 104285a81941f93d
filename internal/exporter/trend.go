package exporter

import (
	"mobilecli/internal/config"
	"mobilecli/pkg/contracts/domain"
)

// TrendHeaders is the column order of trend CSV files.
func TrendHeaders() []string {
	return []string{
		config.ColBrandFamily,
		config.ColSpecScore,
		config.ColRating,
		config.ColPrice,
		config.ColPriceRange,
		config.ColProcessorFamily,
		config.ColRAMGB,
		config.ColStorageGB,
	}
}

// TrendRecords renders trend rows for CSV output. Spec Score and Rating are
// fixed to 2 decimal places, prices carry a thousands separator, and missing
// numeric aggregates render as empty strings.
func TrendRecords(rows []domain.TrendRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := []string{
			row.BrandFamily,
			validOr(row.SpecScoreValid, formatFloat(row.SpecScore)),
			validOr(row.RatingValid, formatFloat(row.Rating)),
			validOr(row.PriceValid, formatPrice(row.Price)),
			row.PriceRange,
			row.ProcessorFamily,
			validOr(row.RAMGBValid, formatNumber(row.RAMGB)),
			validOr(row.StorageGBValid, formatNumber(row.StorageGB)),
		}
		records = append(records, record)
	}
	return records
}

func validOr(valid bool, rendered string) string {
	if !valid {
		return ""
	}
	return rendered
}

// WriteTrends writes aggregated trend rows to a CSV file.
func (w *CSVWriter) WriteTrends(fullPath string, rows []domain.TrendRow) error {
	return w.WriteSimpleCSV(fullPath, TrendHeaders(), TrendRecords(rows))
}
