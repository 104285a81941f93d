package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"mobilecli/internal/errors"
)

// ReadExcel loads the catalog table from an Excel workbook. The sheet is
// discovered by looking for one whose first row contains a recognizable
// header; failing that, the first non-empty sheet is used.
func ReadExcel(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("input file %s", path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	rows, sheetName := findCatalogSheet(f)
	if rows == nil {
		return nil, errors.NewParsingError("could not find a catalog sheet in workbook", nil).WithContext("path", path)
	}

	slog.Info("Found catalog data in sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	header := rows[0]
	table := New(header...)
	for _, record := range rows[1:] {
		// Skip rows with no content at all
		empty := true
		for _, cell := range record {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) && record[i] != "" {
				row.Set(col, record[i])
			}
		}
		table.Append(row)
	}

	return table, nil
}

// findCatalogSheet returns the rows of the sheet holding the catalog. A sheet
// qualifies when its first row mentions a name and a price column; otherwise
// the first sheet with more than one row wins.
func findCatalogSheet(f *excelize.File) ([][]string, string) {
	var fallbackRows [][]string
	var fallbackName string

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 2 {
			continue
		}

		headerText := strings.ToLower(strings.Join(rows[0], " "))
		if strings.Contains(headerText, "name") && strings.Contains(headerText, "price") {
			return rows, name
		}
		if fallbackRows == nil {
			fallbackRows = rows
			fallbackName = name
		}
	}

	return fallbackRows, fallbackName
}
