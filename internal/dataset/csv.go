package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mobilecli/internal/errors"
)

// ReadCSV loads a delimited table with a header row. Empty cells become
// missing values. A structurally absent file is a not-found condition.
func ReadCSV(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("input file %s", path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open CSV file", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV file", err).WithContext("path", path)
	}
	if len(records) == 0 {
		return nil, errors.NewParsingError("CSV file has no header row", nil).WithContext("path", path)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	table := New(header...)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) && record[i] != "" {
				row.Set(col, record[i])
			}
		}
		table.Append(row)
	}

	slog.Debug("Loaded CSV file",
		slog.String("path", path),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", table.Len()))

	return table, nil
}

// WriteCSV persists the table with a header row. Missing cells are written as
// empty fields. A UTF-8 BOM is prefixed for Excel compatibility, as every
// artifact may be opened by the analyst directly.
func WriteCSV(path string, t *Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewStorageError("failed to create directory", err).WithContext("dir", dir)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err).WithContext("path", path)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return errors.NewStorageError("failed to write BOM", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(t.Columns); err != nil {
		return errors.NewStorageError("failed to write CSV header", err)
	}

	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		for j, col := range t.Columns {
			record[j] = row.Value(col)
		}
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write CSV record %d", i), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV writer", err)
	}

	slog.Info("Wrote CSV file",
		slog.String("path", path),
		slog.Int("rows", t.Len()))

	return nil
}
