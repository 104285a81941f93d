package dataset

import (
	"path/filepath"
	"strings"
)

// Load reads a raw catalog table from path, dispatching on the file
// extension: .xlsx/.xlsm workbooks go through the Excel reader, everything
// else is treated as delimited text.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadExcel(path)
	default:
		return ReadCSV(path)
	}
}
