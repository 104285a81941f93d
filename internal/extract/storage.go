package extract

import (
	"strings"
)

// StorageParts is the decomposition of a Storage cell.
type StorageParts struct {
	RAM      string
	Internal string
}

// Storage splits a storage description on the first comma into RAM and
// internal storage, both trimmed and lowercased. Without a comma the whole
// cell is RAM and internal storage stays missing.
func Storage(cell string) StorageParts {
	var parts StorageParts

	segments := strings.SplitN(cell, ",", 2)
	parts.RAM = strings.ToLower(strings.TrimSpace(segments[0]))
	if len(segments) > 1 {
		parts.Internal = strings.ToLower(strings.TrimSpace(segments[1]))
	}
	return parts
}
