package extract

import (
	"strings"
)

// MemoryExternal normalizes an external-memory support flag. Affirmative
// spellings map to "supported", negative ones to "not supported", and the
// usual placeholder spellings (or a blank cell) to "unknown". Anything else
// passes through trimmed and lowercased.
func MemoryExternal(cell string) string {
	v := strings.ToLower(strings.TrimSpace(cell))
	switch v {
	case "yes", "y", "true":
		return "supported"
	case "no", "n", "false":
		return "not supported"
	case "", "nan", "none", "unknown":
		return "unknown"
	default:
		return v
	}
}
