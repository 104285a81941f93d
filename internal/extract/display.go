package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// DisplayParts is the decomposition of a Display cell.
type DisplayParts struct {
	Size       string
	Resolution string
	Feature    string
}

var (
	inchPattern = regexp.MustCompile(`(\d+(\.\d+)?)\s*inch`)
	resPattern  = regexp.MustCompile(`(\d{3,4})\s*[x×]\s*(\d{3,4})\s*(?:px)?`)
	hzPattern   = regexp.MustCompile(`(\d{2,3})\s*hz`)
)

// Display extracts the panel size ("<n> inch"), the resolution ("<w>x<h>",
// with a ", <n> Hz" refresh-rate suffix when one is present, or the refresh
// rate alone when no resolution matched) and the punch-hole feature from a
// lowercased display description.
func Display(cell string) DisplayParts {
	var parts DisplayParts
	text := strings.ToLower(cell)

	if m := inchPattern.FindStringSubmatch(text); m != nil {
		parts.Size = m[1] + " inch"
	}

	if m := resPattern.FindStringSubmatch(text); m != nil {
		parts.Resolution = fmt.Sprintf("%sx%s", m[1], m[2])
	}
	if m := hzPattern.FindStringSubmatch(text); m != nil {
		hz := m[1] + " Hz"
		if parts.Resolution != "" {
			parts.Resolution = parts.Resolution + ", " + hz
		} else {
			parts.Resolution = hz
		}
	}

	if strings.Contains(text, "punch hole") {
		parts.Feature = "with punch hole"
	} else {
		parts.Feature = "no punch hole"
	}
	return parts
}
