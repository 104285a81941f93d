package extract

import (
	"strings"
)

// SIMParts is the decomposition of a SIM / Network cell.
type SIMParts struct {
	SIMType      string
	ExtraFeature string
}

// SIMNetwork tokenizes a SIM/network description on commas. Everything up to
// and including the "volte" token is the SIM type; tokens after it are the
// extra feature. Without a "volte" token the whole list is the SIM type.
func SIMNetwork(cell string) SIMParts {
	var parts SIMParts

	var tokens []string
	for _, tok := range strings.Split(cell, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return parts
	}

	volteIdx := -1
	for i, tok := range tokens {
		if tok == "volte" {
			volteIdx = i
			break
		}
	}

	if volteIdx >= 0 {
		parts.SIMType = strings.Join(tokens[:volteIdx+1], ", ")
		parts.ExtraFeature = strings.Join(tokens[volteIdx+1:], ", ")
	} else {
		parts.SIMType = strings.Join(tokens, ", ")
	}
	return parts
}
