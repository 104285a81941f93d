package extract

import (
	"regexp"
	"strings"
)

// ProcessorParts is the decomposition of a Processor cell.
type ProcessorParts struct {
	Name  string
	Type  string
	Speed string
}

var (
	ghzToken   = regexp.MustCompile(`(?i)ghz`)
	nonNumeric = regexp.MustCompile(`[^0-9.]`)
	anyDigit   = regexp.MustCompile(`[0-9]`)
)

// Processor splits a compound processor description on commas into at most
// three segments: name, core type and clock speed. Extra commas beyond the
// third segment stay part of the speed segment and are stripped with the
// other non-numeric characters. A recognizable speed is normalized to
// "<n> GHz".
func Processor(cell string) ProcessorParts {
	var parts ProcessorParts
	if strings.TrimSpace(cell) == "" {
		return parts
	}

	segments := strings.SplitN(cell, ",", 3)
	parts.Name = strings.TrimSpace(segments[0])
	if len(segments) > 1 {
		parts.Type = strings.TrimSpace(segments[1])
	}
	if len(segments) > 2 {
		speed := ghzToken.ReplaceAllString(segments[2], "")
		speed = nonNumeric.ReplaceAllString(speed, "")
		if anyDigit.MatchString(speed) {
			parts.Speed = speed + " GHz"
		}
	}
	return parts
}
