package exporter

import (
	"fmt"
	"strconv"
	"strings"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal
// places, so values like 4.3 appear as 4.30.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatPrice renders a price with a thousands separator and 2 decimal
// places, e.g. 14999 becomes "14,999.00".
func formatPrice(f float64) string {
	s := fmt.Sprintf("%.2f", f)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// formatNumber renders a float with no trailing zeros, so 8.0 stays "8" and
// 1.5 stays "1.5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
