package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// BatteryParts is the decomposition of a Battery cell.
type BatteryParts struct {
	Capacity string
	Feature  string
}

var (
	mahPattern  = regexp.MustCompile(`(\d{3,5})\s*mah`)
	wattPattern = regexp.MustCompile(`(\d{1,3})\s*w`)

	fastChargingMarkers = []string{"fast", "quick", "turbo", "super", "warp"}
)

// Battery runs two independent extractions over the same lowercased text:
// the capacity, formatted "<n>mAh" with an optional " <w>W" wattage suffix,
// and the charging feature. A missing cell yields feature "Unknown"; present
// text without a fast-charging marker yields "Standard Charging".
func Battery(cell string) BatteryParts {
	var parts BatteryParts
	if strings.TrimSpace(cell) == "" {
		parts.Feature = "Unknown"
		return parts
	}

	text := strings.ToLower(cell)

	if m := mahPattern.FindStringSubmatch(text); m != nil {
		if w := wattPattern.FindStringSubmatch(text); w != nil {
			parts.Capacity = fmt.Sprintf("%smAh %sW", m[1], w[1])
		} else {
			parts.Capacity = m[1] + "mAh"
		}
	}

	parts.Feature = "Standard Charging"
	for _, marker := range fastChargingMarkers {
		if strings.Contains(text, marker) {
			parts.Feature = "Fast Charging"
			break
		}
	}
	return parts
}
