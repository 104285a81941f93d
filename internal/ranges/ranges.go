// Package ranges buckets already-extracted continuous fields into fixed
// human-readable bins. Binners never fail; text without a usable number maps
// to the "Unknown" bucket and prices without a usable value to a missing
// label.
package ranges

import (
	"regexp"
	"strconv"

	"mobilecli/pkg/contracts/domain"
)

// Display size range labels.
const (
	DisplayLessThan5 = "Less than 5 inch"
	Display5To6      = "5 to 6 inch"
	Display6To7      = "6 to 7 inch"
	DisplayMoreThan7 = "More than 7 inch"
)

// Battery capacity range labels.
const (
	BatteryLow      = "Low (<3000mAh)"
	BatteryMedium   = "Medium (3000 to 4000mAh)"
	BatteryHigh     = "High (4000 to 5000mAh)"
	BatteryVeryHigh = "Very High (>=5000mAh)"
)

// Price range labels. The top bucket is open-ended.
const (
	Price0To2K   = "0-2K(Low)"
	Price2To4K   = "2K-4K(Low)"
	Price4To6K   = "4K-6K(Mid)"
	Price6To8K   = "6K-8K(Mid)"
	Price8To12K  = "8K-12K(High)"
	PriceOver12K = ">=12K(High)"
)

var (
	firstNumber  = regexp.MustCompile(`\d+\.?\d*`)
	firstInt3to5 = regexp.MustCompile(`\d{3,5}`)
)

// FirstNumber parses the first decimal number occurring anywhere in text.
func FirstNumber(text string) (float64, bool) {
	m := firstNumber.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DisplaySize buckets an extracted display-size text. Boundary sizes belong
// to the upper bucket: 5.0 is "5 to 6 inch", 6.0 is "6 to 7 inch", 7.0 is
// "More than 7 inch".
func DisplaySize(text string) string {
	size, ok := FirstNumber(text)
	if !ok {
		return domain.UnknownLabel
	}
	switch {
	case size < 5.0:
		return DisplayLessThan5
	case size < 6.0:
		return Display5To6
	case size < 7.0:
		return Display6To7
	default:
		return DisplayMoreThan7
	}
}

// BatteryCapacity buckets an extracted battery-capacity text using the first
// 3-5 digit integer it contains.
func BatteryCapacity(text string) string {
	m := firstInt3to5.FindString(text)
	if m == "" {
		return domain.UnknownLabel
	}
	capacity, err := strconv.Atoi(m)
	if err != nil {
		return domain.UnknownLabel
	}
	switch {
	case capacity < 3000:
		return BatteryLow
	case capacity < 4000:
		return BatteryMedium
	case capacity < 5000:
		return BatteryHigh
	default:
		return BatteryVeryHigh
	}
}

// Price buckets a numeric price into one of six fixed non-negative bins,
// lower bound inclusive. Negative prices have no bucket and yield the empty
// label.
func Price(price float64) string {
	switch {
	case price < 0:
		return ""
	case price < 2000:
		return Price0To2K
	case price < 4000:
		return Price2To4K
	case price < 6000:
		return Price4To6K
	case price < 8000:
		return Price6To8K
	case price < 12000:
		return Price8To12K
	default:
		return PriceOver12K
	}
}
