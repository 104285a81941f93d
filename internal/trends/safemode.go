package trends

// Mode returns the most frequent value in an ordered sequence, ignoring
// empty strings. Ties break toward the value that was seen first; the
// second result is false when no non-empty value exists.
func Mode(values []string) (string, bool) {
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	var best string
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount > 0
}

// ModeFloat is Mode over numeric values. The caller passes only the values
// that were actually present.
func ModeFloat(values []float64) (float64, bool) {
	counts := make(map[float64]int, len(values))
	var order []float64
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	var best float64
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount > 0
}
