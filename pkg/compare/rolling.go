package compare

// RollingComparison computes a trailing moving average of valueKey and
// each point's deviation from it. The window for index i spans
// data[max(0, i-window+1) .. i] inclusive: left-clamped, so early points
// average over fewer than window values rather than being padded with
// zeros, and never looking ahead.
//
// For every row it writes {compareField}_rolling_avg,
// {compareField}_vs_rolling (current - average) and
// {compareField}_vs_rolling_pct (0 when the average is 0). Original
// fields, row count and row order are preserved. A window below 1 is an
// invalid configuration.
func RollingComparison(data Dataset, valueKey string, window int, compareField string) (Dataset, error) {
	if err := requireKey("rolling comparison", "value key", valueKey); err != nil {
		return nil, err
	}
	if err := requireKey("rolling comparison", "compare field", compareField); err != nil {
		return nil, err
	}
	if window < 1 {
		return nil, NewInvalidConfig("rolling comparison: window must be at least 1", window)
	}

	out := make(Dataset, 0, len(data))
	for i, row := range data {
		start := i - window + 1
		if start < 0 {
			start = 0
		}

		var sum float64
		for j := start; j <= i; j++ {
			sum += data[j].Number(valueKey)
		}
		avg := sum / float64(i-start+1)
		current := row.Number(valueKey)

		r := row.Clone()
		r.Set(compareField+"_rolling_avg", avg)
		r.Set(compareField+"_vs_rolling", current-avg)
		r.Set(compareField+"_vs_rolling_pct", percentChange(current, avg))
		out = append(out, r)
	}
	return out, nil
}
