package compare

// VarianceAnalysis computes actual-vs-planned variance per value field
// using the same column-group prefix pattern as Compare: actual reads
// "{actualKey}_{v}" and planned reads "{plannedKey}_{v}". For every value
// field v it writes {v}_variance (actual - planned), {v}_variance_pct
// (0 when planned is 0) and {v}_favorable (true when actual >= planned).
// Original fields, row count and row order are preserved.
func VarianceAnalysis(data Dataset, actualKey, plannedKey string, valueKeys []string) (Dataset, error) {
	if err := requireKey("variance analysis", "actual key", actualKey); err != nil {
		return nil, err
	}
	if err := requireKey("variance analysis", "planned key", plannedKey); err != nil {
		return nil, err
	}
	if err := requireKeys("variance analysis", "value keys", valueKeys); err != nil {
		return nil, err
	}

	out := make(Dataset, 0, len(data))
	for _, row := range data {
		r := row.Clone()
		for _, v := range valueKeys {
			actual := row.Number(actualKey + "_" + v)
			planned := row.Number(plannedKey + "_" + v)

			r.Set(v+"_variance", actual-planned)
			r.Set(v+"_variance_pct", percentChange(actual, planned))
			r.Set(v+"_favorable", actual >= planned)
		}
		out = append(out, r)
	}
	return out, nil
}
