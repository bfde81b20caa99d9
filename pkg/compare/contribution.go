package compare

// CalculateContribution computes each row's share of the column total for
// every tracked field. Totals are aggregated over the raw input values in
// a first pass; a second pass writes {v}_contribution = value/total*100
// for every row (0 when the total is 0). Because totals come from the raw
// fields only, re-running the operation over its own output under a
// different field name reproduces the same shares. Row order and count
// are unchanged.
func CalculateContribution(data Dataset, valueKeys []string) (Dataset, error) {
	if err := requireKeys("calculate contribution", "value keys", valueKeys); err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(valueKeys))
	for _, row := range data {
		for _, v := range valueKeys {
			totals[v] += row.Number(v)
		}
	}

	out := make(Dataset, 0, len(data))
	for _, row := range data {
		r := row.Clone()
		for _, v := range valueKeys {
			r.Set(v+"_contribution", safeRatio(row.Number(v), totals[v])*100)
		}
		out = append(out, r)
	}
	return out, nil
}
