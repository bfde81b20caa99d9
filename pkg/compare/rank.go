package compare

import "sort"

// RankComparison ranks every row by valueKey, descending. Unlike the other
// operations, THE OUTPUT IS REORDERED: rows are emitted in the sorted
// order, not the input order, so output position i does not correspond to
// input position i. Ties keep their relative input order (stable sort).
//
// Rank is the 1-based position in the sorted output; percentile is
// (n-rank+1)/n*100, so the top row sits at the 100th percentile. Fields
// written: {valueKey}_rank and {valueKey}_percentile.
func RankComparison(data Dataset, valueKey string) (Dataset, error) {
	if err := requireKey("rank comparison", "value key", valueKey); err != nil {
		return nil, err
	}
	return rankRows(data, valueKey, valueKey+"_rank", valueKey+"_percentile"), nil
}

// RankComparisonByGroup ranks rows independently within each group formed
// by the stringified groupKey, writing {valueKey}_rank_in_group and
// {valueKey}_percentile_in_group with percentiles relative to the group
// size. Groups are processed in first-seen order; rows within a group come
// out in that group's descending sorted order, and the output is the
// concatenation of the groups. As with RankComparison, the output does not
// preserve input row order.
func RankComparisonByGroup(data Dataset, valueKey, groupKey string) (Dataset, error) {
	if err := requireKey("rank comparison", "value key", valueKey); err != nil {
		return nil, err
	}
	if err := requireKey("rank comparison", "group key", groupKey); err != nil {
		return nil, err
	}

	var groupOrder []string
	groups := make(map[string]Dataset)
	for _, row := range data {
		g := row.Key(groupKey)
		if _, ok := groups[g]; !ok {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], row)
	}

	out := make(Dataset, 0, len(data))
	for _, g := range groupOrder {
		ranked := rankRows(groups[g], valueKey, valueKey+"_rank_in_group", valueKey+"_percentile_in_group")
		out = append(out, ranked...)
	}
	return out, nil
}

// rankRows sorts a copy of the rows descending by valueKey and annotates
// each with its 1-based rank and percentile under the given field names.
func rankRows(data Dataset, valueKey, rankField, percentileField string) Dataset {
	sorted := make(Dataset, len(data))
	copy(sorted, data)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number(valueKey) > sorted[j].Number(valueKey)
	})

	n := len(sorted)
	out := make(Dataset, 0, n)
	for i, row := range sorted {
		rank := i + 1
		r := row.Clone()
		r.Set(rankField, rank)
		r.Set(percentileField, float64(n-rank+1)/float64(n)*100)
		out = append(out, r)
	}
	return out
}
