package compare

import (
	"fmt"
	"sort"
)

// CohortAnalysis pivots (cohort, period, value) triples into a cohort by
// period matrix with period-over-previous-period retention ratios.
//
// Rows are grouped by stringified cohort key; within a cohort, the last
// value seen for a (cohort, period) pair wins when duplicates occur. The
// period axis is the union of periods across all cohorts, sorted ascending
// by string, so every cohort row has the same period_i slots and cohorts
// with no data for a period read 0 there.
//
// Each output row carries the field "cohort" plus, for every shared period
// index i: period_i (value), period_i_label (the period key) and, for
// i > 0, period_i_retention = current/previous*100 (0 when the previous
// slot is 0). One row per distinct cohort, in first-seen cohort order.
func CohortAnalysis(data Dataset, cohortKey, periodKey, valueKey string) (Dataset, error) {
	if err := requireKey("cohort analysis", "cohort key", cohortKey); err != nil {
		return nil, err
	}
	if err := requireKey("cohort analysis", "period key", periodKey); err != nil {
		return nil, err
	}
	if err := requireKey("cohort analysis", "value key", valueKey); err != nil {
		return nil, err
	}

	var cohortOrder []string
	cohortValues := make(map[string]map[string]float64)
	periodSet := make(map[string]struct{})

	for _, row := range data {
		cohort := row.Key(cohortKey)
		period := row.Key(periodKey)

		if _, ok := cohortValues[cohort]; !ok {
			cohortValues[cohort] = make(map[string]float64)
			cohortOrder = append(cohortOrder, cohort)
		}
		// Later rows overwrite earlier ones for the same pair.
		cohortValues[cohort][period] = row.Number(valueKey)
		periodSet[period] = struct{}{}
	}

	periods := make([]string, 0, len(periodSet))
	for p := range periodSet {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	out := make(Dataset, 0, len(cohortOrder))
	for _, cohort := range cohortOrder {
		r := NewRow().Set("cohort", cohort)
		values := cohortValues[cohort]
		for i, period := range periods {
			value := values[period]
			r.Set(fmt.Sprintf("period_%d", i), value)
			r.Set(fmt.Sprintf("period_%d_label", i), period)
			if i > 0 {
				previous := values[periods[i-1]]
				r.Set(fmt.Sprintf("period_%d_retention", i), safeRatio(value, previous)*100)
			}
		}
		out = append(out, r)
	}
	return out, nil
}
