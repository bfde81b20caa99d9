package compare

// FieldPairConfig configures Compare. Baseline and comparison groups are
// column prefixes within each row: for a value field "sales", the baseline
// reads "{BaselineKey}_sales" and each comparison group reads
// "{CompareKey}_sales".
type FieldPairConfig struct {
	BaselineKey string   `json:"baseline_key" validate:"required"`
	CompareKeys []string `json:"compare_keys" validate:"min=1,dive,required"`
	ValueKeys   []string `json:"value_keys" validate:"min=1,dive,required"`

	CalculateDifference    bool `json:"calculate_difference"`
	CalculatePercentChange bool `json:"calculate_percent_change"`
	CalculateRatio         bool `json:"calculate_ratio"`
}

// Compare measures one or more comparison column groups against a baseline
// group within each row. For every value field v and comparison key c it
// writes, depending on the enabled switches:
//
//	{c}_{v}_diff  = compared - baseline
//	{c}_{v}_pct   = (compared - baseline) / baseline * 100, 0 when baseline is 0
//	{c}_{v}_ratio = compared / baseline, 0 when baseline is 0
//
// Output has one row per input row in input order, with all original
// fields preserved.
func Compare(data Dataset, cfg FieldPairConfig) (Dataset, error) {
	if err := validateConfig("compare", cfg); err != nil {
		return nil, err
	}

	out := make(Dataset, 0, len(data))
	for _, row := range data {
		r := row.Clone()
		for _, v := range cfg.ValueKeys {
			baseline := row.Number(cfg.BaselineKey + "_" + v)
			for _, c := range cfg.CompareKeys {
				compared := row.Number(c + "_" + v)
				prefix := c + "_" + v
				if cfg.CalculateDifference {
					r.Set(prefix+"_diff", compared-baseline)
				}
				if cfg.CalculatePercentChange {
					r.Set(prefix+"_pct", percentChange(compared, baseline))
				}
				if cfg.CalculateRatio {
					r.Set(prefix+"_ratio", safeRatio(compared, baseline))
				}
			}
		}
		out = append(out, r)
	}
	return out, nil
}
