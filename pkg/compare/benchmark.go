package compare

// Benchmark status values written to {v}_status.
const (
	// StatusMet indicates the actual value reached or exceeded the
	// benchmark. Ties count as met.
	StatusMet = "met"
	// StatusMissed indicates the actual value fell short of the benchmark.
	StatusMissed = "missed"
)

// BenchmarkConfig configures CompareToBenchmark. ActualKey and
// BenchmarkKey are column-group prefixes like FieldPairConfig's keys.
type BenchmarkConfig struct {
	ActualKey    string   `json:"actual_key" validate:"required"`
	BenchmarkKey string   `json:"benchmark_key" validate:"required"`
	ValueKeys    []string `json:"value_keys" validate:"min=1,dive,required"`

	ShowVariance        bool `json:"show_variance"`
	ShowPercentOfTarget bool `json:"show_percent_of_target"`
}

// CompareToBenchmark compares actual values against target values embedded
// in the same row. For every value field v it always writes {v}_actual,
// {v}_benchmark and {v}_status; the variance fields ({v}_variance,
// {v}_variance_pct) and {v}_pct_of_target are written only when the
// corresponding switch is enabled. A zero benchmark yields 0 for both
// percentage fields. Original fields are preserved; row count and order
// are unchanged.
func CompareToBenchmark(data Dataset, cfg BenchmarkConfig) (Dataset, error) {
	if err := validateConfig("compare to benchmark", cfg); err != nil {
		return nil, err
	}

	out := make(Dataset, 0, len(data))
	for _, row := range data {
		r := row.Clone()
		for _, v := range cfg.ValueKeys {
			actual := row.Number(cfg.ActualKey + "_" + v)
			benchmark := row.Number(cfg.BenchmarkKey + "_" + v)

			r.Set(v+"_actual", actual)
			r.Set(v+"_benchmark", benchmark)
			status := StatusMissed
			if actual >= benchmark {
				status = StatusMet
			}
			r.Set(v+"_status", status)

			if cfg.ShowVariance {
				r.Set(v+"_variance", actual-benchmark)
				r.Set(v+"_variance_pct", percentChange(actual, benchmark))
			}
			if cfg.ShowPercentOfTarget {
				r.Set(v+"_pct_of_target", safeRatio(actual, benchmark)*100)
			}
		}
		out = append(out, r)
	}
	return out, nil
}
