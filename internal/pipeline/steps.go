package pipeline

import (
	"fmt"

	"compareengine/pkg/compare"
)

// registry holds named datasets as a run progresses: inputs first, then
// each step's output.
type registry map[string]compare.Dataset

func (r registry) get(name string) (compare.Dataset, error) {
	ds, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	return ds, nil
}

// applyStep dispatches one step to the engine operation it names.
func applyStep(reg registry, step StepSpec) (compare.Dataset, error) {
	p := params(step.Params)

	switch step.Op {
	case "compare":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		return compare.Compare(data, compare.FieldPairConfig{
			BaselineKey:            p.str("baseline_key"),
			CompareKeys:            p.strs("compare_keys"),
			ValueKeys:              p.strs("value_keys"),
			CalculateDifference:    p.flag("calculate_difference"),
			CalculatePercentChange: p.flag("calculate_percent_change"),
			CalculateRatio:         p.flag("calculate_ratio"),
		})

	case "period_over_period":
		if len(step.Inputs) != 2 {
			return nil, fmt.Errorf("period_over_period needs exactly two inputs (current, previous)")
		}
		current, err := reg.get(step.Inputs[0])
		if err != nil {
			return nil, err
		}
		previous, err := reg.get(step.Inputs[1])
		if err != nil {
			return nil, err
		}
		return compare.PeriodOverPeriod(current, previous, compare.PeriodConfig{
			DateKey:   p.str("date_key"),
			ValueKeys: p.strs("value_keys"),
		})

	case "year_over_year":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		return compare.YearOverYear(data, p.str("date_key"), p.strs("value_keys"),
			p.integer("current_year", 0), p.integer("previous_year", 0))

	case "benchmark":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		return compare.CompareToBenchmark(data, compare.BenchmarkConfig{
			ActualKey:           p.str("actual_key"),
			BenchmarkKey:        p.str("benchmark_key"),
			ValueKeys:           p.strs("value_keys"),
			ShowVariance:        p.flag("show_variance"),
			ShowPercentOfTarget: p.flag("show_percent_of_target"),
		})

	case "cohort":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		return compare.CohortAnalysis(data, p.str("cohort_key"), p.str("period_key"), p.str("value_key"))

	case "side_by_side":
		datasets := make([]compare.Dataset, 0, len(step.Inputs))
		for _, name := range step.Inputs {
			ds, err := reg.get(name)
			if err != nil {
				return nil, err
			}
			datasets = append(datasets, ds)
		}
		return compare.SideBySide(datasets, p.strs("labels"), p.str("common_key"), p.strs("value_keys"))

	case "variance":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		return compare.VarianceAnalysis(data, p.str("actual_key"), p.str("planned_key"), p.strs("value_keys"))

	case "rolling":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		return compare.RollingComparison(data, p.str("value_key"), p.integer("window", 0), p.str("compare_field"))

	case "rank":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		if group := p.str("group_key"); group != "" {
			return compare.RankComparisonByGroup(data, p.str("value_key"), group)
		}
		return compare.RankComparison(data, p.str("value_key"))

	case "normalize_index":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		return compare.NormalizeToIndex(data, p.str("value_key"),
			p.integer("base_index", 0), p.number("base_value", 100))

	case "contribution":
		data, err := reg.get(step.Input)
		if err != nil {
			return nil, err
		}
		return compare.CalculateContribution(data, p.strs("value_keys"))

	default:
		return nil, fmt.Errorf("unknown operation %q", step.Op)
	}
}

// params wraps the raw YAML parameter map with typed accessors.
type params map[string]interface{}

func (p params) str(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

func (p params) strs(key string) []string {
	raw, ok := p[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (p params) flag(key string) bool {
	b, _ := p[key].(bool)
	return b
}

func (p params) integer(key string, def int) int {
	switch n := p[key].(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return def
	}
}

func (p params) number(key string, def float64) float64 {
	switch n := p[key].(type) {
	case int:
		return float64(n)
	case float64:
		return n
	default:
		return def
	}
}
