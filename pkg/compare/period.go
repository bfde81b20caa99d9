package compare

import (
	"strings"
	"time"
)

// PeriodConfig configures PeriodOverPeriod. DateKey names the join field
// whose stringified value aligns rows between the two datasets.
type PeriodConfig struct {
	DateKey   string   `json:"date_key" validate:"required"`
	ValueKeys []string `json:"value_keys" validate:"min=1,dive,required"`
}

// PeriodOverPeriod aligns a current dataset against a previous one by
// period key and computes per-field deltas. For every current row the
// first previous row with an equal stringified period key supplies the
// prior values; when no row matches, prior values read as 0, which keeps
// the change percentage well defined (it is 0, not undefined).
//
// Each output row carries the period key plus, for every value field v:
// current_{v}, previous_{v}, {v}_change and {v}_change_pct. Row count and
// order follow the current dataset.
func PeriodOverPeriod(current, previous Dataset, cfg PeriodConfig) (Dataset, error) {
	if err := validateConfig("period over period", cfg); err != nil {
		return nil, err
	}

	out := make(Dataset, 0, len(current))
	for _, cur := range current {
		key := cur.Key(cfg.DateKey)

		var prev *Row
		for _, p := range previous {
			if p.Key(cfg.DateKey) == key {
				prev = p
				break
			}
		}

		r := NewRow().Set(cfg.DateKey, cur.Value(cfg.DateKey))
		for _, v := range cfg.ValueKeys {
			curVal := cur.Number(v)
			var prevVal float64
			if prev != nil {
				prevVal = prev.Number(v)
			}
			r.Set("current_"+v, curVal)
			r.Set("previous_"+v, prevVal)
			r.Set(v+"_change", curVal-prevVal)
			r.Set(v+"_change_pct", percentChange(curVal, prevVal))
		}
		out = append(out, r)
	}
	return out, nil
}

// YearOverYear partitions a single dataset by the calendar year extracted
// from dateKey and runs PeriodOverPeriod with the currentYear partition
// against the previousYear partition. The join still uses the raw
// stringified date key, so rows only align when the period label repeats
// across years (month names, quarter labels, month-day strings).
func YearOverYear(data Dataset, dateKey string, valueKeys []string, currentYear, previousYear int) (Dataset, error) {
	cfg := PeriodConfig{DateKey: dateKey, ValueKeys: valueKeys}
	if err := validateConfig("year over year", cfg); err != nil {
		return nil, err
	}

	var current, previous Dataset
	for _, row := range data {
		switch calendarYear(row.Value(dateKey)) {
		case currentYear:
			current = append(current, row)
		case previousYear:
			previous = append(previous, row)
		}
	}
	return PeriodOverPeriod(current, previous, cfg)
}

// dateLayouts are tried in order when a period value arrives as a string.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01",
	"2006/01/02",
	"01/02/2006",
	"2006",
}

// calendarYear extracts the calendar year from a period value. Dates use
// their own year; strings are parsed against the known layouts; bare
// numbers are taken as a year directly. Unrecognized values yield 0 and
// fall outside any requested year partition.
func calendarYear(v interface{}) int {
	switch d := v.(type) {
	case time.Time:
		return d.Year()
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Year()
			}
		}
		return 0
	default:
		n := CoerceNumber(v)
		if n > 0 {
			return int(n)
		}
		return 0
	}
}
