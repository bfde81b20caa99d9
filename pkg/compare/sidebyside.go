package compare

import "fmt"

// SideBySide outer-joins N independent datasets on a common key into one
// wide row per key. The key axis is the union of stringified commonKey
// values across all datasets, iterated in order of first sight: dataset 0
// is scanned fully, then dataset 1, and so on, with duplicates collapsing
// into the first occurrence.
//
// For each key and dataset the first matching row supplies the values
// (rows after the first with the same key within one dataset are ignored);
// a dataset with no match contributes 0 for every value field. Values land
// under "{label}_{v}", with the label defaulting to "dataset_{index}" when
// not supplied.
func SideBySide(datasets []Dataset, labels []string, commonKey string, valueKeys []string) (Dataset, error) {
	if err := requireKey("side by side", "common key", commonKey); err != nil {
		return nil, err
	}
	if err := requireKeys("side by side", "value keys", valueKeys); err != nil {
		return nil, err
	}

	var keyOrder []string
	seen := make(map[string]struct{})
	for _, ds := range datasets {
		for _, row := range ds {
			k := row.Key(commonKey)
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keyOrder = append(keyOrder, k)
			}
		}
	}

	out := make(Dataset, 0, len(keyOrder))
	for _, key := range keyOrder {
		r := NewRow().Set(commonKey, key)
		for i, ds := range datasets {
			label := fmt.Sprintf("dataset_%d", i)
			if i < len(labels) && labels[i] != "" {
				label = labels[i]
			}

			var match *Row
			for _, row := range ds {
				if row.Key(commonKey) == key {
					match = row
					break
				}
			}

			for _, v := range valueKeys {
				var value float64
				if match != nil {
					value = match.Number(v)
				}
				r.Set(label+"_"+v, value)
			}
		}
		out = append(out, r)
	}
	return out, nil
}
