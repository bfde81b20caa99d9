package compare

// NormalizeToIndex rescales a series so the value at baseIndex equals
// baseValue (the classic "= 100 at period 0" indexing; pass baseIndex 0
// and baseValue 100 for that). Every row gets {valueKey}_index =
// value / base * baseValue. Row order and count are unchanged; an empty
// dataset yields an empty dataset.
//
// When the anchor value coerces to 0 — including a baseIndex past the end
// of the data — the base is substituted with 1 so the series stays finite.
// This is a deliberate deviation from the engine's usual "0 stays 0" rule,
// specific to this operation. A negative baseIndex is an invalid
// configuration.
func NormalizeToIndex(data Dataset, valueKey string, baseIndex int, baseValue float64) (Dataset, error) {
	if err := requireKey("normalize to index", "value key", valueKey); err != nil {
		return nil, err
	}
	if baseIndex < 0 {
		return nil, NewInvalidConfig("normalize to index: base index must not be negative", baseIndex)
	}

	if len(data) == 0 {
		return Dataset{}, nil
	}

	var base float64
	if baseIndex < len(data) {
		base = data[baseIndex].Number(valueKey)
	}
	if base == 0 {
		base = 1
	}

	out := make(Dataset, 0, len(data))
	for _, row := range data {
		r := row.Clone()
		r.Set(valueKey+"_index", row.Number(valueKey)/base*baseValue)
		out = append(out, r)
	}
	return out, nil
}
