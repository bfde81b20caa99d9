package compare

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is a single labeled record: an ordered mapping from field name to a
// scalar value (number, string, date). Field insertion order is preserved
// for iteration and JSON serialization so that derived fields appear after
// the source fields they were computed from.
type Row struct {
	keys   []string
	values map[string]interface{}
}

// NewRow creates an empty row.
func NewRow() *Row {
	return &Row{values: make(map[string]interface{})}
}

// Set stores a value under the given field name. A new field is appended to
// the row's field order; setting an existing field overwrites the value in
// place without changing its position. Returns the row for chaining.
func (r *Row) Set(key string, value interface{}) *Row {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Value returns the raw value stored under key, or nil when absent.
func (r *Row) Value(key string) interface{} {
	return r.values[key]
}

// Has reports whether the row carries the given field.
func (r *Row) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Number reads the field as a number using the engine-wide coercion rule
// (see CoerceNumber). Missing fields read as 0.
func (r *Row) Number(key string) float64 {
	return CoerceNumber(r.values[key])
}

// Key reads the field as a join/group/sort key string (see KeyString).
func (r *Row) Key(key string) string {
	return KeyString(r.values[key])
}

// Fields returns the field names in insertion order. The returned slice is
// shared with the row and must not be modified.
func (r *Row) Fields() []string {
	return r.keys
}

// Len returns the number of fields in the row.
func (r *Row) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy of the row. Scalar values are shared,
// which is safe because operations never mutate stored values.
func (r *Row) Clone() *Row {
	c := &Row{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]interface{}, len(r.values)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// MarshalJSON serializes the row as a JSON object with fields in insertion
// order. Standard map marshaling would sort keys alphabetically and lose
// the order contract callers rely on for display.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Dataset is a finite ordered sequence of rows. Datasets are treated as
// immutable inputs: every operation returns freshly allocated rows and
// never mutates the rows it was given.
type Dataset []*Row

// CoerceNumber converts an arbitrary scalar to a float64 for arithmetic.
// The conversion is total: nil, missing values, non-numeric strings, dates
// and anything else unrecognized all coerce to 0. Numeric strings parse;
// booleans map to 0/1. Every operation in this package reads numeric
// fields through this single helper so the zero-default behaves
// identically everywhere.
func CoerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return CoerceNumber(float64(n))
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// KeyString converts an arbitrary scalar to its canonical string form for
// join, group and sort key comparison. Floats render without a trailing
// fraction so a numeric 1 and the string "1" compare equal; dates render
// as RFC 3339 so equal instants on both sides of a join match.
func KeyString(v interface{}) string {
	switch k := v.(type) {
	case nil:
		return ""
	case string:
		return k
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(k), 'f', -1, 32)
	case int:
		return strconv.Itoa(k)
	case int8:
		return strconv.FormatInt(int64(k), 10)
	case int16:
		return strconv.FormatInt(int64(k), 10)
	case int32:
		return strconv.FormatInt(int64(k), 10)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint:
		return strconv.FormatUint(uint64(k), 10)
	case uint8:
		return strconv.FormatUint(uint64(k), 10)
	case uint16:
		return strconv.FormatUint(uint64(k), 10)
	case uint32:
		return strconv.FormatUint(uint64(k), 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	case bool:
		return strconv.FormatBool(k)
	case time.Time:
		return k.Format(time.RFC3339)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// percentChange returns (current-base)/base*100, or 0 when base is 0. The
// zero-denominator rule keeps every derived percentage finite on noisy
// business data.
func percentChange(current, base float64) float64 {
	if base == 0 {
		return 0
	}
	return (current - base) / base * 100
}

// safeRatio returns a/b, or 0 when b is 0.
func safeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
