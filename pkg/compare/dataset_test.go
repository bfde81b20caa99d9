package compare

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoerceNumber exercises the engine-wide numeric coercion rule.
func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected float64
	}{
		{"nil", nil, 0},
		{"float64", 13.4, 13.4},
		{"float32", float32(2.5), 2.5},
		{"int", 42, 42},
		{"int64", int64(-7), -7},
		{"uint", uint(9), 9},
		{"numeric string", "123.5", 123.5},
		{"padded numeric string", "  10 ", 10},
		{"negative numeric string", "-4", -4},
		{"non-numeric string", "n/a", 0},
		{"empty string", "", 0},
		{"nan string", "NaN", 0},
		{"inf string", "Inf", 0},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"date", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"slice", []string{"x"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoerceNumber(tt.value))
		})
	}
}

// TestKeyString verifies that numeric and textual keys of equal printed
// form compare equal.
func TestKeyString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"nil", nil, ""},
		{"string", "2024-01", "2024-01"},
		{"whole float", float64(1), "1"},
		{"fractional float", 1.5, "1.5"},
		{"int", 2024, "2024"},
		{"bool", true, "true"},
		{"date", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KeyString(tt.value))
		})
	}

	t.Run("numeric and textual keys match", func(t *testing.T) {
		assert.Equal(t, KeyString(float64(7)), KeyString("7"))
	})
}

func TestRow(t *testing.T) {
	t.Run("preserves field insertion order", func(t *testing.T) {
		r := NewRow().Set("b", 1).Set("a", 2).Set("c", 3)
		assert.Equal(t, []string{"b", "a", "c"}, r.Fields())
		assert.Equal(t, 3, r.Len())
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		r := NewRow().Set("a", 1).Set("b", 2).Set("a", 9)
		assert.Equal(t, []string{"a", "b"}, r.Fields())
		assert.Equal(t, 9, r.Value("a"))
	})

	t.Run("number coerces missing field to zero", func(t *testing.T) {
		r := NewRow().Set("v", "12")
		assert.Equal(t, 12.0, r.Number("v"))
		assert.Equal(t, 0.0, r.Number("absent"))
		assert.False(t, r.Has("absent"))
	})

	t.Run("clone is independent", func(t *testing.T) {
		r := NewRow().Set("v", 1)
		c := r.Clone()
		c.Set("v", 2).Set("extra", 3)

		assert.Equal(t, 1, r.Value("v"))
		assert.False(t, r.Has("extra"))
		assert.Equal(t, 2, c.Value("v"))
	})

	t.Run("json marshal keeps field order", func(t *testing.T) {
		r := NewRow().Set("z", 1.0).Set("a", "x").Set("m", true)
		b, err := json.Marshal(r)
		require.NoError(t, err)
		assert.Equal(t, `{"z":1,"a":"x","m":true}`, string(b))
	})
}

// TestZeroDenominatorGuards pins the central recoverable-failure policy:
// zero denominators yield exactly 0, never NaN or infinity.
func TestZeroDenominatorGuards(t *testing.T) {
	assert.Equal(t, 0.0, percentChange(10, 0))
	assert.Equal(t, 0.0, safeRatio(10, 0))
	assert.Equal(t, 50.0, percentChange(150, 100))
	assert.Equal(t, 1.5, safeRatio(150, 100))
}
