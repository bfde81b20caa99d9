package compare

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollingComparison(t *testing.T) {
	t.Run("trailing window is left clamped", func(t *testing.T) {
		data := Dataset{
			NewRow().Set("v", 10),
			NewRow().Set("v", 20),
			NewRow().Set("v", 30),
		}

		out, err := RollingComparison(data, "v", 2, "v")
		require.NoError(t, err)
		require.Len(t, out, 3)

		// Row 0 averages over a window of one.
		assert.Equal(t, 10.0, out[0].Value("v_rolling_avg"))
		assert.Equal(t, 0.0, out[0].Value("v_vs_rolling"))

		assert.Equal(t, 15.0, out[1].Value("v_rolling_avg"))
		assert.Equal(t, 5.0, out[1].Value("v_vs_rolling"))
		assert.InDelta(t, 33.3333, out[1].Value("v_vs_rolling_pct").(float64), 0.001)

		assert.Equal(t, 25.0, out[2].Value("v_rolling_avg"))
		assert.Equal(t, 5.0, out[2].Value("v_vs_rolling"))
		assert.Equal(t, 20.0, out[2].Value("v_vs_rolling_pct"))
	})

	t.Run("window of one tracks the series", func(t *testing.T) {
		data := Dataset{NewRow().Set("v", 7), NewRow().Set("v", 9)}

		out, err := RollingComparison(data, "v", 1, "v")
		require.NoError(t, err)
		assert.Equal(t, 7.0, out[0].Value("v_rolling_avg"))
		assert.Equal(t, 9.0, out[1].Value("v_rolling_avg"))
		assert.Equal(t, 0.0, out[1].Value("v_vs_rolling"))
	})

	t.Run("compare field names the output columns", func(t *testing.T) {
		data := Dataset{NewRow().Set("v", 5)}

		out, err := RollingComparison(data, "v", 3, "sales")
		require.NoError(t, err)
		assert.True(t, out[0].Has("sales_rolling_avg"))
		assert.True(t, out[0].Has("sales_vs_rolling"))
		assert.True(t, out[0].Has("sales_vs_rolling_pct"))
	})

	t.Run("zero average yields zero deviation pct", func(t *testing.T) {
		data := Dataset{NewRow().Set("v", 0), NewRow().Set("v", 0)}

		out, err := RollingComparison(data, "v", 2, "v")
		require.NoError(t, err)
		assert.Equal(t, 0.0, out[1].Value("v_vs_rolling_pct"))
	})

	t.Run("non-positive window is rejected", func(t *testing.T) {
		for _, window := range []int{0, -1} {
			_, err := RollingComparison(Dataset{}, "v", window, "v")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		out, err := RollingComparison(Dataset{}, "v", 5, "v")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
