package exporter

import (
	"fmt"
	"strconv"
	"time"
)

// formatValue renders a scalar for CSV and XLSX cells. Floats keep full
// precision rather than a fixed decimal count so round-tripping an export
// does not lose derived values.
func formatValue(v interface{}) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case bool:
		return strconv.FormatBool(n)
	case time.Time:
		return n.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
