package loader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"compareengine/pkg/compare"
)

// Load reads a dataset from a file, picking the reader by extension
// (.csv or .xlsx). XLSX files load from their first sheet.
func Load(path string) (compare.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path, "")
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// buildRows converts header + cell records into dataset rows. Numeric
// cells become float64 so downstream arithmetic reads them directly;
// everything else stays a string. Cells beyond the header width are
// dropped and short records simply omit the trailing fields.
func buildRows(header []string, records [][]string) compare.Dataset {
	data := make(compare.Dataset, 0, len(records))
	for _, record := range records {
		row := compare.NewRow()
		for i, field := range header {
			if field == "" {
				continue
			}
			if i < len(record) {
				row.Set(field, convertCell(record[i]))
			}
		}
		data = append(data, row)
	}
	return data
}

// convertCell types a raw cell: numeric text parses to float64, anything
// else (including empty) remains a string.
func convertCell(cell string) interface{} {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return cell
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		return f
	}
	return cell
}
