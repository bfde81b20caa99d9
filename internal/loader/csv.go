package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"compareengine/pkg/compare"
)

// LoadCSV reads a dataset from a CSV file. The first record is the
// header; a UTF-8 BOM is stripped when present. Ragged records are
// tolerated: short rows omit trailing fields, long rows drop the extras.
func LoadCSV(path string) (compare.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Strip BOM if present
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	if len(records) == 0 {
		return compare.Dataset{}, nil
	}

	data := buildRows(records[0], records[1:])
	slog.Info("loaded CSV dataset",
		slog.String("path", path),
		slog.Int("rows", len(data)),
		slog.Int("fields", len(records[0])))
	return data, nil
}
