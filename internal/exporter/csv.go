package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"compareengine/pkg/compare"
)

// Writer exports result datasets to files under a base directory.
type Writer struct {
	dir      string
	excelBOM bool
}

// NewWriter creates a writer rooted at dir. When excelBOM is set, CSV
// files start with a UTF-8 BOM so Excel recognizes the encoding.
func NewWriter(dir string, excelBOM bool) *Writer {
	return &Writer{dir: dir, excelBOM: excelBOM}
}

// Write exports the dataset in the given format ("csv", "json" or "xlsx")
// under the given base name (without extension).
func (w *Writer) Write(format, name string, data compare.Dataset) error {
	switch format {
	case "csv":
		return w.WriteCSV(name+".csv", data)
	case "json":
		return w.WriteJSON(name+".json", data)
	case "xlsx":
		return w.WriteXLSX(name+".xlsx", data)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// WriteCSV writes the dataset as a CSV file. The header is the union of
// field names across all rows, in order of first sight, so derived fields
// line up in the columns their operation produced them in.
func (w *Writer) WriteCSV(fileName string, data compare.Dataset) error {
	fullPath := filepath.Join(w.dir, fileName)

	slog.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(data)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if w.excelBOM {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := fieldUnion(data)
	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for _, row := range data {
		record := make([]string, len(header))
		for i, field := range header {
			if row.Has(field) {
				record[i] = formatValue(row.Value(field))
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// fieldUnion collects field names across all rows in first-sight order.
func fieldUnion(data compare.Dataset) []string {
	var fields []string
	seen := make(map[string]struct{})
	for _, row := range data {
		for _, f := range row.Fields() {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				fields = append(fields, f)
			}
		}
	}
	return fields
}
