package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"compareengine/pkg/compare"
)

// WriteJSON writes the dataset as a JSON array of objects. Row field
// insertion order is preserved in the serialized objects.
func (w *Writer) WriteJSON(fileName string, data compare.Dataset) error {
	fullPath := filepath.Join(w.dir, fileName)

	slog.Info("writing JSON file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(data)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// An empty dataset still serializes as a valid empty array.
	if data == nil {
		data = compare.Dataset{}
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	if err := os.WriteFile(fullPath, payload, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
