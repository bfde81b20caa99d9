package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"compareengine/pkg/compare"
)

// resultSheet is the sheet name used for exported datasets.
const resultSheet = "Results"

// WriteXLSX writes the dataset as a single-sheet Excel workbook with the
// same union-of-fields header as the CSV export. Numeric values stay
// numeric cells so spreadsheet formulas work on them directly.
func (w *Writer) WriteXLSX(fileName string, data compare.Dataset) error {
	fullPath := filepath.Join(w.dir, fileName)

	slog.Info("writing XLSX file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(data)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(resultSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	header := fieldUnion(data)
	for col, field := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(resultSheet, cell, field); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range data {
		for col, field := range header {
			if !row.Has(field) {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(resultSheet, cell, row.Value(field)); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
