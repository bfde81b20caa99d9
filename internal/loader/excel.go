package loader

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"compareengine/pkg/compare"
)

// LoadXLSX reads a dataset from an Excel workbook. The first row of the
// chosen sheet is the header; an empty sheet name selects the first
// sheet in the workbook.
func LoadXLSX(path, sheet string) (compare.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return compare.Dataset{}, nil
	}

	data := buildRows(rows[0], rows[1:])
	slog.Info("loaded XLSX dataset",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", len(data)))
	return data, nil
}
