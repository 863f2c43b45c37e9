// Package excel parses the uploaded .xlsx export into a core Dataset.
package excel

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mizaniya/internal/core"
	"mizaniya/internal/ingest"
)

// Reader parses the four-sheet workbook export. Zero value is usable.
type Reader struct{}

// NewReader returns a workbook reader.
func NewReader() *Reader { return &Reader{} }

// Parse reads an .xlsx stream and maps it onto a Dataset. Only a broken
// archive is an error; missing sheets, unknown columns, and garbage cells
// degrade to empty or zero values.
func (r *Reader) Parse(src io.Reader) (core.Dataset, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	wb := ingest.Workbook{
		Students: sheetRows(f, ingest.SheetStudents),
		Salaries: sheetRows(f, ingest.SheetSalaries),
		Donors:   sheetRows(f, ingest.SheetDonors),
		Expenses: sheetRows(f, ingest.SheetExpenses),
	}
	return ingest.MapDataset(wb), nil
}

// sheetRows pulls raw cell values for one sheet. Raw values keep date
// serials as numbers instead of excelize's formatted rendering.
func sheetRows(f *excelize.File, name string) []ingest.Row {
	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		slog.Debug("Sheet missing from workbook", "sheet", name, "error", err)
		return nil
	}

	matrix := make([][]ingest.Cell, len(raw))
	for i, line := range raw {
		cells := make([]ingest.Cell, len(line))
		for j, v := range line {
			cells[j] = toCell(v, i == 0)
		}
		matrix[i] = cells
	}
	return ingest.Rows(matrix)
}

// toCell classifies a raw cell string. Header cells stay text so a numeric
// column label can't vanish; data cells that read as a number are kept
// numeric, which is how date serials survive.
func toCell(v string, header bool) ingest.Cell {
	if !header {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
				return ingest.NumberCell(n)
			}
		}
	}
	return ingest.TextCell(v)
}
