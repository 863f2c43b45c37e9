package google

import (
	"fmt"

	"mizaniya/internal/ingest"
)

// rowsFromValues converts a Sheets API values matrix into keyed rows. With
// UNFORMATTED_VALUE the API hands numbers back as float64, so date serials
// arrive numeric exactly as in the xlsx path.
func rowsFromValues(values [][]interface{}) []ingest.Row {
	matrix := make([][]ingest.Cell, len(values))
	for i, line := range values {
		cells := make([]ingest.Cell, len(line))
		for j, v := range line {
			cells[j] = valueToCell(v, i == 0)
		}
		matrix[i] = cells
	}
	return ingest.Rows(matrix)
}

func valueToCell(v interface{}, header bool) ingest.Cell {
	switch t := v.(type) {
	case nil:
		return ingest.TextCell("")
	case string:
		return ingest.TextCell(t)
	case float64:
		if header {
			return ingest.TextCell(fmt.Sprint(t))
		}
		return ingest.NumberCell(t)
	case bool:
		return ingest.TextCell(fmt.Sprint(t))
	default:
		return ingest.TextCell(fmt.Sprint(t))
	}
}
