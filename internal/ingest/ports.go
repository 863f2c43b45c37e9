// Package ingest maps raw workbook rows onto the core record types. All
// numeric coercion happens here, once, so the core only ever sees typed
// records.
package ingest

import (
	"context"

	"mizaniya/internal/core"
)

// Workbook sheet names as they appear in the school's export template.
const (
	SheetStudents = "الطلبة"
	SheetSalaries = "الرواتب"
	SheetDonors   = "الداعمين"
	SheetExpenses = "المصاريف"
)

// Source fetches one complete workbook and maps it to a Dataset. Pull-style
// backends (Google Sheets, fixtures) implement it; the HTTP upload path
// parses the stream directly instead.
type Source interface {
	Fetch(ctx context.Context) (core.Dataset, error)
}
