// Package memory serves a canned workbook, for local development and tests.
package memory

import (
	"context"

	"mizaniya/internal/core"
	"mizaniya/internal/ingest"
)

// Source holds a fixed dataset and hands it back on every Fetch.
type Source struct {
	ds core.Dataset
}

var _ ingest.Source = (*Source)(nil)

// New wraps an already-mapped dataset.
func New(ds core.Dataset) *Source {
	return &Source{ds: ds}
}

// NewSample builds a small realistic workbook and runs it through the
// regular row mapper, so the full ingest path is exercised even without a
// file.
func NewSample() *Source {
	wb := ingest.Workbook{
		Students: ingest.Rows([][]ingest.Cell{
			{c(ingest.ColFullName), c(ingest.ColTeacher), c(core.SeasonNames[0]), c(core.SeasonNames[1]), c(core.SeasonNames[2]), c(core.SeasonNames[3])},
			{c("أحمد بن صالح"), c("الشيخ يوسف"), n(2500), n(2500), n(0), n(2500)},
			{c("مريم بوزيد"), c("الأستاذة خديجة"), n(2000), n(2000), n(2000), n(2000)},
		}),
		Salaries: ingest.Rows([][]ingest.Cell{
			{c(ingest.ColFullName), c(ingest.ColRole), c(core.SalaryMonthLabel(0)), c(core.MonthOrder[1]), c(core.MonthOrder[2])},
			{c("الإمام عبد الله"), c("معلم قرآن"), n(30000), n(30000), n(30000)},
		}),
		Donors: ingest.Rows([][]ingest.Cell{
			{c(ingest.ColFullName), c(ingest.ColAmount), c(ingest.ColDate)},
			{c("فاعل خير"), n(50000), c("15/02/2024")},
			{c("جمعية البر"), n(20000), n(45337)},
		}),
		Expenses: ingest.Rows([][]ingest.Cell{
			{c(ingest.ColItem), c(ingest.ColAmount), c(ingest.ColDate), c(ingest.ColType)},
			{c("كهرباء وغاز"), n(3000), c("10/01/2024"), c("فواتير")},
			{c("صيانة القاعات"), n(12000), c("05/04/2024"), c("صيانة")},
		}),
	}
	return &Source{ds: ingest.MapDataset(wb)}
}

// Fetch returns the canned dataset.
func (s *Source) Fetch(context.Context) (core.Dataset, error) {
	return s.ds, nil
}

func c(s string) ingest.Cell  { return ingest.TextCell(s) }
func n(v float64) ingest.Cell { return ingest.NumberCell(v) }
