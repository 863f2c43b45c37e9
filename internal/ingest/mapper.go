package ingest

import "mizaniya/internal/core"

// Cell is one raw sheet cell. Numeric cells keep their number so date
// serials survive the trip; everything else travels as text.
type Cell struct {
	Text     string
	Number   float64
	IsNumber bool
}

// TextCell wraps a string cell value.
func TextCell(s string) Cell { return Cell{Text: s} }

// NumberCell wraps a numeric cell value.
func NumberCell(v float64) Cell { return Cell{Number: v, IsNumber: true} }

// Row is one sheet row keyed by its header labels.
type Row map[string]Cell

// Workbook is the raw four-sheet export before mapping.
type Workbook struct {
	Students []Row
	Salaries []Row
	Donors   []Row
	Expenses []Row
}

// Rows converts a header-first cell matrix into keyed rows. Cells beyond
// the header width are dropped; missing trailing cells simply stay absent
// from the row.
func Rows(matrix [][]Cell) []Row {
	if len(matrix) == 0 {
		return nil
	}
	header := matrix[0]
	rows := make([]Row, 0, len(matrix)-1)
	for _, line := range matrix[1:] {
		row := make(Row, len(header))
		for i, h := range header {
			if h.Text == "" || i >= len(line) {
				continue
			}
			row[h.Text] = line[i]
		}
		rows = append(rows, row)
	}
	return rows
}

// MapDataset maps a raw workbook onto the core record types, coercing every
// numeric field exactly once. It never fails: missing sheets become empty
// record sets, garbage cells become zeros.
func MapDataset(wb Workbook) core.Dataset {
	ds := core.Dataset{
		Students: make([]core.Student, 0, len(wb.Students)),
		Salaries: make([]core.StaffSalary, 0, len(wb.Salaries)),
		Donors:   make([]core.Donor, 0, len(wb.Donors)),
		Expenses: make([]core.Expense, 0, len(wb.Expenses)),
	}
	for _, row := range wb.Students {
		ds.Students = append(ds.Students, mapStudent(row))
	}
	for _, row := range wb.Salaries {
		ds.Salaries = append(ds.Salaries, mapSalary(row))
	}
	for _, row := range wb.Donors {
		ds.Donors = append(ds.Donors, mapDonor(row))
	}
	for _, row := range wb.Expenses {
		ds.Expenses = append(ds.Expenses, mapExpense(row))
	}
	return ds
}

func mapStudent(row Row) core.Student {
	st := core.Student{
		Name:    textAt(row, ColFullName),
		Gender:  textAt(row, ColGender),
		Level:   textAt(row, ColLevel),
		Group:   textAt(row, ColGroup),
		Teacher: textAt(row, ColTeacher),
		Notes:   textAt(row, ColNotes),
	}
	for i := 0; i < core.SeasonCount; i++ {
		st.Seasons[i] = numberAt(row, core.SeasonNames[i])
	}
	return st
}

func mapSalary(row Row) core.StaffSalary {
	sal := core.StaffSalary{
		Name: textAt(row, ColFullName),
		Role: textAt(row, ColRole),
	}
	monthCols := make(map[string]bool, 12)
	for m := 0; m < 12; m++ {
		label := core.SalaryMonthLabel(m)
		monthCols[label] = true
		sal.Months[m] = numberAt(row, label)
	}
	// Any remaining column is schema drift (a bonus column, a correction)
	// and still counts toward the annual total.
	for label, cell := range row {
		if label == ColFullName || label == ColRole || monthCols[label] {
			continue
		}
		if sal.Extra == nil {
			sal.Extra = make(map[string]float64)
		}
		sal.Extra[label] = cellNumber(cell)
	}
	return sal
}

func mapDonor(row Row) core.Donor {
	return core.Donor{
		Name:   textAt(row, ColFullName),
		Phone:  textAt(row, ColPhone),
		Amount: numberAt(row, ColAmount),
		Date:   dateAt(row, ColDate),
		Notes:  textAt(row, ColNote),
	}
}

func mapExpense(row Row) core.Expense {
	return core.Expense{
		Item:   textAt(row, ColItem),
		Amount: numberAt(row, ColAmount),
		Date:   dateAt(row, ColDate),
		Type:   textAt(row, ColType),
		Notes:  textAt(row, ColNote),
	}
}

func textAt(row Row, col string) string {
	return row[col].Text
}

func numberAt(row Row, col string) float64 {
	return cellNumber(row[col])
}

func cellNumber(c Cell) float64 {
	if c.IsNumber {
		return c.Number
	}
	return core.ToNumber(c.Text)
}

func dateAt(row Row, col string) core.DateValue {
	cell, ok := row[col]
	if !ok {
		return core.DateValue{}
	}
	if cell.IsNumber {
		return core.SerialDate(cell.Number)
	}
	if cell.Text == "" {
		return core.DateValue{}
	}
	return core.TextDate(cell.Text)
}
