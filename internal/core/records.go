// Package core implements the pure aggregation pipeline that turns the four
// raw workbook record sets into the derived dashboard metrics.
//
// Everything in this package is deterministic and side-effect free: the same
// Dataset always produces the same Aggregate, malformed values degrade to
// zero, and nothing here ever returns an error.
package core

import (
	"strconv"
	"strings"
)

// DateKind tags the representation a date cell arrived in.
type DateKind int

const (
	DateEmpty DateKind = iota
	DateSerial
	DateText
)

// DateValue is a raw date cell: either a spreadsheet serial number or a
// free-form string. Resolution to a month index happens in MonthIndex.
type DateValue struct {
	Kind   DateKind
	Serial float64
	Text   string
}

// SerialDate wraps a spreadsheet date-serial value.
func SerialDate(v float64) DateValue {
	return DateValue{Kind: DateSerial, Serial: v}
}

// TextDate wraps a string date value.
func TextDate(s string) DateValue {
	return DateValue{Kind: DateText, Text: s}
}

type (
	// Student is one row of the students sheet. Rows have no stable
	// identity; duplicates by name are kept as distinct records.
	Student struct {
		Name    string
		Gender  string
		Level   string
		Group   string
		Teacher string
		// Seasons holds the four per-season subscription payments.
		// Zero means unpaid.
		Seasons [SeasonCount]float64
		Notes   string
	}

	// StaffSalary is one row of the salaries sheet. Months holds the
	// twelve canonical month columns; Extra holds every other numeric
	// column (bonuses, corrections) so the annual total stays correct
	// when the sheet grows columns.
	StaffSalary struct {
		Name   string
		Role   string
		Months [12]float64
		Extra  map[string]float64
	}

	// Donor is one row of the donors sheet.
	Donor struct {
		Name   string
		Phone  string
		Amount float64
		Date   DateValue
		Notes  string
	}

	// Expense is one row of the general expenses sheet.
	Expense struct {
		Item   string
		Amount float64
		Date   DateValue
		Type   string
		Notes  string
	}

	// Dataset is one complete upload: the four record sets the whole
	// aggregate derives from. A new upload replaces the previous Dataset
	// wholesale.
	Dataset struct {
		Students []Student
		Salaries []StaffSalary
		Donors   []Donor
		Expenses []Expense
	}
)

// Total returns the annual salary cost for one staff record: every month
// column plus every extra numeric column.
func (s StaffSalary) Total() float64 {
	var sum float64
	for _, v := range s.Months {
		sum += v
	}
	for _, v := range s.Extra {
		sum += v
	}
	return sum
}

// ToNumber coerces a raw cell string to a number. Blank or non-numeric
// values become zero; this is the only numeric coercion in the system and
// it never fails.
func ToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
