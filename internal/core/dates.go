package core

import (
	"strings"
	"time"
)

// MonthUnresolved is returned when a date cell cannot be mapped to a month.
// Records carrying it are excluded from date-bucketed views but still count
// toward date-independent totals.
const MonthUnresolved = -1

// serialEpoch is the spreadsheet date-serial epoch (day 0 = 1899-12-30 UTC).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// MonthIndex resolves a raw date cell to a zero-based month index.
//
// Serial values are days added to the 1899-12-30 epoch, read in UTC.
// String values must split on '/' or '-' into exactly three numeric-leading
// parts; the second part carries the month in both recognized layouts
// (YYYY-MM-DD when the first part exceeds 12, DD/MM/YYYY otherwise).
// Anything else resolves to MonthUnresolved.
func MonthIndex(d DateValue) int {
	switch d.Kind {
	case DateSerial:
		t := serialEpoch.Add(time.Duration(d.Serial * float64(24*time.Hour)))
		return int(t.UTC().Month()) - 1
	case DateText:
		parts := strings.Split(strings.ReplaceAll(d.Text, "-", "/"), "/")
		if len(parts) != 3 {
			return MonthUnresolved
		}
		_, ok1 := leadingInt(parts[0])
		month, ok2 := leadingInt(parts[1])
		if !ok1 || !ok2 {
			return MonthUnresolved
		}
		return month - 1
	default:
		return MonthUnresolved
	}
}

// leadingInt parses the leading base-10 digits of s, ignoring surrounding
// whitespace and any trailing garbage, the way spreadsheet exports are
// commonly munged ("2024 " or "15.").
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
