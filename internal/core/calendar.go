package core

// Fixed calendar tables shared by the bucketizer and the series builder.
// All series output follows these sequences, never input row order.

// MonthOrder lists the twelve month names in the Algerian Arabic form used
// across the workbook.
var MonthOrder = [12]string{
	"جانفي", "فيفري", "مارس", "أفريل", "ماي", "جوان",
	"جويلية", "أوت", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// SeasonNames lists the four season (quarter) labels in canonical order.
var SeasonNames = [4]string{"الموسم 1", "الموسم 2", "الموسم 3", "الموسم 4"}

// SeasonCount is fixed: four quarters of three months each.
const SeasonCount = 4

// SalaryMonthLabel returns the salary-sheet column label for a month index.
// The first month's column is labeled "شهر جانفي" in the source workbook
// while the remaining eleven carry the bare month name. The irregularity is
// part of the sheet schema and must be matched, not normalized away.
func SalaryMonthLabel(month int) string {
	if month == 0 {
		return "شهر " + MonthOrder[0]
	}
	return MonthOrder[month]
}

// SeasonOfMonth maps a zero-based month index to its season index
// (0-2 -> 0, 3-5 -> 1, 6-8 -> 2, 9-11 -> 3).
func SeasonOfMonth(month int) int {
	return month / 3
}
