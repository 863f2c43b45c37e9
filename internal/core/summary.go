package core

import (
	"strconv"
	"strings"
)

// FormatSummary flattens an aggregate into the bullet list the downstream
// report writer consumes. The writer is a black box: it only ever sees this
// text, never the raw records.
func FormatSummary(a Aggregate) string {
	t := a.Totals
	tag := "Profit"
	if t.NetProfit < 0 {
		tag = "Loss"
	}
	var b strings.Builder
	b.WriteString("- Total Students: " + strconv.Itoa(t.Students) + "\n")
	b.WriteString("- Unpaid Students: " + strconv.Itoa(len(a.UnpaidStudents)) + "\n")
	b.WriteString("- Total Subscription Income: " + FormatAmount(t.Subscriptions) + " DZD\n")
	b.WriteString("- Total Donations: " + FormatAmount(t.Donations) + " DZD\n")
	b.WriteString("- Total Income: " + FormatAmount(t.Income) + " DZD\n")
	b.WriteString("- Total Expenses (Salaries + General): " + FormatAmount(t.Expenses) + " DZD\n")
	b.WriteString("  - Salaries: " + FormatAmount(t.Salaries) + " DZD\n")
	b.WriteString("  - General Expenses: " + FormatAmount(t.GeneralExpenses) + " DZD\n")
	b.WriteString("- Net Profit/Loss: " + FormatAmount(t.NetProfit) + " DZD (" + tag + ")\n")
	return b.String()
}

// FormatAmount renders an amount with thousands separators, keeping any
// fractional digits the value actually carries.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
