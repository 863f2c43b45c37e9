package core

import (
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45210, "-45,210"},
		{1234.5, "1,234.5"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSummary(t *testing.T) {
	agg := Aggregate{
		Totals: Totals{
			Students:        120,
			Subscriptions:   850000,
			Donations:       150000,
			Income:          1000000,
			Salaries:        600000,
			GeneralExpenses: 250000,
			Expenses:        850000,
			NetProfit:       150000,
		},
		UnpaidStudents: []UnpaidSeason{{Name: "a"}, {Name: "b"}},
	}
	got := FormatSummary(agg)

	for _, want := range []string{
		"- Total Students: 120",
		"- Unpaid Students: 2",
		"- Total Subscription Income: 850,000 DZD",
		"- Total Donations: 150,000 DZD",
		"- Total Income: 1,000,000 DZD",
		"- Total Expenses (Salaries + General): 850,000 DZD",
		"  - Salaries: 600,000 DZD",
		"  - General Expenses: 250,000 DZD",
		"- Net Profit/Loss: 150,000 DZD (Profit)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing line %q:\n%s", want, got)
		}
	}
}

func TestFormatSummaryLoss(t *testing.T) {
	got := FormatSummary(Aggregate{Totals: Totals{NetProfit: -5000}})
	if !strings.Contains(got, "-5,000 DZD (Loss)") {
		t.Errorf("summary should tag a negative net as Loss:\n%s", got)
	}
}
