package core

import (
	"strconv"
	"testing"
)

func TestSourceDependenceScore(t *testing.T) {
	cases := []struct {
		name                string
		subs, dons, income  float64
		want                int
	}{
		{"no income floors out", 0, 0, 0, 10},
		{"dominant subscriptions", 80, 20, 100, 90},
		{"exactly seventy percent", 70, 30, 100, 90},
		{"moderate split", 60, 40, 100, 70},
		{"even split", 50, 50, 100, 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sourceDependenceScore(tc.subs, tc.dons, tc.income); got != tc.want {
				t.Errorf("sourceDependenceScore(%v, %v, %v) = %d, want %d",
					tc.subs, tc.dons, tc.income, got, tc.want)
			}
		})
	}
}

func TestDonorConcentrationScore(t *testing.T) {
	donors := func(amounts ...float64) []Donor {
		out := make([]Donor, len(amounts))
		for i, a := range amounts {
			out[i].Amount = a
		}
		return out
	}

	cases := []struct {
		name    string
		donors  []Donor
		total   float64
		want    int
	}{
		{"no donors floors out", nil, 0, 10},
		// 100000/105000 ~ 95.2
		{"three large donors dominate", donors(50000, 30000, 20000, 5000), 105000, 90},
		{"evenly spread", donors(10, 10, 10, 10, 10, 10, 10, 10, 10, 10), 100, 10},
		{"fewer than three donors", donors(100, 50), 150, 90},
		{"sixty percent bracket", donors(30, 20, 10, 15, 15, 10), 100, 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := donorConcentrationScore(tc.donors, tc.total); got != tc.want {
				t.Errorf("donorConcentrationScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDonorConcentrationIgnoresRowOrder(t *testing.T) {
	a := []Donor{{Amount: 5000}, {Amount: 50000}, {Amount: 20000}, {Amount: 30000}}
	b := []Donor{{Amount: 50000}, {Amount: 30000}, {Amount: 20000}, {Amount: 5000}}
	if donorConcentrationScore(a, 105000) != donorConcentrationScore(b, 105000) {
		t.Error("score depends on input row order")
	}
}

// typeSeries builds dated expenses for one type from month index to amount.
func typeSeries(typ string, amounts map[int]float64) []Expense {
	var out []Expense
	for m := 0; m < 12; m++ {
		v, ok := amounts[m]
		if !ok {
			continue
		}
		out = append(out, Expense{
			Item:   typ,
			Amount: v,
			Type:   typ,
			Date:   TextDate("15/" + strconv.Itoa(m+1) + "/2024"),
		})
	}
	return out
}

func TestInvoiceEscalationScore(t *testing.T) {
	run := map[int]float64{2: 100, 3: 120, 4: 150}

	cases := []struct {
		name     string
		expenses []Expense
		want     int
	}{
		{"no expenses", nil, 0},
		{"single escalating type", typeSeries("كهرباء", run), 40},
		{"flat series", typeSeries("ماء", map[int]float64{0: 100, 1: 100, 2: 100}), 0},
		{"two escalating types", append(typeSeries("كهرباء", run), typeSeries("ماء", run)...), 75},
		{"three escalating types", append(append(typeSeries("a", run), typeSeries("b", run)...), typeSeries("c", run)...), 100},
		{"increase below threshold", typeSeries("غاز", map[int]float64{2: 100, 3: 109, 4: 119}), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := invoiceEscalationScore(tc.expenses); got != tc.want {
				t.Errorf("invoiceEscalationScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestInvoiceEscalationCountsTypeOnce(t *testing.T) {
	// Two separate escalating runs within one type still count as one.
	amounts := map[int]float64{1: 100, 2: 120, 3: 150, 7: 100, 8: 120, 9: 150}
	if got := invoiceEscalationScore(typeSeries("صيانة", amounts)); got != 40 {
		t.Errorf("score = %d, want 40 for a single type", got)
	}
}

func TestInvoiceEscalationRequiresPositiveHistory(t *testing.T) {
	// A jump out of nothing is not an escalation: both earlier months must
	// be strictly positive.
	amounts := map[int]float64{3: 0, 4: 120, 5: 150}
	if got := invoiceEscalationScore(typeSeries("نقل", amounts)); got != 0 {
		t.Errorf("score = %d, want 0 when history starts at zero", got)
	}
}
