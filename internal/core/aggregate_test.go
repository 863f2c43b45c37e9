package core

import (
	"reflect"
	"testing"
)

func TestComputeEmptyDataset(t *testing.T) {
	agg := Compute(Dataset{})

	want := Totals{}
	if agg.Totals != want {
		t.Errorf("totals = %+v, want all zero", agg.Totals)
	}
	if len(agg.UnpaidStudents) != 0 {
		t.Errorf("unpaid = %d entries, want 0", len(agg.UnpaidStudents))
	}
	if len(agg.MonthlyExpenses) != 12 {
		t.Fatalf("monthly series has %d buckets, want 12", len(agg.MonthlyExpenses))
	}
	for _, m := range agg.MonthlyExpenses {
		if m.Total != 0 {
			t.Errorf("month %s total = %v, want 0", m.Month, m.Total)
		}
	}
	if agg.RiskRadar.SourceDependence != 10 {
		t.Errorf("source dependence = %d, want floor 10", agg.RiskRadar.SourceDependence)
	}
	if agg.RiskRadar.DonorConcentration != 10 {
		t.Errorf("donor concentration = %d, want floor 10", agg.RiskRadar.DonorConcentration)
	}
	if agg.RiskRadar.InvoiceEscalation != 0 {
		t.Errorf("invoice escalation = %d, want floor 0", agg.RiskRadar.InvoiceEscalation)
	}
}

func TestComputeStudentSeasons(t *testing.T) {
	ds := Dataset{
		Students: []Student{
			{Name: "أحمد", Teacher: "الشيخ يوسف", Seasons: [4]float64{2500, 0, 2500, 2500}},
		},
	}
	agg := Compute(ds)

	if agg.Totals.Subscriptions != 7500 {
		t.Errorf("subscriptions = %v, want 7500", agg.Totals.Subscriptions)
	}
	if len(agg.UnpaidStudents) != 1 {
		t.Fatalf("unpaid = %d entries, want 1", len(agg.UnpaidStudents))
	}
	entry := agg.UnpaidStudents[0]
	if entry.Name != "أحمد" || entry.Season != SeasonNames[1] || entry.Teacher != "الشيخ يوسف" {
		t.Errorf("unexpected unpaid entry %+v", entry)
	}
	if agg.SeasonalPaymentStatus[1].Unpaid != 1 {
		t.Errorf("season 2 unpaid = %d, want 1", agg.SeasonalPaymentStatus[1].Unpaid)
	}
	if agg.SeasonalPaymentStatus[0].Paid != 1 {
		t.Errorf("season 1 paid = %d, want 1", agg.SeasonalPaymentStatus[0].Paid)
	}
	if agg.GroupIncome["الشيخ يوسف"] != 7500 {
		t.Errorf("group income = %v, want 7500", agg.GroupIncome["الشيخ يوسف"])
	}
}

func TestComputeNegativeSeasonCountsAsPaid(t *testing.T) {
	ds := Dataset{
		Students: []Student{{Name: "مريم", Seasons: [4]float64{-500, 1000, 1000, 1000}}},
	}
	agg := Compute(ds)
	if len(agg.UnpaidStudents) != 0 {
		t.Errorf("refund season flagged unpaid: %+v", agg.UnpaidStudents)
	}
	if agg.SeasonalPaymentStatus[0].Paid != 1 {
		t.Errorf("season 1 paid = %d, want 1", agg.SeasonalPaymentStatus[0].Paid)
	}
}

func TestComputeGroupIncomeAcrossStudents(t *testing.T) {
	ds := Dataset{
		Students: []Student{
			{Name: "a", Teacher: "t1", Seasons: [4]float64{100, 100, 100, 100}},
			{Name: "b", Teacher: "t1", Seasons: [4]float64{50, 0, 0, 0}},
			{Name: "c", Teacher: "t2", Seasons: [4]float64{0, 0, 0, 0}},
		},
	}
	agg := Compute(ds)
	if agg.GroupIncome["t1"] != 450 {
		t.Errorf("t1 income = %v, want 450", agg.GroupIncome["t1"])
	}
	// A teacher whose students paid nothing still appears in the map.
	if v, ok := agg.GroupIncome["t2"]; !ok || v != 0 {
		t.Errorf("t2 income = %v (present %v), want 0 present", v, ok)
	}
}

func TestComputeSalaryTotals(t *testing.T) {
	sal := StaffSalary{Name: "الإمام", Role: "معلم"}
	sal.Months[0] = 30000
	sal.Months[1] = 30000
	sal.Extra = map[string]float64{"منحة": 5000}

	agg := Compute(Dataset{Salaries: []StaffSalary{sal}})

	if agg.Totals.Salaries != 65000 {
		t.Errorf("salaries total = %v, want 65000", agg.Totals.Salaries)
	}
	// Extra columns count toward the total but have no month bucket.
	var monthlySum float64
	for _, m := range agg.MonthlyExpenses {
		monthlySum += m.Salaries
	}
	if monthlySum != 60000 {
		t.Errorf("monthly salary sum = %v, want 60000", monthlySum)
	}
	if agg.MonthlyExpenses[0].Salaries != 30000 {
		t.Errorf("january salaries = %v, want 30000", agg.MonthlyExpenses[0].Salaries)
	}
}

func TestComputeDonationSeasonBucketing(t *testing.T) {
	ds := Dataset{
		Donors: []Donor{
			{Name: "d1", Amount: 1000, Date: TextDate("15/02/2024")}, // month 1, season 1
			{Name: "d2", Amount: 2000, Date: TextDate("2024-07-10")}, // month 6, season 3
			{Name: "d3", Amount: 4000, Date: TextDate("not a date")}, // excluded from buckets
		},
	}
	agg := Compute(ds)

	if agg.SeasonalIncomeAnalysis[0].Donations != 1000 {
		t.Errorf("season 1 donations = %v, want 1000", agg.SeasonalIncomeAnalysis[0].Donations)
	}
	if agg.SeasonalIncomeAnalysis[2].Donations != 2000 {
		t.Errorf("season 3 donations = %v, want 2000", agg.SeasonalIncomeAnalysis[2].Donations)
	}
	// The undated donation still counts toward the overall total.
	if agg.Totals.Donations != 7000 {
		t.Errorf("total donations = %v, want 7000", agg.Totals.Donations)
	}
	var bucketed float64
	for _, s := range agg.SeasonalIncomeAnalysis {
		bucketed += s.Donations
	}
	if bucketed != 3000 {
		t.Errorf("bucketed donations = %v, want 3000", bucketed)
	}
}

// Undated expenses count toward totals but are absent from the monthly
// series, so the series sum can be smaller than totals.Expenses.
func TestComputeUndatedExpenseAsymmetry(t *testing.T) {
	ds := Dataset{
		Expenses: []Expense{
			{Item: "كهرباء", Amount: 300, Date: TextDate("10/01/2024"), Type: "فواتير"},
			{Item: "صيانة", Amount: 700, Date: TextDate("غير معروف"), Type: "صيانة"},
		},
	}
	agg := Compute(ds)

	if agg.Totals.GeneralExpenses != 1000 {
		t.Errorf("general expenses = %v, want 1000", agg.Totals.GeneralExpenses)
	}
	var monthlySum float64
	for _, m := range agg.MonthlyExpenses {
		monthlySum += m.Total
	}
	if monthlySum != 300 {
		t.Errorf("monthly series sum = %v, want 300", monthlySum)
	}
}

func TestComputeIncomeAndProfitInvariants(t *testing.T) {
	ds := Dataset{
		Students: []Student{{Name: "a", Seasons: [4]float64{1000, 1000, 0, 500}}},
		Donors: []Donor{
			{Name: "d", Amount: 1500, Date: TextDate("05/05/2024")},
		},
		Salaries: []StaffSalary{func() StaffSalary {
			s := StaffSalary{Name: "n"}
			s.Months[4] = 800
			return s
		}()},
		Expenses: []Expense{
			{Item: "x", Amount: 200, Date: TextDate("20/11/2024"), Type: "t"},
		},
	}
	agg := Compute(ds)

	if got, want := agg.Totals.Income, agg.Totals.Subscriptions+agg.Totals.Donations; got != want {
		t.Errorf("income = %v, want subscriptions+donations = %v", got, want)
	}
	if got, want := agg.Totals.NetProfit, agg.Totals.Income-agg.Totals.Expenses; got != want {
		t.Errorf("netProfit = %v, want income-expenses = %v", got, want)
	}
	var seasonIncome float64
	for _, s := range agg.SeasonalIncomeAnalysis {
		seasonIncome += s.Total
	}
	if seasonIncome != agg.Totals.Income {
		t.Errorf("seasonal income sum = %v, want %v", seasonIncome, agg.Totals.Income)
	}
	for i, p := range agg.SeasonalAnalysis {
		if p.NetProfit != p.Income-p.Expenses {
			t.Errorf("season %d netProfit = %v, want %v", i+1, p.NetProfit, p.Income-p.Expenses)
		}
	}
}

func TestComputeSeriesFollowCanonicalOrder(t *testing.T) {
	agg := Compute(Dataset{})
	for i, m := range agg.MonthlyExpenses {
		if m.Month != MonthOrder[i] {
			t.Errorf("bucket %d is %q, want %q", i, m.Month, MonthOrder[i])
		}
	}
	for i, s := range agg.SeasonalIncomeAnalysis {
		if s.Name != SeasonNames[i] {
			t.Errorf("season bucket %d is %q, want %q", i, s.Name, SeasonNames[i])
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	ds := Dataset{
		Students: []Student{{Name: "a", Teacher: "t", Seasons: [4]float64{100, 0, 200, 300}}},
		Donors:   []Donor{{Name: "d", Amount: 500, Date: SerialDate(45337)}},
		Expenses: []Expense{{Item: "i", Amount: 50, Date: TextDate("01/03/2024"), Type: "نوع"}},
	}
	first := Compute(ds)
	second := Compute(ds)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated computation over the same dataset differs")
	}
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2500", 2500},
		{" 12.5 ", 12.5},
		{"", 0},
		{"غير مدفوع", 0},
		{"-300", -300},
	}
	for _, tc := range cases {
		if got := ToNumber(tc.in); got != tc.want {
			t.Errorf("ToNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
