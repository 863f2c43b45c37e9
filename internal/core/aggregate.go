package core

// Derived aggregate types. Field tags match the payloads the dashboard and
// report layers consume.

type (
	// Totals are the headline figures across all four record sets.
	Totals struct {
		Students        int     `json:"students"`
		Subscriptions   float64 `json:"subscriptions"`
		Donations       float64 `json:"donations"`
		Salaries        float64 `json:"salaries"`
		GeneralExpenses float64 `json:"generalExpenses"`
		Expenses        float64 `json:"expenses"`
		Income          float64 `json:"income"`
		NetProfit       float64 `json:"netProfit"`
	}

	// UnpaidSeason marks one student x season with a zero payment.
	UnpaidSeason struct {
		Name    string `json:"name"`
		Season  string `json:"season"`
		Teacher string `json:"teacher"`
	}

	// MonthlyExpense is one bucket of the month-ordered expense series.
	MonthlyExpense struct {
		Month    string  `json:"month"`
		Salaries float64 `json:"salaries"`
		General  float64 `json:"expenses"`
		Total    float64 `json:"total"`
	}

	// SeasonPaymentStatus counts paid and unpaid student subscriptions
	// for one season.
	SeasonPaymentStatus struct {
		Name   string `json:"name"`
		Paid   int    `json:"paid"`
		Unpaid int    `json:"unpaid"`
	}

	// SeasonIncome is one bucket of the season-ordered income series.
	SeasonIncome struct {
		Name          string  `json:"name"`
		Subscriptions float64 `json:"subscriptions"`
		Donations     float64 `json:"donations"`
		Total         float64 `json:"total"`
	}

	// SeasonProfit is one bucket of the season-ordered profit series.
	SeasonProfit struct {
		Name      string  `json:"name"`
		Income    float64 `json:"income"`
		Expenses  float64 `json:"expenses"`
		NetProfit float64 `json:"netProfit"`
	}

	// RiskRadar carries the three heuristic 0-100 risk indices.
	RiskRadar struct {
		SourceDependence   int `json:"sourceDependence"`
		InvoiceEscalation  int `json:"invoiceEscalation"`
		DonorConcentration int `json:"donorConcentration"`
	}

	// Aggregate is the full derived view over one Dataset. It is
	// recomputed wholesale whenever the raw data changes; no field is
	// ever mutated independently of its source records.
	Aggregate struct {
		Totals                 Totals                `json:"totals"`
		UnpaidStudents         []UnpaidSeason        `json:"unpaidStudents"`
		GroupIncome            map[string]float64    `json:"groupIncome"`
		MonthlyExpenses        []MonthlyExpense      `json:"monthlyExpenses"`
		SeasonalPaymentStatus  []SeasonPaymentStatus `json:"seasonalPaymentStatus"`
		SeasonalIncomeAnalysis []SeasonIncome        `json:"seasonalIncomeAnalysis"`
		SeasonalAnalysis       []SeasonProfit        `json:"seasonalAnalysis"`
		RiskRadar              RiskRadar             `json:"riskRadar"`
	}
)

// Compute derives the full aggregate from one dataset. It is a pure
// function: no I/O, no randomness, no error paths. Unresolvable dates drop
// a record from the monthly and seasonal series only; the record still
// contributes to the overall totals.
func Compute(ds Dataset) Aggregate {
	// Subscriptions, group income, unpaid tracking. A season payment is
	// unpaid iff the coerced amount is exactly zero; negative amounts
	// count as paid.
	var seasonSubs [SeasonCount]float64
	groupIncome := make(map[string]float64)
	unpaid := []UnpaidSeason{}
	status := make([]SeasonPaymentStatus, SeasonCount)
	for i := range status {
		status[i].Name = SeasonNames[i]
	}

	for _, st := range ds.Students {
		if st.Teacher != "" {
			if _, ok := groupIncome[st.Teacher]; !ok {
				groupIncome[st.Teacher] = 0
			}
		}
		for season, amount := range st.Seasons {
			seasonSubs[season] += amount
			if st.Teacher != "" {
				groupIncome[st.Teacher] += amount
			}
			if amount == 0 {
				unpaid = append(unpaid, UnpaidSeason{
					Name:    st.Name,
					Season:  SeasonNames[season],
					Teacher: st.Teacher,
				})
				status[season].Unpaid++
			} else {
				status[season].Paid++
			}
		}
	}

	var totalSalaries float64
	for _, sal := range ds.Salaries {
		totalSalaries += sal.Total()
	}

	var totalGeneral float64
	for _, ex := range ds.Expenses {
		totalGeneral += ex.Amount
	}
	totalCosts := totalSalaries + totalGeneral

	// Month-ordered series. Salaries come from the twelve canonical month
	// columns; extra salary columns count toward totals but have no month
	// to land in. Expenses with unresolvable dates are likewise absent
	// here while still included in totalGeneral above.
	var monthlySalaries [12]float64
	for _, sal := range ds.Salaries {
		for m, v := range sal.Months {
			monthlySalaries[m] += v
		}
	}

	var monthlyGeneral [12]float64
	for _, ex := range ds.Expenses {
		if m := MonthIndex(ex.Date); m >= 0 && m < 12 {
			monthlyGeneral[m] += ex.Amount
		}
	}

	monthly := make([]MonthlyExpense, 12)
	for m := 0; m < 12; m++ {
		monthly[m] = MonthlyExpense{
			Month:    MonthOrder[m],
			Salaries: monthlySalaries[m],
			General:  monthlyGeneral[m],
			Total:    monthlySalaries[m] + monthlyGeneral[m],
		}
	}

	// Donations bucket straight from the resolved month; months past the
	// third quarter fall into the last season, mirroring how the sheet's
	// quarter ladder has always read.
	var seasonDonations [SeasonCount]float64
	for _, d := range ds.Donors {
		m := MonthIndex(d.Date)
		if m < 0 {
			continue
		}
		switch {
		case m <= 2:
			seasonDonations[0] += d.Amount
		case m <= 5:
			seasonDonations[1] += d.Amount
		case m <= 8:
			seasonDonations[2] += d.Amount
		default:
			seasonDonations[3] += d.Amount
		}
	}

	income := make([]SeasonIncome, SeasonCount)
	for s := 0; s < SeasonCount; s++ {
		income[s] = SeasonIncome{
			Name:          SeasonNames[s],
			Subscriptions: seasonSubs[s],
			Donations:     seasonDonations[s],
			Total:         seasonSubs[s] + seasonDonations[s],
		}
	}

	// Season expenses are the monthly totals summed three at a time.
	var seasonExpenses [SeasonCount]float64
	for m, bucket := range monthly {
		seasonExpenses[SeasonOfMonth(m)] += bucket.Total
	}

	profit := make([]SeasonProfit, SeasonCount)
	for s := 0; s < SeasonCount; s++ {
		profit[s] = SeasonProfit{
			Name:      SeasonNames[s],
			Income:    income[s].Total,
			Expenses:  seasonExpenses[s],
			NetProfit: income[s].Total - seasonExpenses[s],
		}
	}

	var totalSubs float64
	for _, v := range seasonSubs {
		totalSubs += v
	}
	var totalDonations float64
	for _, d := range ds.Donors {
		totalDonations += d.Amount
	}
	totalIncome := totalSubs + totalDonations

	return Aggregate{
		Totals: Totals{
			Students:        len(ds.Students),
			Subscriptions:   totalSubs,
			Donations:       totalDonations,
			Salaries:        totalSalaries,
			GeneralExpenses: totalGeneral,
			Expenses:        totalCosts,
			Income:          totalIncome,
			NetProfit:       totalIncome - totalCosts,
		},
		UnpaidStudents:         unpaid,
		GroupIncome:            groupIncome,
		MonthlyExpenses:        monthly,
		SeasonalPaymentStatus:  status,
		SeasonalIncomeAnalysis: income,
		SeasonalAnalysis:       profit,
		RiskRadar: RiskRadar{
			SourceDependence:   sourceDependenceScore(totalSubs, totalDonations, totalIncome),
			InvoiceEscalation:  invoiceEscalationScore(ds.Expenses),
			DonorConcentration: donorConcentrationScore(ds.Donors, totalDonations),
		},
	}
}
