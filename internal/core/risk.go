package core

import "sort"

// Heuristic 0-100 risk indices. Each score is a step function over a
// diagnostic ratio and is monotonic non-decreasing in that ratio. When the
// driving ratio has no data behind it (zero denominator) it is zero and the
// ladder yields its floor.

// sourceDependenceScore flags income that leans on a single source. The
// ratio is the larger of subscriptions and donations as a share of total
// income.
func sourceDependenceScore(subscriptions, donations, income float64) int {
	var ratio float64
	if income > 0 {
		max := subscriptions
		if donations > max {
			max = donations
		}
		ratio = max / income * 100
	}
	switch {
	case ratio >= 70:
		return 90
	case ratio >= 50:
		return 70
	case ratio >= 30:
		return 40
	default:
		return 10
	}
}

// donorConcentrationScore flags dependence on a few large donors: the share
// of the three largest donations in total donations. Ties keep their
// original sheet order. The top bracket opens at 80, not 70 as in the
// source-dependence ladder.
func donorConcentrationScore(donors []Donor, totalDonations float64) int {
	var ratio float64
	if len(donors) > 0 && totalDonations > 0 {
		sorted := make([]Donor, len(donors))
		copy(sorted, donors)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Amount > sorted[j].Amount
		})
		var top3 float64
		for i := 0; i < 3 && i < len(sorted); i++ {
			top3 += sorted[i].Amount
		}
		ratio = top3 / totalDonations * 100
	}
	switch {
	case ratio >= 80:
		return 90
	case ratio >= 60:
		return 70
	case ratio >= 40:
		return 40
	default:
		return 10
	}
}

// invoiceEscalationScore counts expense types whose 12-month series shows
// two consecutive increases above 10% (both earlier months strictly
// positive). A type counts at most once however many escalating runs it
// has.
func invoiceEscalationScore(expenses []Expense) int {
	byType := make(map[string]*[12]float64)
	for _, ex := range expenses {
		if ex.Type == "" {
			continue
		}
		m := MonthIndex(ex.Date)
		if m < 0 || m >= 12 {
			continue
		}
		series, ok := byType[ex.Type]
		if !ok {
			series = new([12]float64)
			byType[ex.Type] = series
		}
		series[m] += ex.Amount
	}

	escalating := 0
	for _, series := range byType {
		for i := 2; i < 12; i++ {
			prev, prev2 := series[i-1], series[i-2]
			if prev > 0 && prev2 > 0 &&
				series[i] > prev*1.1 && prev > prev2*1.1 {
				escalating++
				break
			}
		}
	}

	switch {
	case escalating >= 3:
		return 100
	case escalating == 2:
		return 75
	case escalating == 1:
		return 40
	default:
		return 0
	}
}
