// Package report turns a plain-text financial summary into a narrated
// report. The narration backend is pluggable; the process only ever sees
// summary text in and report text out.
package report

import (
	"context"
	"fmt"
	"strings"
)

// Request is one report order: the type of narration wanted and the
// bullet-list summary of the dataset it should describe.
type Request struct {
	Type    string
	Summary string
}

// Report is the narrated result.
type Report struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	Visualizations  []string `json:"visualizations"`
}

// Reporter narrates a financial summary. Implementations may call an
// external service; errors are surfaced, never swallowed.
type Reporter interface {
	Generate(ctx context.Context, req Request) (Report, error)
}

// StaticReporter produces a deterministic report from the summary text
// alone, with no external calls. It is the default backend and the one
// used in tests.
type StaticReporter struct{}

var _ Reporter = StaticReporter{}

func (StaticReporter) Generate(ctx context.Context, req Request) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if strings.TrimSpace(req.Summary) == "" {
		return Report{}, fmt.Errorf("empty summary")
	}

	rpt := Report{
		Summary:        req.Summary,
		Visualizations: []string{"seasonal_income", "monthly_expenses", "risk_radar"},
	}

	if strings.Contains(req.Summary, "(Loss)") {
		rpt.Recommendations = append(rpt.Recommendations,
			"Spending exceeds income; review the largest expense categories first.")
	} else {
		rpt.Recommendations = append(rpt.Recommendations,
			"Income covers spending; consider building a reserve for the low seasons.")
	}
	if strings.Contains(req.Summary, "Unpaid Students: 0") {
		rpt.Recommendations = append(rpt.Recommendations,
			"All student subscriptions are settled.")
	} else if strings.Contains(req.Summary, "Unpaid Students:") {
		rpt.Recommendations = append(rpt.Recommendations,
			"Follow up on unpaid student subscriptions before the next season.")
	}

	return rpt, nil
}
