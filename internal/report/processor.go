package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mizaniya/internal/amqp"
)

// Processor handles report requests pulled off the queue. Generated
// reports are written to the structured log; there is no report store.
type Processor struct {
	reporter Reporter
	timeout  time.Duration
}

func NewProcessor(reporter Reporter) *Processor {
	return &Processor{
		reporter: reporter,
		timeout:  30 * time.Second,
	}
}

// HandleReportRequest generates the report for one queued request.
// A returned error requeues the message.
func (p *Processor) HandleReportRequest(ctx context.Context, msg *amqp.ReportRequestMessage) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	rpt, err := p.reporter.Generate(ctx, Request{
		Type:    msg.ReportType,
		Summary: msg.Summary,
	})
	if err != nil {
		return fmt.Errorf("generate report (version %d): %w", msg.Version, err)
	}

	slog.InfoContext(ctx, "Report generated",
		"version", msg.Version,
		"report_type", msg.ReportType,
		"recommendations", len(rpt.Recommendations),
		"summary_lines", strings.Count(rpt.Summary, "\n")+1)

	return nil
}
