package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mizaniya/internal/core"
	"mizaniya/internal/report"
)

type generateReportRequest struct {
	ReportType string `json:"reportType"`
}

// handleGenerateReport narrates the current snapshot synchronously through
// the configured reporter. The queued pipeline covers the upload-triggered
// path; this endpoint is for on-demand reports.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if s.reporter == nil {
		writeError(w, http.StatusServiceUnavailable, "no report backend configured")
		return
	}

	// An empty body means the default report type.
	var req generateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ReportType == "" {
		req.ReportType = r.URL.Query().Get("type")
	}
	if req.ReportType == "" {
		req.ReportType = "financial_summary"
	}

	snap := s.svc.Current()
	rpt, err := s.reporter.Generate(r.Context(), report.Request{
		Type:    req.ReportType,
		Summary: core.FormatSummary(snap.Aggregate),
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Report generation error", "error", err, "version", snap.Version)
		writeError(w, http.StatusBadGateway, "report generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"version": snap.Version,
		"report":  rpt,
	})
}
