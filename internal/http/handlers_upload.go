package http

import (
	"log/slog"
	"net/http"

	"mizaniya/internal/ingest/excel"
)

// handleUpload accepts a four-sheet .xlsx workbook as multipart form data
// under the "file" field and installs it as the new dataset.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.uploadMaxBytes)
	if err := r.ParseMultipartForm(s.uploadMaxBytes); err != nil {
		slog.ErrorContext(r.Context(), "Parse multipart form error", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing workbook file field 'file'")
		return
	}
	defer file.Close()

	ds, err := excel.NewReader().Parse(file)
	if err != nil {
		slog.ErrorContext(r.Context(), "Workbook parse error",
			"error", err, "filename", header.Filename, "size", header.Size)
		writeError(w, http.StatusUnprocessableEntity, "file is not a readable workbook")
		return
	}

	snap, err := s.svc.ReplaceDataset(r.Context(), ds)
	if err != nil {
		slog.ErrorContext(r.Context(), "Dataset replace error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to install dataset")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"version": snap.Version,
		"totals":  snap.Aggregate.Totals,
	})
}

// handleGoogleImport pulls the four sheets from the configured Google
// spreadsheet and installs them as the new dataset.
func (s *Server) handleGoogleImport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if s.googleSrc == nil {
		writeError(w, http.StatusServiceUnavailable, "no spreadsheet configured")
		return
	}

	snap, err := s.svc.ReplaceFromSource(r.Context(), s.googleSrc)
	if err != nil {
		slog.ErrorContext(r.Context(), "Spreadsheet import error", "error", err)
		writeError(w, http.StatusBadGateway, "spreadsheet fetch failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"version": snap.Version,
		"totals":  snap.Aggregate.Totals,
	})
}
