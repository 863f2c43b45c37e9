// Package http exposes the dashboard JSON API: workbook upload, the derived
// aggregate views, and report requests.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"mizaniya/internal/ingest"
	applog "mizaniya/internal/log"
	"mizaniya/internal/report"
	"mizaniya/internal/services"
)

type Server struct {
	http.Server
	svc            *services.DatasetService
	googleSrc      ingest.Source
	reporter       report.Reporter
	rateLimiter    *rateLimiter
	uploadMaxBytes int64
	shutdownOnce   sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server. googleSrc may be nil when no spreadsheet is configured; the
// import endpoint then answers 503. reporter may likewise be nil.
func NewServer(addr string, svc *services.DatasetService, googleSrc ingest.Source, reporter report.Reporter, uploadMaxBytes int64) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		svc:            svc,
		googleSrc:      googleSrc,
		reporter:       reporter,
		rateLimiter:    newRateLimiter(),
		uploadMaxBytes: uploadMaxBytes,
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/upload", s.withSecurityHeaders(s.handleUpload))
	mux.HandleFunc("/api/import/google", s.withSecurityHeaders(s.handleGoogleImport))

	mux.HandleFunc("/api/dashboard", s.withSecurityHeaders(s.handleDashboard))
	mux.HandleFunc("/api/totals", s.withSecurityHeaders(s.handleTotals))
	mux.HandleFunc("/api/expenses/monthly", s.withSecurityHeaders(s.handleMonthlyExpenses))
	mux.HandleFunc("/api/seasons/income", s.withSecurityHeaders(s.handleSeasonIncome))
	mux.HandleFunc("/api/seasons/profit", s.withSecurityHeaders(s.handleSeasonProfit))
	mux.HandleFunc("/api/seasons/status", s.withSecurityHeaders(s.handleSeasonStatus))
	mux.HandleFunc("/api/students/unpaid", s.withSecurityHeaders(s.handleUnpaidStudents))
	mux.HandleFunc("/api/groups/income", s.withSecurityHeaders(s.handleGroupIncome))
	mux.HandleFunc("/api/risk", s.withSecurityHeaders(s.handleRisk))

	mux.HandleFunc("/api/reports/generate", s.withSecurityHeaders(s.handleGenerateReport))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withSecurityHeaders adds security headers, rate limiting, and request
// logging to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldClientIP, clientIP,
			applog.FieldUserAgent, r.Header.Get("User-Agent"))

		// Uploads and imports are the expensive paths; reads stay unthrottled.
		if r.Method == http.MethodPost && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				applog.FieldClientIP, clientIP,
				applog.FieldMethod, r.Method,
				applog.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(int(rateLimitWindow/time.Second)))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatus, rw.statusCode,
			applog.FieldDuration, duration.Milliseconds(),
			applog.FieldClientIP, clientIP)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	// The store is primed with the empty aggregate at startup, so the
	// process is ready as soon as it can answer.
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
