package http

import (
	"net/http"
)

// Read handlers serve slices of the current snapshot. Every response
// carries the snapshot version so a client can tell which upload it is
// looking at.

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":    snap.Version,
		"replacedAt": snap.ReplacedAt,
		"data":       snap.Aggregate,
	})
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version": snap.Version,
		"totals":  snap.Aggregate.Totals,
	})
}

func (s *Server) handleMonthlyExpenses(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":         snap.Version,
		"monthlyExpenses": snap.Aggregate.MonthlyExpenses,
	})
}

func (s *Server) handleSeasonIncome(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":                snap.Version,
		"seasonalIncomeAnalysis": snap.Aggregate.SeasonalIncomeAnalysis,
	})
}

func (s *Server) handleSeasonProfit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":          snap.Version,
		"seasonalAnalysis": snap.Aggregate.SeasonalAnalysis,
	})
}

func (s *Server) handleSeasonStatus(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":               snap.Version,
		"seasonalPaymentStatus": snap.Aggregate.SeasonalPaymentStatus,
	})
}

func (s *Server) handleUnpaidStudents(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":        snap.Version,
		"unpaidStudents": snap.Aggregate.UnpaidStudents,
	})
}

func (s *Server) handleGroupIncome(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":     snap.Version,
		"groupIncome": snap.Aggregate.GroupIncome,
	})
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.svc.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":   snap.Version,
		"riskRadar": snap.Aggregate.RiskRadar,
	})
}
