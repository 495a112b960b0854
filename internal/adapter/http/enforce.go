package httpadapter

import "net/http"

// The enforcement endpoints mirror the scheduler's entry points so the
// sweeps can be driven manually or by an external trigger. Each returns the
// sweep's summary record; per-campaign failures are inside the summary, so
// these never fail except for transport reasons.

func (h *Handler) handleEnforceBudgets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.EnforceBudgetLimits(r.Context()))
}

func (h *Handler) handleEnforceDayparting(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.EnforceDayparting(r.Context()))
}

func (h *Handler) handleResetDaily(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ResetDailySpends(r.Context()))
}

func (h *Handler) handleResetMonthly(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ResetMonthlySpends(r.Context()))
}
