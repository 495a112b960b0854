package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adbudget/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Enforcement operations go through the usecase; plain CRUD talks to
// the repository directly. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	repo   port.Repository
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, repo port.Repository, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, repo: repo, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", h.handleListBrands)
			r.Post("/", h.handleCreateBrand)
			r.Get("/{id}", h.handleGetBrand)
			r.Delete("/{id}", h.handleDeleteBrand)
			r.Get("/{id}/summary", h.handleBrandSummary)
			r.Get("/{id}/campaigns", h.handleBrandCampaigns)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Post("/{id}/pause", h.handlePauseCampaign)
			r.Post("/{id}/activate", h.handleActivateCampaign)
			r.Get("/{id}/can-activate", h.handleCanActivate)
			r.Get("/{id}/summary", h.handleSpendingSummary)
			r.Get("/{id}/schedule-summary", h.handleScheduleSummary)
			r.Get("/{id}/schedules", h.handleListSchedules)
			r.Post("/{id}/schedules", h.handleCreateSchedule)
			r.Post("/{id}/schedules/default", h.handleCreateDefaultSchedule)
			r.Get("/{id}/spends", h.handleListSpends)
			r.Post("/{id}/spends", h.handleTrackSpend)
		})

		r.Delete("/schedules/{id}", h.handleDeleteSchedule)

		r.Post("/enforce/budgets", h.handleEnforceBudgets)
		r.Post("/enforce/dayparting", h.handleEnforceDayparting)
		r.Post("/reset/daily", h.handleResetDaily)
		r.Post("/reset/monthly", h.handleResetMonthly)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// urlID parses the {id} path parameter. A response is written on failure.
func (h *Handler) urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// writeJSON encodes v with a JSON content type. Encoding failures are only
// logged; headers are already written by then.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps engine errors onto HTTP statuses.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrInvalidAmount), errors.Is(err, port.ErrInvalidSchedule):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("request error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
