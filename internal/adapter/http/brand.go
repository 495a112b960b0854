package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
)

type brandRequest struct {
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

type brandResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toBrandResponse(b *domain.Brand) brandResponse {
	return brandResponse{
		ID:            b.ID,
		Name:          b.Name,
		DailyBudget:   b.DailyBudget,
		MonthlyBudget: b.MonthlyBudget,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (h *Handler) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.DailyBudget.Sign() <= 0 || req.MonthlyBudget.Sign() <= 0 {
		http.Error(w, "budgets must be positive", http.StatusBadRequest)
		return
	}
	b := domain.Brand{Name: req.Name, DailyBudget: req.DailyBudget, MonthlyBudget: req.MonthlyBudget}
	if err := h.repo.CreateBrand(r.Context(), &b); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toBrandResponse(&b))
}

func (h *Handler) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.repo.ListBrands(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]brandResponse, 0, len(brands))
	for i := range brands {
		resp = append(resp, toBrandResponse(&brands[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	b, err := h.repo.GetBrand(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if b == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, toBrandResponse(b))
}

func (h *Handler) handleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	if err := h.repo.DeleteBrand(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleBrandSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	summary, err := h.svc.BrandSpendingSummary(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleBrandCampaigns(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	campaigns, err := h.repo.CampaignsForBrand(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		resp = append(resp, toCampaignResponse(&campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}
