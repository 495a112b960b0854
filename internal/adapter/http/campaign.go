package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
)

type campaignResponse struct {
	ID           uuid.UUID           `json:"id"`
	BrandID      uuid.UUID           `json:"brand_id"`
	Name         string              `json:"name"`
	Status       string              `json:"status"`
	DailySpend   decimal.Decimal     `json:"daily_spend"`
	MonthlySpend decimal.Decimal     `json:"monthly_spend"`
	PauseReason  *domain.PauseReason `json:"pause_reason,omitempty"`
	PausedAt     *time.Time          `json:"paused_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		BrandID:      c.BrandID,
		Name:         c.Name,
		Status:       string(c.Status),
		DailySpend:   c.DailySpend,
		MonthlySpend: c.MonthlySpend,
		PauseReason:  c.PauseReason,
		PausedAt:     c.PausedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BrandID uuid.UUID `json:"brand_id"`
		Name    string    `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.BrandID == uuid.Nil {
		http.Error(w, "brand_id and name are required", http.StatusBadRequest)
		return
	}
	brand, err := h.repo.GetBrand(r.Context(), req.BrandID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if brand == nil {
		http.Error(w, "unknown brand", http.StatusBadRequest)
		return
	}
	c := domain.Campaign{BrandID: req.BrandID, Name: req.Name, Status: domain.StatusActive}
	if err := h.repo.CreateCampaign(r.Context(), &c); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(&c))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.repo.AllCampaigns(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		resp = append(resp, toCampaignResponse(&campaigns[i].Campaign))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	c, err := h.repo.GetCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if c == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	if err := h.repo.DeleteCampaign(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePauseCampaign pauses a campaign manually. The MANUAL reason is only
// reachable through this operator endpoint; the sweeps never touch
// manually paused campaigns.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Pause(r.Context(), id, domain.ReasonManual); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	activated, err := h.svc.Activate(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"activated": activated})
}

func (h *Handler) handleCanActivate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	can, err := h.svc.CanActivate(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"can_activate": can})
}

func (h *Handler) handleSpendingSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	summary, err := h.svc.SpendingSummary(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleScheduleSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	summary, err := h.svc.ScheduleSummary(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
