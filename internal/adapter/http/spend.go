package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
)

type spendResponse struct {
	ID          uuid.UUID       `json:"id"`
	CampaignID  uuid.UUID       `json:"campaign_id"`
	Amount      decimal.Decimal `json:"amount"`
	SpendDate   string          `json:"spend_date"`
	SpendType   string          `json:"spend_type"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toSpendResponse(s *domain.Spend) spendResponse {
	return spendResponse{
		ID:          s.ID,
		CampaignID:  s.CampaignID,
		Amount:      s.Amount,
		SpendDate:   s.SpendDate.Format("2006-01-02"),
		SpendType:   string(s.SpendType),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// handleTrackSpend records a spend against a campaign. The amount must be
// positive; spend_date defaults to today when omitted. The campaign may
// come back paused if this spend reached a budget limit.
func (h *Handler) handleTrackSpend(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	var req struct {
		Amount      decimal.Decimal `json:"amount"`
		SpendDate   string          `json:"spend_date"`
		Description string          `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var spendDate *time.Time
	if req.SpendDate != "" {
		d, err := time.Parse("2006-01-02", req.SpendDate)
		if err != nil {
			http.Error(w, "invalid spend_date", http.StatusBadRequest)
			return
		}
		spendDate = &d
	}

	spend, err := h.svc.TrackSpend(r.Context(), id, req.Amount, spendDate, req.Description)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toSpendResponse(spend))
}

func (h *Handler) handleListSpends(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	spends, err := h.repo.SpendsForCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]spendResponse, 0, len(spends))
	for i := range spends {
		resp = append(resp, toSpendResponse(&spends[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}
