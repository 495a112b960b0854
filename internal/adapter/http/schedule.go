package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"adbudget/internal/core/domain"
)

type scheduleResponse struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	DayOfWeek  int       `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	IsActive   bool      `json:"is_active"`
}

func toScheduleResponse(s *domain.Schedule) scheduleResponse {
	return scheduleResponse{
		ID:         s.ID,
		CampaignID: s.CampaignID,
		DayOfWeek:  int(s.DayOfWeek),
		StartTime:  s.StartTime.String(),
		EndTime:    s.EndTime.String(),
		IsActive:   s.IsActive,
	}
}

func (h *Handler) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	var req struct {
		DayOfWeek int    `json:"day_of_week"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.DayOfWeek < int(domain.Monday) || req.DayOfWeek > int(domain.Sunday) {
		http.Error(w, "day_of_week must be 0 (Monday) through 6 (Sunday)", http.StatusBadRequest)
		return
	}
	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time", http.StatusBadRequest)
		return
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		http.Error(w, "invalid end_time", http.StatusBadRequest)
		return
	}

	s := domain.Schedule{
		CampaignID: id,
		DayOfWeek:  domain.DayOfWeek(req.DayOfWeek),
		StartTime:  start,
		EndTime:    end,
		IsActive:   true,
	}
	if err = h.repo.CreateSchedule(r.Context(), &s); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toScheduleResponse(&s))
}

func (h *Handler) handleCreateDefaultSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	schedules, err := h.svc.CreateDefaultSchedule(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]scheduleResponse, 0, len(schedules))
	for i := range schedules {
		resp = append(resp, toScheduleResponse(&schedules[i]))
	}
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	schedules, err := h.repo.SchedulesForCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]scheduleResponse, 0, len(schedules))
	for i := range schedules {
		resp = append(resp, toScheduleResponse(&schedules[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	if err := h.repo.DeleteSchedule(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
