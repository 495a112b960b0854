package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// CampaignUseCase implements the budget and dayparting enforcement engine.
// It orchestrates the repository to keep campaign run/pause state consistent
// with budgets and schedules. The type is stateless apart from its
// dependencies; all contended state lives behind the repository, which
// serialises per-campaign mutations.
type CampaignUseCase struct {
	repo   port.Repository
	logger *slog.Logger

	// now is indirected for deterministic dayparting tests.
	now func() time.Time
}

// NewCampaignUseCase creates the engine with the provided repository and
// logger.
func NewCampaignUseCase(repo port.Repository, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, logger: logger, now: time.Now}
}

// campaignBudget loads a campaign joined with its brand, mapping a missing
// row to port.ErrNotFound.
func (u *CampaignUseCase) campaignBudget(ctx context.Context, id uuid.UUID) (*port.CampaignBudget, error) {
	cb, err := u.repo.GetCampaignBudget(ctx, id)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, fmt.Errorf("campaign %s: %w", id, port.ErrNotFound)
	}
	return cb, nil
}

// pause transitions the campaign to PAUSED and keeps the in-memory copy in
// step with the persisted row.
func (u *CampaignUseCase) pause(ctx context.Context, c *domain.Campaign, reason domain.PauseReason) error {
	at := u.now()
	if err := u.repo.PauseCampaign(ctx, c.ID, reason, at); err != nil {
		return err
	}
	c.Status = domain.StatusPaused
	c.PauseReason = &reason
	c.PausedAt = &at
	return nil
}

// Pause pauses a campaign unconditionally with the given reason. Re-pausing
// an already paused campaign overwrites the reason and timestamp.
func (u *CampaignUseCase) Pause(ctx context.Context, campaignID uuid.UUID, reason domain.PauseReason) error {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("campaign %s: %w", campaignID, port.ErrNotFound)
	}
	return u.pause(ctx, c, reason)
}

// Activate activates a campaign when budget headroom and schedule allow. It
// returns false rather than an error when the campaign is ineligible, so
// callers can tell "not eligible" from an actual fault.
func (u *CampaignUseCase) Activate(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	cb, err := u.campaignBudget(ctx, campaignID)
	if err != nil {
		return false, err
	}
	ok, err := u.canActivate(ctx, cb)
	if err != nil || !ok {
		return false, err
	}
	if err = u.repo.ActivateCampaign(ctx, campaignID); err != nil {
		return false, err
	}
	return true, nil
}

// CanActivate reports whether the campaign could be activated right now.
func (u *CampaignUseCase) CanActivate(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	cb, err := u.campaignBudget(ctx, campaignID)
	if err != nil {
		return false, err
	}
	return u.canActivate(ctx, cb)
}

// canActivate is the conjunction gating re-activation: daily headroom,
// monthly headroom, then the schedule check. Ordered cheapest first and
// short-circuited.
func (u *CampaignUseCase) canActivate(ctx context.Context, cb *port.CampaignBudget) (bool, error) {
	if cb.Campaign.DailySpend.GreaterThanOrEqual(cb.Brand.DailyBudget) {
		return false, nil
	}
	if cb.Campaign.MonthlySpend.GreaterThanOrEqual(cb.Brand.MonthlyBudget) {
		return false, nil
	}
	return u.isScheduledAt(ctx, cb.Campaign.ID, u.now())
}
