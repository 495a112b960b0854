package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// ResetDailySpends zeroes every campaign's daily counter and then attempts
// to reactivate campaigns paused for DAILY_BUDGET_EXCEEDED. Runs at the
// daily period boundary.
func (u *CampaignUseCase) ResetDailySpends(ctx context.Context) port.ResetResult {
	return u.resetSpends(ctx, "daily", u.repo.ResetDailySpend, domain.ReasonDailyBudgetExceeded)
}

// ResetMonthlySpends zeroes every campaign's monthly counter and then
// attempts to reactivate campaigns paused for MONTHLY_BUDGET_EXCEEDED. Runs
// at the monthly period boundary.
func (u *CampaignUseCase) ResetMonthlySpends(ctx context.Context) port.ResetResult {
	return u.resetSpends(ctx, "monthly", u.repo.ResetMonthlySpend, domain.ReasonMonthlyBudgetExceeded)
}

// resetSpends is the shared reset pass. Counter resets and reactivations are
// best-effort per campaign: a failure is tallied and the pass moves on, so a
// partial run leaves already-reset campaigns reset and the rest for the next
// invocation. Campaigns failing the eligibility check stay paused with their
// reason unchanged.
func (u *CampaignUseCase) resetSpends(ctx context.Context, period string, reset func(context.Context, uuid.UUID) error, reason domain.PauseReason) port.ResetResult {
	var res port.ResetResult

	campaigns, err := u.repo.AllCampaigns(ctx)
	if err != nil {
		u.logger.Error("spend reset: list campaigns",
			slog.String("period", period), slog.Any("error", err))
		res.Errors++
		return res
	}

	for i := range campaigns {
		id := campaigns[i].Campaign.ID
		if err = reset(ctx, id); err != nil {
			u.logger.Error("spend reset: reset counter",
				slog.String("period", period),
				slog.String("campaign_id", id.String()), slog.Any("error", err))
			res.Errors++
			continue
		}
		res.Reset++
	}

	// Fetched after the counters were zeroed, so the eligibility check sees
	// the reset values.
	paused, err := u.repo.PausedCampaignsByReason(ctx, reason)
	if err != nil {
		u.logger.Error("spend reset: list paused campaigns",
			slog.String("period", period), slog.Any("error", err))
		res.Errors++
		return res
	}

	for i := range paused {
		cb := &paused[i]
		ok, err := u.canActivate(ctx, cb)
		if err != nil {
			u.logger.Error("spend reset: eligibility check",
				slog.String("campaign_id", cb.Campaign.ID.String()), slog.Any("error", err))
			res.Errors++
			continue
		}
		if !ok {
			continue
		}
		if err = u.repo.ActivateCampaign(ctx, cb.Campaign.ID); err != nil {
			u.logger.Error("spend reset: reactivate campaign",
				slog.String("campaign_id", cb.Campaign.ID.String()), slog.Any("error", err))
			res.Errors++
			continue
		}
		res.Reactivated++
	}

	u.logger.Info("spend reset completed",
		slog.String("period", period),
		slog.Int("reset", res.Reset),
		slog.Int("reactivated", res.Reactivated),
		slog.Int("errors", res.Errors))
	return res
}
