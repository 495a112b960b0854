package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// TrackSpend appends a spend to the ledger and increments the campaign's
// running totals as one transactional unit, then synchronously checks the
// campaign's budget. This hot-path check catches overspend immediately
// rather than waiting for the next enforcement sweep.
func (u *CampaignUseCase) TrackSpend(ctx context.Context, campaignID uuid.UUID, amount decimal.Decimal, spendDate *time.Time, description string) (*domain.Spend, error) {
	if amount.Sign() <= 0 {
		return nil, port.ErrInvalidAmount
	}

	cb, err := u.campaignBudget(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	date := u.now()
	if spendDate != nil {
		date = *spendDate
	}

	spend := &domain.Spend{
		CampaignID:  campaignID,
		Amount:      amount,
		SpendDate:   date,
		SpendType:   domain.SpendDaily,
		Description: description,
	}
	updated, err := u.repo.CreateSpend(ctx, spend)
	if err != nil {
		return nil, fmt.Errorf("create spend: %w", err)
	}
	cb.Campaign = *updated

	if _, err = u.CheckBudget(ctx, cb); err != nil {
		// The spend is already persisted; the next enforcement sweep will
		// correct the campaign state.
		return spend, fmt.Errorf("budget check after spend: %w", err)
	}

	u.logger.Info("tracked spend",
		slog.String("campaign_id", campaignID.String()),
		slog.String("amount", amount.String()))
	return spend, nil
}

// CheckBudget evaluates the campaign's counters against its brand budgets
// and pauses the campaign when a limit is reached or exceeded. Equalling the
// budget counts as exceeded. The daily check runs first, but when both
// limits are tripped the monthly pause overwrites the daily one, so the
// recorded reason is MONTHLY_BUDGET_EXCEEDED.
func (u *CampaignUseCase) CheckBudget(ctx context.Context, cb *port.CampaignBudget) (port.BudgetStatus, error) {
	var st port.BudgetStatus
	c := &cb.Campaign
	wasActive := c.IsActive()

	if c.DailySpend.GreaterThanOrEqual(cb.Brand.DailyBudget) {
		st.DailyExceeded = true
		if wasActive {
			if err := u.pause(ctx, c, domain.ReasonDailyBudgetExceeded); err != nil {
				return st, err
			}
			st.Action = port.ActionPausedDaily
			u.logger.Info("paused campaign over daily budget",
				slog.String("campaign_id", c.ID.String()))
		}
	}

	if c.MonthlySpend.GreaterThanOrEqual(cb.Brand.MonthlyBudget) {
		st.MonthlyExceeded = true
		if wasActive {
			if err := u.pause(ctx, c, domain.ReasonMonthlyBudgetExceeded); err != nil {
				return st, err
			}
			st.Action = port.ActionPausedMonthly
			u.logger.Info("paused campaign over monthly budget",
				slog.String("campaign_id", c.ID.String()))
		}
	}

	return st, nil
}

// EnforceBudgetLimits sweeps every ACTIVE campaign and pauses those at or
// over a budget limit. Per-campaign failures are tallied, never propagated;
// the next scheduled run retries any campaign this one could not correct.
func (u *CampaignUseCase) EnforceBudgetLimits(ctx context.Context) port.EnforcementResult {
	var res port.EnforcementResult

	campaigns, err := u.repo.ActiveCampaigns(ctx)
	if err != nil {
		u.logger.Error("budget enforcement: list active campaigns", slog.Any("error", err))
		res.Errors++
		return res
	}

	for i := range campaigns {
		cb := &campaigns[i]
		res.Checked++
		st, err := u.CheckBudget(ctx, cb)
		if err != nil {
			u.logger.Error("budget enforcement: check campaign",
				slog.String("campaign_id", cb.Campaign.ID.String()), slog.Any("error", err))
			res.Errors++
			continue
		}
		switch st.Action {
		case port.ActionPausedDaily:
			res.PausedDaily++
		case port.ActionPausedMonthly:
			res.PausedMonthly++
		}
	}

	u.logger.Info("budget enforcement completed",
		slog.Int("checked", res.Checked),
		slog.Int("paused_daily", res.PausedDaily),
		slog.Int("paused_monthly", res.PausedMonthly),
		slog.Int("errors", res.Errors))
	return res
}
