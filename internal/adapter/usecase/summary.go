package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/port"
)

var hundred = decimal.NewFromInt(100)

// percentOf returns spend over budget as a percentage. Budgets are
// constrained positive in the schema; a non-positive one reads as zero
// rather than dividing by it.
func percentOf(spend, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	return spend.Div(budget).Mul(hundred)
}

// SpendingSummary reports one campaign's spend against its brand budgets.
// The daily and monthly figures are summed from the ledger for the current
// date and month; the remaining figures derive from the denormalized
// counters, which are what enforcement acts on.
func (u *CampaignUseCase) SpendingSummary(ctx context.Context, campaignID uuid.UUID) (*port.SpendingSummary, error) {
	cb, err := u.campaignBudget(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	dailySpend, err := u.repo.DailySpendTotal(ctx, campaignID, now)
	if err != nil {
		return nil, fmt.Errorf("daily spend total: %w", err)
	}
	monthlySpend, err := u.repo.MonthlySpendTotal(ctx, campaignID, now.Year(), now.Month())
	if err != nil {
		return nil, fmt.Errorf("monthly spend total: %w", err)
	}

	return &port.SpendingSummary{
		CampaignID:        cb.Campaign.ID,
		CampaignName:      cb.Campaign.Name,
		BrandName:         cb.Brand.Name,
		DailySpend:        dailySpend,
		MonthlySpend:      monthlySpend,
		DailyBudget:       cb.Brand.DailyBudget,
		MonthlyBudget:     cb.Brand.MonthlyBudget,
		DailyRemaining:    cb.Brand.DailyBudget.Sub(cb.Campaign.DailySpend),
		MonthlyRemaining:  cb.Brand.MonthlyBudget.Sub(cb.Campaign.MonthlySpend),
		DailyPercentage:   percentOf(dailySpend, cb.Brand.DailyBudget),
		MonthlyPercentage: percentOf(monthlySpend, cb.Brand.MonthlyBudget),
		Status:            string(cb.Campaign.Status),
		PauseReason:       cb.Campaign.PauseReason,
	}, nil
}

// BrandSpendingSummary aggregates counters and statuses across all of a
// brand's campaigns.
func (u *CampaignUseCase) BrandSpendingSummary(ctx context.Context, brandID uuid.UUID) (*port.BrandSpendingSummary, error) {
	brand, err := u.repo.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, fmt.Errorf("brand %s: %w", brandID, port.ErrNotFound)
	}

	campaigns, err := u.repo.CampaignsForBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	summary := &port.BrandSpendingSummary{
		BrandID:        brand.ID,
		BrandName:      brand.Name,
		DailySpend:     decimal.Zero,
		MonthlySpend:   decimal.Zero,
		DailyBudget:    brand.DailyBudget,
		MonthlyBudget:  brand.MonthlyBudget,
		TotalCampaigns: len(campaigns),
	}
	for i := range campaigns {
		c := &campaigns[i]
		summary.DailySpend = summary.DailySpend.Add(c.DailySpend)
		summary.MonthlySpend = summary.MonthlySpend.Add(c.MonthlySpend)
		if c.IsActive() {
			summary.ActiveCampaigns++
		} else {
			summary.PausedCampaigns++
		}
	}
	summary.DailyRemaining = brand.DailyBudget.Sub(summary.DailySpend)
	summary.MonthlyRemaining = brand.MonthlyBudget.Sub(summary.MonthlySpend)
	summary.DailyPercentage = percentOf(summary.DailySpend, brand.DailyBudget)
	summary.MonthlyPercentage = percentOf(summary.MonthlySpend, brand.MonthlyBudget)
	return summary, nil
}
