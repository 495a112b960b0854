package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the enforcement
// engine. This interface represents the primary port into the application
// domain. The sweep methods never return an error for per-campaign failures;
// those are tallied in the returned summary and retried by the next run.
type CampaignUseCase interface {
	// TrackSpend appends a spend to the ledger, increments the campaign's
	// running totals and synchronously checks its budget, pausing it when a
	// limit is reached. A nil spendDate defaults to today.
	TrackSpend(ctx context.Context, campaignID uuid.UUID, amount decimal.Decimal, spendDate *time.Time, description string) (*domain.Spend, error)

	// CheckBudget compares the campaign's counters against its brand budgets
	// and pauses it when a limit is reached or exceeded. Reaching the limit
	// exactly counts as exceeded.
	CheckBudget(ctx context.Context, cb *CampaignBudget) (BudgetStatus, error)

	// Pause pauses a campaign with the given reason unconditionally.
	Pause(ctx context.Context, campaignID uuid.UUID, reason domain.PauseReason) error
	// Activate activates a campaign when budget headroom and schedule allow.
	// It returns false, not an error, when the campaign is ineligible.
	Activate(ctx context.Context, campaignID uuid.UUID) (bool, error)
	// CanActivate reports whether the campaign has budget headroom on both
	// periods and is inside its dayparting window right now.
	CanActivate(ctx context.Context, campaignID uuid.UUID) (bool, error)
	// IsScheduledNow reports whether the campaign's schedule allows it to run
	// right now. Campaigns with no active schedule for today are not allowed.
	IsScheduledNow(ctx context.Context, campaignID uuid.UUID) (bool, error)

	// EnforceBudgetLimits sweeps all ACTIVE campaigns, pausing those at or
	// over a budget limit.
	EnforceBudgetLimits(ctx context.Context) EnforcementResult
	// EnforceDayparting pauses ACTIVE campaigns outside their window and
	// reactivates schedule-paused campaigns whose window is open and whose
	// budgets permit.
	EnforceDayparting(ctx context.Context) DaypartingResult
	// ResetDailySpends zeroes every campaign's daily counter and reactivates
	// eligible DAILY_BUDGET_EXCEEDED campaigns.
	ResetDailySpends(ctx context.Context) ResetResult
	// ResetMonthlySpends zeroes every campaign's monthly counter and
	// reactivates eligible MONTHLY_BUDGET_EXCEEDED campaigns.
	ResetMonthlySpends(ctx context.Context) ResetResult

	// CreateDefaultSchedule creates an active 24/7 schedule for the campaign,
	// one window per weekday.
	CreateDefaultSchedule(ctx context.Context, campaignID uuid.UUID) ([]domain.Schedule, error)
	// ScheduleSummary describes the campaign's dayparting configuration.
	ScheduleSummary(ctx context.Context, campaignID uuid.UUID) (*ScheduleSummary, error)
	// SpendingSummary describes the campaign's spend against its budgets.
	SpendingSummary(ctx context.Context, campaignID uuid.UUID) (*SpendingSummary, error)
	// BrandSpendingSummary aggregates spend across a brand's campaigns.
	BrandSpendingSummary(ctx context.Context, brandID uuid.UUID) (*BrandSpendingSummary, error)
}

// BudgetStatus reports the outcome of a single campaign budget check.
// Action is empty when no transition happened.
type BudgetStatus struct {
	DailyExceeded   bool   `json:"daily_exceeded"`
	MonthlyExceeded bool   `json:"monthly_exceeded"`
	Action          string `json:"action_taken,omitempty"`
}

// Possible BudgetStatus.Action values.
const (
	ActionPausedDaily   = "paused_daily"
	ActionPausedMonthly = "paused_monthly"
)

// EnforcementResult summarises a budget enforcement sweep.
type EnforcementResult struct {
	Checked       int `json:"checked"`
	PausedDaily   int `json:"paused_daily"`
	PausedMonthly int `json:"paused_monthly"`
	Errors        int `json:"errors"`
}

// DaypartingResult summarises a dayparting enforcement sweep.
type DaypartingResult struct {
	Activated int `json:"activated"`
	Paused    int `json:"paused"`
	Errors    int `json:"errors"`
}

// ResetResult summarises a daily or monthly period reset.
type ResetResult struct {
	Reset       int `json:"reset"`
	Reactivated int `json:"reactivated"`
	Errors      int `json:"errors"`
}

// ScheduleWindow is one day's window in a ScheduleSummary.
type ScheduleWindow struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

// ScheduleSummary describes a campaign's dayparting configuration.
type ScheduleSummary struct {
	CampaignID     uuid.UUID                 `json:"campaign_id"`
	CampaignName   string                    `json:"campaign_name"`
	TotalSchedules int                       `json:"total_schedules"`
	SchedulesByDay map[string]ScheduleWindow `json:"schedules_by_day"`
	IsScheduledNow bool                      `json:"is_scheduled_now"`
}

// SpendingSummary describes one campaign's spend against its brand budgets.
// The spend figures are ledger aggregates for the current period; the
// remaining figures derive from the denormalized counters.
type SpendingSummary struct {
	CampaignID        uuid.UUID           `json:"campaign_id"`
	CampaignName      string              `json:"campaign_name"`
	BrandName         string              `json:"brand_name"`
	DailySpend        decimal.Decimal     `json:"daily_spend"`
	MonthlySpend      decimal.Decimal     `json:"monthly_spend"`
	DailyBudget       decimal.Decimal     `json:"daily_budget"`
	MonthlyBudget     decimal.Decimal     `json:"monthly_budget"`
	DailyRemaining    decimal.Decimal     `json:"daily_remaining"`
	MonthlyRemaining  decimal.Decimal     `json:"monthly_remaining"`
	DailyPercentage   decimal.Decimal     `json:"daily_percentage"`
	MonthlyPercentage decimal.Decimal     `json:"monthly_percentage"`
	Status            string              `json:"status"`
	PauseReason       *domain.PauseReason `json:"pause_reason,omitempty"`
}

// BrandSpendingSummary aggregates spend across all of a brand's campaigns.
type BrandSpendingSummary struct {
	BrandID           uuid.UUID       `json:"brand_id"`
	BrandName         string          `json:"brand_name"`
	DailySpend        decimal.Decimal `json:"total_daily_spend"`
	MonthlySpend      decimal.Decimal `json:"total_monthly_spend"`
	DailyBudget       decimal.Decimal `json:"daily_budget"`
	MonthlyBudget     decimal.Decimal `json:"monthly_budget"`
	DailyRemaining    decimal.Decimal `json:"daily_remaining"`
	MonthlyRemaining  decimal.Decimal `json:"monthly_remaining"`
	DailyPercentage   decimal.Decimal `json:"daily_percentage"`
	MonthlyPercentage decimal.Decimal `json:"monthly_percentage"`
	TotalCampaigns    int             `json:"total_campaigns"`
	ActiveCampaigns   int             `json:"active_campaigns"`
	PausedCampaigns   int             `json:"paused_campaigns"`
}
