package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
)

var (
	// ErrInvalidAmount is returned when a spend amount is not positive.
	ErrInvalidAmount = errors.New("spend amount must be positive")
	// ErrNotFound is returned when a referenced brand or campaign does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSchedule is returned when a schedule's end time is not after
	// its start time.
	ErrInvalidSchedule = errors.New("end time must be after start time")
)

// CampaignBudget pairs a campaign with its brand's budgets. Sweeps operate
// on these so a single joined query serves a whole pass.
type CampaignBudget struct {
	Campaign domain.Campaign
	Brand    domain.Brand
}

// Repository defines the persistence layer for the enforcement engine. It is
// an outbound port in hexagonal architecture. Implementations must apply
// campaign state and counter mutations atomically per campaign: PauseCampaign,
// ActivateCampaign and the reset methods each persist status, pause_reason and
// paused_at (or a counter) in one statement so the paired pause invariant can
// never be observed half-applied. Point lookups return (nil, nil) when no row
// matches.
type Repository interface {
	// GetBrand returns a brand by id.
	GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	// CreateBrand inserts a brand, filling ID and timestamps.
	CreateBrand(ctx context.Context, b *domain.Brand) error
	// ListBrands returns all brands ordered by name.
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	// DeleteBrand removes a brand and, by cascade, its campaigns.
	DeleteBrand(ctx context.Context, id uuid.UUID) error

	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetCampaignBudget returns a campaign joined with its brand.
	GetCampaignBudget(ctx context.Context, id uuid.UUID) (*CampaignBudget, error)
	// CreateCampaign inserts a campaign, filling ID and timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// CampaignsForBrand returns all campaigns owned by a brand.
	CampaignsForBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Campaign, error)
	// DeleteCampaign removes a campaign and its schedules and spends.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	// ActiveCampaigns returns every ACTIVE campaign with brand budgets.
	ActiveCampaigns(ctx context.Context) ([]CampaignBudget, error)
	// AllCampaigns returns every campaign with brand budgets.
	AllCampaigns(ctx context.Context) ([]CampaignBudget, error)
	// PausedCampaignsByReason returns campaigns paused with the given reason.
	PausedCampaignsByReason(ctx context.Context, reason domain.PauseReason) ([]CampaignBudget, error)

	// PauseCampaign marks the campaign PAUSED with the reason and timestamp.
	PauseCampaign(ctx context.Context, id uuid.UUID, reason domain.PauseReason, at time.Time) error
	// ActivateCampaign marks the campaign ACTIVE and clears the pause fields.
	ActivateCampaign(ctx context.Context, id uuid.UUID) error
	// ResetDailySpend zeroes the campaign's daily counter.
	ResetDailySpend(ctx context.Context, id uuid.UUID) error
	// ResetMonthlySpend zeroes the campaign's monthly counter.
	ResetMonthlySpend(ctx context.Context, id uuid.UUID) error

	// CreateSchedule inserts a schedule, filling ID and timestamps.
	CreateSchedule(ctx context.Context, s *domain.Schedule) error
	// SchedulesForCampaign returns the campaign's active schedules ordered by
	// day and start time.
	SchedulesForCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Schedule, error)
	// ScheduleForCampaignAndDay returns the campaign's active schedule for the
	// given day, or nil when none exists.
	ScheduleForCampaignAndDay(ctx context.Context, campaignID uuid.UUID, day domain.DayOfWeek) (*domain.Schedule, error)
	// CampaignsScheduledAt returns campaigns having an active schedule whose
	// window covers the given day and time.
	CampaignsScheduledAt(ctx context.Context, day domain.DayOfWeek, at domain.TimeOfDay) ([]CampaignBudget, error)
	// DeleteSchedule removes a schedule.
	DeleteSchedule(ctx context.Context, id uuid.UUID) error

	// CreateSpend appends a ledger row and increments the owning campaign's
	// daily and monthly counters in one transaction, returning the updated
	// campaign. If either write fails, neither persists.
	CreateSpend(ctx context.Context, s *domain.Spend) (*domain.Campaign, error)
	// SpendsForCampaign returns the campaign's ledger, newest first.
	SpendsForCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Spend, error)
	// DailySpendTotal sums DAILY ledger rows for the campaign on a date.
	DailySpendTotal(ctx context.Context, campaignID uuid.UUID, date time.Time) (decimal.Decimal, error)
	// MonthlySpendTotal sums MONTHLY ledger rows for the campaign in a month.
	MonthlySpendTotal(ctx context.Context, campaignID uuid.UUID, year int, month time.Month) (decimal.Decimal, error)
}
