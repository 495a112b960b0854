package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus enumerates the campaign run states.
type CampaignStatus string

const (
	StatusActive CampaignStatus = "ACTIVE"
	StatusPaused CampaignStatus = "PAUSED"
)

// PauseReason explains why a campaign was paused. It is set together with
// PausedAt on every transition to PAUSED and cleared on activation.
type PauseReason string

const (
	ReasonDailyBudgetExceeded   PauseReason = "DAILY_BUDGET_EXCEEDED"
	ReasonMonthlyBudgetExceeded PauseReason = "MONTHLY_BUDGET_EXCEEDED"
	ReasonOutsideSchedule       PauseReason = "OUTSIDE_SCHEDULE"
	ReasonNoSchedule            PauseReason = "NO_SCHEDULE"
	ReasonManual                PauseReason = "MANUAL"
)

// BudgetReasons are the pause reasons cleared by the period resets.
func BudgetReasons() []PauseReason {
	return []PauseReason{ReasonDailyBudgetExceeded, ReasonMonthlyBudgetExceeded}
}

// ScheduleReasons are the pause reasons the dayparting sweep may reactivate.
func ScheduleReasons() []PauseReason {
	return []PauseReason{ReasonOutsideSchedule, ReasonNoSchedule}
}

// Campaign is a spending unit owned by exactly one brand. DailySpend and
// MonthlySpend are denormalized running totals over the spend ledger since
// the last corresponding reset.
//
// Invariant: PauseReason and PausedAt are both set or both nil, and both are
// nil exactly when Status is ACTIVE.
type Campaign struct {
	ID           uuid.UUID
	BrandID      uuid.UUID
	Name         string
	Status       CampaignStatus
	DailySpend   decimal.Decimal
	MonthlySpend decimal.Decimal
	PauseReason  *PauseReason
	PausedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the campaign is currently running.
func (c *Campaign) IsActive() bool { return c.Status == StatusActive }

// IsPaused reports whether the campaign is currently paused.
func (c *Campaign) IsPaused() bool { return c.Status == StatusPaused }

// PausedFor reports whether the campaign is paused with one of the given
// reasons.
func (c *Campaign) PausedFor(reasons ...PauseReason) bool {
	if !c.IsPaused() || c.PauseReason == nil {
		return false
	}
	for _, r := range reasons {
		if *c.PauseReason == r {
			return true
		}
	}
	return false
}
