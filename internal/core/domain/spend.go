package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendType classifies a ledger row for period-scoped aggregation.
type SpendType string

const (
	SpendDaily   SpendType = "DAILY"
	SpendMonthly SpendType = "MONTHLY"
)

// Spend is an immutable audit record of a single spend event. Rows are
// created once and never mutated; period resets zero the campaign counters,
// not the ledger.
type Spend struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	Amount      decimal.Decimal
	SpendDate   time.Time // date component only
	SpendType   SpendType
	Description string
	CreatedAt   time.Time
}
