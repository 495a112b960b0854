package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Brand represents an advertiser. Its daily and monthly budgets cap the
// spending of every campaign it owns. Budget edits take effect on the next
// enforcement pass; the engine itself never writes brand rows.
type Brand struct {
	ID            uuid.UUID
	Name          string
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
