package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// Repository implements port.Repository using pgxpool for PostgreSQL.
// Campaign state transitions are single UPDATE statements, so the paired
// status/pause_reason/paused_at invariant holds atomically. The ledger
// write locks the campaign row, giving per-campaign mutual exclusion
// without blocking unrelated campaigns.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const brandColumns = `id, name, daily_budget, monthly_budget, created_at, updated_at`

const campaignColumns = `id, brand_id, name, status, daily_spend, monthly_spend, pause_reason, paused_at, created_at, updated_at`

// campaignBudgetQuery selects campaign and brand columns joined for sweeps.
const campaignBudgetQuery = `
        SELECT
            c.id, c.brand_id, c.name, c.status, c.daily_spend, c.monthly_spend,
            c.pause_reason, c.paused_at, c.created_at, c.updated_at,
            b.id, b.name, b.daily_budget, b.monthly_budget, b.created_at, b.updated_at
        FROM campaigns c
        JOIN brands b ON c.brand_id = b.id`

func scanBrand(row pgx.CollectableRow) (domain.Brand, error) {
	var b domain.Brand
	err := row.Scan(&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.BrandID, &c.Name, &c.Status, &c.DailySpend, &c.MonthlySpend,
		&c.PauseReason, &c.PausedAt, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanCampaignBudget(row pgx.CollectableRow) (port.CampaignBudget, error) {
	var cb port.CampaignBudget
	c := &cb.Campaign
	b := &cb.Brand
	err := row.Scan(
		&c.ID, &c.BrandID, &c.Name, &c.Status, &c.DailySpend, &c.MonthlySpend,
		&c.PauseReason, &c.PausedAt, &c.CreatedAt, &c.UpdatedAt,
		&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget, &b.CreatedAt, &b.UpdatedAt,
	)
	return cb, err
}

// GetBrand returns a brand by id, or nil when it does not exist.
func (r *Repository) GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	var b domain.Brand
	err := r.pool.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBrand inserts a brand and fills its generated id and timestamps.
func (r *Repository) CreateBrand(ctx context.Context, b *domain.Brand) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO brands (name, daily_budget, monthly_budget) VALUES ($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		b.Name, b.DailyBudget, b.MonthlyBudget).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// ListBrands returns all brands ordered by name.
func (r *Repository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+brandColumns+` FROM brands ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBrand)
}

// DeleteBrand removes a brand; campaigns, schedules and spends cascade.
func (r *Repository) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *Repository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.BrandID, &c.Name, &c.Status, &c.DailySpend, &c.MonthlySpend,
			&c.PauseReason, &c.PausedAt, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCampaignBudget returns a campaign joined with its brand, or nil.
func (r *Repository) GetCampaignBudget(ctx context.Context, id uuid.UUID) (*port.CampaignBudget, error) {
	rows, err := r.pool.Query(ctx, campaignBudgetQuery+` WHERE c.id = $1`, id)
	if err != nil {
		return nil, err
	}
	cb, err := pgx.CollectOneRow(rows, scanCampaignBudget)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cb, nil
}

// CreateCampaign inserts a campaign in ACTIVE state with zeroed counters.
func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO campaigns (brand_id, name, status) VALUES ($1, $2, $3)
         RETURNING id, daily_spend, monthly_spend, created_at, updated_at`,
		c.BrandID, c.Name, c.Status).
		Scan(&c.ID, &c.DailySpend, &c.MonthlySpend, &c.CreatedAt, &c.UpdatedAt)
}

// CampaignsForBrand returns all campaigns owned by a brand.
func (r *Repository) CampaignsForBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE brand_id = $1 ORDER BY name`, brandID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// DeleteCampaign removes a campaign; schedules and spends cascade.
func (r *Repository) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ActiveCampaigns returns every ACTIVE campaign with its brand budgets.
func (r *Repository) ActiveCampaigns(ctx context.Context) ([]port.CampaignBudget, error) {
	rows, err := r.pool.Query(ctx, campaignBudgetQuery+` WHERE c.status = 'ACTIVE'`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaignBudget)
}

// AllCampaigns returns every campaign with its brand budgets.
func (r *Repository) AllCampaigns(ctx context.Context) ([]port.CampaignBudget, error) {
	rows, err := r.pool.Query(ctx, campaignBudgetQuery)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaignBudget)
}

// PausedCampaignsByReason returns campaigns paused with the given reason.
func (r *Repository) PausedCampaignsByReason(ctx context.Context, reason domain.PauseReason) ([]port.CampaignBudget, error) {
	rows, err := r.pool.Query(ctx,
		campaignBudgetQuery+` WHERE c.status = 'PAUSED' AND c.pause_reason = $1`, reason)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaignBudget)
}

// PauseCampaign marks a campaign PAUSED with the given reason and timestamp
// in one statement.
func (r *Repository) PauseCampaign(ctx context.Context, id uuid.UUID, reason domain.PauseReason, at time.Time) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = 'PAUSED', pause_reason = $2, paused_at = $3, updated_at = now()
         WHERE id = $1`, id, reason, at)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ActivateCampaign marks a campaign ACTIVE and clears the pause fields in
// one statement.
func (r *Repository) ActivateCampaign(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = 'ACTIVE', pause_reason = NULL, paused_at = NULL, updated_at = now()
         WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ResetDailySpend zeroes a campaign's daily counter.
func (r *Repository) ResetDailySpend(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET daily_spend = 0, updated_at = now() WHERE id = $1`, id)
	return err
}

// ResetMonthlySpend zeroes a campaign's monthly counter.
func (r *Repository) ResetMonthlySpend(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET monthly_spend = 0, updated_at = now() WHERE id = $1`, id)
	return err
}

const scheduleColumns = `id, campaign_id, day_of_week,
            to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'),
            is_active, created_at, updated_at`

func scanSchedule(row pgx.CollectableRow) (domain.Schedule, error) {
	var (
		s          domain.Schedule
		start, end string
	)
	err := row.Scan(&s.ID, &s.CampaignID, &s.DayOfWeek, &start, &end,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return s, err
	}
	if s.StartTime, err = domain.ParseTimeOfDay(start); err != nil {
		return s, err
	}
	s.EndTime, err = domain.ParseTimeOfDay(end)
	return s, err
}

// CreateSchedule inserts a schedule. A window whose end does not follow its
// start is rejected with port.ErrInvalidSchedule before touching the
// database.
func (r *Repository) CreateSchedule(ctx context.Context, s *domain.Schedule) error {
	if s.StartTime >= s.EndTime {
		return port.ErrInvalidSchedule
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO schedules (campaign_id, day_of_week, start_time, end_time, is_active)
         VALUES ($1, $2, $3::time, $4::time, $5)
         RETURNING id, created_at, updated_at`,
		s.CampaignID, s.DayOfWeek, s.StartTime.String(), s.EndTime.String(), s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// SchedulesForCampaign returns the campaign's active schedules ordered by
// day and start time.
func (r *Repository) SchedulesForCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Schedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
         WHERE campaign_id = $1 AND is_active
         ORDER BY day_of_week, start_time`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSchedule)
}

// ScheduleForCampaignAndDay returns the campaign's active schedule for the
// given day, or nil when none exists. Ordered by start_time with LIMIT 1 so
// rows predating the uniqueness index cannot make the lookup ambiguous.
func (r *Repository) ScheduleForCampaignAndDay(ctx context.Context, campaignID uuid.UUID, day domain.DayOfWeek) (*domain.Schedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
         WHERE campaign_id = $1 AND day_of_week = $2 AND is_active
         ORDER BY start_time LIMIT 1`, campaignID, day)
	if err != nil {
		return nil, err
	}
	s, err := pgx.CollectOneRow(rows, scanSchedule)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CampaignsScheduledAt returns campaigns having an active schedule whose
// window covers the given day and time, joined with brand budgets.
func (r *Repository) CampaignsScheduledAt(ctx context.Context, day domain.DayOfWeek, at domain.TimeOfDay) ([]port.CampaignBudget, error) {
	rows, err := r.pool.Query(ctx, campaignBudgetQuery+`
        JOIN schedules s ON s.campaign_id = c.id
        WHERE s.day_of_week = $1 AND s.is_active
          AND s.start_time <= $2::time AND s.end_time >= $2::time`,
		day, at.String())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaignBudget)
}

// DeleteSchedule removes a schedule.
func (r *Repository) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// CreateSpend appends a ledger row and increments the owning campaign's
// counters in one transaction. The campaign row is locked first, so
// concurrent spends and sweeps on the same campaign serialise while other
// campaigns stay unaffected. Returns the campaign with updated counters.
func (r *Repository) CreateSpend(ctx context.Context, s *domain.Spend) (*domain.Campaign, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// lock campaign
	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT true FROM campaigns WHERE id = $1 FOR UPDATE`, s.CampaignID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("campaign %s: %w", s.CampaignID, port.ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO spends (campaign_id, amount, spend_date, spend_type, description)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		s.CampaignID, s.Amount, s.SpendDate, s.SpendType, nullIfEmpty(s.Description)).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	var c domain.Campaign
	err = tx.QueryRow(ctx,
		`UPDATE campaigns
         SET daily_spend = daily_spend + $2, monthly_spend = monthly_spend + $2, updated_at = now()
         WHERE id = $1
         RETURNING `+campaignColumns,
		s.CampaignID, s.Amount).
		Scan(&c.ID, &c.BrandID, &c.Name, &c.Status, &c.DailySpend, &c.MonthlySpend,
			&c.PauseReason, &c.PausedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SpendsForCampaign returns the campaign's ledger rows, newest first.
func (r *Repository) SpendsForCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Spend, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, campaign_id, amount, spend_date, spend_type, COALESCE(description, ''), created_at
         FROM spends WHERE campaign_id = $1
         ORDER BY spend_date DESC, created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Spend, error) {
		var s domain.Spend
		err := row.Scan(&s.ID, &s.CampaignID, &s.Amount, &s.SpendDate, &s.SpendType,
			&s.Description, &s.CreatedAt)
		return s, err
	})
}

// DailySpendTotal sums DAILY ledger rows for a campaign on a date. Returns
// zero, not an error, when no rows match.
func (r *Repository) DailySpendTotal(ctx context.Context, campaignID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(sum(amount), 0) FROM spends
         WHERE campaign_id = $1 AND spend_date = $2 AND spend_type = 'DAILY'`,
		campaignID, date).Scan(&total)
	return total, err
}

// MonthlySpendTotal sums MONTHLY ledger rows for a campaign in a calendar
// month. Returns zero, not an error, when no rows match.
func (r *Repository) MonthlySpendTotal(ctx context.Context, campaignID uuid.UUID, year int, month time.Month) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(sum(amount), 0) FROM spends
         WHERE campaign_id = $1 AND spend_type = 'MONTHLY'
           AND date_part('year', spend_date) = $2 AND date_part('month', spend_date) = $3`,
		campaignID, year, int(month)).Scan(&total)
	return total, err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
