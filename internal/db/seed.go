package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: two brands, a few campaigns each with
// business-hours schedules, and a short spend history.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	brands := []struct {
		name    string
		daily   string
		monthly string
	}{
		{"Acme Apparel", "100.00", "1000.00"},
		{"Northwind Travel", "250.00", "5000.00"},
	}

	for _, b := range brands {
		var brandID string
		err := db.QueryRow(ctx, `INSERT INTO brands (name, daily_budget, monthly_budget)
VALUES ($1, $2, $3) ON CONFLICT (name) DO UPDATE SET updated_at = now()
RETURNING id`, b.name, b.daily, b.monthly).Scan(&brandID)
		if err != nil {
			return err
		}

		for i := 1; i <= 3; i++ {
			name := fmt.Sprintf("%s Campaign %d", b.name, i)
			var campaignID string
			err = db.QueryRow(ctx, `INSERT INTO campaigns (brand_id, name)
VALUES ($1, $2) ON CONFLICT (brand_id, name) DO UPDATE SET updated_at = now()
RETURNING id`, brandID, name).Scan(&campaignID)
			if err != nil {
				return err
			}

			// weekday business-hours schedule, Monday through Friday
			for day := 0; day < 5; day++ {
				_, err = db.Exec(ctx, `INSERT INTO schedules (campaign_id, day_of_week, start_time, end_time)
VALUES ($1, $2, '09:00:00'::time, '18:00:00'::time) ON CONFLICT DO NOTHING`, campaignID, day)
				if err != nil {
					return err
				}
			}

			// a week of spend history; counters stay in step with the ledger
			for d := 0; d < 7; d++ {
				date := time.Now().AddDate(0, 0, -d).Format("2006-01-02")
				amount := fmt.Sprintf("%d.%02d", r.Intn(20)+1, r.Intn(100))
				_, err = db.Exec(ctx, `INSERT INTO spends (campaign_id, amount, spend_date, spend_type, description)
VALUES ($1, $2, $3, 'DAILY', 'seeded spend')`, campaignID, amount, date)
				if err != nil {
					return err
				}
				_, err = db.Exec(ctx, `UPDATE campaigns
SET daily_spend = daily_spend + CASE WHEN $2::date = current_date THEN $3::numeric ELSE 0 END,
    monthly_spend = monthly_spend + $3::numeric
WHERE id = $1`, campaignID, date, amount)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
