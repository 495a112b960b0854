package scheduler

import (
	"context"
	"log/slog"
	"time"

	"adbudget/internal/config/configs"
	"adbudget/internal/core/port"
)

// Scheduler reinvokes the four enforcement sweeps on fixed intervals. It
// runs at most one instance of each sweep kind at a time: every loop is a
// plain sequential ticker, so a slow sweep delays its own next run instead
// of overlapping it. Period resets fire when a tick observes a new calendar
// day or month.
type Scheduler struct {
	uc     port.CampaignUseCase
	cfg    configs.Sweep
	logger *slog.Logger

	now func() time.Time
}

// New creates a scheduler around the enforcement engine.
func New(uc port.CampaignUseCase, cfg configs.Sweep, logger *slog.Logger) *Scheduler {
	return &Scheduler{uc: uc, cfg: cfg, logger: logger, now: time.Now}
}

// Run blocks until the context is cancelled, driving the sweep loops.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("sweep scheduler started",
		slog.Duration("budget_interval", s.cfg.BudgetInterval),
		slog.Duration("dayparting_interval", s.cfg.DaypartingInterval))

	go s.loop(ctx, s.cfg.BudgetInterval, func(ctx context.Context) {
		s.uc.EnforceBudgetLimits(ctx)
	})
	go s.loop(ctx, s.cfg.DaypartingInterval, func(ctx context.Context) {
		s.uc.EnforceDayparting(ctx)
	})

	s.resetLoop(ctx)
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, sweep func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep(ctx)
		}
	}
}

// resetLoop watches for calendar boundaries. A missed boundary (process
// down over midnight) is caught by the first tick after startup comparing
// against the start time.
func (s *Scheduler) resetLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.ResetCheckInterval)
	defer ticker.Stop()

	last := s.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := s.now()
			if dayChanged(last, now) {
				s.uc.ResetDailySpends(ctx)
			}
			if monthChanged(last, now) {
				s.uc.ResetMonthlySpends(ctx)
			}
			last = now
		}
	}
}

func dayChanged(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay != by || am != bm || ad != bd
}

func monthChanged(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay != by || am != bm
}
