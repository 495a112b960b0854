package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// IsScheduledNow reports whether the campaign's dayparting schedule allows
// it to run right now. A campaign with no active schedule for today is
// treated as "should not run".
func (u *CampaignUseCase) IsScheduledNow(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	return u.isScheduledAt(ctx, campaignID, u.now())
}

func (u *CampaignUseCase) isScheduledAt(ctx context.Context, campaignID uuid.UUID, at time.Time) (bool, error) {
	sched, err := u.repo.ScheduleForCampaignAndDay(ctx, campaignID, domain.DayOfWeekFromTime(at))
	if err != nil {
		return false, err
	}
	if sched == nil {
		return false, nil
	}
	return sched.Contains(domain.TimeOfDayFromTime(at)), nil
}

// EnforceDayparting walks the campaign population in two phases: first it
// pauses ACTIVE campaigns whose window does not cover now (or that have no
// schedule for today) with OUTSIDE_SCHEDULE, then it reactivates campaigns
// paused for schedule reasons whose window is open, provided their budgets
// still permit activation. Manually or budget-paused campaigns are never
// touched. Per-campaign failures are tallied and the sweep continues.
func (u *CampaignUseCase) EnforceDayparting(ctx context.Context) port.DaypartingResult {
	var res port.DaypartingResult

	now := u.now()
	day := domain.DayOfWeekFromTime(now)
	tod := domain.TimeOfDayFromTime(now)

	active, err := u.repo.ActiveCampaigns(ctx)
	if err != nil {
		u.logger.Error("dayparting: list active campaigns", slog.Any("error", err))
		res.Errors++
		return res
	}

	for i := range active {
		c := &active[i].Campaign
		sched, err := u.repo.ScheduleForCampaignAndDay(ctx, c.ID, day)
		if err != nil {
			u.logger.Error("dayparting: schedule lookup",
				slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
			res.Errors++
			continue
		}
		if sched != nil && sched.Contains(tod) {
			continue
		}
		if err = u.pause(ctx, c, domain.ReasonOutsideSchedule); err != nil {
			u.logger.Error("dayparting: pause campaign",
				slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
			res.Errors++
			continue
		}
		res.Paused++
	}

	scheduled, err := u.repo.CampaignsScheduledAt(ctx, day, tod)
	if err != nil {
		u.logger.Error("dayparting: list scheduled campaigns", slog.Any("error", err))
		res.Errors++
		return res
	}

	for i := range scheduled {
		cb := &scheduled[i]
		if !cb.Campaign.PausedFor(domain.ScheduleReasons()...) {
			continue
		}
		// A campaign still over budget must not be resurrected by dayparting.
		ok, err := u.canActivate(ctx, cb)
		if err != nil {
			u.logger.Error("dayparting: eligibility check",
				slog.String("campaign_id", cb.Campaign.ID.String()), slog.Any("error", err))
			res.Errors++
			continue
		}
		if !ok {
			continue
		}
		if err = u.repo.ActivateCampaign(ctx, cb.Campaign.ID); err != nil {
			u.logger.Error("dayparting: activate campaign",
				slog.String("campaign_id", cb.Campaign.ID.String()), slog.Any("error", err))
			res.Errors++
			continue
		}
		res.Activated++
	}

	u.logger.Info("dayparting enforcement completed",
		slog.Int("activated", res.Activated),
		slog.Int("paused", res.Paused),
		slog.Int("errors", res.Errors))
	return res
}

// CreateDefaultSchedule creates an active 24/7 schedule for the campaign,
// one 00:00:00-23:59:59 window per weekday.
func (u *CampaignUseCase) CreateDefaultSchedule(ctx context.Context, campaignID uuid.UUID) ([]domain.Schedule, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %s: %w", campaignID, port.ErrNotFound)
	}

	schedules := make([]domain.Schedule, 0, 7)
	for day := domain.Monday; day <= domain.Sunday; day++ {
		s := domain.Schedule{
			CampaignID: campaignID,
			DayOfWeek:  day,
			StartTime:  0,
			EndTime:    domain.TimeOfDay(24*3600 - 1),
			IsActive:   true,
		}
		if err = u.repo.CreateSchedule(ctx, &s); err != nil {
			return nil, fmt.Errorf("create schedule for %s: %w", day, err)
		}
		schedules = append(schedules, s)
	}
	u.logger.Info("created default 24/7 schedule", slog.String("campaign_id", campaignID.String()))
	return schedules, nil
}

// ScheduleSummary describes a campaign's dayparting configuration along with
// whether the campaign is inside a window right now.
func (u *CampaignUseCase) ScheduleSummary(ctx context.Context, campaignID uuid.UUID) (*port.ScheduleSummary, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %s: %w", campaignID, port.ErrNotFound)
	}

	schedules, err := u.repo.SchedulesForCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	nowOK, err := u.isScheduledAt(ctx, campaignID, u.now())
	if err != nil {
		return nil, err
	}

	summary := &port.ScheduleSummary{
		CampaignID:     campaignID,
		CampaignName:   c.Name,
		TotalSchedules: len(schedules),
		SchedulesByDay: make(map[string]port.ScheduleWindow, len(schedules)),
		IsScheduledNow: nowOK,
	}
	for _, s := range schedules {
		summary.SchedulesByDay[s.DayOfWeek.String()] = port.ScheduleWindow{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			IsActive:  s.IsActive,
		}
	}
	return summary, nil
}
