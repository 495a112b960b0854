package usecase

import (
	"context"
	"testing"
	"time"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
	"adbudget/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// weekday business hours, Monday 09:00-18:00
func businessHours(campaignID uuid.UUID) *domain.Schedule {
	return &domain.Schedule{
		ID:         uuid.New(),
		CampaignID: campaignID,
		DayOfWeek:  domain.Monday,
		StartTime:  9 * 3600,
		EndTime:    18 * 3600,
		IsActive:   true,
	}
}

func TestIsScheduledNowInsideWindow(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()

	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, id, domain.Monday).
		Return(businessHours(id), nil)

	svc := newService(repo) // clock pinned to Monday 10:00
	ok, err := svc.IsScheduledNow(context.Background(), id)
	if err != nil {
		t.Fatalf("IsScheduledNow error: %v", err)
	}
	if !ok {
		t.Fatal("Monday 10:00 should be inside a 09:00-18:00 Monday window")
	}
}

func TestIsScheduledNowOutsideWindow(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()

	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, id, domain.Monday).
		Return(businessHours(id), nil)

	svc := newService(repo)
	svc.now = func() time.Time { return mondayMorning.Add(9 * time.Hour) } // 19:00

	ok, err := svc.IsScheduledNow(context.Background(), id)
	if err != nil {
		t.Fatalf("IsScheduledNow error: %v", err)
	}
	if ok {
		t.Fatal("Monday 19:00 should be outside a 09:00-18:00 window")
	}
}

// No schedule row for today means the campaign should not run.
func TestIsScheduledNowWithoutSchedule(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()

	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, id, domain.Monday).
		Return(nil, nil)

	svc := newService(repo)
	ok, err := svc.IsScheduledNow(context.Background(), id)
	if err != nil {
		t.Fatalf("IsScheduledNow error: %v", err)
	}
	if ok {
		t.Fatal("campaign without a schedule for today must not be scheduled")
	}
}

func TestEnforceDaypartingPausesOutsideWindow(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	inWindow := budget(uuid.New(), "0", "0", "100.00", "1000.00")
	noSchedule := budget(uuid.New(), "0", "0", "100.00", "1000.00")

	repo.EXPECT().
		ActiveCampaigns(mock.Anything).
		Return([]port.CampaignBudget{inWindow, noSchedule}, nil)
	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, inWindow.Campaign.ID, domain.Monday).
		Return(businessHours(inWindow.Campaign.ID), nil)
	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, noSchedule.Campaign.ID, domain.Monday).
		Return(nil, nil)
	repo.EXPECT().
		PauseCampaign(mock.Anything, noSchedule.Campaign.ID, domain.ReasonOutsideSchedule, mondayMorning).
		Return(nil).
		Once()
	repo.EXPECT().
		CampaignsScheduledAt(mock.Anything, domain.Monday, domain.TimeOfDay(10*3600)).
		Return(nil, nil)

	svc := newService(repo)
	res := svc.EnforceDayparting(context.Background())
	if res.Paused != 1 || res.Activated != 0 || res.Errors != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// A campaign with a schedule for today is still paused once the clock moves
// past its window.
func TestEnforceDaypartingPausesAfterWindowCloses(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	closed := budget(uuid.New(), "0", "0", "100.00", "1000.00")
	evening := mondayMorning.Add(9 * time.Hour) // Monday 19:00

	repo.EXPECT().
		ActiveCampaigns(mock.Anything).
		Return([]port.CampaignBudget{closed}, nil)
	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, closed.Campaign.ID, domain.Monday).
		Return(businessHours(closed.Campaign.ID), nil)
	repo.EXPECT().
		PauseCampaign(mock.Anything, closed.Campaign.ID, domain.ReasonOutsideSchedule, evening).
		Return(nil).
		Once()
	repo.EXPECT().
		CampaignsScheduledAt(mock.Anything, domain.Monday, domain.TimeOfDay(19*3600)).
		Return(nil, nil)

	svc := newService(repo)
	svc.now = func() time.Time { return evening }
	res := svc.EnforceDayparting(context.Background())
	if res.Paused != 1 || res.Activated != 0 || res.Errors != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// The reactivation phase only touches campaigns paused for schedule reasons;
// manual and budget pauses survive an open window.
func TestEnforceDaypartingReactivatesOnlyScheduleReasons(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	eligible := pausedBudget(uuid.New(), domain.ReasonOutsideSchedule, "10.00", "10.00", "100.00", "1000.00")
	manual := pausedBudget(uuid.New(), domain.ReasonManual, "0", "0", "100.00", "1000.00")
	overBudget := pausedBudget(uuid.New(), domain.ReasonDailyBudgetExceeded, "100.00", "100.00", "100.00", "1000.00")

	repo.EXPECT().ActiveCampaigns(mock.Anything).Return(nil, nil)
	repo.EXPECT().
		CampaignsScheduledAt(mock.Anything, domain.Monday, domain.TimeOfDay(10*3600)).
		Return([]port.CampaignBudget{eligible, manual, overBudget}, nil)
	// eligibility check for the one schedule-paused campaign
	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, eligible.Campaign.ID, domain.Monday).
		Return(businessHours(eligible.Campaign.ID), nil)
	repo.EXPECT().
		ActivateCampaign(mock.Anything, eligible.Campaign.ID).
		Return(nil).
		Once()

	svc := newService(repo)
	res := svc.EnforceDayparting(context.Background())
	if res.Activated != 1 || res.Paused != 0 || res.Errors != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// An open window never resurrects a campaign that is still over budget.
func TestEnforceDaypartingSkipsOverBudgetCampaigns(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	spent := pausedBudget(uuid.New(), domain.ReasonOutsideSchedule, "100.00", "100.00", "100.00", "1000.00")

	repo.EXPECT().ActiveCampaigns(mock.Anything).Return(nil, nil)
	repo.EXPECT().
		CampaignsScheduledAt(mock.Anything, domain.Monday, domain.TimeOfDay(10*3600)).
		Return([]port.CampaignBudget{spent}, nil)

	svc := newService(repo)
	res := svc.EnforceDayparting(context.Background())
	if res.Activated != 0 {
		t.Fatalf("over-budget campaign was reactivated: %+v", res)
	}
}

func TestCreateDefaultSchedule(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()

	repo.EXPECT().
		GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusActive}, nil)

	seen := make(map[domain.DayOfWeek]bool)
	repo.EXPECT().
		CreateSchedule(mock.Anything, mock.AnythingOfType("*domain.Schedule")).
		Run(func(ctx context.Context, s *domain.Schedule) {
			seen[s.DayOfWeek] = true
			if s.StartTime != 0 || s.EndTime != domain.TimeOfDay(24*3600-1) {
				t.Errorf("day %s: window %s-%s, want full day", s.DayOfWeek, s.StartTime, s.EndTime)
			}
			if !s.IsActive {
				t.Errorf("day %s: schedule should be active", s.DayOfWeek)
			}
		}).
		Return(nil).
		Times(7)

	svc := newService(repo)
	schedules, err := svc.CreateDefaultSchedule(context.Background(), id)
	if err != nil {
		t.Fatalf("CreateDefaultSchedule error: %v", err)
	}
	if len(schedules) != 7 || len(seen) != 7 {
		t.Fatalf("got %d schedules over %d distinct days, want 7/7", len(schedules), len(seen))
	}
}
