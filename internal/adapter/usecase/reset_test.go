package usecase

import (
	"context"
	"errors"
	"testing"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
	"adbudget/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func TestResetDailySpendsReactivatesEligibleCampaigns(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	running := budget(uuid.New(), "40.00", "400.00", "100.00", "1000.00")
	// Counters as the reactivation phase sees them, after the zeroing pass.
	wasOverDaily := pausedBudget(uuid.New(), domain.ReasonDailyBudgetExceeded, "0", "400.00", "100.00", "1000.00")

	repo.EXPECT().
		AllCampaigns(mock.Anything).
		Return([]port.CampaignBudget{running, wasOverDaily}, nil)
	repo.EXPECT().ResetDailySpend(mock.Anything, running.Campaign.ID).Return(nil).Once()
	repo.EXPECT().ResetDailySpend(mock.Anything, wasOverDaily.Campaign.ID).Return(nil).Once()
	repo.EXPECT().
		PausedCampaignsByReason(mock.Anything, domain.ReasonDailyBudgetExceeded).
		Return([]port.CampaignBudget{wasOverDaily}, nil)
	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, wasOverDaily.Campaign.ID, domain.Monday).
		Return(businessHours(wasOverDaily.Campaign.ID), nil)
	repo.EXPECT().
		ActivateCampaign(mock.Anything, wasOverDaily.Campaign.ID).
		Return(nil).
		Once()

	svc := newService(repo)
	res := svc.ResetDailySpends(context.Background())
	if res.Reset != 2 || res.Reactivated != 1 || res.Errors != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// A campaign whose window is closed stays paused through the daily reset,
// keeping its budget reason for the dayparting sweep to sort out later.
func TestResetDailySpendsKeepsOutOfWindowCampaignsPaused(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	paused := pausedBudget(uuid.New(), domain.ReasonDailyBudgetExceeded, "0", "0", "100.00", "1000.00")

	repo.EXPECT().
		AllCampaigns(mock.Anything).
		Return([]port.CampaignBudget{paused}, nil)
	repo.EXPECT().ResetDailySpend(mock.Anything, paused.Campaign.ID).Return(nil)
	repo.EXPECT().
		PausedCampaignsByReason(mock.Anything, domain.ReasonDailyBudgetExceeded).
		Return([]port.CampaignBudget{paused}, nil)
	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, paused.Campaign.ID, domain.Monday).
		Return(nil, nil)

	svc := newService(repo)
	res := svc.ResetDailySpends(context.Background())
	if res.Reset != 1 || res.Reactivated != 0 || res.Errors != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// A monthly reset does not resurrect a campaign still over its daily limit.
func TestResetMonthlySpendsRespectsDailyLimit(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	paused := pausedBudget(uuid.New(), domain.ReasonMonthlyBudgetExceeded, "100.00", "0", "100.00", "1000.00")

	repo.EXPECT().
		AllCampaigns(mock.Anything).
		Return([]port.CampaignBudget{paused}, nil)
	repo.EXPECT().ResetMonthlySpend(mock.Anything, paused.Campaign.ID).Return(nil)
	repo.EXPECT().
		PausedCampaignsByReason(mock.Anything, domain.ReasonMonthlyBudgetExceeded).
		Return([]port.CampaignBudget{paused}, nil)

	svc := newService(repo)
	res := svc.ResetMonthlySpends(context.Background())
	if res.Reset != 1 || res.Reactivated != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// A failing counter reset is tallied and the pass moves on to the rest.
func TestResetDailySpendsContinuesOnError(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	broken := budget(uuid.New(), "10.00", "10.00", "100.00", "1000.00")
	fine := budget(uuid.New(), "10.00", "10.00", "100.00", "1000.00")

	repo.EXPECT().
		AllCampaigns(mock.Anything).
		Return([]port.CampaignBudget{broken, fine}, nil)
	repo.EXPECT().
		ResetDailySpend(mock.Anything, broken.Campaign.ID).
		Return(errors.New("connection reset")).
		Once()
	repo.EXPECT().ResetDailySpend(mock.Anything, fine.Campaign.ID).Return(nil).Once()
	repo.EXPECT().
		PausedCampaignsByReason(mock.Anything, domain.ReasonDailyBudgetExceeded).
		Return(nil, nil)

	svc := newService(repo)
	res := svc.ResetDailySpends(context.Background())
	if res.Reset != 1 || res.Errors != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
