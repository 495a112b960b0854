package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
	"adbudget/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Re-pausing an already paused campaign overwrites its reason and timestamp.
func TestPauseOverwritesReason(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	reason := domain.ReasonOutsideSchedule
	at := mondayMorning.Add(-time.Hour)

	repo.EXPECT().
		GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusPaused, PauseReason: &reason, PausedAt: &at}, nil)
	repo.EXPECT().
		PauseCampaign(mock.Anything, id, domain.ReasonManual, mondayMorning).
		Return(nil).
		Once()

	svc := newService(repo)
	if err := svc.Pause(context.Background(), id, domain.ReasonManual); err != nil {
		t.Fatalf("Pause error: %v", err)
	}
}

func TestPauseUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	svc := newService(repo)
	err := svc.Pause(context.Background(), id, domain.ReasonManual)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("got err %v, want ErrNotFound", err)
	}
}

func TestActivateBlockedByBudget(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	cb := pausedBudget(id, domain.ReasonMonthlyBudgetExceeded, "10.00", "1000.00", "100.00", "1000.00")

	repo.EXPECT().GetCampaignBudget(mock.Anything, id).Return(&cb, nil)

	svc := newService(repo)
	ok, err := svc.Activate(context.Background(), id)
	if err != nil {
		t.Fatalf("Activate error: %v", err)
	}
	if ok {
		t.Fatal("campaign over monthly budget must not activate")
	}
}

func TestActivateWhenEligible(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	cb := pausedBudget(id, domain.ReasonManual, "10.00", "100.00", "100.00", "1000.00")

	repo.EXPECT().GetCampaignBudget(mock.Anything, id).Return(&cb, nil)
	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, id, domain.Monday).
		Return(businessHours(id), nil)
	repo.EXPECT().ActivateCampaign(mock.Anything, id).Return(nil).Once()

	svc := newService(repo)
	ok, err := svc.Activate(context.Background(), id)
	if err != nil {
		t.Fatalf("Activate error: %v", err)
	}
	if !ok {
		t.Fatal("eligible campaign should activate")
	}
}

// After a counter reset the same campaign activates inside its window and
// not outside it.
func TestCanActivateDependsOnWindow(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	cb := pausedBudget(id, domain.ReasonDailyBudgetExceeded, "0", "0", "100.00", "1000.00")

	repo.EXPECT().GetCampaignBudget(mock.Anything, id).Return(&cb, nil)
	repo.EXPECT().
		ScheduleForCampaignAndDay(mock.Anything, id, domain.Monday).
		Return(businessHours(id), nil)

	svc := newService(repo)
	if ok, err := svc.CanActivate(context.Background(), id); err != nil || !ok {
		t.Fatalf("Monday 10:00: got (%v, %v), want (true, nil)", ok, err)
	}

	svc.now = func() time.Time { return mondayMorning.Add(9 * time.Hour) } // 19:00
	if ok, err := svc.CanActivate(context.Background(), id); err != nil || ok {
		t.Fatalf("Monday 19:00: got (%v, %v), want (false, nil)", ok, err)
	}
}

func TestCanActivateUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()

	repo.EXPECT().GetCampaignBudget(mock.Anything, id).Return(nil, nil)

	svc := newService(repo)
	_, err := svc.CanActivate(context.Background(), id)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("got err %v, want ErrNotFound", err)
	}
}

// The summary's spend figures come from the ledger for the current period;
// remaining comes from the counters.
func TestSpendingSummaryLedgerFigures(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	cb := budget(id, "30.00", "250.00", "100.00", "1000.00")

	repo.EXPECT().GetCampaignBudget(mock.Anything, id).Return(&cb, nil)
	repo.EXPECT().DailySpendTotal(mock.Anything, id, mondayMorning).Return(dec("30.00"), nil)
	repo.EXPECT().MonthlySpendTotal(mock.Anything, id, 2025, time.June).Return(decimal.Zero, nil)

	svc := newService(repo)
	summary, err := svc.SpendingSummary(context.Background(), id)
	if err != nil {
		t.Fatalf("SpendingSummary error: %v", err)
	}
	if !summary.DailySpend.Equal(dec("30.00")) || !summary.MonthlySpend.Equal(decimal.Zero) {
		t.Fatalf("ledger figures = %s / %s, want 30.00 / 0", summary.DailySpend, summary.MonthlySpend)
	}
	if !summary.DailyRemaining.Equal(dec("70.00")) {
		t.Fatalf("daily remaining = %s, want 70.00", summary.DailyRemaining)
	}
	if !summary.MonthlyRemaining.Equal(dec("750.00")) {
		t.Fatalf("monthly remaining = %s, want 750.00", summary.MonthlyRemaining)
	}
	if !summary.DailyPercentage.Equal(dec("30")) {
		t.Fatalf("daily percentage = %s, want 30", summary.DailyPercentage)
	}
	if !summary.MonthlyPercentage.Equal(decimal.Zero) {
		t.Fatalf("monthly percentage = %s, want 0", summary.MonthlyPercentage)
	}
	if summary.Status != string(domain.StatusActive) || summary.PauseReason != nil {
		t.Fatalf("unexpected status: %s %v", summary.Status, summary.PauseReason)
	}
}

func TestBrandSpendingSummaryAggregates(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	brandID := uuid.New()
	reason := domain.ReasonDailyBudgetExceeded
	at := mondayMorning

	repo.EXPECT().
		GetBrand(mock.Anything, brandID).
		Return(&domain.Brand{ID: brandID, Name: "acme", DailyBudget: dec("100.00"), MonthlyBudget: dec("1000.00")}, nil)
	repo.EXPECT().
		CampaignsForBrand(mock.Anything, brandID).
		Return([]domain.Campaign{
			{ID: uuid.New(), BrandID: brandID, Status: domain.StatusActive, DailySpend: dec("20.00"), MonthlySpend: dec("200.00")},
			{ID: uuid.New(), BrandID: brandID, Status: domain.StatusPaused, PauseReason: &reason, PausedAt: &at, DailySpend: dec("100.00"), MonthlySpend: dec("300.00")},
		}, nil)

	svc := newService(repo)
	summary, err := svc.BrandSpendingSummary(context.Background(), brandID)
	if err != nil {
		t.Fatalf("BrandSpendingSummary error: %v", err)
	}
	if summary.TotalCampaigns != 2 || summary.ActiveCampaigns != 1 || summary.PausedCampaigns != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if !summary.DailySpend.Equal(dec("120.00")) || !summary.MonthlySpend.Equal(dec("500.00")) {
		t.Fatalf("unexpected totals: %s / %s", summary.DailySpend, summary.MonthlySpend)
	}
	if !summary.DailyRemaining.Equal(dec("-20.00")) {
		t.Fatalf("daily remaining = %s, want -20.00", summary.DailyRemaining)
	}
	if !summary.DailyPercentage.Equal(dec("120")) || !summary.MonthlyPercentage.Equal(dec("50")) {
		t.Fatalf("percentages = %s / %s, want 120 / 50", summary.DailyPercentage, summary.MonthlyPercentage)
	}
}
