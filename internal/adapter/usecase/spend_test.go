package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
	"adbudget/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// mondayMorning is a fixed Monday 10:00:00 used wherever a test needs a
// deterministic clock.
var mondayMorning = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// newService builds the engine with a silent logger and a clock pinned to
// mondayMorning.
func newService(repo port.Repository) *CampaignUseCase {
	svc := NewCampaignUseCase(repo, testLogger())
	svc.now = func() time.Time { return mondayMorning }
	return svc
}

// budget builds a campaign joined with a brand holding the given limits.
func budget(id uuid.UUID, dailySpend, monthlySpend, dailyBudget, monthlyBudget string) port.CampaignBudget {
	return port.CampaignBudget{
		Campaign: domain.Campaign{
			ID:           id,
			BrandID:      uuid.New(),
			Name:         "c-" + id.String()[:8],
			Status:       domain.StatusActive,
			DailySpend:   dec(dailySpend),
			MonthlySpend: dec(monthlySpend),
		},
		Brand: domain.Brand{
			ID:            uuid.New(),
			Name:          "b",
			DailyBudget:   dec(dailyBudget),
			MonthlyBudget: dec(monthlyBudget),
		},
	}
}

func pausedBudget(id uuid.UUID, reason domain.PauseReason, dailySpend, monthlySpend, dailyBudget, monthlyBudget string) port.CampaignBudget {
	cb := budget(id, dailySpend, monthlySpend, dailyBudget, monthlyBudget)
	at := mondayMorning.Add(-time.Hour)
	cb.Campaign.Status = domain.StatusPaused
	cb.Campaign.PauseReason = &reason
	cb.Campaign.PausedAt = &at
	return cb
}

func TestTrackSpendRejectsNonPositiveAmount(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	svc := newService(repo)

	for _, amount := range []string{"0", "-5.50"} {
		_, err := svc.TrackSpend(context.Background(), uuid.New(), dec(amount), nil, "")
		if !errors.Is(err, port.ErrInvalidAmount) {
			t.Fatalf("amount %s: got err %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestTrackSpendIncrementsCounters(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	cb := budget(id, "10.00", "40.00", "100.00", "1000.00")

	repo.EXPECT().
		GetCampaignBudget(mock.Anything, id).
		Return(&cb, nil)

	repo.EXPECT().
		CreateSpend(mock.Anything, mock.AnythingOfType("*domain.Spend")).
		RunAndReturn(func(ctx context.Context, s *domain.Spend) (*domain.Campaign, error) {
			updated := cb.Campaign
			updated.DailySpend = updated.DailySpend.Add(s.Amount)
			updated.MonthlySpend = updated.MonthlySpend.Add(s.Amount)
			return &updated, nil
		})

	svc := newService(repo)
	spend, err := svc.TrackSpend(context.Background(), id, dec("30.00"), nil, "clicks")
	if err != nil {
		t.Fatalf("TrackSpend error: %v", err)
	}
	if spend.CampaignID != id || !spend.Amount.Equal(dec("30.00")) {
		t.Fatalf("unexpected spend: %+v", spend)
	}
	if spend.SpendType != domain.SpendDaily {
		t.Fatalf("spend type = %s, want DAILY", spend.SpendType)
	}
	if !spend.SpendDate.Equal(mondayMorning) {
		t.Fatalf("spend date = %s, want clock time", spend.SpendDate)
	}
	// 40 + 30 is inside both limits, so no pause call was expected.
}

// A spend that lands exactly on the daily budget pauses the campaign:
// equalling the limit counts as exceeded.
func TestTrackSpendPausesAtExactDailyBudget(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	cb := budget(id, "70.00", "70.00", "100.00", "1000.00")

	repo.EXPECT().GetCampaignBudget(mock.Anything, id).Return(&cb, nil)
	repo.EXPECT().
		CreateSpend(mock.Anything, mock.AnythingOfType("*domain.Spend")).
		RunAndReturn(func(ctx context.Context, s *domain.Spend) (*domain.Campaign, error) {
			updated := cb.Campaign
			updated.DailySpend = updated.DailySpend.Add(s.Amount)
			updated.MonthlySpend = updated.MonthlySpend.Add(s.Amount)
			return &updated, nil
		})
	repo.EXPECT().
		PauseCampaign(mock.Anything, id, domain.ReasonDailyBudgetExceeded, mondayMorning).
		Return(nil).
		Once()

	svc := newService(repo)
	if _, err := svc.TrackSpend(context.Background(), id, dec("30.00"), nil, ""); err != nil {
		t.Fatalf("TrackSpend error: %v", err)
	}
}

// Brand with a 100 daily budget, campaign spends 120 in one go on a Monday
// morning: the campaign ends up paused for the daily limit only, since 120
// is far from the 1000 monthly limit.
func TestTrackSpendOverspendPausesDailyOnly(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	cb := budget(id, "0", "0", "100.00", "1000.00")

	repo.EXPECT().GetCampaignBudget(mock.Anything, id).Return(&cb, nil)
	repo.EXPECT().
		CreateSpend(mock.Anything, mock.AnythingOfType("*domain.Spend")).
		RunAndReturn(func(ctx context.Context, s *domain.Spend) (*domain.Campaign, error) {
			updated := cb.Campaign
			updated.DailySpend = updated.DailySpend.Add(s.Amount)
			updated.MonthlySpend = updated.MonthlySpend.Add(s.Amount)
			return &updated, nil
		})
	repo.EXPECT().
		PauseCampaign(mock.Anything, id, domain.ReasonDailyBudgetExceeded, mondayMorning).
		Return(nil).
		Once()

	svc := newService(repo)
	if _, err := svc.TrackSpend(context.Background(), id, dec("120.00"), nil, ""); err != nil {
		t.Fatalf("TrackSpend error: %v", err)
	}
	if !cb.Campaign.IsPaused() || cb.Campaign.PauseReason == nil {
		t.Fatal("campaign should be paused with a reason")
	}
	if *cb.Campaign.PauseReason != domain.ReasonDailyBudgetExceeded {
		t.Fatalf("pause reason = %s, want DAILY_BUDGET_EXCEEDED", *cb.Campaign.PauseReason)
	}
}

// When both limits are tripped in the same check, the monthly pause runs
// last and its reason wins.
func TestCheckBudgetMonthlyOverridesDaily(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()
	cb := budget(id, "120.00", "1200.00", "100.00", "1000.00")

	repo.EXPECT().
		PauseCampaign(mock.Anything, id, domain.ReasonDailyBudgetExceeded, mondayMorning).
		Return(nil).
		Once()
	repo.EXPECT().
		PauseCampaign(mock.Anything, id, domain.ReasonMonthlyBudgetExceeded, mondayMorning).
		Return(nil).
		Once()

	svc := newService(repo)
	st, err := svc.CheckBudget(context.Background(), &cb)
	if err != nil {
		t.Fatalf("CheckBudget error: %v", err)
	}
	if !st.DailyExceeded || !st.MonthlyExceeded {
		t.Fatalf("exceeded flags = %v/%v, want both true", st.DailyExceeded, st.MonthlyExceeded)
	}
	if st.Action != port.ActionPausedMonthly {
		t.Fatalf("action = %q, want %q", st.Action, port.ActionPausedMonthly)
	}
	if cb.Campaign.PauseReason == nil || *cb.Campaign.PauseReason != domain.ReasonMonthlyBudgetExceeded {
		t.Fatal("recorded reason should be MONTHLY_BUDGET_EXCEEDED")
	}
}

// Checking an already paused campaign reports the exceeded flags but never
// re-pauses or relabels it.
func TestCheckBudgetLeavesPausedCampaignsAlone(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	cb := pausedBudget(uuid.New(), domain.ReasonManual, "120.00", "1200.00", "100.00", "1000.00")

	svc := newService(repo)
	st, err := svc.CheckBudget(context.Background(), &cb)
	if err != nil {
		t.Fatalf("CheckBudget error: %v", err)
	}
	if !st.DailyExceeded || !st.MonthlyExceeded {
		t.Fatal("exceeded flags should still be reported")
	}
	if st.Action != "" {
		t.Fatalf("action = %q, want none", st.Action)
	}
	if *cb.Campaign.PauseReason != domain.ReasonManual {
		t.Fatal("manual pause reason must survive the check")
	}
}

func TestEnforceBudgetLimitsTalliesActions(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	overDaily := budget(uuid.New(), "150.00", "150.00", "100.00", "1000.00")
	overMonthly := budget(uuid.New(), "50.00", "1000.00", "100.00", "1000.00")
	within := budget(uuid.New(), "50.00", "500.00", "100.00", "1000.00")

	repo.EXPECT().
		ActiveCampaigns(mock.Anything).
		Return([]port.CampaignBudget{overDaily, overMonthly, within}, nil)
	repo.EXPECT().
		PauseCampaign(mock.Anything, overDaily.Campaign.ID, domain.ReasonDailyBudgetExceeded, mondayMorning).
		Return(nil).
		Once()
	repo.EXPECT().
		PauseCampaign(mock.Anything, overMonthly.Campaign.ID, domain.ReasonMonthlyBudgetExceeded, mondayMorning).
		Return(nil).
		Once()

	svc := newService(repo)
	res := svc.EnforceBudgetLimits(context.Background())
	if res.Checked != 3 || res.PausedDaily != 1 || res.PausedMonthly != 1 || res.Errors != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// A pause failure on one campaign must not stop the sweep.
func TestEnforceBudgetLimitsContinuesOnError(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	broken := budget(uuid.New(), "200.00", "200.00", "100.00", "1000.00")
	fine := budget(uuid.New(), "200.00", "200.00", "100.00", "1000.00")

	repo.EXPECT().
		ActiveCampaigns(mock.Anything).
		Return([]port.CampaignBudget{broken, fine}, nil)
	repo.EXPECT().
		PauseCampaign(mock.Anything, broken.Campaign.ID, domain.ReasonDailyBudgetExceeded, mondayMorning).
		Return(errors.New("connection reset")).
		Once()
	repo.EXPECT().
		PauseCampaign(mock.Anything, fine.Campaign.ID, domain.ReasonDailyBudgetExceeded, mondayMorning).
		Return(nil).
		Once()

	svc := newService(repo)
	res := svc.EnforceBudgetLimits(context.Background())
	if res.Checked != 2 || res.PausedDaily != 1 || res.Errors != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// TestConcurrentTrackSpend emulates the repository's per-campaign row lock
// with a mutex and checks concurrent spends never lose an increment.
func TestConcurrentTrackSpend(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	id := uuid.New()

	var (
		mu      sync.Mutex
		daily   = decimal.Zero
		monthly = decimal.Zero
	)

	repo.EXPECT().
		GetCampaignBudget(mock.Anything, id).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*port.CampaignBudget, error) {
			mu.Lock()
			defer mu.Unlock()
			cb := budget(id, daily.String(), monthly.String(), "1000.00", "10000.00")
			return &cb, nil
		})
	repo.EXPECT().
		CreateSpend(mock.Anything, mock.AnythingOfType("*domain.Spend")).
		RunAndReturn(func(ctx context.Context, s *domain.Spend) (*domain.Campaign, error) {
			mu.Lock()
			defer mu.Unlock()
			daily = daily.Add(s.Amount)
			monthly = monthly.Add(s.Amount)
			c := domain.Campaign{ID: id, Status: domain.StatusActive, DailySpend: daily, MonthlySpend: monthly}
			return &c, nil
		})

	svc := newService(repo)

	var wg sync.WaitGroup
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.TrackSpend(context.Background(), id, dec("10.00"), nil, ""); err != nil {
				t.Errorf("TrackSpend error: %v", err)
			}
		}()
	}
	wg.Wait()

	if !daily.Equal(dec("100.00")) {
		t.Fatalf("daily counter = %s, want 100.00", daily)
	}
	if !monthly.Equal(dec("100.00")) {
		t.Fatalf("monthly counter = %s, want 100.00", monthly)
	}
}
