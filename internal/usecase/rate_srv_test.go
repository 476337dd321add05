package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedRatePlan(fakes *testRepos, basePrice float64) *entity.RatePlan {
	now := time.Now()
	plan := &entity.RatePlan{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PropertyID: uuid.New(),
		RoomTypeID: uuid.New(),
		Name:       "Standard",
		BasePrice:  basePrice,
		Currency:   "USD",
		IsActive:   true,
	}
	fakes.ratePlans.plans[plan.ID] = plan
	return plan
}

func seedDailyRate(fakes *testRepos, planID uuid.UUID, date string, price float64, availableRooms *int, stopSell bool) {
	day, _ := time.Parse("2006-01-02", date)
	fakes.dailyRates.rates = append(fakes.dailyRates.rates, &entity.DailyRate{
		Base:           entity.Base{ID: uuid.New()},
		RatePlanID:     planID,
		RateDate:       day,
		Price:          price,
		AvailableRooms: availableRooms,
		StopSell:       stopSell,
	})
}

func TestRateService_Quote(t *testing.T) {
	t.Run("uses base price when no overrides exist", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)

		quote, err := svc.Quote(context.Background(), plan.ID.String(), &request.QuoteRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-04",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if quote.Nights == nil || len(quote.Nights) != 3 {
			t.Fatalf("expected 3 nights, got %d", len(quote.Nights))
		}
		if quote.Total != 300 {
			t.Fatalf("expected total 300, got %.2f", quote.Total)
		}
		if quote.Currency != "USD" {
			t.Fatalf("expected currency USD, got %s", quote.Currency)
		}
	})

	t.Run("daily rate overrides base price per night", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)
		seedDailyRate(fakes, plan.ID, "2026-10-02", 150, nil, false)

		quote, err := svc.Quote(context.Background(), plan.ID.String(), &request.QuoteRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-03",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if quote.Total != 250 {
			t.Fatalf("expected total 250, got %.2f", quote.Total)
		}
		if quote.Nights[0].Price != 100 || quote.Nights[1].Price != 150 {
			t.Fatalf("unexpected night prices: %.2f, %.2f", quote.Nights[0].Price, quote.Nights[1].Price)
		}
	})

	t.Run("checkout-day override does not affect the stay", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)
		// Stop-sell on the departure day must not block the stay.
		seedDailyRate(fakes, plan.ID, "2026-10-03", 999, nil, true)

		quote, err := svc.Quote(context.Background(), plan.ID.String(), &request.QuoteRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-03",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if quote.Total != 200 {
			t.Fatalf("expected total 200, got %.2f", quote.Total)
		}
	})

	t.Run("stop-sell on the final night rejects the stay", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)
		seedDailyRate(fakes, plan.ID, "2026-10-02", 100, nil, true)

		_, err := svc.Quote(context.Background(), plan.ID.String(), &request.QuoteRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-03",
		})
		if err == nil || !strings.Contains(err.Error(), "closed for sale") {
			t.Fatalf("expected closed for sale error, got %v", err)
		}

		// The override lookup must cover the last night itself.
		lastNight, _ := time.Parse("2006-01-02", "2026-10-02")
		if !fakes.dailyRates.rangeTo.Equal(lastNight) {
			t.Fatalf("expected range to end on the last night %s, got %s",
				lastNight.Format("2006-01-02"), fakes.dailyRates.rangeTo.Format("2006-01-02"))
		}
	})

	t.Run("stop-sell night rejects the whole stay", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)
		seedDailyRate(fakes, plan.ID, "2026-10-02", 100, nil, true)

		_, err := svc.Quote(context.Background(), plan.ID.String(), &request.QuoteRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-04",
		})
		if err == nil || !strings.Contains(err.Error(), "closed for sale") {
			t.Fatalf("expected closed for sale error, got %v", err)
		}
	})

	t.Run("sold-out night rejects the whole stay", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)
		zero := 0
		seedDailyRate(fakes, plan.ID, "2026-10-01", 100, &zero, false)

		_, err := svc.Quote(context.Background(), plan.ID.String(), &request.QuoteRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-02",
		})
		if err == nil || !strings.Contains(err.Error(), "no rooms left") {
			t.Fatalf("expected no rooms left error, got %v", err)
		}
	})

	t.Run("rejects check-out not after check-in", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)

		_, err := svc.Quote(context.Background(), plan.ID.String(), &request.QuoteRequest{
			CheckInDate:  "2026-10-04",
			CheckOutDate: "2026-10-04",
		})
		if err == nil || !strings.Contains(err.Error(), "must be after") {
			t.Fatalf("expected date order error, got %v", err)
		}
	})

	t.Run("unknown rate plan", func(t *testing.T) {
		repo, _ := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())

		_, err := svc.Quote(context.Background(), uuid.New().String(), &request.QuoteRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-02",
		})
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestRateService_ListDailyRates(t *testing.T) {
	t.Run("single-day range returns that day's rate", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)
		seedDailyRate(fakes, plan.ID, "2026-10-02", 150, nil, false)

		rates, err := svc.ListDailyRates(context.Background(), plan.ID.String(), "2026-10-02", "2026-10-02")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(rates) != 1 {
			t.Fatalf("expected 1 rate, got %d", len(rates))
		}
		if rates[0].Price != 150 {
			t.Fatalf("expected price 150, got %.2f", rates[0].Price)
		}
	})

	t.Run("rejects to date before from date", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRateService(repo, zap.NewNop())
		plan := seedRatePlan(fakes, 100)

		_, err := svc.ListDailyRates(context.Background(), plan.ID.String(), "2026-10-05", "2026-10-02")
		if err == nil || !strings.Contains(err.Error(), "must not be before") {
			t.Fatalf("expected range order error, got %v", err)
		}
	})
}

func TestRateService_BulkUpsertDailyRates(t *testing.T) {
	repo, fakes := newTestRepos()
	svc := NewRateService(repo, zap.NewNop())
	plan := seedRatePlan(fakes, 100)

	rooms := 5
	rates, err := svc.BulkUpsertDailyRates(context.Background(), &request.BulkDailyRatesRequest{
		RatePlanID:     plan.ID.String(),
		StartDate:      "2026-12-24",
		EndDate:        "2026-12-26",
		Price:          180,
		AvailableRooms: &rooms,
		StopSell:       false,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rates) != 3 {
		t.Fatalf("expected 3 daily rates, got %d", len(rates))
	}
	if len(fakes.dailyRates.upserted) != 3 {
		t.Fatalf("expected 3 upserted rows, got %d", len(fakes.dailyRates.upserted))
	}
	for _, rate := range fakes.dailyRates.upserted {
		if rate.Price != 180 {
			t.Fatalf("expected price 180, got %.2f", rate.Price)
		}
		if rate.AvailableRooms == nil || *rate.AvailableRooms != 5 {
			t.Fatalf("expected 5 available rooms")
		}
	}

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := svc.BulkUpsertDailyRates(context.Background(), &request.BulkDailyRatesRequest{
			RatePlanID: plan.ID.String(),
			StartDate:  "2026-12-26",
			EndDate:    "2026-12-24",
			Price:      180,
		})
		if err == nil || !strings.Contains(err.Error(), "must not be before") {
			t.Fatalf("expected date order error, got %v", err)
		}
	})
}

func TestRateService_CreateDailyRate_DuplicateDate(t *testing.T) {
	repo, fakes := newTestRepos()
	svc := NewRateService(repo, zap.NewNop())
	plan := seedRatePlan(fakes, 100)
	seedDailyRate(fakes, plan.ID, "2026-11-05", 120, nil, false)

	_, err := svc.CreateDailyRate(context.Background(), &request.CreateDailyRateRequest{
		RatePlanID: plan.ID.String(),
		Date:       "2026-11-05",
		Price:      140,
	})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}
