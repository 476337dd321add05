package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/dto/response"
	"hotel-pms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RateService interface {
	CreateRatePlan(ctx context.Context, req *request.CreateRatePlanRequest) (*response.RatePlanResponse, error)
	GetRatePlanByID(ctx context.Context, ratePlanID string) (*response.RatePlanResponse, error)
	ListRatePlans(ctx context.Context, propertyID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RatePlanResponse], error)
	UpdateRatePlan(ctx context.Context, ratePlanID string, req *request.UpdateRatePlanRequest) (*response.RatePlanResponse, error)
	DeleteRatePlan(ctx context.Context, ratePlanID string) error

	// Daily rate calendar
	CreateDailyRate(ctx context.Context, req *request.CreateDailyRateRequest) (*response.DailyRateResponse, error)
	UpdateDailyRate(ctx context.Context, dailyRateID string, req *request.UpdateDailyRateRequest) (*response.DailyRateResponse, error)
	DeleteDailyRate(ctx context.Context, dailyRateID string) error
	ListDailyRates(ctx context.Context, ratePlanID, from, to string) ([]response.DailyRateResponse, error)
	BulkUpsertDailyRates(ctx context.Context, req *request.BulkDailyRatesRequest) ([]response.DailyRateResponse, error)

	// Quote prices a stay night by night
	Quote(ctx context.Context, ratePlanID string, req *request.QuoteRequest) (*response.QuoteResponse, error)
}

type rateService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRateService(repo *repository.Repository, log *zap.Logger) RateService {
	return &rateService{
		repo: repo,
		log:  log.With(zap.String("service", "rate")),
	}
}

func (s *rateService) CreateRatePlan(ctx context.Context, req *request.CreateRatePlanRequest) (*response.RatePlanResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rate plan validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	propertyUUID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", req.PropertyID, err)
	}

	roomTypeUUID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID format %s: %w", req.RoomTypeID, err)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeUUID)
	if err != nil || roomType == nil {
		return nil, fmt.Errorf("room type %s not found", req.RoomTypeID)
	}
	if roomType.PropertyID != propertyUUID {
		return nil, fmt.Errorf("room type %s does not belong to property %s", req.RoomTypeID, req.PropertyID)
	}

	now := time.Now()
	plan := &entity.RatePlan{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID:  propertyUUID,
		RoomTypeID:  roomTypeUUID,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Currency:    req.Currency,
		IsActive:    true,
	}

	if err := s.repo.RatePlan.Create(ctx, plan); err != nil {
		s.log.Error("Failed to create rate plan", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create rate plan: %w", err)
	}

	s.log.Info("Rate plan created",
		zap.String("rate_plan_id", plan.ID.String()),
		zap.String("room_type_id", req.RoomTypeID))

	resp := response.RatePlanToResponse(plan)
	return &resp, nil
}

func (s *rateService) GetRatePlanByID(ctx context.Context, ratePlanID string) (*response.RatePlanResponse, error) {
	id, err := uuid.Parse(ratePlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid rate plan ID format %s: %w", ratePlanID, err)
	}

	plan, err := s.repo.RatePlan.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rate plan: %w", err)
	}
	if plan == nil {
		return nil, fmt.Errorf("rate plan %s not found", ratePlanID)
	}

	resp := response.RatePlanToResponse(plan)
	return &resp, nil
}

func (s *rateService) ListRatePlans(ctx context.Context, propertyID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RatePlanResponse], error) {
	propertyUUID, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	limit := req.Size()
	offset := req.Offset()

	plans, err := s.repo.RatePlan.FindByPropertyID(ctx, propertyUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to list rate plans", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("list rate plans: %w", err)
	}

	total, err := s.repo.RatePlan.CountByPropertyID(ctx, propertyUUID)
	if err != nil {
		s.log.Error("Failed to count rate plans", zap.Error(err))
		return nil, fmt.Errorf("count rate plans: %w", err)
	}

	planResponses := make([]response.RatePlanResponse, len(plans))
	for i, plan := range plans {
		planResponses[i] = response.RatePlanToResponse(plan)
	}

	return response.NewPaginatedResponse(planResponses, req.Page, limit, total), nil
}

func (s *rateService) UpdateRatePlan(ctx context.Context, ratePlanID string, req *request.UpdateRatePlanRequest) (*response.RatePlanResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update rate plan validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(ratePlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid rate plan ID format %s: %w", ratePlanID, err)
	}

	plan, err := s.repo.RatePlan.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rate plan: %w", err)
	}
	if plan == nil {
		return nil, fmt.Errorf("rate plan %s not found", ratePlanID)
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.BasePrice = req.BasePrice
	plan.Currency = req.Currency
	plan.IsActive = req.IsActive
	plan.UpdatedAt = time.Now()

	if err := s.repo.RatePlan.Update(ctx, plan); err != nil {
		s.log.Error("Failed to update rate plan", zap.Error(err), zap.String("rate_plan_id", ratePlanID))
		return nil, fmt.Errorf("update rate plan: %w", err)
	}

	resp := response.RatePlanToResponse(plan)
	return &resp, nil
}

func (s *rateService) DeleteRatePlan(ctx context.Context, ratePlanID string) error {
	id, err := uuid.Parse(ratePlanID)
	if err != nil {
		return fmt.Errorf("invalid rate plan ID format %s: %w", ratePlanID, err)
	}

	plan, err := s.repo.RatePlan.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get rate plan: %w", err)
	}
	if plan == nil {
		return fmt.Errorf("rate plan %s not found", ratePlanID)
	}

	if err := s.repo.RatePlan.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete rate plan", zap.Error(err), zap.String("rate_plan_id", ratePlanID))
		return fmt.Errorf("delete rate plan: %w", err)
	}

	s.log.Info("Rate plan deleted", zap.String("rate_plan_id", ratePlanID))
	return nil
}

// ==================== DAILY RATES ====================

func (s *rateService) CreateDailyRate(ctx context.Context, req *request.CreateDailyRateRequest) (*response.DailyRateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create daily rate validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	planUUID, err := uuid.Parse(req.RatePlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid rate plan ID format %s: %w", req.RatePlanID, err)
	}

	plan, err := s.repo.RatePlan.FindByID(ctx, planUUID)
	if err != nil || plan == nil {
		return nil, fmt.Errorf("rate plan %s not found", req.RatePlanID)
	}

	rateDate, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	existing, err := s.repo.DailyRate.FindByPlanAndDate(ctx, planUUID, rateDate)
	if err != nil {
		return nil, fmt.Errorf("check existing daily rate: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("daily rate for %s already exists on plan %s", req.Date, req.RatePlanID)
	}

	now := time.Now()
	rate := &entity.DailyRate{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RatePlanID:     planUUID,
		RateDate:       rateDate,
		Price:          req.Price,
		AvailableRooms: req.AvailableRooms,
		StopSell:       req.StopSell,
	}

	if err := s.repo.DailyRate.Create(ctx, rate); err != nil {
		s.log.Error("Failed to create daily rate",
			zap.Error(err),
			zap.String("rate_plan_id", req.RatePlanID),
			zap.String("date", req.Date),
		)
		return nil, fmt.Errorf("create daily rate: %w", err)
	}

	resp := response.DailyRateToResponse(rate)
	return &resp, nil
}

func (s *rateService) UpdateDailyRate(ctx context.Context, dailyRateID string, req *request.UpdateDailyRateRequest) (*response.DailyRateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update daily rate validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(dailyRateID)
	if err != nil {
		return nil, fmt.Errorf("invalid daily rate ID format %s: %w", dailyRateID, err)
	}

	rate, err := s.repo.DailyRate.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get daily rate: %w", err)
	}
	if rate == nil {
		return nil, fmt.Errorf("daily rate %s not found", dailyRateID)
	}

	rate.Price = req.Price
	rate.AvailableRooms = req.AvailableRooms
	rate.StopSell = req.StopSell
	rate.UpdatedAt = time.Now()

	if err := s.repo.DailyRate.Update(ctx, rate); err != nil {
		s.log.Error("Failed to update daily rate", zap.Error(err), zap.String("daily_rate_id", dailyRateID))
		return nil, fmt.Errorf("update daily rate: %w", err)
	}

	resp := response.DailyRateToResponse(rate)
	return &resp, nil
}

func (s *rateService) DeleteDailyRate(ctx context.Context, dailyRateID string) error {
	id, err := uuid.Parse(dailyRateID)
	if err != nil {
		return fmt.Errorf("invalid daily rate ID format %s: %w", dailyRateID, err)
	}

	rate, err := s.repo.DailyRate.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get daily rate: %w", err)
	}
	if rate == nil {
		return fmt.Errorf("daily rate %s not found", dailyRateID)
	}

	if err := s.repo.DailyRate.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete daily rate", zap.Error(err), zap.String("daily_rate_id", dailyRateID))
		return fmt.Errorf("delete daily rate: %w", err)
	}

	return nil
}

func (s *rateService) ListDailyRates(ctx context.Context, ratePlanID, from, to string) ([]response.DailyRateResponse, error) {
	planUUID, err := uuid.Parse(ratePlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid rate plan ID format %s: %w", ratePlanID, err)
	}

	fromDate, err := utils.ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %s: %w", from, err)
	}

	toDate, err := utils.ParseDate(to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %s: %w", to, err)
	}

	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("to date must not be before from date")
	}

	rates, err := s.repo.DailyRate.FindByPlanAndRange(ctx, planUUID, fromDate, toDate)
	if err != nil {
		s.log.Error("Failed to list daily rates", zap.Error(err), zap.String("rate_plan_id", ratePlanID))
		return nil, fmt.Errorf("list daily rates: %w", err)
	}

	rateResponses := make([]response.DailyRateResponse, len(rates))
	for i, rate := range rates {
		rateResponses[i] = response.DailyRateToResponse(rate)
	}

	return rateResponses, nil
}

// BulkUpsertDailyRates writes one row per day across [start, end] in a single
// transaction, so a calendar update is either fully applied or not at all.
func (s *rateService) BulkUpsertDailyRates(ctx context.Context, req *request.BulkDailyRatesRequest) ([]response.DailyRateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Bulk daily rates validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	planUUID, err := uuid.Parse(req.RatePlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid rate plan ID format %s: %w", req.RatePlanID, err)
	}

	plan, err := s.repo.RatePlan.FindByID(ctx, planUUID)
	if err != nil || plan == nil {
		return nil, fmt.Errorf("rate plan %s not found", req.RatePlanID)
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}

	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	now := time.Now()
	var rates []*entity.DailyRate
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		rates = append(rates, &entity.DailyRate{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			RatePlanID:     planUUID,
			RateDate:       d,
			Price:          req.Price,
			AvailableRooms: req.AvailableRooms,
			StopSell:       req.StopSell,
		})
	}

	if err := s.repo.DailyRate.UpsertBatch(ctx, rates); err != nil {
		s.log.Error("Failed to bulk upsert daily rates",
			zap.Error(err),
			zap.String("rate_plan_id", req.RatePlanID),
			zap.Int("days", len(rates)),
		)
		return nil, fmt.Errorf("bulk upsert daily rates: %w", err)
	}

	s.log.Info("Daily rates upserted",
		zap.String("rate_plan_id", req.RatePlanID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
		zap.Int("days", len(rates)))

	rateResponses := make([]response.DailyRateResponse, len(rates))
	for i, rate := range rates {
		rateResponses[i] = response.DailyRateToResponse(rate)
	}

	return rateResponses, nil
}

func (s *rateService) Quote(ctx context.Context, ratePlanID string, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	planUUID, err := uuid.Parse(ratePlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid rate plan ID format %s: %w", ratePlanID, err)
	}

	plan, err := s.repo.RatePlan.FindByID(ctx, planUUID)
	if err != nil {
		return nil, fmt.Errorf("get rate plan: %w", err)
	}
	if plan == nil {
		return nil, fmt.Errorf("rate plan %s not found", ratePlanID)
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %s: %w", req.CheckInDate, err)
	}

	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %s: %w", req.CheckOutDate, err)
	}

	nights, total, err := quoteStay(ctx, s.repo.DailyRate, plan, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &response.QuoteResponse{
		RatePlanID: ratePlanID,
		CheckIn:    req.CheckInDate,
		CheckOut:   req.CheckOutDate,
		Nights:     nights,
		Total:      total,
		Currency:   plan.Currency,
	}, nil
}

// quoteStay prices every night of [checkIn, checkOut). A night uses its daily
// rate override when one exists, otherwise the plan's base price. A stop-sell
// night or a night with zero rooms left makes the whole stay unbookable.
func quoteStay(ctx context.Context, dailyRates repository.DailyRateRepository, plan *entity.RatePlan, checkIn, checkOut time.Time) ([]response.QuoteNight, float64, error) {
	if !checkOut.After(checkIn) {
		return nil, 0, fmt.Errorf("check-out date must be after check-in date")
	}

	overrides, err := dailyRates.FindByPlanAndRange(ctx, plan.ID, checkIn, checkOut.AddDate(0, 0, -1))
	if err != nil {
		return nil, 0, fmt.Errorf("load daily rates: %w", err)
	}

	byDate := make(map[string]*entity.DailyRate, len(overrides))
	for _, rate := range overrides {
		byDate[rate.RateDate.Format(utils.DateLayout)] = rate
	}

	var nights []response.QuoteNight
	var total float64
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(utils.DateLayout)
		price := plan.BasePrice

		if rate, ok := byDate[dateStr]; ok {
			if rate.StopSell {
				return nil, 0, fmt.Errorf("rate plan is closed for sale on %s", dateStr)
			}
			if rate.AvailableRooms != nil && *rate.AvailableRooms <= 0 {
				return nil, 0, fmt.Errorf("no rooms left on %s", dateStr)
			}
			price = rate.Price
		}

		nights = append(nights, response.QuoteNight{Date: dateStr, Price: price})
		total += price
	}

	return nights, total, nil
}
