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

const defaultBookingDurationMinutes = 90

type RestaurantService interface {
	CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error)
	GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error)
	ListRestaurants(ctx context.Context, propertyID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error)
	UpdateRestaurant(ctx context.Context, restaurantID string, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error)
	DeleteRestaurant(ctx context.Context, restaurantID string) error

	// Tables
	CreateTable(ctx context.Context, restaurantID string, req *request.CreateTableRequest) (*response.TableResponse, error)
	ListTables(ctx context.Context, restaurantID string) ([]response.TableResponse, error)
	UpdateTable(ctx context.Context, tableID string, req *request.UpdateTableRequest) (*response.TableResponse, error)
	DeleteTable(ctx context.Context, tableID string) error
	ListAvailableTables(ctx context.Context, restaurantID, bookingTime string, durationMinutes, partySize int) ([]response.TableResponse, error)

	// Bookings
	CreateBooking(ctx context.Context, req *request.CreateTableBookingRequest) (*response.TableBookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.TableBookingResponse, error)
	ListBookings(ctx context.Context, restaurantID, guestID, status, date string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TableBookingResponse], error)
	ConfirmBooking(ctx context.Context, bookingID string) error
	SeatBooking(ctx context.Context, bookingID string, req *request.SeatBookingRequest) error
	CompleteBooking(ctx context.Context, bookingID string) error
	CancelBooking(ctx context.Context, bookingID string) error
	MarkBookingNoShow(ctx context.Context, bookingID string) error
}

type restaurantService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo: repo,
		log:  log.With(zap.String("service", "restaurant")),
	}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create restaurant validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	propertyUUID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", req.PropertyID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, propertyUUID)
	if err != nil || property == nil {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	now := time.Now()
	restaurant := &entity.Restaurant{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID:  propertyUUID,
		Name:        req.Name,
		Description: req.Description,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		IsActive:    true,
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		s.log.Error("Failed to create restaurant", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	s.log.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("property_id", req.PropertyID))

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error) {
	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) ListRestaurants(ctx context.Context, propertyID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error) {
	propertyUUID, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	limit := req.Size()
	offset := req.Offset()

	restaurants, err := s.repo.Restaurant.FindByPropertyID(ctx, propertyUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to list restaurants", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	total, err := s.repo.Restaurant.CountByPropertyID(ctx, propertyUUID)
	if err != nil {
		s.log.Error("Failed to count restaurants", zap.Error(err))
		return nil, fmt.Errorf("count restaurants: %w", err)
	}

	restaurantResponses := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		restaurantResponses[i] = response.RestaurantToResponse(restaurant)
	}

	return response.NewPaginatedResponse(restaurantResponses, req.Page, limit, total), nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, restaurantID string, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update restaurant validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	restaurant.Name = req.Name
	restaurant.Description = req.Description
	restaurant.OpenTime = req.OpenTime
	restaurant.CloseTime = req.CloseTime
	restaurant.IsActive = req.IsActive
	restaurant.UpdatedAt = time.Now()

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		s.log.Error("Failed to update restaurant", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, fmt.Errorf("update restaurant: %w", err)
	}

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, restaurantID string) error {
	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}

	if err := s.repo.Restaurant.Delete(ctx, restaurant.ID); err != nil {
		s.log.Error("Failed to delete restaurant", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return fmt.Errorf("delete restaurant: %w", err)
	}

	s.log.Info("Restaurant deleted", zap.String("restaurant_id", restaurantID))
	return nil
}

// ==================== TABLES ====================

func (s *restaurantService) CreateTable(ctx context.Context, restaurantID string, req *request.CreateTableRequest) (*response.TableResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create table validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	restaurant, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	table := &entity.RestaurantTable{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RestaurantID: restaurant.ID,
		TableNumber:  req.TableNumber,
		Capacity:     req.Capacity,
		Status:       entity.TableStatusAvailable,
	}

	if err := s.repo.RestaurantTable.Create(ctx, table); err != nil {
		s.log.Error("Failed to create table",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
			zap.String("table_number", req.TableNumber),
		)
		return nil, fmt.Errorf("create table: %w", err)
	}

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *restaurantService) ListTables(ctx context.Context, restaurantID string) ([]response.TableResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	tables, err := s.repo.RestaurantTable.FindByRestaurantID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to list tables", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, fmt.Errorf("list tables: %w", err)
	}

	tableResponses := make([]response.TableResponse, len(tables))
	for i, table := range tables {
		tableResponses[i] = response.TableToResponse(table)
	}

	return tableResponses, nil
}

func (s *restaurantService) UpdateTable(ctx context.Context, tableID string, req *request.UpdateTableRequest) (*response.TableResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update table validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(tableID)
	if err != nil {
		return nil, fmt.Errorf("invalid table ID format %s: %w", tableID, err)
	}

	table, err := s.repo.RestaurantTable.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}
	if table == nil {
		return nil, fmt.Errorf("table %s not found", tableID)
	}

	if table.Status == entity.TableStatusOccupied && req.Status == string(entity.TableStatusOutOfService) {
		return nil, fmt.Errorf("table %s is occupied and cannot be taken out of service", tableID)
	}

	table.TableNumber = req.TableNumber
	table.Capacity = req.Capacity
	table.Status = entity.TableStatus(req.Status)
	table.UpdatedAt = time.Now()

	if err := s.repo.RestaurantTable.Update(ctx, table); err != nil {
		s.log.Error("Failed to update table", zap.Error(err), zap.String("table_id", tableID))
		return nil, fmt.Errorf("update table: %w", err)
	}

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *restaurantService) DeleteTable(ctx context.Context, tableID string) error {
	id, err := uuid.Parse(tableID)
	if err != nil {
		return fmt.Errorf("invalid table ID format %s: %w", tableID, err)
	}

	table, err := s.repo.RestaurantTable.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get table: %w", err)
	}
	if table == nil {
		return fmt.Errorf("table %s not found", tableID)
	}

	if table.Status == entity.TableStatusOccupied {
		return fmt.Errorf("table %s is occupied and cannot be deleted", tableID)
	}

	if err := s.repo.RestaurantTable.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete table", zap.Error(err), zap.String("table_id", tableID))
		return fmt.Errorf("delete table: %w", err)
	}

	return nil
}

func (s *restaurantService) ListAvailableTables(ctx context.Context, restaurantID, bookingTime string, durationMinutes, partySize int) ([]response.TableResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	start, err := time.Parse(time.RFC3339, bookingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid booking time %s: %w", bookingTime, err)
	}

	if durationMinutes <= 0 {
		durationMinutes = defaultBookingDurationMinutes
	}
	if partySize < 1 {
		return nil, fmt.Errorf("party size must be at least 1")
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	tables, err := s.repo.RestaurantTable.FindAvailable(ctx, restaurantUUID, start, end, partySize)
	if err != nil {
		s.log.Error("Failed to find available tables",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
			zap.Int("party_size", partySize),
		)
		return nil, fmt.Errorf("find available tables: %w", err)
	}

	tableResponses := make([]response.TableResponse, len(tables))
	for i, table := range tables {
		tableResponses[i] = response.TableToResponse(table)
	}

	return tableResponses, nil
}

// ==================== BOOKINGS ====================

func (s *restaurantService) CreateBooking(ctx context.Context, req *request.CreateTableBookingRequest) (*response.TableBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create table booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", req.RestaurantID, err)
	}

	guestUUID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", req.GuestID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil || restaurant == nil {
		return nil, fmt.Errorf("restaurant %s not found", req.RestaurantID)
	}
	if !restaurant.IsActive {
		return nil, fmt.Errorf("restaurant %s is not active", req.RestaurantID)
	}

	guest, err := s.repo.Guest.FindByID(ctx, guestUUID)
	if err != nil || guest == nil {
		return nil, fmt.Errorf("guest %s not found", req.GuestID)
	}

	bookingTime, err := time.Parse(time.RFC3339, req.BookingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid booking time %s: %w", req.BookingTime, err)
	}
	if bookingTime.Before(time.Now()) {
		return nil, fmt.Errorf("booking time is in the past")
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultBookingDurationMinutes
	}

	if err := checkOpeningHours(restaurant, bookingTime, duration); err != nil {
		return nil, err
	}

	booking := &entity.TableBooking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RestaurantID:    restaurantUUID,
		GuestID:         guestUUID,
		BookingTime:     bookingTime,
		DurationMinutes: duration,
		PartySize:       req.PartySize,
		Status:          entity.TableBookingStatusPending,
		Notes:           req.Notes,
	}

	if err := s.repo.TableBooking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create table booking",
			zap.Error(err),
			zap.String("restaurant_id", req.RestaurantID),
			zap.String("guest_id", req.GuestID),
		)
		return nil, fmt.Errorf("create table booking: %w", err)
	}

	s.log.Info("Table booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("restaurant_id", req.RestaurantID),
		zap.Int("party_size", req.PartySize))

	resp := response.TableBookingToResponse(booking)
	return &resp, nil
}

func (s *restaurantService) GetBookingByID(ctx context.Context, bookingID string) (*response.TableBookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.TableBookingToResponse(booking)
	return &resp, nil
}

func (s *restaurantService) ListBookings(ctx context.Context, restaurantID, guestID, status, date string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TableBookingResponse], error) {
	var filter repository.TableBookingFilter

	if restaurantID != "" {
		restaurantUUID, err := uuid.Parse(restaurantID)
		if err != nil {
			return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
		}
		filter.RestaurantID = &restaurantUUID
	}
	if guestID != "" {
		guestUUID, err := uuid.Parse(guestID)
		if err != nil {
			return nil, fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
		}
		filter.GuestID = &guestUUID
	}
	if status != "" {
		bookingStatus := entity.TableBookingStatus(status)
		filter.Status = &bookingStatus
	}
	if date != "" {
		day, err := utils.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %s: %w", date, err)
		}
		filter.Date = &day
	}

	limit := req.Size()
	offset := req.Offset()

	bookings, err := s.repo.TableBooking.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list table bookings", zap.Error(err))
		return nil, fmt.Errorf("list table bookings: %w", err)
	}

	total, err := s.repo.TableBooking.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count table bookings", zap.Error(err))
		return nil, fmt.Errorf("count table bookings: %w", err)
	}

	bookingResponses := make([]response.TableBookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.TableBookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, limit, total), nil
}

func (s *restaurantService) ConfirmBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	ok, err := s.repo.TableBooking.TransitionStatus(ctx, id,
		[]entity.TableBookingStatus{entity.TableBookingStatusPending},
		entity.TableBookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}
	if !ok {
		return fmt.Errorf("booking %s cannot be confirmed from its current status", bookingID)
	}

	s.log.Info("Table booking confirmed", zap.String("booking_id", bookingID))
	return nil
}

func (s *restaurantService) SeatBooking(ctx context.Context, bookingID string, req *request.SeatBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Seat booking validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	tableUUID, err := uuid.Parse(req.TableID)
	if err != nil {
		return fmt.Errorf("invalid table ID format %s: %w", req.TableID, err)
	}

	table, err := s.repo.RestaurantTable.FindByID(ctx, tableUUID)
	if err != nil || table == nil {
		return fmt.Errorf("table %s not found", req.TableID)
	}
	if table.RestaurantID != booking.RestaurantID {
		return fmt.Errorf("table %s does not belong to the booking restaurant", req.TableID)
	}
	if table.Capacity < booking.PartySize {
		return fmt.Errorf("table %s seats %d, party is %d", req.TableID, table.Capacity, booking.PartySize)
	}

	overlap, err := s.repo.TableBooking.HasOverlap(ctx, tableUUID, booking.BookingTime, booking.EndTime())
	if err != nil {
		return fmt.Errorf("check table overlap: %w", err)
	}
	if overlap {
		return fmt.Errorf("table %s is already booked for that time", req.TableID)
	}

	// Claim the table first, then seat. Losing either guard releases the claim.
	claimed, err := s.repo.RestaurantTable.UpdateStatusIf(ctx, tableUUID, entity.TableStatusAvailable, entity.TableStatusOccupied)
	if err != nil {
		return fmt.Errorf("claim table: %w", err)
	}
	if !claimed {
		return fmt.Errorf("table %s is not available", req.TableID)
	}

	ok, err := s.repo.TableBooking.Seat(ctx, booking.ID, tableUUID)
	if err != nil || !ok {
		if _, releaseErr := s.repo.RestaurantTable.UpdateStatusIf(ctx, tableUUID, entity.TableStatusOccupied, entity.TableStatusAvailable); releaseErr != nil {
			s.log.Error("Failed to release table after seating failure",
				zap.Error(releaseErr),
				zap.String("table_id", req.TableID),
			)
		}
		if err != nil {
			return fmt.Errorf("seat booking: %w", err)
		}
		return fmt.Errorf("booking %s cannot be seated from its current status", bookingID)
	}

	s.log.Info("Table booking seated",
		zap.String("booking_id", bookingID),
		zap.String("table_id", req.TableID))

	return nil
}

func (s *restaurantService) CompleteBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	ok, err := s.repo.TableBooking.TransitionStatus(ctx, booking.ID,
		[]entity.TableBookingStatus{entity.TableBookingStatusSeated},
		entity.TableBookingStatusCompleted)
	if err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}
	if !ok {
		return fmt.Errorf("booking %s cannot be completed from its current status", bookingID)
	}

	if booking.AssignedTableID != nil {
		if _, err := s.repo.RestaurantTable.UpdateStatusIf(ctx, *booking.AssignedTableID, entity.TableStatusOccupied, entity.TableStatusAvailable); err != nil {
			s.log.Error("Failed to free table after booking completion",
				zap.Error(err),
				zap.String("table_id", booking.AssignedTableID.String()),
			)
		}
	}

	s.log.Info("Table booking completed", zap.String("booking_id", bookingID))
	return nil
}

func (s *restaurantService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	ok, err := s.repo.TableBooking.TransitionStatus(ctx, id,
		[]entity.TableBookingStatus{entity.TableBookingStatusPending, entity.TableBookingStatusConfirmed},
		entity.TableBookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !ok {
		return fmt.Errorf("booking %s cannot be cancelled from its current status", bookingID)
	}

	s.log.Info("Table booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

func (s *restaurantService) MarkBookingNoShow(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	ok, err := s.repo.TableBooking.TransitionStatus(ctx, id,
		[]entity.TableBookingStatus{entity.TableBookingStatusPending, entity.TableBookingStatusConfirmed},
		entity.TableBookingStatusNoShow)
	if err != nil {
		return fmt.Errorf("mark booking no-show: %w", err)
	}
	if !ok {
		return fmt.Errorf("booking %s cannot be marked no-show from its current status", bookingID)
	}

	s.log.Info("Table booking marked no-show", zap.String("booking_id", bookingID))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *restaurantService) findRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant %s not found", restaurantID)
	}

	return restaurant, nil
}

func (s *restaurantService) findBooking(ctx context.Context, bookingID string) (*entity.TableBooking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.TableBooking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, nil
}

// checkOpeningHours rejects bookings that start before opening or end after
// closing on the booking's local day.
func checkOpeningHours(restaurant *entity.Restaurant, bookingTime time.Time, durationMinutes int) error {
	open, err := time.Parse("15:04", restaurant.OpenTime)
	if err != nil {
		return fmt.Errorf("restaurant has invalid open time %s", restaurant.OpenTime)
	}
	closing, err := time.Parse("15:04", restaurant.CloseTime)
	if err != nil {
		return fmt.Errorf("restaurant has invalid close time %s", restaurant.CloseTime)
	}

	day := bookingTime
	openAt := time.Date(day.Year(), day.Month(), day.Day(), open.Hour(), open.Minute(), 0, 0, day.Location())
	closeAt := time.Date(day.Year(), day.Month(), day.Day(), closing.Hour(), closing.Minute(), 0, 0, day.Location())
	endAt := bookingTime.Add(time.Duration(durationMinutes) * time.Minute)

	if bookingTime.Before(openAt) || endAt.After(closeAt) {
		return fmt.Errorf("booking falls outside opening hours %s-%s", restaurant.OpenTime, restaurant.CloseTime)
	}

	return nil
}
