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

type ReservationService interface {
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	GetReservationByCode(ctx context.Context, confirmationCode string) (*response.ReservationResponse, error)
	ListReservations(ctx context.Context, req *request.ListReservationsRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	UpdateReservation(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error)

	// Lifecycle
	ConfirmReservation(ctx context.Context, reservationID string) error
	CancelReservation(ctx context.Context, reservationID string) error
	MarkNoShow(ctx context.Context, reservationID string) error
	AssignRoom(ctx context.Context, reservationID string, req *request.AssignRoomRequest) error
	CheckIn(ctx context.Context, reservationID string) error
	CheckOut(ctx context.Context, reservationID string) error

	// Service lines
	AddService(ctx context.Context, reservationID string, req *request.AddReservationServiceRequest) (*response.ReservationServiceLineResponse, error)
	ListServiceLines(ctx context.Context, reservationID string) ([]response.ReservationServiceLineResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	propertyUUID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", req.PropertyID, err)
	}
	guestUUID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", req.GuestID, err)
	}
	roomTypeUUID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID format %s: %w", req.RoomTypeID, err)
	}
	planUUID, err := uuid.Parse(req.RatePlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid rate plan ID format %s: %w", req.RatePlanID, err)
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %s: %w", req.CheckInDate, err)
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %s: %w", req.CheckOutDate, err)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}

	property, err := s.repo.Property.FindByID(ctx, propertyUUID)
	if err != nil || property == nil {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}
	if !property.IsActive {
		return nil, fmt.Errorf("property %s is not active", req.PropertyID)
	}

	guest, err := s.repo.Guest.FindByID(ctx, guestUUID)
	if err != nil || guest == nil {
		return nil, fmt.Errorf("guest %s not found", req.GuestID)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeUUID)
	if err != nil || roomType == nil {
		return nil, fmt.Errorf("room type %s not found", req.RoomTypeID)
	}
	if roomType.PropertyID != propertyUUID {
		return nil, fmt.Errorf("room type %s does not belong to property %s", req.RoomTypeID, req.PropertyID)
	}
	if req.Adults > roomType.MaxAdults || req.Children > roomType.MaxChildren {
		return nil, fmt.Errorf("party size exceeds room type capacity")
	}

	plan, err := s.repo.RatePlan.FindByID(ctx, planUUID)
	if err != nil || plan == nil {
		return nil, fmt.Errorf("rate plan %s not found", req.RatePlanID)
	}
	if !plan.IsActive {
		return nil, fmt.Errorf("rate plan %s is not active", req.RatePlanID)
	}
	if plan.RoomTypeID != roomTypeUUID {
		return nil, fmt.Errorf("rate plan %s does not cover room type %s", req.RatePlanID, req.RoomTypeID)
	}

	// Price the stay, rejecting stop-sell and sold-out nights.
	_, roomAmount, err := quoteStay(ctx, s.repo.DailyRate, plan, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	totalAmount := roomAmount + req.TaxAmount - req.Discount
	if totalAmount < 0 {
		return nil, fmt.Errorf("discount exceeds total amount")
	}

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID:       propertyUUID,
		GuestID:          guestUUID,
		RoomTypeID:       roomTypeUUID,
		RatePlanID:       planUUID,
		ConfirmationCode: utils.GenerateConfirmationCode(),
		Channel:          entity.ReservationChannel(req.Channel),
		Status:           entity.ReservationStatusPending,
		PaymentStatus:    entity.PaymentStateUnpaid,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Adults:           req.Adults,
		Children:         req.Children,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		TotalAmount:      totalAmount,
		TaxAmount:        req.TaxAmount,
		DiscountAmount:   req.Discount,
		Currency:         plan.Currency,
		GuestNotes:       req.GuestNotes,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("guest_id", req.GuestID),
			zap.String("property_id", req.PropertyID),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("confirmation_code", reservation.ConfirmationCode),
		zap.Float64("total_amount", totalAmount))

	return s.buildResponse(ctx, reservation), nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, reservation), nil
}

func (s *reservationService) GetReservationByCode(ctx context.Context, confirmationCode string) (*response.ReservationResponse, error) {
	reservation, err := s.repo.Reservation.FindByConfirmationCode(ctx, confirmationCode)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", confirmationCode)
	}

	return s.buildResponse(ctx, reservation), nil
}

func (s *reservationService) ListReservations(ctx context.Context, req *request.ListReservationsRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List reservations validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var filter repository.ReservationFilter
	if req.PropertyID != "" {
		propertyUUID, err := uuid.Parse(req.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("invalid property ID format %s: %w", req.PropertyID, err)
		}
		filter.PropertyID = &propertyUUID
	}
	if req.GuestID != "" {
		guestUUID, err := uuid.Parse(req.GuestID)
		if err != nil {
			return nil, fmt.Errorf("invalid guest ID format %s: %w", req.GuestID, err)
		}
		filter.GuestID = &guestUUID
	}
	if req.Status != "" {
		status := entity.ReservationStatus(req.Status)
		filter.Status = &status
	}

	limit := req.Size()
	offset := req.Offset()

	reservations, err := s.repo.Reservation.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count reservations", zap.Error(err))
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	reservationResponses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		reservationResponses[i] = *s.buildResponse(ctx, reservation)
	}

	return response.NewPaginatedResponse(reservationResponses, req.Page, limit, total), nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	// Dates and party can only change before the guest is in-house.
	if reservation.Status != entity.ReservationStatusPending && reservation.Status != entity.ReservationStatusConfirmed {
		return nil, fmt.Errorf("reservation %s cannot be modified in status %s", reservationID, reservation.Status)
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %s: %w", req.CheckInDate, err)
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %s: %w", req.CheckOutDate, err)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, reservation.RoomTypeID)
	if err != nil || roomType == nil {
		return nil, fmt.Errorf("room type for reservation %s not found", reservationID)
	}
	if req.Adults > roomType.MaxAdults || req.Children > roomType.MaxChildren {
		return nil, fmt.Errorf("party size exceeds room type capacity")
	}

	plan, err := s.repo.RatePlan.FindByID(ctx, reservation.RatePlanID)
	if err != nil || plan == nil {
		return nil, fmt.Errorf("rate plan for reservation %s not found", reservationID)
	}

	// Reprice the stay against the new dates.
	_, roomAmount, err := quoteStay(ctx, s.repo.DailyRate, plan, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	totalAmount := roomAmount + req.TaxAmount - req.Discount + reservation.ServiceAmount
	if totalAmount < 0 {
		return nil, fmt.Errorf("discount exceeds total amount")
	}

	reservation.CheckInDate = checkIn
	reservation.CheckOutDate = checkOut
	reservation.Adults = req.Adults
	reservation.Children = req.Children
	reservation.Channel = entity.ReservationChannel(req.Channel)
	reservation.ContactName = req.ContactName
	reservation.ContactEmail = req.ContactEmail
	reservation.ContactPhone = req.ContactPhone
	reservation.TotalAmount = totalAmount
	reservation.TaxAmount = req.TaxAmount
	reservation.DiscountAmount = req.Discount
	reservation.GuestNotes = req.GuestNotes
	reservation.UpdatedAt = time.Now()

	if err := s.repo.Reservation.Update(ctx, reservation); err != nil {
		s.log.Error("Failed to update reservation", zap.Error(err), zap.String("reservation_id", reservationID))
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	return s.buildResponse(ctx, reservation), nil
}

// ==================== LIFECYCLE ====================

func (s *reservationService) ConfirmReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	ok, err := s.repo.Reservation.TransitionStatus(ctx, id,
		[]entity.ReservationStatus{entity.ReservationStatusPending},
		entity.ReservationStatusConfirmed)
	if err != nil {
		return fmt.Errorf("confirm reservation: %w", err)
	}
	if !ok {
		return fmt.Errorf("reservation %s cannot be confirmed from its current status", reservationID)
	}

	s.log.Info("Reservation confirmed", zap.String("reservation_id", reservationID))
	return nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	ok, err := s.repo.Reservation.TransitionStatus(ctx, id,
		[]entity.ReservationStatus{entity.ReservationStatusPending, entity.ReservationStatusConfirmed},
		entity.ReservationStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	if !ok {
		return fmt.Errorf("reservation %s cannot be cancelled from its current status", reservationID)
	}

	s.log.Info("Reservation cancelled", zap.String("reservation_id", reservationID))
	return nil
}

func (s *reservationService) MarkNoShow(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	ok, err := s.repo.Reservation.TransitionStatus(ctx, id,
		[]entity.ReservationStatus{entity.ReservationStatusPending, entity.ReservationStatusConfirmed},
		entity.ReservationStatusNoShow)
	if err != nil {
		return fmt.Errorf("mark no-show: %w", err)
	}
	if !ok {
		return fmt.Errorf("reservation %s cannot be marked no-show from its current status", reservationID)
	}

	s.log.Info("Reservation marked no-show", zap.String("reservation_id", reservationID))
	return nil
}

func (s *reservationService) AssignRoom(ctx context.Context, reservationID string, req *request.AssignRoomRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Assign room validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	roomUUID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil || room == nil {
		return fmt.Errorf("room %s not found", req.RoomID)
	}
	if room.PropertyID != reservation.PropertyID {
		return fmt.Errorf("room %s does not belong to property %s", req.RoomID, reservation.PropertyID.String())
	}
	if room.RoomTypeID != reservation.RoomTypeID {
		return fmt.Errorf("room %s is not of the reserved room type", req.RoomID)
	}

	// The room must still be free for the whole stay window.
	available, err := s.repo.Room.FindAvailableForStay(ctx,
		reservation.PropertyID, reservation.RoomTypeID,
		reservation.CheckInDate, reservation.CheckOutDate)
	if err != nil {
		return fmt.Errorf("check room availability: %w", err)
	}

	found := false
	for _, candidate := range available {
		if candidate.ID == roomUUID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("room %s is not available for the stay", req.RoomID)
	}

	ok, err := s.repo.Reservation.AssignRoom(ctx, reservation.ID, roomUUID,
		[]entity.ReservationStatus{entity.ReservationStatusPending, entity.ReservationStatusConfirmed})
	if err != nil {
		return fmt.Errorf("assign room: %w", err)
	}
	if !ok {
		return fmt.Errorf("reservation %s cannot be assigned a room in its current status", reservationID)
	}

	s.log.Info("Room assigned",
		zap.String("reservation_id", reservationID),
		zap.String("room_id", req.RoomID))

	return nil
}

func (s *reservationService) CheckIn(ctx context.Context, reservationID string) error {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	if reservation.AssignedRoomID == nil {
		return fmt.Errorf("reservation %s has no room assigned", reservationID)
	}

	// Claim the room first so two concurrent check-ins cannot share it.
	roomID := *reservation.AssignedRoomID
	claimed, err := s.repo.Room.UpdateStatusIf(ctx, roomID, entity.RoomStatusAvailable, entity.RoomStatusOccupied)
	if err != nil {
		return fmt.Errorf("claim room: %w", err)
	}
	if !claimed {
		return fmt.Errorf("room for reservation %s is not available", reservationID)
	}

	ok, err := s.repo.Reservation.TransitionStatus(ctx, reservation.ID,
		[]entity.ReservationStatus{entity.ReservationStatusConfirmed},
		entity.ReservationStatusCheckedIn)
	if err != nil || !ok {
		// Release the room when the transition loses.
		if _, releaseErr := s.repo.Room.UpdateStatusIf(ctx, roomID, entity.RoomStatusOccupied, entity.RoomStatusAvailable); releaseErr != nil {
			s.log.Error("Failed to release room after check-in failure",
				zap.Error(releaseErr),
				zap.String("room_id", roomID.String()),
			)
		}
		if err != nil {
			return fmt.Errorf("check in reservation: %w", err)
		}
		return fmt.Errorf("reservation %s cannot be checked in from its current status", reservationID)
	}

	s.log.Info("Guest checked in",
		zap.String("reservation_id", reservationID),
		zap.String("room_id", roomID.String()))

	return nil
}

func (s *reservationService) CheckOut(ctx context.Context, reservationID string) error {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	ok, err := s.repo.Reservation.TransitionStatus(ctx, reservation.ID,
		[]entity.ReservationStatus{entity.ReservationStatusCheckedIn},
		entity.ReservationStatusCheckedOut)
	if err != nil {
		return fmt.Errorf("check out reservation: %w", err)
	}
	if !ok {
		return fmt.Errorf("reservation %s cannot be checked out from its current status", reservationID)
	}

	if reservation.AssignedRoomID != nil {
		roomID := *reservation.AssignedRoomID
		if _, err := s.repo.Room.UpdateStatusIf(ctx, roomID, entity.RoomStatusOccupied, entity.RoomStatusAvailable); err != nil {
			s.log.Error("Failed to free room after check-out",
				zap.Error(err),
				zap.String("room_id", roomID.String()),
			)
		}
		if err := s.repo.Room.UpdateHousekeeping(ctx, roomID, entity.HousekeepingDirty); err != nil {
			s.log.Error("Failed to mark room dirty after check-out",
				zap.Error(err),
				zap.String("room_id", roomID.String()),
			)
		}
	}

	s.log.Info("Guest checked out", zap.String("reservation_id", reservationID))
	return nil
}

// ==================== SERVICE LINES ====================

func (s *reservationService) AddService(ctx context.Context, reservationID string, req *request.AddReservationServiceRequest) (*response.ReservationServiceLineResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add reservation service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	switch reservation.Status {
	case entity.ReservationStatusPending, entity.ReservationStatusConfirmed, entity.ReservationStatusCheckedIn:
	default:
		return nil, fmt.Errorf("reservation %s cannot take services in status %s", reservationID, reservation.Status)
	}

	offeringUUID, err := uuid.Parse(req.PropertyServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid property service ID format %s: %w", req.PropertyServiceID, err)
	}

	offering, err := s.repo.PropertyService.FindByID(ctx, offeringUUID)
	if err != nil || offering == nil {
		return nil, fmt.Errorf("property service %s not found", req.PropertyServiceID)
	}
	if !offering.IsActive {
		return nil, fmt.Errorf("property service %s is not active", req.PropertyServiceID)
	}
	if offering.PropertyID != reservation.PropertyID {
		return nil, fmt.Errorf("property service %s does not belong to the reservation property", req.PropertyServiceID)
	}

	line := &entity.ReservationService{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReservationID:     reservation.ID,
		PropertyServiceID: offeringUUID,
		Quantity:          req.Quantity,
		UnitPrice:         offering.Price,
		TotalPrice:        offering.Price * float64(req.Quantity),
	}

	if err := s.repo.ReservationService.Create(ctx, line); err != nil {
		s.log.Error("Failed to add reservation service",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
			zap.String("property_service_id", req.PropertyServiceID),
		)
		return nil, fmt.Errorf("add reservation service: %w", err)
	}

	// Roll the line into the reservation totals.
	serviceAmount, err := s.repo.ReservationService.SumByReservationID(ctx, reservation.ID)
	if err != nil {
		return nil, fmt.Errorf("sum reservation services: %w", err)
	}

	totalAmount := reservation.TotalAmount - reservation.ServiceAmount + serviceAmount
	if err := s.repo.Reservation.UpdateServiceTotals(ctx, reservation.ID, serviceAmount, totalAmount); err != nil {
		return nil, fmt.Errorf("update reservation totals: %w", err)
	}

	s.log.Info("Service added to reservation",
		zap.String("reservation_id", reservationID),
		zap.Float64("line_total", line.TotalPrice),
		zap.Float64("service_amount", serviceAmount))

	return &response.ReservationServiceLineResponse{
		ID:                line.ID.String(),
		PropertyServiceID: line.PropertyServiceID.String(),
		Quantity:          line.Quantity,
		UnitPrice:         line.UnitPrice,
		TotalPrice:        line.TotalPrice,
		CreatedAt:         line.CreatedAt,
	}, nil
}

func (s *reservationService) ListServiceLines(ctx context.Context, reservationID string) ([]response.ReservationServiceLineResponse, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.ReservationService.FindByReservationID(ctx, reservation.ID)
	if err != nil {
		s.log.Error("Failed to list reservation services", zap.Error(err), zap.String("reservation_id", reservationID))
		return nil, fmt.Errorf("list reservation services: %w", err)
	}

	lineResponses := make([]response.ReservationServiceLineResponse, len(lines))
	for i, line := range lines {
		lineResponses[i] = response.ReservationServiceLineResponse{
			ID:                line.ID.String(),
			PropertyServiceID: line.PropertyServiceID.String(),
			Quantity:          line.Quantity,
			UnitPrice:         line.UnitPrice,
			TotalPrice:        line.TotalPrice,
			CreatedAt:         line.CreatedAt,
		}

		// Resolve the catalog name for display.
		offering, _ := s.repo.PropertyService.FindByID(ctx, line.PropertyServiceID)
		if offering != nil {
			service, _ := s.repo.Service.FindByID(ctx, offering.ServiceID)
			if service != nil {
				lineResponses[i].ServiceName = service.Name
			}
		}
	}

	return lineResponses, nil
}

// ==================== HELPER METHODS ====================

func (s *reservationService) findReservation(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", reservationID)
	}

	return reservation, nil
}

func (s *reservationService) buildResponse(ctx context.Context, reservation *entity.Reservation) *response.ReservationResponse {
	resp := response.ReservationToResponse(reservation)

	guest, _ := s.repo.Guest.FindByID(ctx, reservation.GuestID)
	if guest != nil {
		resp.GuestName = guest.FirstName + " " + guest.LastName
	}

	roomType, _ := s.repo.RoomType.FindByID(ctx, reservation.RoomTypeID)
	if roomType != nil {
		resp.RoomTypeName = roomType.Name
	}

	if reservation.AssignedRoomID != nil {
		room, _ := s.repo.Room.FindByID(ctx, *reservation.AssignedRoomID)
		if room != nil {
			resp.RoomNumber = &room.RoomNumber
		}
	}

	return &resp
}
