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

type RoomService interface {
	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
	GetRoomTypeByID(ctx context.Context, roomTypeID string) (*response.RoomTypeResponse, error)
	ListRoomTypes(ctx context.Context, propertyID string) ([]response.RoomTypeResponse, error)

	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	ListRooms(ctx context.Context, propertyID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	UpdateHousekeeping(ctx context.Context, roomID string, req *request.UpdateHousekeepingRequest) error
	DeleteRoom(ctx context.Context, roomID string) error

	// Availability for a stay window
	ListAvailableRooms(ctx context.Context, propertyID, roomTypeID, checkIn, checkOut string) ([]response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room type validation failed", zap.Any("errors", errs))
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
	roomType := &entity.RoomType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID:  propertyUUID,
		Name:        req.Name,
		Description: req.Description,
		MaxAdults:   req.MaxAdults,
		MaxChildren: req.MaxChildren,
	}

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		s.log.Error("Failed to create room type", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.log.Info("Room type created",
		zap.String("room_type_id", roomType.ID.String()),
		zap.String("property_id", req.PropertyID))

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *roomService) GetRoomTypeByID(ctx context.Context, roomTypeID string) (*response.RoomTypeResponse, error) {
	id, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID format %s: %w", roomTypeID, err)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}
	if roomType == nil {
		return nil, fmt.Errorf("room type %s not found", roomTypeID)
	}

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *roomService) ListRoomTypes(ctx context.Context, propertyID string) ([]response.RoomTypeResponse, error) {
	propertyUUID, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	roomTypes, err := s.repo.RoomType.FindByPropertyID(ctx, propertyUUID)
	if err != nil {
		s.log.Error("Failed to list room types", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("list room types: %w", err)
	}

	roomTypeResponses := make([]response.RoomTypeResponse, len(roomTypes))
	for i, roomType := range roomTypes {
		roomTypeResponses[i] = response.RoomTypeToResponse(roomType)
	}

	return roomTypeResponses, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
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
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID:   propertyUUID,
		RoomTypeID:   roomTypeUUID,
		RoomNumber:   req.RoomNumber,
		Floor:        req.Floor,
		Status:       entity.RoomStatusAvailable,
		Housekeeping: entity.HousekeepingClean,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("room_number", req.RoomNumber))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_number", room.RoomNumber))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) ListRooms(ctx context.Context, propertyID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	propertyUUID, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	limit := req.Size()
	offset := req.Offset()

	rooms, err := s.repo.Room.FindByPropertyID(ctx, propertyUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	total, err := s.repo.Room.CountByPropertyID(ctx, propertyUUID)
	if err != nil {
		s.log.Error("Failed to count rooms", zap.Error(err))
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return response.NewPaginatedResponse(roomResponses, req.Page, limit, total), nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	roomTypeUUID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID format %s: %w", req.RoomTypeID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	// An occupied room cannot be moved out of service under a guest.
	if room.Status == entity.RoomStatusOccupied && req.Status == string(entity.RoomStatusOutOfService) {
		return nil, fmt.Errorf("room %s is occupied and cannot be taken out of service", roomID)
	}

	room.RoomTypeID = roomTypeUUID
	room.RoomNumber = req.RoomNumber
	room.Floor = req.Floor
	room.Status = entity.RoomStatus(req.Status)
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateHousekeeping(ctx context.Context, roomID string, req *request.UpdateHousekeepingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update housekeeping validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room %s not found", roomID)
	}

	if err := s.repo.Room.UpdateHousekeeping(ctx, id, entity.HousekeepingStatus(req.Housekeeping)); err != nil {
		s.log.Error("Failed to update housekeeping", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("update housekeeping: %w", err)
	}

	s.log.Info("Housekeeping updated",
		zap.String("room_id", roomID),
		zap.String("housekeeping", req.Housekeeping))

	return nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room %s not found", roomID)
	}

	if room.Status == entity.RoomStatusOccupied {
		return fmt.Errorf("room %s is occupied and cannot be deleted", roomID)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

func (s *roomService) ListAvailableRooms(ctx context.Context, propertyID, roomTypeID, checkIn, checkOut string) ([]response.RoomResponse, error) {
	propertyUUID, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	roomTypeUUID, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID format %s: %w", roomTypeID, err)
	}

	checkInDate, err := utils.ParseDate(checkIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %s: %w", checkIn, err)
	}

	checkOutDate, err := utils.ParseDate(checkOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %s: %w", checkOut, err)
	}

	if !checkOutDate.After(checkInDate) {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}

	rooms, err := s.repo.Room.FindAvailableForStay(ctx, propertyUUID, roomTypeUUID, checkInDate, checkOutDate)
	if err != nil {
		s.log.Error("Failed to find available rooms",
			zap.Error(err),
			zap.String("property_id", propertyID),
			zap.String("room_type_id", roomTypeID),
		)
		return nil, fmt.Errorf("find available rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return roomResponses, nil
}
