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

type GuestService interface {
	CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error)
	GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error)
	ListGuests(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GuestResponse], error)
	UpdateGuest(ctx context.Context, guestID string, req *request.UpdateGuestRequest) (*response.GuestResponse, error)
	DeleteGuest(ctx context.Context, guestID string) error
}

type guestService struct {
	guestRepo repository.GuestRepository
	log       *zap.Logger
}

func NewGuestService(guestRepo repository.GuestRepository, log *zap.Logger) GuestService {
	return &guestService{
		guestRepo: guestRepo,
		log:       log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create guest validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Nationality: req.Nationality,
		IDNumber:    req.IDNumber,
		Notes:       req.Notes,
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		s.log.Error("Failed to create guest", zap.Error(err))
		return nil, fmt.Errorf("create guest: %w", err)
	}

	s.log.Info("Guest created", zap.String("guest_id", guest.ID.String()))

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error) {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %s not found", guestID)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) ListGuests(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GuestResponse], error) {
	limit := req.Size()
	offset := req.Offset()

	guests, err := s.guestRepo.FindAll(ctx, search, limit, offset)
	if err != nil {
		s.log.Error("Failed to list guests", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list guests: %w", err)
	}

	total, err := s.guestRepo.Count(ctx, search)
	if err != nil {
		s.log.Error("Failed to count guests", zap.Error(err))
		return nil, fmt.Errorf("count guests: %w", err)
	}

	guestResponses := make([]response.GuestResponse, len(guests))
	for i, guest := range guests {
		guestResponses[i] = response.GuestToResponse(guest)
	}

	return response.NewPaginatedResponse(guestResponses, req.Page, limit, total), nil
}

func (s *guestService) UpdateGuest(ctx context.Context, guestID string, req *request.UpdateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update guest validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %s not found", guestID)
	}

	guest.FirstName = req.FirstName
	guest.LastName = req.LastName
	guest.Email = req.Email
	guest.Phone = req.Phone
	guest.Nationality = req.Nationality
	guest.IDNumber = req.IDNumber
	guest.Notes = req.Notes
	guest.UpdatedAt = time.Now()

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		s.log.Error("Failed to update guest", zap.Error(err), zap.String("guest_id", guestID))
		return nil, fmt.Errorf("update guest: %w", err)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) DeleteGuest(ctx context.Context, guestID string) error {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get guest: %w", err)
	}
	if guest == nil {
		return fmt.Errorf("guest %s not found", guestID)
	}

	if err := s.guestRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete guest", zap.Error(err), zap.String("guest_id", guestID))
		return fmt.Errorf("delete guest: %w", err)
	}

	s.log.Info("Guest deleted", zap.String("guest_id", guestID))
	return nil
}
