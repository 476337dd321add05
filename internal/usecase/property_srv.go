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

type PropertyService interface {
	CreateProperty(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error)
	GetPropertyByID(ctx context.Context, propertyID string) (*response.PropertyResponse, error)
	ListProperties(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error)
	UpdateProperty(ctx context.Context, propertyID string, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error)

	// Service catalog
	CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	ListServices(ctx context.Context) ([]response.ServiceResponse, error)
	AttachPropertyService(ctx context.Context, propertyID string, req *request.AttachPropertyServiceRequest) (*response.PropertyServiceResponse, error)
	ListPropertyServices(ctx context.Context, propertyID string) ([]response.PropertyServiceResponse, error)
}

type propertyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPropertyService(repo *repository.Repository, log *zap.Logger) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log.With(zap.String("service", "property")),
	}
}

func (s *propertyService) CreateProperty(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	property := &entity.Property{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Country:  req.Country,
		Phone:    req.Phone,
		Email:    req.Email,
		Currency: req.Currency,
		IsActive: true,
	}

	if err := s.repo.Property.Create(ctx, property); err != nil {
		s.log.Error("Failed to create property", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID.String()),
		zap.String("name", property.Name))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, propertyID string) (*response.PropertyResponse, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) ListProperties(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	limit := req.Size()
	offset := req.Offset()

	properties, err := s.repo.Property.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list properties", zap.Error(err))
		return nil, fmt.Errorf("list properties: %w", err)
	}

	total, err := s.repo.Property.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count properties", zap.Error(err))
		return nil, fmt.Errorf("count properties: %w", err)
	}

	propertyResponses := make([]response.PropertyResponse, len(properties))
	for i, property := range properties {
		propertyResponses[i] = response.PropertyToResponse(property)
	}

	return response.NewPaginatedResponse(propertyResponses, req.Page, limit, total), nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, propertyID string, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}

	property.Name = req.Name
	property.Address = req.Address
	property.City = req.City
	property.Country = req.Country
	property.Phone = req.Phone
	property.Email = req.Email
	property.Currency = req.Currency
	property.IsActive = req.IsActive
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.log.Error("Failed to update property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("update property: %w", err)
	}

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

// ==================== SERVICE CATALOG ====================

func (s *propertyService) CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create service: %w", err)
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *propertyService) ListServices(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}

	serviceResponses := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		serviceResponses[i] = response.ServiceToResponse(service)
	}

	return serviceResponses, nil
}

func (s *propertyService) AttachPropertyService(ctx context.Context, propertyID string, req *request.AttachPropertyServiceRequest) (*response.PropertyServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Attach property service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	propertyUUID, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	serviceUUID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", req.ServiceID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, propertyUUID)
	if err != nil || property == nil {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}

	service, err := s.repo.Service.FindByID(ctx, serviceUUID)
	if err != nil || service == nil {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	now := time.Now()
	offering := &entity.PropertyService{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID: propertyUUID,
		ServiceID:  serviceUUID,
		Price:      req.Price,
		Currency:   req.Currency,
		IsActive:   true,
	}

	if err := s.repo.PropertyService.Create(ctx, offering); err != nil {
		s.log.Error("Failed to attach service to property",
			zap.Error(err),
			zap.String("property_id", propertyID),
			zap.String("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("attach property service: %w", err)
	}

	s.log.Info("Service attached to property",
		zap.String("property_id", propertyID),
		zap.String("service_id", req.ServiceID),
		zap.Float64("price", req.Price))

	resp := response.PropertyServiceToResponse(offering)
	return &resp, nil
}

func (s *propertyService) ListPropertyServices(ctx context.Context, propertyID string) ([]response.PropertyServiceResponse, error) {
	propertyUUID, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	offerings, err := s.repo.PropertyService.FindByPropertyID(ctx, propertyUUID)
	if err != nil {
		s.log.Error("Failed to list property services", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("list property services: %w", err)
	}

	offeringResponses := make([]response.PropertyServiceResponse, len(offerings))
	for i, offering := range offerings {
		offeringResponses[i] = response.PropertyServiceToResponse(offering)
	}

	return offeringResponses, nil
}
