package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/usecase"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With(zap.String("handler", "property")),
	}
}

// CreateProperty handles POST /api/admin/properties (admin)
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	property, err := h.service.CreateProperty(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create property")
		return
	}

	utils.ResponseCreated(w, "success", property)
}

// GetProperty handles GET /api/properties/{id} (protected)
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	property, err := h.service.GetPropertyByID(r.Context(), propertyID)
	if err != nil {
		handleServiceError(w, h.log, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// ListProperties handles GET /api/properties (protected)
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}

	properties, err := h.service.ListProperties(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// UpdateProperty handles PUT /api/admin/properties/{id} (admin)
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	var req request.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	property, err := h.service.UpdateProperty(r.Context(), propertyID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// CreateService handles POST /api/admin/services (admin)
func (h *PropertyHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	service, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create service")
		return
	}

	utils.ResponseCreated(w, "success", service)
}

// ListServices handles GET /api/services (protected)
func (h *PropertyHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// AttachPropertyService handles POST /api/admin/properties/{id}/services (admin)
func (h *PropertyHandler) AttachPropertyService(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	var req request.AttachPropertyServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	offering, err := h.service.AttachPropertyService(r.Context(), propertyID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "attach property service")
		return
	}

	utils.ResponseCreated(w, "success", offering)
}

// ListPropertyServices handles GET /api/properties/{id}/services (protected)
func (h *PropertyHandler) ListPropertyServices(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	offerings, err := h.service.ListPropertyServices(r.Context(), propertyID)
	if err != nil {
		handleServiceError(w, h.log, err, "list property services")
		return
	}

	utils.ResponseSuccess(w, "success", offerings)
}
