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

type GuestHandler struct {
	service usecase.GuestService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// CreateGuest handles POST /api/guests (protected)
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guest, err := h.service.CreateGuest(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create guest")
		return
	}

	utils.ResponseCreated(w, "success", guest)
}

// GetGuest handles GET /api/guests/{id} (protected)
func (h *GuestHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	guest, err := h.service.GetGuestByID(r.Context(), guestID)
	if err != nil {
		handleServiceError(w, h.log, err, "get guest")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// ListGuests handles GET /api/guests?search=&page=&limit= (protected)
func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}

	guests, err := h.service.ListGuests(r.Context(), query.Get("search"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list guests")
		return
	}

	utils.ResponseSuccess(w, "success", guests)
}

// UpdateGuest handles PUT /api/guests/{id} (protected)
func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	var req request.UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guest, err := h.service.UpdateGuest(r.Context(), guestID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update guest")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// DeleteGuest handles DELETE /api/guests/{id} (admin)
func (h *GuestHandler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	if err := h.service.DeleteGuest(r.Context(), guestID); err != nil {
		handleServiceError(w, h.log, err, "delete guest")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
