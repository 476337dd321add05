package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/usecase"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (protected)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// GetReservation handles GET /api/reservations/{id} (protected)
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), reservationID)
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// GetReservationByCode handles GET /api/reservations/code/{code} (protected)
func (h *ReservationHandler) GetReservationByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Confirmation code is required", nil)
		return
	}

	reservation, err := h.service.GetReservationByCode(r.Context(), code)
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation by code")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ListReservations handles GET /api/reservations?property_id=&guest_id=&status= (protected)
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListReservationsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:  utils.ParseInt(query.Get("page"), 1),
			Limit: utils.ParseInt(query.Get("limit"), 10),
		},
		PropertyID: query.Get("property_id"),
		GuestID:    query.Get("guest_id"),
		Status:     query.Get("status"),
	}

	reservations, err := h.service.ListReservations(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// UpdateReservation handles PUT /api/reservations/{id} (protected)
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.UpdateReservation(r.Context(), reservationID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ==================== LIFECYCLE ====================

// ConfirmReservation handles PUT /api/reservations/{id}/confirm (protected)
func (h *ReservationHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "confirm reservation", h.service.ConfirmReservation)
}

// CancelReservation handles PUT /api/reservations/{id}/cancel (protected)
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "cancel reservation", h.service.CancelReservation)
}

// MarkNoShow handles PUT /api/reservations/{id}/no-show (protected)
func (h *ReservationHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "mark no-show", h.service.MarkNoShow)
}

// CheckIn handles PUT /api/reservations/{id}/check-in (protected)
func (h *ReservationHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "check in", h.service.CheckIn)
}

// CheckOut handles PUT /api/reservations/{id}/check-out (protected)
func (h *ReservationHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "check out", h.service.CheckOut)
}

// AssignRoom handles PUT /api/reservations/{id}/assign-room (protected)
func (h *ReservationHandler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.AssignRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AssignRoom(r.Context(), reservationID, &req); err != nil {
		handleServiceError(w, h.log, err, "assign room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== SERVICE LINES ====================

// AddService handles POST /api/reservations/{id}/services (protected)
func (h *ReservationHandler) AddService(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.AddReservationServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	line, err := h.service.AddService(r.Context(), reservationID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add reservation service")
		return
	}

	utils.ResponseCreated(w, "success", line)
}

// ListServiceLines handles GET /api/reservations/{id}/services (protected)
func (h *ReservationHandler) ListServiceLines(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	lines, err := h.service.ListServiceLines(r.Context(), reservationID)
	if err != nil {
		handleServiceError(w, h.log, err, "list reservation services")
		return
	}

	utils.ResponseSuccess(w, "success", lines)
}

// transition is the shared shape of the parameterless lifecycle endpoints.
func (h *ReservationHandler) transition(w http.ResponseWriter, r *http.Request, operation string, fn func(ctx context.Context, id string) error) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := fn(r.Context(), reservationID); err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
