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

type RestaurantHandler struct {
	service usecase.RestaurantService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		log:     log.With(zap.String("handler", "restaurant")),
	}
}

// CreateRestaurant handles POST /api/admin/restaurants (admin)
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	restaurant, err := h.service.CreateRestaurant(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create restaurant")
		return
	}

	utils.ResponseCreated(w, "success", restaurant)
}

// GetRestaurant handles GET /api/restaurants/{id} (protected)
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	restaurant, err := h.service.GetRestaurantByID(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// ListRestaurants handles GET /api/properties/{id}/restaurants (protected)
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}

	restaurants, err := h.service.ListRestaurants(r.Context(), propertyID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// UpdateRestaurant handles PUT /api/admin/restaurants/{id} (admin)
func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	var req request.UpdateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	restaurant, err := h.service.UpdateRestaurant(r.Context(), restaurantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// DeleteRestaurant handles DELETE /api/admin/restaurants/{id} (admin)
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	if err := h.service.DeleteRestaurant(r.Context(), restaurantID); err != nil {
		handleServiceError(w, h.log, err, "delete restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== TABLES ====================

// CreateTable handles POST /api/admin/restaurants/{id}/tables (admin)
func (h *RestaurantHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	var req request.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	table, err := h.service.CreateTable(r.Context(), restaurantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create table")
		return
	}

	utils.ResponseCreated(w, "success", table)
}

// ListTables handles GET /api/restaurants/{id}/tables (protected)
func (h *RestaurantHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	tables, err := h.service.ListTables(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "list tables")
		return
	}

	utils.ResponseSuccess(w, "success", tables)
}

// ListAvailableTables handles GET /api/restaurants/{id}/tables/available (protected)
/// Query: booking_time (RFC3339), duration_minutes, party_size
func (h *RestaurantHandler) ListAvailableTables(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	query := r.URL.Query()
	bookingTime := query.Get("booking_time")
	if bookingTime == "" {
		utils.ResponseBadRequest(w, "booking_time is required", nil)
		return
	}

	duration := utils.ParseInt(query.Get("duration_minutes"), 0)
	partySize := utils.ParseInt(query.Get("party_size"), 1)

	tables, err := h.service.ListAvailableTables(r.Context(), restaurantID, bookingTime, duration, partySize)
	if err != nil {
		handleServiceError(w, h.log, err, "list available tables")
		return
	}

	utils.ResponseSuccess(w, "success", tables)
}

// UpdateTable handles PUT /api/admin/tables/{id} (admin)
func (h *RestaurantHandler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "id")
	if tableID == "" {
		utils.ResponseBadRequest(w, "Table ID is required", nil)
		return
	}

	var req request.UpdateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	table, err := h.service.UpdateTable(r.Context(), tableID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update table")
		return
	}

	utils.ResponseSuccess(w, "success", table)
}

// DeleteTable handles DELETE /api/admin/tables/{id} (admin)
func (h *RestaurantHandler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "id")
	if tableID == "" {
		utils.ResponseBadRequest(w, "Table ID is required", nil)
		return
	}

	if err := h.service.DeleteTable(r.Context(), tableID); err != nil {
		handleServiceError(w, h.log, err, "delete table")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== BOOKINGS ====================

// CreateBooking handles POST /api/table-bookings (protected)
func (h *RestaurantHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTableBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create table booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBooking handles GET /api/table-bookings/{id} (protected)
func (h *RestaurantHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get table booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListBookings handles GET /api/table-bookings?restaurant_id=&guest_id=&status=&date= (protected)
func (h *RestaurantHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}

	bookings, err := h.service.ListBookings(r.Context(),
		query.Get("restaurant_id"),
		query.Get("guest_id"),
		query.Get("status"),
		query.Get("date"),
		req)
	if err != nil {
		handleServiceError(w, h.log, err, "list table bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ConfirmBooking handles PUT /api/table-bookings/{id}/confirm (protected)
func (h *RestaurantHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "confirm table booking", h.service.ConfirmBooking)
}

// CompleteBooking handles PUT /api/table-bookings/{id}/complete (protected)
func (h *RestaurantHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "complete table booking", h.service.CompleteBooking)
}

// CancelBooking handles PUT /api/table-bookings/{id}/cancel (protected)
func (h *RestaurantHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "cancel table booking", h.service.CancelBooking)
}

// MarkBookingNoShow handles PUT /api/table-bookings/{id}/no-show (protected)
func (h *RestaurantHandler) MarkBookingNoShow(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "mark table booking no-show", h.service.MarkBookingNoShow)
}

// SeatBooking handles PUT /api/table-bookings/{id}/seat (protected)
func (h *RestaurantHandler) SeatBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.SeatBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SeatBooking(r.Context(), bookingID, &req); err != nil {
		handleServiceError(w, h.log, err, "seat table booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *RestaurantHandler) transition(w http.ResponseWriter, r *http.Request, operation string, fn func(ctx context.Context, id string) error) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := fn(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
