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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// CreateRoomType handles POST /api/admin/room-types (admin)
func (h *RoomHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	roomType, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "success", roomType)
}

// GetRoomType handles GET /api/room-types/{id} (protected)
func (h *RoomHandler) GetRoomType(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	roomType, err := h.service.GetRoomTypeByID(r.Context(), roomTypeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get room type")
		return
	}

	utils.ResponseSuccess(w, "success", roomType)
}

// ListRoomTypes handles GET /api/properties/{id}/room-types (protected)
func (h *RoomHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	roomTypes, err := h.service.ListRoomTypes(r.Context(), propertyID)
	if err != nil {
		handleServiceError(w, h.log, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "success", roomTypes)
}

// CreateRoom handles POST /api/admin/rooms (admin)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// GetRoom handles GET /api/rooms/{id} (protected)
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		handleServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// ListRooms handles GET /api/properties/{id}/rooms (protected)
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
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

	rooms, err := h.service.ListRooms(r.Context(), propertyID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// ListAvailableRooms handles GET /api/properties/{id}/rooms/available (protected)
// Query: room_type_id, check_in, check_out
func (h *RoomHandler) ListAvailableRooms(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	query := r.URL.Query()
	roomTypeID := query.Get("room_type_id")
	checkIn := query.Get("check_in")
	checkOut := query.Get("check_out")
	if roomTypeID == "" || checkIn == "" || checkOut == "" {
		utils.ResponseBadRequest(w, "room_type_id, check_in and check_out are required", nil)
		return
	}

	rooms, err := h.service.ListAvailableRooms(r.Context(), propertyID, roomTypeID, checkIn, checkOut)
	if err != nil {
		handleServiceError(w, h.log, err, "list available rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// UpdateRoom handles PUT /api/admin/rooms/{id} (admin)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// UpdateHousekeeping handles PUT /api/rooms/{id}/housekeeping (protected)
func (h *RoomHandler) UpdateHousekeeping(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.UpdateHousekeepingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateHousekeeping(r.Context(), roomID, &req); err != nil {
		handleServiceError(w, h.log, err, "update housekeeping")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (admin)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
