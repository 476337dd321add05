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

type RateHandler struct {
	service usecase.RateService
	log     *zap.Logger
}

func NewRateHandler(service usecase.RateService, log *zap.Logger) *RateHandler {
	return &RateHandler{
		service: service,
		log:     log.With(zap.String("handler", "rate")),
	}
}

// CreateRatePlan handles POST /api/admin/rate-plans (admin)
func (h *RateHandler) CreateRatePlan(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	plan, err := h.service.CreateRatePlan(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create rate plan")
		return
	}

	utils.ResponseCreated(w, "success", plan)
}

// GetRatePlan handles GET /api/rate-plans/{id} (protected)
func (h *RateHandler) GetRatePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Rate plan ID is required", nil)
		return
	}

	plan, err := h.service.GetRatePlanByID(r.Context(), planID)
	if err != nil {
		handleServiceError(w, h.log, err, "get rate plan")
		return
	}

	utils.ResponseSuccess(w, "success", plan)
}

// ListRatePlans handles GET /api/properties/{id}/rate-plans (protected)
func (h *RateHandler) ListRatePlans(w http.ResponseWriter, r *http.Request) {
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

	plans, err := h.service.ListRatePlans(r.Context(), propertyID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list rate plans")
		return
	}

	utils.ResponseSuccess(w, "success", plans)
}

// UpdateRatePlan handles PUT /api/admin/rate-plans/{id} (admin)
func (h *RateHandler) UpdateRatePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Rate plan ID is required", nil)
		return
	}

	var req request.UpdateRatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	plan, err := h.service.UpdateRatePlan(r.Context(), planID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update rate plan")
		return
	}

	utils.ResponseSuccess(w, "success", plan)
}

// DeleteRatePlan handles DELETE /api/admin/rate-plans/{id} (admin)
func (h *RateHandler) DeleteRatePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Rate plan ID is required", nil)
		return
	}

	if err := h.service.DeleteRatePlan(r.Context(), planID); err != nil {
		handleServiceError(w, h.log, err, "delete rate plan")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateDailyRate handles POST /api/admin/daily-rates (admin)
func (h *RateHandler) CreateDailyRate(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDailyRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rate, err := h.service.CreateDailyRate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create daily rate")
		return
	}

	utils.ResponseCreated(w, "success", rate)
}

// UpdateDailyRate handles PUT /api/admin/daily-rates/{id} (admin)
func (h *RateHandler) UpdateDailyRate(w http.ResponseWriter, r *http.Request) {
	rateID := chi.URLParam(r, "id")
	if rateID == "" {
		utils.ResponseBadRequest(w, "Daily rate ID is required", nil)
		return
	}

	var req request.UpdateDailyRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rate, err := h.service.UpdateDailyRate(r.Context(), rateID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update daily rate")
		return
	}

	utils.ResponseSuccess(w, "success", rate)
}

// DeleteDailyRate handles DELETE /api/admin/daily-rates/{id} (admin)
func (h *RateHandler) DeleteDailyRate(w http.ResponseWriter, r *http.Request) {
	rateID := chi.URLParam(r, "id")
	if rateID == "" {
		utils.ResponseBadRequest(w, "Daily rate ID is required", nil)
		return
	}

	if err := h.service.DeleteDailyRate(r.Context(), rateID); err != nil {
		handleServiceError(w, h.log, err, "delete daily rate")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListDailyRates handles GET /api/rate-plans/{id}/daily-rates?from=&to= (protected)
func (h *RateHandler) ListDailyRates(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Rate plan ID is required", nil)
		return
	}

	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		utils.ResponseBadRequest(w, "from and to dates are required", nil)
		return
	}

	rates, err := h.service.ListDailyRates(r.Context(), planID, from, to)
	if err != nil {
		handleServiceError(w, h.log, err, "list daily rates")
		return
	}

	utils.ResponseSuccess(w, "success", rates)
}

// BulkUpsertDailyRates handles POST /api/admin/daily-rates/bulk (admin)
func (h *RateHandler) BulkUpsertDailyRates(w http.ResponseWriter, r *http.Request) {
	var req request.BulkDailyRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rates, err := h.service.BulkUpsertDailyRates(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "bulk upsert daily rates")
		return
	}

	utils.ResponseSuccess(w, "success", rates)
}

// Quote handles GET /api/rate-plans/{id}/quote?check_in=&check_out= (protected)
func (h *RateHandler) Quote(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Rate plan ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.QuoteRequest{
		CheckInDate:  query.Get("check_in"),
		CheckOutDate: query.Get("check_out"),
	}

	quote, err := h.service.Quote(r.Context(), planID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "quote stay")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}
