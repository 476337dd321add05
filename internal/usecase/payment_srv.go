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

type PaymentService interface {
	CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	ListPaymentsByReservation(ctx context.Context, reservationID string) ([]response.PaymentResponse, error)

	CapturePayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	RefundPayment(ctx context.Context, paymentID string, req *request.RefundPaymentRequest) (*response.PaymentResponse, error)
	VoidPayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservationUUID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", req.ReservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, reservationUUID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", req.ReservationID)
	}

	switch reservation.Status {
	case entity.ReservationStatusCancelled, entity.ReservationStatusNoShow:
		return nil, fmt.Errorf("reservation %s cannot take payments in status %s", req.ReservationID, reservation.Status)
	}

	if req.Amount > reservation.Balance() {
		return nil, fmt.Errorf("payment amount %.2f exceeds outstanding balance %.2f", req.Amount, reservation.Balance())
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReservationID: reservationUUID,
		Amount:        req.Amount,
		Currency:      reservation.Currency,
		Method:        entity.PaymentMethod(req.Method),
		Status:        entity.PaymentStatusCaptured,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}

	if req.Authorized {
		// An authorization holds funds without touching the balance.
		payment.Status = entity.PaymentStatusAuthorized
	} else {
		paidAt := now
		payment.PaidAt = &paidAt
	}

	// The repository re-checks the cap against the live ledger inside the
	// insert, so a concurrent payment cannot slip past the read above.
	ok, err := s.repo.Payment.CreateCapped(ctx, payment)
	if err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("reservation_id", req.ReservationID),
			zap.Float64("amount", req.Amount),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("payment amount %.2f exceeds outstanding balance", req.Amount)
	}

	if payment.Status == entity.PaymentStatusCaptured {
		if err := s.applyPaymentTotals(ctx, reservationUUID); err != nil {
			return nil, err
		}
	}

	s.log.Info("Payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("reservation_id", req.ReservationID),
		zap.String("status", string(payment.Status)),
		zap.Float64("amount", req.Amount))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	payment, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ListPaymentsByReservation(ctx context.Context, reservationID string) ([]response.PaymentResponse, error) {
	reservationUUID, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	payments, err := s.repo.Payment.FindByReservationID(ctx, reservationUUID)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err), zap.String("reservation_id", reservationID))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return paymentResponses, nil
}

func (s *paymentService) CapturePayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	payment, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Payment.MarkCaptured(ctx, payment.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("capture payment: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("payment %s cannot be captured from status %s", paymentID, payment.Status)
	}

	if err := s.applyPaymentTotals(ctx, payment.ReservationID); err != nil {
		return nil, err
	}

	s.log.Info("Payment captured",
		zap.String("payment_id", paymentID),
		zap.Float64("amount", payment.Amount))

	return s.reload(ctx, payment.ID)
}

func (s *paymentService) RefundPayment(ctx context.Context, paymentID string, req *request.RefundPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Refund payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	payment, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Amount > payment.Amount {
		return nil, fmt.Errorf("refund amount %.2f exceeds captured amount %.2f", req.Amount, payment.Amount)
	}

	ok, err := s.repo.Payment.MarkRefunded(ctx, payment.ID, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("refund payment: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("payment %s cannot be refunded from status %s", paymentID, payment.Status)
	}

	if err := s.applyPaymentTotals(ctx, payment.ReservationID); err != nil {
		return nil, err
	}

	s.log.Info("Payment refunded",
		zap.String("payment_id", paymentID),
		zap.Float64("refund_amount", req.Amount))

	return s.reload(ctx, payment.ID)
}

func (s *paymentService) VoidPayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	payment, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Payment.MarkVoided(ctx, payment.ID)
	if err != nil {
		return nil, fmt.Errorf("void payment: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("payment %s cannot be voided from status %s", paymentID, payment.Status)
	}

	s.log.Info("Payment voided", zap.String("payment_id", paymentID))

	return s.reload(ctx, payment.ID)
}

// ==================== HELPER METHODS ====================

func (s *paymentService) findPayment(ctx context.Context, paymentID string) (*entity.Payment, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}

	return payment, nil
}

func (s *paymentService) reload(ctx context.Context, paymentID uuid.UUID) (*response.PaymentResponse, error) {
	payment, err := s.repo.Payment.FindByID(ctx, paymentID)
	if err != nil || payment == nil {
		return nil, fmt.Errorf("reload payment %s: %w", paymentID.String(), err)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// applyPaymentTotals recomputes amount_paid and the rollup payment state from
// the payment ledger, so the reservation never drifts from its payments.
func (s *paymentService) applyPaymentTotals(ctx context.Context, reservationID uuid.UUID) error {
	reservation, err := s.repo.Reservation.FindByID(ctx, reservationID)
	if err != nil || reservation == nil {
		return fmt.Errorf("reload reservation %s: %w", reservationID.String(), err)
	}

	payments, err := s.repo.Payment.FindByReservationID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}

	var amountPaid float64
	var refunded bool
	for _, payment := range payments {
		switch payment.Status {
		case entity.PaymentStatusCaptured:
			amountPaid += payment.Amount
		case entity.PaymentStatusRefunded:
			amountPaid += payment.Amount - payment.RefundedAmount
			refunded = true
		}
	}

	state := entity.PaymentStateUnpaid
	switch {
	case amountPaid >= reservation.TotalAmount && reservation.TotalAmount > 0:
		state = entity.PaymentStatePaid
	case amountPaid > 0:
		state = entity.PaymentStatePartial
	case refunded:
		state = entity.PaymentStateRefunded
	}

	if err := s.repo.Reservation.UpdatePaymentTotals(ctx, reservationID, amountPaid, state); err != nil {
		return fmt.Errorf("update payment totals: %w", err)
	}

	return nil
}
