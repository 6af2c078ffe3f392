package service

import (
	"context"
	"errors"
	"time"

	"github.com/dwnGnL/paymentService/db"
	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/dwnGnL/paymentService/pkg/fee"
	"github.com/dwnGnL/paymentService/pkg/metrics"
	"github.com/dwnGnL/paymentService/pkg/utils"
	"github.com/dwnGnL/paymentService/pkg/validation"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type PaymentService struct {
	payments PaymentRepository
	users    UserRepository
	now      func() time.Time
	loc      *time.Location
}

func NewPaymentService(payments PaymentRepository, users UserRepository, opts ...Option) *PaymentService {
	s := &PaymentService{
		payments: payments,
		users:    users,
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the request, resolves the owner and stores a new payment.
func (s *PaymentService) Create(ctx context.Context, req *models.PaymentCreationRequest) (models.Payment, error) {
	if err := validation.Struct(req); err != nil {
		return models.Payment{}, err
	}
	currency, err := validation.Validate(req)
	if err != nil {
		return models.Payment{}, err
	}

	if req.UserID != nil {
		if _, err := s.users.FindByID(ctx, *req.UserID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return models.Payment{}, e.NotFound("User not found for ID: %d", *req.UserID)
			}
			return models.Payment{}, err
		}
	}

	debtorIban := utils.NormalizeIban(req.DebtorIban)
	if !utils.ValidIban(debtorIban) {
		return models.Payment{}, e.BadRequest("Debtor IBAN has invalid format")
	}
	creditorIban := utils.NormalizeIban(req.CreditorIban)
	if !utils.ValidIban(creditorIban) {
		return models.Payment{}, e.BadRequest("Creditor IBAN has invalid format")
	}

	payment := models.Payment{
		PaymentType:     req.PaymentType,
		Amount:          *req.Amount,
		Currency:        currency,
		DebtorIban:      debtorIban,
		CreditorIban:    creditorIban,
		Details:         req.Details,
		CreditorBankBic: req.CreditorBankBic,
		CreatedAt:       s.now().Truncate(time.Microsecond),
		Canceled:        false,
		CancellationFee: decimal.Zero,
		UserID:          req.UserID,
	}
	if err := s.payments.Create(ctx, &payment); err != nil {
		return models.Payment{}, err
	}

	metrics.PaymentCreated(payment)
	log.WithFields(log.Fields{"payment_id": payment.ID, "type": payment.PaymentType}).Info("payment created")
	return payment, nil
}

// Cancel marks a same-day payment canceled and charges the cancellation fee.
// The fee is fixed on the first successful cancel; later attempts fail.
func (s *PaymentService) Cancel(ctx context.Context, id int64) (models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Payment{}, e.NotFound("Payment not found for ID: %d", id)
		}
		return models.Payment{}, err
	}

	if payment.Canceled {
		return models.Payment{}, e.Conflict("Payment is already canceled")
	}
	if !sameDay(payment.CreatedAt.In(s.loc), s.now().In(s.loc)) {
		return models.Payment{}, e.IllegalState("Payment can only be canceled on the same day it was created")
	}

	payment.CancellationFee = fee.Cancellation(payment.PaymentType, payment.CreatedAt, s.loc)
	payment.Canceled = true

	if err := s.payments.Update(ctx, &payment); err != nil {
		if errors.Is(err, db.ErrConflict) {
			return models.Payment{}, e.Wrap(e.KindConflict, err, "Payment was modified concurrently")
		}
		return models.Payment{}, err
	}

	metrics.PaymentCanceled(payment)
	log.WithFields(log.Fields{"payment_id": payment.ID, "fee": payment.CancellationFee.String()}).Info("payment canceled")
	return payment, nil
}

// NonCanceledIDs lists ids of payments that are still active, optionally with exactly the given amount.
func (s *PaymentService) NonCanceledIDs(ctx context.Context, amount *decimal.Decimal) ([]int64, error) {
	active := false
	ids, err := s.payments.FindIDs(ctx, db.PaymentFilter{Canceled: &active, Amount: amount})
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, e.NotFound("No non-canceled payments found")
	}
	return ids, nil
}

func (s *PaymentService) CancellationInfo(ctx context.Context, id int64) (models.PaymentCancellationResponse, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.PaymentCancellationResponse{}, e.NotFound("Payment not found")
		}
		return models.PaymentCancellationResponse{}, err
	}
	return models.PaymentCancellationResponse{ID: payment.ID, CancellationFee: payment.CancellationFee}, nil
}

// IDsByUser lists ids of every payment owned by the user.
func (s *PaymentService) IDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.payments.FindIDs(ctx, db.PaymentFilter{UserID: &userID})
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, e.NotFound("No payments found for user: %d", userID)
	}
	return ids, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
