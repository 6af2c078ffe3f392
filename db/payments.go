package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwnGnL/paymentService/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentFilter narrows FindIDs; nil fields are ignored.
type PaymentFilter struct {
	Canceled *bool
	Amount   *decimal.Decimal
	UserID   *int64
}

// PaymentStore provides gorm-backed persistence for payments.
type PaymentStore struct {
	db *gorm.DB
}

func NewPaymentStore(gdb *gorm.DB) *PaymentStore {
	return &PaymentStore{db: gdb}
}

// FindByID fetches a payment by its identifier.
func (s *PaymentStore) FindByID(ctx context.Context, id int64) (models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, ErrNotFound
		}
		return models.Payment{}, fmt.Errorf("find payment %d: %w", id, err)
	}
	return payment, nil
}

// FindIDs returns the identifiers of the matching payments in ascending order.
func (s *PaymentStore) FindIDs(ctx context.Context, filter PaymentFilter) ([]int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Payment{})
	if filter.Canceled != nil {
		q = q.Where("canceled = ?", *filter.Canceled)
	}
	if filter.Amount != nil {
		q = q.Where("amount = ?", *filter.Amount)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}

	ids := make([]int64, 0)
	if err := q.Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("find payment ids: %w", err)
	}
	return ids, nil
}

// Create inserts the payment and fills in its identifier.
func (s *PaymentStore) Create(ctx context.Context, payment *models.Payment) error {
	if err := s.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// Update writes the mutable fields of a payment if its stored version still
// equals payment.Version, and bumps the version. A stale version yields ErrConflict.
func (s *PaymentStore) Update(ctx context.Context, payment *models.Payment) error {
	res := s.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ? AND version = ?", payment.ID, payment.Version).
		Updates(map[string]interface{}{
			"canceled":         payment.Canceled,
			"cancellation_fee": payment.CancellationFee,
			"version":          gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return fmt.Errorf("update payment %d: %w", payment.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	payment.Version++
	return nil
}

// CountActive counts payments that are not canceled.
func (s *PaymentStore) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Payment{}).Where("canceled = ?", false).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count active payments: %w", err)
	}
	return count, nil
}
