// Package service holds the payment and user flows between the HTTP layer
// and the stores.
package service

import (
	"context"
	"time"

	"github.com/dwnGnL/paymentService/db"
	"github.com/dwnGnL/paymentService/models"
)

// PaymentRepository is the persistence PaymentService depends on.
type PaymentRepository interface {
	FindByID(ctx context.Context, id int64) (models.Payment, error)
	FindIDs(ctx context.Context, filter db.PaymentFilter) ([]int64, error)
	Create(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, payment *models.Payment) error
}

// UserRepository is the persistence UserService depends on.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (models.TUser, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *models.TUser) error
	Delete(ctx context.Context, id int64) error
	RemovePayment(ctx context.Context, userID, paymentID int64) error
}

var (
	_ PaymentRepository = (*db.PaymentStore)(nil)
	_ UserRepository    = (*db.UserStore)(nil)
)

type Option func(*PaymentService)

// WithClock replaces time.Now as the source of creation and cancellation times.
func WithClock(now func() time.Time) Option {
	return func(s *PaymentService) {
		s.now = now
	}
}

// WithLocation sets the zone in which "same day" and the creation hour are judged.
func WithLocation(loc *time.Location) Option {
	return func(s *PaymentService) {
		if loc != nil {
			s.loc = loc
		}
	}
}
