// Package fee computes cancellation fees.
package fee

import (
	"time"

	"github.com/dwnGnL/paymentService/models"
	"github.com/shopspring/decimal"
)

var coefficients = map[models.PaymentType]decimal.Decimal{
	models.Type1: decimal.RequireFromString("0.05"),
	models.Type2: decimal.RequireFromString("0.10"),
	models.Type3: decimal.RequireFromString("0.15"),
}

// Coefficient returns the per-type multiplier and false for unknown types.
func Coefficient(t models.PaymentType) (decimal.Decimal, bool) {
	k, ok := coefficients[t]
	return k, ok
}

// Cancellation returns hour-of-creation x type coefficient, evaluated in loc.
// Unknown types cost nothing.
func Cancellation(t models.PaymentType, createdAt time.Time, loc *time.Location) decimal.Decimal {
	k, ok := coefficients[t]
	if !ok {
		return decimal.Zero
	}
	if loc != nil {
		createdAt = createdAt.In(loc)
	}
	return decimal.NewFromInt(int64(createdAt.Hour())).Mul(k)
}
