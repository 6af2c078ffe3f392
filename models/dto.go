package models

import "github.com/shopspring/decimal"

// PaymentCreationRequest is the body of POST /api/payments.
type PaymentCreationRequest struct {
	PaymentType     PaymentType      `json:"paymentType" validate:"required"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
	Currency        string           `json:"currency" validate:"required"`
	DebtorIban      string           `json:"debtorIban" validate:"notblank,max=34"`
	CreditorIban    string           `json:"creditorIban" validate:"notblank,max=34"`
	Details         string           `json:"details"`
	CreditorBankBic string           `json:"creditorBankBic" validate:"max=11"`
	UserID          *int64           `json:"userId"`
}

type UserCreationRequest struct {
	Username string `json:"username" validate:"notblank"`
}

type PaymentCancellationResponse struct {
	ID              int64           `json:"id"`
	CancellationFee decimal.Decimal `json:"cancellationFee"`
}
