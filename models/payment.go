package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts and fees go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type PaymentType string

const (
	Type1 PaymentType = "TYPE1"
	Type2 PaymentType = "TYPE2"
	Type3 PaymentType = "TYPE3"
)

type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// Currencies lists every accepted currency code.
var Currencies = []Currency{EUR, USD}

///---------------------------------------------------------PAYMENTS------------------------------------------------------------------------------
type Payment struct {
	ID              int64           `json:"id" gorm:"column:id;primary_key;autoIncrement"`
	Version         int64           `json:"-" gorm:"column:version;not null;default:0"`
	PaymentType     PaymentType     `json:"paymentType" gorm:"column:payment_type;type:varchar(10);not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(19,2);not null;index"`
	Currency        Currency        `json:"currency" gorm:"column:currency;type:varchar(3);not null"`
	DebtorIban      string          `json:"debtorIban" gorm:"column:debtor_iban;type:varchar(34);not null"`
	CreditorIban    string          `json:"creditorIban" gorm:"column:creditor_iban;type:varchar(34);not null"`
	Details         string          `json:"details,omitempty" gorm:"column:details"`
	CreditorBankBic string          `json:"creditorBankBic,omitempty" gorm:"column:creditor_bank_bic;type:varchar(11)"`
	CreatedAt       time.Time       `json:"createdAt" gorm:"column:created_at;not null"`
	Canceled        bool            `json:"canceled" gorm:"column:canceled;not null;default:false;index"`
	CancellationFee decimal.Decimal `json:"cancellationFee" gorm:"column:cancellation_fee;type:numeric(19,2);not null"`
	UserID          *int64          `json:"userId,omitempty" gorm:"column:user_id;index"`
}

func (Payment) TableName() string {
	return "payments"
}
