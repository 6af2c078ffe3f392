// Package validation checks payment creation requests: structural field
// constraints first, then the rule registered for the declared payment type.
package validation

import (
	"strings"

	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/dwnGnL/paymentService/pkg/utils"
)

// Rule inspects a request whose currency has already been parsed and fails on the first violation.
type Rule func(req *models.PaymentCreationRequest, currency models.Currency) error

// rules is built once and only read afterwards.
var rules = map[models.PaymentType]Rule{
	models.Type1: type1Rule,
	models.Type2: type2Rule,
	models.Type3: type3Rule,
}

func type1Rule(req *models.PaymentCreationRequest, currency models.Currency) error {
	if currency != models.EUR {
		return e.BadRequest("Currency must be EUR for payment type TYPE1")
	}
	if utils.IsBlank(req.Details) {
		return e.BadRequest("Details are required for payment type TYPE1")
	}
	return nil
}

func type2Rule(_ *models.PaymentCreationRequest, currency models.Currency) error {
	if currency != models.USD {
		return e.BadRequest("Currency must be USD for payment TYPE2")
	}
	return nil
}

func type3Rule(req *models.PaymentCreationRequest, _ models.Currency) error {
	if utils.IsBlank(req.CreditorIban) {
		return e.BadRequest("Creditor IBAN is required for TYPE3 payment")
	}
	if utils.IsBlank(req.CreditorBankBic) {
		return e.BadRequest("Creditor bank BIC required for TYPE3 payment")
	}
	return nil
}

// ParseCurrency accepts any casing of a known currency code.
func ParseCurrency(code string) (models.Currency, error) {
	normalized := models.Currency(strings.ToUpper(strings.TrimSpace(code)))
	for _, c := range models.Currencies {
		if c == normalized {
			return c, nil
		}
	}
	return "", e.BadRequest("Invalid currency: %s", code)
}

// Supported reports whether a rule exists for the payment type.
func Supported(t models.PaymentType) bool {
	_, ok := rules[t]
	return ok
}

// Validate applies the rule for req.PaymentType and returns the parsed currency.
func Validate(req *models.PaymentCreationRequest) (models.Currency, error) {
	currency, err := ParseCurrency(req.Currency)
	if err != nil {
		return "", err
	}
	rule, ok := rules[req.PaymentType]
	if !ok {
		return "", e.BadRequest("Invalid payment type")
	}
	if err := rule(req, currency); err != nil {
		return "", err
	}
	return currency, nil
}
