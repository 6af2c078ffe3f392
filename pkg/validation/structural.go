package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/go-playground/validator"
	"github.com/iancoleman/strcase"
	"github.com/shopspring/decimal"
)

var minAmount = decimal.RequireFromString("0.01")

// keyed by struct field and failed tag
var messages = map[string]string{
	"PaymentType.required":  "Payment type is required",
	"Amount.required":       "Amount is required",
	"Amount.dmin":           "Amount must be greater than 0",
	"Currency.required":     "Currency is required",
	"DebtorIban.notblank":   "Debtor IBAN is required",
	"DebtorIban.max":        "Debtor IBAN must be at most 34 characters",
	"CreditorIban.notblank": "Creditor IBAN is required",
	"CreditorIban.max":      "Creditor IBAN must be at most 34 characters",
	"CreditorBankBic.max":   "Creditor bank BIC must be at most 11 characters",
	"Username.notblank":     "Username is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(paymentAmount, models.PaymentCreationRequest{})
	return v
}

func paymentAmount(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.PaymentCreationRequest)
	if req.Amount != nil && req.Amount.LessThan(minAmount) {
		sl.ReportError(req.Amount, "amount", "Amount", "dmin", minAmount.String())
	}
}

// Struct runs the field constraints declared in validate tags and reports
// every violation at once as a validation error.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	violations := make([]e.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, e.Violation{
			Field:   strcase.ToLowerCamel(fe.StructField()),
			Message: message(fe),
		})
	}
	return e.Validation(violations)
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed on %s=%s", strcase.ToLowerCamel(fe.StructField()), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed on %s", strcase.ToLowerCamel(fe.StructField()), fe.Tag())
}
