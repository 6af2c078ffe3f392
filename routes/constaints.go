package routes

import (
	"strconv"

	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	paramID        = "id"
	paramPaymentID = "paymentId"
	queryAmount    = "amount"

	msgMalformedBody = "Malformed JSON request"
)

// pathID reads a numeric path parameter; name is used in the error message.
func pathID(c *gin.Context, param, name string) (int64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.BadRequest("Invalid %s id: %s", name, raw)
	}
	return id, nil
}

// amountQuery reads the optional amount filter.
func amountQuery(c *gin.Context) (*decimal.Decimal, error) {
	raw, ok := c.GetQuery(queryAmount)
	if !ok || raw == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, e.BadRequest("Invalid amount: %s", raw)
	}
	return &amount, nil
}
