package routes

import (
	"net/http"

	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/gin-gonic/gin"
)

///---------------------------------------------------------------------------------------------------------------------Create Payment
func (h *handler) createPayment(c *gin.Context) {
	var req models.PaymentCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		e.With(e.Wrap(e.KindBadRequest, err, msgMalformedBody)).Write(c)
		return
	}

	payment, err := h.payments.Create(c.Request.Context(), &req)
	if err != nil {
		e.With(err).Write(c)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

///---------------------------------------------------------------------------------------------------------------------Cancel Payment
func (h *handler) cancelPayment(c *gin.Context) {
	id, err := pathID(c, paramID, "payment")
	if err != nil {
		e.With(err).Write(c)
		return
	}

	payment, err := h.payments.Cancel(c.Request.Context(), id)
	if err != nil {
		e.With(err).Write(c)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *handler) nonCanceledPayments(c *gin.Context) {
	amount, err := amountQuery(c)
	if err != nil {
		e.With(err).Write(c)
		return
	}

	ids, err := h.payments.NonCanceledIDs(c.Request.Context(), amount)
	if err != nil {
		e.With(err).Write(c)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *handler) cancellationInfo(c *gin.Context) {
	id, err := pathID(c, paramID, "payment")
	if err != nil {
		e.With(err).Write(c)
		return
	}

	info, err := h.payments.CancellationInfo(c.Request.Context(), id)
	if err != nil {
		e.With(err).Write(c)
		return
	}
	c.JSON(http.StatusOK, info)
}
