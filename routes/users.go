package routes

import (
	"net/http"

	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/gin-gonic/gin"
)

func (h *handler) createUser(c *gin.Context) {
	var req models.UserCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		e.With(e.Wrap(e.KindBadRequest, err, msgMalformedBody)).Write(c)
		return
	}

	user, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		e.With(err).Write(c)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *handler) userPayments(c *gin.Context) {
	id, err := pathID(c, paramID, "user")
	if err != nil {
		e.With(err).Write(c)
		return
	}

	ids, err := h.payments.IDsByUser(c.Request.Context(), id)
	if err != nil {
		e.With(err).Write(c)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *handler) deleteUser(c *gin.Context) {
	id, err := pathID(c, paramID, "user")
	if err != nil {
		e.With(err).Write(c)
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		e.With(err).Write(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) removeUserPayment(c *gin.Context) {
	userID, err := pathID(c, paramID, "user")
	if err != nil {
		e.With(err).Write(c)
		return
	}
	paymentID, err := pathID(c, paramPaymentID, "payment")
	if err != nil {
		e.With(err).Write(c)
		return
	}

	if err := h.users.RemovePayment(c.Request.Context(), userID, paymentID); err != nil {
		e.With(err).Write(c)
		return
	}
	c.Status(http.StatusNoContent)
}
