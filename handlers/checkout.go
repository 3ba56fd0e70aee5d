package handlers

import (
	"net/http"

	"wayplan/models"
	"wayplan/services/payment"
	"wayplan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler starts a payment for a finished plan.
type CheckoutHandler struct {
	Service payment.CheckoutService
	Logger  *zap.Logger
}

func NewCheckoutHandler(svc payment.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Service: svc, Logger: logger}
}

// CreateCheckout handles POST /api/checkout.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := payment.ValidateCheckoutRequest(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkout request", err.Error())
		return
	}

	sess, err := h.Service.CreateCheckoutSession(req)
	if err != nil {
		h.Logger.Error("checkout creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to create checkout session", err.Error())
		return
	}

	c.JSON(http.StatusOK, sess)
}
