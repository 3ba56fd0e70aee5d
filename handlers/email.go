package handlers

import (
	"net/http"

	"wayplan/models"
	"wayplan/services/delivery"
	"wayplan/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// EmailHandler enqueues finished plans for email delivery.
type EmailHandler struct {
	Queue  *asynq.Client
	Logger *zap.Logger
}

func NewEmailHandler(queue *asynq.Client, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{Queue: queue, Logger: logger}
}

// SendItinerary handles POST /api/itinerary/email. The send itself happens
// asynchronously in the delivery worker; the handler only validates and
// enqueues.
func (h *EmailHandler) SendItinerary(c *gin.Context) {
	var payload models.DeliveryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	task, err := delivery.NewDeliveryTask(payload)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid delivery request", err.Error())
		return
	}

	info, err := h.Queue.Enqueue(task)
	if err != nil {
		h.Logger.Error("failed to enqueue delivery", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to queue delivery", err.Error())
		return
	}

	h.Logger.Info("itinerary delivery queued",
		zap.String("recipient", payload.Recipient), zap.String("task", info.ID))
	c.JSON(http.StatusAccepted, gin.H{"taskId": info.ID})
}
