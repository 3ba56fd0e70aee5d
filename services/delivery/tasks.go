package delivery

import (
	"encoding/json"
	"errors"
	"strings"

	"wayplan/models"

	"github.com/hibiken/asynq"
)

const TypeSendItinerary = "itinerary:deliver"

// NewDeliveryTask wraps an email-delivery payload as an asynq task.
func NewDeliveryTask(payload models.DeliveryPayload) (*asynq.Task, error) {
	if err := ValidatePayload(payload); err != nil {
		return nil, err
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendItinerary, b), nil
}

// ValidatePayload rejects undeliverable requests before they hit the queue.
func ValidatePayload(payload models.DeliveryPayload) error {
	if payload.Recipient == "" || !strings.Contains(payload.Recipient, "@") {
		return errors.New("invalid recipient address")
	}
	if payload.Document.ID == "" {
		return errors.New("missing itinerary document")
	}
	return nil
}
