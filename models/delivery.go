package models

// DeliveryPayload is the queued request to email a finished itinerary.
type DeliveryPayload struct {
	Recipient string            `json:"recipient"`
	Document  ItineraryDocument `json:"document"`
}
