package models

import "time"

// CheckoutRequest initiates a Stripe checkout session for a finished plan.
type CheckoutRequest struct {
	ItineraryID string `json:"itineraryId"`
	Amount      int64  `json:"amount"`   // Smallest currency unit
	Currency    string `json:"currency"` // e.g. "eur"
	Email       string `json:"email"`
}

// CheckoutSession is the created payment session returned to the client.
type CheckoutSession struct {
	SessionID   string    `json:"sessionId"`
	URL         string    `json:"url"`
	ItineraryID string    `json:"itineraryId"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}
