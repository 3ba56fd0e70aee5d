package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every registered endpoint handler so route setup
// stays in one place.
type HandlerBundle struct {
	// Itinerary endpoints.
	BuildItinerary gin.HandlerFunc

	// Payment endpoints.
	CreateCheckout gin.HandlerFunc

	// Delivery endpoints.
	SendItinerary gin.HandlerFunc
}
