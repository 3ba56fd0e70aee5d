package handlers

import (
	"errors"
	"net/http"
	"strings"

	"wayplan/models"
	"wayplan/services/itinerary"
	"wayplan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItineraryHandler exposes the build pipeline over HTTP.
type ItineraryHandler struct {
	Service itinerary.ItineraryService
	Logger  *zap.Logger
}

func NewItineraryHandler(svc itinerary.ItineraryService, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{Service: svc, Logger: logger}
}

// BuildItinerary handles POST /api/itinerary.
func (h *ItineraryHandler) BuildItinerary(c *gin.Context) {
	var params models.FilterParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	doc, err := h.Service.BuildItinerary(c.Request.Context(), params)
	if err != nil {
		var verr *itinerary.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "missing or invalid fields",
				"fields": verr.Fields,
			})
			return
		}
		h.Logger.Error("itinerary build failed",
			zap.String("city", params.City), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to build itinerary", err.Error())
		return
	}

	h.Logger.Info("itinerary built",
		zap.String("city", params.City),
		zap.String("audience", params.Audience),
		zap.String("interests", strings.Join(params.Interests, ",")),
		zap.Int("items", len(doc.Items)),
		zap.Bool("withinBudget", doc.Budget.WithinBudget))
	c.JSON(http.StatusOK, doc)
}
