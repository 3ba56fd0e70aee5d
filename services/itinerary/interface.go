package itinerary

import (
	"context"

	"wayplan/models"
	"wayplan/services/places"
	"wayplan/services/textgen"

	"go.uber.org/zap"
)

// ItineraryService is the public boundary of the build pipeline, regardless
// of transport.
type ItineraryService interface {
	BuildItinerary(ctx context.Context, params models.FilterParams) (*models.ItineraryDocument, error)
}

// DefaultItineraryService implements ItineraryService as a strict five-stage
// pipeline: classify, optimize, plan slots, select per slot, evaluate and
// assemble. It holds no state across calls; every build allocates its own
// pool, slot list and used set.
type DefaultItineraryService struct {
	Places   places.PlaceSearch // live candidate source
	Fallback places.PlaceSearch // degraded source when the live one fails
	TextGen  textgen.TextGenerator
	Cache    PlanCache // optional; nil disables memoization
	Logger   *zap.Logger

	DefaultBudget int
	Tolerance     float64 // budget tolerance band, e.g. 0.3 for ±30%

	// Strict surfaces place-search failures as errors instead of degrading
	// to the fallback source.
	Strict bool
}

func (s *DefaultItineraryService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
