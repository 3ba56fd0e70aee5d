package itinerary

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wayplan/models"

	"go.uber.org/zap"
)

// validateParams checks the filter fields and normalizes the mutable ones in
// place. It reports every bad field at once rather than the first.
func (s *DefaultItineraryService) validateParams(params *models.FilterParams) error {
	var bad []string
	if params.City == "" {
		bad = append(bad, "city")
	}
	if _, err := time.Parse("2006-01-02", params.Date); err != nil {
		bad = append(bad, "date")
	}
	if len(bad) > 0 {
		return NewValidationError(bad...)
	}
	if params.Interests == nil {
		params.Interests = []string{}
	}
	if params.Budget <= 0 {
		params.Budget = s.DefaultBudget
	}
	return nil
}

// BuildItinerary runs the full pipeline for one request. After validation
// passes there is no fatal path: collaborator failures degrade to fallback
// data and exhausted slots become Free Time placeholders, so a document is
// always returned.
func (s *DefaultItineraryService) BuildItinerary(ctx context.Context, params models.FilterParams) (*models.ItineraryDocument, error) {
	if err := s.validateParams(&params); err != nil {
		return nil, err
	}

	signature := FilterSignature(params)
	if s.Cache != nil {
		if doc, err := s.Cache.Get(ctx, signature); err == nil && doc != nil {
			s.logger().Debug("serving itinerary from cache", zap.String("signature", signature))
			return doc, nil
		}
	}

	audience := models.NormalizeAudience(params.Audience)
	slots := BuildSlots(audience, params.Interests)

	pool, err := s.fetchPool(ctx, params, slots)
	if err != nil {
		return nil, err
	}
	pool = ClassifyPool(pool)
	pool = OptimizeBudget(pool, params.Budget, s.Tolerance)

	used := make(UsedPlaceSet)
	items := make([]models.SelectedItem, len(slots))
	for i, slot := range slots {
		items[i] = SelectForSlot(slot, pool, used)
	}

	budget := EvaluateBudget(items, params.Budget, s.Tolerance)
	text := s.generateText(ctx, params, items)
	doc := Assemble(params, slots, items, budget, text)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, signature, &doc); err != nil {
			s.logger().Warn("failed to cache itinerary", zap.Error(err))
		}
	}
	return &doc, nil
}

// fetchPool collects the candidate places covering the slots' categories.
// On live-search failure it degrades to the fallback source unless the
// service runs in strict mode.
func (s *DefaultItineraryService) fetchPool(ctx context.Context, params models.FilterParams, slots []models.TimeSlot) ([]models.Place, error) {
	seen := make(map[models.Category]bool)
	var categories []models.Category
	for _, slot := range slots {
		if !seen[slot.Category] {
			seen[slot.Category] = true
			categories = append(categories, slot.Category)
		}
	}

	pool, err := s.Places.Search(ctx, params.City, categories, params.Interests)
	if err == nil {
		return pool, nil
	}
	if s.Strict {
		return nil, fmt.Errorf("place search failed: %w", err)
	}
	s.logger().Warn("place search failed, degrading to seeded pool",
		zap.String("city", params.City), zap.Error(err))
	if s.Fallback == nil {
		return nil, nil
	}
	pool, err = s.Fallback.Search(ctx, params.City, categories, params.Interests)
	if err != nil {
		// Both sources down: an empty pool still yields a valid, all-placeholder plan.
		return nil, nil
	}
	return pool, nil
}

// generateText gathers all collaborator text for the document. Title,
// subtitle and weather are independent and fan out concurrently; any
// failure substitutes the deterministic template for that field only.
func (s *DefaultItineraryService) generateText(ctx context.Context, params models.FilterParams, items []models.SelectedItem) models.GeneratedText {
	text := models.GeneratedText{
		Descriptions: make([]string, len(items)),
		Tips:         make([]string, len(items)),
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		text.Title = s.titleOrFallback(ctx, params)
	}()
	go func() {
		defer wg.Done()
		text.Subtitle = s.subtitleOrFallback(ctx, params)
	}()
	go func() {
		defer wg.Done()
		text.Weather = s.weatherOrFallback(ctx, params)
	}()
	wg.Wait()

	for i, item := range items {
		text.Descriptions[i] = s.descriptionOrFallback(ctx, params, item)
		text.Tips[i] = s.tipsOrFallback(ctx, params, item)
	}
	return text
}
