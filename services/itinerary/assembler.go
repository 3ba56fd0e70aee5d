package itinerary

import (
	"time"

	"wayplan/models"

	"github.com/google/uuid"
)

// Assemble zips the slot list with the selected items (1:1 by construction)
// and merges in the generated text to produce the final document. No
// algorithmic logic beyond the structural merge.
func Assemble(params models.FilterParams, slots []models.TimeSlot, items []models.SelectedItem, budget models.BudgetState, text models.GeneratedText) models.ItineraryDocument {
	docItems := make([]models.ItineraryItem, len(slots))
	for i, slot := range slots {
		item := items[i]
		docItem := models.ItineraryItem{
			Time:          slot.Time,
			Label:         slot.Label,
			Title:         item.Title,
			Category:      item.Category,
			Address:       item.Address,
			Rating:        item.Rating,
			ReviewCount:   item.ReviewCount,
			EstimatedCost: item.EstimatedCost,
			Placeholder:   item.Placeholder,
			Coordinates:   item.Coordinates,
		}
		if i < len(text.Descriptions) {
			docItem.Description = text.Descriptions[i]
		}
		if i < len(text.Tips) {
			docItem.Tips = text.Tips[i]
		}
		docItems[i] = docItem
	}

	return models.ItineraryDocument{
		ID:          uuid.New().String(),
		City:        params.City,
		Date:        params.Date,
		Audience:    models.NormalizeAudience(params.Audience),
		Interests:   params.Interests,
		Title:       text.Title,
		Subtitle:    text.Subtitle,
		Weather:     text.Weather,
		Items:       docItems,
		Budget:      budget,
		GeneratedAt: time.Now().UTC(),
	}
}
