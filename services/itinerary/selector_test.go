package itinerary

import (
	"fmt"
	"testing"

	"wayplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cafeSlot() models.TimeSlot {
	return models.TimeSlot{Time: "08:30", Category: models.CategoryCafe, Label: "Morning Coffee"}
}

func TestSelectForSlotPicksHighestScore(t *testing.T) {
	pool := []models.Place{
		{ID: "low", Category: models.CategoryCafe, Rating: 3.0, ReviewCount: 100},
		{ID: "high", Category: models.CategoryCafe, Rating: 4.8, ReviewCount: 2000, OpenNow: true},
		{ID: "mid", Category: models.CategoryCafe, Rating: 4.2, ReviewCount: 500},
	}

	item := SelectForSlot(cafeSlot(), pool, make(UsedPlaceSet))
	assert.Equal(t, "high", item.PlaceID)
	assert.False(t, item.Placeholder)
}

func TestSelectForSlotTiesResolveToFirstSeen(t *testing.T) {
	pool := []models.Place{
		{ID: "first", Category: models.CategoryCafe, Rating: 4.0, ReviewCount: 100},
		{ID: "second", Category: models.CategoryCafe, Rating: 4.0, ReviewCount: 100},
	}

	item := SelectForSlot(cafeSlot(), pool, make(UsedPlaceSet))
	assert.Equal(t, "first", item.PlaceID)
}

func TestSelectForSlotSkipsUsedPlaces(t *testing.T) {
	pool := []models.Place{
		{ID: "best", Category: models.CategoryCafe, Rating: 5.0},
		{ID: "backup", Category: models.CategoryCafe, Rating: 3.0},
	}

	used := make(UsedPlaceSet)
	first := SelectForSlot(cafeSlot(), pool, used)
	second := SelectForSlot(cafeSlot(), pool, used)

	assert.Equal(t, "best", first.PlaceID)
	assert.Equal(t, "backup", second.PlaceID)
	assert.True(t, used["best"])
	assert.True(t, used["backup"])
}

func TestSelectForSlotMuseumFallsBackToAttraction(t *testing.T) {
	pool := []models.Place{
		{ID: "sight", Category: models.CategoryAttraction, Rating: 4.5},
		{ID: "green", Category: models.CategoryPark, Rating: 4.9},
	}
	slot := models.TimeSlot{Time: "10:00", Category: models.CategoryMuseum, Label: "Museum Visit"}

	item := SelectForSlot(slot, pool, make(UsedPlaceSet))
	// Attraction is the first entry in the museum fallback chain, so the
	// higher-rated park must not win.
	assert.Equal(t, models.CategoryAttraction, item.Category)
	assert.Equal(t, "sight", item.PlaceID)
}

func TestSelectForSlotExhaustionYieldsFreeTime(t *testing.T) {
	used := make(UsedPlaceSet)
	item := SelectForSlot(cafeSlot(), nil, used)

	assert.True(t, item.Placeholder)
	assert.Equal(t, "Free Time", item.Title)
	assert.Zero(t, item.EstimatedCost)
	assert.Empty(t, used, "placeholder must not mark anything used")
}

func TestSelectForSlotNeverRepeatsAcrossFallbacks(t *testing.T) {
	// One attraction serving both a museum slot (via fallback) and an
	// attraction slot: the second request must get the placeholder.
	pool := []models.Place{
		{ID: "only", Category: models.CategoryAttraction, Rating: 4.0},
	}
	used := make(UsedPlaceSet)

	museum := models.TimeSlot{Time: "10:00", Category: models.CategoryMuseum}
	attraction := models.TimeSlot{Time: "15:00", Category: models.CategoryAttraction}

	first := SelectForSlot(museum, pool, used)
	second := SelectForSlot(attraction, pool, used)

	require.Equal(t, "only", first.PlaceID)
	assert.True(t, second.Placeholder)
}

func TestSelectForSlotManySlotsUniquePlaceIDs(t *testing.T) {
	var pool []models.Place
	for i := 0; i < 5; i++ {
		pool = append(pool, models.Place{
			ID:       fmt.Sprintf("cafe-%d", i),
			Category: models.CategoryCafe,
			Rating:   4.0,
		})
	}

	used := make(UsedPlaceSet)
	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		item := SelectForSlot(cafeSlot(), pool, used)
		if item.Placeholder {
			continue
		}
		assert.False(t, seen[item.PlaceID], "place %s selected twice", item.PlaceID)
		seen[item.PlaceID] = true
	}
}
