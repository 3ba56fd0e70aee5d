package itinerary

import (
	"testing"

	"wayplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotTimes(slots []models.TimeSlot) []string {
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.Time
	}
	return times
}

func TestBuildSlotsIncludesMandatoryMeals(t *testing.T) {
	slots := BuildSlots(models.AudienceCouple, []string{"romantic"})

	var labels []string
	for _, s := range slots {
		labels = append(labels, s.Label)
	}
	assert.Contains(t, labels, "Morning Coffee")
	assert.Contains(t, labels, "Lunch")
	assert.Contains(t, labels, "Dinner")
}

func TestBuildSlotsSortedAndDeduplicated(t *testing.T) {
	slots := BuildSlots(models.AudienceCouple, []string{"romantic", "culture", "nightlife"})

	times := slotTimes(slots)
	seen := make(map[string]bool)
	for i, tm := range times {
		if i > 0 {
			assert.Less(t, times[i-1], tm, "slot times must be strictly ascending")
		}
		assert.False(t, seen[tm], "duplicate slot time %s", tm)
		seen[tm] = true
	}
}

func TestBuildSlotsTimeCollisionFirstWins(t *testing.T) {
	// "nature" contributes a 10:30 park slot; "romantic" also has 10:30.
	slots := BuildSlots(models.AudienceAdult, []string{"romantic", "nature"})

	var at1030 []models.TimeSlot
	for _, s := range slots {
		if s.Time == "10:30" {
			at1030 = append(at1030, s)
		}
	}
	require.Len(t, at1030, 1)
	assert.Equal(t, "Romantic Walk", at1030[0].Label, "first occurrence wins")
}

func TestBuildSlotsKidsDropBarSlots(t *testing.T) {
	slots := BuildSlots(models.AudienceKids, []string{"romantic", "nightlife"})
	for _, s := range slots {
		assert.NotEqual(t, models.CategoryBar, s.Category)
	}
}

func TestBuildSlotsKidsOnlyNightlifeFallsBackToDefaults(t *testing.T) {
	// Every nightlife slot is disallowed for kids, so the kids defaults apply.
	slots := BuildSlots(models.AudienceKids, []string{"nightlife"})
	defaults := BuildSlots(models.AudienceKids, nil)
	assert.Equal(t, defaults, slots)
}

func TestBuildSlotsEmptyInterestsUseAudienceDefaults(t *testing.T) {
	kids := BuildSlots(models.AudienceKids, nil)
	couple := BuildSlots(models.AudienceCouple, nil)
	adult := BuildSlots(models.AudienceAdult, nil)

	assert.NotEqual(t, kids, couple)
	assert.NotEqual(t, couple, adult)

	// Unknown audiences get the generic adult set.
	assert.Equal(t, adult, BuildSlots(models.Audience("robot"), nil))
}

func TestBuildSlotsDeterministic(t *testing.T) {
	a := BuildSlots(models.AudienceCouple, []string{"romantic", "food"})
	b := BuildSlots(models.AudienceCouple, []string{"romantic", "food"})
	assert.Equal(t, a, b)
}
