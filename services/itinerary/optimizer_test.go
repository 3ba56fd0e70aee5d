package itinerary

import (
	"testing"

	"wayplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(id string, cat models.Category, priceLevel int) models.Place {
	return models.Place{ID: id, Name: id, Category: cat, PriceLevel: priceLevel}
}

func poolIDs(pool []models.Place) []string {
	ids := make([]string, len(pool))
	for i, p := range pool {
		ids[i] = p.ID
	}
	return ids
}

func TestOptimizeBudgetOrdersByPriorityThenCost(t *testing.T) {
	pool := []models.Place{
		place("park", models.CategoryPark, 0),
		place("restaurant-cheap", models.CategoryRestaurant, 1),
		place("cafe", models.CategoryCafe, 1),
		place("restaurant-pricey", models.CategoryRestaurant, 3),
	}

	out := OptimizeBudget(pool, 1000, 0.3)
	assert.Equal(t, []string{"restaurant-cheap", "restaurant-pricey", "cafe", "park"}, poolIDs(out))
}

func TestOptimizeBudgetEssentialsGetOverflowAllowance(t *testing.T) {
	// Restaurant (essential, cost 50) exceeds target 40 but fits within
	// 40*1.3=52; the park (discretionary, cost 10) then pushes past the
	// plain target and is rejected.
	pool := []models.Place{
		place("restaurant", models.CategoryRestaurant, 3), // cost 50
		place("park", models.CategoryPark, 1),             // cost 10
	}

	out := OptimizeBudget(pool, 40, 0.3)
	assert.Equal(t, []string{"restaurant"}, poolIDs(out))
}

func TestOptimizeBudgetDiscretionaryCappedAtPlainTarget(t *testing.T) {
	// Free park always fits. The bar (cost 25) gets no overflow allowance:
	// rejected at target 20, accepted once the plain target covers it.
	pool := []models.Place{
		place("park", models.CategoryPark, 0), // cost 0
		place("bar", models.CategoryBar, 2),   // cost 25
	}

	assert.Equal(t, []string{"park"}, poolIDs(OptimizeBudget(pool, 20, 0.3)))
	assert.Equal(t, []string{"park", "bar"}, poolIDs(OptimizeBudget(pool, 30, 0.3)))
}

func TestOptimizeBudgetEmptyResultIsValid(t *testing.T) {
	pool := []models.Place{
		place("restaurant", models.CategoryRestaurant, 4), // cost 90
	}
	out := OptimizeBudget(pool, 10, 0.3)
	assert.Empty(t, out)
}

func TestOptimizeBudgetDoesNotModifyInput(t *testing.T) {
	pool := []models.Place{
		place("park", models.CategoryPark, 0),
		place("restaurant", models.CategoryRestaurant, 2),
	}
	_ = OptimizeBudget(pool, 100, 0.3)
	require.Equal(t, "park", pool[0].ID)
	require.Equal(t, "restaurant", pool[1].ID)
}
