package itinerary

import (
	"testing"

	"wayplan/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateBudgetSumsAndBounds(t *testing.T) {
	items := []models.SelectedItem{
		{EstimatedCost: 25},
		{EstimatedCost: 50},
		{EstimatedCost: 0, Placeholder: true},
		{EstimatedCost: 45},
	}

	state := EvaluateBudget(items, 100, 0.3)
	assert.Equal(t, 120, state.TotalCost)
	assert.Equal(t, 100, state.Target)
	assert.InDelta(t, 70.0, state.LowerBound, 1e-9)
	assert.InDelta(t, 130.0, state.UpperBound, 1e-9)
	assert.True(t, state.WithinBudget)
	assert.InDelta(t, 1.2, state.Ratio, 1e-9)
}

func TestEvaluateBudgetOutsideBand(t *testing.T) {
	under := EvaluateBudget([]models.SelectedItem{{EstimatedCost: 10}}, 100, 0.3)
	assert.False(t, under.WithinBudget)

	over := EvaluateBudget([]models.SelectedItem{{EstimatedCost: 200}}, 100, 0.3)
	assert.False(t, over.WithinBudget)
}

func TestEvaluateBudgetBoundConsistency(t *testing.T) {
	// WithinBudget must be a pure function of the recorded numbers, with no
	// hidden extra tolerance.
	for _, total := range []int{0, 69, 70, 100, 130, 131, 500} {
		state := EvaluateBudget([]models.SelectedItem{{EstimatedCost: total}}, 100, 0.3)
		expected := float64(total) >= state.LowerBound && float64(total) <= state.UpperBound
		assert.Equal(t, expected, state.WithinBudget, "total %d", total)
	}
}

func TestEvaluateBudgetZeroTarget(t *testing.T) {
	state := EvaluateBudget([]models.SelectedItem{{EstimatedCost: 40}}, 0, 0.3)
	assert.InDelta(t, 1.0, state.Ratio, 1e-9, "zero target keeps ratio at 1.0")
	assert.False(t, state.WithinBudget)

	empty := EvaluateBudget(nil, 0, 0.3)
	assert.True(t, empty.WithinBudget, "zero cost against zero target is within the band")
}
