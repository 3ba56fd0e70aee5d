package itinerary

import "wayplan/models"

// EvaluateBudget sums the estimated costs of the selected items (zero for
// placeholders) and reports where the total sits relative to the tolerance
// band around the target. Pure function; a zero target keeps the ratio at
// 1.0 instead of dividing by zero.
func EvaluateBudget(items []models.SelectedItem, targetBudget int, tolerance float64) models.BudgetState {
	total := 0
	for _, item := range items {
		total += item.EstimatedCost
	}

	lower := float64(targetBudget) * (1 - tolerance)
	upper := float64(targetBudget) * (1 + tolerance)

	ratio := 1.0
	if targetBudget > 0 {
		ratio = float64(total) / float64(targetBudget)
	}

	return models.BudgetState{
		TotalCost:    total,
		Target:       targetBudget,
		LowerBound:   lower,
		UpperBound:   upper,
		WithinBudget: float64(total) >= lower && float64(total) <= upper,
		Ratio:        ratio,
	}
}
