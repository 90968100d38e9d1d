package nutrition

import "github.com/heartmarshall/nutrigym-backend/internal/domain"

// Ratios are per-macro progress values in [0, 1].
type Ratios struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Summary is the derived view of one day against the profile's goals.
// Remaining keeps the unclamped delta and goes negative on overshoot.
type Summary struct {
	Totals    domain.Macros `json:"totals"`
	Goals     domain.Macros `json:"goals"`
	Remaining domain.Macros `json:"remaining"`
	Progress  Ratios        `json:"progress"`
}

// Totals sums every item across all slots of day.
func Totals(day domain.DayLog) domain.Macros {
	var m domain.Macros
	for _, s := range domain.MealSlots {
		m = m.Add(SlotTotals(day.Items(s)))
	}
	return m
}

// SlotTotals sums items.
func SlotTotals(items []domain.FoodItem) domain.Macros {
	var m domain.Macros
	for _, it := range items {
		m = m.Add(it.Macros())
	}
	return m
}

// Summarize derives totals, remaining and progress for day.
func Summarize(profile domain.UserProfile, day domain.DayLog) Summary {
	totals := Totals(day)
	goals := profile.Goals()

	return Summary{
		Totals:    totals,
		Goals:     goals,
		Remaining: goals.Sub(totals),
		Progress: Ratios{
			Calories: progress(totals.Calories, goals.Calories),
			Protein:  progress(totals.Protein, goals.Protein),
			Carbs:    progress(totals.Carbs, goals.Carbs),
			Fat:      progress(totals.Fat, goals.Fat),
		},
	}
}

func progress(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	r := total / goal
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}
