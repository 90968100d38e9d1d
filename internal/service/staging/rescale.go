// Package staging holds the review list AI results pass through before they
// are committed to a DayLog, and the portion rescaling applied there.
package staging

import (
	"math"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Rescale returns original scaled to newGrams. Calories and carbs round to
// whole numbers, protein and fat to one decimal. original is not modified.
// ok is false when original carries no positive reference weight.
func Rescale(original domain.FoodInput, newGrams float64) (domain.FoodInput, bool) {
	if original.Grams == nil || *original.Grams <= 0 {
		return domain.FoodInput{}, false
	}

	r := newGrams / *original.Grams
	out := original.Clone()
	out.Grams = &newGrams
	out.Calories = math.Round(original.Calories * r)
	out.Protein = math.Round(original.Protein*r*10) / 10
	out.Carbs = math.Round(original.Carbs * r)
	out.Fat = math.Round(original.Fat*r*10) / 10
	return out, true
}
