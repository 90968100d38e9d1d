package domain

import (
	"math"
	"strings"
)

// Macros holds the four tracked macro quantities.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the componentwise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// Sub returns m minus o per macro. The result may be negative.
func (m Macros) Sub(o Macros) Macros {
	return Macros{
		Calories: m.Calories - o.Calories,
		Protein:  m.Protein - o.Protein,
		Carbs:    m.Carbs - o.Carbs,
		Fat:      m.Fat - o.Fat,
	}
}

// FoodInput is a food without an identifier: an AI ingredient, a manual
// entry, or the payload of an append before IDs are minted.
type FoodInput struct {
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Grams    *float64 `json:"grams,omitempty"`
}

// Macros returns the macro quantities of the food.
func (f FoodInput) Macros() Macros {
	return Macros{Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fat: f.Fat}
}

// Normalize trims the name and drops a non-positive weight, since a weight
// is either a positive reference or absent.
func (f FoodInput) Normalize() FoodInput {
	f.Name = strings.TrimSpace(f.Name)
	if f.Grams != nil {
		if g := *f.Grams; g <= 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			f.Grams = nil
		} else {
			f.Grams = &g
		}
	}
	return f
}

// Validate checks that every macro is a finite non-negative number.
func (f FoodInput) Validate() error {
	var errs []FieldError

	check := func(field string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, FieldError{Field: field, Message: "must be a number"})
		} else if v < 0 {
			errs = append(errs, FieldError{Field: field, Message: "must be >= 0"})
		}
	}
	check("calories", f.Calories)
	check("protein", f.Protein)
	check("carbs", f.Carbs)
	check("fat", f.Fat)
	if f.Grams != nil {
		check("grams", *f.Grams)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Clone returns a copy that shares no pointers with f.
func (f FoodInput) Clone() FoodInput {
	if f.Grams != nil {
		g := *f.Grams
		f.Grams = &g
	}
	return f
}

// FoodItem is an eaten food stored in a DayLog. ID is assigned at insertion
// and never rewritten.
type FoodItem struct {
	ID string `json:"id"`
	FoodInput
}

// Clone returns a copy that shares no pointers with i.
func (i FoodItem) Clone() FoodItem {
	i.FoodInput = i.FoodInput.Clone()
	return i
}

// AnalyzedDish is a dish recognized from an image or a description.
// Ingredients carry no identifiers until they are committed to a DayLog.
type AnalyzedDish struct {
	DishName    string      `json:"dishName"`
	Ingredients []FoodInput `json:"ingredients"`
}

// StagedItem is an editable review-list record produced from an analysis.
// Original is the as-recognized portion used as the anchor for proportional
// rescaling; it is nil for rows the user adds by hand.
type StagedItem struct {
	ID       string     `json:"id"`
	DishName string     `json:"dishName,omitempty"`
	Food     FoodInput  `json:"food"`
	Original *FoodInput `json:"original,omitempty"`
}

// Rescalable reports whether gram edits should rescale macros.
func (s StagedItem) Rescalable() bool {
	return s.Original != nil && s.Original.Grams != nil && *s.Original.Grams > 0
}

// Clone returns a copy that shares no pointers with s.
func (s StagedItem) Clone() StagedItem {
	s.Food = s.Food.Clone()
	if s.Original != nil {
		o := s.Original.Clone()
		s.Original = &o
	}
	return s
}
