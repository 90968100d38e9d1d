package tracker

import (
	"strings"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// ManualEntry is a food typed in by hand. Name and calories are required.
type ManualEntry struct {
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Grams    *float64 `json:"grams,omitempty"`
}

// Validate validates the entry.
func (e ManualEntry) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if e.Calories == 0 {
		errs = append(errs, domain.FieldError{Field: "calories", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return e.FoodInput().Validate()
}

// FoodInput converts the entry.
func (e ManualEntry) FoodInput() domain.FoodInput {
	in := domain.FoodInput{
		Name:     strings.TrimSpace(e.Name),
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
	}
	if e.Grams != nil {
		g := *e.Grams
		in.Grams = &g
	}
	return in
}
