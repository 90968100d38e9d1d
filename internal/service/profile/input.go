package profile

import (
	"strings"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// SetupInput holds the initial setup form. Every field is required.
type SetupInput struct {
	Name          string               `json:"name"`
	Age           int                  `json:"age"`
	Sex           domain.Sex           `json:"gender"`
	Height        float64              `json:"height"`
	Weight        float64              `json:"weight"`
	ActivityLevel domain.ActivityLevel `json:"activityLevel"`
	Goal          domain.Goal          `json:"goal"`
}

// Validate validates the setup input.
func (i SetupInput) Validate() error {
	var errs []domain.FieldError

	if i.Age <= 0 {
		errs = append(errs, domain.FieldError{Field: "age", Message: "required"})
	} else if i.Age > 130 {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be at most 130"})
	}
	if !i.Sex.IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be male or female"})
	}
	if i.Height <= 0 {
		errs = append(errs, domain.FieldError{Field: "height", Message: "required"})
	}
	if i.Weight <= 0 {
		errs = append(errs, domain.FieldError{Field: "weight", Message: "required"})
	}
	if !i.ActivityLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activityLevel", Message: "unknown activity level"})
	}
	if !i.Goal.IsValid() {
		errs = append(errs, domain.FieldError{Field: "goal", Message: "unknown goal"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Patch converts the form to a profile patch. A blank name keeps the
// current display name.
func (i SetupInput) Patch() domain.ProfilePatch {
	p := domain.ProfilePatch{
		Age:           domain.Ptr(i.Age),
		Sex:           domain.Ptr(i.Sex),
		Height:        domain.Ptr(i.Height),
		Weight:        domain.Ptr(i.Weight),
		ActivityLevel: domain.Ptr(i.ActivityLevel),
		Goal:          domain.Ptr(i.Goal),
	}
	if name := strings.TrimSpace(i.Name); name != "" {
		p.Name = &name
	}
	return p
}
