package domain

// DefaultProfileName is the display name seeded into a fresh profile.
const DefaultProfileName = "Alex"

// UserProfile is the single user's anthropometric inputs and daily targets.
// Optional inputs are nil until the setup form is completed.
type UserProfile struct {
	Name          string         `json:"name"`
	Age           *int           `json:"age,omitempty"`
	Sex           *Sex           `json:"gender,omitempty"`
	Height        *float64       `json:"height,omitempty"`
	Weight        *float64       `json:"weight,omitempty"`
	ActivityLevel *ActivityLevel `json:"activityLevel,omitempty"`
	Goal          *Goal          `json:"goal,omitempty"`
	CalorieGoal   int            `json:"calorieGoal"`
	ProteinGoal   int            `json:"proteinGoal"`
	CarbGoal      int            `json:"carbGoal"`
	FatGoal       int            `json:"fatGoal"`
}

// DefaultProfile returns the seed profile: a display name and zero goals.
func DefaultProfile(name string) UserProfile {
	if name == "" {
		name = DefaultProfileName
	}
	return UserProfile{Name: name}
}

// IsComplete reports whether every input needed for targets is present
// and non-zero. An incomplete profile puts the client in setup mode.
func (p UserProfile) IsComplete() bool {
	return p.Age != nil && *p.Age > 0 &&
		p.Sex != nil && p.Sex.IsValid() &&
		p.Height != nil && *p.Height > 0 &&
		p.Weight != nil && *p.Weight > 0 &&
		p.ActivityLevel != nil && p.ActivityLevel.IsValid() &&
		p.Goal != nil && p.Goal.IsValid()
}

// Goals returns the daily targets as Macros.
func (p UserProfile) Goals() Macros {
	return Macros{
		Calories: float64(p.CalorieGoal),
		Protein:  float64(p.ProteinGoal),
		Carbs:    float64(p.CarbGoal),
		Fat:      float64(p.FatGoal),
	}
}

// GoalOrDefault returns the goal, or maintain when none is set.
func (p UserProfile) GoalOrDefault() Goal {
	if p.Goal == nil || !p.Goal.IsValid() {
		return GoalMaintain
	}
	return *p.Goal
}

// Clone returns a copy that shares no pointers with p.
func (p UserProfile) Clone() UserProfile {
	p.Age = clonePtr(p.Age)
	p.Sex = clonePtr(p.Sex)
	p.Height = clonePtr(p.Height)
	p.Weight = clonePtr(p.Weight)
	p.ActivityLevel = clonePtr(p.ActivityLevel)
	p.Goal = clonePtr(p.Goal)
	return p
}

// ProfilePatch is a partial profile update. Nil fields are left unchanged.
type ProfilePatch struct {
	Name          *string        `json:"name,omitempty"`
	Age           *int           `json:"age,omitempty"`
	Sex           *Sex           `json:"gender,omitempty"`
	Height        *float64       `json:"height,omitempty"`
	Weight        *float64       `json:"weight,omitempty"`
	ActivityLevel *ActivityLevel `json:"activityLevel,omitempty"`
	Goal          *Goal          `json:"goal,omitempty"`
	CalorieGoal   *int           `json:"calorieGoal,omitempty"`
	ProteinGoal   *int           `json:"proteinGoal,omitempty"`
	CarbGoal      *int           `json:"carbGoal,omitempty"`
	FatGoal       *int           `json:"fatGoal,omitempty"`
}

// TouchesInputs reports whether the patch sets any field that feeds the
// target computation.
func (pp ProfilePatch) TouchesInputs() bool {
	return pp.Age != nil || pp.Sex != nil || pp.Height != nil ||
		pp.Weight != nil || pp.ActivityLevel != nil || pp.Goal != nil
}

// ChangesInputs reports whether applying the patch to p would change any
// field that feeds the target computation.
func (pp ProfilePatch) ChangesInputs(p UserProfile) bool {
	return changed(pp.Age, p.Age) || changed(pp.Sex, p.Sex) ||
		changed(pp.Height, p.Height) || changed(pp.Weight, p.Weight) ||
		changed(pp.ActivityLevel, p.ActivityLevel) || changed(pp.Goal, p.Goal)
}

func changed[T comparable](next, cur *T) bool {
	if next == nil {
		return false
	}
	return cur == nil || *next != *cur
}

// TouchesGoals reports whether the patch sets any explicit target.
func (pp ProfilePatch) TouchesGoals() bool {
	return pp.CalorieGoal != nil || pp.ProteinGoal != nil || pp.CarbGoal != nil || pp.FatGoal != nil
}

// ApplyInputs merges the non-target fields of pp into p.
func (pp ProfilePatch) ApplyInputs(p *UserProfile) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Age != nil {
		p.Age = clonePtr(pp.Age)
	}
	if pp.Sex != nil {
		p.Sex = clonePtr(pp.Sex)
	}
	if pp.Height != nil {
		p.Height = clonePtr(pp.Height)
	}
	if pp.Weight != nil {
		p.Weight = clonePtr(pp.Weight)
	}
	if pp.ActivityLevel != nil {
		p.ActivityLevel = clonePtr(pp.ActivityLevel)
	}
	if pp.Goal != nil {
		p.Goal = clonePtr(pp.Goal)
	}
}

// ApplyGoals merges the explicit targets of pp into p.
func (pp ProfilePatch) ApplyGoals(p *UserProfile) {
	if pp.CalorieGoal != nil {
		p.CalorieGoal = *pp.CalorieGoal
	}
	if pp.ProteinGoal != nil {
		p.ProteinGoal = *pp.ProteinGoal
	}
	if pp.CarbGoal != nil {
		p.CarbGoal = *pp.CarbGoal
	}
	if pp.FatGoal != nil {
		p.FatGoal = *pp.FatGoal
	}
}

// Validate checks the set fields for range and enum validity.
func (pp ProfilePatch) Validate() error {
	var errs []FieldError

	if pp.Age != nil && *pp.Age <= 0 {
		errs = append(errs, FieldError{Field: "age", Message: "must be positive"})
	}
	if pp.Sex != nil && !pp.Sex.IsValid() {
		errs = append(errs, FieldError{Field: "gender", Message: "must be male or female"})
	}
	if pp.Height != nil && *pp.Height <= 0 {
		errs = append(errs, FieldError{Field: "height", Message: "must be positive"})
	}
	if pp.Weight != nil && *pp.Weight <= 0 {
		errs = append(errs, FieldError{Field: "weight", Message: "must be positive"})
	}
	if pp.ActivityLevel != nil && !pp.ActivityLevel.IsValid() {
		errs = append(errs, FieldError{Field: "activityLevel", Message: "unknown activity level"})
	}
	if pp.Goal != nil && !pp.Goal.IsValid() {
		errs = append(errs, FieldError{Field: "goal", Message: "unknown goal"})
	}
	for _, g := range []struct {
		field string
		v     *int
	}{
		{"calorieGoal", pp.CalorieGoal},
		{"proteinGoal", pp.ProteinGoal},
		{"carbGoal", pp.CarbGoal},
		{"fatGoal", pp.FatGoal},
	} {
		if g.v != nil && *g.v < 0 {
			errs = append(errs, FieldError{Field: g.field, Message: "must be >= 0"})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
