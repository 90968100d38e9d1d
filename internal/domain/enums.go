package domain

import "fmt"

// MealSlot is one of the four fixed meal partitions of a day.
type MealSlot string

const (
	MealSlotBreakfast MealSlot = "breakfast"
	MealSlotLunch     MealSlot = "lunch"
	MealSlotDinner    MealSlot = "dinner"
	MealSlotSnacks    MealSlot = "snacks"
)

// MealSlots lists every slot in display order.
var MealSlots = [4]MealSlot{MealSlotBreakfast, MealSlotLunch, MealSlotDinner, MealSlotSnacks}

func (s MealSlot) String() string { return string(s) }

func (s MealSlot) IsValid() bool {
	switch s {
	case MealSlotBreakfast, MealSlotLunch, MealSlotDinner, MealSlotSnacks:
		return true
	}
	return false
}

// ParseMealSlot converts a raw string into a MealSlot.
func ParseMealSlot(raw string) (MealSlot, error) {
	s := MealSlot(raw)
	if !s.IsValid() {
		return "", NewValidationError("slot", fmt.Sprintf("unknown meal slot %q", raw))
	}
	return s, nil
}

// Sex selects the BMR equation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) String() string { return string(s) }

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

// ActivityLevel is the TDEE activity tier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) String() string { return string(a) }

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// Goal is the user's body-composition objective.
type Goal string

const (
	GoalLoseWeight    Goal = "lose_weight"
	GoalMaintain      Goal = "maintain"
	GoalGainMuscle    Goal = "gain_muscle"
	GoalRecomposition Goal = "recomposition"
	GoalPerformance   Goal = "performance"
)

func (g Goal) String() string { return string(g) }

func (g Goal) IsValid() bool {
	switch g {
	case GoalLoseWeight, GoalMaintain, GoalGainMuscle, GoalRecomposition, GoalPerformance:
		return true
	}
	return false
}

// Label returns the Spanish display name used in prompts and summaries.
func (g Goal) Label() string {
	switch g {
	case GoalLoseWeight:
		return "Perder Peso"
	case GoalMaintain:
		return "Mantener Peso"
	case GoalGainMuscle:
		return "Ganar Músculo"
	case GoalRecomposition:
		return "Recomposición Corporal"
	case GoalPerformance:
		return "Mejorar Rendimiento"
	}
	return string(g)
}

// AuthState is the gatekeeper's terminal or transitional state.
type AuthState string

const (
	AuthStateCold            AuthState = "cold"
	AuthStateLoading         AuthState = "loading"
	AuthStateUnauthenticated AuthState = "unauthenticated"
	AuthStateAuthorized      AuthState = "authorized"
)

func (s AuthState) String() string { return string(s) }

func (s AuthState) IsValid() bool {
	switch s {
	case AuthStateCold, AuthStateLoading, AuthStateUnauthenticated, AuthStateAuthorized:
		return true
	}
	return false
}

// AuthEvent names an auth provider state-change notification.
type AuthEvent string

const (
	AuthEventInitialSession AuthEvent = "INITIAL_SESSION"
	AuthEventSignedIn       AuthEvent = "SIGNED_IN"
	AuthEventSignedOut      AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

func (e AuthEvent) String() string { return string(e) }
