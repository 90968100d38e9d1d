package domain

// Diet types offered by the meal planner.
const (
	DietBalanced      = "balanced"
	DietLowCarb       = "low-carb"
	DietKeto          = "keto"
	DietVegan         = "vegan"
	DietMediterranean = "mediterranean"
)

// PlanInput is what the user picks on the planner form. Both fields are
// optional.
type PlanInput struct {
	DietType    string `json:"dietType"`
	Preferences string `json:"preferences"`
}
