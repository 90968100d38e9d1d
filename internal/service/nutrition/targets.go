// Package nutrition holds the deterministic energy and macro math plus the
// per-day derivation of totals, remaining amounts and progress.
package nutrition

import (
	"math"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Energy density per gram.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
)

// Share of the calorie goal assigned to each macro.
const (
	proteinShare = 0.35
	carbsShare   = 0.40
	fatShare     = 0.25
)

var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

var goalAdjustments = map[domain.Goal]int{
	domain.GoalLoseWeight:    -500,
	domain.GoalMaintain:      0,
	domain.GoalGainMuscle:    300,
	domain.GoalRecomposition: 100,
	domain.GoalPerformance:   0,
}

// Inputs are the anthropometric values the targets are derived from.
type Inputs struct {
	Sex      domain.Sex
	Age      int
	Weight   float64 // kg
	Height   float64 // cm
	Activity domain.ActivityLevel
	Goal     domain.Goal
}

// Valid reports whether every input is present, non-zero and known.
func (in Inputs) Valid() bool {
	if in.Age <= 0 || in.Weight <= 0 || in.Height <= 0 {
		return false
	}
	if !in.Sex.IsValid() {
		return false
	}
	if _, ok := activityFactors[in.Activity]; !ok {
		return false
	}
	_, ok := goalAdjustments[in.Goal]
	return ok
}

// InputsFromProfile extracts Inputs from p. ok is false when any input is
// missing.
func InputsFromProfile(p domain.UserProfile) (Inputs, bool) {
	if p.Age == nil || p.Sex == nil || p.Weight == nil || p.Height == nil ||
		p.ActivityLevel == nil || p.Goal == nil {
		return Inputs{}, false
	}
	in := Inputs{
		Sex:      *p.Sex,
		Age:      *p.Age,
		Weight:   *p.Weight,
		Height:   *p.Height,
		Activity: *p.ActivityLevel,
		Goal:     *p.Goal,
	}
	return in, in.Valid()
}

// Targets are the daily goals derived from Inputs.
type Targets struct {
	BMR         float64 `json:"bmr" yaml:"bmr"`
	TDEE        float64 `json:"tdee" yaml:"tdee"`
	CalorieGoal int     `json:"calorieGoal" yaml:"calorie_goal"`
	ProteinGoal int     `json:"proteinGoal" yaml:"protein_goal"`
	CarbGoal    int     `json:"carbGoal" yaml:"carb_goal"`
	FatGoal     int     `json:"fatGoal" yaml:"fat_goal"`
}

// Patch returns the targets as a profile patch touching only the goals.
func (t Targets) Patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		CalorieGoal: domain.Ptr(t.CalorieGoal),
		ProteinGoal: domain.Ptr(t.ProteinGoal),
		CarbGoal:    domain.Ptr(t.CarbGoal),
		FatGoal:     domain.Ptr(t.FatGoal),
	}
}

// BMR returns the revised Harris-Benedict basal metabolic rate in kcal/day.
func BMR(sex domain.Sex, weight, height float64, age int) float64 {
	a := float64(age)
	if sex == domain.SexMale {
		return 88.362 + 13.397*weight + 4.799*height - 5.677*a
	}
	return 447.593 + 9.247*weight + 3.098*height - 4.330*a
}

// TDEE scales bmr by the activity factor. Unknown levels yield 0.
func TDEE(bmr float64, level domain.ActivityLevel) float64 {
	return bmr * activityFactors[level]
}

// CalorieGoal rounds tdee and applies the goal adjustment.
func CalorieGoal(tdee float64, goal domain.Goal) int {
	return int(math.Round(tdee)) + goalAdjustments[goal]
}

// MacroSplit derives gram targets from a calorie goal. Each macro is
// rounded independently.
func MacroSplit(calories int) (protein, carbs, fat int) {
	c := float64(calories)
	protein = int(math.Round(c * proteinShare / kcalPerGramProtein))
	carbs = int(math.Round(c * carbsShare / kcalPerGramCarbs))
	fat = int(math.Round(c * fatShare / kcalPerGramFat))
	return protein, carbs, fat
}

// Compute derives the full target set. ok is false when any input is
// missing or zero; callers must then leave existing goals untouched.
func Compute(in Inputs) (Targets, bool) {
	if !in.Valid() {
		return Targets{}, false
	}

	bmr := BMR(in.Sex, in.Weight, in.Height, in.Age)
	tdee := TDEE(bmr, in.Activity)
	cal := CalorieGoal(tdee, in.Goal)
	p, c, f := MacroSplit(cal)

	return Targets{
		BMR:         bmr,
		TDEE:        tdee,
		CalorieGoal: cal,
		ProteinGoal: p,
		CarbGoal:    c,
		FatGoal:     f,
	}, true
}

// ComputeProfile is Compute over the inputs stored in p.
func ComputeProfile(p domain.UserProfile) (Targets, bool) {
	in, ok := InputsFromProfile(p)
	if !ok {
		return Targets{}, false
	}
	return Compute(in)
}
