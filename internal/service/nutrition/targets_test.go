package nutrition

import (
	"math"
	"testing"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_MaleMaintain(t *testing.T) {
	t.Parallel()

	got, ok := Compute(Inputs{
		Sex: domain.SexMale, Age: 25, Weight: 70, Height: 175,
		Activity: domain.ActivityModerate, Goal: domain.GoalMaintain,
	})
	require.True(t, ok)

	wantBMR := 88.362 + 13.397*70 + 4.799*175 - 5.677*25
	assert.InDelta(t, wantBMR, got.BMR, 1e-9)
	assert.InDelta(t, 1724.052, got.BMR, 1e-6)
	assert.InDelta(t, wantBMR*1.55, got.TDEE, 1e-9)
	assert.Equal(t, 2672, got.CalorieGoal)
	assert.Equal(t, 234, got.ProteinGoal)
	assert.Equal(t, 267, got.CarbGoal)
	assert.Equal(t, 74, got.FatGoal)
}

func TestCompute_FemaleLoseWeight(t *testing.T) {
	t.Parallel()

	got, ok := Compute(Inputs{
		Sex: domain.SexFemale, Age: 30, Weight: 60, Height: 165,
		Activity: domain.ActivityLight, Goal: domain.GoalLoseWeight,
	})
	require.True(t, ok)

	assert.InDelta(t, 1383.683, got.BMR, 1e-6)
	assert.Equal(t, int(math.Round(got.TDEE))-500, got.CalorieGoal)
	assert.Equal(t, 1403, got.CalorieGoal)
	assert.Equal(t, 123, got.ProteinGoal)
	assert.Equal(t, 140, got.CarbGoal)
	assert.Equal(t, 39, got.FatGoal)
}

func TestCompute_GoalAdjustments(t *testing.T) {
	t.Parallel()

	base := Inputs{Sex: domain.SexMale, Age: 40, Weight: 90, Height: 185, Activity: domain.ActivityActive}
	maintain := base
	maintain.Goal = domain.GoalMaintain
	ref, ok := Compute(maintain)
	require.True(t, ok)

	tests := []struct {
		goal domain.Goal
		diff int
	}{
		{domain.GoalLoseWeight, -500},
		{domain.GoalGainMuscle, 300},
		{domain.GoalRecomposition, 100},
		{domain.GoalPerformance, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			t.Parallel()
			in := base
			in.Goal = tt.goal
			got, ok := Compute(in)
			require.True(t, ok)
			assert.Equal(t, ref.CalorieGoal+tt.diff, got.CalorieGoal)
		})
	}
}

func TestCompute_MissingInputs(t *testing.T) {
	t.Parallel()

	full := Inputs{
		Sex: domain.SexMale, Age: 25, Weight: 70, Height: 175,
		Activity: domain.ActivityModerate, Goal: domain.GoalMaintain,
	}

	tests := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"zero age", func(in *Inputs) { in.Age = 0 }},
		{"zero weight", func(in *Inputs) { in.Weight = 0 }},
		{"zero height", func(in *Inputs) { in.Height = 0 }},
		{"no sex", func(in *Inputs) { in.Sex = "" }},
		{"no activity", func(in *Inputs) { in.Activity = "" }},
		{"unknown goal", func(in *Inputs) { in.Goal = "bulk" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := full
			tt.mutate(&in)
			got, ok := Compute(in)
			assert.False(t, ok)
			assert.Equal(t, Targets{}, got)
		})
	}
}

func TestMacroSplit_RoundsEachMacro(t *testing.T) {
	t.Parallel()

	for _, c := range []int{0, 1200, 1401, 1999, 2583, 3150} {
		p, cb, f := MacroSplit(c)
		cal := float64(c)
		assert.Equal(t, int(math.Round(cal*0.35/4)), p)
		assert.Equal(t, int(math.Round(cal*0.40/4)), cb)
		assert.Equal(t, int(math.Round(cal*0.25/9)), f)
	}
}

func TestComputeProfile(t *testing.T) {
	t.Parallel()

	p := domain.DefaultProfile("Alex")
	_, ok := ComputeProfile(p)
	assert.False(t, ok)

	p.Age = domain.Ptr(25)
	p.Sex = domain.Ptr(domain.SexMale)
	p.Weight = domain.Ptr(70.0)
	p.Height = domain.Ptr(175.0)
	p.ActivityLevel = domain.Ptr(domain.ActivityModerate)
	p.Goal = domain.Ptr(domain.GoalMaintain)

	got, ok := ComputeProfile(p)
	require.True(t, ok)
	assert.Equal(t, 2672, got.CalorieGoal)

	patch := got.Patch()
	require.NotNil(t, patch.FatGoal)
	assert.Equal(t, 74, *patch.FatGoal)
	assert.False(t, patch.TouchesInputs())
}
