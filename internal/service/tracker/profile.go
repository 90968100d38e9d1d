package tracker

import (
	"context"
	"fmt"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/profile"
)

// Profile returns the current profile.
func (t *Tracker) Profile() domain.UserProfile {
	return t.profiles.Profile()
}

// CompleteSetup stores the setup form and derives targets.
func (t *Tracker) CompleteSetup(ctx context.Context, input profile.SetupInput) (domain.UserProfile, error) {
	p, err := t.profiles.CompleteSetup(ctx, input)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("tracker.CompleteSetup: %w", err)
	}
	t.saveProfile(ctx)
	return p, nil
}

// UpdateProfile merges a partial update.
func (t *Tracker) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.UserProfile, error) {
	p, err := t.profiles.ApplyPatch(ctx, patch)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("tracker.UpdateProfile: %w", err)
	}
	t.saveProfile(ctx)
	return p, nil
}

// PlanMeals asks the AI for a one-day plan that fits the profile targets.
func (t *Tracker) PlanMeals(ctx context.Context, in domain.PlanInput) (string, error) {
	plan, err := t.ai.Plan(ctx, t.profiles.Profile(), in)
	if err != nil {
		return "", fmt.Errorf("tracker.PlanMeals: %w", err)
	}
	return plan, nil
}
