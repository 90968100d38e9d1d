// Package profile is the state cell holding the single user's profile.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/nutrition"
)

// Service holds the current profile. Updates are serialized; reads return
// copies.
type Service struct {
	log *slog.Logger

	mu      sync.Mutex
	profile domain.UserProfile
}

// NewService creates a profile store seeded with the default profile.
func NewService(logger *slog.Logger, defaultName string) *Service {
	return &Service{
		log:     logger.With("service", "profile"),
		profile: domain.DefaultProfile(defaultName),
	}
}

// Profile returns a copy of the current profile.
func (s *Service) Profile() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// NeedsSetup reports whether the profile lacks inputs for target
// computation.
func (s *Service) NeedsSetup() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.profile.IsComplete()
}

// Restore replaces the current profile, typically with one loaded from
// persistence.
func (s *Service) Restore(p domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p.Clone()
}

// ApplyPatch merges patch into the current profile. When the patch changes
// any target input, freshly computed targets are layered on top in the same
// update. Explicit goals in the patch are applied last and win.
func (s *Service) ApplyPatch(ctx context.Context, patch domain.ProfilePatch) (domain.UserProfile, error) {
	return s.apply(ctx, patch, false)
}

func (s *Service) apply(ctx context.Context, patch domain.ProfilePatch, derive bool) (domain.UserProfile, error) {
	if err := patch.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	s.mu.Lock()
	old := s.profile
	next := old.Clone()

	patch.ApplyInputs(&next)
	recomputed := false
	if derive || patch.ChangesInputs(old) {
		if t, ok := nutrition.ComputeProfile(next); ok {
			t.Patch().ApplyGoals(&next)
			recomputed = true
		}
	}
	patch.ApplyGoals(&next)

	s.profile = next
	out := next.Clone()
	s.mu.Unlock()

	if changes := buildChanges(old, next); len(changes) > 0 {
		s.log.InfoContext(ctx, "profile updated",
			slog.Bool("recomputed", recomputed),
			slog.Any("changes", changes))
	}

	return out, nil
}

// CompleteSetup validates the setup form and applies it, deriving targets.
func (s *Service) CompleteSetup(ctx context.Context, input SetupInput) (domain.UserProfile, error) {
	if err := input.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	p, err := s.apply(ctx, input.Patch(), true)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("profile.CompleteSetup: %w", err)
	}
	return p, nil
}

// buildChanges creates a map of field changes for logging.
func buildChanges(old, new domain.UserProfile) map[string]any {
	changes := make(map[string]any)

	diff := func(field string, o, n any) {
		if o != n {
			changes[field] = map[string]any{"old": o, "new": n}
		}
	}
	diff("name", old.Name, new.Name)
	diff("age", deref(old.Age), deref(new.Age))
	diff("gender", deref(old.Sex), deref(new.Sex))
	diff("height", deref(old.Height), deref(new.Height))
	diff("weight", deref(old.Weight), deref(new.Weight))
	diff("activityLevel", deref(old.ActivityLevel), deref(new.ActivityLevel))
	diff("goal", deref(old.Goal), deref(new.Goal))
	diff("calorieGoal", old.CalorieGoal, new.CalorieGoal)
	diff("proteinGoal", old.ProteinGoal, new.ProteinGoal)
	diff("carbGoal", old.CarbGoal, new.CarbGoal)
	diff("fatGoal", old.FatGoal, new.FatGoal)

	return changes
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
