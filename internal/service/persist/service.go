// Package persist mirrors the in-memory state cells into a key-value
// substrate. Writes never fail the caller; reads fall back to defaults.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Stable substrate keys.
const (
	KeyProfile     = "nutrigym_userProfile"
	KeyLogs        = "nutrigym_logsByDate"
	KeyEntitlement = "nutrigym_profile_active"
)

const entitlementValue = "true"

// kvStore is the substrate the stripes are written to.
type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Service reads and writes the profile, log and entitlement stripes.
type Service struct {
	log         *slog.Logger
	kv          kvStore
	defaultName string
}

// NewService creates a persistence adapter over kv.
func NewService(logger *slog.Logger, kv kvStore, defaultName string) *Service {
	return &Service{
		log:         logger.With("service", "persist"),
		kv:          kv,
		defaultName: defaultName,
	}
}

// LoadProfile returns the stored profile, or the default seed when the
// payload is missing or malformed. A payload without both goal and age is
// malformed.
func (s *Service) LoadProfile(ctx context.Context) domain.UserProfile {
	p, err := s.readProfile(ctx)
	if err != nil {
		s.logReadFailure(ctx, KeyProfile, err)
		return domain.DefaultProfile(s.defaultName)
	}
	return p
}

func (s *Service) readProfile(ctx context.Context) (domain.UserProfile, error) {
	raw, ok, err := s.kv.Get(ctx, KeyProfile)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if !ok {
		return domain.UserProfile{}, domain.ErrNotFound
	}

	var p domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %w", domain.ErrMalformedState, err)
	}
	if p.Goal == nil || !p.Goal.IsValid() || p.Age == nil || *p.Age <= 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: profile lacks goal or age", domain.ErrMalformedState)
	}
	return p, nil
}

// SaveProfile writes the profile stripe. Failures are logged.
func (s *Service) SaveProfile(ctx context.Context, p domain.UserProfile) {
	s.write(ctx, KeyProfile, p)
}

// LoadLogs returns the stored LogIndex, or an empty one when the payload is
// missing or malformed. Day dates are re-hydrated into loc; entries whose
// key is not a date are dropped.
func (s *Service) LoadLogs(ctx context.Context, loc *time.Location) domain.LogIndex {
	idx, err := s.readLogs(ctx, loc)
	if err != nil {
		s.logReadFailure(ctx, KeyLogs, err)
		return make(domain.LogIndex)
	}
	return idx
}

func (s *Service) readLogs(ctx context.Context, loc *time.Location) (domain.LogIndex, error) {
	raw, ok, err := s.kv.Get(ctx, KeyLogs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	var decoded map[string]domain.DayLog
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedState, err)
	}

	idx := make(domain.LogIndex, len(decoded))
	for key, day := range decoded {
		if _, err := domain.ParseDateKey(key, loc); err != nil {
			s.log.WarnContext(ctx, "dropping log entry with invalid key", slog.String("key", key))
			continue
		}
		if day.Date.IsZero() {
			return nil, fmt.Errorf("%w: day %s has no date", domain.ErrMalformedState, key)
		}
		if loc != nil {
			day.Date = day.Date.In(loc)
		}
		idx[key] = day.Clone()
	}
	return idx, nil
}

// SaveLogs writes the log stripe. Failures are logged.
func (s *Service) SaveLogs(ctx context.Context, idx domain.LogIndex) {
	s.write(ctx, KeyLogs, idx)
}

// EntitlementCached reports whether the entitlement flag is set.
func (s *Service) EntitlementCached(ctx context.Context) bool {
	raw, ok, err := s.kv.Get(ctx, KeyEntitlement)
	if err != nil {
		s.logReadFailure(ctx, KeyEntitlement, err)
		return false
	}
	return ok && raw == entitlementValue
}

// SetEntitlementCached sets or clears the entitlement flag. Failures are
// logged.
func (s *Service) SetEntitlementCached(ctx context.Context, active bool) {
	var err error
	if active {
		err = s.kv.Set(ctx, KeyEntitlement, entitlementValue)
	} else {
		err = s.kv.Delete(ctx, KeyEntitlement)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "persist entitlement flag",
			slog.Bool("active", active),
			slog.String("error", err.Error()))
	}
}

func (s *Service) write(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.ErrorContext(ctx, "serialize stripe",
			slog.String("key", key),
			slog.String("error", fmt.Errorf("%w: %w", domain.ErrPersistence, err).Error()))
		return
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		s.log.ErrorContext(ctx, "write stripe",
			slog.String("key", key),
			slog.String("error", fmt.Errorf("%w: %w", domain.ErrPersistence, err).Error()))
	}
}

func (s *Service) logReadFailure(ctx context.Context, key string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.DebugContext(ctx, "stripe absent, using default", slog.String("key", key))
	case errors.Is(err, domain.ErrMalformedState):
		s.log.WarnContext(ctx, "stripe malformed, using default",
			slog.String("key", key),
			slog.String("error", err.Error()))
	default:
		s.log.ErrorContext(ctx, "read stripe",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
