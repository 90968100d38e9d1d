// Package journal is the state cell holding the LogIndex. It is
// date-agnostic: every operation receives the date it applies to.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Service stores DayLogs keyed by local calendar day.
type Service struct {
	log   *slog.Logger
	loc   *time.Location
	newID func() string

	mu    sync.Mutex
	index domain.LogIndex
}

// Option configures a Service.
type Option func(*Service)

// WithIDFunc replaces the identifier minting function.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates an empty log store. Date keys are computed in loc.
func NewService(logger *slog.Logger, loc *time.Location, opts ...Option) *Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{
		log:   logger.With("service", "journal"),
		loc:   loc,
		newID: NewID,
		index: make(domain.LogIndex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the timezone date keys are computed in.
func (s *Service) Location() *time.Location { return s.loc }

// Key returns the LogIndex key for date.
func (s *Service) Key(date time.Time) string {
	return domain.DateKey(date, s.loc)
}

// Day returns a copy of the DayLog for date. Unseen dates yield a fresh
// empty DayLog that is not stored.
func (s *Service) Day(date time.Time) domain.DayLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.index[s.Key(date)]; ok {
		return d.Clone()
	}
	return domain.NewDayLog(domain.StartOfDay(date, s.loc))
}

// Append mints an identifier for each input and appends them to the slot,
// creating the DayLog for date if absent. It returns the inserted items.
func (s *Service) Append(ctx context.Context, date time.Time, slot domain.MealSlot, inputs []domain.FoodInput) ([]domain.FoodItem, error) {
	if !slot.IsValid() {
		return nil, domain.NewValidationError("slot", fmt.Sprintf("unknown meal slot %q", slot))
	}
	if len(inputs) == 0 {
		return nil, nil
	}

	items := make([]domain.FoodItem, 0, len(inputs))
	for _, in := range inputs {
		in = in.Normalize()
		if err := in.Validate(); err != nil {
			return nil, err
		}
		items = append(items, domain.FoodItem{ID: s.newID(), FoodInput: in.Clone()})
	}

	s.mu.Lock()
	key := s.Key(date)
	day, ok := s.index[key]
	if !ok {
		day = domain.NewDayLog(domain.StartOfDay(date, s.loc))
	}
	seq := day.Meals.Slot(slot)
	*seq = append(*seq, items...)
	s.index[key] = day
	s.mu.Unlock()

	s.log.DebugContext(ctx, "items appended",
		slog.String("date", key),
		slog.String("slot", slot.String()),
		slog.Int("count", len(items)))

	out := make([]domain.FoodItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out, nil
}

// Replace substitutes the item with the same ID in the slot. It reports
// whether an item was replaced; not-found is not an error.
func (s *Service) Replace(ctx context.Context, date time.Time, slot domain.MealSlot, item domain.FoodItem) (bool, error) {
	if !slot.IsValid() {
		return false, domain.NewValidationError("slot", fmt.Sprintf("unknown meal slot %q", slot))
	}
	item.FoodInput = item.FoodInput.Normalize()
	if err := item.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.index[s.Key(date)]
	if !ok {
		return false, nil
	}
	seq := *day.Meals.Slot(slot)
	i := slices.IndexFunc(seq, func(it domain.FoodItem) bool { return it.ID == item.ID })
	if i < 0 {
		return false, nil
	}
	seq[i] = item.Clone()

	s.log.DebugContext(ctx, "item replaced", slog.String("date", s.Key(date)), slog.String("id", item.ID))
	return true, nil
}

// Remove drops the item with id from the slot. It reports whether an item
// was removed; not-found is not an error.
func (s *Service) Remove(ctx context.Context, date time.Time, slot domain.MealSlot, id string) (bool, error) {
	if !slot.IsValid() {
		return false, domain.NewValidationError("slot", fmt.Sprintf("unknown meal slot %q", slot))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.Key(date)
	day, ok := s.index[key]
	if !ok {
		return false, nil
	}
	seq := day.Meals.Slot(slot)
	n := len(*seq)
	*seq = slices.DeleteFunc(*seq, func(it domain.FoodItem) bool { return it.ID == id })
	if len(*seq) == n {
		return false, nil
	}
	s.index[key] = day

	s.log.DebugContext(ctx, "item removed", slog.String("date", key), slog.String("id", id))
	return true, nil
}

// Snapshot returns a deep copy of the whole index.
func (s *Service) Snapshot() domain.LogIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Clone()
}

// Restore replaces the whole index.
func (s *Service) Restore(idx domain.LogIndex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx == nil {
		idx = make(domain.LogIndex)
	}
	s.index = idx.Clone()
}

// Len returns the number of materialized days.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.index)
}
