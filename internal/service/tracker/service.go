// Package tracker is the orchestrator: it owns the selected date, routes
// journal mutations to it, funnels AI analyses through the staging list and
// persists after every change.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/journal"
	"github.com/heartmarshall/nutrigym-backend/internal/service/nutrition"
	"github.com/heartmarshall/nutrigym-backend/internal/service/profile"
	"github.com/heartmarshall/nutrigym-backend/internal/service/staging"
)

// analyzer is the AI adapter.
type analyzer interface {
	Recognize(ctx context.Context, in domain.RecognizeInput) ([]domain.AnalyzedDish, error)
	Plan(ctx context.Context, profile domain.UserProfile, in domain.PlanInput) (string, error)
}

// snapshotStore persists the profile and log stripes. Failures are handled
// (logged) by the store itself.
type snapshotStore interface {
	LoadProfile(ctx context.Context) domain.UserProfile
	SaveProfile(ctx context.Context, p domain.UserProfile)
	LoadLogs(ctx context.Context, loc *time.Location) domain.LogIndex
	SaveLogs(ctx context.Context, idx domain.LogIndex)
}

// DayView is everything the presentation layer renders for one day.
type DayView struct {
	Date       time.Time         `json:"date"`
	Key        string            `json:"key"`
	Log        domain.DayLog     `json:"log"`
	Summary    nutrition.Summary `json:"summary"`
	NeedsSetup bool              `json:"needsSetup"`
}

// Tracker wires the state cells together.
type Tracker struct {
	log      *slog.Logger
	profiles *profile.Service
	journal  *journal.Service
	staged   *staging.List
	ai       analyzer
	store    snapshotStore
	now      func() time.Time

	mu       sync.Mutex
	selected time.Time
	dateGen  uint64
	runGen   uint64

	// persistMu orders snapshot-and-save so the store never receives an
	// older snapshot after a newer one.
	persistMu sync.Mutex
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a tracker with today selected.
func New(
	logger *slog.Logger,
	profiles *profile.Service,
	logs *journal.Service,
	staged *staging.List,
	ai analyzer,
	store snapshotStore,
	opts ...Option,
) *Tracker {
	t := &Tracker{
		log:      logger.With("service", "tracker"),
		profiles: profiles,
		journal:  logs,
		staged:   staged,
		ai:       ai,
		store:    store,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.selected = t.Today()
	return t
}

// Load restores the profile and log stripes from the store.
func (t *Tracker) Load(ctx context.Context) {
	t.profiles.Restore(t.store.LoadProfile(ctx))
	t.journal.Restore(t.store.LoadLogs(ctx, t.journal.Location()))

	t.log.InfoContext(ctx, "state loaded",
		slog.Int("days", t.journal.Len()),
		slog.Bool("needs_setup", t.profiles.NeedsSetup()))
}

// Location returns the timezone that defines local days.
func (t *Tracker) Location() *time.Location {
	return t.journal.Location()
}

// Today returns the start of the current local day.
func (t *Tracker) Today() time.Time {
	return domain.StartOfDay(t.now(), t.journal.Location())
}

// SelectedDate returns the date journal operations apply to.
func (t *Tracker) SelectedDate() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selected
}

// SelectDate navigates to the day containing date. It does not create a
// DayLog or touch persistence. In-flight analyses for the previous day are
// superseded.
func (t *Tracker) SelectDate(date time.Time) time.Time {
	day := domain.StartOfDay(date, t.journal.Location())

	t.mu.Lock()
	defer t.mu.Unlock()
	if !day.Equal(t.selected) {
		t.selected = day
		t.dateGen++
	}
	return t.selected
}

// Day returns the view of the selected date.
func (t *Tracker) Day() DayView {
	date := t.SelectedDate()
	p := t.profiles.Profile()
	day := t.journal.Day(date)

	return DayView{
		Date:       date,
		Key:        t.journal.Key(date),
		Log:        day,
		Summary:    nutrition.Summarize(p, day),
		NeedsSetup: !p.IsComplete(),
	}
}

// AddFoods appends inputs to slot on the selected date.
func (t *Tracker) AddFoods(ctx context.Context, slot domain.MealSlot, inputs []domain.FoodInput) ([]domain.FoodItem, error) {
	items, err := t.journal.Append(ctx, t.SelectedDate(), slot, inputs)
	if err != nil {
		return nil, fmt.Errorf("tracker.AddFoods: %w", err)
	}
	if len(items) > 0 {
		t.saveLogs(ctx)
	}
	return items, nil
}

// AddManual appends one hand-entered food.
func (t *Tracker) AddManual(ctx context.Context, slot domain.MealSlot, entry ManualEntry) (domain.FoodItem, error) {
	if err := entry.Validate(); err != nil {
		return domain.FoodItem{}, err
	}
	items, err := t.AddFoods(ctx, slot, []domain.FoodInput{entry.FoodInput()})
	if err != nil {
		return domain.FoodItem{}, err
	}
	return items[0], nil
}

// UpdateFood replaces the item with the same ID in slot on the selected date.
// It reports whether the item existed.
func (t *Tracker) UpdateFood(ctx context.Context, slot domain.MealSlot, item domain.FoodItem) (bool, error) {
	ok, err := t.journal.Replace(ctx, t.SelectedDate(), slot, item)
	if err != nil {
		return false, fmt.Errorf("tracker.UpdateFood: %w", err)
	}
	if ok {
		t.saveLogs(ctx)
	}
	return ok, nil
}

// DeleteFood removes the item from slot on the selected date. It reports
// whether the item existed.
func (t *Tracker) DeleteFood(ctx context.Context, slot domain.MealSlot, id string) (bool, error) {
	ok, err := t.journal.Remove(ctx, t.SelectedDate(), slot, id)
	if err != nil {
		return false, fmt.Errorf("tracker.DeleteFood: %w", err)
	}
	if ok {
		t.saveLogs(ctx)
	}
	return ok, nil
}

func (t *Tracker) saveLogs(ctx context.Context) {
	t.persistMu.Lock()
	defer t.persistMu.Unlock()
	t.store.SaveLogs(ctx, t.journal.Snapshot())
}

func (t *Tracker) saveProfile(ctx context.Context) {
	t.persistMu.Lock()
	defer t.persistMu.Unlock()
	t.store.SaveProfile(ctx, t.profiles.Profile())
}
