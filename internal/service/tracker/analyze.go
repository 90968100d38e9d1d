package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/staging"
)

// generation identifies the state an analysis was started against.
type generation struct {
	date uint64
	run  uint64
	list uint64
}

// AnalyzeImage recognizes dishes in img and stages their ingredients.
func (t *Tracker) AnalyzeImage(ctx context.Context, img *domain.InlineImage) ([]domain.StagedItem, error) {
	if img == nil {
		return nil, domain.NewValidationError("image", "required")
	}
	items, err := t.analyze(ctx, domain.RecognizeInput{Image: img})
	if err != nil {
		return nil, fmt.Errorf("tracker.AnalyzeImage: %w", err)
	}
	return items, nil
}

// AnalyzeText recognizes dishes in a free-text description and stages
// their ingredients.
func (t *Tracker) AnalyzeText(ctx context.Context, text string) ([]domain.StagedItem, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("description", "required")
	}
	items, err := t.analyze(ctx, domain.RecognizeInput{Description: text})
	if err != nil {
		return nil, fmt.Errorf("tracker.AnalyzeText: %w", err)
	}
	return items, nil
}

// analyze runs one recognition. The result replaces the staging list only
// if the selected date, the list and the latest analysis are all unchanged
// since the call started; otherwise it is dropped with ErrSuperseded.
func (t *Tracker) analyze(ctx context.Context, in domain.RecognizeInput) ([]domain.StagedItem, error) {
	t.mu.Lock()
	t.runGen++
	gen := generation{date: t.dateGen, run: t.runGen, list: t.staged.Generation()}
	t.mu.Unlock()

	dishes, err := t.ai.Recognize(ctx, in)
	if err != nil {
		return nil, err
	}

	items := t.staged.FromDishes(dishes)

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen.date != t.dateGen || gen.run != t.runGen || !t.staged.ReplaceIf(gen.list, items) {
		t.log.InfoContext(ctx, "stale analysis dropped", slog.Int("dishes", len(dishes)))
		return nil, domain.ErrSuperseded
	}

	t.log.InfoContext(ctx, "analysis staged",
		slog.Int("dishes", len(dishes)),
		slog.Int("items", len(items)))
	return t.staged.Items(), nil
}

// Staged returns the review list.
func (t *Tracker) Staged() []domain.StagedItem {
	return t.staged.Items()
}

// SetStagedGrams changes a staged row's weight, rescaling from its original
// portion when it has one.
func (t *Tracker) SetStagedGrams(id string, grams float64) (domain.StagedItem, error) {
	return t.staged.SetGrams(id, grams)
}

// EditStaged applies a direct edit to a staged row.
func (t *Tracker) EditStaged(id string, patch staging.FoodPatch) (domain.StagedItem, error) {
	return t.staged.Edit(id, patch)
}

// AddBlankStaged appends an empty row for manual entry.
func (t *Tracker) AddBlankStaged() domain.StagedItem {
	return t.staged.AddBlank()
}

// RemoveStaged drops a staged row.
func (t *Tracker) RemoveStaged(id string) bool {
	return t.staged.Remove(id)
}

// DiscardStaged empties the review list.
func (t *Tracker) DiscardStaged() {
	t.staged.Clear()
}

// CommitStaged moves every named staged row into slot on the selected date
// and empties the list. The list is restored if the insert fails.
func (t *Tracker) CommitStaged(ctx context.Context, slot domain.MealSlot) ([]domain.FoodItem, error) {
	if !slot.IsValid() {
		return nil, domain.NewValidationError("slot", fmt.Sprintf("unknown meal slot %q", slot))
	}

	t.mu.Lock()
	snapshot := t.staged.Items()
	foods := t.staged.Drain()
	t.mu.Unlock()

	items, err := t.AddFoods(ctx, slot, foods)
	if err != nil {
		t.staged.Replace(snapshot)
		return nil, fmt.Errorf("tracker.CommitStaged: %w", err)
	}
	return items, nil
}
