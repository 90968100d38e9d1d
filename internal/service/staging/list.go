package staging

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// FoodPatch is a direct edit of a staged row. Nil fields are left
// unchanged. Editing grams here does not rescale.
type FoodPatch struct {
	Name     *string  `json:"name,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Grams    *float64 `json:"grams,omitempty"`
}

func (p FoodPatch) apply(f domain.FoodInput) domain.FoodInput {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Calories != nil {
		f.Calories = *p.Calories
	}
	if p.Protein != nil {
		f.Protein = *p.Protein
	}
	if p.Carbs != nil {
		f.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		f.Fat = *p.Fat
	}
	if p.Grams != nil {
		g := *p.Grams
		f.Grams = &g
	}
	return f
}

// List is the editable review list. Adding, removing or replacing rows bumps
// its generation so that async producers can detect that the list moved on.
type List struct {
	newID func() string

	mu    sync.Mutex
	gen   uint64
	items []domain.StagedItem
}

// NewList creates an empty review list. newID mints temporary row ids.
func NewList(newID func() string) *List {
	return &List{newID: newID}
}

// Generation returns the current generation token.
func (l *List) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// FromDishes flattens dishes into staged rows. Each ingredient keeps a
// frozen copy of itself as the rescale anchor.
func (l *List) FromDishes(dishes []domain.AnalyzedDish) []domain.StagedItem {
	var out []domain.StagedItem
	for _, d := range dishes {
		for _, ing := range d.Ingredients {
			ing = ing.Normalize()
			orig := ing.Clone()
			out = append(out, domain.StagedItem{
				ID:       l.newID(),
				DishName: d.DishName,
				Food:     ing.Clone(),
				Original: &orig,
			})
		}
	}
	return out
}

// Replace swaps the whole list for items.
func (l *List) Replace(items []domain.StagedItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = cloneItems(items)
	l.gen++
}

// ReplaceIf swaps the list only when gen is still current. It reports
// whether the swap happened.
func (l *List) ReplaceIf(gen uint64, items []domain.StagedItem) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.items = cloneItems(items)
	l.gen++
	return true
}

// Items returns a copy of the rows.
func (l *List) Items() []domain.StagedItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneItems(l.items)
}

// Len returns the number of rows.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// SetGrams changes a row's weight. Rows with an original reference are
// rescaled from it; other rows only get the new weight.
func (l *List) SetGrams(id string, grams float64) (domain.StagedItem, error) {
	if grams < 0 {
		return domain.StagedItem{}, domain.NewValidationError("grams", "must be >= 0")
	}

	return l.update(id, func(it *domain.StagedItem) {
		if it.Rescalable() {
			if scaled, ok := Rescale(*it.Original, grams); ok {
				scaled.Name = it.Food.Name
				it.Food = scaled
				return
			}
		}
		g := grams
		it.Food.Grams = &g
	})
}

// Edit applies a direct edit to a row. The original reference is kept.
func (l *List) Edit(id string, patch FoodPatch) (domain.StagedItem, error) {
	var verr error
	item, err := l.update(id, func(it *domain.StagedItem) {
		next := patch.apply(it.Food)
		if err := next.Validate(); err != nil {
			verr = err
			return
		}
		it.Food = next
	})
	if err != nil {
		return domain.StagedItem{}, err
	}
	if verr != nil {
		return domain.StagedItem{}, verr
	}
	return item, nil
}

// AddBlank appends an empty row without an original reference.
func (l *List) AddBlank() domain.StagedItem {
	it := domain.StagedItem{ID: l.newID()}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, it)
	l.gen++
	return it.Clone()
}

// Remove drops a row. It reports whether a row was removed.
func (l *List) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.items)
	l.items = slices.DeleteFunc(l.items, func(it domain.StagedItem) bool { return it.ID == id })
	if len(l.items) == n {
		return false
	}
	l.gen++
	return true
}

// Drain returns the rows as foods ready for insertion and empties the list.
// Rows with a blank name are skipped.
func (l *List) Drain() []domain.FoodInput {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.FoodInput, 0, len(l.items))
	for _, it := range l.items {
		f := it.Food.Normalize()
		if strings.TrimSpace(f.Name) == "" {
			continue
		}
		out = append(out, f.Clone())
	}
	l.items = nil
	l.gen++
	return out
}

// Clear empties the list.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.gen++
}

func (l *List) update(id string, fn func(*domain.StagedItem)) (domain.StagedItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.items, func(it domain.StagedItem) bool { return it.ID == id })
	if i < 0 {
		return domain.StagedItem{}, fmt.Errorf("staged item %s: %w", id, domain.ErrNotFound)
	}
	fn(&l.items[i])
	return l.items[i].Clone(), nil
}

func cloneItems(items []domain.StagedItem) []domain.StagedItem {
	out := make([]domain.StagedItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
