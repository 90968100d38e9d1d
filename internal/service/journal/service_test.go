package journal

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(opts ...Option) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(logger, time.UTC, opts...)
}

func seqIDs() Option {
	n := 0
	return WithIDFunc(func() string {
		n++
		return "id-" + strconv.Itoa(n)
	})
}

var june1 = time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

func food(name string, cal float64) domain.FoodInput {
	return domain.FoodInput{Name: name, Calories: cal, Protein: 1, Carbs: 2, Fat: 3}
}

func TestNewID_Format(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^\d+-[0-9a-z]{9}$`)
	now := time.UnixMilli(1717200000000)
	id := newIDAt(now)

	assert.Regexp(t, re, id)
	assert.Equal(t, "1717200000000-", id[:14])

	seen := make(map[string]bool)
	for range 1000 {
		id := NewID()
		require.Regexp(t, re, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestService_Day_UnseenIsNotMaterialized(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	d := svc.Day(june1)

	assert.Equal(t, 0, d.Len())
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d.Date)
	assert.NotNil(t, d.Meals.Breakfast)
	assert.Equal(t, 0, svc.Len())
}

func TestService_Append_CreatesExactlyOneDay(t *testing.T) {
	t.Parallel()

	svc := newTestService(seqIDs())
	ctx := context.Background()

	items, err := svc.Append(ctx, june1, domain.MealSlotLunch, []domain.FoodInput{food("a", 100), food("b", 200)})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "id-1", items[0].ID)
	assert.Equal(t, "id-2", items[1].ID)

	_, err = svc.Append(ctx, june1.Add(5*time.Hour), domain.MealSlotLunch, []domain.FoodInput{food("c", 50)})
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Len())
	lunch := svc.Day(june1).Meals.Lunch
	require.Len(t, lunch, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{lunch[0].Name, lunch[1].Name, lunch[2].Name})
}

func TestService_Append_RepeatedDuplicates(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()
	in := []domain.FoodInput{food("a", 100)}

	first, err := svc.Append(ctx, june1, domain.MealSlotSnacks, in)
	require.NoError(t, err)
	second, err := svc.Append(ctx, june1, domain.MealSlotSnacks, in)
	require.NoError(t, err)

	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.Len(t, svc.Day(june1).Meals.Snacks, 2)
}

func TestService_Append_InvalidSlot(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.Append(context.Background(), june1, domain.MealSlot("brunch"), []domain.FoodInput{food("a", 1)})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, svc.Len())
}

func TestService_Append_InvalidFood(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.Append(context.Background(), june1, domain.MealSlotLunch, []domain.FoodInput{{Name: "x", Calories: -5}})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, svc.Len())
}

func TestService_AppendThenRemoveRestoresSlot(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Append(ctx, june1, domain.MealSlotDinner, []domain.FoodInput{food("keep", 10)})
	require.NoError(t, err)
	before := svc.Day(june1).Meals.Dinner

	added, err := svc.Append(ctx, june1, domain.MealSlotDinner, []domain.FoodInput{food("x", 1), food("y", 2)})
	require.NoError(t, err)
	for _, it := range added {
		ok, err := svc.Remove(ctx, june1, domain.MealSlotDinner, it.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	assert.Equal(t, before, svc.Day(june1).Meals.Dinner)
}

func TestService_Replace(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	added, err := svc.Append(ctx, june1, domain.MealSlotBreakfast, []domain.FoodInput{food("a", 100), food("b", 200)})
	require.NoError(t, err)

	edited := added[1]
	edited.Calories = 250
	edited.Grams = domain.Ptr(80.0)
	ok, err := svc.Replace(ctx, june1, domain.MealSlotBreakfast, edited)
	require.NoError(t, err)
	assert.True(t, ok)

	got := svc.Day(june1).Meals.Breakfast
	require.Len(t, got, 2)
	assert.Equal(t, added[1].ID, got[1].ID)
	assert.Equal(t, 250.0, got[1].Calories)
	assert.Equal(t, 80.0, *got[1].Grams)
	assert.Equal(t, "a", got[0].Name)
}

func TestService_Replace_NotFoundIsNoop(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()

	ok, err := svc.Replace(ctx, june1, domain.MealSlotLunch, domain.FoodItem{ID: "missing"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, svc.Len())

	added, err := svc.Append(ctx, june1, domain.MealSlotLunch, []domain.FoodInput{food("a", 1)})
	require.NoError(t, err)

	ok, err = svc.Replace(ctx, june1, domain.MealSlotDinner, added[0])
	require.NoError(t, err)
	assert.False(t, ok, "item lives in another slot")
}

func TestService_Remove_NotFoundIsNoop(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ok, err := svc.Remove(context.Background(), june1, domain.MealSlotLunch, "missing")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_DayReturnsCopy(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.Append(context.Background(), june1, domain.MealSlotLunch, []domain.FoodInput{food("a", 1)})
	require.NoError(t, err)

	d := svc.Day(june1)
	d.Meals.Lunch[0].Name = "changed"

	assert.Equal(t, "a", svc.Day(june1).Meals.Lunch[0].Name)
}

func TestService_DatesAreIsolated(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.Append(context.Background(), june1, domain.MealSlotLunch, []domain.FoodInput{food("x", 500)})
	require.NoError(t, err)

	june2 := june1.AddDate(0, 0, 1)
	assert.Equal(t, 0, svc.Day(june2).Len())
	assert.Equal(t, 1, svc.Day(june1).Len())
}

func TestService_KeyUsesLocation(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loc := time.FixedZone("UTC+3", 3*3600)
	svc := NewService(logger, loc)

	assert.Equal(t, "2024-06-02", svc.Key(time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)))
}

func TestService_SnapshotRestore(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	_, err := svc.Append(context.Background(), june1, domain.MealSlotLunch, []domain.FoodInput{food("a", 1)})
	require.NoError(t, err)

	snap := svc.Snapshot()
	other := newTestService()
	other.Restore(snap)

	assert.Equal(t, svc.Day(june1), other.Day(june1))

	other.Restore(nil)
	assert.Equal(t, 0, other.Len())
}
