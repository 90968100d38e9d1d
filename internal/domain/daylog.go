package domain

import "time"

// DateKeyLayout is the LogIndex key format.
const DateKeyLayout = "2006-01-02"

// Meals holds one ordered item sequence per slot.
type Meals struct {
	Breakfast []FoodItem `json:"breakfast"`
	Lunch     []FoodItem `json:"lunch"`
	Dinner    []FoodItem `json:"dinner"`
	Snacks    []FoodItem `json:"snacks"`
}

// Slot returns a pointer to the sequence for s, or nil for an unknown slot.
func (m *Meals) Slot(s MealSlot) *[]FoodItem {
	switch s {
	case MealSlotBreakfast:
		return &m.Breakfast
	case MealSlotLunch:
		return &m.Lunch
	case MealSlotDinner:
		return &m.Dinner
	case MealSlotSnacks:
		return &m.Snacks
	}
	return nil
}

// DayLog is the record of one calendar day's eaten items.
type DayLog struct {
	Date  time.Time `json:"date"`
	Meals Meals     `json:"meals"`
}

// NewDayLog returns an empty DayLog for date with non-nil slot sequences.
func NewDayLog(date time.Time) DayLog {
	return DayLog{
		Date: date,
		Meals: Meals{
			Breakfast: []FoodItem{},
			Lunch:     []FoodItem{},
			Dinner:    []FoodItem{},
			Snacks:    []FoodItem{},
		},
	}
}

// Items returns the items of slot s, or nil for an unknown slot.
func (d DayLog) Items(s MealSlot) []FoodItem {
	p := d.Meals.Slot(s)
	if p == nil {
		return nil
	}
	return *p
}

// Len returns the total number of items across all slots.
func (d DayLog) Len() int {
	return len(d.Meals.Breakfast) + len(d.Meals.Lunch) + len(d.Meals.Dinner) + len(d.Meals.Snacks)
}

// Clone returns a deep copy of d. Nil sequences become empty ones.
func (d DayLog) Clone() DayLog {
	out := NewDayLog(d.Date)
	for _, s := range MealSlots {
		src := d.Items(s)
		dst := make([]FoodItem, len(src))
		for i, it := range src {
			dst[i] = it.Clone()
		}
		*out.Meals.Slot(s) = dst
	}
	return out
}

// LogIndex maps a date key to the DayLog of that day. Missing keys are
// empty days.
type LogIndex map[string]DayLog

// Clone returns a deep copy of idx.
func (idx LogIndex) Clone() LogIndex {
	out := make(LogIndex, len(idx))
	for k, v := range idx {
		out[k] = v.Clone()
	}
	return out
}

// DateKey formats the calendar day of t in loc as YYYY-MM-DD.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateKeyLayout)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, NewValidationError("date", "must be YYYY-MM-DD")
	}
	return t, nil
}
