package service

import (
	"testing"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday  = time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	parseAt = time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
)

func meals(names ...string) []entity.Meal {
	out := make([]entity.Meal, 0, len(names))
	for _, name := range names {
		out = append(out, entity.Meal{Name: name, Price: "ST: 2,00€"})
	}
	return out
}

func menuOf(day time.Time, names ...string) entity.Menu {
	return entity.NewMenu(day, parseAt, meals(names...))
}

func lookupFrom(stored ...entity.Menu) func(time.Time) (*entity.Menu, error) {
	return func(day time.Time) (*entity.Menu, error) {
		for _, m := range stored {
			if m.Day.Equal(day) {
				found := m
				return &found, nil
			}
		}
		return nil, nil
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name   string
		parsed []entity.Menu
		stored []entity.Menu
		want   []DayChange
	}{
		{
			name:   "Should insert a day that is not stored",
			parsed: []entity.Menu{menuOf(monday, "Nudeln")},
			want:   []DayChange{{Kind: DayNew, Menu: menuOf(monday, "Nudeln")}},
		},
		{
			name:   "Should overwrite a stored day instead of merging",
			parsed: []entity.Menu{menuOf(monday, "Pizza")},
			stored: []entity.Menu{menuOf(monday, "Nudeln", "Reis")},
			want:   []DayChange{{Kind: DayChanged, Menu: menuOf(monday, "Pizza")}},
		},
		{
			name:   "Should report a stored day with the same meals as unchanged",
			parsed: []entity.Menu{menuOf(monday, "Nudeln", "Reis")},
			stored: []entity.Menu{menuOf(monday, "Nudeln", "Reis")},
			want:   []DayChange{{Kind: DayUnchanged, Menu: menuOf(monday, "Nudeln", "Reis")}},
		},
		{
			name:   "Should treat a reordered menu as changed",
			parsed: []entity.Menu{menuOf(monday, "Reis", "Nudeln")},
			stored: []entity.Menu{menuOf(monday, "Nudeln", "Reis")},
			want:   []DayChange{{Kind: DayChanged, Menu: menuOf(monday, "Reis", "Nudeln")}},
		},
		{
			name:   "Should keep an empty day distinct from a missing one",
			parsed: []entity.Menu{menuOf(monday)},
			stored: []entity.Menu{menuOf(monday)},
			want:   []DayChange{{Kind: DayUnchanged, Menu: menuOf(monday)}},
		},
		{
			name:   "Should append later tables of the same day to a new day",
			parsed: []entity.Menu{menuOf(monday, "Nudeln"), menuOf(monday, "Salat", "Suppe")},
			want:   []DayChange{{Kind: DayNew, Menu: menuOf(monday, "Nudeln", "Salat", "Suppe")}},
		},
		{
			name:   "Should overwrite with the first table and append the second",
			parsed: []entity.Menu{menuOf(monday, "Pizza"), menuOf(monday, "Salat")},
			stored: []entity.Menu{menuOf(monday, "Nudeln", "Reis")},
			want:   []DayChange{{Kind: DayChanged, Menu: menuOf(monday, "Pizza", "Salat")}},
		},
		{
			name:   "Should keep first-seen day order",
			parsed: []entity.Menu{menuOf(tuesday, "Fisch"), menuOf(monday, "Nudeln"), menuOf(tuesday, "Reis")},
			stored: []entity.Menu{menuOf(monday, "Nudeln")},
			want: []DayChange{
				{Kind: DayNew, Menu: menuOf(tuesday, "Fisch", "Reis")},
				{Kind: DayUnchanged, Menu: menuOf(monday, "Nudeln")},
			},
		},
		{
			name: "Should return nothing for nothing parsed",
			want: []DayChange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconcile(tt.parsed, lookupFrom(tt.stored...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcile_MergeKeepsInputsIntact(t *testing.T) {
	first := menuOf(monday, "Nudeln")
	second := menuOf(monday, "Salat")
	second.LastUpdated = parseAt.Add(time.Minute)

	got, err := Reconcile([]entity.Menu{first, second}, lookupFrom())
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, meals("Nudeln", "Salat"), got[0].Menu.Meals)
	assert.Equal(t, parseAt.Add(time.Minute), got[0].Menu.LastUpdated)
	assert.Equal(t, meals("Nudeln"), first.Meals)
	assert.Equal(t, meals("Salat"), second.Meals)
}

func TestReconcile_LookupError(t *testing.T) {
	_, err := Reconcile([]entity.Menu{menuOf(monday, "Nudeln")}, func(time.Time) (*entity.Menu, error) {
		return nil, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestHasNewData(t *testing.T) {
	assert.False(t, HasNewData(nil))
	assert.False(t, HasNewData([]DayChange{{Kind: DayUnchanged}}))
	assert.True(t, HasNewData([]DayChange{{Kind: DayUnchanged}, {Kind: DayChanged}}))
	assert.True(t, HasNewData([]DayChange{{Kind: DayNew}}))
}
