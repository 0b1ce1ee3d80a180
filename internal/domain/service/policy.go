package service

import (
	"fmt"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/dates"
	"github.com/mensabot/mensa-bot/internal/domain/entity"
)

// ChangeKind classifies a parsed day against the store.
type ChangeKind int

const (
	DayNew ChangeKind = iota + 1
	DayChanged
	DayUnchanged
)

func (k ChangeKind) String() string {
	switch k {
	case DayNew:
		return "new"
	case DayChanged:
		return "changed"
	case DayUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// DayChange is the outcome of reconciling one day. Menu is what gets stored.
type DayChange struct {
	Kind ChangeKind
	Menu entity.Menu
}

// Reconcile merges the menus parsed in one fetch cycle and compares each day
// against the stored menu returned by lookup.
//
// The first parsed menu of a day replaces whatever is stored; later menus for
// the same day in the same cycle append their meals. A day whose merged meals
// equal the stored ones is unchanged. Days are returned in first-seen order.
func Reconcile(parsed []entity.Menu, lookup func(day time.Time) (*entity.Menu, error)) ([]DayChange, error) {
	var merged []entity.Menu
	index := make(map[string]int)

	for _, menu := range parsed {
		key := dates.Short(menu.Day)
		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, menu.WithMeals(nil))
			continue
		}

		combined := merged[i].WithMeals(menu.Meals)
		if menu.LastUpdated.After(combined.LastUpdated) {
			combined.LastUpdated = menu.LastUpdated
		}
		merged[i] = combined
	}

	changes := make([]DayChange, 0, len(merged))
	for _, menu := range merged {
		stored, err := lookup(menu.Day)
		if err != nil {
			return nil, fmt.Errorf("failed to look up menu for %s: %w", dates.Short(menu.Day), err)
		}

		kind := DayChanged
		switch {
		case stored == nil:
			kind = DayNew
		case stored.SameMeals(menu):
			kind = DayUnchanged
		}
		changes = append(changes, DayChange{Kind: kind, Menu: menu})
	}

	return changes, nil
}

// HasNewData reports whether any day was inserted or changed.
func HasNewData(changes []DayChange) bool {
	for _, change := range changes {
		if change.Kind != DayUnchanged {
			return true
		}
	}
	return false
}
