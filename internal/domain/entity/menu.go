package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/dates"
)

const mealSeparator = "\n----------\n"

// Menu holds the meals served on one calendar day. Day carries no time
// component. A Menu with no meals is a parsed but empty day.
//
// Menu is used as a value: methods that change it return a copy and never
// touch the receiver's Meals.
type Menu struct {
	Day         time.Time `json:"day"`
	LastUpdated time.Time `json:"last_updated"`
	Meals       []Meal    `json:"meals"`
}

// NewMenu builds a Menu for the calendar date of day.
func NewMenu(day, lastUpdated time.Time, meals []Meal) Menu {
	if meals == nil {
		meals = []Meal{}
	}
	return Menu{
		Day:         dates.Truncate(day),
		LastUpdated: lastUpdated,
		Meals:       slices.Clone(meals),
	}
}

// WithMeals returns a copy of m with more appended after the existing meals.
func (m Menu) WithMeals(more []Meal) Menu {
	meals := make([]Meal, 0, len(m.Meals)+len(more))
	meals = append(meals, m.Meals...)
	meals = append(meals, more...)
	m.Meals = meals
	return m
}

// SameMeals reports whether both menus list the same meals in the same order.
func (m Menu) SameMeals(other Menu) bool {
	return slices.Equal(m.Meals, other.Meals)
}

// Equal compares day and meals. LastUpdated is bookkeeping and is ignored.
func (m Menu) Equal(other Menu) bool {
	return m.Day.Equal(other.Day) && m.SameMeals(other)
}

// Title is the heading used by every rendering of the menu.
func (m Menu) Title() string {
	return "Menu for " + dates.Format(m.Day)
}

// Text renders the plain text form.
func (m Menu) Text() string {
	var b strings.Builder
	b.WriteString(m.Title())
	b.WriteString(":")
	if len(m.Meals) == 0 {
		b.WriteString("\nNo meals listed.")
		return b.String()
	}
	for _, meal := range m.Meals {
		b.WriteString(mealSeparator)
		b.WriteString(meal.String())
	}
	return b.String()
}
