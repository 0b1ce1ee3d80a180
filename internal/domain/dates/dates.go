// Package dates resolves user keywords and explicit dates to calendar days
// and computes the wall-clock instants the bot acts on.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain"
)

// TimeOfDay is a wall-clock time in the cafeteria's timezone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay reads an HH:MM value.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time format %q. Use HH:MM (24-hour format)", value)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant of t on the calendar day of ref, in ref's location.
func (t TimeOfDay) On(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, ref.Location())
}

// Truncate drops the time of day. The result is midnight UTC of the calendar
// date t has in its own location, so days compare with Equal across zones.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Format renders a day as "Monday, 02.01.2006".
func Format(day time.Time) string {
	return day.Format("Monday, " + domain.DateLayout)
}

// Short renders a day as "02.01.2006".
func Short(day time.Time) string {
	return day.Format(domain.DateLayout)
}

// Normalize lowercases a keyword and maps aliases onto the English vocabulary.
func Normalize(keyword string) string {
	k := strings.ToLower(strings.TrimSpace(keyword))
	if alias, ok := domain.KeywordAliases[k]; ok {
		return alias
	}
	return k
}

// ResolveKeyword maps today, tomorrow and monday..friday to a calendar day.
// Weekday keywords always resolve into the following calendar week, even when
// the weekday is still ahead in the current one.
func ResolveKeyword(keyword string, today time.Time) (time.Time, bool) {
	day := Truncate(today)
	k := Normalize(keyword)

	switch k {
	case domain.KeywordToday:
		return day, true
	case domain.KeywordTomorrow:
		return day.AddDate(0, 0, 1), true
	}

	weekday, ok := domain.WeekdayKeywords[k]
	if !ok {
		return time.Time{}, false
	}
	return day.AddDate(0, 0, 7-isoWeekday(day)+weekday), true
}

// ParseDate reads an explicit dd.mm.yyyy date. Single digit day and month are accepted.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse("2.1.2006", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &domain.DateFormatError{Input: value}
	}
	return Truncate(t), nil
}

// ResolveNextAvailableDay returns the first of the ascending days that is not
// in the past. Today only qualifies while now is before the cutover.
func ResolveNextAvailableDay(days []time.Time, now time.Time, cutover TimeOfDay) (time.Time, bool) {
	today := Truncate(now)
	beforeCutover := now.Before(cutover.On(now))

	for _, d := range days {
		day := Truncate(d)
		if day.Before(today) {
			continue
		}
		if day.Equal(today) && !beforeCutover {
			continue
		}
		return day, true
	}
	return time.Time{}, false
}

// NextTrigger returns the next instant at which the wall clock in loc shows at,
// strictly after now. The arithmetic runs on civil dates so daylight saving
// changes keep the wall-clock time.
func NextTrigger(now time.Time, loc *time.Location, at TimeOfDay) time.Time {
	local := now.In(loc)
	next := at.On(local)
	if !next.After(local) {
		y, m, d := local.Date()
		next = time.Date(y, m, d+1, at.Hour, at.Minute, 0, 0, loc)
	}
	return next
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
