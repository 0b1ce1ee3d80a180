package domain

// Keywords understood by the "show menu" request.
const (
	KeywordToday    = "today"
	KeywordTomorrow = "tomorrow"
	KeywordLatest   = "latest"
	KeywordRefetch  = "refetch"
)

// WeekdayKeywords maps weekday keywords to ISO 8601 weekday numbers.
var WeekdayKeywords = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
}

// KeywordAliases maps the German vocabulary of the bot onto the English keywords.
var KeywordAliases = map[string]string{
	"heute":      KeywordToday,
	"morgen":     KeywordTomorrow,
	"montag":     "monday",
	"dienstag":   "tuesday",
	"mittwoch":   "wednesday",
	"donnerstag": "thursday",
	"freitag":    "friday",
	"neu":        KeywordRefetch,
}

// DateLayout is the explicit date format users type, e.g. 24.12.2024.
const DateLayout = "02.01.2006"

// NoPrice is the price of rows without tier prices, e.g. side dishes.
const NoPrice = "-"

// PriceGroups are the tier tags in page order: students, staff, externals.
var PriceGroups = []string{"ST", "MA", "EX"}

// Currency is appended to each tier price.
const Currency = "€"

// DefaultTimezone is the civil timezone of the cafeteria.
const DefaultTimezone = "Europe/Berlin"
