// Package parser extracts day menus from the cafeteria's menu page.
//
// The extraction depends on the markup of the source site: a div.mensa
// container holding one table per day, a "Weekday, dd.mm.yyyy" header cell,
// and rows whose first cell mixes a bold dish name with the tier prices.
package parser

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mensabot/mensa-bot/internal/domain"
	"github.com/mensabot/mensa-bot/internal/domain/dates"
	"github.com/mensabot/mensa-bot/internal/domain/entity"
	"github.com/mensabot/mensa-bot/internal/metrics"
)

const (
	containerSelector         = "div.mensa"
	secondaryLanguageSelector = "span.grau"
	dishNameSelector          = "strong"
	sideDishMarker            = "Beilagen:"
	iconTitleSuffix           = "Symbol"
	priceSeparator            = "|"
	priceTierJoin             = " / "
)

// RowError reports a meal row that could not be read. The row is skipped.
type RowError struct {
	Row    int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// TableError reports a day table whose date could not be read. The table is skipped.
type TableError struct {
	Table  int
	Header string
	Err    error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %d: header %q: %v", e.Table, e.Header, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// Report is the result of parsing one page.
type Report struct {
	Menus         []entity.Menu
	SkippedTables int
	SkippedRows   int
}

// Parser turns menu pages into Menus. It performs no I/O.
type Parser struct {
	logger *slog.Logger
	now    func() time.Time
}

// New creates a parser stamping menus with now().
func New(logger *slog.Logger, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{
		logger: logger,
		now:    now,
	}
}

// ParseMenus returns one Menu per readable day table, in page order.
func (p *Parser) ParseMenus(markup string) ([]entity.Menu, error) {
	report, err := p.Parse(markup)
	if err != nil {
		return nil, err
	}

	metrics.MenusParsedTotal.Add(float64(len(report.Menus)))
	metrics.RowsSkippedTotal.Add(float64(report.SkippedRows + report.SkippedTables))

	return report.Menus, nil
}

// Parse is ParseMenus plus counts of what had to be skipped. A page without a
// menu container yields no menus and no error.
func (p *Parser) Parse(markup string) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Report{}, fmt.Errorf("failed to read page: %w", err)
	}

	report := Report{Menus: []entity.Menu{}}

	container := doc.Find(containerSelector).First()
	if container.Length() == 0 {
		p.logger.Debug("Menu container not found on page", "selector", containerSelector)
		return report, nil
	}

	parsedAt := p.now()

	container.Find("table").Each(func(i int, table *goquery.Selection) {
		day, err := parseHeaderDate(i, table)
		if err != nil {
			p.logger.Warn("Skipping day table", "error", err)
			report.SkippedTables++
			return
		}

		meals := []entity.Meal{}
		table.Find("tbody").First().ChildrenFiltered("tr").Each(func(j int, row *goquery.Selection) {
			meal, err := parseRow(j, row)
			if err != nil {
				p.logger.Warn("Skipping meal row", "day", dates.Short(day), "error", err)
				report.SkippedRows++
				return
			}
			meals = append(meals, meal)
		})

		report.Menus = append(report.Menus, entity.NewMenu(day, parsedAt, meals))
	})

	return report, nil
}

func parseHeaderDate(index int, table *goquery.Selection) (time.Time, error) {
	header := collapse(table.Find("thead").First().Find("td, th").First().Text())

	_, datePart, found := strings.Cut(header, ",")
	if !found {
		return time.Time{}, &TableError{Table: index, Header: header, Err: fmt.Errorf("missing weekday separator")}
	}

	day, err := dates.ParseDate(datePart)
	if err != nil {
		return time.Time{}, &TableError{Table: index, Header: header, Err: err}
	}
	return day, nil
}

func parseRow(index int, row *goquery.Selection) (entity.Meal, error) {
	cells := row.ChildrenFiltered("td")
	if cells.Length() == 0 {
		return entity.Meal{}, &RowError{Row: index, Reason: "no cells"}
	}

	nameCell := cells.First()
	fullText := collapse(nameCell.Text())
	if strings.Contains(fullText, sideDishMarker) {
		return entity.Meal{Name: fullText, Price: domain.NoPrice}, nil
	}

	cell := nameCell.Clone()
	cell.Find(secondaryLanguageSelector).Remove()

	dish := cell.Find(dishNameSelector).First()
	if dish.Length() == 0 {
		return entity.Meal{}, &RowError{Row: index, Reason: "no dish name"}
	}
	name := collapse(dish.Text())
	if name == "" {
		return entity.Meal{}, &RowError{Row: index, Reason: "empty dish name"}
	}

	// Whatever is left of the cell once the name is gone is the price data.
	dish.Remove()
	price := formatPrice(cell.Text())

	if cells.Length() > 1 {
		if symbols := iconTitles(cells.Eq(1)); len(symbols) > 0 {
			name = fmt.Sprintf("%s (%s)", name, strings.Join(symbols, "/"))
		}
	}

	return entity.Meal{Name: name, Price: price}, nil
}

// formatPrice tags up to three tier prices with their group in page order.
func formatPrice(remainder string) string {
	var tiers []string
	for i, segment := range strings.Split(remainder, priceSeparator) {
		if i >= len(domain.PriceGroups) {
			break
		}
		amount := collapse(strings.TrimSuffix(collapse(segment), domain.Currency))
		if amount == "" {
			continue
		}
		tiers = append(tiers, fmt.Sprintf("%s: %s%s", domain.PriceGroups[i], amount, domain.Currency))
	}

	if len(tiers) == 0 {
		return domain.NoPrice
	}
	return strings.Join(tiers, priceTierJoin)
}

// iconTitles returns the deduplicated descriptive titles of the icon cell.
func iconTitles(cell *goquery.Selection) []string {
	var symbols []string
	cell.Find("img").Each(func(_ int, img *goquery.Selection) {
		title, ok := img.Attr("title")
		if !ok {
			return
		}
		symbol := collapse(strings.ReplaceAll(title, iconTitleSuffix, ""))
		if symbol == "" || slices.Contains(symbols, symbol) {
			return
		}
		symbols = append(symbols, symbol)
	})
	return symbols
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
