package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/contract"
	"github.com/mensabot/mensa-bot/internal/domain/dates"
	"github.com/mensabot/mensa-bot/internal/domain/entity"
)

type menuRepository struct {
	db dbConn
}

func newMenuRepository(db dbConn) contract.MenuRepo {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetByDay(ctx context.Context, day time.Time) (*entity.Menu, error) {
	query := `
		SELECT day, last_updated
		FROM menus
		WHERE day = ?
	`

	return r.getMenu(ctx, query, formatDay(day))
}

func (r *menuRepository) ListLatest(ctx context.Context) (*entity.Menu, error) {
	query := `
		SELECT day, last_updated
		FROM menus
		ORDER BY last_updated DESC, day DESC
		LIMIT 1
	`

	return r.getMenu(ctx, query)
}

func (r *menuRepository) getMenu(ctx context.Context, query string, args ...any) (*entity.Menu, error) {
	var (
		day         string
		lastUpdated time.Time
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&day, &lastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	parsed, err := parseDay(day)
	if err != nil {
		return nil, err
	}

	meals, err := r.getMeals(ctx, day)
	if err != nil {
		return nil, err
	}

	menu := entity.NewMenu(parsed, lastUpdated.UTC(), meals)
	return &menu, nil
}

func (r *menuRepository) getMeals(ctx context.Context, day string) ([]entity.Meal, error) {
	query := `
		SELECT name, price
		FROM meals
		WHERE menu_day = ?
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get meals: %w", err)
	}
	defer rows.Close()

	meals := []entity.Meal{}
	for rows.Next() {
		var meal entity.Meal
		if err := rows.Scan(&meal.Name, &meal.Price); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meals: %w", err)
	}

	return meals, nil
}

// Upsert replaces the stored meals of menu.Day with menu.Meals and stamps
// menu.LastUpdated. Callers run it inside a transaction.
func (r *menuRepository) Upsert(ctx context.Context, menu entity.Menu) (bool, error) {
	day := formatDay(menu.Day)

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM menus WHERE day = ?`, day).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check menu: %w", err)
	}
	isNew := count == 0

	if isNew {
		query := `
			INSERT INTO menus (day, last_updated)
			VALUES (?, ?)
		`
		if _, err := r.db.ExecContext(ctx, query, day, menu.LastUpdated.UTC()); err != nil {
			return false, fmt.Errorf("failed to create menu: %w", err)
		}
	} else {
		query := `
			UPDATE menus SET last_updated = ?
			WHERE day = ?
		`
		if _, err := r.db.ExecContext(ctx, query, menu.LastUpdated.UTC(), day); err != nil {
			return false, fmt.Errorf("failed to update menu: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE menu_day = ?`, day); err != nil {
			return false, fmt.Errorf("failed to clear meals: %w", err)
		}
	}

	if len(menu.Meals) == 0 {
		return isNew, nil
	}

	stmt, err := r.db.PrepareContext(ctx, `
		INSERT INTO meals (menu_day, position, name, price)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return false, fmt.Errorf("failed to prepare meal insert: %w", err)
	}
	defer stmt.Close()

	for i, meal := range menu.Meals {
		if _, err := stmt.ExecContext(ctx, day, i, meal.Name, meal.Price); err != nil {
			return false, fmt.Errorf("failed to insert meal: %w", err)
		}
	}

	return isNew, nil
}

func (r *menuRepository) ListDaysAscending(ctx context.Context) ([]time.Time, error) {
	query := `
		SELECT day
		FROM menus
		ORDER BY day ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		parsed, err := parseDay(day)
		if err != nil {
			return nil, err
		}
		days = append(days, parsed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate days: %w", err)
	}

	return days, nil
}

func formatDay(day time.Time) string {
	return dates.Truncate(day).Format(dayLayout)
}

func parseDay(value string) (time.Time, error) {
	day, err := time.Parse(dayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored day %q: %w", value, err)
	}
	return day, nil
}
