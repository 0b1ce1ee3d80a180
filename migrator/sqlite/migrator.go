package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the schema of menus, meals and subscriptions, applied in file order.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings db up to the latest schema. Applied files are recorded by
// darwin and never run twice.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
