package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies the embedded collection schema migrations that have not run yet
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate collections schema: %w", err)
	}
	return nil
}
