package database

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"messageboard/config"
)

//go:embed migrations
var migrations embed.FS

// Migrate applies the embedded forward migrations for the connection's dialect.
// Already-applied versions are skipped, so it is safe to run on every start.
func Migrate(ctx context.Context, db *DB) error {
	dialect, dir := "sqlite3", "migrations/sqlite"
	if db.Driver == config.DriverPostgres {
		dialect, dir = "postgres", "migrations/postgres"
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(logrus.StandardLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	logrus.WithField("dialect", dialect).Info("Database migration completed successfully")
	return nil
}
