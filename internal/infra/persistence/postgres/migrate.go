package postgres

import (
	"database/sql"
	"log/slog"

	"roster/config"
	"roster/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file:// migration source
)

// runMigrations applies pending schema migrations on startup. A missing
// migrations config skips the step, for deployments that migrate out of band.
func runMigrations(sqlDB *sql.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Migrations == nil || cfg.Migrations.Path == "" {
		logger.Debug("No migrations path configured, skipping schema migration")

		return nil
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.Migrations.Path, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrate instance")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to run migrations")
	}

	logger.Info("Schema migrations up to date", slog.String("path", cfg.Migrations.Path))

	return nil
}
