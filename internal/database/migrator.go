package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"banking-reports/db/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// Readiness bounds how long a runner waits for the ledger to accept
// connections.
type Readiness struct {
	Attempts int
	Interval time.Duration
}

var DefaultReadiness = Readiness{Attempts: 30, Interval: 2 * time.Second}

// MigrationRunner applies the versioned ledger schema with golang-migrate.
// Scripts come from dir when set and from the embedded copy otherwise.
type MigrationRunner struct {
	db        *sql.DB
	dir       string
	readiness Readiness
}

func NewMigrationRunner(db *sql.DB, dir string) *MigrationRunner {
	return &MigrationRunner{db: db, dir: dir, readiness: DefaultReadiness}
}

// WithReadiness replaces the readiness policy used by Up
func (mr *MigrationRunner) WithReadiness(r Readiness) *MigrationRunner {
	mr.readiness = r
	return mr
}

// WaitForDatabase pings until the ledger answers, attempts run out or ctx ends.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	attempts := max(mr.readiness.Attempts, 1)
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = mr.db.PingContext(ctx); err == nil {
			return nil
		}
		slog.InfoContext(ctx, "ledger not ready", "attempt", attempt, "max_attempts", attempts, "error", err)
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.readiness.Interval):
		}
	}
	return fmt.Errorf("ledger not ready after %d attempts: %w", attempts, err)
}

func (mr *MigrationRunner) scripts() (fs.FS, error) {
	if mr.dir == "" {
		return migrations.FS, nil
	}
	info, err := os.Stat(mr.dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.dir)
	}
	return os.DirFS(mr.dir), nil
}

func (mr *MigrationRunner) open() (*migrate.Migrate, error) {
	scripts, err := mr.scripts()
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(scripts, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// Up waits for the ledger and applies every pending migration. A dirty
// version left by an interrupted run is forced clean first.
func (mr *MigrationRunner) Up(ctx context.Context) error {
	if err := mr.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	m, err := mr.open()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("failed to read migration version: %w", err)
	case dirty:
		slog.WarnContext(ctx, "ledger schema is dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.InfoContext(ctx, "ledger schema up to date", "version", version)
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	applied, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	slog.InfoContext(ctx, "applied migrations", "from", version, "to", applied)
	return nil
}

// Down rolls back steps migrations.
func (mr *MigrationRunner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	m, err := mr.open()
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

// Status returns the applied version, zero when nothing has been applied.
func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	m, err := mr.open()
	if err != nil {
		return 0, false, err
	}
	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
