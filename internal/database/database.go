package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the ledger connection shared by the report readers.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// ledgerModels lists the tables in dependency order.
var ledgerModels = []any{
	&models.Customer{},
	&models.Account{},
	&models.Transaction{},
	&models.Loan{},
	&models.LoanSnapshot{},
	&models.CashSnapshot{},
	&models.Employee{},
}

// rangeIndexes back the period filters of the report reads.
var rangeIndexes = map[string]string{
	"idx_accounts_status_type":         "accounts(status, account_type)",
	"idx_accounts_opened_at":           "accounts(opened_at)",
	"idx_transactions_occurred_at":     "transactions(occurred_at)",
	"idx_transactions_status_occurred": "transactions(status, occurred_at)",
	"idx_loans_status_type":            "loans(status, loan_type)",
	"idx_loans_disbursed_at":           "loans(disbursed_at)",
	"idx_loan_snapshots_loan_mob":      "loan_snapshots(loan_id, months_on_book)",
	"idx_customers_created_at":         "customers(created_at)",
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.SQLitePath)
	}
	return postgres.Open(cfg.DSN())
}

// New opens the ledger and checks that it answers.
func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gdb, err := gorm.Open(dialector(cfg), &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	open, idle := cfg.MaxConnections, cfg.MaxIdleConns
	if cfg.Driver == config.DriverSQLite {
		// sqlite serializes writers, and an in-memory ledger lives only as
		// long as its single connection
		open, idle = 1, 1
	}
	sqlDB.SetMaxOpenConns(open)
	sqlDB.SetMaxIdleConns(idle)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := &DB{DB: gdb, config: cfg}
	if err := db.HealthCheck(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates the ledger tables from the gorm models.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(ledgerModels...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	return db.HealthCheckContext(context.Background())
}

func (db *DB) HealthCheckContext(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the range indexes. Failures are logged and skipped.
func (db *DB) CreateIndexes(ctx context.Context) int {
	created := 0
	for name, target := range rangeIndexes {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s", name, target)
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			slog.WarnContext(ctx, "failed to create index", "index", name, "error", err)
			continue
		}
		created++
	}
	return created
}

// migrate brings the schema up to date. SQL migrations are postgres only,
// so sqlite ledgers and failed runs fall back to gorm's AutoMigrate.
func (db *DB) migrate(ctx context.Context) error {
	if db.config.Driver == config.DriverSQLite {
		return db.AutoMigrate()
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := NewMigrationRunner(sqlDB, db.config.MigrationsPath).Up(ctx); err != nil {
		slog.WarnContext(ctx, "migration runner failed, falling back to gorm auto-migrate", "error", err)
		return db.AutoMigrate()
	}
	return nil
}

// Initialize connects to the ledger and, when AutoMigrate is set, prepares
// its schema.
func Initialize(cfg *config.Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}
	if !cfg.Database.AutoMigrate {
		slog.Info("auto-migration disabled", "env", "AUTO_MIGRATE")
		return db, nil
	}

	ctx := context.Background()
	if err := db.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	indexes := db.CreateIndexes(ctx)

	slog.Info("database initialized", "driver", cfg.Database.Driver, "indexes", indexes)
	return db, nil
}
