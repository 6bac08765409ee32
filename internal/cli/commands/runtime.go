package commands

import (
	"fmt"

	"banking-reports/internal/config"
	"banking-reports/internal/database"
	"banking-reports/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

// Runtime carries what commands need to reach the ledger
type Runtime struct {
	Config     *config.Config
	PolicyFile string
	Connect    func(cfg *config.Config) (*database.DB, error)
}

func (rt *Runtime) connect() (*database.DB, error) {
	db, err := rt.Connect(rt.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ledger: %w", err)
	}
	return db, nil
}

// engine builds a report engine over db. A nil db gives an engine that can
// only answer catalog queries.
func (rt *Runtime) engine(db *database.DB) (*services.ReportEngine, error) {
	policy, err := config.LoadPolicy(rt.PolicyFile)
	if err != nil {
		return nil, err
	}

	var readers services.LedgerReaders
	if db != nil {
		readers = services.NewGormLedgerReaders(db.DB)
	}
	return services.NewReportEngine(readers, policy, rt.Config.Reports, prometheus.NewRegistry()), nil
}
