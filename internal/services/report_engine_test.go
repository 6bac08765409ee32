package services

import (
	"context"
	"testing"
	"time"

	"banking-reports/internal/config"
	"banking-reports/internal/database"
	apperrors "banking-reports/internal/errors"
	"banking-reports/internal/models"
	"banking-reports/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// ReportEngineTestSuite runs the assembled engine against a seeded sqlite ledger.
type ReportEngineTestSuite struct {
	suite.Suite
	db       *database.DB
	registry *prometheus.Registry
	engine   *ReportEngine
	ctx      context.Context
	period   models.Period
}

func (s *ReportEngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())

	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	cfg := DefaultLedgerGeneratorConfig(end)
	cfg.Customers = 25
	cfg.TransactionsPerAccount = 8
	cfg.Employees = 5
	fixture := NewLedgerGenerator(21).Generate(cfg)
	s.Require().NoError(repositories.NewLedgerSeeder(s.db.DB).Seed(s.ctx, fixture))

	s.registry = prometheus.NewRegistry()
	s.engine = NewReportEngine(NewGormLedgerReaders(s.db.DB), config.DefaultPolicy(), config.ReportsConfig{
		RequestTimeout:     5 * time.Second,
		BreakerMaxFailures: 2,
	}, s.registry)
	s.period = models.Period{StartDate: cfg.Start, EndDate: end}
}

func (s *ReportEngineTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func TestReportEngineTestSuite(t *testing.T) {
	suite.Run(t, new(ReportEngineTestSuite))
}

func (s *ReportEngineTestSuite) request(domain models.Domain, reportType models.ReportType) models.ReportRequest {
	return models.ReportRequest{Domain: domain, ReportType: reportType, Period: s.period}
}

func (s *ReportEngineTestSuite) TestEveryReportSucceeds() {
	for _, entry := range s.engine.Dispatcher.Catalog() {
		for _, reportType := range entry.ReportTypes {
			s.Run(string(reportType), func() {
				envelope := s.engine.Dispatcher.Generate(s.ctx, s.request(entry.Domain, reportType))

				s.Require().True(envelope.Success, "%v", envelope.Error)
				s.NotNil(envelope.Data)
			})
		}
	}
}

func (s *ReportEngineTestSuite) TestBalanceSheetBalances() {
	doc, err := s.engine.Dispatcher.Dispatch(s.ctx, s.request(models.DomainFinancial, models.ReportBalanceSheet))
	s.Require().NoError(err)

	sheet, ok := doc.(*models.BalanceSheet)
	s.Require().True(ok)
	s.True(sheet.Assets.Total.IsPositive())
	s.True(sheet.Assets.Total.Equal(sheet.Liabilities.Total.Add(sheet.TotalEquity)))
}

func (s *ReportEngineTestSuite) TestMetricsRegistered() {
	s.engine.Dispatcher.Generate(s.ctx, s.request(models.DomainRisk, models.ReportCreditRisk))

	s.Equal(1, testutil.CollectAndCount(s.engine.Metrics.reportsGenerated))
	count, err := testutil.GatherAndCount(s.registry, "ledger_read_duration_seconds")
	s.Require().NoError(err)
	s.Positive(count)
}

func (s *ReportEngineTestSuite) TestLedgerOutageOpensBreaker() {
	s.Require().NoError(s.db.Close())
	req := s.request(models.DomainRisk, models.ReportCreditRisk)

	for i := 0; i < 2; i++ {
		envelope := s.engine.Dispatcher.Generate(s.ctx, req)
		s.False(envelope.Success)
		s.Equal(string(apperrors.ReportLedgerUnavailable), envelope.Error.Code)
	}

	s.True(s.engine.Breaker.IsOpen())
	s.Equal(float64(StateOpen), testutil.ToFloat64(s.engine.Metrics.circuitBreakerState.WithLabelValues(ledgerBreakerService)))

	_, err := s.engine.Dispatcher.Dispatch(s.ctx, req)
	s.ErrorIs(err, ErrLedgerUnavailable)
}
