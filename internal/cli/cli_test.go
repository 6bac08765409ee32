package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"banking-reports/internal/config"

	"github.com/stretchr/testify/suite"
)

type CLITestSuite struct {
	suite.Suite
	cfg    *config.Config
	output *bytes.Buffer
}

func (s *CLITestSuite) SetupTest() {
	s.cfg = &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			SQLitePath:     filepath.Join(s.T().TempDir(), "ledger.db"),
			MaxConnections: 1,
			MaxIdleConns:   1,
			AutoMigrate:    true,
		},
		Reports: config.ReportsConfig{RequestTimeout: 10 * time.Second},
	}
	s.output = &bytes.Buffer{}
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) run(args ...string) error {
	s.output.Reset()
	return NewCLI(Options{Config: s.cfg, Output: s.output}).Execute(context.Background(), args)
}

func (s *CLITestSuite) seed() {
	s.Require().NoError(s.run("seed", "--customers", "20", "--transactions-per-account", "6",
		"--employees", "4", "--end", "2024-03-31", "--seed", "99"))
}

func (s *CLITestSuite) TestCatalog() {
	s.Require().NoError(s.run("catalog"))

	s.Contains(s.output.String(), "financial:\n")
	s.Contains(s.output.String(), "  balance_sheet\n")
	s.Contains(s.output.String(), "  vintage_analysis\n")
}

func (s *CLITestSuite) TestCatalog_JSON() {
	s.Require().NoError(s.run("catalog", "--format", "json"))

	var entries []map[string]any
	s.Require().NoError(json.Unmarshal(s.output.Bytes(), &entries))
	s.Len(entries, 4)
}

func (s *CLITestSuite) TestSeed() {
	s.seed()

	s.Contains(s.output.String(), "seeded ledger 2023-03-31 to 2024-03-31: 20 customers")
}

func (s *CLITestSuite) TestGenerate() {
	s.seed()

	s.Require().NoError(s.run("generate", "--domain", "financial", "--type", "balance_sheet",
		"--start", "2024-01-01", "--end", "2024-03-31"))

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(s.output.Bytes(), &envelope))
	s.True(envelope.Success)
	s.Equal("balance_sheet", envelope.Data["report_type"])
}

func (s *CLITestSuite) TestGenerate_UnsupportedReport() {
	err := s.run("generate", "--domain", "risk", "--type", "stress_test",
		"--start", "2024-01-01", "--end", "2024-03-31")

	s.Require().Error(err)
	s.Contains(err.Error(), "REPORT_001")
	s.Contains(s.output.String(), `"success": false`)
}

func (s *CLITestSuite) TestGenerate_InvalidFlags() {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "missing required flags",
			args:     []string{"generate", "--domain", "risk"},
			contains: "required flag(s)",
		},
		{
			name:     "malformed date",
			args:     []string{"generate", "--domain", "risk", "--type", "credit_risk", "--start", "2024/01/01", "--end", "2024-03-31"},
			contains: "startDate must be a date in YYYY-MM-DD format",
		},
		{
			name:     "unknown segment",
			args:     []string{"generate", "--domain", "customer", "--type", "retention", "--start", "2024-01-01", "--end", "2024-03-31", "--segment", "vip"},
			contains: "segment must be one of",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.run(tc.args...)

			s.Require().Error(err)
			s.Contains(err.Error(), tc.contains)
		})
	}
}

func (s *CLITestSuite) TestSummarize_Text() {
	s.seed()

	s.Require().NoError(s.run("summarize", "--domain", "regulatory", "--type", "lcr",
		"--start", "2024-03-01", "--end", "2024-03-31"))

	s.Contains(s.output.String(), "lcr (generated ")
	s.Contains(s.output.String(), "LCR")
}

func (s *CLITestSuite) TestSummarize_JSON() {
	s.seed()

	s.Require().NoError(s.run("summarize", "--domain", "risk", "--type", "credit_risk",
		"--start", "2024-01-01", "--end", "2024-03-31", "--format", "json"))

	s.Contains(s.output.String(), `"key_metrics"`)
}

func (s *CLITestSuite) TestSummarize_UnknownFormat() {
	err := s.run("summarize", "--domain", "risk", "--type", "credit_risk",
		"--start", "2024-01-01", "--end", "2024-03-31", "--format", "xml")

	s.Require().Error(err)
	s.Contains(err.Error(), `unsupported format "xml"`)
}

func (s *CLITestSuite) TestPolicyFileOverride() {
	policy := filepath.Join(s.T().TempDir(), "policy.yaml")
	s.Require().NoError(os.WriteFile(policy, []byte("not: [valid"), 0o600))

	err := s.run("--policy", policy, "catalog")

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to read policy file")
}

func (s *CLITestSuite) TestSeed_InvalidArguments() {
	testCases := []struct {
		args     []string
		contains string
	}{
		{[]string{"seed", "--end", "31-03-2024"}, "invalid --end"},
		{[]string{"seed", "--months", "0"}, "--months must be positive"},
		{[]string{"seed", "--loan-rate", "1.5"}, "--loan-rate must be between 0 and 1"},
	}

	for _, tc := range testCases {
		s.Run(tc.contains, func() {
			err := s.run(tc.args...)

			s.Require().Error(err)
			s.Contains(err.Error(), tc.contains)
		})
	}
}

func (s *CLITestSuite) TestMigrateDown_InvalidSteps() {
	err := s.run("migrate", "down", "two")

	s.Require().Error(err)
	s.Contains(err.Error(), `steps must be a positive integer, got "two"`)
}
