package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"banking-reports/internal/config"
	"banking-reports/internal/database"
	"banking-reports/internal/middleware"
	"banking-reports/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type WebAPITestSuite struct {
	suite.Suite
	db      *database.DB
	handler http.Handler
}

func (s *WebAPITestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:             "127.0.0.1",
			Port:             "0",
			Environment:      "test",
			CORSAllowOrigins: []string{"https://reports.example.com"},
		},
		Security: config.SecurityConfig{RateLimitPerSecond: 2, RateLimitBurst: 2},
		Reports:  config.ReportsConfig{RequestTimeout: 5 * time.Second},
	}

	registry := prometheus.NewRegistry()
	engine := services.NewReportEngine(services.NewGormLedgerReaders(s.db.DB), config.DefaultPolicy(), cfg.Reports, registry)

	s.handler = NewWebAPI(cfg, Dependencies{
		DB:         s.db.DB,
		Dispatcher: engine.Dispatcher,
		Breaker:    engine.Breaker,
		Gatherer:   registry,
	}).Handler()
}

func (s *WebAPITestSuite) TearDownTest() {
	_ = s.db.Close()
}

func TestWebAPITestSuite(t *testing.T) {
	suite.Run(t, new(WebAPITestSuite))
}

func (s *WebAPITestSuite) get(target, remoteIP string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = remoteIP + ":51000"
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *WebAPITestSuite) TestHealth() {
	rec := s.get("/health", "10.1.0.1")

	s.Equal(http.StatusOK, rec.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
	s.Equal("closed", body["ledgerCircuit"])
}

func (s *WebAPITestSuite) TestReportOnEmptyLedger() {
	rec := s.get("/api/v1/reports/financial/income_statement?startDate=2024-01-01&endDate=2024-03-31", "10.1.0.2")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("no-store, private", rec.Header().Get("Cache-Control"))
	s.Contains(rec.Body.String(), `"success":true`)
}

func (s *WebAPITestSuite) TestUnknownRouteUsesErrorHandler() {
	rec := s.get("/api/v1/unknown", "10.1.0.3")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "REPORT_001")
}

func (s *WebAPITestSuite) TestMetricsExposeReportCollectors() {
	s.get("/api/v1/reports/risk/npl_analysis?startDate=2024-01-01&endDate=2024-03-31", "10.1.0.4")

	rec := s.get("/metrics", "10.1.0.4")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "reports_generated_total")
}

func (s *WebAPITestSuite) TestRateLimitSkipsHealth() {
	for i := 0; i < 5; i++ {
		s.Equal(http.StatusOK, s.get("/health", "10.1.0.5").Code)
	}

	codes := []int{}
	for i := 0; i < 3; i++ {
		codes = append(codes, s.get("/api/v1/reports", "10.1.0.5").Code)
	}
	s.Equal([]int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func (s *WebAPITestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/reports", nil)
	req.Header.Set("Origin", "https://reports.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("https://reports.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
