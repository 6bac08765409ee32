package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"banking-reports/internal/errors"
	"banking-reports/internal/models"
	"banking-reports/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ReportHandlerTestSuite is the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockDispatcher *service_mocks.MockReportDispatcherInterface
	e              *echo.Echo
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDispatcher = service_mocks.NewMockReportDispatcherInterface(s.ctrl)

	s.e = echo.New()
	s.e.Validator = NewValidator()
	NewReportHandler(s.mockDispatcher).RegisterRoutes(s.e.Group("/api/v1"))
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) serve(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *ReportHandlerTestSuite) decodeEnvelope(rec *httptest.ResponseRecorder) envelopeBody {
	var body envelopeBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ReportHandlerTestSuite) TestListReports() {
	s.mockDispatcher.EXPECT().Catalog().Return([]models.CatalogEntry{
		{Domain: models.DomainRisk, ReportTypes: []models.ReportType{models.ReportCreditRisk}},
	})

	rec := s.serve("/api/v1/reports")

	s.Equal(http.StatusOK, rec.Code)
	body := s.decodeEnvelope(rec)
	s.True(body.Success)
	s.JSONEq(`{"domains":[{"domain":"risk","report_types":["credit_risk"]}]}`, string(body.Data))
}

func (s *ReportHandlerTestSuite) TestGenerateReport_Success() {
	expected := models.ReportRequest{
		Domain:     models.DomainFinancial,
		ReportType: models.ReportBalanceSheet,
		Period: models.Period{
			StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		Filters: models.Filters{AccountType: models.AccountTypeSavings},
	}
	sheet := &models.BalanceSheet{ReportHeader: models.ReportHeader{
		Type:   models.ReportBalanceSheet,
		Domain: models.DomainFinancial,
		Period: expected.Period,
	}}
	s.mockDispatcher.EXPECT().Generate(gomock.Any(), expected).Return(models.SuccessEnvelope(sheet))

	rec := s.serve("/api/v1/reports/financial/balance_sheet?startDate=2024-01-01&endDate=2024-03-31&accountType=Savings")

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Header().Get(ErrorCodeHeader))
	body := s.decodeEnvelope(rec)
	s.True(body.Success)
	s.Nil(body.Error)
	s.Contains(string(body.Data), `"report_type":"balance_sheet"`)
}

func (s *ReportHandlerTestSuite) TestGenerateReport_FailureStatusFromCode() {
	testCases := []struct {
		code   errors.ErrorCode
		status int
	}{
		{errors.ReportUnsupported, http.StatusNotFound},
		{errors.ValidationInvalidPeriod, http.StatusBadRequest},
		{errors.ReportLedgerUnavailable, http.StatusServiceUnavailable},
		{errors.ReportTimeout, http.StatusGatewayTimeout},
		{errors.ReportGenerationFailed, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			message := errors.GetErrorMessage(tc.code)
			s.mockDispatcher.EXPECT().Generate(gomock.Any(), gomock.Any()).
				Return(models.FailureEnvelope(string(tc.code), message))

			rec := s.serve("/api/v1/reports/risk/credit_risk?startDate=2024-01-01&endDate=2024-03-31")

			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.code), rec.Header().Get(ErrorCodeHeader))
			body := s.decodeEnvelope(rec)
			s.False(body.Success)
			s.Equal(message, body.Error.Message)
			s.NotContains(rec.Body.String(), string(tc.code))
		})
	}
}

func (s *ReportHandlerTestSuite) TestGenerateReport_ValidationErrors() {
	testCases := []struct {
		name    string
		target  string
		details []string
	}{
		{
			name:    "missing dates",
			target:  "/api/v1/reports/risk/credit_risk",
			details: []string{"endDate: is required", "startDate: is required"},
		},
		{
			name:    "malformed date",
			target:  "/api/v1/reports/risk/credit_risk?startDate=01/01/2024&endDate=2024-03-31",
			details: []string{"startDate: must be a date in YYYY-MM-DD format"},
		},
		{
			name:    "unknown segment",
			target:  "/api/v1/reports/customer/retention?startDate=2024-01-01&endDate=2024-03-31&segment=vip",
			details: []string{"segment: must be one of: retail, premium, sme, corporate"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.serve(tc.target)

			s.Equal(http.StatusBadRequest, rec.Code)
			var response ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(string(errors.ValidationGeneral), response.Error.Code)
			s.Equal(tc.details, response.Error.Details)
		})
	}
}

func (s *ReportHandlerTestSuite) TestGetReportSummary() {
	summary := &models.ReportSummary{
		ReportType:      models.ReportLCR,
		KeyMetrics:      []models.KeyMetric{{Label: "LCR", Value: "120.00%"}},
		Highlights:      []string{},
		Recommendations: []string{},
	}
	s.mockDispatcher.EXPECT().Summary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ReportRequest) *models.ReportEnvelope {
			s.Equal(models.DomainRegulatory, req.Domain)
			s.Equal(models.ReportLCR, req.ReportType)
			return models.SuccessEnvelope(summary)
		})

	rec := s.serve("/api/v1/reports/regulatory/lcr/summary?startDate=2024-03-01&endDate=2024-03-31")

	s.Equal(http.StatusOK, rec.Code)
	body := s.decodeEnvelope(rec)
	s.True(body.Success)
	s.JSONEq(`{"report_type":"lcr","generated_at":"0001-01-01T00:00:00Z","key_metrics":[{"label":"LCR","value":"120.00%"}],"highlights":[],"recommendations":[]}`, string(body.Data))
}
