package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"banking-reports/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Use(RequestID(), PanicRecovery())
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestRecoversAndReportsSystemError() {
	s.echo.GET("/api/v1/reports/:domain/:reportType", func(c echo.Context) error {
		panic("nil ledger")
	})
	before := testutil.ToFloat64(panicsRecoveredTotal.WithLabelValues("/api/v1/reports/:domain/:reportType"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/risk/credit_risk", nil)
	req.Header.Set(TraceIDHeader, "panic-trace")
	rec := httptest.NewRecorder()

	s.NotPanics(func() { s.echo.ServeHTTP(rec, req) })

	s.Equal(http.StatusInternalServerError, rec.Code)
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	s.Equal("panic-trace", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "nil ledger")

	after := testutil.ToFloat64(panicsRecoveredTotal.WithLabelValues("/api/v1/reports/:domain/:reportType"))
	s.Equal(before+1, after)
}

func (s *PanicRecoveryTestSuite) TestPanicWithError() {
	s.echo.GET("/boom", func(c echo.Context) error {
		panic(stderrors.New("ledger reader closed"))
	})

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsLeftAlone() {
	s.echo.GET("/partial", func(c echo.Context) error {
		if err := c.String(http.StatusOK, "partial"); err != nil {
			return err
		}
		panic("after write")
	})

	rec := httptest.NewRecorder()
	s.NotPanics(func() { s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partial", nil)) })

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestNoPanicPassesThrough() {
	s.echo.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestAbortHandlerIsRepanicked() {
	handler := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.PanicsWithValue(http.ErrAbortHandler, func() { _ = handler(c) })
}
