package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// run passes a request with the given incoming header through RequestID and
// returns the trace IDs seen on the echo context and the request context.
func (s *RequestIDTestSuite) run(header string) (*httptest.ResponseRecorder, string, string) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var fromEcho, fromRequest string
	handler := RequestID()(func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromRequest = TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec, fromEcho, fromRequest
}

func (s *RequestIDTestSuite) TestGeneratesTraceID() {
	rec, fromEcho, fromRequest := s.run("")

	_, err := uuid.Parse(fromEcho)
	s.NoError(err)
	s.Equal(fromEcho, fromRequest)
	s.Equal(fromEcho, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestKeepsWellFormedIncomingID() {
	rec, fromEcho, fromRequest := s.run("batch-2024.03_run7")

	s.Equal("batch-2024.03_run7", fromEcho)
	s.Equal("batch-2024.03_run7", fromRequest)
	s.Equal("batch-2024.03_run7", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesMalformedIncomingID() {
	testCases := []string{
		"has space",
		"line\nbreak",
		strings.Repeat("a", maxTraceIDLength+1),
		"ünïcode",
	}

	for _, incoming := range testCases {
		s.Run(incoming, func() {
			_, fromEcho, _ := s.run(incoming)

			s.NotEqual(incoming, fromEcho)
			_, err := uuid.Parse(fromEcho)
			s.NoError(err)
		})
	}
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.Empty(GetTraceID(c))
	s.Empty(TraceIDFromContext(context.Background()))
}

func (s *RequestIDTestSuite) TestTraceHandlerAddsAttribute() {
	var buf bytes.Buffer
	logger := slog.New(NewTraceHandler(slog.NewJSONHandler(&buf, nil))).With("component", "dispatcher")

	logger.ErrorContext(WithTraceID(context.Background(), "trace-123"), "failed to generate report")
	logger.Info("no trace")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Require().Len(lines, 2)

	var first, second map[string]any
	s.Require().NoError(json.Unmarshal([]byte(lines[0]), &first))
	s.Require().NoError(json.Unmarshal([]byte(lines[1]), &second))
	s.Equal("trace-123", first[TraceIDContextKey])
	s.Equal("dispatcher", first["component"])
	s.NotContains(second, TraceIDContextKey)
}
