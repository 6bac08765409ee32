package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"banking-reports/internal/config"
	"banking-reports/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RateLimiterTestSuite struct {
	suite.Suite
	echo *echo.Echo
	now  time.Time
}

func (s *RateLimiterTestSuite) SetupTest() {
	s.echo = echo.New()
	s.now = time.Date(2024, time.March, 31, 9, 0, 0, 0, time.UTC)
}

func TestRateLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) clock() time.Time {
	return s.now
}

func (s *RateLimiterTestSuite) handler(cfg RateLimitConfig) echo.HandlerFunc {
	cfg.now = s.clock
	return RateLimiter(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func (s *RateLimiterTestSuite) call(h echo.HandlerFunc, ip, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":40000"
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath(path)
	s.Require().NoError(h(c))
	return rec
}

func (s *RateLimiterTestSuite) TestBurstThenReject() {
	h := s.handler(RateLimitConfig{RequestsPerSecond: 2, Burst: 3})

	for i := 0; i < 3; i++ {
		s.Equal(http.StatusOK, s.call(h, "10.0.0.1", "/api/v1/reports").Code)
	}
	rec := s.call(h, "10.0.0.1", "/api/v1/reports")

	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("1", rec.Header().Get("Retry-After"))
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.SystemRateLimitExceeded), response.Error.Code)
}

func (s *RateLimiterTestSuite) TestTokensRefill() {
	h := s.handler(RateLimitConfig{RequestsPerSecond: 1, Burst: 1})

	s.Equal(http.StatusOK, s.call(h, "10.0.0.1", "/").Code)
	s.Equal(http.StatusTooManyRequests, s.call(h, "10.0.0.1", "/").Code)

	s.now = s.now.Add(time.Second)
	s.Equal(http.StatusOK, s.call(h, "10.0.0.1", "/").Code)
}

func (s *RateLimiterTestSuite) TestRetryAfterRoundsUp() {
	h := s.handler(RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	s.call(h, "10.0.0.1", "/")

	// Rejected requests do not consume tokens
	for i := 0; i < 3; i++ {
		rec := s.call(h, "10.0.0.1", "/")
		s.Equal("1", rec.Header().Get("Retry-After"))
	}
}

func (s *RateLimiterTestSuite) TestClientsAreIndependent() {
	h := s.handler(RateLimitConfig{RequestsPerSecond: 1, Burst: 1})

	s.Equal(http.StatusOK, s.call(h, "10.0.0.1", "/").Code)
	s.Equal(http.StatusTooManyRequests, s.call(h, "10.0.0.1", "/").Code)
	s.Equal(http.StatusOK, s.call(h, "10.0.0.2", "/").Code)
}

func (s *RateLimiterTestSuite) TestSkipper() {
	h := s.handler(RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             1,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
	})

	for i := 0; i < 5; i++ {
		s.Equal(http.StatusOK, s.call(h, "10.0.0.1", "/health").Code)
	}
	s.Equal(http.StatusOK, s.call(h, "10.0.0.1", "/api/v1/reports").Code)
}

func (s *RateLimiterTestSuite) TestIdleClientsAreSwept() {
	limiters := newClientLimiters(RateLimitConfig{RequestsPerSecond: 1, Burst: 1, IdleTTL: time.Minute}, s.now)

	limiters.reserve("10.0.0.1", s.now)
	limiters.reserve("10.0.0.2", s.now.Add(50*time.Second))
	s.Equal(2, limiters.size())

	limiters.reserve("10.0.0.3", s.now.Add(70*time.Second))

	s.Equal(2, limiters.size())
	_, exists := limiters.clients["10.0.0.1"]
	s.False(exists)
}

func (s *RateLimiterTestSuite) TestDefaults() {
	h := s.handler(RateLimitConfig{})

	for i := 0; i < 10; i++ {
		s.Equal(http.StatusOK, s.call(h, "10.0.0.9", "/").Code)
	}
	s.Equal(http.StatusTooManyRequests, s.call(h, "10.0.0.9", "/").Code)
}

func (s *RateLimiterTestSuite) TestRateLimitConfigFrom() {
	cfg := RateLimitConfigFrom(config.SecurityConfig{RateLimitPerSecond: 7, RateLimitBurst: 14})

	s.Equal(7, cfg.RequestsPerSecond)
	s.Equal(14, cfg.Burst)
	s.Equal(defaultClientIdleTTL, cfg.IdleTTL)
}
