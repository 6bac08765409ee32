package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"banking-reports/internal/config"
	"banking-reports/internal/errors"
	"banking-reports/internal/handlers"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const defaultClientIdleTTL = 3 * time.Minute

// RateLimitConfig configures per-client request throttling
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
	// IdleTTL is how long an unused client limiter is kept
	IdleTTL time.Duration
	// Skipper excludes requests such as health probes from throttling
	Skipper echomw.Skipper
	now     func() time.Time
}

// RateLimitConfigFrom builds a RateLimitConfig from the security settings
func RateLimitConfigFrom(cfg config.SecurityConfig) RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitPerSecond,
		Burst:             cfg.RateLimitBurst,
		IdleTTL:           defaultClientIdleTTL,
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters holds one token bucket per client IP. Idle clients are
// swept lazily while serving requests.
type clientLimiters struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

func newClientLimiters(cfg RateLimitConfig, now time.Time) *clientLimiters {
	return &clientLimiters{
		clients:   make(map[string]*client),
		limit:     rate.Limit(cfg.RequestsPerSecond),
		burst:     cfg.Burst,
		idleTTL:   cfg.IdleTTL,
		lastSweep: now,
	}
}

// reserve takes a token for key. When none is available it returns false and
// the wait until the next token.
func (l *clientLimiters) reserve(key string, now time.Time) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	cl, ok := l.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = cl
	}
	cl.lastSeen = now

	if cl.limiter.AllowN(now, 1) {
		return true, 0
	}
	r := cl.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return false, delay
}

func (l *clientLimiters) sweep(now time.Time) {
	for key, cl := range l.clients {
		if now.Sub(cl.lastSeen) > l.idleTTL {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

func (l *clientLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimiter throttles requests per client IP. Rejected requests get
// SYSTEM_006 with a Retry-After header.
func RateLimiter(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultClientIdleTTL
	}
	if cfg.Skipper == nil {
		cfg.Skipper = echomw.DefaultSkipper
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	limiters := newClientLimiters(cfg, cfg.now())

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper(c) {
				return next(c)
			}

			allowed, wait := limiters.reserve(c.RealIP(), cfg.now())
			if !allowed {
				seconds := int(math.Ceil(wait.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}
