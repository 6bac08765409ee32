package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"banking-reports/internal/config"
	"banking-reports/internal/handlers"
	"banking-reports/internal/middleware"
	"banking-reports/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const defaultShutdownTimeout = 10 * time.Second

// Dependencies are the collaborators the HTTP layer is built on
type Dependencies struct {
	DB         *gorm.DB
	Dispatcher services.ReportDispatcherInterface
	Breaker    services.CircuitBreakerInterface
	Gatherer   prometheus.Gatherer
}

// WebAPI serves the report API, health and metrics endpoints
type WebAPI struct {
	echo            *echo.Echo
	server          *http.Server
	shutdownTimeout time.Duration
}

// NewWebAPI builds the echo instance with the middleware chain and routes
func NewWebAPI(cfg *config.Config, deps Dependencies) *WebAPI {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	unthrottled := func(c echo.Context) bool {
		return c.Path() == "/health" || c.Path() == "/metrics"
	}
	rateLimit := middleware.RateLimitConfigFrom(cfg.Security)
	rateLimit.Skipper = unthrottled

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		ExposeHeaders: []string{middleware.TraceIDHeader, handlers.ErrorCodeHeader, "Retry-After"},
	}))
	e.Use(middleware.RateLimiter(rateLimit))

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e.GET("/health", handlers.NewHealthCheckHandler(deps.DB, deps.Breaker).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")
	handlers.NewReportHandler(deps.Dispatcher).RegisterRoutes(api)

	return &WebAPI{
		echo: e,
		server: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:      e,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		shutdownTimeout: defaultShutdownTimeout,
	}
}

// Handler exposes the router, mainly for tests
func (w *WebAPI) Handler() http.Handler {
	return w.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (w *WebAPI) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", w.server.Addr)
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		if err := w.server.Shutdown(shutdownCtx); err != nil {
			_ = w.server.Close()
			return err
		}
		return nil
	}
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			} else if v.Status >= http.StatusBadRequest {
				level = slog.LevelWarn
			}
			slog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
