package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"banking-reports/internal/errors"
	"banking-reports/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "banking_reports",
		Name:      "panics_recovered_total",
		Help:      "Total number of handler panics recovered, by route",
	},
	[]string{"route"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. The panic
// value and stack are logged but never returned to the client.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				route := c.Path()
				panicsRecoveredTotal.WithLabelValues(route).Inc()

				req := c.Request()
				slog.ErrorContext(req.Context(), "panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprint(r),
					"route", route,
					"method", req.Method,
					"domain", c.Param("domain"),
					"report_type", c.Param("reportType"),
					"stack_trace", string(debug.Stack()),
				)

				if c.Response().Committed {
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
