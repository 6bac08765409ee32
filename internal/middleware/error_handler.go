package middleware

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"banking-reports/internal/errors"
	"banking-reports/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "banking_reports",
		Name:      "api_errors_total",
		Help:      "API errors answered by the error handler, by code, route and status",
	},
	[]string{"code", "route", "status"},
)

// statusCodes maps statuses raised by echo itself (routing, binding,
// middleware) onto API error codes.
var statusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:          errors.ValidationGeneral,
	http.StatusMethodNotAllowed:    errors.ValidationGeneral,
	http.StatusUnprocessableEntity: errors.ValidationGeneral,
	http.StatusNotFound:            errors.ReportUnsupported,
	http.StatusTooManyRequests:     errors.SystemRateLimitExceeded,
	http.StatusInternalServerError: errors.SystemInternalError,
	http.StatusServiceUnavailable:  errors.SystemServiceUnavailable,
	http.StatusGatewayTimeout:      errors.ReportTimeout,
}

func codeForStatus(status int) errors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}

// errorResponseFor turns err into the response body and status sent back to
// the client.
func errorResponseFor(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		response := errors.NewErrorResponse(codeForStatus(httpErr.Code), traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)))
		return response, httpErr.Code
	}

	if fields := validation.FieldMessages(err); fields != nil {
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		response := errors.NewErrorResponse(errors.ReportTimeout, traceID)
		return response, response.GetHTTPStatus()
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

// CustomHTTPErrorHandler answers every error that escapes a handler with an
// errors.ErrorResponse. Responses that were already written are left alone.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}
	response, status := errorResponseFor(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	ctx := c.Request().Context()
	slog.Log(ctx, level, "request failed",
		"error_code", response.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)
	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, response)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to write error response", "error", err)
	}
}
