package handlers

import (
	"banking-reports/internal/errors"
	"banking-reports/internal/validation"

	"github.com/labstack/echo/v4"
)

// Report endpoints answer with a models.ReportEnvelope whose HTTP status is
// derived from the failure code. Problems caught before dispatch, such as
// binding and validation failures, answer with errors.ErrorResponse instead.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	// ErrorCodeHeader carries the API error code of a failed envelope
	ErrorCodeHeader = "X-Error-Code"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// NewValidator returns the shared report query validator for echo binding
func NewValidator() echo.Validator {
	return validation.GetValidator()
}
