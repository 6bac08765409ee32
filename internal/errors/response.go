package errors

import (
	"net/http"
	"sort"
)

// ErrorResponse is the body returned for failures caught before a report is
// dispatched: binding, validation, routing, rate limiting and panics.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, message and trace of a failed request
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes an ErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the catalog message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the response for code, stamped with traceID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	er := &ErrorResponse{Error: ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		Details: []string{},
		TraceID: traceID,
	}}
	for _, opt := range opts {
		opt(er)
	}
	return er
}

// FieldDetails renders field -> message pairs as "field<sep>message" lines,
// ordered by field so responses are stable across requests.
func FieldDetails(fields map[string]string, sep string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	details := make([]string, 0, len(names))
	for _, name := range names {
		details = append(details, name+sep+fields[name])
	}
	return details
}

// NewValidationError reports VALIDATION_001 with one detail line per field
func NewValidationError(fields map[string]string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(FieldDetails(fields, ": ")...))
}

// WrapSystemError hides err behind SYSTEM_001. err is handed back untouched
// so the caller can log it.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:        http.StatusBadRequest,
	ValidationRequiredField:  http.StatusBadRequest,
	ValidationInvalidFormat:  http.StatusBadRequest,
	ValidationOutOfRange:     http.StatusBadRequest,
	ValidationInvalidDate:    http.StatusBadRequest,
	ValidationInvalidPeriod:  http.StatusBadRequest,
	ReportUnsupported:        http.StatusNotFound,
	ReportLedgerUnavailable:  http.StatusServiceUnavailable,
	ReportGenerationFailed:   http.StatusInternalServerError,
	ReportTimeout:            http.StatusGatewayTimeout,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps an error code to its HTTP status. Codes without an
// explicit mapping are server errors.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status for the response code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
