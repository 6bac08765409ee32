package errors

import "strings"

// ErrorCode identifies a failure in API responses, report envelopes and the
// X-Error-Code header. Codes are CATEGORY_NNN.
type ErrorCode string

// Request validation
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidPeriod ErrorCode = "VALIDATION_006"
)

// Report generation
const (
	ReportUnsupported       ErrorCode = "REPORT_001"
	ReportLedgerUnavailable ErrorCode = "REPORT_002"
	ReportGenerationFailed  ErrorCode = "REPORT_003"
	ReportTimeout           ErrorCode = "REPORT_004"
)

// Infrastructure
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

const fallbackMessage = "An error occurred"

var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format",
	ValidationInvalidPeriod: "Reporting period start must not be after its end",

	ReportUnsupported:       "Unsupported report type for this domain",
	ReportLedgerUnavailable: "Ledger data is temporarily unavailable",
	ReportGenerationFailed:  "Report could not be generated",
	ReportTimeout:           "Report generation timed out",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the client-facing message of code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return fallbackMessage
}

// IsValidErrorCode reports whether code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// Category returns the part before the sequence number, e.g. "REPORT".
func (c ErrorCode) Category() string {
	category, _, _ := strings.Cut(string(c), "_")
	return category
}
