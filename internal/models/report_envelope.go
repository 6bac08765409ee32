package models

import "time"

// ReportEnvelope is the transport wrapper around a report outcome.
// Exactly one of Data and Error is set.
type ReportEnvelope struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *ReportFailure `json:"error,omitempty"`
}

// ReportFailure describes why a report could not be produced. Code is the
// API error code and is not part of the envelope body.
type ReportFailure struct {
	Code    string `json:"-"`
	Message string `json:"message"`
}

func SuccessEnvelope(data interface{}) *ReportEnvelope {
	return &ReportEnvelope{Success: true, Data: data}
}

func FailureEnvelope(code, message string) *ReportEnvelope {
	return &ReportEnvelope{Success: false, Error: &ReportFailure{Code: code, Message: message}}
}

// KeyMetric is a headline figure, pre-formatted for display.
type KeyMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ReportSummary struct {
	ReportType      ReportType  `json:"report_type"`
	GeneratedAt     time.Time   `json:"generated_at"`
	KeyMetrics      []KeyMetric `json:"key_metrics"`
	Highlights      []string    `json:"highlights"`
	Recommendations []string    `json:"recommendations"`
}

// CatalogEntry lists the report types one domain serves.
type CatalogEntry struct {
	Domain      Domain       `json:"domain"`
	ReportTypes []ReportType `json:"report_types"`
}
