package dto

import (
	"strings"
	"time"

	"banking-reports/internal/models"
)

// ReportQuery is the bound form of a report request: path parameters name
// the report, query parameters carry the period and filters.
type ReportQuery struct {
	Domain      string `param:"domain" json:"domain" validate:"required"`
	ReportType  string `param:"reportType" json:"reportType" validate:"required"`
	StartDate   string `query:"startDate" json:"startDate" validate:"required,report_date"`
	EndDate     string `query:"endDate" json:"endDate" validate:"required,report_date"`
	AccountType string `query:"accountType" json:"accountType" validate:"omitempty,account_type"`
	LoanType    string `query:"loanType" json:"loanType" validate:"omitempty,loan_type"`
	Segment     string `query:"segment" json:"segment" validate:"omitempty,segment"`
}

// ToRequest converts a validated query into a dispatcher request. Dates are
// taken as UTC calendar days.
func (q ReportQuery) ToRequest() (models.ReportRequest, error) {
	start, err := time.Parse(time.DateOnly, q.StartDate)
	if err != nil {
		return models.ReportRequest{}, err
	}
	end, err := time.Parse(time.DateOnly, q.EndDate)
	if err != nil {
		return models.ReportRequest{}, err
	}
	return models.ReportRequest{
		Domain:     models.Domain(strings.ToLower(q.Domain)),
		ReportType: models.ReportType(strings.ToLower(q.ReportType)),
		Period:     models.Period{StartDate: start, EndDate: end},
		Filters: models.Filters{
			AccountType: normalize(q.AccountType),
			LoanType:    normalize(q.LoanType),
			Segment:     normalize(q.Segment),
		},
	}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CatalogResponse lists the reports the engine serves
type CatalogResponse struct {
	Domains []models.CatalogEntry `json:"domains"`
}

// HealthResponse reports process and ledger state
type HealthResponse struct {
	Status         string `json:"status"`
	Time           string `json:"time"`
	LedgerCircuit  string `json:"ledgerCircuit"`
	LedgerFailures int    `json:"ledgerFailures"`
}
