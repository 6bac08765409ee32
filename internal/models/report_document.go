package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportDocument is implemented by every computed report. Documents are
// immutable once returned by a calculator.
type ReportDocument interface {
	ReportType() ReportType
	Header() ReportHeader
}

// ReportHeader is embedded in every document.
type ReportHeader struct {
	Type        ReportType `json:"report_type"`
	Domain      Domain     `json:"domain"`
	Period      Period     `json:"period"`
	GeneratedAt time.Time  `json:"generated_at"`
	Basis       string     `json:"basis,omitempty"`
}

func (h ReportHeader) ReportType() ReportType {
	return h.Type
}

func (h ReportHeader) Header() ReportHeader {
	return h
}

// LineItem is a labelled amount.
type LineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CountShare is a labelled count with its share of the distribution.
type CountShare struct {
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

// AmountShare is a labelled count and amount with the amount's share.
type AmountShare struct {
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// RatioCheck compares a ratio against a regulatory floor.
type RatioCheck struct {
	Value     decimal.Decimal `json:"value"`
	Minimum   decimal.Decimal `json:"minimum"`
	Compliant bool            `json:"compliant"`
}

// RatioCeiling compares a ratio against a regulatory cap.
type RatioCeiling struct {
	Value     decimal.Decimal `json:"value"`
	Maximum   decimal.Decimal `json:"maximum"`
	Compliant bool            `json:"compliant"`
}

func NewRatioCheck(value, minimum decimal.Decimal) RatioCheck {
	return RatioCheck{Value: value, Minimum: minimum, Compliant: value.GreaterThanOrEqual(minimum)}
}

func NewRatioCeiling(value, maximum decimal.Decimal) RatioCeiling {
	return RatioCeiling{Value: value, Maximum: maximum, Compliant: value.LessThanOrEqual(maximum)}
}

// TrendPoint is one period of a trailing series.
type TrendPoint struct {
	Period string          `json:"period"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}
