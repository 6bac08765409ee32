package models

import (
	"github.com/shopspring/decimal"
)

type CustomerAcquisitionReport struct {
	ReportHeader
	NewCustomers   int             `json:"new_customers"`
	TotalCustomers int             `json:"total_customers"`
	NewShare       decimal.Decimal `json:"new_share"`
	GrowthRate     decimal.Decimal `json:"growth_rate"`
	ByChannel      []CountShare    `json:"by_channel"`
	BySegment      []CountShare    `json:"by_segment"`
	Trend          []TrendPoint    `json:"trend"`
}

type SegmentRetention struct {
	Segment       string          `json:"segment"`
	ActiveAtStart int             `json:"active_at_start"`
	Retained      int             `json:"retained"`
	Churned       int             `json:"churned"`
	RetentionRate decimal.Decimal `json:"retention_rate"`
	ChurnRate     decimal.Decimal `json:"churn_rate"`
}

type CustomerRetentionReport struct {
	ReportHeader
	ActiveAtStart int                `json:"active_at_start"`
	Retained      int                `json:"retained"`
	Churned       int                `json:"churned"`
	RetentionRate decimal.Decimal    `json:"retention_rate"`
	ChurnRate     decimal.Decimal    `json:"churn_rate"`
	BySegment     []SegmentRetention `json:"by_segment"`
}

type CustomerSatisfactionReport struct {
	ReportHeader
	Customers    int             `json:"customers"`
	Responses    int             `json:"responses"`
	ResponseRate decimal.Decimal `json:"response_rate"`
	AverageScore decimal.Decimal `json:"average_score"`
	CSAT         decimal.Decimal `json:"csat"`
	Distribution []CountShare    `json:"distribution"`
	NPSResponses int             `json:"nps_responses"`
	Promoters    int             `json:"promoters"`
	Passives     int             `json:"passives"`
	Detractors   int             `json:"detractors"`
	NPS          decimal.Decimal `json:"nps"`
}

type CustomerDemographicsReport struct {
	ReportHeader
	TotalCustomers int             `json:"total_customers"`
	AverageAge     decimal.Decimal `json:"average_age"`
	AgeBands       []CountShare    `json:"age_bands"`
	Gender         []CountShare    `json:"gender"`
	Region         []CountShare    `json:"region"`
	Segment        []CountShare    `json:"segment"`
}

type CustomerBehaviorReport struct {
	ReportHeader
	ActiveCustomers         int             `json:"active_customers"`
	TransactionCount        int             `json:"transaction_count"`
	TransactionVolume       decimal.Decimal `json:"transaction_volume"`
	AverageTransactionValue decimal.Decimal `json:"average_transaction_value"`
	FrequencyTiers          []CountShare    `json:"frequency_tiers"`
	ChannelUsage            []CountShare    `json:"channel_usage"`
	ProductsPerCustomer     decimal.Decimal `json:"products_per_customer"`
	TransactionsPerCustomer decimal.Decimal `json:"transactions_per_customer"`
}
