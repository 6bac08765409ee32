package services

import (
	"context"
	"fmt"

	"banking-reports/internal/config"
	"banking-reports/internal/models"
)

type riskReportService struct {
	reportBase
}

func NewRiskReportService(loader *LedgerLoader, policy *config.Policy) RiskReportServiceInterface {
	return &riskReportService{reportBase: newReportBase(loader, policy)}
}

func (s *riskReportService) balanceSheet(ctx context.Context, req models.ReportRequest) (*models.BalanceSheet, error) {
	var accounts []models.Account
	var loans []models.Loan
	err := s.loader.Batch().
		Accounts(depositQuery(req), &accounts).
		Loans(bookQuery(req), &loans).
		Load(ctx)
	if err != nil {
		return nil, err
	}
	return buildBalanceSheet(models.ReportHeader{}, req.Period.EndOfDay(), accounts, loans, s.policy.Financial), nil
}

func (s *riskReportService) CreditRisk(ctx context.Context, req models.ReportRequest) (*models.CreditRiskReport, error) {
	var loans []models.Loan
	var customers []models.Customer
	err := s.loader.Batch().
		Loans(bookQuery(req), &loans).
		Customers(models.CustomerQuery{}, &customers).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportCreditRisk, err)
	}

	header := s.header(req, models.DomainRisk, models.ReportCreditRisk)
	return buildCreditRisk(header, req.Period.EndOfDay(), loans, customers, s.policy.Risk), nil
}

func (s *riskReportService) MarketRisk(ctx context.Context, req models.ReportRequest) (*models.MarketRiskReport, error) {
	sheet, err := s.balanceSheet(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportMarketRisk, err)
	}
	header := s.simulatedHeader(req, models.DomainRisk, models.ReportMarketRisk)
	return buildMarketRisk(header, req.Period.EndOfDay(), sheet, s.policy), nil
}

func (s *riskReportService) OperationalRisk(ctx context.Context, req models.ReportRequest) (*models.OperationalRiskReport, error) {
	var in revenueInputs
	err := s.loader.Batch().
		Transactions(periodQuery(req), &in.transactions).
		Loans(bookQuery(req), &in.loans).
		Accounts(depositQuery(req), &in.accounts).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportOperationalRisk, err)
	}

	header := s.simulatedHeader(req, models.DomainRisk, models.ReportOperationalRisk)
	return buildOperationalRisk(header, req.Period, in, s.policy), nil
}

func (s *riskReportService) NPLAnalysis(ctx context.Context, req models.ReportRequest) (*models.NPLAnalysisReport, error) {
	var loans []models.Loan
	if err := s.loader.Batch().Loans(bookQuery(req), &loans).Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportNPLAnalysis, err)
	}

	header := s.header(req, models.DomainRisk, models.ReportNPLAnalysis)
	return buildNPLAnalysis(header, req.Period, loans, s.policy.Risk), nil
}

func (s *riskReportService) LiquidityRisk(ctx context.Context, req models.ReportRequest) (*models.LiquidityRiskReport, error) {
	sheet, err := s.balanceSheet(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportLiquidityRisk, err)
	}
	header := s.simulatedHeader(req, models.DomainRisk, models.ReportLiquidityRisk)
	return buildLiquidityRisk(header, req.Period.EndOfDay(), sheet, s.policy.Risk), nil
}

func (s *riskReportService) VintageAnalysis(ctx context.Context, req models.ReportRequest) (*models.VintageAnalysisReport, error) {
	from, to := req.Period.StartDate, req.Period.EndOfDay()

	var loans []models.Loan
	var snapshots []models.LoanSnapshot
	err := s.loader.Batch().
		Loans(models.LoanQuery{Types: optional(req.Filters.LoanType), DisbursedFrom: &from, DisbursedTo: &to}, &loans).
		Snapshots(models.SnapshotQuery{DisbursedFrom: from, DisbursedTo: to, LoanTypes: optional(req.Filters.LoanType)}, &snapshots).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportVintage, err)
	}

	header := s.header(req, models.DomainRisk, models.ReportVintage)
	return buildVintageAnalysis(header, req.Period, loans, snapshots, s.policy.Risk), nil
}
