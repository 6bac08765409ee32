package services

import (
	"context"
	"fmt"

	"banking-reports/internal/config"
	"banking-reports/internal/models"
)

type regulatoryReportService struct {
	reportBase
}

func NewRegulatoryReportService(loader *LedgerLoader, policy *config.Policy) RegulatoryReportServiceInterface {
	return &regulatoryReportService{reportBase: newReportBase(loader, policy)}
}

// position reads the book at period end and splits it into Basel classes.
func (s *regulatoryReportService) position(ctx context.Context, req models.ReportRequest) (prudentialPosition, error) {
	var accounts []models.Account
	var loans []models.Loan
	err := s.loader.Batch().
		Accounts(depositQuery(req), &accounts).
		Loans(bookQuery(req), &loans).
		Load(ctx)
	if err != nil {
		return prudentialPosition{}, err
	}

	sheet := buildBalanceSheet(models.ReportHeader{}, req.Period.EndOfDay(), accounts, loans, s.policy.Financial)
	return computePrudentialPosition(sheet, s.policy.Regulatory), nil
}

func (s *regulatoryReportService) SAMAMonthly(ctx context.Context, req models.ReportRequest) (*models.SAMAMonthlyReport, error) {
	var in samaInputs
	err := s.loader.Batch().
		Accounts(depositQuery(req), &in.accounts).
		Loans(bookQuery(req), &in.loans).
		Transactions(periodQuery(req, models.TransactionStatusCompleted), &in.transactions).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportSAMAMonthly, err)
	}

	header := s.simulatedHeader(req, models.DomainRegulatory, models.ReportSAMAMonthly)
	return buildSAMAMonthly(header, req.Period, in, s.policy), nil
}

func (s *regulatoryReportService) BaselIII(ctx context.Context, req models.ReportRequest) (*models.BaselIIIReport, error) {
	pos, err := s.position(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportBaselIII, err)
	}
	header := s.simulatedHeader(req, models.DomainRegulatory, models.ReportBaselIII)
	return buildBaselIII(header, req.Period.EndOfDay(), pos, s.policy.Regulatory), nil
}

func (s *regulatoryReportService) AMLCFT(ctx context.Context, req models.ReportRequest) (*models.AMLReport, error) {
	var in amlInputs
	err := s.loader.Batch().
		Transactions(periodQuery(req, models.TransactionStatusCompleted), &in.transactions).
		Accounts(models.AccountQuery{}, &in.accounts).
		Customers(customerQuery(req), &in.customers).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportAMLCFT, err)
	}

	header := s.header(req, models.DomainRegulatory, models.ReportAMLCFT)
	return buildAMLReport(header, req.Period, in, s.policy.Regulatory), nil
}

func (s *regulatoryReportService) LCR(ctx context.Context, req models.ReportRequest) (*models.LCRReport, error) {
	pos, err := s.position(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportLCR, err)
	}
	header := s.simulatedHeader(req, models.DomainRegulatory, models.ReportLCR)
	return buildLCR(header, req.Period.EndOfDay(), pos, s.policy.Regulatory), nil
}

func (s *regulatoryReportService) NSFR(ctx context.Context, req models.ReportRequest) (*models.NSFRReport, error) {
	pos, err := s.position(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportNSFR, err)
	}
	header := s.simulatedHeader(req, models.DomainRegulatory, models.ReportNSFR)
	return buildNSFR(header, req.Period.EndOfDay(), pos, s.policy.Regulatory), nil
}

func (s *regulatoryReportService) CapitalAdequacy(ctx context.Context, req models.ReportRequest) (*models.CapitalAdequacyReport, error) {
	var in revenueInputs
	err := s.loader.Batch().
		Accounts(depositQuery(req), &in.accounts).
		Loans(bookQuery(req), &in.loans).
		Transactions(periodQuery(req, models.TransactionStatusCompleted), &in.transactions).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportCapitalAdequacy, err)
	}

	asOf := req.Period.EndOfDay()
	sheet := buildBalanceSheet(models.ReportHeader{}, asOf, in.accounts, in.loans, s.policy.Financial)
	pos := computePrudentialPosition(sheet, s.policy.Regulatory)
	revenue := computeRevenue(in, s.policy.Financial)

	header := s.simulatedHeader(req, models.DomainRegulatory, models.ReportCapitalAdequacy)
	return buildCapitalAdequacy(header, asOf, pos, revenue, req.Period, s.policy), nil
}
