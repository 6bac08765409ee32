package services

import (
	"context"
	"fmt"

	"banking-reports/internal/config"
	"banking-reports/internal/models"
)

type financialReportService struct {
	reportBase
}

func NewFinancialReportService(loader *LedgerLoader, policy *config.Policy) FinancialReportServiceInterface {
	return &financialReportService{reportBase: newReportBase(loader, policy)}
}

// loadIncomeInputs reads the period's completed transactions together with
// the book at period end and the headcount.
func (s *financialReportService) loadIncomeInputs(ctx context.Context, req models.ReportRequest) (incomeInputs, error) {
	var in incomeInputs
	err := s.loader.Batch().
		Transactions(periodQuery(req, models.TransactionStatusCompleted), &in.transactions).
		Loans(bookQuery(req), &in.loans).
		Accounts(depositQuery(req), &in.accounts).
		Headcount(req.Period.EndOfDay(), &in.headcount).
		Load(ctx)
	return in, err
}

func (s *financialReportService) IncomeStatement(ctx context.Context, req models.ReportRequest) (*models.IncomeStatement, error) {
	in, err := s.loadIncomeInputs(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportIncomeStatement, err)
	}
	header := s.simulatedHeader(req, models.DomainFinancial, models.ReportIncomeStatement)
	return buildIncomeStatement(header, in, s.policy.Financial), nil
}

func (s *financialReportService) BalanceSheet(ctx context.Context, req models.ReportRequest) (*models.BalanceSheet, error) {
	var accounts []models.Account
	var loans []models.Loan
	err := s.loader.Batch().
		Accounts(depositQuery(req), &accounts).
		Loans(bookQuery(req), &loans).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportBalanceSheet, err)
	}

	header := s.simulatedHeader(req, models.DomainFinancial, models.ReportBalanceSheet)
	return buildBalanceSheet(header, req.Period.EndOfDay(), accounts, loans, s.policy.Financial), nil
}

func (s *financialReportService) CashFlow(ctx context.Context, req models.ReportRequest) (*models.CashFlowStatement, error) {
	in := cashFlowInputs{end: req.Period.EndDate}
	trendQuery := models.TransactionQuery{
		From:     trendWindowStart(req.Period.EndDate, s.policy.Financial.CashFlowTrendMonths),
		To:       req.Period.EndOfDay(),
		Statuses: []string{models.TransactionStatusCompleted},
	}

	err := s.loader.Batch().
		Transactions(periodQuery(req, models.TransactionStatusCompleted), &in.transactions).
		Transactions(trendQuery, &in.trend).
		CashBalance(req.Period.StartDate, &in.opening).
		CashBalance(req.Period.EndOfDay(), &in.closing).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportCashFlow, err)
	}

	header := s.header(req, models.DomainFinancial, models.ReportCashFlow)
	return buildCashFlow(header, in, s.policy.Financial), nil
}

func (s *financialReportService) ProfitAndLoss(ctx context.Context, req models.ReportRequest) (*models.ProfitAndLoss, error) {
	in, err := s.loadIncomeInputs(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportProfitLoss, err)
	}
	header := s.simulatedHeader(req, models.DomainFinancial, models.ReportProfitLoss)
	return buildProfitAndLoss(header, in, s.policy.Financial), nil
}

func (s *financialReportService) BudgetVariance(ctx context.Context, req models.ReportRequest) (*models.BudgetVariance, error) {
	in, err := s.loadIncomeInputs(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportBudgetVariance, err)
	}

	statementHeader := s.simulatedHeader(req, models.DomainFinancial, models.ReportIncomeStatement)
	statement := buildIncomeStatement(statementHeader, in, s.policy.Financial)

	header := s.simulatedHeader(req, models.DomainFinancial, models.ReportBudgetVariance)
	return buildBudgetVariance(header, statement, s.policy.Financial.BudgetMultipliers), nil
}
