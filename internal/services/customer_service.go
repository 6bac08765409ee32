package services

import (
	"context"
	"fmt"

	"banking-reports/internal/config"
	"banking-reports/internal/models"
)

type customerReportService struct {
	reportBase
}

func NewCustomerReportService(loader *LedgerLoader, policy *config.Policy) CustomerReportServiceInterface {
	return &customerReportService{reportBase: newReportBase(loader, policy)}
}

func (s *customerReportService) customers(ctx context.Context, req models.ReportRequest) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.loader.Batch().Customers(customerQuery(req), &customers).Load(ctx); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *customerReportService) Acquisition(ctx context.Context, req models.ReportRequest) (*models.CustomerAcquisitionReport, error) {
	customers, err := s.customers(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportAcquisition, err)
	}
	header := s.header(req, models.DomainCustomer, models.ReportAcquisition)
	return buildAcquisition(header, req.Period, customers, s.policy.Customer), nil
}

func (s *customerReportService) Retention(ctx context.Context, req models.ReportRequest) (*models.CustomerRetentionReport, error) {
	customers, err := s.customers(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportRetention, err)
	}
	header := s.header(req, models.DomainCustomer, models.ReportRetention)
	return buildRetention(header, req.Period, customers), nil
}

func (s *customerReportService) Satisfaction(ctx context.Context, req models.ReportRequest) (*models.CustomerSatisfactionReport, error) {
	customers, err := s.customers(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportSatisfaction, err)
	}
	header := s.header(req, models.DomainCustomer, models.ReportSatisfaction)
	return buildSatisfaction(header, req.Period, customers, s.policy.Customer), nil
}

func (s *customerReportService) Demographics(ctx context.Context, req models.ReportRequest) (*models.CustomerDemographicsReport, error) {
	customers, err := s.customers(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportDemographics, err)
	}
	header := s.header(req, models.DomainCustomer, models.ReportDemographics)
	return buildDemographics(header, req.Period, customers, s.policy.Customer), nil
}

func (s *customerReportService) Behavior(ctx context.Context, req models.ReportRequest) (*models.CustomerBehaviorReport, error) {
	var in behaviorInputs
	err := s.loader.Batch().
		Customers(customerQuery(req), &in.customers).
		Accounts(models.AccountQuery{}, &in.accounts).
		Transactions(periodQuery(req, models.TransactionStatusCompleted), &in.transactions).
		Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", models.ReportBehavior, err)
	}

	header := s.header(req, models.DomainCustomer, models.ReportBehavior)
	return buildBehavior(header, req.Period, in, s.policy.Customer), nil
}
