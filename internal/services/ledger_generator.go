package services

import (
	"fmt"
	"time"

	"banking-reports/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	hoursInDay         = 24
	businessHoursStart = 6
	businessHoursEnd   = 22
	customerHistory    = 2
	minAdultAge        = 18
	maxCustomerAge     = 80
)

// LedgerGeneratorConfig sizes a synthetic ledger. Seed 0 picks a random seed.
type LedgerGeneratorConfig struct {
	Customers              int
	TransactionsPerAccount int
	LoanRate               float64
	Employees              int
	Start                  time.Time
	End                    time.Time
	Seed                   uint64
}

func DefaultLedgerGeneratorConfig(end time.Time) LedgerGeneratorConfig {
	return LedgerGeneratorConfig{
		Customers:              200,
		TransactionsPerAccount: 40,
		LoanRate:               0.45,
		Employees:              25,
		Start:                  end.AddDate(-1, 0, 0),
		End:                    end,
	}
}

type ledgerGenerator struct {
	faker     *gofakeit.Faker
	accountNo int
}

// NewLedgerGenerator creates a generator whose output is reproducible for a non-zero seed
func NewLedgerGenerator(seed uint64) LedgerGeneratorInterface {
	return &ledgerGenerator{faker: gofakeit.New(seed)}
}

type amountRange struct {
	min float64
	max float64
}

var accountBalanceRanges = map[string]amountRange{
	models.AccountTypeChecking: {500, 40000},
	models.AccountTypeSavings:  {1000, 150000},
	models.AccountTypeTerm:     {10000, 500000},
	models.AccountTypeBusiness: {5000, 750000},
}

var loanPrincipalRanges = map[string]amountRange{
	models.LoanTypePersonal:  {5000, 80000},
	models.LoanTypeMortgage:  {250000, 1500000},
	models.LoanTypeAuto:      {30000, 200000},
	models.LoanTypeBusiness:  {50000, 900000},
	models.LoanTypeCorporate: {500000, 5000000},
}

// transactionKinds carries the sign and typical size of each movement type.
var transactionKinds = []struct {
	kind   string
	inflow bool
	amount amountRange
	weight float32
}{
	{"deposit", true, amountRange{100, 15000}, 22},
	{"salary", true, amountRange{3000, 25000}, 10},
	{"withdrawal", false, amountRange{50, 5000}, 18},
	{"payment", false, amountRange{20, 3000}, 20},
	{"transfer", false, amountRange{100, 20000}, 10},
	{"fee", false, amountRange{5, 75}, 6},
	{"loan_repayment", false, amountRange{500, 12000}, 6},
	{"investment", false, amountRange{5000, 60000}, 3},
	{"dividend_received", true, amountRange{200, 8000}, 3},
	{"borrowing", true, amountRange{20000, 250000}, 2},
}

// Generate builds a complete ledger for the configured window.
func (g *ledgerGenerator) Generate(cfg LedgerGeneratorConfig) *models.LedgerFixture {
	fixture := &models.LedgerFixture{}
	if cfg.End.IsZero() || !cfg.Start.Before(cfg.End) {
		return fixture
	}

	for i := 0; i < cfg.Customers; i++ {
		customer := g.customer(cfg)
		fixture.Customers = append(fixture.Customers, customer)

		for n := g.faker.IntRange(1, 3); n > 0; n-- {
			account := g.account(customer, cfg.End)
			fixture.Accounts = append(fixture.Accounts, account)
			fixture.Transactions = append(fixture.Transactions, g.transactions(account, cfg)...)
		}

		if g.faker.Float64Range(0, 1) < cfg.LoanRate {
			loan := g.loan(customer, cfg.End)
			fixture.Loans = append(fixture.Loans, loan)
			fixture.LoanSnapshots = append(fixture.LoanSnapshots, g.snapshots(loan, cfg.End)...)
		}
	}

	fixture.CashSnapshots = g.cashSnapshots(cfg)
	for i := 0; i < cfg.Employees; i++ {
		fixture.Employees = append(fixture.Employees, g.employee(cfg.End))
	}
	return fixture
}

func (g *ledgerGenerator) id() uuid.UUID {
	return uuid.MustParse(g.faker.UUID())
}

func (g *ledgerGenerator) amount(r amountRange) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(r.min, r.max)).Round(2)
}

func (g *ledgerGenerator) pick(options []string, weights []float32) string {
	values := make([]any, len(options))
	for i, o := range options {
		values[i] = o
	}
	choice, err := g.faker.Weighted(values, weights)
	if err != nil {
		return options[0]
	}
	return choice.(string)
}

func (g *ledgerGenerator) chance(p float64) bool {
	return g.faker.Float64Range(0, 1) < p
}

// timestamp places a moment inside business hours on a random day of the window.
func (g *ledgerGenerator) timestamp(start, end time.Time) time.Time {
	day := g.faker.DateRange(start, end)
	ts := time.Date(day.Year(), day.Month(), day.Day(),
		g.faker.IntRange(businessHoursStart, businessHoursEnd-1), g.faker.IntRange(0, 59), g.faker.IntRange(0, 59), 0, time.UTC)
	if ts.Before(start) {
		return start
	}
	if ts.After(end) {
		return end
	}
	return ts
}

func (g *ledgerGenerator) optionalScore(p float64, min, max int) *int {
	if !g.chance(p) {
		return nil
	}
	score := g.faker.IntRange(min, max)
	return &score
}

func (g *ledgerGenerator) customer(cfg LedgerGeneratorConfig) models.Customer {
	created := g.timestamp(cfg.Start.AddDate(-customerHistory, 0, 0), cfg.End)
	c := models.Customer{
		ID:                 g.id(),
		Segment:            g.pick(models.Segments, []float32{70, 15, 10, 5}),
		RiskRating:         g.pick([]string{models.RiskRatingLow, models.RiskRatingMedium, models.RiskRatingHigh, ""}, []float32{55, 30, 8, 7}),
		KYCStatus:          g.pick([]string{models.KYCStatusVerified, models.KYCStatusPending, models.KYCStatusRejected}, []float32{92, 6, 2}),
		Gender:             g.faker.RandomString([]string{"male", "female"}),
		City:               g.faker.City(),
		Region:             g.faker.State(),
		AcquisitionChannel: g.faker.RandomString([]string{"branch", "online", "mobile", "referral", "partner"}),
		SatisfactionScore:  g.optionalScore(0.6, 1, 5),
		NPSScore:           g.optionalScore(0.5, 0, 10),
		CreatedAt:          created,
	}
	if g.chance(0.95) {
		dob := g.faker.DateRange(cfg.End.AddDate(-maxCustomerAge, 0, 0), cfg.End.AddDate(-minAdultAge, 0, 0))
		c.DateOfBirth = &dob
	}
	if g.chance(0.08) {
		closed := g.timestamp(created, cfg.End)
		c.ClosedAt = &closed
	}
	return c
}

func (g *ledgerGenerator) account(c models.Customer, end time.Time) models.Account {
	accountType := g.pick(models.AccountTypes, []float32{45, 30, 10, 15})
	if c.Segment == models.SegmentSME || c.Segment == models.SegmentCorporate {
		accountType = g.pick(models.AccountTypes, []float32{15, 10, 15, 60})
	}

	g.accountNo++
	a := models.Account{
		ID:            g.id(),
		CustomerID:    c.ID,
		AccountNumber: fmt.Sprintf("%010d", g.accountNo),
		AccountType:   accountType,
		Balance:       g.amount(accountBalanceRanges[accountType]),
		Status:        g.pick([]string{models.AccountStatusActive, models.AccountStatusDormant, models.AccountStatusInactive, models.AccountStatusClosed}, []float32{85, 7, 3, 5}),
		OpenedAt:      g.timestamp(c.CreatedAt, end),
	}
	if c.ClosedAt != nil && a.OpenedAt.After(*c.ClosedAt) {
		a.OpenedAt = c.CreatedAt
	}
	if a.Status == models.AccountStatusClosed || c.ClosedAt != nil {
		closed := g.timestamp(a.OpenedAt, end)
		if c.ClosedAt != nil {
			closed = *c.ClosedAt
		}
		a.Status = models.AccountStatusClosed
		a.Balance = decimal.Zero
		a.ClosedAt = &closed
	}
	return a
}

func (g *ledgerGenerator) transactions(a models.Account, cfg LedgerGeneratorConfig) []models.Transaction {
	from := cfg.Start
	if a.OpenedAt.After(from) {
		from = a.OpenedAt
	}
	to := cfg.End.Add(hoursInDay*time.Hour - time.Second)
	if a.ClosedAt != nil && a.ClosedAt.Before(to) {
		to = *a.ClosedAt
	}
	if !from.Before(to) {
		return nil
	}

	weights := make([]float32, len(transactionKinds))
	kinds := make([]string, len(transactionKinds))
	for i, k := range transactionKinds {
		kinds[i], weights[i] = k.kind, k.weight
	}

	out := make([]models.Transaction, 0, cfg.TransactionsPerAccount)
	for i := 0; i < cfg.TransactionsPerAccount; i++ {
		kind := g.pick(kinds, weights)
		for _, k := range transactionKinds {
			if k.kind != kind {
				continue
			}
			amount := g.amount(k.amount)
			if !k.inflow {
				amount = amount.Neg()
			}
			out = append(out, models.Transaction{
				ID:              g.id(),
				AccountID:       a.ID,
				Amount:          amount,
				TransactionType: kind,
				Channel:         g.faker.RandomString(models.Channels),
				Status:          g.pick([]string{models.TransactionStatusCompleted, models.TransactionStatusPending, models.TransactionStatusFailed, models.TransactionStatusReversed}, []float32{92, 3, 3, 2}),
				OccurredAt:      g.timestamp(from, to),
			})
		}
	}
	return out
}

func (g *ledgerGenerator) loan(c models.Customer, end time.Time) models.Loan {
	loanType := g.pick(models.LoanTypes, []float32{40, 20, 25, 10, 5})
	if c.Segment == models.SegmentCorporate {
		loanType = models.LoanTypeCorporate
	}

	principal := g.amount(loanPrincipalRanges[loanType])
	disbursed := g.timestamp(c.CreatedAt, end)
	l := models.Loan{
		ID:                 g.id(),
		CustomerID:         c.ID,
		LoanType:           loanType,
		Principal:          principal,
		OutstandingBalance: principal.Mul(decimal.NewFromFloat(g.faker.Float64Range(0.2, 1))).Round(2),
		Status:             g.pick([]string{models.LoanStatusActive, models.LoanStatusDisbursed, models.LoanStatusDelinquent, models.LoanStatusDefault, models.LoanStatusWrittenOff, models.LoanStatusClosed}, []float32{62, 8, 12, 7, 3, 8}),
		DisbursedAt:        disbursed,
	}
	if g.chance(0.95) {
		l.InterestRate = decimal.NewNullDecimal(decimal.NewFromFloat(g.faker.Float64Range(3, 15)).Round(2))
	}

	switch l.Status {
	case models.LoanStatusDelinquent:
		l.DaysPastDue = g.faker.IntRange(1, 89)
	case models.LoanStatusDefault:
		l.DaysPastDue = g.faker.IntRange(90, 400)
		classified := g.timestamp(disbursed, end)
		l.NPLClassifiedAt = &classified
		if g.chance(0.3) {
			recovered := g.timestamp(classified, end)
			amount := l.OutstandingBalance.Mul(decimal.NewFromFloat(g.faker.Float64Range(0.05, 0.4))).Round(2)
			l.OutstandingBalance = l.OutstandingBalance.Sub(amount)
			l.RecoveredAt = &recovered
			l.RecoveredAmount = decimal.NewNullDecimal(amount)
			l.RecoveryMethod = g.faker.RandomString([]string{"restructuring", "collateral_sale", "legal", "settlement"})
		}
	case models.LoanStatusWrittenOff:
		l.DaysPastDue = g.faker.IntRange(180, 540)
		classified := g.timestamp(disbursed, end)
		writtenOff := g.timestamp(classified, end)
		l.NPLClassifiedAt = &classified
		l.WrittenOffAt = &writtenOff
		l.WrittenOffAmount = decimal.NewNullDecimal(l.OutstandingBalance)
		l.OutstandingBalance = decimal.Zero
	case models.LoanStatusClosed:
		l.OutstandingBalance = decimal.Zero
	}
	return l
}

// snapshots walks the loan month by month toward its current state.
func (g *ledgerGenerator) snapshots(l models.Loan, end time.Time) []models.LoanSnapshot {
	first := time.Date(l.DisbursedAt.Year(), l.DisbursedAt.Month()+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Second)
	var dates []time.Time
	for d := first; !d.After(end); d = time.Date(d.Year(), d.Month()+2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Second) {
		dates = append(dates, d)
	}

	out := make([]models.LoanSnapshot, 0, len(dates))
	for i, d := range dates {
		last := i == len(dates)-1
		status, dpd := models.LoanStatusActive, 0
		switch {
		case last:
			status, dpd = l.Status, l.DaysPastDue
		case l.DaysPastDue > 0 && i >= len(dates)-1-l.DaysPastDue/30:
			dpd = l.DaysPastDue - (len(dates)-1-i)*30
			status = models.LoanStatusDelinquent
		case g.chance(0.05):
			dpd, status = g.faker.IntRange(1, 29), models.LoanStatusDelinquent
		}
		if dpd < 0 {
			dpd = 0
		}
		out = append(out, models.LoanSnapshot{
			ID:           g.id(),
			LoanID:       l.ID,
			SnapshotDate: d,
			MonthsOnBook: i,
			DaysPastDue:  dpd,
			Status:       status,
		})
	}
	return out
}

// cashSnapshots records one month-end balance per month of the window.
func (g *ledgerGenerator) cashSnapshots(cfg LedgerGeneratorConfig) []models.CashSnapshot {
	var out []models.CashSnapshot
	for i := 1; ; i++ {
		d := time.Date(cfg.Start.Year(), cfg.Start.Month()+time.Month(i), 0, 0, 0, 0, 0, time.UTC)
		if d.After(cfg.End) {
			break
		}
		out = append(out, models.CashSnapshot{
			ID:      g.id(),
			AsOf:    d,
			Balance: g.amount(amountRange{2000000, 9000000}),
		})
	}
	return out
}

func (g *ledgerGenerator) employee(end time.Time) models.Employee {
	e := models.Employee{
		ID:      g.id(),
		Status:  models.EmployeeStatusActive,
		HiredAt: g.faker.DateRange(end.AddDate(-10, 0, 0), end),
	}
	if g.chance(0.1) {
		terminated := g.faker.DateRange(e.HiredAt, end)
		e.Status = models.EmployeeStatusTerminated
		e.TerminatedAt = &terminated
	}
	return e
}
