package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type reportFilter struct {
	StartDate   string `query:"startDate" validate:"required,report_date"`
	AccountType string `query:"accountType" validate:"omitempty,account_type"`
	LoanType    string `json:"loanType" validate:"omitempty,loan_type"`
	Segment     string `validate:"omitempty,segment"`
}

type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestValidFilter() {
	err := s.validator.Struct(reportFilter{
		StartDate:   "2024-02-29",
		AccountType: "Savings",
		LoanType:    "mortgage",
		Segment:     "sme",
	})

	s.NoError(err)
}

func (s *ValidatorTestSuite) TestReportDate() {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{"calendar date", "2024-03-31", true},
		{"leap day", "2024-02-29", true},
		{"not a leap year", "2023-02-29", false},
		{"timestamp", "2024-03-31T00:00:00Z", false},
		{"day first", "31-03-2024", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.validator.Struct(reportFilter{StartDate: tc.value})
			if tc.valid {
				s.NoError(err)
				return
			}
			s.Equal(map[string]string{"startDate": "must be a date in YYYY-MM-DD format"}, FieldMessages(err))
		})
	}
}

func (s *ValidatorTestSuite) TestFieldMessages_UsesTagNames() {
	err := s.validator.Struct(reportFilter{AccountType: "credit", LoanType: "payday", Segment: "vip"})

	messages := FieldMessages(err)

	s.Equal("is required", messages["startDate"])
	s.Equal("must be one of: checking, savings, term, business", messages["accountType"])
	s.Contains(messages["loanType"], "mortgage")
	s.Contains(messages["Segment"], "retail")
}

func (s *ValidatorTestSuite) TestFieldMessages_NonValidationError() {
	s.Nil(FieldMessages(nil))
	s.Nil(FieldMessages(s.validator.Struct(42)))
}

func (s *ValidatorTestSuite) TestValidate_MatchesStruct() {
	s.NoError(s.validator.Validate(reportFilter{StartDate: "2024-01-31"}))
	s.Equal(map[string]string{"startDate": "is required"}, FieldMessages(s.validator.Validate(reportFilter{})))
}

func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	s.Same(GetValidator(), GetValidator())
	s.NotNil(GetValidator().GetValidate())
}
