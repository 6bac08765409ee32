package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePolicyFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultPolicy_IsValid(t *testing.T) {
	policy := DefaultPolicy()

	require.NoError(t, policy.Validate())
	assert.True(t, policy.Financial.TransactionFeeRate.Equal(decimal.RequireFromString("0.015")))
	assert.True(t, policy.Financial.AccountFees["business"].Equal(decimal.NewFromInt(50)))
	assert.True(t, policy.Regulatory.MinTotalCapitalRatio.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, 10, policy.Risk.ConcentrationTopN)
}

func TestLoadPolicy_EmptyPathReturnsDefaults(t *testing.T) {
	policy, err := LoadPolicy("")

	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), policy)
}

func TestLoadPolicy_OverridesOnlyGivenKeys(t *testing.T) {
	path := writePolicyFile(t, "policy.yaml", `
financial:
  transaction_fee_rate: 0.02
  account_fees:
    business: "75.50"
  investing_keywords: investment,bond_purchase
regulatory:
  large_transaction_amount: 50000
risk:
  concentration_top_n: 5
`)

	policy, err := LoadPolicy(path)

	require.NoError(t, err)
	assert.True(t, policy.Financial.TransactionFeeRate.Equal(decimal.RequireFromString("0.02")))
	assert.True(t, policy.Financial.AccountFees["business"].Equal(decimal.RequireFromString("75.50")))
	assert.True(t, policy.Financial.AccountFees["checking"].Equal(decimal.NewFromInt(15)), "untouched map entries keep defaults")
	assert.Equal(t, []string{"investment", "bond_purchase"}, policy.Financial.InvestingKeywords)
	assert.True(t, policy.Regulatory.LargeTransactionAmount.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 5, policy.Risk.ConcentrationTopN)
	assert.True(t, policy.Financial.TaxRate.Equal(decimal.RequireFromString("0.20")))
}

func TestLoadPolicy_OverridesProbabilityOfDefault(t *testing.T) {
	path := writePolicyFile(t, "policy.yaml", `
risk:
  probability_of_default:
    HIGH: 0.20
    unrated: "0.07"
`)

	policy, err := LoadPolicy(path)

	require.NoError(t, err)
	pd := policy.Risk.ProbabilityOfDefault
	assert.Len(t, pd, 4)
	assert.True(t, pd["HIGH"].Equal(decimal.RequireFromString("0.20")))
	assert.True(t, pd["UNRATED"].Equal(decimal.RequireFromString("0.07")))
	assert.True(t, pd["LOW"].Equal(decimal.RequireFromString("0.01")))
	assert.NotContains(t, pd, "high")
}

func TestLoadPolicy_RejectsProbabilityOfDefaultAboveOne(t *testing.T) {
	path := writePolicyFile(t, "policy.json", `{"risk": {"probability_of_default": {"MEDIUM": 1.5}}}`)

	_, err := LoadPolicy(path)

	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestLoadPolicy_RejectsBrokenMaturityProfile(t *testing.T) {
	path := writePolicyFile(t, "policy.json", `{"risk": {"maturity_profiles": {"cash": [0.5, 0.5]}}}`)

	_, err := LoadPolicy(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestPolicy_ValidateRejectsOutOfRangeRate(t *testing.T) {
	policy := DefaultPolicy()
	policy.Financial.TaxRate = decimal.NewFromInt(2)

	assert.ErrorIs(t, policy.Validate(), ErrInvalidPolicy)
}

func TestRegulatoryPolicy_IsCorporateLoanType(t *testing.T) {
	policy := DefaultPolicy()

	assert.True(t, policy.Regulatory.IsCorporateLoanType("business"))
	assert.True(t, policy.Regulatory.IsCorporateLoanType("corporate"))
	assert.False(t, policy.Regulatory.IsCorporateLoanType("mortgage"))
}
