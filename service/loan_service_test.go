package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcc-tools/domain"
)

func TestCalculateLoan_DefaultScenario(t *testing.T) {
	service := NewLoanService()

	result, err := service.CalculateLoan(domain.DefaultLoanInput())
	require.NoError(t, err)

	assert.Equal(t, 240, result.TotalMonths)
	assert.InDelta(t, 3439.44, result.MonthlyPayment, 0.01)
	assert.InDelta(t, 825464.77, result.TotalPayment, 0.01)
	assert.InDelta(t, 325464.77, result.TotalInterest, 0.01)
	assert.Equal(t, "3,439.44 SAR", result.Lines[0].Value)
}

func TestCalculateLoan_AmortizationIdentities(t *testing.T) {
	service := NewLoanService()

	cases := []domain.LoanInput{
		{Principal: 10000, AnnualRatePercent: 12, Tenure: 24, TenureUnit: domain.TenureMonths},
		{Principal: 750000, AnnualRatePercent: 3.25, Tenure: 25, TenureUnit: domain.TenureYears},
		{Principal: 1, AnnualRatePercent: 99, Tenure: 1, TenureUnit: domain.TenureMonths},
		{Principal: 0, AnnualRatePercent: 5, Tenure: 10, TenureUnit: domain.TenureYears},
		{Principal: 1200, AnnualRatePercent: 0, Tenure: 1, TenureUnit: domain.TenureYears},
	}

	for _, in := range cases {
		result, err := service.CalculateLoan(in)
		require.NoError(t, err)

		n := float64(result.TotalMonths)
		assert.InDelta(t, result.TotalPayment, result.MonthlyPayment*n, 1e-6)
		assert.InDelta(t, result.TotalInterest, result.TotalPayment-in.Principal.Float(), 1e-6)
	}
}

func TestCalculateLoan_ZeroInterest(t *testing.T) {
	service := NewLoanService()

	result, err := service.CalculateLoan(domain.LoanInput{
		Principal:         1200,
		AnnualRatePercent: 0,
		Tenure:            12,
		TenureUnit:        domain.TenureMonths,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.MonthlyPayment)
	assert.Equal(t, 0.0, result.TotalInterest)
	assert.Equal(t, 1200.0, result.TotalPayment)
}

func TestCalculateLoan_Schedule(t *testing.T) {
	service := NewLoanService()

	result, err := service.CalculateLoan(domain.LoanInput{
		Principal:         100000,
		AnnualRatePercent: 6,
		Tenure:            30,
		TenureUnit:        domain.TenureMonths,
	})
	require.NoError(t, err)

	require.Len(t, result.Schedule, 3)
	assert.Equal(t, 1, result.Schedule[0].Year)
	assert.Equal(t, 3, result.Schedule[2].Year)
	assert.Equal(t, 0.0, result.Schedule[2].Balance)

	var principal, interest float64
	for _, row := range result.Schedule {
		principal += row.PrincipalPaid
		interest += row.InterestPaid
	}
	assert.InDelta(t, 100000, principal, 0.05)
	assert.InDelta(t, result.TotalInterest, interest, 0.05)
}

func TestCalculateLoan_InvalidTerm(t *testing.T) {
	service := NewLoanService()

	tests := []struct {
		name  string
		input domain.LoanInput
		want  error
	}{
		{"zero tenure", domain.LoanInput{Principal: 1000, AnnualRatePercent: 10, Tenure: 0}, domain.ErrZeroTerm},
		{"negative tenure", domain.LoanInput{Principal: 1000, Tenure: -5}, domain.ErrZeroTerm},
		{"under a month", domain.LoanInput{Principal: 1000, Tenure: 0.5, TenureUnit: domain.TenureMonths}, domain.ErrZeroTerm},
		{"too long", domain.LoanInput{Principal: 1000, Tenure: 51}, domain.ErrTermTooLong},
		{"bad unit", domain.LoanInput{Principal: 1000, Tenure: 5, TenureUnit: "weeks"}, domain.ErrInvalidTenureUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CalculateLoan(tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCalculateLoan_NegativeInputsCoerced(t *testing.T) {
	service := NewLoanService()

	result, err := service.CalculateLoan(domain.LoanInput{
		Principal:         -5000,
		AnnualRatePercent: -3,
		Tenure:            12,
		TenureUnit:        domain.TenureMonths,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.MonthlyPayment)
	assert.Equal(t, 0.0, result.TotalPayment)
}

func TestCheckEligibility(t *testing.T) {
	service := NewLoanService()

	result, err := service.CheckEligibility(domain.DefaultLoanEligibilityInput())
	require.NoError(t, err)

	assert.Equal(t, 13000.0, result.AvailableIncome)
	assert.InDelta(t, 4290, result.MonthlyEMICapacity, 1e-9)
	assert.InDelta(t, 51480, result.YearlyEMICapacity, 1e-9)
	assert.InDelta(t, 1029600, result.EstimatedMaxLoan, 1e-6)
}

func TestCheckEligibility_ObligationsAboveIncome(t *testing.T) {
	service := NewLoanService()

	result, err := service.CheckEligibility(domain.LoanEligibilityInput{
		MonthlyIncome:       3000,
		ExistingObligations: 5000,
		BankLimitPercent:    33,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.AvailableIncome)
	assert.Equal(t, 0.0, result.EstimatedMaxLoan)
}

func TestCalculateLoan_OverflowRejected(t *testing.T) {
	service := NewLoanService()

	tests := []struct {
		name  string
		input domain.LoanInput
	}{
		{"huge rate", domain.LoanInput{Principal: 500000, AnnualRatePercent: 100000, Tenure: 20}},
		{"huge principal", domain.LoanInput{Principal: 1e308, AnnualRatePercent: 50, Tenure: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CalculateLoan(tt.input)
			assert.ErrorIs(t, err, domain.ErrResultOutOfRange)
		})
	}
}

func TestCheckEligibility_OverflowRejected(t *testing.T) {
	service := NewLoanService()

	_, err := service.CheckEligibility(domain.LoanEligibilityInput{
		MonthlyIncome:    1e308,
		BankLimitPercent: 100,
	})
	assert.ErrorIs(t, err, domain.ErrResultOutOfRange)
}
