package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcc-tools/domain"
)

func TestCalculateMortgage_Default(t *testing.T) {
	service := NewMortgageService()

	result, err := service.CalculateMortgage(domain.DefaultMortgageInput())
	require.NoError(t, err)

	assert.Equal(t, 1600000.0, result.LoanAmount)
	assert.Equal(t, 20.0, result.DownPaymentPercent)
	assert.InDelta(t, 11006.20, result.MonthlyPayment, 0.01)
	assert.InDelta(t, result.TotalPayment-result.LoanAmount, result.TotalInterest, 1e-6)
	assert.Len(t, result.Schedule, 20)
}

func TestCalculateMortgage_DownPaymentAbovePrice(t *testing.T) {
	service := NewMortgageService()

	result, err := service.CalculateMortgage(domain.MortgageInput{
		PropertyPrice:     500000,
		DownPayment:       600000,
		AnnualRatePercent: 5,
		Tenure:            10,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.LoanAmount)
	assert.Equal(t, 0.0, result.MonthlyPayment)
	assert.Equal(t, 120.0, result.DownPaymentPercent)
}

func TestCalculateMortgage_ZeroPrice(t *testing.T) {
	service := NewMortgageService()

	result, err := service.CalculateMortgage(domain.MortgageInput{Tenure: 10})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.DownPaymentPercent)
	assert.Equal(t, 0.0, result.MonthlyPayment)
}

func TestCalculateMortgage_ZeroTerm(t *testing.T) {
	service := NewMortgageService()

	_, err := service.CalculateMortgage(domain.MortgageInput{PropertyPrice: 100, Tenure: 0})
	assert.True(t, errors.Is(err, domain.ErrZeroTerm))
}

func TestCalculateMortgage_OverflowRejected(t *testing.T) {
	service := NewMortgageService()

	_, err := service.CalculateMortgage(domain.MortgageInput{
		PropertyPrice:     2000000,
		AnnualRatePercent: 100000,
		Tenure:            20,
	})
	assert.ErrorIs(t, err, domain.ErrResultOutOfRange)

	_, err = service.CalculateMortgage(domain.MortgageInput{
		PropertyPrice: 1e-300,
		DownPayment:   1e300,
		Tenure:        20,
	})
	assert.ErrorIs(t, err, domain.ErrResultOutOfRange)
}
