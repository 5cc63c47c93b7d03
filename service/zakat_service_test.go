package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcc-tools/domain"
)

func TestCalculateZakat_DefaultScenario(t *testing.T) {
	service := NewZakatService()

	result, err := service.CalculateZakat(domain.DefaultZakatInput())
	require.NoError(t, err)

	assert.Equal(t, 25000.0, result.GoldValue)
	assert.Equal(t, 75000.0, result.TotalAssets)
	assert.Equal(t, 75000.0, result.NetWealth)
	assert.Equal(t, 21250.0, result.NisabThreshold)
	assert.True(t, result.IsEligible)
	assert.Equal(t, 75000*0.025, result.ZakatAmount)
	assert.Equal(t, "1,875.00 SAR", lineValue(result.Lines, "zakat_amount"))

	assert.Equal(t, []domain.Slice{
		{Name: "Cash", Value: 50000},
		{Name: "Gold", Value: 25000},
	}, result.Breakdown)
}

func TestCalculateZakat_BelowNisab(t *testing.T) {
	service := NewZakatService()

	result, err := service.CalculateZakat(domain.ZakatInput{
		Cash:             20000,
		GoldPricePerGram: 250,
	})
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.Equal(t, 0.0, result.ZakatAmount)
}

func TestCalculateZakat_ExactlyAtNisab(t *testing.T) {
	service := NewZakatService()

	result, err := service.CalculateZakat(domain.ZakatInput{
		Cash:             21250,
		GoldPricePerGram: 250,
	})
	require.NoError(t, err)

	assert.True(t, result.IsEligible)
	assert.Equal(t, 21250*0.025, result.ZakatAmount)
}

func TestCalculateZakat_DebtsReduceWealth(t *testing.T) {
	service := NewZakatService()

	result, err := service.CalculateZakat(domain.ZakatInput{
		Cash:             30000,
		Stocks:           10000,
		Debts:            25000,
		GoldPricePerGram: 250,
	})
	require.NoError(t, err)

	assert.Equal(t, 40000.0, result.TotalAssets)
	assert.Equal(t, 15000.0, result.NetWealth)
	assert.False(t, result.IsEligible)
	assert.Equal(t, 0.0, result.ZakatAmount)
}

func TestCalculateZakat_SilverDoesNotLowerNisab(t *testing.T) {
	service := NewZakatService()

	result, err := service.CalculateZakat(domain.ZakatInput{
		SilverGrams:        1000,
		SilverPricePerGram: 3,
		GoldPricePerGram:   250,
	})
	require.NoError(t, err)

	assert.Equal(t, 3000.0, result.NetWealth)
	assert.Equal(t, 1785.0, result.SilverNisabThreshold)
	assert.Equal(t, 21250.0, result.NisabThreshold)
	assert.False(t, result.IsEligible)
}

func TestCalculateZakat_Property(t *testing.T) {
	service := NewZakatService()

	for cash := 0.0; cash <= 100000; cash += 2500 {
		result, err := service.CalculateZakat(domain.ZakatInput{
			Cash:             domain.Number(cash),
			GoldGrams:        10,
			GoldPricePerGram: 250,
			Debts:            5000,
		})
		require.NoError(t, err)

		if result.NetWealth < result.NisabThreshold {
			assert.Equal(t, 0.0, result.ZakatAmount)
		} else {
			assert.Equal(t, result.NetWealth*0.025, result.ZakatAmount)
		}
	}
}

func TestCalculateZakat_OverflowRejected(t *testing.T) {
	service := NewZakatService()

	_, err := service.CalculateZakat(domain.ZakatInput{Cash: 1e308, Stocks: 1e308})
	assert.ErrorIs(t, err, domain.ErrResultOutOfRange)

	_, err = service.CalculateZakat(domain.ZakatInput{GoldGrams: 1e300, GoldPricePerGram: 1e300})
	assert.ErrorIs(t, err, domain.ErrResultOutOfRange)
}
